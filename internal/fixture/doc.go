// Package fixture runs the transliterator against a fixture file of known
// IPA to SaypYu pairs and reports every mismatch in an aligned table.
package fixture
