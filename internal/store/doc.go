// Package store provides a SQLite backed cache of word pronunciations so
// repeated lookups do not hit the phonetic sources again.
package store
