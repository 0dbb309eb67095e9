// Package saypyu converts IPA pronunciations, including the notations used
// by the OED and CED, into SaypYu phonetic spelling. Conversion is a single
// left-to-right scan over an ordered rule table with a single-character
// fallback table; characters neither table knows about are dropped.
package saypyu
