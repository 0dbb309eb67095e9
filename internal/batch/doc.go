// Package batch reads batch files of IPA pronunciations, optionally
// labelled with the word they belong to, and writes their SaypYu spellings.
package batch
