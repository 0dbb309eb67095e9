// Package processor contains the application logic behind the saypyu
// command. It transliterates single IPA strings, streams, batch files and
// fixtures, and coordinates phonetic lookups with the word cache. This
// package serves as the main coordinator between all other components.
package processor
