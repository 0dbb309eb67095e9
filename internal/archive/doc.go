// Package archive moves earlier output directories out of the way into a
// timestamped archive directory.
package archive
