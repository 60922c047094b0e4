// Package tally counts characters in a string and renders the counts as a
// text histogram.
//
// A Tally maps each distinct character (rune) to one Marker per occurrence,
// keeping characters in the order they first appear. Build is the only way
// to populate a Tally; once built it is read-only.
package tally
