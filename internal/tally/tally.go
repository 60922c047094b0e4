package tally

import (
	"iter"
	"slices"
)

// Marker is recorded once for every occurrence of a character.
const Marker = "*"

// Tally maps characters to their occurrence markers in first-seen order.
type Tally struct {
	order []rune
	marks map[rune][]string
}

// Build scans s left to right and records one Marker per character.
// Characters are compared as runes without any case or Unicode normalization.
func Build(s string) Tally {
	t := Tally{marks: make(map[rune][]string)}
	for _, r := range s {
		if _, ok := t.marks[r]; !ok {
			t.order = append(t.order, r)
			t.marks[r] = []string{}
		}
		t.marks[r] = append(t.marks[r], Marker)
	}
	return t
}

// Len returns the number of distinct characters.
func (t Tally) Len() int {
	return len(t.order)
}

// Keys returns the characters in order of first appearance.
func (t Tally) Keys() []rune {
	return slices.Clone(t.order)
}

// Markers returns the markers recorded for r, or nil when r was never seen.
func (t Tally) Markers(r rune) []string {
	return slices.Clone(t.marks[r])
}

// Count returns how many times r occurred.
func (t Tally) Count(r rune) int {
	return len(t.marks[r])
}

// Total returns the number of characters scanned.
func (t Tally) Total() int {
	total := 0
	for _, markers := range t.marks {
		total += len(markers)
	}
	return total
}

// All iterates characters and copies of their markers in first-seen order.
func (t Tally) All() iter.Seq2[rune, []string] {
	return func(yield func(rune, []string) bool) {
		for _, r := range t.order {
			if !yield(r, slices.Clone(t.marks[r])) {
				return
			}
		}
	}
}
