package tally

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Fprint writes one line per character: the character, a space, then its
// markers with no separator.
func Fprint(w io.Writer, t Tally) error {
	if w == nil {
		return errors.New("output is required")
	}
	for r, markers := range t.All() {
		if _, err := fmt.Fprintf(w, "%c %s\n", r, strings.Join(markers, "")); err != nil {
			return err
		}
	}
	return nil
}

// Print writes the histogram of t to standard output.
func Print(t Tally) error {
	return Fprint(os.Stdout, t)
}

// Histogram builds the tally of word and writes it to w.
func Histogram(w io.Writer, word string) error {
	return Fprint(w, Build(word))
}
