// Package sequence generates ordered lists of code strings for barcode labels.
//
// A sequence is defined by a numeric range (start, end, increment) plus an
// optional prefix, suffix, and zero-padding width. Codes can also be supplied
// directly as a manual multi-line list, bypassing generation entirely.
//
// # Example
//
//	codes := sequence.Generate(sequence.Spec{
//	    Start: 1, End: 10, Increment: 3, Padding: 3,
//	})
//	// ["001", "004", "007", "010"]
package sequence

import (
	"fmt"
	"strings"
)

// Spec describes a code sequence to generate.
// The zero value of Increment is treated as 1.
type Spec struct {
	Start     int    // first value (inclusive)
	End       int    // last value (inclusive upper bound)
	Increment int    // step between values; values < 1 default to 1
	Prefix    string // literal text before the number part
	Suffix    string // literal text after the number part
	Padding   int    // minimum width of the number part, zero-padded
}

// Count returns the number of codes Generate will produce.
func (s Spec) Count() int {
	if s.Start > s.End {
		return 0
	}
	inc := s.Increment
	if inc < 1 {
		inc = 1
	}
	return (s.End-s.Start)/inc + 1
}

// Generate produces the ordered code list for the spec.
// When Start > End the result is empty; the caller decides whether that is
// an error (the text-parameter path rejects it, the flag path does not).
func Generate(s Spec) []string {
	inc := s.Increment
	if inc < 1 {
		inc = 1
	}

	codes := make([]string, 0, s.Count())
	for n := s.Start; n <= s.End; n += inc {
		codes = append(codes, s.Prefix+pad(n, s.Padding)+s.Suffix)
	}
	return codes
}

// pad formats n in decimal, left-padded with '0' to at least width runes.
// Numbers already at or beyond width are returned unchanged.
func pad(n, width int) string {
	if width <= 0 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%0*d", width, n)
}

// FromLines splits a manual multi-line code list into individual codes.
// Each line is trimmed; blank lines are dropped. Order is preserved.
func FromLines(text string) []string {
	var codes []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			codes = append(codes, line)
		}
	}
	return codes
}

// AppendLines appends codes to an existing manual list, inserting a line
// break only when prior content exists. The prior lines are preserved as-is.
func AppendLines(existing string, codes []string) string {
	joined := strings.Join(codes, "\n")
	if existing == "" {
		return joined
	}
	return existing + "\n" + joined
}
