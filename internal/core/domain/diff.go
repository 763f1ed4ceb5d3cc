package domain

import "strings"

// RawDiff is the unmodified output of the diff command.
type RawDiff struct {
	Text string
}

// IsEmpty reports whether the diff has no content once whitespace is trimmed.
func (d RawDiff) IsEmpty() bool {
	return strings.TrimSpace(d.Text) == ""
}

// NormalizedDiff is a RawDiff with hunk-header annotations removed.
// Normalizing an already normalized diff yields the same text.
type NormalizedDiff struct {
	Text string
}

// String returns the diff text.
func (d NormalizedDiff) String() string {
	return d.Text
}
