// Package hunk strips the trailing context annotation git appends to hunk headers.
package hunk

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/diffwatch/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.DiffNormaliser = (*Normaliser)(nil)

const hunkMarker = "@@"

// hunkHeader keeps the "@@ -a,b +c,d @@" range block and drops what follows.
var hunkHeader = regexp.MustCompile(`^(@@[^@]*@@).*$`)

// Normaliser removes function-context snippets from hunk headers.
type Normaliser struct{}

// New creates a new hunk header normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Normalise processes diff line by line. A line starting with "@@" loses
// everything after its closing "@@"; all other lines pass through unchanged.
func (n *Normaliser) Normalise(diff string) string {
	if diff == "" {
		return diff
	}
	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, hunkMarker) {
			lines[i] = hunkHeader.ReplaceAllString(line, "$1")
		}
	}
	return strings.Join(lines, "\n")
}
