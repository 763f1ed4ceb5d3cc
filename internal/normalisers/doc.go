// Package normalisers provides implementations of the DiffNormaliser interface.
// Each normaliser is a pure text transform applied to a unified diff before
// it is placed in a prompt.
package normalisers
