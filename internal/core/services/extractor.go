package services

import (
	"context"

	"github.com/custodia-labs/diffwatch/internal/core/domain"
	"github.com/custodia-labs/diffwatch/internal/core/ports/driven"
	"github.com/custodia-labs/diffwatch/internal/logger"
)

// DiffExtractor obtains the working-tree diff and prepares it for a prompt.
type DiffExtractor struct {
	source     driven.DiffSource
	normaliser driven.DiffNormaliser
}

// NewDiffExtractor creates a new diff extractor.
func NewDiffExtractor(source driven.DiffSource, normaliser driven.DiffNormaliser) *DiffExtractor {
	return &DiffExtractor{
		source:     source,
		normaliser: normaliser,
	}
}

// Extract returns the normalised diff of root against HEAD.
//
// Returns domain.ErrNoChanges when the diff is blank, and the source's error
// (usually a *domain.DiffCommandError) when the diff command fails.
func (e *DiffExtractor) Extract(ctx context.Context, root string) (domain.NormalizedDiff, error) {
	raw, err := e.source.Diff(ctx, root)
	if err != nil {
		return domain.NormalizedDiff{}, err
	}

	if raw.IsEmpty() {
		return domain.NormalizedDiff{}, domain.ErrNoChanges
	}

	normalised := e.normaliser.Normalise(raw.Text)
	logger.Debug("Diff extracted: %d bytes raw, %d bytes normalised", len(raw.Text), len(normalised))

	return domain.NormalizedDiff{Text: normalised}, nil
}
