package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/diffwatch/internal/core/domain"
	"github.com/custodia-labs/diffwatch/internal/core/ports/driven"
	"github.com/custodia-labs/diffwatch/internal/core/ports/driving"
	"github.com/custodia-labs/diffwatch/internal/logger"
)

// Ensure Pipeline implements the interface.
var _ driving.Analyser = (*Pipeline)(nil)

// Pipeline runs diff extraction, prompt construction and completion in sequence.
// Each call is synchronous; it never starts background work.
type Pipeline struct {
	extractor *DiffExtractor
	prompts   *PromptBuilder
	llm       driven.CompletionService
	reporter  driven.Reporter

	now      func() time.Time
	newRunID func() string
}

// NewPipeline creates a new analysis pipeline.
func NewPipeline(
	extractor *DiffExtractor,
	prompts *PromptBuilder,
	llm driven.CompletionService,
	reporter driven.Reporter,
) *Pipeline {
	return &Pipeline{
		extractor: extractor,
		prompts:   prompts,
		llm:       llm,
		reporter:  reporter,
		now:       time.Now,
		newRunID:  uuid.NewString,
	}
}

// SetClock replaces the time source. Used by tests.
func (p *Pipeline) SetClock(now func() time.Time) {
	p.now = now
}

// Analyse returns a commit message suggestion for the working tree at root.
func (p *Pipeline) Analyse(ctx context.Context, root string) (domain.Suggestion, error) {
	return p.analyse(ctx, root, nil)
}

// Run analyses root and reports the outcome through the Reporter.
// No outcome is fatal: the error is returned only so callers can observe it.
func (p *Pipeline) Run(ctx context.Context, root string) error {
	suggestion, err := p.analyse(ctx, root, p.reporter.ChangesDetected)
	switch {
	case errors.Is(err, domain.ErrNoChanges):
		p.reporter.NoChanges()
		return err
	case err != nil:
		p.reporter.Failure(err)
		return err
	}

	p.reporter.Suggestion(suggestion)
	return nil
}

func (p *Pipeline) analyse(ctx context.Context, root string, onChanges func(time.Time)) (domain.Suggestion, error) {
	runID := p.newRunID()
	startedAt := p.now()
	log := logger.With("run", runID)

	log.Debugw("extracting diff", "root", root)
	diff, err := p.extractor.Extract(ctx, root)
	if err != nil {
		log.Debugw("extraction ended run", "error", err)
		return domain.Suggestion{}, err
	}

	if onChanges != nil {
		onChanges(startedAt)
	}

	req := domain.NewCompletionRequest(p.llm.ModelName(), p.prompts.Build(diff.Text))
	log.Debugw("requesting completion", "model", req.Model, "messages", len(req.Messages))

	result, err := p.llm.Complete(ctx, req)
	if err != nil {
		if !errors.Is(err, domain.ErrCompletion) {
			err = fmt.Errorf("%w: %w", domain.ErrCompletion, err)
		}
		return domain.Suggestion{}, err
	}

	log.Debugw("completion received", "bytes", len(result.Text), "elapsed", p.now().Sub(startedAt))

	return domain.Suggestion{
		RunID:      runID,
		DetectedAt: startedAt,
		Text:       strings.TrimSpace(result.Text),
	}, nil
}
