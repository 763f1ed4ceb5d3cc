package domain

import "time"

// Suggestion is the outcome of one successful pipeline run.
type Suggestion struct {
	// RunID correlates log lines of a single run.
	RunID string

	// DetectedAt is when the run was triggered.
	DetectedAt time.Time

	// Text is the generated commit message draft.
	Text string
}
