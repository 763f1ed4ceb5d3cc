package driven

import (
	"time"

	"github.com/custodia-labs/diffwatch/internal/core/domain"
)

// Reporter presents pipeline outcomes to the user.
type Reporter interface {
	// ChangesDetected announces that a non-empty diff is being analysed.
	ChangesDetected(at time.Time)

	// Suggestion presents a generated commit message.
	Suggestion(s domain.Suggestion)

	// NoChanges reports that the working tree matches HEAD.
	NoChanges()

	// Failure reports a recoverable error for the current run.
	Failure(err error)
}
