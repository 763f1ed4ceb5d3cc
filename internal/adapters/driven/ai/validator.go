package ai

import (
	"github.com/custodia-labs/diffwatch/internal/core/domain"
	"github.com/custodia-labs/diffwatch/internal/core/ports/driven"
)

// Ensure Validator implements the interface.
var _ driven.CompletionValidator = (*Validator)(nil)

// Validator pings the completion service selected by settings.
type Validator struct{}

// NewValidator creates a new completion validator.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCompletion builds a throwaway service from settings and pings it.
func (v *Validator) ValidateCompletion(settings domain.Settings) error {
	return ValidateCompletionConfig(settings)
}
