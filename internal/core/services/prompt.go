package services

import (
	"fmt"

	"github.com/custodia-labs/diffwatch/internal/core/domain"
	"github.com/custodia-labs/diffwatch/internal/core/ports/driven"
	"github.com/custodia-labs/diffwatch/internal/logger"
)

const systemTemplate = `
You are a problem solving model working on task_description XML block:
<task_description>%s</task_description>
You will be given a single task with context in the context XML block and the task in the question XML block
Solve the task in question block based on the context in context block.
Generate only the answer, do not generate anything else
`

const userTemplate = `

Now for the real task, solve the task in question block based on the context in context block.
Generate only the solution, do not generate anything else
<context>%s</context>
<question>%s</question>
`

// PromptBuilder turns a diff into the two-message prompt sent to the model.
// The task description and question are fixed for the builder's lifetime.
type PromptBuilder struct {
	task     string
	question string
}

// NewPromptBuilder creates a builder with the given task description and question.
func NewPromptBuilder(task, question string) *PromptBuilder {
	return &PromptBuilder{
		task:     task,
		question: question,
	}
}

// NewPromptBuilderFromStore loads the task and question once from store,
// falling back to the built-in defaults when store is nil or a load fails.
func NewPromptBuilderFromStore(store driven.PromptStore) *PromptBuilder {
	return NewPromptBuilder(
		loadPrompt(store, driven.PromptCommitSystem),
		loadPrompt(store, driven.PromptCommitQuestion),
	)
}

// Build returns exactly two messages: the system task description followed
// by the user message embedding diff as context. Output depends only on diff.
func (b *PromptBuilder) Build(diff string) []domain.PromptMessage {
	return []domain.PromptMessage{
		{Role: domain.RoleSystem, Content: fmt.Sprintf(systemTemplate, b.task)},
		{Role: domain.RoleUser, Content: fmt.Sprintf(userTemplate, diff, b.question)},
	}
}

// loadPrompt loads a prompt from the store, falling back to the default if unavailable.
func loadPrompt(store driven.PromptStore, name string) string {
	fallback := driven.DefaultPrompts[name]
	if store == nil {
		return fallback
	}
	prompt, err := store.Load(name)
	if err != nil || prompt == "" {
		logger.Warn("Prompt %q unavailable, using built-in default: %v", name, err)
		return fallback
	}
	return prompt
}
