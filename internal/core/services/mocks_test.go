package services

import (
	"context"
	"sync"
	"time"

	"github.com/custodia-labs/diffwatch/internal/core/domain"
	"github.com/custodia-labs/diffwatch/internal/core/ports/driven"
)

type mockDiffSource struct {
	mu    sync.Mutex
	diffs []domain.RawDiff
	errs  []error
	calls int
}

// Diff returns the next queued result; the last one repeats.
func (m *mockDiffSource) Diff(_ context.Context, _ string) (domain.RawDiff, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.calls
	m.calls++
	var (
		diff domain.RawDiff
		err  error
	)
	if len(m.diffs) > 0 {
		diff = m.diffs[min(i, len(m.diffs)-1)]
	}
	if len(m.errs) > 0 {
		err = m.errs[min(i, len(m.errs)-1)]
	}
	return diff, err
}

type mockCompletionService struct {
	mu       sync.Mutex
	text     string
	err      error
	pingErr  error
	requests []domain.CompletionRequest
}

func (m *mockCompletionService) Complete(_ context.Context, req domain.CompletionRequest) (domain.CompletionResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)
	if m.err != nil {
		return domain.CompletionResult{}, m.err
	}
	return domain.CompletionResult{Text: m.text}, nil
}

func (m *mockCompletionService) ModelName() string { return "test-model" }

func (m *mockCompletionService) Ping(_ context.Context) error { return m.pingErr }

func (m *mockCompletionService) Close() error { return nil }

type mockReporter struct {
	mu          sync.Mutex
	detected    []time.Time
	suggestions []domain.Suggestion
	noChanges   int
	failures    []error
}

func (m *mockReporter) ChangesDetected(at time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.detected = append(m.detected, at)
}

func (m *mockReporter) Suggestion(s domain.Suggestion) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.suggestions = append(m.suggestions, s)
}

func (m *mockReporter) NoChanges() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.noChanges++
}

func (m *mockReporter) Failure(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures = append(m.failures, err)
}

type mockPromptStore struct {
	prompts map[string]string
	err     error
}

func (m *mockPromptStore) Load(name string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.prompts[name], nil
}

func (m *mockPromptStore) Reload() {}

// mockAnalyser records Run calls and returns queued errors.
type mockAnalyser struct {
	mu       sync.Mutex
	runs     int
	errs     []error
	ctxErrs  []error
	onRun    func()
	analysed domain.Suggestion
}

func (m *mockAnalyser) Analyse(_ context.Context, _ string) (domain.Suggestion, error) {
	return m.analysed, nil
}

func (m *mockAnalyser) Run(ctx context.Context, _ string) error {
	m.mu.Lock()
	i := m.runs
	m.runs++
	m.ctxErrs = append(m.ctxErrs, ctx.Err())
	onRun := m.onRun
	m.mu.Unlock()

	if onRun != nil {
		onRun()
	}
	if i < len(m.errs) {
		return m.errs[i]
	}
	return nil
}

func (m *mockAnalyser) runCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.runs
}

// mockFileWatcher delivers a fixed list of events, then blocks until ctx is done.
type mockFileWatcher struct {
	events []domain.ChangeEvent
	err    error
	root   string
}

func (m *mockFileWatcher) Watch(ctx context.Context, root string, handle driven.EventHandler) error {
	m.root = root
	if m.err != nil {
		return m.err
	}
	for _, ev := range m.events {
		handle(ctx, ev)
	}
	<-ctx.Done()
	return nil
}

// identityNormaliser returns its input unchanged.
type identityNormaliser struct{}

func (identityNormaliser) Normalise(s string) string { return s }

type mockValidator struct {
	got domain.Settings
	err error
}

func (m *mockValidator) ValidateCompletion(settings domain.Settings) error {
	m.got = settings
	return m.err
}
