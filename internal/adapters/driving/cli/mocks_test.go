package cli

import (
	"context"
	"testing"

	"github.com/spf13/pflag"

	"github.com/custodia-labs/diffwatch/internal/core/domain"
	"github.com/custodia-labs/diffwatch/internal/core/ports/driving"
)

type mockOrchestrator struct {
	runOnceCalls int
	watchCalls   int
	checkCalls   int
	runOnceErr   error
	watchErr     error
	checkErr     error
}

func (m *mockOrchestrator) RunOnce(_ context.Context) error {
	m.runOnceCalls++
	return m.runOnceErr
}

func (m *mockOrchestrator) Watch(_ context.Context) error {
	m.watchCalls++
	return m.watchErr
}

func (m *mockOrchestrator) Check(_ context.Context) error {
	m.checkCalls++
	return m.checkErr
}

type mockSettingsService struct {
	settings    domain.Settings
	getErr      error
	model       string
	setErr      error
	validateErr error
	validated   bool
}

func (m *mockSettingsService) Get() (domain.Settings, error) {
	return m.settings, m.getErr
}

func (m *mockSettingsService) SetModel(model string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.model = model
	return nil
}

func (m *mockSettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

func (m *mockSettingsService) ValidateCompletionConfig() error {
	m.validated = true
	return m.validateErr
}

type mockInspector struct {
	info domain.RepositoryInfo
	err  error
}

func (m *mockInspector) Inspect(_ string) (domain.RepositoryInfo, error) {
	return m.info, m.err
}

// resetCLI restores flags and injected dependencies after a test.
// Cobra keeps parsed flag values between Execute calls.
func resetCLI(t *testing.T) {
	t.Helper()
	reset := func(fs *pflag.FlagSet) {
		fs.VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	t.Cleanup(func() {
		reset(rootCmd.Flags())
		reset(rootCmd.PersistentFlags())
		rootCmd.SetArgs(nil)
		settingsLoader = nil
		orchestratorFactory = nil
		repositoryInspector = nil
	})
}

// useOrchestrator installs a factory returning orch and recording the runtime.
func useOrchestrator(orch driving.Orchestrator, got *Runtime) {
	SetOrchestratorFactory(func(rt Runtime) (driving.Orchestrator, error) {
		if got != nil {
			*got = rt
		}
		return orch, nil
	})
}
