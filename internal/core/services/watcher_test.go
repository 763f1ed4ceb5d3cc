package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/diffwatch/internal/core/domain"
)

func fileEvent(path string) domain.ChangeEvent {
	return domain.ChangeEvent{Path: path, Op: domain.ChangeOpWrite}
}

// steppingClock returns a clock advancing by step on every call.
func steppingClock(start time.Time, step time.Duration) func() time.Time {
	now := start
	return func() time.Time {
		t := now
		now = now.Add(step)
		return t
	}
}

func TestRepositoryWatcher_HandleEvent_Filters(t *testing.T) {
	tests := []struct {
		name string
		ev   domain.ChangeEvent
		want bool
	}{
		{name: "regular file", ev: fileEvent("/repo/main.go"), want: true},
		{name: "directory", ev: domain.ChangeEvent{Path: "/repo/pkg", IsDirectory: true}, want: false},
		{name: "metadata file", ev: fileEvent("/repo/.git/index"), want: false},
		{name: "metadata lock file", ev: fileEvent("/repo/.git/index.lock"), want: false},
		{name: "gitignore matches substring", ev: fileEvent("/repo/.gitignore"), want: false},
		{name: "nested path containing name", ev: fileEvent("/repo/vendor/.github/ci.yml"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyser := &mockAnalyser{}
			w := NewRepositoryWatcher("/repo", NewDebounceGate(0), analyser, &mockFileWatcher{})

			got := w.HandleEvent(context.Background(), tt.ev)

			assert.Equal(t, tt.want, got)
			if tt.want {
				assert.Equal(t, 1, analyser.runCount())
			} else {
				assert.Zero(t, analyser.runCount())
			}
		})
	}
}

func TestRepositoryWatcher_FilteredEventsDoNotConsumeGate(t *testing.T) {
	analyser := &mockAnalyser{}
	w := NewRepositoryWatcher("/repo", NewDebounceGate(time.Hour), analyser, &mockFileWatcher{})

	assert.False(t, w.HandleEvent(context.Background(), fileEvent("/repo/.git/HEAD")))
	assert.True(t, w.HandleEvent(context.Background(), fileEvent("/repo/a.go")))
}

func TestRepositoryWatcher_Debounce(t *testing.T) {
	analyser := &mockAnalyser{}
	w := NewRepositoryWatcher("/repo", NewDebounceGate(10*time.Second), analyser, &mockFileWatcher{})
	w.SetClock(steppingClock(time.Unix(1000, 0), time.Second))

	for i := 0; i < 25; i++ {
		w.HandleEvent(context.Background(), fileEvent("/repo/a.go"))
	}

	// Triggers at t=0s, 10s and 20s.
	assert.Equal(t, 3, analyser.runCount())
}

func TestRepositoryWatcher_FailureDoesNotStopWatching(t *testing.T) {
	analyser := &mockAnalyser{errs: []error{&domain.DiffCommandError{Stderr: "boom"}, nil}}
	w := NewRepositoryWatcher("/repo", NewDebounceGate(time.Second), analyser, &mockFileWatcher{})
	w.SetClock(steppingClock(time.Unix(1000, 0), 2*time.Second))

	assert.True(t, w.HandleEvent(context.Background(), fileEvent("/repo/a.go")))
	assert.True(t, w.HandleEvent(context.Background(), fileEvent("/repo/a.go")))
	assert.Equal(t, 2, analyser.runCount())
}

func TestRepositoryWatcher_InFlightRunSurvivesCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	analyser := &mockAnalyser{onRun: cancel}
	w := NewRepositoryWatcher("/repo", NewDebounceGate(0), analyser, &mockFileWatcher{})

	w.HandleEvent(ctx, fileEvent("/repo/a.go"))

	require.Len(t, analyser.ctxErrs, 1)
	assert.NoError(t, analyser.ctxErrs[0])
	assert.Error(t, ctx.Err())
}

func TestRepositoryWatcher_Run(t *testing.T) {
	t.Run("delivers events until cancelled", func(t *testing.T) {
		analyser := &mockAnalyser{}
		fw := &mockFileWatcher{events: []domain.ChangeEvent{
			fileEvent("/repo/a.go"),
			{Path: "/repo/dir", IsDirectory: true},
			fileEvent("/repo/.git/index"),
		}}
		w := NewRepositoryWatcher("/repo", NewDebounceGate(0), analyser, fw)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		assert.NoError(t, w.Run(ctx))
		assert.Equal(t, "/repo", fw.root)
		assert.Equal(t, 1, analyser.runCount())
	})

	t.Run("propagates watcher error", func(t *testing.T) {
		fw := &mockFileWatcher{err: errors.New("inotify limit")}
		w := NewRepositoryWatcher("/repo", NewDebounceGate(0), &mockAnalyser{}, fw)

		assert.Error(t, w.Run(context.Background()))
	})
}
