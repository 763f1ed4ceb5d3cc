package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRepositoryConfig(t *testing.T) {
	t.Run("absolute existing path", func(t *testing.T) {
		dir := t.TempDir()

		repo, err := NewRepositoryConfig(dir)

		require.NoError(t, err)
		assert.Equal(t, dir, repo.RootPath())
	})

	t.Run("relative path is made absolute", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "proj"), 0755))
		chdir(t, dir)

		repo, err := NewRepositoryConfig("proj")

		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(repo.RootPath()))
		assert.Equal(t, "proj", filepath.Base(repo.RootPath()))
	})

	t.Run("tilde expands to home", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		require.NoError(t, os.Mkdir(filepath.Join(home, "src"), 0755))

		repo, err := NewRepositoryConfig("~/src")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "src"), repo.RootPath())

		repo, err = NewRepositoryConfig("~")
		require.NoError(t, err)
		assert.Equal(t, home, repo.RootPath())
	})

	t.Run("missing path", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "nope")

		_, err := NewRepositoryConfig(missing)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrRepositoryNotFound)
		assert.Contains(t, err.Error(), "repository path does not exist: "+missing)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := NewRepositoryConfig("  ")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("tilde user form is not expanded", func(t *testing.T) {
		chdir(t, t.TempDir())

		_, err := NewRepositoryConfig("~someone/src")
		assert.ErrorIs(t, err, ErrRepositoryNotFound)
	})
}

func TestRawDiff_IsEmpty(t *testing.T) {
	assert.True(t, RawDiff{}.IsEmpty())
	assert.True(t, RawDiff{Text: " \n\t"}.IsEmpty())
	assert.False(t, RawDiff{Text: "+a"}.IsEmpty())
}

func TestNewCompletionRequest(t *testing.T) {
	msgs := []PromptMessage{{Role: RoleSystem, Content: "s"}, {Role: RoleUser, Content: "u"}}

	req := NewCompletionRequest("m", msgs)

	assert.Equal(t, "m", req.Model)
	assert.Equal(t, msgs, req.Messages)
	assert.Zero(t, req.Temperature)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })
}
