package domain

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MetadataDirName is the version-control metadata directory.
const MetadataDirName = ".git"

// RepositoryConfig identifies the working tree being watched.
// It is validated once at startup and immutable afterwards.
type RepositoryConfig struct {
	rootPath string
}

// NewRepositoryConfig expands a leading "~", resolves path to an absolute
// path and verifies it exists. A missing path yields ErrRepositoryNotFound.
func NewRepositoryConfig(path string) (RepositoryConfig, error) {
	if strings.TrimSpace(path) == "" {
		return RepositoryConfig{}, fmt.Errorf("%w: repository path is required", ErrInvalidInput)
	}

	expanded, err := expandHome(path)
	if err != nil {
		return RepositoryConfig{}, err
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return RepositoryConfig{}, fmt.Errorf("resolve repository path: %w", err)
	}

	if _, err := os.Stat(abs); err != nil {
		if os.IsNotExist(err) {
			return RepositoryConfig{}, fmt.Errorf("%w: repository path does not exist: %s", ErrRepositoryNotFound, abs)
		}
		return RepositoryConfig{}, fmt.Errorf("stat repository path: %w", err)
	}

	return RepositoryConfig{rootPath: abs}, nil
}

// RootPath returns the absolute repository root.
func (c RepositoryConfig) RootPath() string {
	return c.rootPath
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// RepositoryInfo describes the checked-out state of a repository.
// It is informational only.
type RepositoryInfo struct {
	// Branch is the short branch name, or empty for a detached HEAD.
	Branch string

	// Head is the abbreviated commit hash of HEAD.
	Head string
}
