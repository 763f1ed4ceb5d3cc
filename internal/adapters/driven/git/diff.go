package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/custodia-labs/diffwatch/internal/core/domain"
	"github.com/custodia-labs/diffwatch/internal/core/ports/driven"
)

// Ensure DiffSource implements the interface.
var _ driven.DiffSource = (*DiffSource)(nil)

// defaultBinary is the git executable looked up on PATH.
const defaultBinary = "git"

// diffArgs compares the working tree with HEAD. External diff drivers are
// disabled and context is zero lines so only changed lines are sent.
var diffArgs = []string{"--no-pager", "diff", "--no-ext-diff", "--no-color", "-U0", "HEAD"}

// DiffSource runs `git diff` as a subprocess.
type DiffSource struct {
	binary string
}

// NewDiffSource creates a diff source using the git binary on PATH.
func NewDiffSource() *DiffSource {
	return &DiffSource{binary: defaultBinary}
}

// NewDiffSourceWithBinary creates a diff source using a specific git executable.
func NewDiffSourceWithBinary(binary string) *DiffSource {
	if binary == "" {
		binary = defaultBinary
	}
	return &DiffSource{binary: binary}
}

// Diff runs the diff command in root and returns its standard output.
// Both output streams are captured; the process is reaped on every path.
func (s *DiffSource) Diff(ctx context.Context, root string) (domain.RawDiff, error) {
	cmd := exec.CommandContext(ctx, s.binary, diffArgs...)
	cmd.Dir = root

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return domain.RawDiff{}, &domain.DiffCommandError{Stderr: stderr.String(), Err: err}
		}
		return domain.RawDiff{}, fmt.Errorf("%w: run %s: %w", domain.ErrDiffCommand, s.binary, err)
	}

	return domain.RawDiff{Text: stdout.String()}, nil
}
