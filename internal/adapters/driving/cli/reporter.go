package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/custodia-labs/diffwatch/internal/core/domain"
	"github.com/custodia-labs/diffwatch/internal/core/ports/driven"
	"github.com/custodia-labs/diffwatch/internal/logger"
)

// Ensure ConsoleReporter implements the interface.
var _ driven.Reporter = (*ConsoleReporter)(nil)

const (
	bannerWidth      = 60
	detectedLayout   = "2006-01-02 15:04:05"
	generatingLabel  = "Generating commit message suggestion"
	noChangesLabel   = "No changes found"
	diffFailureLabel = "Error running git diff"
)

// reporterStyles holds the lipgloss styles used for console output.
type reporterStyles struct {
	rule       lipgloss.Style
	heading    lipgloss.Style
	suggestion lipgloss.Style
	muted      lipgloss.Style
	err        lipgloss.Style
}

func newReporterStyles(r *lipgloss.Renderer) reporterStyles {
	return reporterStyles{
		rule:       r.NewStyle().Foreground(lipgloss.Color("#45475A")),
		heading:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		suggestion: r.NewStyle().Foreground(lipgloss.Color("#A6E3A1")),
		muted:      r.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		err:        r.NewStyle().Foreground(lipgloss.Color("#F38BA8")),
	}
}

// ConsoleReporter prints pipeline outcomes to the terminal.
// Output is styled only when the destination is a terminal.
type ConsoleReporter struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
	colour bool
	styles reporterStyles
}

// NewConsoleReporter creates a reporter writing results to out and failures to errOut.
func NewConsoleReporter(out, errOut io.Writer) *ConsoleReporter {
	return &ConsoleReporter{
		out:    out,
		errOut: errOut,
		colour: isTerminal(out),
		styles: newReporterStyles(lipgloss.NewRenderer(out)),
	}
}

// ChangesDetected prints the banner that precedes a suggestion.
func (r *ConsoleReporter) ChangesDetected(at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rule := r.paint(r.styles.rule, strings.Repeat("=", bannerWidth))
	fmt.Fprintf(r.out, "\n%s\n", rule)
	fmt.Fprintf(r.out, "%s\n\n", r.paint(r.styles.heading, "Changes detected at "+at.Format(detectedLayout)))
	fmt.Fprintf(r.out, "%s\n", r.paint(r.styles.muted, generatingLabel))
	fmt.Fprintf(r.out, "%s\n\n\n", rule)
}

// Suggestion prints the generated commit message.
func (r *ConsoleReporter) Suggestion(s domain.Suggestion) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fmt.Fprintln(r.out, r.paint(r.styles.suggestion, s.Text))
	logger.Debug("Run %s finished in %s", s.RunID, time.Since(s.DetectedAt).Round(time.Millisecond))
}

// NoChanges reports a clean working tree.
func (r *ConsoleReporter) NoChanges() {
	r.mu.Lock()
	defer r.mu.Unlock()

	fmt.Fprintln(r.out, noChangesLabel)
}

// Failure reports a failed run on the error stream.
func (r *ConsoleReporter) Failure(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var cmdErr *domain.DiffCommandError
	if errors.As(err, &cmdErr) {
		fmt.Fprintln(r.errOut, r.paint(r.styles.err, fmt.Sprintf("%s: %s", diffFailureLabel, strings.TrimSpace(cmdErr.Stderr))))
		return
	}
	fmt.Fprintln(r.errOut, r.paint(r.styles.err, fmt.Sprintf("Error: %v", err)))
}

// paint applies style only when writing to a terminal.
func (r *ConsoleReporter) paint(style lipgloss.Style, s string) string {
	if !r.colour {
		return s
	}
	return style.Render(s)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
