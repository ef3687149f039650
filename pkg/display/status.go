package display

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/lipgloss"
)

// One-line status output for sequential command progress. The markers
// keep output plain and pipeable; lipgloss only colors them on a TTY.

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func Okf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", okStyle.Render("✅"), fmt.Sprintf(format, args...))
}

func Warnf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", warnStyle.Render("⚠️"), fmt.Sprintf(format, args...))
}

func Failf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", failStyle.Render("❌"), fmt.Sprintf(format, args...))
}

// NewSpinner returns a started spinner prefixed to message. Callers must
// Stop() it before printing anything else. Spinners write to stderr so
// piped stdout stays clean.
func NewSpinner(message string) *spinner.Spinner {
	s := spinner.New(
		spinner.CharSets[14],
		100*time.Millisecond,
		spinner.WithWriter(os.Stderr),
	)
	s.Suffix = " " + message
	s.Start()
	return s
}
