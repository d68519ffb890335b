// Package logger provides verbose logging for snipcheck.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr to explain which checker handled a snippet and
// which segments were skipped. Warnings are always printed.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	colour            = isTerminal(os.Stderr)
)

var (
	debugStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	sectionStyle = lipgloss.NewStyle().Bold(true)
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Colour is only used when w is a terminal.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	colour = isTerminal(w)
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	logf(true, debugStyle, "[DEBUG] ", format, args...)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	logf(true, infoStyle, "[INFO] ", format, args...)
}

// Warn prints a warning message regardless of verbose mode.
func Warn(format string, args ...any) {
	logf(false, warnStyle, "[WARN] ", format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.Lock()
	defer mu.Unlock()
	if !verbose {
		return
	}
	header := fmt.Sprintf("=== %s ===", name)
	if colour {
		header = sectionStyle.Render(header)
	}
	fmt.Fprintf(output, "\n%s\n", header)
}

// logf holds the write lock so concurrent messages do not interleave.
func logf(onlyVerbose bool, style lipgloss.Style, prefix, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if onlyVerbose && !verbose {
		return
	}
	if colour {
		prefix = style.Render(prefix)
	}
	fmt.Fprintf(output, prefix+format+"\n", args...)
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
