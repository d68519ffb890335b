package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/snipcheck/internal/adapters/driven/esbuild"
	"github.com/custodia-labs/snipcheck/internal/adapters/driven/libsass"
	"github.com/custodia-labs/snipcheck/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/snipcheck/internal/checkers"
	"github.com/custodia-labs/snipcheck/internal/core/domain"
	"github.com/custodia-labs/snipcheck/internal/core/services"
)

// setupTestServices installs services backed by in-process compilers and an
// in-memory config store. The returned function restores the previous state.
func setupTestServices() func() {
	oldSyntax, oldSettings := syntaxService, settingsService

	registry := services.NewCheckerRegistry(checkers.Builtin(
		domain.DefaultSettings(),
		esbuild.NewCSSCompiler(),
		libsass.New(),
	)...)
	syntaxService = services.NewSyntaxService(registry, 2)
	settingsService = services.NewSettingsService(memory.NewConfigStore())

	return func() {
		syntaxService, settingsService = oldSyntax, oldSettings
	}
}

// executeCommand runs the root command with args and returns what it wrote
// to standard output. Errors and log lines go to a separate buffer.
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetIn(bytes.NewBufferString(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		resetFlags()
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores flag defaults between runs of the shared root command.
func resetFlags() {
	_ = checkCmd.Flags().Set("stdin", "false")
	_ = checkCmd.Flags().Set("filename", "")
	_ = checkCmd.Flags().Set("format", formatText)
	configDir = ""
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}
