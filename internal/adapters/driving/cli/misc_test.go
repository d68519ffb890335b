package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtensionsCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand(t, "", "extensions")

	require.NoError(t, err)
	assert.Equal(t, ".css\n.htm\n.html\n.js\n.py\n.scss\n.vue\n", out)
}

func TestWatchCmd_RejectsBadRate(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer func() { _ = watchCmd.Flags().Set("rate", "10") }()

	_, err := executeCommand(t, "", "watch", "--rate", "0", t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate must be positive")
}

func TestWatchCmd_MissingDirectory(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand(t, "", "watch", "/definitely/not/here")

	assert.Error(t, err)
}

func TestMCPServeCmd_RequiresServices(t *testing.T) {
	old := syntaxService
	syntaxService = nil
	defer func() { syntaxService = old }()

	_, err := executeCommand(t, "", "mcp", "serve")

	assert.ErrorIs(t, err, errServicesNotConfigured)
}

func TestRootCmd_FactoryIsUsed(t *testing.T) {
	oldSyntax, oldSettings, oldFactory := syntaxService, settingsService, factory
	defer func() {
		syntaxService, settingsService, factory = oldSyntax, oldSettings, oldFactory
	}()

	restore := setupTestServices()
	built := &Services{Syntax: syntaxService, Settings: settingsService}
	restore()

	syntaxService, settingsService = nil, nil
	var gotDir string
	SetFactory(func(dir string) (*Services, func(), error) {
		gotDir = dir
		return built, nil, nil
	})

	out, err := executeCommand(t, "", "--config-dir", "/tmp/snipcheck-test", "extensions")

	require.NoError(t, err)
	assert.Equal(t, "/tmp/snipcheck-test", gotDir)
	assert.Contains(t, out, ".vue")
}
