package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/snipcheck/internal/core/domain"
)

func TestConfigCmd_List(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand(t, "", "config", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "checkers.sass.binary = sass\n")
	assert.Contains(t, out, "checkers.sass.timeout_seconds = 10\n")
	assert.Contains(t, out, "checkers.html.ignore_categories = \n")
	assert.Contains(t, out, "checkers.composite.balanced_tags = div,p,span\n")
	assert.Contains(t, out, "pipeline.frontend_feedback = false\n")
}

func TestConfigCmd_SetThenGet(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand(t, "", "config", "set", "pipeline.frontend_feedback", "true")
	require.NoError(t, err)
	assert.Contains(t, out, "pipeline.frontend_feedback updated")

	out, err = executeCommand(t, "", "config", "get", "pipeline.frontend_feedback")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestConfigCmd_Errors(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	t.Run("set invalid value", func(t *testing.T) {
		_, err := executeCommand(t, "", "config", "set", "check.concurrency", "zero")
		assert.ErrorIs(t, err, domain.ErrInvalidSetting)
	})

	t.Run("get unknown key", func(t *testing.T) {
		_, err := executeCommand(t, "", "config", "get", "checkers.python.version")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown key")
	})

	t.Run("set requires two args", func(t *testing.T) {
		_, err := executeCommand(t, "", "config", "set", "check.concurrency")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "accepts 2 arg(s)")
	})
}

func TestConfigCmd_NoSettingsService(t *testing.T) {
	old := settingsService
	settingsService = nil
	defer func() { settingsService = old }()

	_, err := executeCommand(t, "", "config", "list")

	assert.ErrorIs(t, err, errSettingsNotConfigured)
}
