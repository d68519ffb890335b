package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/snipcheck/internal/core/domain"
)

func TestCheckCmd_Use(t *testing.T) {
	assert.Equal(t, "check [path...]", checkCmd.Use)
}

func TestCheckCmd_ValidFiles(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "main.py"), "def f(x):\n    return x\n")
	writeTestFile(t, filepath.Join(dir, "style.css"), ".a { color: red; }\n")
	writeTestFile(t, filepath.Join(dir, "README.md"), "# not checked\n")

	out, err := executeCommand(t, "", "check", dir)

	require.NoError(t, err)
	assert.Contains(t, out, "main.py")
	assert.Contains(t, out, "style.css")
	assert.NotContains(t, out, "README.md")
	assert.Contains(t, out, "2 checked, 0 invalid, 1 skipped")
}

func TestCheckCmd_InvalidFile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	dir := t.TempDir()
	vue := filepath.Join(dir, "App.vue")
	writeTestFile(t, vue, "<template><div>hi</div></template>\n")

	out, err := executeCommand(t, "", "check", vue)

	require.Error(t, err)
	assert.True(t, ErrInvalidSnippets(err))
	assert.Contains(t, out, "Script part has no valid open/closing tags.")
	assert.Contains(t, out, "1 checked, 1 invalid")
}

func TestCheckCmd_JSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "app.js"), "export const a = 1;\n")

	out, err := executeCommand(t, "", "check", "--format", "json", dir)

	require.NoError(t, err)
	var report domain.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.NotEmpty(t, report.ID)
	require.Len(t, report.Results, 1)
	assert.True(t, report.Results[0].Result.Valid)
}

func TestCheckCmd_Stdin(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	t.Run("valid snippet", func(t *testing.T) {
		out, err := executeCommand(t, "x = 1\n", "check", "--stdin", "--filename", "main.py")

		require.NoError(t, err)
		assert.Contains(t, out, "main.py")
	})

	t.Run("unknown extension passes through", func(t *testing.T) {
		out, err := executeCommand(t, "not real syntax {{{", "check", "--stdin", "--filename", "notes.txt")

		require.NoError(t, err)
		assert.Contains(t, out, "notes.txt")
	})

	t.Run("invalid snippet as json", func(t *testing.T) {
		out, err := executeCommand(t, "<template></template><script>{</script>", "check",
			"--stdin", "--filename", "App.vue", "--format", "json")

		require.Error(t, err)
		assert.True(t, ErrInvalidSnippets(err))
		var fr domain.FileResult
		require.NoError(t, json.Unmarshal([]byte(out), &fr))
		assert.Equal(t, "App.vue", fr.Path)
		assert.Equal(t, domain.KindStructural, fr.Result.Kind)
		assert.Equal(t, "Invalid syntax, mismatch of { and }", fr.Result.Message)
	})
}

func TestCheckCmd_ArgumentErrors(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	tests := []struct {
		name string
		args []string
	}{
		{"no paths", []string{"check"}},
		{"stdin without filename", []string{"check", "--stdin"}},
		{"stdin with paths", []string{"check", "--stdin", "--filename", "a.py", "a.py"}},
		{"unknown format", []string{"check", "--format", "xml", "."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, "", tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCheckCmd_MissingPath(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand(t, "", "check", filepath.Join(t.TempDir(), "missing.py"))

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCheckCmd_NoServices(t *testing.T) {
	old := syntaxService
	syntaxService = nil
	defer func() { syntaxService = old }()

	_, err := executeCommand(t, "", "check", ".")

	assert.ErrorIs(t, err, errServicesNotConfigured)
}
