package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/snipcheck/internal/core/domain"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
)

// errInvalidSnippets signals a completed check that rejected input.
// The caller maps it to a non-zero exit status.
var errInvalidSnippets = errors.New("invalid syntax found")

// ErrInvalidSnippets reports whether err means at least one snippet was rejected.
func ErrInvalidSnippets(err error) bool {
	return errors.Is(err, errInvalidSnippets)
}

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

var checkCmd = &cobra.Command{
	Use:   "check [path...]",
	Short: "Validate files or piped content",
	Long: `Validate files and directories, or a snippet read from standard input.

Directories are walked recursively; only files with a registered extension
are checked. Files named explicitly are always checked, and files with an
unknown extension are accepted.

Examples:
  snipcheck check src/
  snipcheck check --format json main.py App.vue
  cat App.vue | snipcheck check --stdin --filename App.vue`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Bool("stdin", false, "read a single snippet from standard input")
	checkCmd.Flags().String("filename", "", "filename used to pick the checker for --stdin")
	checkCmd.Flags().StringP("format", "f", formatText, "output format: text or json")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	if syntaxService == nil {
		return errServicesNotConfigured
	}

	stdin, err := cmd.Flags().GetBool("stdin")
	if err != nil {
		return fmt.Errorf("getting stdin flag: %w", err)
	}
	filename, err := cmd.Flags().GetString("filename")
	if err != nil {
		return fmt.Errorf("getting filename flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("getting format flag: %w", err)
	}
	if format != formatText && format != formatJSON {
		return fmt.Errorf("unknown format %q: %w", format, domain.ErrInvalidInput)
	}

	if stdin {
		if len(args) > 0 {
			return fmt.Errorf("--stdin takes no paths: %w", domain.ErrInvalidInput)
		}
		if filename == "" {
			return fmt.Errorf("--stdin requires --filename: %w", domain.ErrInvalidInput)
		}
		return checkStdin(cmd, filename, format)
	}

	if len(args) == 0 {
		return fmt.Errorf("no paths given: %w", domain.ErrInvalidInput)
	}
	return checkPaths(cmd, args, format)
}

func checkStdin(cmd *cobra.Command, filename, format string) error {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	result := syntaxService.Check(cmd.Context(), domain.NewSourceUnit(string(data), filename))

	if format == formatJSON {
		if err := writeJSON(cmd.OutOrStdout(), domain.FileResult{Path: filename, Result: result}); err != nil {
			return err
		}
	} else {
		printResult(cmd, filename, result)
	}

	if !result.OK() {
		return errInvalidSnippets
	}
	return nil
}

func checkPaths(cmd *cobra.Command, paths []string, format string) error {
	report, err := syntaxService.CheckPaths(cmd.Context(), paths)
	if err != nil {
		return err
	}

	if format == formatJSON {
		if err := writeJSON(cmd.OutOrStdout(), report); err != nil {
			return err
		}
	} else {
		for _, fr := range report.Results {
			printResult(cmd, fr.Path, fr.Result)
		}
		cmd.Println()
		cmd.Printf("%d checked, %d invalid, %d skipped (%s)\n",
			report.Checked(), report.InvalidCount, report.Skipped, report.Duration.Round(time.Millisecond))
	}

	if !report.OK() {
		return fmt.Errorf("%d of %d files: %w", report.InvalidCount, report.Checked(), errInvalidSnippets)
	}
	return nil
}

func printResult(cmd *cobra.Command, path string, result domain.CheckResult) {
	if result.OK() {
		cmd.Printf("%s %s\n", okStyle.Render("ok  "), path)
		return
	}
	cmd.Printf("%s %s: %s\n", failStyle.Render("FAIL"), path, result.String())
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}
