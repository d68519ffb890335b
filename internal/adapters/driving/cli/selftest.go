package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/snipcheck/internal/checkers"
	"github.com/custodia-labs/snipcheck/internal/core/domain"
)

// selftestFilename routes the sample through the component checker.
const selftestFilename = "App.vue"

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Validate a built-in sample component",
	Long: `Validate a fixed single-file component and print the result.

Use it to confirm the checkers and the stylesheet compiler are working.`,
	Args: cobra.NoArgs,
	RunE: runSelftest,
}

func init() {
	rootCmd.AddCommand(selftestCmd)
}

func runSelftest(cmd *cobra.Command, _ []string) error {
	if syntaxService == nil {
		return errServicesNotConfigured
	}

	result := syntaxService.Check(cmd.Context(), domain.NewSourceUnit(checkers.SampleComponent, selftestFilename))
	cmd.Println(result.String())

	if !result.OK() {
		return errInvalidSnippets
	}
	return nil
}
