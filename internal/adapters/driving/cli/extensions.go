package cli

import (
	"github.com/spf13/cobra"
)

var extensionsCmd = &cobra.Command{
	Use:   "extensions",
	Short: "List file extensions that have a checker",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if syntaxService == nil {
			return errServicesNotConfigured
		}
		for _, ext := range syntaxService.SupportedExtensions() {
			cmd.Printf(".%s\n", ext)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(extensionsCmd)
}
