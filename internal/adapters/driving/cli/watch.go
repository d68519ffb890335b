package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/snipcheck/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Revalidate files as they change",
	Long: `Watch a directory tree and validate every supported file when it is
created or written. Results are printed until interrupted.

Hidden directories and dependency folders such as node_modules are ignored.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().Float64("rate", watch.DefaultRate, "maximum checks per second")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if syntaxService == nil {
		return errServicesNotConfigured
	}

	perSecond, err := cmd.Flags().GetFloat64("rate")
	if err != nil {
		return fmt.Errorf("getting rate flag: %w", err)
	}
	if perSecond <= 0 {
		return fmt.Errorf("rate must be positive, got %v", perSecond)
	}

	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	w := watch.New(root, syntaxService, watch.WithRate(perSecond, int(perSecond)+1))
	events, err := w.Watch(cmd.Context())
	if err != nil {
		return err
	}
	defer w.Close() //nolint:errcheck

	cmd.Printf("Watching %s (Ctrl+C to stop)\n", root)
	for event := range events {
		printResult(cmd, event.Path, event.Result)
	}
	return nil
}
