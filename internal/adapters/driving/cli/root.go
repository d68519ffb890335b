// Package cli provides the snipcheck command line interface.
package cli

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/snipcheck/internal/core/ports/driving"
	"github.com/custodia-labs/snipcheck/internal/logger"
)

// version is set at build time.
var version = "dev"

var (
	verbose   bool
	configDir string
)

// Driving ports used by the commands. Set by Execute through the factory,
// or directly by tests.
var (
	syntaxService   driving.SyntaxService
	settingsService driving.SettingsService
	closeServices   func()
)

// errServicesNotConfigured is returned when a command runs without services.
var errServicesNotConfigured = errors.New("syntax service not configured")

// Services holds the driving ports the commands use.
type Services struct {
	Syntax   driving.SyntaxService
	Settings driving.SettingsService
}

// Factory builds services for a config directory. An empty directory means
// the default location. cleanup releases external compilers and may be nil.
type Factory func(configDir string) (services *Services, cleanup func(), err error)

var factory Factory

var rootCmd = &cobra.Command{
	Use:   "snipcheck",
	Short: "Syntax validation for generated code snippets",
	Long: `snipcheck validates source snippets before they are written to disk.

The checker is chosen by the file extension: Python, HTML, JavaScript,
CSS, SCSS and Vue single-file components are understood. Files with any
other extension are accepted as they are.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.snipcheck)")
}

// SetFactory registers the function that builds services on startup.
func SetFactory(f Factory) {
	factory = f
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command and releases services afterwards.
func Execute(ctx context.Context) error {
	defer func() {
		if closeServices != nil {
			closeServices()
			closeServices = nil
		}
	}()
	rootCmd.SetOut(os.Stdout)
	return rootCmd.ExecuteContext(ctx)
}

func initServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	logger.SetOutput(cmd.ErrOrStderr())

	if syntaxService != nil || factory == nil {
		return nil
	}

	services, cleanup, err := factory(configDir)
	if err != nil {
		return err
	}
	syntaxService = services.Syntax
	settingsService = services.Settings
	closeServices = cleanup
	return nil
}
