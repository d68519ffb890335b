package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// errSettingsNotConfigured is returned when config commands run without a settings service.
var errSettingsNotConfigured = errors.New("settings service not configured")

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage settings",
	Long: `View and change snipcheck settings.

Settings are stored in config.toml inside the configuration directory.
List values are given as comma separated items.`,
	RunE: runConfigList,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Show one setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change one setting",
	Long: `Change one setting.

Examples:
  snipcheck config set checkers.sass.binary /usr/local/bin/sass
  snipcheck config set checkers.html.ignore_categories tag,attribute
  snipcheck config set pipeline.frontend_feedback true`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	values, err := settingValues()
	if err != nil {
		return err
	}

	for _, key := range settingsService.Keys() {
		cmd.Printf("%s = %s\n", key, values[key])
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	values, err := settingValues()
	if err != nil {
		return err
	}

	value, ok := values[args[0]]
	if !ok {
		return fmt.Errorf("unknown key %q", args[0])
	}
	cmd.Println(value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return err
	}
	cmd.Printf("%s updated\n", args[0])
	return nil
}

// settingValues renders the resolved settings keyed by setting key.
func settingValues() (map[string]string, error) {
	if settingsService == nil {
		return nil, errSettingsNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	categories := make([]string, len(settings.HTML.IgnoreCategories))
	for i, c := range settings.HTML.IgnoreCategories {
		categories[i] = c.String()
	}

	return map[string]string{
		"checkers.sass.binary":             settings.Sass.Binary,
		"checkers.sass.timeout_seconds":    fmt.Sprint(settings.Sass.TimeoutSeconds),
		"checkers.html.ignore_categories":  strings.Join(categories, ","),
		"checkers.composite.balanced_tags": strings.Join(settings.Composite.BalancedTags, ","),
		"check.concurrency":                fmt.Sprint(settings.Check.Concurrency),
		"pipeline.frontend_feedback":       fmt.Sprint(settings.Pipeline.FrontendFeedback),
	}, nil
}
