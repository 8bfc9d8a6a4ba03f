package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/secretsentry/secretsentry-cli/internal/apperr"
	"github.com/secretsentry/secretsentry-cli/internal/config"
	"github.com/secretsentry/secretsentry-cli/internal/ui"
)

var configFormat string

// configCmd manages the small user-scoped settings file that remembers
// the scan mode last used between runs (§6).
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change persisted scan settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <scan_mode>",
	Short: "Set the default scan mode (diff|repo|both)",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigSet,
}

func init() {
	silenceOnError(configCmd)
	configCmd.PersistentFlags().StringVar(&configFormat, "format", "json", "output format: json|yaml")
	configCmd.AddCommand(configShowCmd, configSetCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	path, err := config.DefaultPath()
	if err != nil {
		return err
	}
	settings, err := config.Load(path)
	if err != nil {
		return err
	}

	if configFormat == "yaml" {
		out, err := config.RenderYAML(settings)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.FormatKeyValue("scan_mode", string(settings.ScanMode)))
	fmt.Fprintln(cmd.OutOrStdout(), ui.FormatKeyValue("last_updated", settings.LastUpdated))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	mode := config.ScanMode(args[0])
	switch mode {
	case config.ScanModeDiff, config.ScanModeRepo, config.ScanModeBoth:
	default:
		return apperr.Userf("invalid scan mode %q: want diff, repo or both", args[0])
	}

	path, err := config.DefaultPath()
	if err != nil {
		return err
	}
	settings, err := config.Load(path)
	if err != nil {
		return err
	}
	settings.ScanMode = mode
	settings.LastUpdated = reportTimestamp()

	if err := config.Save(path, settings); err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Success.Render("scan mode set to "+string(mode)))
	}
	return nil
}
