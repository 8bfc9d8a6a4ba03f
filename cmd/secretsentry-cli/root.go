package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/secretsentry/secretsentry-cli/internal/apperr"
	"github.com/secretsentry/secretsentry-cli/internal/config"
	"github.com/secretsentry/secretsentry-cli/internal/logging"
	"github.com/secretsentry/secretsentry-cli/internal/scanner"
	"github.com/secretsentry/secretsentry-cli/internal/selector"
	"github.com/secretsentry/secretsentry-cli/internal/ui"
	"github.com/secretsentry/secretsentry-cli/internal/vcs"
)

// rootCmd represents the base command. Its RunE implements the literal
// hook-script command-line surface (§6): no args is auto-mode, --diff
// scans only the pending diff, a bare <file> argument scans one file.
var rootCmd = &cobra.Command{
	Use:   "secretsentry-cli [file]",
	Short: "Detect secrets before they leave your repository",
	Long:  longDescription,

	Args: cobra.MaximumNArgs(1),

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.Init(noColor)
		initUIAndBanner(cmd)
	},

	RunE: runAuto,
}

var (
	cfgFile  string
	noColor  bool
	quiet    bool
	diffOnly bool
	version  string
)

// SetVersion sets the version for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// GetRootCmd returns the root command for use with fang
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	silenceOnError(rootCmd)
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.secretsentry-cli.yaml or ./config/defaults.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress output, print findings only")
	rootCmd.Flags().BoolVar(&diffOnly, "diff", false, "scan pending diff only (auto-mode default when no args)")

	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		initUIAndBanner(cmd)
		defaultHelp(cmd, args)
	})

	rootCmd.AddCommand(scanCmd, diffCmd, hookCmd, configCmd)
}

func initConfig() {
	err := config.Init(cfgFile, func(path string) {
		msg := ui.Dim.Render("Using config file: ") + ui.Secondary.Render(path)
		fmt.Fprintln(os.Stderr, msg)
	})
	cobra.CheckErr(err)
}

const longDescription = "Layered secret scanner for git workflows: pattern, assignment and entropy detection across a repository or a pending diff, with an HTML report and pre-push/post-commit hook integration."

func initUIAndBanner(cmd *cobra.Command) {
	if cmd == nil {
		return
	}
	cmd.Root().Long = ui.RenderGradientBanner(ui.BannerASCII) + "\n" + longDescription
}

// runAuto implements the no-subcommand entry point. Per §6: no args is
// auto-mode (scan changes if inside a repo with an upstream, else scan
// the whole repository); --diff forces diff-only; a single positional
// argument scans just that file.
func runAuto(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if len(args) == 1 {
		return scanSingleFile(cmd, args[0])
	}

	root, err := os.Getwd()
	if err != nil {
		return err
	}

	client, err := vcs.Open(root)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "not inside a repository; nothing to scan")
		return apperr.User("no repository in scope for auto-mode")
	}

	log := newLogger(cmd)
	sel := selector.New(client, root, log)
	sc := scanner.New(sel, log)

	if diffOnly {
		return runDiffScan(ctx, cmd, sc, client)
	}

	_, err = client.ListPendingPush(ctx)
	if err == nil {
		return runDiffScan(ctx, cmd, sc, client)
	}
	return runRepoScan(ctx, cmd, sc, client)
}

func scanSingleFile(cmd *cobra.Command, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return apperr.Userf("read %s: %v", path, err)
	}

	sc := scanner.New(nil, newLogger(cmd))
	findings := sc.ScanContent(string(raw), path)

	return emitFindings(cmd, findings, "file")
}

func newLogger(cmd *cobra.Command) *logging.Logger {
	if quiet {
		return &logging.Logger{}
	}
	return &logging.Logger{Writer: cmd.ErrOrStderr(), PrefixText: "scan:", PrefixColor: ui.FgCyan}
}
