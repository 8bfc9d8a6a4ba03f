package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/secretsentry/secretsentry-cli/internal/apperr"
	"github.com/secretsentry/secretsentry-cli/internal/detect"
	"github.com/secretsentry/secretsentry-cli/internal/hooks"
	"github.com/secretsentry/secretsentry-cli/internal/report"
	"github.com/secretsentry/secretsentry-cli/internal/scanner"
	"github.com/secretsentry/secretsentry-cli/internal/selector"
	"github.com/secretsentry/secretsentry-cli/internal/ui"
	"github.com/secretsentry/secretsentry-cli/internal/validation"
	"github.com/secretsentry/secretsentry-cli/internal/vcs"
)

// hookCmd groups the entry points git itself invokes (§4.8, C8): a
// pre-push stage that blocks on the reviewer's decision, and a
// post-commit stage that renders the combined report.
var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Git hook entry points (pre-push, post-commit)",
}

var prePushCmd = &cobra.Command{
	Use:   "pre-push",
	Short: "Scan pending-push changes and record the reviewer's decision",
	RunE:  runPrePushCmd,
}

var postCommitCmd = &cobra.Command{
	Use:   "post-commit",
	Short: "Render the combined report after a commit",
	RunE:  runPostCommitCmd,
}

func init() {
	silenceOnError(hookCmd)
	hookCmd.AddCommand(prePushCmd, postCommitCmd)
}

func hooksDir(repoRoot string) string {
	return filepath.Join(repoRoot, ".git", "hooks")
}

func openClientAt(cmd *cobra.Command) (string, vcs.Client, *scanner.Scanner, error) {
	root, err := os.Getwd()
	if err != nil {
		return "", nil, nil, err
	}
	client, err := vcs.Open(root)
	if err != nil {
		return "", nil, nil, apperr.Userf("not a repository: %s", root)
	}
	log := newLogger(cmd)
	sel := selector.New(client, root, log)
	return root, client, scanner.New(sel, log), nil
}

func runPrePushCmd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	root, client, sc, err := openClientAt(cmd)
	if err != nil {
		return err
	}

	adapter := validation.NewInteractiveAdapter()
	if err := hooks.PrePush(ctx, sc, client, adapter, hooksDir(root)); err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Success.Render("push approved"))
	}
	return nil
}

func runPostCommitCmd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	root, client, sc, err := openClientAt(cmd)
	if err != nil {
		return err
	}

	tracker := ui.NewProgressTracker("Post-commit scan", []string{"Scanning repository", "Rendering report"})
	if !quiet {
		tracker.Start()
	}

	repoFindings, diffFindings, decision, err := hooks.PostCommit(ctx, sc, hooksDir(root))
	if err != nil {
		if !quiet {
			tracker.Complete(err)
		}
		return err
	}
	if !quiet {
		tracker.UpdateStep(0, ui.StatusComplete, fmt.Sprintf("%d finding(s)", len(repoFindings)))
		tracker.UpdateStep(1, ui.StatusRunning, "")
	}

	meta := client.Metadata(ctx)
	out := "secretsentry-report.html"
	if err := report.RenderToFile(out, diffFindings, repoFindings, meta, reportTimestamp(), ""); err != nil {
		if !quiet {
			tracker.Complete(err)
		}
		return err
	}
	if err := report.OpenInBrowser(out); err != nil && !quiet {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Warning.Render("could not open report: "+err.Error()))
	}

	if !quiet {
		tracker.UpdateStep(1, ui.StatusComplete, out)
		tracker.Complete(nil)
	}

	all := make([]detect.Finding, 0, len(repoFindings)+len(diffFindings))
	all = append(all, repoFindings...)
	all = append(all, diffFindings...)

	findingsUI := ui.NewFindingsUI(cmd.ErrOrStderr(), quiet)
	findingsUI.PrintReport(ui.ScanReport{Mode: "post-commit", Findings: all, Decision: &decision})

	return nil
}
