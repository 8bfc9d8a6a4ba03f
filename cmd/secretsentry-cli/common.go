package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/secretsentry/secretsentry-cli/internal/apperr"
	"github.com/secretsentry/secretsentry-cli/internal/detect"
	"github.com/secretsentry/secretsentry-cli/internal/hooks"
	"github.com/secretsentry/secretsentry-cli/internal/scanner"
	"github.com/secretsentry/secretsentry-cli/internal/ui"
	"github.com/secretsentry/secretsentry-cli/internal/vcs"
)

// emitFindings is the common tail of every scan path: print the JSON
// array to stdout (§6), a human summary to stderr unless quiet, and
// signal the exit code via apperr.ErrFindingsPresent.
func emitFindings(cmd *cobra.Command, findings []detect.Finding, mode string) error {
	raw, err := hooks.FindingsJSON(findings)
	if err != nil {
		return err
	}
	if len(findings) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), string(raw))
	}

	findingsUI := ui.NewFindingsUI(cmd.ErrOrStderr(), quiet)
	findingsUI.PrintReport(ui.ScanReport{Mode: mode, Findings: findings})

	if len(findings) > 0 {
		return apperr.ErrFindingsPresent
	}
	return nil
}

func runDiffScan(ctx context.Context, cmd *cobra.Command, sc *scanner.Scanner, client vcs.Client) error {
	findings, err := sc.ScanChangedLines(ctx, client)
	if err != nil {
		return err
	}
	return emitFindings(cmd, findings, "changed lines")
}

func runRepoScan(ctx context.Context, cmd *cobra.Command, sc *scanner.Scanner, client vcs.Client) error {
	findings, err := sc.ScanRepository(ctx)
	if err != nil {
		return err
	}
	return emitFindings(cmd, findings, "repository")
}

// reportTimestamp matches the metadata timestamp format used by
// internal/vcs (§6: "YYYY-MM-DD hh:mm:ss AM/PM").
func reportTimestamp() string {
	return time.Now().Format("2006-01-02 03:04:05 PM")
}

// silenceOnError keeps cobra from re-printing errors/usage this package
// already renders through ui.FindingsUI or the JSON findings output.
func silenceOnError(c *cobra.Command) *cobra.Command {
	c.SilenceErrors = true
	c.SilenceUsage = true
	return c
}
