package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/secretsentry/secretsentry-cli/internal/apperr"
	"github.com/secretsentry/secretsentry-cli/internal/detect"
	"github.com/secretsentry/secretsentry-cli/internal/report"
	"github.com/secretsentry/secretsentry-cli/internal/scanner"
	"github.com/secretsentry/secretsentry-cli/internal/selector"
	"github.com/secretsentry/secretsentry-cli/internal/ui"
	"github.com/secretsentry/secretsentry-cli/internal/vcs"
)

var (
	scanOutput string
	scanOpen   bool
)

// scanCmd scans every tracked file in the repository (C5 in repository
// mode), rendering the HTML report afterward.
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the whole repository for secrets",
	Long:  "Scan every tracked file in the repository for credentials using pattern, assignment and entropy detection, then render an HTML report.",
	RunE:  runScanCmd,
}

func init() {
	silenceOnError(scanCmd)
	scanCmd.Flags().StringVarP(&scanOutput, "output", "o", "", "HTML report output path (default: ./secretsentry-report.html)")
	scanCmd.Flags().BoolVar(&scanOpen, "open", false, "open the rendered report in the default browser")
}

func runScanCmd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	root, err := os.Getwd()
	if err != nil {
		return err
	}

	client, err := vcs.Open(root)
	if err != nil {
		return apperr.Userf("not a repository: %s", root)
	}

	log := newLogger(cmd)
	sel := selector.New(client, root, log)
	sc := scanner.New(sel, log)

	var workflow *ui.Workflow
	var scanTask int
	if !quiet {
		workflow = ui.NewWorkflow(cmd.OutOrStdout(), "")
		scanTask = workflow.AddTask("Detecting secrets")
		workflow.Start()
		workflow.StartTask(scanTask, ui.Dim.Render(root))
	}

	findings, err := sc.ScanRepository(ctx)
	if err != nil {
		if workflow != nil {
			workflow.FailTask(scanTask, err.Error())
			workflow.Stop()
		}
		return err
	}
	if workflow != nil {
		workflow.CompleteTask(scanTask, fmt.Sprintf("%d finding(s)", len(findings)))
		workflow.Stop()
	}

	if err := renderAndMaybeOpen(cmd, nil, findings, client, scanOutput, scanOpen); err != nil {
		return err
	}

	return emitFindings(cmd, findings, "repository")
}

// renderAndMaybeOpen writes the HTML report combining diffFindings and
// repoFindings (either may be nil) to out (defaulting when empty) and
// opens it in the browser when openReport is set.
func renderAndMaybeOpen(cmd *cobra.Command, diffFindings, repoFindings []detect.Finding, client vcs.Client, out string, openReport bool) error {
	if out == "" {
		out = "secretsentry-report.html"
	}

	meta := client.Metadata(cmd.Context())
	if err := report.RenderToFile(out, diffFindings, repoFindings, meta, reportTimestamp(), ""); err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.FormatKeyValue("Report", out))
	}
	if openReport {
		if err := report.OpenInBrowser(out); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.Warning.Render("could not open report: "+err.Error()))
		}
	}
	return nil
}
