package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/secretsentry/secretsentry-cli/internal/apperr"
	"github.com/secretsentry/secretsentry-cli/internal/scanner"
	"github.com/secretsentry/secretsentry-cli/internal/selector"
	"github.com/secretsentry/secretsentry-cli/internal/ui"
	"github.com/secretsentry/secretsentry-cli/internal/vcs"
)

var (
	diffOutput string
	diffOpenFl bool
)

// diffCmd scans only the lines pending push against the configured
// upstream (§4.2, diff mode), rendering the HTML report afterward.
var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Scan only the lines pending push",
	Long:  "Scan the zero-context unified diff between the current branch tip and its upstream for credentials, then render an HTML report.",
	RunE:  runDiffCmd,
}

func init() {
	silenceOnError(diffCmd)
	diffCmd.Flags().StringVarP(&diffOutput, "output", "o", "", "HTML report output path (default: ./secretsentry-report.html)")
	diffCmd.Flags().BoolVar(&diffOpenFl, "open", false, "open the rendered report in the default browser")
}

func runDiffCmd(cmd *cobra.Command, args []string) error {
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
		scanTask = workflow.AddTask("Detecting secrets in pending diff")
		workflow.Start()
		workflow.StartTask(scanTask, ui.Dim.Render(root))
	}

	findings, err := sc.ScanChangedLines(ctx, client)
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

	if err := renderAndMaybeOpen(cmd, findings, nil, client, diffOutput, diffOpenFl); err != nil {
		return err
	}

	return emitFindings(cmd, findings, "changed lines")
}
