package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/logscan/internal/logging"
	"github.com/ccollicutt/logscan/pkg/analyzer"
	"github.com/ccollicutt/logscan/pkg/output"
)

// UsageMessage is printed when no log file is given.
const UsageMessage = "Usage: logscan <log_file_path>"

// ScanOptions holds command-line options for the scan command.
type ScanOptions struct {
	Output  string
	Quiet   bool
	Verbose bool
}

// NewScanCommand creates the scan command.
func NewScanCommand() *cobra.Command {
	opts := &ScanOptions{}

	cmd := &cobra.Command{
		Use:   "logscan <log_file_path>",
		Short: "Count and list ERROR and WARNING lines in a log file",
		Long: `Scan a log file line by line and report the lines containing ERROR or WARNING.

A line containing both markers is counted as an error only. Matching is
case-sensitive. Line numbers are 1-based.

Missing files and read failures are reported on stdout and are not treated
as failures; the exit code is 0 for every scan.

Use "--" before a path that starts with a dash.

Example:
  logscan /var/log/app.log
  logscan -o json /var/log/app.log
  logscan -- -app.log`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json|yaml)")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no details")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Write debug logs to stderr")

	return cmd
}

func runScan(cmd *cobra.Command, args []string, opts *ScanOptions) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		fmt.Fprintln(out, UsageMessage)
		return nil
	}
	// Extra arguments after the path are ignored.
	path := args[0]

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	formatter, err := output.NewFormatter(opts.Output, output.FormatOptions{Quiet: opts.Quiet})
	if err != nil {
		return err
	}

	logger := logging.New(cmd.ErrOrStderr(), opts.Verbose)
	logger.Debug("scan.start", "path", path, "output", formatter.Name())

	a, err := analyzer.NewAnalyzer(analyzer.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("creating analyzer: %w", err)
	}

	result, err := a.AnalyzeFile(ctx, path)
	if err != nil {
		var nf *analyzer.NotFoundError
		if errors.As(err, &nf) {
			logger.Debug("scan.not_found", "path", path, "error", nf.Err)
			fmt.Fprintf(out, "Error: File '%s' not found.\n", path)
			return nil
		}
		logger.Error("scan.read_failed", "path", path, "error", err)
		fmt.Fprintf(out, "An error occurred while reading the file: %v\n", err)
		return nil
	}

	logger.Debug("scan.complete",
		"path", path,
		"lines", result.LinesProcessed,
		"errors", result.ErrorCount,
		"warnings", result.WarningCount,
		"findings", result.HasFindings(),
		"duration", result.EndTime.Sub(result.StartTime))

	report := output.NewReport(result, path)
	if err := formatter.Format(ctx, report, out); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	return nil
}
