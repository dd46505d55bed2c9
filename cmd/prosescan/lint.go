package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ludo-technologies/prosescan/app"
	"github.com/ludo-technologies/prosescan/domain"
	"github.com/ludo-technologies/prosescan/internal/config"
	"github.com/ludo-technologies/prosescan/service"
	"github.com/spf13/cobra"
)

var (
	lintConfigPath string
	lintFormat     string
	lintOutputPath string
	lintFailOn     string
	lintRecursive  bool
	lintExcludes   []string
	lintWorkers    int
	lintNoProgress bool
	lintVerbose    bool
)

func lintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint [path...]",
		Short: "Lint Markdown/HTML documents for style issues",
		Long: `Lint prose documents for filler words, hedging, monotone rhythm, and
phrasing patterns characteristic of machine-generated text.

Exit codes:
  0 - No finding reaches the fail-on severity
  1 - Findings at or above the fail-on severity, or an unrecoverable error

Examples:
  prosescan lint docs/
  prosescan lint --format json README.md
  prosescan lint --fail-on WARN --exclude 'drafts/**' blog/
  prosescan lint --format markdown --out report.md docs/`,
		RunE:          runLint,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVarP(&lintConfigPath, "config", "c", "",
		"Path to config file")
	cmd.Flags().StringVarP(&lintFormat, "format", "f", "text",
		"Output format: text, json, markdown, html")
	cmd.Flags().StringVarP(&lintOutputPath, "out", "o", "",
		"Output file path (default: stdout)")
	cmd.Flags().StringVar(&lintFailOn, "fail-on", "",
		"Minimum severity that fails the run: FAIL, WARN, PASS")
	cmd.Flags().BoolVarP(&lintRecursive, "recursive", "r", true,
		"Walk directories recursively")
	cmd.Flags().StringSliceVar(&lintExcludes, "exclude", nil,
		"Glob patterns to exclude (repeatable)")
	cmd.Flags().IntVar(&lintWorkers, "workers", 0,
		"Number of parallel workers (0 = number of CPUs)")
	cmd.Flags().BoolVar(&lintNoProgress, "no-progress", false,
		"Disable the progress bar")
	cmd.Flags().BoolVarP(&lintVerbose, "verbose", "v", false,
		"Verbose output")

	return cmd
}

func runLint(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no paths specified")
	}

	cfg, req, err := buildLintRequest(cmd, args, lintOptions{
		configPath: lintConfigPath,
		failOn:     lintFailOn,
		recursive:  lintRecursive,
		excludes:   lintExcludes,
		workers:    lintWorkers,
		noProgress: lintNoProgress,
		verbose:    lintVerbose,
	})
	if err != nil {
		return err
	}
	req.OutputFormat = domain.OutputFormat(lintFormat)
	req.OutputPath = lintOutputPath

	// Progress goes to stderr so it never interleaves with report output
	pm := service.NewProgressManager(!req.NoProgress)
	defer pm.Close()

	uc, err := app.NewLintUseCaseBuilder().
		WithService(service.NewLintServiceWithProgress(cfg, pm)).
		WithFormatter(service.NewOutputFormatter()).
		Build()
	if err != nil {
		return err
	}

	report, err := uc.Execute(context.Background(), *req)
	if err != nil {
		return err
	}

	if req.Verbose {
		fmt.Fprintf(os.Stderr, "Linted %d files, %d findings\n",
			report.Summary.TotalFiles, report.Summary.TotalFindings)
	}

	if report.ExceedsGate(req.FailOn) {
		return &domain.LintExitError{Code: 1}
	}
	return nil
}

// lintOptions carries the flag values shared by the lint and check commands
type lintOptions struct {
	configPath string
	failOn     string
	recursive  bool
	excludes   []string
	workers    int
	noProgress bool
	verbose    bool
}

// buildLintRequest loads the configuration and applies CLI flags over the
// file settings. Flags only override when explicitly set on the command line.
func buildLintRequest(cmd *cobra.Command, args []string, opts lintOptions) (*config.Config, *domain.LintRequest, error) {
	cfg, err := config.LoadConfigWithTarget(opts.configPath, args[0])
	if err != nil {
		return nil, nil, err
	}

	loader := service.NewConfigurationLoader()
	base := &domain.LintRequest{
		OutputFormat:    domain.OutputFormatText,
		FailOn:          domain.Severity(cfg.Settings.FailOn),
		Recursive:       cfg.Settings.Recursive,
		ExcludePatterns: cfg.Settings.Exclude,
		Workers:         cfg.Settings.Workers,
	}

	override := &domain.LintRequest{
		Paths:           args,
		FailOn:          domain.Severity(opts.failOn),
		ExcludePatterns: opts.excludes,
		ConfigPath:      opts.configPath,
		NoProgress:      opts.noProgress,
		Verbose:         opts.verbose,
	}
	if cmd.Flags().Changed("workers") {
		override.Workers = opts.workers
	}

	req := loader.MergeConfig(base, override)

	// A zero-value merge cannot express recursive=false
	if cmd.Flags().Changed("recursive") {
		req.Recursive = opts.recursive
	}

	if !req.FailOn.IsValid() {
		return nil, nil, domain.NewValidationError(
			fmt.Sprintf("unknown severity %q for --fail-on (expected FAIL, WARN, or PASS)", req.FailOn), nil)
	}

	return cfg, req, nil
}
