package main

import (
	"context"
	"fmt"

	"github.com/ludo-technologies/prosescan/app"
	"github.com/ludo-technologies/prosescan/domain"
	"github.com/ludo-technologies/prosescan/service"
	"github.com/spf13/cobra"
)

var (
	checkConfigPath string
	checkFailOn     string
	checkExcludes   []string
	checkRecursive  bool
	checkWorkers    int
	checkVerbose    bool
)

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Quiet per-file check for CI pipelines",
		Long: `Run the linter and print one status line per document, suitable for CI logs.

Exit codes:
  0 - No finding reaches the fail-on severity
  1 - Findings at or above the fail-on severity, or an unrecoverable error

Examples:
  prosescan check docs/
  prosescan check --fail-on WARN blog/
  prosescan check --verbose README.md`,
		RunE:          runCheck,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVarP(&checkConfigPath, "config", "c", "",
		"Path to config file")
	cmd.Flags().StringVar(&checkFailOn, "fail-on", "",
		"Minimum severity that fails the run: FAIL, WARN, PASS")
	cmd.Flags().BoolVarP(&checkRecursive, "recursive", "r", true,
		"Walk directories recursively")
	cmd.Flags().StringSliceVar(&checkExcludes, "exclude", nil,
		"Glob patterns to exclude (repeatable)")
	cmd.Flags().IntVar(&checkWorkers, "workers", 0,
		"Number of parallel workers (0 = number of CPUs)")
	cmd.Flags().BoolVarP(&checkVerbose, "verbose", "v", false,
		"Show individual findings under each file")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no paths specified")
	}

	cfg, req, err := buildLintRequest(cmd, args, lintOptions{
		configPath: checkConfigPath,
		failOn:     checkFailOn,
		recursive:  checkRecursive,
		excludes:   checkExcludes,
		workers:    checkWorkers,
		noProgress: true,
		verbose:    checkVerbose,
	})
	if err != nil {
		return err
	}
	req.NoProgress = true

	svc := service.NewLintService(cfg)
	helper := app.NewFileHelper()

	files, err := helper.CollectDocuments(req.Paths, req.Recursive, req.ExcludePatterns)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no lintable documents found in the specified paths")
	}
	req.Paths = files

	report, err := svc.Lint(context.Background(), *req)
	if err != nil {
		return err
	}

	for _, file := range report.Files {
		fmt.Printf("%s: %s\n", file.Severity, file.FilePath)
		if checkVerbose {
			for _, finding := range file.Findings {
				fmt.Printf("  [%s] %s line %d: %s\n",
					finding.Severity, finding.RuleID, finding.Line, finding.Message)
			}
		}
	}

	for _, msg := range report.Errors {
		fmt.Printf("ERROR: %s\n", msg)
	}

	if report.ExceedsGate(req.FailOn) {
		return &domain.LintExitError{Code: 1}
	}
	return nil
}
