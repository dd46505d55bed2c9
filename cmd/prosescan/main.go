package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ludo-technologies/prosescan/domain"
	"github.com/ludo-technologies/prosescan/internal/version"
	"github.com/spf13/cobra"
)

var (
	// Version information (set via ldflags during build)
	Version = version.Version
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "prosescan",
		Short: "prosescan - prose style and AI-tell linter",
		Long: `prosescan is a deterministic style linter for Markdown and HTML prose.
It flags filler words, weak hedging, monotone rhythm, and phrasing patterns
characteristic of machine-generated text.`,
		Version: Version,
	}

	// Add subcommands
	rootCmd.AddCommand(lintCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		// Gate violations carry their own exit code
		var exitErr *domain.LintExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintf(os.Stderr, "Error: %s\n", exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				fmt.Println(version.GetFullVersion())
			} else {
				fmt.Printf("prosescan version %s\n", version.GetVersion())
			}
		},
	}

	cmd.Flags().BoolP("verbose", "v", false, "Show detailed version information")
	return cmd
}
