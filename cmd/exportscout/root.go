// Package main provides the entry point for the ExportScout CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for ExportScout.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exportscout",
		Short: "Export opportunity research for brand websites",
		Long: `ExportScout researches export opportunities for a brand website.
It scrapes the site for product text, queries trade statistics for
promising markets, loads a buyer list, maps market countries to trusted
distributors, and composes a downloadable export opportunity report.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewResearchCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
