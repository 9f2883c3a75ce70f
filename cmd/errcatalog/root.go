package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "errcatalog",
		Short: "Inspect the error classification table",
		Long: `errcatalog prints the code, category, HTTP status, severity and user message
of every error kind, verifies the classification rules, and serves the table
over HTTP for support and documentation tooling.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newListCmd(), newCheckCmd(), newServeCmd())
	return root
}
