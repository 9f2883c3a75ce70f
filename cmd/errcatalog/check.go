package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Goden-Gun/apperr-lib/pkg/apperr"
	"github.com/Goden-Gun/apperr-lib/pkg/catalog"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify every kind against the classification rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := catalog.Check(); err != nil {
				return fmt.Errorf("classification check failed:\n%w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d kinds in %d domains, %d retired codes\n",
				len(apperr.Kinds()), len(apperr.Domains()), len(apperr.Retired()))
			return nil
		},
	}
}
