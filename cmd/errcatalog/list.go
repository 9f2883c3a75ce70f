package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Goden-Gun/apperr-lib/pkg/catalog"
)

func newListCmd() *cobra.Command {
	var (
		domain string
		format string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the classification table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := catalog.Entries(domain)
			if err != nil {
				return err
			}
			return writeEntries(cmd.OutOrStdout(), format, entries)
		},
	}
	cmd.Flags().StringVarP(&domain, "domain", "d", "", "only list one domain (CHAT, GROUP, NOTIFICATION, PROFILE, AUTH)")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: table, json or yaml")
	return cmd
}

func writeEntries(w io.Writer, format string, entries []catalog.Entry) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	case "table", "":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "CODE\tNAME\tCATEGORY\tSTATUS\tSEVERITY\tRETRYABLE\tMESSAGE")
		for _, e := range entries {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
				e.Code, e.Name, e.Category, e.HTTPStatus, e.Severity, strconv.FormatBool(e.Retryable), e.UserMessage)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
