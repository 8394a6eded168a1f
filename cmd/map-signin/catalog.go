package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brizzai/map-signin/internal/catalog"
)

var exportFormat string

// catalogCmd prints the built-in locations
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the locations shown on the map",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := catalog.Default().Export(exportFormat)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return err
	},
}

func init() {
	catalogCmd.Flags().StringVarP(&exportFormat, "format", "f", "yaml", "Output format (yaml|json)")
}
