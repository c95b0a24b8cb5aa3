package cmd

import (
	"os"

	"audiobook-exporter/core/report"

	"github.com/spf13/cobra"
)

var listSource string

// listCmd prints the audiobooks found in the library.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the audiobooks in the Apple Books library",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(listSource)
		if err != nil {
			return err
		}
		defer func() { _ = s.logger.Sync() }()

		cat, err := s.loadCatalog()
		if err != nil {
			return err
		}

		report.RenderCatalog(os.Stdout, cat)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listSource, "source", "s", "", "Apple Books library root (defaults to the local container)")
	RootCmd.AddCommand(listCmd)
}
