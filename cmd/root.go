package cmd

import (
	"fmt"
	"os"

	"audiobook-exporter/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "audiobook-exporter",
	Short: "Export Apple Books audiobooks to Audiobookshelf",
	Long: `Audiobook Exporter reads the Apple Books library metadata (Books.plist)
and copies every audiobook into the Audiobookshelf folder layout:

  <dest>/<Author>/<Title> {<Narrator>}/<track files>`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding at debug level gives readable timestamps on failure.
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
