package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "strangel-oracle",
	Short: "An oracle of the Strange Angels",
	Long:  "The Strangel Oracle serves blessings, judgments, and disruptions from the four Strange Angels, and keeps the soul ledger of every encounter.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
}
