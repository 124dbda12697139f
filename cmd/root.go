package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "loopy",
	Short: "Loop composition toolkit",
	Long:  `Compiles symbolic musical notation into note events and audio placements.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
