package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"craft/internal/core"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported content formats",
	Run: func(cmd *cobra.Command, args []string) {
		for _, format := range core.Formats() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", format.Slug(), format)
		}
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
