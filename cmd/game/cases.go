package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tatianab/detective-quest/internal/models"
)

var casesCmd = &cobra.Command{
	Use:   "cases [dir]",
	Short: "List the case files in a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "cases"
		if len(args) == 1 {
			dir = args[0]
		}
		names, err := models.ListCases(dir)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(names) == 0 {
			fmt.Fprintf(out, "No case files in %s. The built-in mansion is always available.\n", dir)
			return nil
		}
		for _, name := range names {
			fmt.Fprintln(out, name)
		}
		return nil
	},
}
