package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/arbor/internal/cli"
)

var searchCmd = &cobra.Command{
	Use:   "search [target]",
	Short: "List the paths in the test tree without executing anything",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := runOptionsFromFlags(cmd, args)
		opts.Search = true

		if err := cli.Run(cmd.Context(), opts, newLogger(cmd)); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().Bool("no-color", false, "Disable colored output")
	searchCmd.Flags().Bool("raw", false, "Print the raw wire report instead of the rendered view")
}
