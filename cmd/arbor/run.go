package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/arbor/internal/cli"
	"github.com/aretw0/arbor/internal/logging"
)

var runCmd = &cobra.Command{
	Use:   "run [target]",
	Short: "Execute the test tree or a tag-selected subtree",
	Long: `Executes the built-in test suite. An optional target selects a subtree
by tag, or a single test by its full path (e.g. ROOT@CoreTests@BitOps).
Without a target the whole tree runs.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := runOptionsFromFlags(cmd, args)

		err := cli.Run(cmd.Context(), opts, newLogger(cmd))
		if err != nil {
			if errors.Is(err, cli.ErrTestsFailed) {
				os.Exit(1)
			}
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Bool("no-color", false, "Disable colored output")
	runCmd.Flags().Bool("raw", false, "Print the raw wire report instead of the rendered view")
}

func runOptionsFromFlags(cmd *cobra.Command, args []string) cli.RunOptions {
	opts := cli.RunOptions{}
	if len(args) > 0 {
		opts.Target = args[0]
	}
	opts.ConfigPath, _ = cmd.Flags().GetString("config")
	opts.NoColor, _ = cmd.Flags().GetBool("no-color")
	opts.Raw, _ = cmd.Flags().GetBool("raw")
	return opts
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.New(slog.LevelWarn)
}
