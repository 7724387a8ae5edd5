package main

import (
	"github.com/spf13/cobra"

	"github.com/riglab/dembones"
	"github.com/riglab/dembones/internal/cli"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Start the interactive session",
	Long:  `Opens the operator session: set source and target from the selection, tweak parameters, inspect topology and run, all in one prompt loop.`,
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp(cmd)
		if err != nil {
			fail(err)
		}
		if err := cli.RunInteractive(cmd.Context(), app, dembones.Version); err != nil {
			fail(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
}
