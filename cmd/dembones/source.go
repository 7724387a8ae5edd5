package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sourceCmd = &cobra.Command{
	Use:   "source",
	Short: "Set the source (simulated) mesh from the current selection",
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp(cmd)
		if err != nil {
			fail(err)
		}

		res, err := app.Controller.SetSourceFromSelection(cmd.Context())
		if err != nil {
			fail(err)
		}
		fmt.Println(res.Message)
	},
}

func init() {
	rootCmd.AddCommand(sourceCmd)
}
