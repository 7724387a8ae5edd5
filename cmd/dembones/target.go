package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var targetCmd = &cobra.Command{
	Use:   "target",
	Short: "Set the target (production) mesh from the current selection",
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp(cmd)
		if err != nil {
			fail(err)
		}

		res, err := app.Controller.SetTargetFromSelection(cmd.Context())
		if err != nil {
			fail(err)
		}
		fmt.Println(res.Message)
	},
}

func init() {
	rootCmd.AddCommand(targetCmd)
}
