package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var selectCmd = &cobra.Command{
	Use:   "select [object ...]",
	Short: "Replace the current selection",
	Long:  `Selects the given scene objects by full path (e.g. "|chr|body_sim"). Use --clear to deselect everything.`,
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp(cmd)
		if err != nil {
			fail(err)
		}

		clearSel, _ := cmd.Flags().GetBool("clear")
		if clearSel {
			if err := app.Scene.SetSelection(cmd.Context(), nil); err != nil {
				fail(err)
			}
			fmt.Println("Selection cleared.")
			return
		}

		if len(args) == 0 {
			fail(fmt.Errorf("nothing to select (pass object paths or --clear)"))
		}
		if err := app.Scene.SetSelection(cmd.Context(), args); err != nil {
			fail(err)
		}
		fmt.Printf("Selected %d object(s).\n", len(args))
	},
}

func init() {
	rootCmd.AddCommand(selectCmd)
	selectCmd.Flags().Bool("clear", false, "Clear the selection")
}
