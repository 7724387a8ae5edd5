package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the inputs for a decomposition run",
	Long:  `Runs every input check and reports all violations at once: mesh presence, distinctness, frame range, parameters and topology match.`,
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp(cmd)
		if err != nil {
			fail(err)
		}

		params := resolveParams(cmd, app)
		valid, errs := app.Controller.Validate(params)
		if !valid {
			fmt.Println("Validation failed:")
			for _, e := range errs {
				fmt.Println("  -", e)
			}
			os.Exit(1)
		}
		fmt.Println("All inputs valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	addParamFlags(validateCmd)
}
