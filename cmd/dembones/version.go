package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/riglab/dembones"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of dembones",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dembones version %s\n", strings.TrimSpace(dembones.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
