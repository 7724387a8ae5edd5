package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/riglab/dembones/internal/logging"
	"github.com/riglab/dembones/internal/provision"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the tool from every host version",
	Long:  `Removes the solver plugin, tool package, shelf launcher and icons from every supported host version found under the documents root.`,
	Run: func(cmd *cobra.Command, args []string) {
		hostRoot, shelfName := provisionTargets(cmd)
		debug, _ := cmd.Flags().GetBool("debug")

		u := provision.NewUninstaller(hostRoot, shelfName,
			provision.WithLogger(logging.ForDebug(debug)))

		report := u.Uninstall()
		if len(report.Versions) == 0 {
			fmt.Println("No host versions found in:", hostRoot)
			return
		}

		for _, v := range report.Versions {
			fmt.Printf("--- Maya %s ---\n", v.Version)
			switch {
			case len(v.Removed) > 0:
				fmt.Println("  removed:", strings.Join(v.Removed, ", "))
			default:
				fmt.Println("  nothing to remove (already clean)")
			}
			for _, e := range v.Errors {
				fmt.Println("  [ERROR]", e)
			}
		}
		fmt.Println("\nUninstallation completed. ✅")
	},
}

func init() {
	rootCmd.AddCommand(uninstallCmd)
	uninstallCmd.Flags().String("host-root", "", "Documents root with per-version host directories (default: configured)")
	uninstallCmd.Flags().String("shelf", "", "Shelf whose launcher is removed (default: configured)")
}
