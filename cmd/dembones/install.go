package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/riglab/dembones/internal/config"
	"github.com/riglab/dembones/internal/logging"
	"github.com/riglab/dembones/internal/provision"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the solver plugin, tool package and shelf launcher",
	Long: `Copies the per-version solver plugin builds, the tool script package and the
launcher icon into every supported host version found under the documents
root, and registers a one-click shelf button.`,
	Run: func(cmd *cobra.Command, args []string) {
		hostRoot, shelfName := provisionTargets(cmd)
		payload, _ := cmd.Flags().GetString("payload")
		debug, _ := cmd.Flags().GetBool("debug")

		inst := provision.NewInstaller(payload, hostRoot, shelfName,
			provision.WithLogger(logging.ForDebug(debug)))

		report, err := inst.Install()
		for _, w := range report.Warnings {
			fmt.Println("[WARNING]", w)
		}
		if err != nil {
			fail(err)
		}

		for _, v := range report.Versions {
			fmt.Printf("--- Maya %s ---\n", v.Version)
			if v.PluginCopied != "" {
				fmt.Println("  plugin installed:", v.PluginCopied)
			}
			if v.ToolInstalled {
				fmt.Println("  tool package installed")
			}
			if v.IconCopied {
				fmt.Println("  icon installed")
			}
			for _, e := range v.Errors {
				fmt.Println("  [ERROR]", e)
			}
		}

		if report.Failed() {
			fmt.Println("\nInstallation finished with errors.")
			os.Exit(1)
		}
		fmt.Println("\nInstallation completed successfully. ✅")
	},
}

// provisionTargets resolves the host root and shelf name from config,
// overridable per invocation.
func provisionTargets(cmd *cobra.Command) (hostRoot, shelfName string) {
	sceneDir, _ := cmd.Flags().GetString("scene")
	cfg, err := config.LoadForScene(sceneDir)
	if err != nil {
		fail(err)
	}
	hostRoot, shelfName = cfg.HostRoot, cfg.ShelfName
	if cmd.Flags().Changed("host-root") {
		hostRoot, _ = cmd.Flags().GetString("host-root")
	}
	if cmd.Flags().Changed("shelf") {
		shelfName, _ = cmd.Flags().GetString("shelf")
	}
	return hostRoot, shelfName
}

func init() {
	rootCmd.AddCommand(installCmd)
	installCmd.Flags().String("payload", ".", "Directory holding the plugin builds, tool package and icon")
	installCmd.Flags().String("host-root", "", "Documents root with per-version host directories (default: configured)")
	installCmd.Flags().String("shelf", "", "Shelf to register the launcher on (default: configured)")
}
