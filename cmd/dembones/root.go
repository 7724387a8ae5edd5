package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/riglab/dembones/internal/cli"
	"github.com/riglab/dembones/pkg/domain"
)

var rootCmd = &cobra.Command{
	Use:   "dembones",
	Short: "Dem Bones is an operator tool for skinning decomposition",
	Long: `Dem Bones generates joints and skin weights on a production mesh from a
simulated mesh, by driving the external Dem Bones solver. Pick a source and a
target mesh from the scene selection, validate that they are compatible, and run.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("scene", ".", "Scene directory holding scene.yaml")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

// openApp opens the scene named by the persistent --scene flag.
func openApp(cmd *cobra.Command) (*cli.App, error) {
	sceneDir, _ := cmd.Flags().GetString("scene")
	debug, _ := cmd.Flags().GetBool("debug")
	return cli.Open(sceneDir, debug)
}

// fail prints the error and exits; shared by every command Run func.
func fail(err error) {
	fmt.Println("Error:", err)
	os.Exit(1)
}

// addParamFlags registers the four solver parameter flags, named exactly as
// the solver command expects them.
func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().Int("startFrame", 0, "First frame of the simulation range (default: scene timeline)")
	cmd.Flags().Int("endFrame", 0, "Last frame of the simulation range (default: scene timeline)")
	cmd.Flags().Int("globalIters", 0, "Solver global iterations (default: configured)")
	cmd.Flags().Int("numBones", 0, "Number of bones to generate (default: configured)")
}

// resolveParams overlays explicitly set parameter flags on the scene defaults.
func resolveParams(cmd *cobra.Command, app *cli.App) domain.RunParams {
	params := app.DefaultParams()
	if cmd.Flags().Changed("startFrame") {
		params.StartFrame, _ = cmd.Flags().GetInt("startFrame")
	}
	if cmd.Flags().Changed("endFrame") {
		params.EndFrame, _ = cmd.Flags().GetInt("endFrame")
	}
	if cmd.Flags().Changed("globalIters") {
		params.GlobalIters, _ = cmd.Flags().GetInt("globalIters")
	}
	if cmd.Flags().Changed("numBones") {
		params.NumBones, _ = cmd.Flags().GetInt("numBones")
	}
	return params
}
