package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/riglab/dembones/internal/presentation/tui"
	"github.com/riglab/dembones/pkg/domain"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the session state: selection, meshes and topology",
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp(cmd)
		if err != nil {
			fail(err)
		}

		selection, err := app.Scene.Selection(cmd.Context())
		if err != nil {
			fail(err)
		}

		display := func(path string) string {
			if path == "" {
				return "(not set)"
			}
			return fmt.Sprintf("%s (%s)", domain.ShortName(path), path)
		}

		fmt.Println("Scene:    ", app.Scene.Manifest().Name)
		fmt.Println("Selection:", strings.Join(selection, ", "))
		fmt.Println("Source:   ", display(app.Controller.SourceMesh()))
		fmt.Println("Target:   ", display(app.Controller.TargetMesh()))

		if app.Controller.SourceMesh() != "" && app.Controller.TargetMesh() != "" {
			fmt.Println()
			fmt.Print(tui.RenderTopology(app.Controller.Topology()))
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
