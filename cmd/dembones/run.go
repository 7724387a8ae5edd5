package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/riglab/dembones/internal/cli"
	"github.com/riglab/dembones/internal/presentation/tui"
	"github.com/riglab/dembones/pkg/domain"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the skinning decomposition on the bound mesh pair",
	Long: `Validates the session inputs, then invokes the external Dem Bones solver
with the bound source/target meshes and the given parameters. On success the
target mesh ends up with a generated skeleton and skin weights.`,
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp(cmd)
		if err != nil {
			fail(err)
		}

		params := resolveParams(cmd, app)
		fmt.Println("Processing... please wait")

		result := app.Controller.Run(cmd.Context(), params)
		job := domain.SolveJob{
			SourceMesh: app.Controller.SourceMesh(),
			TargetMesh: app.Controller.TargetMesh(),
			Params:     params,
		}

		render := tui.NewRenderer()
		if out, err := render(cli.BuildRunReport(result, job)); err == nil {
			fmt.Print(out)
		} else {
			fmt.Println(result.Message)
		}

		if !result.Success {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	addParamFlags(runCmd)
}
