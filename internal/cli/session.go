package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/riglab/dembones/internal/presentation/tui"
	"github.com/riglab/dembones/pkg/domain"
)

// printSystemMessage prints a standardized system message to stdout.
func printSystemMessage(format string, args ...any) {
	fmt.Printf(">>> %s\n", fmt.Sprintf(format, args...))
}

const sessionHelp = `Commands:
  source             set the source mesh from the current selection
  target             set the target mesh from the current selection
  select <path>...   replace the current selection
  status             show meshes, selection and parameters
  topo               show the topology comparison
  timeline           take the frame range from the scene timeline
  set <param> <n>    change a parameter: start, end, iters, bones
  validate           check all inputs
  run                run the decomposition
  help               show this help
  quit               leave the session`

// RunInteractive drives the operator-facing session: one command at a time,
// mirroring the original tool window. It requires a terminal on stdin.
func RunInteractive(ctx context.Context, app *App, version string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("interactive session requires a terminal (use the subcommands instead)")
	}

	tui.PrintBanner(version)
	render := tui.NewRenderer()
	printSystemMessage("Scene '%s' loaded. Type 'help' for commands.", app.Scene.Manifest().Name)

	params := app.DefaultParams()
	reader := bufio.NewReader(os.Stdin)

	for {
		if ctx.Err() != nil {
			return nil
		}
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			// EOF ends the session cleanly.
			fmt.Println()
			return nil
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "quit", "exit", "q":
			printSystemMessage("Bye.")
			return nil

		case "help":
			fmt.Println(sessionHelp)

		case "select":
			if len(args) == 0 {
				printSystemMessage("usage: select <path>...")
				continue
			}
			if err := app.Scene.SetSelection(ctx, args); err != nil {
				fmt.Println(tui.ErrorStyle.Render("ERROR: " + err.Error()))
				continue
			}
			printSystemMessage("Selected %d object(s).", len(args))

		case "source":
			res, err := app.Controller.SetSourceFromSelection(ctx)
			if err != nil {
				fmt.Println(tui.ErrorStyle.Render("ERROR: " + err.Error()))
				continue
			}
			fmt.Println(tui.SuccessStyle.Render(res.Message))

		case "target":
			res, err := app.Controller.SetTargetFromSelection(ctx)
			if err != nil {
				fmt.Println(tui.ErrorStyle.Render("ERROR: " + err.Error()))
				continue
			}
			fmt.Println(tui.SuccessStyle.Render(res.Message))

		case "status":
			printStatus(ctx, app, params)

		case "topo":
			fmt.Print(tui.RenderTopology(app.Controller.Topology()))

		case "timeline":
			start, end := app.Scene.TimelineRange()
			params.StartFrame, params.EndFrame = start, end
			fmt.Println(tui.SuccessStyle.Render(
				fmt.Sprintf("Frame range set: %d - %d", start, end)))

		case "set":
			if err := setParam(&params, args); err != nil {
				fmt.Println(tui.ErrorStyle.Render("ERROR: " + err.Error()))
			}

		case "validate":
			if valid, errs := app.Controller.Validate(params); !valid {
				if out, err := render(BuildValidationReport(errs)); err == nil {
					fmt.Print(out)
				} else {
					fmt.Println(strings.Join(errs, "\n"))
				}
			} else {
				fmt.Println(tui.SuccessStyle.Render("All inputs valid."))
			}

		case "run":
			printSystemMessage("Processing... please wait")
			result := app.Controller.Run(ctx, params)
			job := domain.SolveJob{
				SourceMesh: app.Controller.SourceMesh(),
				TargetMesh: app.Controller.TargetMesh(),
				Params:     params,
			}
			if out, err := render(BuildRunReport(result, job)); err == nil {
				fmt.Print(out)
			} else if result.Success {
				fmt.Println(tui.SuccessStyle.Render(result.Message))
			} else {
				fmt.Println(tui.ErrorStyle.Render(result.Message))
			}

		default:
			printSystemMessage("Unknown command '%s'. Type 'help'.", cmd)
		}
	}
}

func printStatus(ctx context.Context, app *App, params domain.RunParams) {
	selection, _ := app.Scene.Selection(ctx)

	display := func(path string) string {
		if path == "" {
			return "(not set)"
		}
		return fmt.Sprintf("%s (%s)", domain.ShortName(path), path)
	}

	fmt.Println("Scene:     ", app.Scene.Manifest().Name)
	fmt.Println("Selection: ", strings.Join(selection, ", "))
	fmt.Println("Source:    ", display(app.Controller.SourceMesh()))
	fmt.Println("Target:    ", display(app.Controller.TargetMesh()))
	fmt.Printf("Frames:     %d - %d\n", params.StartFrame, params.EndFrame)
	fmt.Printf("Iterations: %d\n", params.GlobalIters)
	fmt.Printf("Bones:      %d\n", params.NumBones)
}

func setParam(params *domain.RunParams, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: set <start|end|iters|bones> <value>")
	}
	value, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("not a number: %q", args[1])
	}
	switch args[0] {
	case "start":
		params.StartFrame = value
	case "end":
		params.EndFrame = value
	case "iters":
		params.GlobalIters = value
	case "bones":
		params.NumBones = value
	default:
		return fmt.Errorf("unknown parameter %q", args[0])
	}
	return nil
}
