// Command mapfgrid solves a multi-agent pathfinding instance described by
// a text map file and plays the result back to the terminal.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/edaniels/golog"
	"github.com/urfave/cli/v2"

	"github.com/elektrokombinacija/mapf-grid-research/internal/core"
	"github.com/elektrokombinacija/mapf-grid-research/internal/parse"
	"github.com/elektrokombinacija/mapf-grid-research/internal/render"
	"github.com/elektrokombinacija/mapf-grid-research/internal/sim"
	"github.com/elektrokombinacija/mapf-grid-research/internal/solve"
)

func main() {
	app := &cli.App{
		Name:  "mapfgrid",
		Usage: "solve and play back multi-agent pathfinding instances on a 2D grid",
		Commands: []*cli.Command{
			runCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "solve a map file and render the result",
		ArgsUsage: "<map-file>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "fps",
				Value: 0,
				Usage: "frames per second for playback; 0 renders the final solved world once",
			},
			&cli.BoolFlag{
				Name:  "dump-conflicted",
				Usage: "print the pre-PBS, per-agent unconstrained plan before running PBS",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "raise the logger to debug level",
			},
		},
		Action: runAction,
	}
}

func runAction(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return cli.Exit("run: missing required <map-file> argument", 1)
	}

	logger := golog.NewDevelopmentLogger("mapfgrid")
	if c.Bool("debug") {
		logger = golog.NewDebugLogger("mapfgrid")
	}

	f, err := os.Open(path)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	defer f.Close()

	result, err := parse.Parse(f)
	if err != nil {
		return exitFor(err)
	}

	world, err := core.NewWorld(result.Grid, result.Agents)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if c.Bool("dump-conflicted") {
		if err := dumpConflicted(world, logger); err != nil {
			return exitFor(err)
		}
	}

	if _, err := solve.Solve(world, logger); err != nil {
		enrichRouteNotFound(err, result)
		return exitFor(err)
	}

	return playback(world, c.Int("fps"))
}

// dumpConflicted prints every agent's unconstrained plan overlaid on one
// frame per tick, marking cells more than one agent occupies at once.
func dumpConflicted(world *core.World, logger golog.Logger) error {
	plans, err := solve.UnconstrainedPlans(world, logger)
	if err != nil {
		return err
	}

	duration := 0
	for _, r := range plans {
		if d := r.Duration(); d > duration {
			duration = d
		}
	}

	fmt.Println("--- pre-PBS unconstrained plan ---")
	for t := 0; t <= duration; t++ {
		fmt.Printf("t=%d\n", t)
		render.UnconstrainedPlans(os.Stdout, world.Grid, world.Agents, plans, t)
	}
	return nil
}

// playback renders world's solved state. fps == 0 renders the final
// world once; fps > 0 steps through every tick at that rate.
func playback(world *core.World, fps int) error {
	if fps <= 0 {
		render.World(os.Stdout, world)
		return nil
	}

	simulator := sim.NewSimulator(sim.Config{World: world})
	interval := time.Second / time.Duration(fps)
	for simulator.Tick() <= simulator.Duration() {
		positions := simulator.Step()
		render.Frame(os.Stdout, world.Grid, world.Agents, positions)
		fmt.Println()
		time.Sleep(interval)
	}
	return nil
}

// enrichRouteNotFound fills in the source spans parse.Result recorded
// for the failing agent's start and goal, so the printed diagnostic
// points back into the map file.
func enrichRouteNotFound(err error, result *parse.Result) {
	var notFound *core.RouteNotFoundError
	if !errors.As(err, &notFound) {
		return
	}
	if sp, ok := result.StartSpan[notFound.Agent]; ok {
		notFound.StartLine, notFound.StartCol = sp.Line, sp.Col
	}
	if sp, ok := result.GoalSpan[notFound.Agent]; ok {
		notFound.GoalLine, notFound.GoalCol = sp.Line, sp.Col
	}
}

func exitFor(err error) error {
	return cli.Exit(err.Error(), 1)
}
