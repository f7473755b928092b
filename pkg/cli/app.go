package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"stackmatrix/pkg/logging"
	"stackmatrix/pkg/render"
	"stackmatrix/pkg/stack"
)

var (
	version = "v0.0.1-default"
	commit  = ""
	date    = ""

	// rendered output target, swapped for a buffer in tests
	stdout io.Writer = os.Stdout

	stackFlag = &cli.StringFlag{
		Name:  "stack",
		Usage: "Show a single stack by key (optional, default: all)",
	}

	formatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: fmt.Sprintf("Output format [%s]", strings.Join(render.Formats(), ", ")),
		Value: render.FormatTable.String(),
	}

	includeScoreFlag = &cli.BoolFlag{
		Name:  "include-score",
		Usage: "Add the composite_score column to the output",
	}

	sortByFlag = &cli.StringFlag{
		Name:  "sort-by",
		Usage: fmt.Sprintf("Sort rows by field [%s]", strings.Join(stack.SortFields(), ", ")),
	}

	descendingFlag = &cli.BoolFlag{
		Name:  "descending",
		Usage: "Sort in descending order (no effect without --sort-by)",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Prints verbose logs (optional, default: false)",
	}
)

// Execute creates and runs the CLI application.
func Execute() {
	logging.SetDefault("info")

	app := newApp()
	if err := app.Run(os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:                 "stackmatrix",
		Version:              fmt.Sprintf("%s (%s - %s)", version, commit, date),
		Compiled:             time.Now(),
		EnableBashCompletion: true,
		HideHelpCommand:      true,
		Usage:                "Compare conceptual Web3 privacy and soundness stacks",
		Description: "Presents a small catalog of illustrative privacy/soundness stack " +
			"profiles (zk-rollup, FHE-compute, formal-verification analogues). " +
			"The composite score is illustrative, not scientific.",
		Flags: []cli.Flag{
			stackFlag,
			formatFlag,
			includeScoreFlag,
			sortByFlag,
			descendingFlag,
			debugFlag,
		},
		Before: func(c *cli.Context) error {
			if c.Bool(debugFlag.Name) {
				logging.SetDefault("debug")
			}
			return nil
		},
		Action: cmdMatrix,
	}
}
