package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	dbactions "github.com/dtnitsch/lumdoc/internal/db"
	"github.com/dtnitsch/lumdoc/internal/generate"
	"github.com/dtnitsch/lumdoc/internal/lookup"
	"github.com/dtnitsch/lumdoc/models"
	"github.com/dtnitsch/lumdoc/pkg/help"
)

var version = "0.1.0-dev"

func main() {
	app := &cli.App{
		Name:    "lumdoc",
		Usage:   "Build and query enhanced metadata for Lumerical script commands",
		Version: version,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "only log errors"},
		},
		Commands: []*cli.Command{
			{
				Name:   "generate",
				Usage:  "Merge the documentation pages into the baseline and write the enhanced artifact",
				Action: generate.GenerateAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML config file"},
					&cli.StringFlag{Name: "baseline", Usage: "baseline JSON (default " + models.DefaultBaselinePath + ")"},
					&cli.StringFlag{Name: "docs", Usage: "documentation directory (default " + models.DefaultDocsDir + ")"},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output artifact (default " + models.DefaultOutputPath + ")"},
					&cli.StringFlag{Name: "ext", Usage: "documentation file extension (default " + models.DefaultDocExtension + ")"},
					&cli.StringFlag{Name: "placeholder-prefix", Usage: "baseline placeholder prefix (default \"" + models.DefaultPlaceholderPrefix + "\")"},
					&cli.StringFlag{Name: "format", Value: "json", Usage: "manifest format: json or yaml"},
					&cli.StringFlag{Name: "manifest", Usage: "also write the manifest to this file"},
					&cli.StringFlag{Name: "db", Usage: "run history database (default next to the binary)"},
					&cli.BoolFlag{Name: "no-db", Usage: "do not record the run"},
					&cli.StringFlag{Name: "cache-dir", Usage: "reuse parse results for unchanged pages"},
				},
			},
			{
				Name:      "hover",
				Usage:     "Print hover documentation for a command",
				ArgsUsage: "<name>",
				Action:    lookup.HoverAction,
				Flags:     lookupFlags(),
			},
			{
				Name:      "complete",
				Usage:     "Print completion items for a partial command name",
				ArgsUsage: "[word]",
				Action:    lookup.CompleteAction,
				Flags: append(lookupFlags(),
					&cli.StringFlag{Name: "line", Usage: "text from the start of the line to the cursor"},
					&cli.IntFlag{Name: "limit", Usage: "maximum number of items (0 = all)"},
					&cli.StringFlag{Name: "format", Value: "json", Usage: "json, yaml or names"},
				),
			},
			{
				Name:  "db",
				Usage: "Inspect the run history",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "db", Usage: "run history database (default next to the binary)"},
				},
				Subcommands: []*cli.Command{
					{
						Name:   "runs",
						Usage:  "List recorded runs",
						Action: dbactions.RunsAction,
						Flags: []cli.Flag{
							&cli.IntFlag{Name: "limit", Value: 20, Usage: "maximum runs to list (0 = all)"},
						},
					},
					{
						Name:      "run",
						Usage:     "Show one run (latest if no id)",
						ArgsUsage: "[id]",
						Action:    dbactions.RunAction,
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "source", Usage: "only commands with this source: enhanced or fallback"},
							&cli.BoolFlag{Name: "missing-example", Usage: "only commands without an example"},
							&cli.StringFlag{Name: "name", Usage: "name pattern, * matches anything"},
							&cli.StringFlag{Name: "format", Value: "text", Usage: "text or yaml"},
						},
					},
					{
						Name:      "history",
						Usage:     "Show a command across runs",
						ArgsUsage: "<name>",
						Action:    dbactions.HistoryAction,
						Flags: []cli.Flag{
							&cli.IntFlag{Name: "limit", Value: 10, Usage: "maximum runs to show (0 = all)"},
						},
					},
				},
			},
			{
				Name:  "coldstart",
				Usage: "Print a quick start guide",
				Action: func(c *cli.Context) error {
					fmt.Print(help.ColdstartYAML)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func lookupFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "data", Usage: "enhanced artifact (default " + models.DefaultOutputPath + ")"},
		&cli.StringFlag{Name: "baseline", Usage: "fallback baseline JSON (default " + models.DefaultBaselinePath + ")"},
	}
}
