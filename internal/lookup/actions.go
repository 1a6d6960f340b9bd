package lookup

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/lumdoc/models"
	"github.com/dtnitsch/lumdoc/pkg/catalog"
	"github.com/dtnitsch/lumdoc/pkg/render"
)

func openCatalog(c *cli.Context) (*catalog.Catalog, *slog.Logger) {
	logLevel := slog.LevelWarn
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	data := c.String("data")
	if data == "" {
		data = models.DefaultOutputPath
	}
	base := c.String("baseline")
	if base == "" {
		base = models.DefaultBaselinePath
	}
	return catalog.New(data, base, logger), logger
}

// HoverAction prints the hover markdown for one command.
func HoverAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("usage: lumdoc hover <name>")
	}
	name := c.Args().First()

	cat, logger := openCatalog(c)
	if err := cat.Load(); err != nil {
		logger.Error("failed to load command data", "error", err)
		os.Exit(2)
	}

	rec, ok := cat.Lookup(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", name)
		os.Exit(1)
	}

	fmt.Println(render.Hover(rec))
	return nil
}

// CompleteAction prints completion items for a partial command name.
func CompleteAction(c *cli.Context) error {
	word := c.Args().First()

	cat, logger := openCatalog(c)
	if err := cat.Load(); err != nil {
		logger.Error("failed to load command data", "error", err)
		os.Exit(2)
	}

	items := render.Complete(cat, c.String("line"), word)
	if limit := c.Int("limit"); limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	switch c.String("format") {
	case "yaml":
		data, err := yaml.Marshal(items)
		if err != nil {
			return fmt.Errorf("failed to marshal completions: %w", err)
		}
		fmt.Print(string(data))
	case "names":
		for _, item := range items {
			fmt.Println(item.Label)
		}
	default:
		if items == nil {
			items = []render.CompletionItem{}
		}
		data, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal completions: %w", err)
		}
		fmt.Println(string(data))
	}
	return nil
}
