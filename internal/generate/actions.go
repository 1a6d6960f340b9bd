package generate

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/lumdoc/models"
	"github.com/dtnitsch/lumdoc/pkg/db"
	"github.com/dtnitsch/lumdoc/pkg/manifest"
	"github.com/dtnitsch/lumdoc/pkg/storage"
)

func GenerateAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	config, err := ConfigFromFlags(c)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	format := c.String("format")
	if format != "json" && format != "yaml" {
		fmt.Fprintf(os.Stderr, "Error: --format must be json or yaml, got %q\n", format)
		os.Exit(1)
	}

	s := &storage.Storage{}
	outcome, err := Pipeline(config, s, logger)
	if err != nil {
		logger.Error("generate failed", "error", err)
		os.Exit(2)
	}

	// Run history is best effort; the artifact is already written.
	var runID int64
	if !c.Bool("no-db") {
		runID = recordHistory(config, outcome, logger)
	}

	stats := outcome.Result.Stats
	logger.Info("Generation complete",
		"total", stats.Total,
		"enhanced", stats.Enhanced,
		"fallback", stats.Fallback,
		"with_syntax", stats.WithSyntax,
		"with_example", stats.WithExample,
		"duration", outcome.Duration.String(),
	)

	m := manifest.Generate(manifest.Input{
		RunID:        runID,
		BaselinePath: config.BaselinePath,
		DocsDir:      config.DocsDir,
		OutputPath:   config.OutputPath,
		Result:       outcome.Result,
	}, s)

	if path := c.String("manifest"); path != "" {
		if err := manifest.Save(m, format, path, s); err != nil {
			logger.Warn("failed to save manifest", "path", path, "error", err)
		}
	}

	data, err := manifest.Encode(m, format)
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func recordHistory(config models.Config, outcome *Outcome, logger *slog.Logger) int64 {
	database, err := db.Open(config.DBPath)
	if err != nil {
		logger.Warn("run history unavailable", "error", err)
		return 0
	}
	defer database.Close()

	runID, err := RecordRun(database, config, outcome)
	if err != nil {
		logger.Warn("failed to record run", "error", err)
		return 0
	}
	logger.Info("Recorded run", "run_id", runID, "db", database.Path())
	return runID
}

// ConfigFromFlags builds the run configuration: defaults, then the
// optional --config file, then any flag set on the command line.
func ConfigFromFlags(c *cli.Context) (models.Config, error) {
	config := models.DefaultConfig()
	if path := c.String("config"); path != "" {
		loaded, err := models.LoadConfig(path)
		if err != nil {
			return config, err
		}
		config = loaded
	}

	overrides := []struct {
		flag  string
		field *string
	}{
		{"baseline", &config.BaselinePath},
		{"docs", &config.DocsDir},
		{"output", &config.OutputPath},
		{"ext", &config.DocExtension},
		{"placeholder-prefix", &config.PlaceholderPrefix},
		{"db", &config.DBPath},
		{"cache-dir", &config.CacheDir},
	}
	for _, o := range overrides {
		if c.IsSet(o.flag) {
			*o.field = c.String(o.flag)
		}
	}

	if err := config.Validate(); err != nil {
		return config, errors.Join(errors.New("configuration is incomplete"), err)
	}
	return config, nil
}
