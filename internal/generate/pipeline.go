package generate

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dtnitsch/lumdoc/internal/common"
	"github.com/dtnitsch/lumdoc/models"
	"github.com/dtnitsch/lumdoc/pkg/baseline"
	"github.com/dtnitsch/lumdoc/pkg/caching"
	"github.com/dtnitsch/lumdoc/pkg/corpus"
	"github.com/dtnitsch/lumdoc/pkg/db"
	"github.com/dtnitsch/lumdoc/pkg/merger"
	"github.com/dtnitsch/lumdoc/pkg/parser"
	"github.com/dtnitsch/lumdoc/pkg/storage"
)

// Outcome is what a successful pipeline run produced.
type Outcome struct {
	Result     corpus.Result
	OutputHash string
	Duration   time.Duration
}

// Pipeline loads the baseline, scans the docs, merges and writes the
// artifact. Any returned error is a setup failure; the artifact is only
// written when every step before it succeeded.
func Pipeline(config models.Config, s *storage.Storage, logger *slog.Logger) (*Outcome, error) {
	start := time.Now()

	records, err := baseline.Load(s, config.BaselinePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load baseline: %w", err)
	}
	logger.Info("Loaded baseline commands", "count", len(records), "path", config.BaselinePath)
	if dups := baseline.Duplicates(records); len(dups) > 0 {
		logger.Warn("Duplicate command names in baseline", "names", dups)
	}

	p := parser.New(parser.OptionsFromConfig(config))
	driver := corpus.NewDriver(s, p, logger, config.DocExtension)
	if config.CacheDir != "" {
		cache, err := caching.NewCache(config.CacheDir, 0)
		if err != nil {
			logger.Warn("Scan cache disabled", "dir", config.CacheDir, "error", err)
		} else {
			driver.WithCache(cache)
		}
	}

	m := merger.New(merger.PlaceholderPrefix(config.PlaceholderPrefix))
	result, err := driver.Run(records, config.DocsDir, m)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(result.Records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal output: %w", err)
	}
	if err := s.SaveFile(config.OutputPath, data); err != nil {
		return nil, fmt.Errorf("failed to write output: %w", err)
	}
	logger.Info("Wrote enhanced command data", "path", config.OutputPath, "bytes", len(data))

	return &Outcome{
		Result:     result,
		OutputHash: common.ContentHash(data),
		Duration:   time.Since(start),
	}, nil
}

// RecordRun stores the outcome in the run history and returns the run id.
func RecordRun(database *db.DB, config models.Config, outcome *Outcome) (int64, error) {
	stats := outcome.Result.Stats
	run := db.Run{
		BaselinePath: config.BaselinePath,
		DocsDir:      config.DocsDir,
		OutputPath:   config.OutputPath,
		OutputHash:   outcome.OutputHash,
		Total:        stats.Total,
		Enhanced:     stats.Enhanced,
		Fallback:     stats.Fallback,
		WithSyntax:   stats.WithSyntax,
		WithExample:  stats.WithExample,
		DocsScanned:  stats.DocsScanned,
		DocsFailed:   stats.DocsFailed,
		Orphans:      stats.Orphans,
	}

	commands := make([]db.RunCommand, 0, len(outcome.Result.Records))
	for _, rec := range outcome.Result.Records {
		source := db.SourceFallback
		if outcome.Result.IsDocumented(rec.Name) {
			source = db.SourceEnhanced
		}
		commands = append(commands, db.RunCommand{
			Name:       rec.Name,
			Source:     source,
			Category:   rec.Category,
			HasSyntax:  rec.HasSyntax(),
			HasExample: rec.HasExample(),
			Summary:    rec.Summary,
		})
	}

	return database.InsertRun(run, commands)
}
