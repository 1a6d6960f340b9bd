// Package corpus drives a generate run: it scans every documentation page
// in a directory and merges the results into the baseline command list.
package corpus

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dtnitsch/lumdoc/internal/common"
	"github.com/dtnitsch/lumdoc/models"
	"github.com/dtnitsch/lumdoc/pkg/caching"
	"github.com/dtnitsch/lumdoc/pkg/mapreduce"
	"github.com/dtnitsch/lumdoc/pkg/merger"
	"github.com/dtnitsch/lumdoc/pkg/parser"
	"github.com/dtnitsch/lumdoc/pkg/storage"
)

// ErrDocsDirMissing is returned when the documentation directory does not exist.
var ErrDocsDirMissing = errors.New("documentation directory not found")

const topCategoryCount = 10

// Driver sequences parsing and merging over a whole documentation set.
type Driver struct {
	store     *storage.Storage
	parser    *parser.Parser
	cache     *caching.Cache
	logger    *slog.Logger
	extension string
}

// NewDriver creates a Driver reading pages with the given file extension.
func NewDriver(store *storage.Storage, p *parser.Parser, logger *slog.Logger, extension string) *Driver {
	if extension == "" {
		extension = models.DefaultDocExtension
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Driver{store: store, parser: p, logger: logger, extension: extension}
}

// WithCache makes the Driver reuse parse results for unchanged pages.
func (d *Driver) WithCache(c *caching.Cache) *Driver {
	d.cache = c
	return d
}

// ScanStats counts what happened to the pages of one ScanDir call.
type ScanStats struct {
	Found     int
	Scanned   int
	Failed    int
	CacheHits int
}

// ScanDir parses every page directly inside dir, keyed by command name.
// Pages that cannot be read are logged and left out; a missing directory
// is an error.
func (d *Driver) ScanDir(dir string) (map[string]models.ExtractedRecord, ScanStats, error) {
	var stats ScanStats

	if !d.store.IsDir(dir) {
		return nil, stats, fmt.Errorf("%w: %s", ErrDocsDirMissing, dir)
	}
	files, err := d.store.ListFiles(dir, d.extension)
	if err != nil {
		return nil, stats, fmt.Errorf("failed to list documentation directory: %w", err)
	}
	stats.Found = len(files)
	d.logger.Info("Found documentation pages", "count", len(files), "dir", dir)

	docs := make(map[string]models.ExtractedRecord, len(files))
	for _, file := range files {
		name, ok := common.CommandKey(file, d.extension)
		if !ok {
			continue
		}

		rec, hit, err := d.scanFile(file)
		if err != nil {
			stats.Failed++
			d.logger.Warn("Failed to parse documentation page", "file", filepath.Base(file), "error", err)
			continue
		}
		if hit {
			stats.CacheHits++
		}
		stats.Scanned++
		docs[name] = rec
	}
	return docs, stats, nil
}

func (d *Driver) scanFile(file string) (models.ExtractedRecord, bool, error) {
	data, err := d.store.ReadFile(file)
	if err != nil {
		return models.ExtractedRecord{}, false, err
	}
	if !utf8.Valid(data) {
		d.logger.Warn("Documentation page is not valid UTF-8, replacing invalid bytes", "file", filepath.Base(file))
		data = []byte(strings.ToValidUTF8(string(data), string(utf8.RuneError)))
	}

	var cacheKey string
	if d.cache != nil {
		cacheKey = d.parser.Fingerprint() + ":" + common.ContentHash(data)
		if cached, ok := d.cache.Get(cacheKey); ok {
			var rec models.ExtractedRecord
			if err := json.Unmarshal(cached, &rec); err == nil {
				return rec, true, nil
			}
		}
	}

	rec := d.parser.Parse(string(data))

	if d.cache != nil {
		if encoded, err := json.Marshal(rec); err == nil {
			if err := d.cache.Set(cacheKey, encoded); err != nil {
				d.logger.Warn("Failed to cache parse result", "file", filepath.Base(file), "error", err)
			}
		}
	}
	return rec, false, nil
}

// Stats summarizes one Run.
type Stats struct {
	Total         int      `json:"total" yaml:"total"`
	Enhanced      int      `json:"enhanced" yaml:"enhanced"`
	Fallback      int      `json:"fallback" yaml:"fallback"`
	WithSyntax    int      `json:"with_syntax" yaml:"with_syntax"`
	WithExample   int      `json:"with_example" yaml:"with_example"`
	DocsFound     int      `json:"docs_found" yaml:"docs_found"`
	DocsScanned   int      `json:"docs_scanned" yaml:"docs_scanned"`
	DocsFailed    int      `json:"docs_failed" yaml:"docs_failed"`
	CacheHits     int      `json:"cache_hits,omitempty" yaml:"cache_hits,omitempty"`
	Orphans       int      `json:"orphans" yaml:"orphans"`
	TopCategories []string `json:"top_categories,omitempty" yaml:"top_categories,omitempty"`
}

// Result is the output of a Run: one merged record per baseline entry, in
// baseline order.
type Result struct {
	Records []models.MergedRecord
	Stats   Stats
	// Orphans are pages whose name matches no baseline entry.
	Orphans []string

	documented map[string]bool
}

// IsDocumented reports whether name was merged with a documentation page.
func (r Result) IsDocumented(name string) bool {
	return r.documented[name]
}

// Run scans dir and merges the pages into baseline using m.
func (d *Driver) Run(baseline []models.BaselineRecord, dir string, m *merger.Merger) (Result, error) {
	docs, scanStats, err := d.ScanDir(dir)
	if err != nil {
		return Result{}, err
	}
	return d.Merge(baseline, docs, scanStats, m), nil
}

// Merge combines already scanned pages with baseline.
func (d *Driver) Merge(baseline []models.BaselineRecord, docs map[string]models.ExtractedRecord, scanStats ScanStats, m *merger.Merger) Result {
	records := make([]models.MergedRecord, 0, len(baseline))
	known := make(map[string]bool, len(baseline))
	documented := make(map[string]bool, len(docs))
	var enhanced, fallback int
	categories := make([]string, 0, len(baseline))

	for _, b := range baseline {
		known[b.Name] = true

		var ext *models.ExtractedRecord
		if doc, ok := docs[b.Name]; ok {
			ext = &doc
			documented[b.Name] = true
			enhanced++
		} else {
			fallback++
		}
		merged := m.Merge(b, ext)
		records = append(records, merged)
		categories = append(categories, merged.Category)
	}

	var orphans []string
	for name := range docs {
		if !known[name] {
			orphans = append(orphans, name)
		}
	}
	sort.Strings(orphans)

	stats := Stats{
		Total:         len(records),
		Enhanced:      enhanced,
		Fallback:      fallback,
		DocsFound:     scanStats.Found,
		DocsScanned:   scanStats.Scanned,
		DocsFailed:    scanStats.Failed,
		CacheHits:     scanStats.CacheHits,
		Orphans:       len(orphans),
		TopCategories: mapreduce.TopCounts(mapreduce.Count(categories), topCategoryCount),
	}
	for _, rec := range records {
		if rec.HasSyntax() {
			stats.WithSyntax++
		}
		if rec.HasExample() {
			stats.WithExample++
		}
	}

	d.logger.Info("Enhanced commands with documentation", "count", enhanced)
	d.logger.Info("Commands missing documentation (using basic info)", "count", fallback)
	if len(orphans) > 0 {
		d.logger.Info("Documentation pages without a baseline entry", "count", len(orphans))
	}

	return Result{Records: records, Stats: stats, Orphans: orphans, documented: documented}
}
