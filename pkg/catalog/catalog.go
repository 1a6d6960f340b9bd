// Package catalog serves merged command records to an editor integration.
// It prefers the enhanced artifact and falls back to the baseline file.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dtnitsch/lumdoc/models"
	"github.com/dtnitsch/lumdoc/pkg/baseline"
	"github.com/dtnitsch/lumdoc/pkg/storage"
)

// ErrNoData is returned when neither the enhanced artifact nor the
// baseline can be loaded.
var ErrNoData = errors.New("no command data available")

// Source names where the loaded records came from.
type Source string

const (
	SourceNone     Source = ""
	SourceEnhanced Source = "enhanced"
	SourceBaseline Source = "baseline"
)

// Catalog is a name-indexed view of the command records. It is safe for
// concurrent use. Records load on first use.
type Catalog struct {
	enhancedPath string
	baselinePath string
	store        *storage.Storage
	logger       *slog.Logger

	mu      sync.RWMutex
	loaded  bool
	source  Source
	names   []string
	records map[string]models.MergedRecord
}

// New creates an unloaded Catalog.
func New(enhancedPath, baselinePath string, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{
		enhancedPath: enhancedPath,
		baselinePath: baselinePath,
		store:        &storage.Storage{},
		logger:       logger,
		records:      make(map[string]models.MergedRecord),
	}
}

// Load reads the command data if it is not loaded yet.
func (c *Catalog) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadLocked()
}

func (c *Catalog) loadLocked() error {
	if c.loaded {
		return nil
	}

	records, err := c.readEnhanced()
	source := SourceEnhanced
	if err != nil {
		c.logger.Warn("Enhanced command data unavailable, falling back to baseline",
			"path", c.enhancedPath, "error", err)

		records, err = c.readBaseline()
		source = SourceBaseline
		if err != nil {
			c.logger.Error("Failed to load fallback command data", "path", c.baselinePath, "error", err)
			return fmt.Errorf("%w: %v", ErrNoData, err)
		}
	}

	c.names = c.names[:0]
	c.records = make(map[string]models.MergedRecord, len(records))
	for _, rec := range records {
		if _, dup := c.records[rec.Name]; !dup {
			c.names = append(c.names, rec.Name)
		}
		c.records[rec.Name] = rec
	}
	c.loaded = true
	c.source = source

	c.logger.Info("Loaded commands", "count", len(c.records), "source", string(source))
	return nil
}

func (c *Catalog) readEnhanced() ([]models.MergedRecord, error) {
	if c.enhancedPath == "" || !c.store.HasFile(c.enhancedPath) {
		return nil, fmt.Errorf("enhanced command data not found: %s", c.enhancedPath)
	}
	data, err := c.store.ReadFile(c.enhancedPath)
	if err != nil {
		return nil, err
	}
	var records []models.MergedRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse enhanced command data: %w", err)
	}
	return records, nil
}

// readBaseline lifts baseline entries into records with no documentation.
func (c *Catalog) readBaseline() ([]models.MergedRecord, error) {
	entries, err := baseline.Load(c.store, c.baselinePath)
	if err != nil {
		return nil, err
	}
	records := make([]models.MergedRecord, 0, len(entries))
	for _, b := range entries {
		records = append(records, models.MergedRecord{
			Name:        b.Name,
			Description: b.Description,
			Usage:       b.Usage,
			Category:    b.Category,
			Summary:     b.Description,
			Extra:       b.Extra,
		})
	}
	return records, nil
}

// ensureLoaded loads on first use. Failures are logged by loadLocked and
// leave the catalog empty.
func (c *Catalog) ensureLoaded() {
	c.mu.RLock()
	loaded := c.loaded
	c.mu.RUnlock()
	if loaded {
		return
	}

	c.mu.Lock()
	_ = c.loadLocked()
	c.mu.Unlock()
}

// Lookup returns the record for name.
func (c *Catalog) Lookup(name string) (models.MergedRecord, bool) {
	c.ensureLoaded()
	c.mu.RLock()
	defer c.mu.RUnlock()
	rec, ok := c.records[name]
	return rec, ok
}

// Has reports whether name is a known command.
func (c *Catalog) Has(name string) bool {
	_, ok := c.Lookup(name)
	return ok
}

// AllNames returns the command names in load order.
func (c *Catalog) AllNames() []string {
	c.ensureLoaded()
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}

// Count returns the number of loaded commands.
func (c *Catalog) Count() int {
	c.ensureLoaded()
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// Source reports where the loaded records came from.
func (c *Catalog) Source() Source {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.source
}

// Reset drops the loaded records; the next call reloads them.
func (c *Catalog) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = false
	c.source = SourceNone
	c.names = nil
	c.records = make(map[string]models.MergedRecord)
}
