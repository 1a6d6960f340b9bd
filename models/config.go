// Package models defines data structures for configuration and command records.
package models

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBaselinePath      = "commands.json"
	DefaultDocsDir           = "docs/docs/lsf-script/en"
	DefaultOutputPath        = "data/commands-enhanced.json"
	DefaultDocExtension      = ".md"
	DefaultPlaceholderPrefix = "Lumerical command"
	DefaultExampleLabel      = "**Example**"
	DefaultSummaryMaxLen     = 100
)

// DefaultRelatedMarkers are the trailing "related links" headings cut from
// document bodies, in priority order. Matching is case-insensitive.
var DefaultRelatedMarkers = []string{
	"**See Also**",
	"### See Also",
	"## See Also",
	"**See Also",
	"See Also",
}

// Config holds runtime configuration for a generate run.
// Values come from an optional YAML file, then CLI flags override them.
type Config struct {
	BaselinePath      string   `yaml:"baseline"`
	DocsDir           string   `yaml:"docs_dir"`
	OutputPath        string   `yaml:"output"`
	DocExtension      string   `yaml:"doc_extension"`
	PlaceholderPrefix string   `yaml:"placeholder_prefix"`
	ExampleLabel      string   `yaml:"example_label"`
	RelatedMarkers    []string `yaml:"related_markers"`
	SummaryMaxLen     int      `yaml:"summary_max_len"`
	DBPath            string   `yaml:"db"`
	CacheDir          string   `yaml:"cache_dir"`
}

// DefaultConfig returns a Config populated with the built-in defaults.
func DefaultConfig() Config {
	markers := make([]string, len(DefaultRelatedMarkers))
	copy(markers, DefaultRelatedMarkers)

	return Config{
		BaselinePath:      DefaultBaselinePath,
		DocsDir:           DefaultDocsDir,
		OutputPath:        DefaultOutputPath,
		DocExtension:      DefaultDocExtension,
		PlaceholderPrefix: DefaultPlaceholderPrefix,
		ExampleLabel:      DefaultExampleLabel,
		RelatedMarkers:    markers,
		SummaryMaxLen:     DefaultSummaryMaxLen,
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig.
// Keys missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// Validate checks the settings a run cannot start without.
func (c Config) Validate() error {
	var errs []error
	if c.BaselinePath == "" {
		errs = append(errs, errors.New("baseline path is required"))
	}
	if c.DocsDir == "" {
		errs = append(errs, errors.New("docs directory is required"))
	}
	if c.OutputPath == "" {
		errs = append(errs, errors.New("output path is required"))
	}
	if c.SummaryMaxLen <= 0 {
		errs = append(errs, fmt.Errorf("summary_max_len must be positive, got %d", c.SummaryMaxLen))
	}
	return errors.Join(errs...)
}
