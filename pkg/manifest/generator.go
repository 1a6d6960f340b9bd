package manifest

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/lumdoc/pkg/corpus"
	"github.com/dtnitsch/lumdoc/pkg/storage"
)

// DefaultNameLimit caps the name lists so the manifest stays readable on
// large corpora.
const DefaultNameLimit = 25

// Input carries what Generate needs from a finished run.
type Input struct {
	RunID        int64
	BaselinePath string
	DocsDir      string
	OutputPath   string
	Result       corpus.Result
	NameLimit    int
}

// Generate builds the manifest for a finished run. The output file size is
// read through the storage layer when the artifact exists.
func Generate(in Input, s *storage.Storage) RunManifest {
	limit := in.NameLimit
	if limit <= 0 {
		limit = DefaultNameLimit
	}

	m := RunManifest{
		GeneratedAt:  time.Now().Format(time.RFC3339),
		RunID:        in.RunID,
		BaselinePath: in.BaselinePath,
		DocsDir:      in.DocsDir,
		OutputPath:   in.OutputPath,
		Stats:        in.Result.Stats,
	}

	if in.OutputPath != "" && s.HasFile(in.OutputPath) {
		if stats, err := s.GetFileStats(in.OutputPath); err == nil {
			m.OutputBytes = stats.SizeBytes
		}
	}

	var undocumented []string
	for _, rec := range in.Result.Records {
		if !in.Result.IsDocumented(rec.Name) {
			undocumented = append(undocumented, rec.Name)
		}
	}

	var cut bool
	m.Undocumented, cut = capNames(undocumented, limit)
	m.Truncated = cut
	m.Orphans, cut = capNames(in.Result.Orphans, limit)
	m.Truncated = m.Truncated || cut

	return m
}

func capNames(names []string, limit int) ([]string, bool) {
	if len(names) <= limit {
		return names, false
	}
	return names[:limit], true
}

// Encode renders the manifest as "json" (indented) or "yaml".
func Encode(m RunManifest, format string) ([]byte, error) {
	switch format {
	case "", "json":
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("error marshalling manifest: %w", err)
		}
		return data, nil
	case "yaml":
		data, err := yaml.Marshal(m)
		if err != nil {
			return nil, fmt.Errorf("error marshalling manifest: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported manifest format %q (want json or yaml)", format)
	}
}

// Save writes the encoded manifest to path.
func Save(m RunManifest, format, path string, s *storage.Storage) error {
	data, err := Encode(m, format)
	if err != nil {
		return err
	}
	if err := s.SaveFile(path, data); err != nil {
		return fmt.Errorf("error saving manifest: %w", err)
	}
	return nil
}
