package manifest

import "github.com/dtnitsch/lumdoc/pkg/corpus"

// RunManifest is the end-of-run report printed after generate.
// It gives a lightweight overview of the merge without reading the
// full output artifact.
type RunManifest struct {
	GeneratedAt  string       `json:"generated_at" yaml:"generated_at"`
	RunID        int64        `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	BaselinePath string       `json:"baseline" yaml:"baseline"`
	DocsDir      string       `json:"docs_dir" yaml:"docs_dir"`
	OutputPath   string       `json:"output" yaml:"output"`
	OutputBytes  int64        `json:"output_bytes,omitempty" yaml:"output_bytes,omitempty"`
	Stats        corpus.Stats `json:"stats" yaml:"stats"`
	Undocumented []string     `json:"undocumented,omitempty" yaml:"undocumented,omitempty"` // baseline names merged without a page
	Orphans      []string     `json:"orphans,omitempty" yaml:"orphans,omitempty"`
	Truncated    bool         `json:"truncated,omitempty" yaml:"truncated,omitempty"`
}
