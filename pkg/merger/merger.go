// Package merger combines baseline command records with the documentation
// extracted for them.
package merger

import (
	"encoding/json"
	"fmt"

	"github.com/dtnitsch/lumdoc/models"
)

// PlaceholderFunc reports whether description is the generated stand-in a
// baseline produces for name when no real description exists.
type PlaceholderFunc func(name, description string) bool

// PlaceholderPrefix matches descriptions of the form "<prefix>: <name>".
func PlaceholderPrefix(prefix string) PlaceholderFunc {
	return func(name, description string) bool {
		return description == prefix+": "+name
	}
}

// Merger produces one MergedRecord per baseline record and counts how many
// were enhanced by documentation and how many fell back to synthesis.
type Merger struct {
	isPlaceholder PlaceholderFunc
	enhanced      int
	fallback      int
}

// New creates a Merger. A nil predicate uses the default Lumerical prefix.
func New(isPlaceholder PlaceholderFunc) *Merger {
	if isPlaceholder == nil {
		isPlaceholder = PlaceholderPrefix(models.DefaultPlaceholderPrefix)
	}
	return &Merger{isPlaceholder: isPlaceholder}
}

// Merge combines b with ext. A nil ext means no documentation page matched
// b.Name and the record is synthesized from the baseline alone.
func (m *Merger) Merge(b models.BaselineRecord, ext *models.ExtractedRecord) models.MergedRecord {
	merged := models.MergedRecord{
		Name:        b.Name,
		Description: b.Description,
		Usage:       b.Usage,
		Category:    b.Category,
		Extra:       copyExtra(b),
	}

	if ext == nil {
		m.fallback++
		merged.Markdown = SynthesizeMarkdown(b)
		merged.Summary = b.Description
		merged.Syntax = []models.SyntaxRow{{Syntax: b.Usage, Description: b.Description}}
		return merged
	}

	m.enhanced++
	merged.Markdown = ext.Body
	merged.Summary = ext.Summary
	merged.Syntax = append([]models.SyntaxRow(nil), ext.SyntaxRows...)
	merged.Example = ext.Example

	if ext.Description != "" && !m.isPlaceholder(b.Name, ext.Description) {
		merged.Description = ext.Description
	}
	if merged.Category == "" {
		merged.Category = ext.Category
	}
	return merged
}

// Counts returns the number of records enhanced by a matched page and the
// number synthesized from the baseline, summed over every Merge call since
// the Merger was created.
func (m *Merger) Counts() (enhanced, fallback int) {
	return m.enhanced, m.fallback
}

// SynthesizeMarkdown builds the minimal reference page for a command that
// has no documentation page.
func SynthesizeMarkdown(b models.BaselineRecord) string {
	return fmt.Sprintf("### %s\n\n%s\n\n**Usage:** `%s`", b.Name, b.Description, b.Usage)
}

func copyExtra(b models.BaselineRecord) map[string]json.RawMessage {
	if len(b.Extra) == 0 {
		return nil
	}
	extra := make(map[string]json.RawMessage, len(b.Extra))
	for key, value := range b.Extra {
		extra[key] = value
	}
	return extra
}
