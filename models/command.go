package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// baselineKeys are the JSON keys BaselineRecord maps onto struct fields.
// Anything else in a baseline entry is kept in Extra.
var baselineKeys = map[string]bool{
	"name":        true,
	"description": true,
	"usage":       true,
	"category":    true,
}

// mergedKeys are the JSON keys MergedRecord owns. Extras never override them.
var mergedKeys = map[string]bool{
	"name":        true,
	"description": true,
	"usage":       true,
	"category":    true,
	"markdown":    true,
	"summary":     true,
	"syntax":      true,
	"example":     true,
}

// BaselineRecord is the pre-existing minimal metadata for one command.
type BaselineRecord struct {
	Name        string `json:"name" yaml:"name" validate:"required"`
	Description string `json:"description" yaml:"description"`
	Usage       string `json:"usage" yaml:"usage"`
	Category    string `json:"category,omitempty" yaml:"category,omitempty"`

	// Extra holds baseline keys this tool does not know about.
	Extra map[string]json.RawMessage `json:"-" yaml:"-"`
}

type baselineAlias BaselineRecord

// UnmarshalJSON decodes the known fields and keeps everything else in Extra.
func (b *BaselineRecord) UnmarshalJSON(data []byte) error {
	var known baselineAlias
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*b = BaselineRecord(known)
	for key, value := range raw {
		if baselineKeys[key] {
			continue
		}
		if b.Extra == nil {
			b.Extra = make(map[string]json.RawMessage)
		}
		b.Extra[key] = value
	}
	return nil
}

// SyntaxRow is one (syntax, description) row of a command's syntax table.
type SyntaxRow struct {
	Syntax      string `json:"syntax" yaml:"syntax"`
	Description string `json:"description" yaml:"description"`
}

// ExtractedRecord is the result of scanning one documentation page.
type ExtractedRecord struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Summary     string      `json:"summary"`
	SyntaxRows  []SyntaxRow `json:"syntax_rows"`
	Example     string      `json:"example"`
	Body        string      `json:"body"`
	Category    string      `json:"category,omitempty"` // from front matter
}

// MergedRecord is the output unit: a baseline record enriched with the
// documentation extracted for the same command name.
type MergedRecord struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Usage       string      `json:"usage"`
	Category    string      `json:"category,omitempty"`
	Markdown    string      `json:"markdown"`
	Summary     string      `json:"summary"`
	Syntax      []SyntaxRow `json:"syntax"`
	Example     string      `json:"example"`

	Extra map[string]json.RawMessage `json:"-"`
}

// HasSyntax reports whether the record carries at least one syntax row.
func (m MergedRecord) HasSyntax() bool {
	return len(m.Syntax) > 0
}

// HasExample reports whether the record carries a non-empty example.
func (m MergedRecord) HasExample() bool {
	return m.Example != ""
}

type mergedAlias MergedRecord

// MarshalJSON writes the known fields in declaration order followed by the
// passthrough extras sorted by key. Syntax is always an array.
func (m MergedRecord) MarshalJSON() ([]byte, error) {
	alias := mergedAlias(m)
	if alias.Syntax == nil {
		alias.Syntax = []SyntaxRow{}
	}
	data, err := json.Marshal(alias)
	if err != nil {
		return nil, err
	}
	if len(m.Extra) == 0 {
		return data, nil
	}

	keys := make([]string, 0, len(m.Extra))
	for key := range m.Extra {
		if !mergedKeys[key] {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.Write(data[:len(data)-1])
	for _, key := range keys {
		encodedKey, err := json.Marshal(key)
		if err != nil {
			return nil, fmt.Errorf("failed to encode extra key %q: %w", key, err)
		}
		buf.WriteByte(',')
		buf.Write(encodedKey)
		buf.WriteByte(':')
		buf.Write(m.Extra[key])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a merged record, keeping unknown keys in Extra.
func (m *MergedRecord) UnmarshalJSON(data []byte) error {
	var known mergedAlias
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*m = MergedRecord(known)
	for key, value := range raw {
		if mergedKeys[key] {
			continue
		}
		if m.Extra == nil {
			m.Extra = make(map[string]json.RawMessage)
		}
		m.Extra[key] = value
	}
	return nil
}
