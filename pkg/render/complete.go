package render

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"

	"github.com/dtnitsch/lumdoc/models"
)

// DefaultDetail is shown for commands with neither summary nor description.
const DefaultDetail = "Lumerical command"

// Source is the read side of a command catalog.
type Source interface {
	AllNames() []string
	Lookup(name string) (models.MergedRecord, bool)
}

// CompletionItem is one suggestion offered while typing.
type CompletionItem struct {
	Label         string `json:"label" yaml:"label"`
	Detail        string `json:"detail" yaml:"detail"`
	InsertText    string `json:"insert_text" yaml:"insert_text"`
	Documentation string `json:"documentation,omitempty" yaml:"documentation,omitempty"`
}

// ShouldSuggest reports whether command names make sense after linePrefix,
// the text from the start of the line to the cursor.
func ShouldSuggest(linePrefix string) bool {
	trimmed := strings.TrimRightFunc(linePrefix, unicode.IsSpace)
	switch {
	case trimmed == "":
		return true
	case strings.HasSuffix(trimmed, ";"):
		return false
	case strings.Contains(trimmed, "#"):
		return false
	}
	return true
}

// Complete returns items for every command whose name starts with word,
// ignoring case, in catalog order. It returns nothing when ShouldSuggest
// rejects linePrefix.
func Complete(src Source, linePrefix, word string) []CompletionItem {
	if !ShouldSuggest(linePrefix) {
		return nil
	}

	prefix := strings.ToLower(word)
	var items []CompletionItem
	for _, name := range src.AllNames() {
		if !strings.HasPrefix(strings.ToLower(name), prefix) {
			continue
		}
		rec, _ := src.Lookup(name)
		items = append(items, NewCompletionItem(name, rec))
	}
	return items
}

// NewCompletionItem builds the completion item for one record.
func NewCompletionItem(name string, rec models.MergedRecord) CompletionItem {
	item := CompletionItem{
		Label:      name,
		Detail:     detail(rec),
		InsertText: name + "();",
	}

	if rec.Markdown != "" {
		var doc strings.Builder
		fmt.Fprintf(&doc, "**%s**\n\n", name)
		if rec.Summary != "" {
			fmt.Fprintf(&doc, "%s\n\n", rec.Summary)
		}
		if rec.Usage != "" {
			fmt.Fprintf(&doc, "Usage: `%s`", rec.Usage)
		}
		item.Documentation = doc.String()
	}
	return item
}

func detail(rec models.MergedRecord) string {
	text := rec.Summary
	if text == "" {
		text = rec.Description
	}
	if text == "" {
		return DefaultDetail
	}
	return PlainText(text)
}

// PlainText strips inline HTML tags and entities from s and collapses runs
// of whitespace. Completion details are shown unrendered.
func PlainText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.Join(strings.Fields(s), " ")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.Join(strings.Fields(s), " ")
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
