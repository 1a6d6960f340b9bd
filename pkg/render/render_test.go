package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtnitsch/lumdoc/models"
)

type fakeSource struct {
	names   []string
	records map[string]models.MergedRecord
}

func (f fakeSource) AllNames() []string { return f.names }

func (f fakeSource) Lookup(name string) (models.MergedRecord, bool) {
	rec, ok := f.records[name]
	return rec, ok
}

func newFakeSource(records ...models.MergedRecord) fakeSource {
	src := fakeSource{records: make(map[string]models.MergedRecord)}
	for _, rec := range records {
		src.names = append(src.names, rec.Name)
		src.records[rec.Name] = rec
	}
	return src
}

func TestHoverUsesMarkdown(t *testing.T) {
	rec := models.MergedRecord{Name: "abs", Markdown: "# abs\n\nReturns absolute value.", Usage: "abs(x)"}
	assert.Equal(t, "# abs\n\nReturns absolute value.", Hover(rec))
}

func TestHoverFallbackTemplate(t *testing.T) {
	rec := models.MergedRecord{
		Name:        "set",
		Description: "Sets a property.",
		Usage:       `set("name", value)`,
		Category:    "objects",
		Syntax:      []models.SyntaxRow{{Syntax: `set("name", value)`, Description: "Sets name."}},
		Example:     `set("x", 1);`,
	}

	want := "### set\n\n" +
		"Sets a property.\n\n" +
		"**Usage:** `set(\"name\", value)`\n\n" +
		"**Category:** objects\n" +
		"\n**Syntax:**\n\n" +
		"| Syntax | Description |\n" +
		"|--------|-------------|\n" +
		"| `set(\"name\", value)` | Sets name. |\n" +
		"\n" +
		"**Example:**\n\n" +
		"```matlab\nset(\"x\", 1);\n```\n"

	assert.Equal(t, want, Hover(rec))
}

func TestHoverFallbackMinimal(t *testing.T) {
	assert.Equal(t, "### foo\n\n", Hover(models.MergedRecord{Name: "foo"}))
}

func TestShouldSuggest(t *testing.T) {
	tests := []struct {
		prefix string
		want   bool
	}{
		{prefix: "", want: true},
		{prefix: "   ", want: true},
		{prefix: "x = ab", want: true},
		{prefix: "x = abs(1);", want: false},
		{prefix: "x = abs(1);  ", want: false},
		{prefix: "# comment ab", want: false},
		{prefix: "y = 2; # note", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldSuggest(tt.prefix))
		})
	}
}

func TestComplete(t *testing.T) {
	src := newFakeSource(
		models.MergedRecord{Name: "abs", Summary: "Returns absolute value", Usage: "abs(x)", Markdown: "# abs"},
		models.MergedRecord{Name: "addfdtd", Description: "Adds an <b>FDTD</b> solver &amp; region."},
		models.MergedRecord{Name: "sqrt"},
	)

	items := Complete(src, "x = a", "A")
	require.Len(t, items, 2)

	assert.Equal(t, CompletionItem{
		Label:         "abs",
		Detail:        "Returns absolute value",
		InsertText:    "abs();",
		Documentation: "**abs**\n\nReturns absolute value\n\nUsage: `abs(x)`",
	}, items[0])

	assert.Equal(t, "addfdtd", items[1].Label)
	assert.Equal(t, "Adds an FDTD solver & region.", items[1].Detail)
	assert.Empty(t, items[1].Documentation)

	all := Complete(src, "", "")
	require.Len(t, all, 3)
	assert.Equal(t, DefaultDetail, all[2].Detail)

	assert.Empty(t, Complete(src, "abs(1);", "a"))
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, "plain text", PlainText("plain \n text"))
	assert.Equal(t, "x < y", PlainText("x &lt; y"))
	assert.Equal(t, "bold and code", PlainText("<b>bold</b> and <code>code</code>"))
}
