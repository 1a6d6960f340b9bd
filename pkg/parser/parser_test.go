package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtnitsch/lumdoc/models"
)

const absPage = "# abs\n\nReturns absolute value.\n\n| Syntax | Description |\n|---|---|\n| abs(x) | Absolute value of x |\n\n**Example**\n\n```\nabs(-2)\n```"

func TestParseSamplePage(t *testing.T) {
	rec := New(DefaultOptions()).Parse(absPage)

	assert.Equal(t, "abs", rec.Title)
	assert.Equal(t, "Returns absolute value.", rec.Description)
	assert.Equal(t, "Returns absolute value", rec.Summary)
	assert.Equal(t, []models.SyntaxRow{{Syntax: "abs(x)", Description: "Absolute value of x"}}, rec.SyntaxRows)
	assert.Equal(t, "abs(-2)", rec.Example)
	assert.Equal(t, absPage, rec.Body)
}

func TestParseTitle(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "level one heading", content: "# Foo\n\nbody", want: "Foo"},
		{name: "surrounding whitespace", content: "\n\n   #   Foo  \nbody", want: "Foo"},
		{name: "deeper heading", content: "### Foo bar\n", want: "Foo bar"},
		{name: "leading prose skipped", content: "intro line\n## Foo\n", want: "Foo"},
		{name: "no heading", content: "plain text only", want: ""},
		{name: "empty input", content: "", want: ""},
	}

	p := New(DefaultOptions())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Parse(tt.content).Title)
		})
	}
}

func TestParseDescriptionStops(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "table line",
			content: "# T\nline one\nline two\n| a | b |\n|---|---|",
			want:    "line one line two",
		},
		{
			name:    "blank line",
			content: "# T\n\n  first  \nsecond\n\nnext paragraph",
			want:    "first second",
		},
		{
			name:    "code fence",
			content: "# T\nprose\n```\ncode\n```",
			want:    "prose",
		},
		{
			name:    "example label",
			content: "# T\nprose\n**Example**\n```\ncode\n```",
			want:    "prose",
		},
		{
			name:    "nothing after title",
			content: "# T\n\n\n",
			want:    "",
		},
		{
			name:    "no heading uses first paragraph",
			content: "alpha\nbeta\n\ngamma",
			want:    "alpha beta",
		},
	}

	p := New(DefaultOptions())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Parse(tt.content).Description)
		})
	}
}

func TestParseSummary(t *testing.T) {
	long := strings.Repeat("a", 150)

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "first sentence", content: "# T\nShort sentence. Another one.", want: "Short sentence"},
		{name: "no period keeps whole description", content: "# T\nNo period here", want: "No period here"},
		{name: "long sentence truncated", content: "# T\n" + long + ". Tail.", want: strings.Repeat("a", 100) + "..."},
		{name: "long description without period", content: "# T\n" + long, want: strings.Repeat("a", 100) + "..."},
		{name: "exactly at limit", content: "# T\n" + strings.Repeat("b", 100), want: strings.Repeat("b", 100)},
		{name: "falls back to title", content: "# Title\n\n| a | b |", want: "Title"},
		{name: "leading period falls back to title", content: "# Title\n.dat files are read", want: "Title"},
	}

	p := New(DefaultOptions())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Parse(tt.content).Summary)
		})
	}
}

func TestParseSummaryCountsCharacters(t *testing.T) {
	p := New(Options{SummaryMaxLen: 3})
	rec := p.Parse("# T\nµµµµµ")
	assert.Equal(t, "µµµ...", rec.Summary)
}

func TestParseSyntaxTable(t *testing.T) {
	content := strings.Join([]string{
		"# set",
		"",
		"Sets a property.",
		"",
		"| Syntax | Description |",
		"|---|---|",
		"| **set(\"name\", value)** | Sets **name**. |",
		"| broken |",
		"| set(\"name\", value, i) | Sets the i-th object. |",
		"| set(\"name\", value, i) | Duplicate row kept. |",
		"",
		"| other | table |",
		"|---|---|",
		"| ignored | row |",
	}, "\n")

	rec := New(DefaultOptions()).Parse(content)

	assert.Equal(t, []models.SyntaxRow{
		{Syntax: `set("name", value)`, Description: "Sets name."},
		{Syntax: `set("name", value, i)`, Description: "Sets the i-th object."},
		{Syntax: `set("name", value, i)`, Description: "Duplicate row kept."},
	}, rec.SyntaxRows)
}

func TestParseExample(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "two line block",
			content: "# T\ntext\n\n**Example**\n\n```\nx = 1;\n?abs(x);\n```\n",
			want:    "x = 1;\n?abs(x);",
		},
		{
			name:    "language tagged fence",
			content: "# T\n\n**Example**\n```lsf\n\n  a = 2;\n\n```",
			want:    "a = 2;",
		},
		{
			name:    "label without block",
			content: "# T\ntext\n\n**Example**\n\nNo code here.",
			want:    "",
		},
		{
			name:    "unclosed block",
			content: "# T\n\n**Example**\n```\na = 1;\n",
			want:    "",
		},
		{
			name:    "block without label",
			content: "# T\ntext\n\n```\na = 1;\n```",
			want:    "",
		},
		{
			name:    "no table before example",
			content: "# T\ntext\n\nMore prose.\n\n**Example**\n```\nb = 3;\n```",
			want:    "b = 3;",
		},
	}

	p := New(DefaultOptions())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Parse(tt.content).Example)
		})
	}
}

func TestParseRelatedCut(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "bold marker",
			content: "# abs\n\nReturns.\n\n**See Also**\n\n[sign](./sign.md)",
			want:    "# abs\n\nReturns.",
		},
		{
			name:    "heading marker lower case",
			content: "# abs\n\nReturns.\n\n### see also\n- sign",
			want:    "# abs\n\nReturns.",
		},
		{
			name:    "singular casing",
			content: "# abs\n\nReturns.\n\n**See also**\nsign",
			want:    "# abs\n\nReturns.",
		},
		{
			name:    "no marker keeps text unchanged",
			content: "# abs\n\nReturns.\n",
			want:    "# abs\n\nReturns.\n",
		},
	}

	p := New(DefaultOptions())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := p.Parse(tt.content).Body
			assert.Equal(t, tt.want, body)
			assert.NotContains(t, strings.ToLower(body), "see also")
		})
	}
}

func TestParseRelatedMarkerPriority(t *testing.T) {
	content := "# abs\n\nsee also the sign command.\n\n**See Also**\n\nsign"

	rec := New(DefaultOptions()).Parse(content)
	assert.Equal(t, "# abs\n\nsee also the sign command.", rec.Body)

	custom := New(Options{RelatedMarkers: []string{"## Related"}}).Parse("# abs\n\ntext\n\n## related\nx")
	assert.Equal(t, "# abs\n\ntext", custom.Body)
}

func TestParseFrontMatter(t *testing.T) {
	content := "---\ncategory: math\n---\n# abs\n\nReturns absolute value."

	rec := New(DefaultOptions()).Parse(content)

	assert.Equal(t, "math", rec.Category)
	assert.Equal(t, "abs", rec.Title)
	assert.Equal(t, "Returns absolute value.", rec.Description)
	assert.Equal(t, content, rec.Body)
}

func TestParseFrontMatterCutKeepsLeadingBlock(t *testing.T) {
	content := "---\ntitle: abs\n---\n# abs\n\nReturns.\n\n**See Also**\nsign"

	rec := New(DefaultOptions()).Parse(content)

	assert.Equal(t, "---\ntitle: abs\n---\n# abs\n\nReturns.", rec.Body)
}

func TestParseFrontMatterTitleFallback(t *testing.T) {
	rec := New(DefaultOptions()).Parse("---\ntitle: Absolute\n---\nSome text.")

	assert.Equal(t, "Absolute", rec.Title)
	assert.Equal(t, "Some text.", rec.Description)
}

func TestParseLeadingRuleIsNotFrontMatter(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantTitle string
	}{
		{name: "heading between rules", content: "---\n# abs\n---\nReturns absolute value.\n", wantTitle: "abs"},
		{name: "mapping without known keys", content: "---\nauthor: someone\n---\n# abs\n", wantTitle: "abs"},
		{name: "broken yaml", content: "---\ncategory: [unclosed\n---\n# abs\n", wantTitle: "abs"},
	}

	p := New(DefaultOptions())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := p.Parse(tt.content)
			assert.Equal(t, tt.wantTitle, rec.Title)
			assert.Empty(t, rec.Category)
			assert.Equal(t, tt.content, rec.Body)
		})
	}
}

func TestParseWindowsLineEndings(t *testing.T) {
	rec := New(DefaultOptions()).Parse("# abs\r\n\r\nReturns.\r\n\r\n**Example**\r\n```\r\nabs(1)\r\n```\r\n")

	assert.Equal(t, "abs", rec.Title)
	assert.Equal(t, "Returns.", rec.Description)
	assert.Equal(t, "abs(1)", rec.Example)
}

func TestParseNeverPanics(t *testing.T) {
	inputs := []string{"", "#", "|", "| a |\n|", "**Example**", "```", "---", "---\n---", "See Also"}

	p := New(DefaultOptions())
	for _, in := range inputs {
		require.NotPanics(t, func() { p.Parse(in) }, "input %q", in)
	}
}

func TestFingerprint(t *testing.T) {
	a := New(DefaultOptions())
	b := New(DefaultOptions())
	c := New(Options{SummaryMaxLen: 80})

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
	assert.Len(t, a.Fingerprint(), 16)
}

func TestOptionsFromConfig(t *testing.T) {
	config := models.DefaultConfig()
	config.ExampleLabel = "**Examples**"
	config.SummaryMaxLen = 60

	opts := OptionsFromConfig(config)

	assert.Equal(t, "**Examples**", opts.ExampleLabel)
	assert.Equal(t, 60, opts.SummaryMaxLen)
	assert.Equal(t, models.DefaultRelatedMarkers, opts.RelatedMarkers)
}
