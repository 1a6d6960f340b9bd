// Package render turns command records into the text an editor shows:
// hover documentation and completion items.
package render

import (
	"fmt"
	"strings"

	"github.com/dtnitsch/lumdoc/models"
)

// ExampleLanguage tags example code blocks in fallback hovers.
const ExampleLanguage = "matlab"

// Hover returns the hover markdown for rec. Records with extracted
// documentation render it as is; the rest get a template built from
// their fields.
func Hover(rec models.MergedRecord) string {
	if rec.Markdown != "" {
		return rec.Markdown
	}

	var b strings.Builder
	fmt.Fprintf(&b, "### %s\n\n", rec.Name)

	if rec.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", rec.Description)
	}
	if rec.Usage != "" {
		fmt.Fprintf(&b, "**Usage:** `%s`\n\n", rec.Usage)
	}
	if rec.Category != "" {
		fmt.Fprintf(&b, "**Category:** %s\n", rec.Category)
	}

	if len(rec.Syntax) > 0 {
		b.WriteString("\n**Syntax:**\n\n")
		b.WriteString("| Syntax | Description |\n")
		b.WriteString("|--------|-------------|\n")
		for _, row := range rec.Syntax {
			fmt.Fprintf(&b, "| `%s` | %s |\n", row.Syntax, row.Description)
		}
		b.WriteString("\n")
	}

	if rec.Example != "" {
		b.WriteString("**Example:**\n\n")
		fmt.Fprintf(&b, "```%s\n%s\n```\n", ExampleLanguage, rec.Example)
	}

	return b.String()
}
