package parser

import (
	"strings"

	"github.com/adrg/frontmatter"
)

// pageMeta holds the front matter keys a documentation page may carry.
type pageMeta struct {
	Title    string
	Category string
}

// splitFrontMatter separates an optional YAML front matter block from the
// page text. A leading "---" block only counts as front matter when it
// decodes to a mapping carrying title or category; anything else, including
// a block that fails to parse, leaves the page untouched.
func splitFrontMatter(content string) (pageMeta, string) {
	if !strings.HasPrefix(content, "---") {
		return pageMeta{}, content
	}

	var raw map[string]any
	body, err := frontmatter.Parse(strings.NewReader(content), &raw)
	if err != nil {
		return pageMeta{}, content
	}

	_, hasTitle := raw["title"]
	_, hasCategory := raw["category"]
	if !hasTitle && !hasCategory {
		return pageMeta{}, content
	}

	meta := pageMeta{
		Title:    stringValue(raw["title"]),
		Category: stringValue(raw["category"]),
	}
	return meta, strings.TrimLeft(string(body), "\r\n")
}

func stringValue(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}
