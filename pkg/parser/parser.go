// Package parser extracts the structured zones of a command documentation
// page: title, description, summary, syntax table, example and the
// reference body with its trailing "related links" section removed.
//
// The page layout is not formally specified, so each zone is located by an
// independent forward search over the lines. A zone that cannot be found
// yields its empty value; Parse never fails.
package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dtnitsch/lumdoc/internal/common"
	"github.com/dtnitsch/lumdoc/models"
)

const (
	codeFence     = "```"
	tablePipe     = "|"
	headingMarker = "#"
	ellipsis      = "..."
)

// Options tunes the markers the Parser looks for.
type Options struct {
	// ExampleLabel marks the line that introduces the canonical example.
	ExampleLabel string
	// RelatedMarkers are trailing-section headings in priority order.
	// The first marker present in a page decides the cut point.
	RelatedMarkers []string
	// SummaryMaxLen caps the summary length in characters.
	SummaryMaxLen int
}

// DefaultOptions returns the options matching the Lumerical documentation set.
func DefaultOptions() Options {
	markers := make([]string, len(models.DefaultRelatedMarkers))
	copy(markers, models.DefaultRelatedMarkers)
	return Options{
		ExampleLabel:   models.DefaultExampleLabel,
		RelatedMarkers: markers,
		SummaryMaxLen:  models.DefaultSummaryMaxLen,
	}
}

// OptionsFromConfig builds parser options from a run configuration.
func OptionsFromConfig(c models.Config) Options {
	opts := DefaultOptions()
	if c.ExampleLabel != "" {
		opts.ExampleLabel = c.ExampleLabel
	}
	if len(c.RelatedMarkers) > 0 {
		opts.RelatedMarkers = c.RelatedMarkers
	}
	if c.SummaryMaxLen > 0 {
		opts.SummaryMaxLen = c.SummaryMaxLen
	}
	return opts
}

// Parser extracts ExtractedRecords from page text. It holds no state
// besides its options and is safe for concurrent use.
type Parser struct {
	opts Options
}

// New creates a Parser. Zero-valued options fall back to DefaultOptions.
func New(opts Options) *Parser {
	defaults := DefaultOptions()
	if opts.ExampleLabel == "" {
		opts.ExampleLabel = defaults.ExampleLabel
	}
	if opts.RelatedMarkers == nil {
		opts.RelatedMarkers = defaults.RelatedMarkers
	}
	if opts.SummaryMaxLen <= 0 {
		opts.SummaryMaxLen = defaults.SummaryMaxLen
	}
	return &Parser{opts: opts}
}

// Fingerprint identifies the options in effect, so cached parse results
// produced under different options are never reused.
func (p *Parser) Fingerprint() string {
	key := fmt.Sprintf("%s\x00%d\x00%s", p.opts.ExampleLabel, p.opts.SummaryMaxLen, strings.Join(p.opts.RelatedMarkers, "\x00"))
	return common.ContentHash([]byte(key))[:16]
}

// Parse extracts an ExtractedRecord from the raw text of one page.
func (p *Parser) Parse(content string) models.ExtractedRecord {
	meta, text := splitFrontMatter(content)
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	record := models.ExtractedRecord{Category: meta.Category}

	title, cursor, found := extractTitle(lines, 0)
	if !found {
		title = meta.Title
	}
	record.Title = title

	record.Description, cursor = p.extractDescription(lines, cursor)
	record.Summary = p.summarize(record.Description, record.Title)

	if rows, next, found := extractTable(lines, cursor); found {
		record.SyntaxRows = rows
		cursor = next
	}

	if example, _, found := p.extractExample(lines, cursor); found {
		record.Example = example
	}

	// the cut works on the page as stored, front matter included
	record.Body = p.cutRelated(content)
	return record
}

// extractTitle returns the first heading line with its markers stripped.
func extractTitle(lines []string, start int) (string, int, bool) {
	i := indexOf(lines, start, isHeading)
	if i < 0 {
		return "", start, false
	}
	title := strings.TrimLeft(strings.TrimSpace(lines[i]), headingMarker)
	return strings.TrimSpace(title), i + 1, true
}

// extractDescription joins the first paragraph after start with single spaces.
func (p *Parser) extractDescription(lines []string, start int) (string, int) {
	i := skipBlank(lines, start)

	var parts []string
	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if p.endsDescription(line) {
			break
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, " "), i
}

func (p *Parser) endsDescription(line string) bool {
	return line == "" ||
		strings.HasPrefix(line, tablePipe) ||
		strings.HasPrefix(line, codeFence) ||
		strings.HasPrefix(line, p.opts.ExampleLabel)
}

// summarize keeps the first sentence of description, capped at SummaryMaxLen.
func (p *Parser) summarize(description, title string) string {
	if description == "" {
		return title
	}

	first, _, _ := strings.Cut(description, ".")
	if strings.TrimSpace(first) == "" {
		// page opens with a bare period; the sentence split gives nothing usable
		if title != "" {
			return title
		}
		first = description
	}
	return truncate(first, p.opts.SummaryMaxLen)
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + ellipsis
}

// extractTable collects the first run of pipe-prefixed lines at or after start.
func extractTable(lines []string, start int) ([]models.SyntaxRow, int, bool) {
	first := indexOf(lines, start, isTableLine)
	if first < 0 {
		return nil, start, false
	}

	end := first
	for end < len(lines) && isTableLine(lines[end]) {
		end++
	}
	return ParseTable(lines[first:end]), end, true
}

// extractExample returns the body of the first fenced block that follows
// the example label. Every marker in the chain must be present.
func (p *Parser) extractExample(lines []string, start int) (string, int, bool) {
	label := indexOf(lines, start, func(line string) bool {
		return strings.Contains(line, p.opts.ExampleLabel)
	})
	if label < 0 {
		return "", start, false
	}

	open := indexOf(lines, skipBlank(lines, label+1), isFence)
	if open < 0 {
		return "", start, false
	}
	closing := indexOf(lines, open+1, isFence)
	if closing < 0 {
		return "", start, false
	}

	code := strings.Join(lines[open+1:closing], "\n")
	return strings.TrimSpace(code), closing + 1, true
}

// cutRelated drops everything from the trailing related-links heading on.
// Without a heading the text is returned unchanged.
func (p *Parser) cutRelated(text string) string {
	for _, marker := range p.opts.RelatedMarkers {
		if marker == "" {
			continue
		}
		if idx := indexFold(text, marker); idx >= 0 {
			return strings.TrimSpace(text[:idx])
		}
	}
	return text
}

// indexFold is a case-insensitive strings.Index that reports byte offsets
// into s itself.
func indexFold(s, substr string) int {
	n := len(substr)
	for i := 0; i+n <= len(s); i++ {
		if strings.EqualFold(s[i:i+n], substr) {
			return i
		}
	}
	return -1
}

func indexOf(lines []string, start int, match func(string) bool) int {
	for i := start; i < len(lines); i++ {
		if match(lines[i]) {
			return i
		}
	}
	return -1
}

func skipBlank(lines []string, start int) int {
	i := start
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	return i
}

func isHeading(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), headingMarker)
}

func isTableLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), tablePipe)
}

func isFence(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), codeFence)
}
