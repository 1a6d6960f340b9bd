package parser

import (
	"strings"

	"github.com/dtnitsch/lumdoc/models"
)

const boldMarkup = "**"

// ParseTable reads a run of pipe-delimited lines as a two column
// (syntax, description) table. The first two lines are the header and the
// separator row. Rows with fewer than two non-empty cells are skipped.
func ParseTable(lines []string) []models.SyntaxRow {
	if len(lines) < 2 {
		return nil
	}

	var rows []models.SyntaxRow
	for _, line := range lines[2:] {
		cells := splitCells(line)
		if len(cells) < 2 {
			continue
		}
		rows = append(rows, models.SyntaxRow{
			Syntax:      stripBold(cells[0]),
			Description: stripBold(cells[1]),
		})
	}
	return rows
}

// splitCells splits a table line on pipes and keeps the non-empty cells.
func splitCells(line string) []string {
	parts := strings.Split(line, tablePipe)
	cells := make([]string, 0, len(parts))
	for _, part := range parts {
		if cell := strings.TrimSpace(part); cell != "" {
			cells = append(cells, cell)
		}
	}
	return cells
}

func stripBold(cell string) string {
	return strings.TrimSpace(strings.ReplaceAll(cell, boldMarkup, ""))
}
