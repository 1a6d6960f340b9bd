package parser

import (
	"reflect"
	"testing"

	"github.com/dtnitsch/lumdoc/models"
)

func TestParseTable(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []models.SyntaxRow
	}{
		{
			name: "header separator and two rows",
			lines: []string{
				"| Syntax | Description |",
				"|---|---|",
				"| **abs(x)** | Absolute value of **x** |",
				"| abs(x, y) | Second form |",
			},
			want: []models.SyntaxRow{
				{Syntax: "abs(x)", Description: "Absolute value of x"},
				{Syntax: "abs(x, y)", Description: "Second form"},
			},
		},
		{
			name: "short row skipped without affecting others",
			lines: []string{
				"| Syntax | Description |",
				"|---|---|",
				"| lonely |",
				"| abs(x) | kept |",
			},
			want: []models.SyntaxRow{{Syntax: "abs(x)", Description: "kept"}},
		},
		{
			name: "empty cells dropped before counting",
			lines: []string{
				"| Syntax | Description |",
				"|---|---|",
				"|  | abs(x) |  | shifted |",
				"| | only one | |",
			},
			want: []models.SyntaxRow{{Syntax: "abs(x)", Description: "shifted"}},
		},
		{
			name: "extra columns ignored",
			lines: []string{
				"| a | b | c |",
				"|---|---|---|",
				"| x | y | z |",
			},
			want: []models.SyntaxRow{{Syntax: "x", Description: "y"}},
		},
		{
			name:  "header and separator only",
			lines: []string{"| a | b |", "|---|---|"},
			want:  nil,
		},
		{
			name:  "single line",
			lines: []string{"| a | b |"},
			want:  nil,
		},
		{
			name:  "no lines",
			lines: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTable(tt.lines)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseTable() = %#v, want %#v", got, tt.want)
			}
		})
	}
}
