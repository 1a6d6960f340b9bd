package mapreduce

import (
	"reflect"
	"testing"
)

func TestTopCounts(t *testing.T) {
	counts := Count([]string{"math", "math", "", "geometry", "solver", "geometry", "math"})

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{name: "all", n: 10, want: []string{"math:3", "geometry:2", "solver:1"}},
		{name: "top two", n: 2, want: []string{"math:3", "geometry:2"}},
		{name: "zero", n: 0, want: []string{}},
		{name: "negative", n: -1, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TopCounts(counts, tt.n)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TopCounts() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTopCountsTieBreak(t *testing.T) {
	got := TopCounts(map[string]int{"b": 1, "a": 1, "c": 1}, 3)
	want := []string{"a:1", "b:1", "c:1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopCounts() = %v, want %v", got, want)
	}
}
