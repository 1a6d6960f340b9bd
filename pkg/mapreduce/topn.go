// Package mapreduce aggregates small frequency maps for run reports.
package mapreduce

import (
	"fmt"
	"sort"
)

// Count tallies each non-empty value.
func Count(values []string) map[string]int {
	counts := make(map[string]int)
	for _, v := range values {
		if v != "" {
			counts[v]++
		}
	}
	return counts
}

// TopCounts returns the top N entries as "key:count" strings, highest count
// first. Ties are ordered by key so reports are stable between runs.
func TopCounts(counts map[string]int, n int) []string {
	type kv struct {
		Key   string
		Value int
	}

	ss := make([]kv, 0, len(counts))
	for k, v := range counts {
		ss = append(ss, kv{k, v})
	}

	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Value != ss[j].Value {
			return ss[i].Value > ss[j].Value
		}
		return ss[i].Key < ss[j].Key
	})

	limit := n
	if len(ss) < n {
		limit = len(ss)
	}
	if limit < 0 {
		limit = 0
	}

	top := make([]string, limit)
	for i := 0; i < limit; i++ {
		top[i] = fmt.Sprintf("%s:%d", ss[i].Key, ss[i].Value)
	}
	return top
}
