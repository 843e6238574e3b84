// internal/roster/summary.go
package roster

import "sort"

// DefaultTopN is the size of the leaderboard shown after an update.
const DefaultTopN = 5

// Summary aggregates a record list for display.
type Summary struct {
	Records    int
	TotalCount int
	Top        []Record
}

// Rank returns a copy of records ordered by Count descending. Ties keep
// their input order.
func Rank(records []Record) []Record {
	ranked := make([]Record, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

// Summarize totals records and keeps the n highest counts.
func Summarize(records []Record, n int) Summary {
	if n <= 0 {
		n = DefaultTopN
	}
	s := Summary{Records: len(records)}
	for _, r := range records {
		s.TotalCount += r.Count
	}
	ranked := Rank(records)
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	s.Top = ranked
	return s
}
