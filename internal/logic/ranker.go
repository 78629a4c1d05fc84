package logic

import "sort"

// rankTop sorts rows descending by metric value and truncates to limit.
// Ties break ascending by entity ID so repeated queries against an unchanged
// store return identical order. Rows are fully materialized before sorting;
// at per-tournament esports volumes a full sort beats a streaming top-K.
func rankTop[T any](rows []T, value func(T) float64, id func(T) string, limit int) []T {
	sort.Slice(rows, func(i, j int) bool {
		vi, vj := value(rows[i]), value(rows[j])
		if vi != vj {
			return vi > vj
		}
		return id(rows[i]) < id(rows[j])
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}
