package domain

import "sort"

// TopUpcoming selects the entries with the k smallest distinct DaysUntil
// values, keeping every entry tied at the k-th distinct value. The sort is
// stable, so entries sharing a day keep their incoming relative order.
// Fewer than k distinct values means everything is returned.
func TopUpcoming(items []Upcoming, k int) []Upcoming {
	if k <= 0 || len(items) == 0 {
		return nil
	}
	out := make([]Upcoming, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].DaysUntil < out[j].DaysUntil })

	distinct := 0
	last := -1
	for i, it := range out {
		if it.DaysUntil != last {
			distinct++
			last = it.DaysUntil
			if distinct > k {
				return out[:i]
			}
		}
	}
	return out
}
