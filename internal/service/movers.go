package service

import "sort"

// TopMovers returns the n largest increases and n largest decreases in
// percentage change among the usable rows. Sorting is stable, so ties keep
// catalog iteration order.
func TopMovers(rows []ComparisonRow, n int) (increases, decreases []Mover) {
	movers := make([]Mover, 0, len(rows))
	for _, r := range rows {
		if !r.Usable() {
			continue
		}
		movers = append(movers, Mover{Item: r.Item, PctChange: r.Relative() - 1.0})
	}

	increases = make([]Mover, len(movers))
	copy(increases, movers)
	sort.SliceStable(increases, func(i, j int) bool {
		return increases[i].PctChange > increases[j].PctChange
	})

	decreases = make([]Mover, len(movers))
	copy(decreases, movers)
	sort.SliceStable(decreases, func(i, j int) bool {
		return decreases[i].PctChange < decreases[j].PctChange
	})

	if len(increases) > n {
		increases = increases[:n]
	}
	if len(decreases) > n {
		decreases = decreases[:n]
	}
	return increases, decreases
}
