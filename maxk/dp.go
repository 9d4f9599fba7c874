package maxk

import "github.com/grailbio/maxkphylo/scan"

// Select runs the backward dynamic-programming sweep of spec.md §4.7 over
// groups (as returned by UberCores) and returns one representative interval
// per group, chosen so consecutive picks are adjacent-or-overlapping and
// the total extent is maximal. Ties in the argmax resolve to the lowest
// candidate index, the same rule duplicate_index.go's ChoosePrimary uses to
// pick a deterministic representative among equally-scored candidates; the
// cost/ptr table shape itself is the textbook max-plus recurrence for this
// problem and has no closer precedent in the corpus.
func Select(groups [][]scan.Interval) []scan.Interval {
	m := len(groups)
	if m == 0 {
		return nil
	}

	// cost[k][j] = best cumulative extent achievable by choosing groups[k][j]
	// and continuing optimally through k+1..m-1.
	// ptr[k][j] = index into groups[k+1] chosen to achieve that optimum, or -1
	// at k == m-1.
	cost := make([][]int64, m)
	ptr := make([][]int, m)

	last := m - 1
	cost[last] = make([]int64, len(groups[last]))
	ptr[last] = make([]int, len(groups[last]))
	for j, u := range groups[last] {
		cost[last][j] = int64(u.Extent)
		ptr[last][j] = -1
	}

	for k := last - 1; k >= 0; k-- {
		cur := groups[k]
		next := groups[k+1]
		cost[k] = make([]int64, len(cur))
		ptr[k] = make([]int, len(cur))
		for j, u := range cur {
			best := int64(-1)
			bestJ := -1
			for jp, un := range next {
				if u.End()+1 < un.Start {
					continue // not adjacent-or-overlapping
				}
				total := cost[k+1][jp] + int64(u.Extent)
				if total > best {
					best = total
					bestJ = jp
				}
			}
			cost[k][j] = best
			ptr[k][j] = bestJ
		}
	}

	bestJ, bestCost := 0, int64(-1)
	for j, c := range cost[0] {
		if c > bestCost {
			bestCost = c
			bestJ = j
		}
	}

	out := make([]scan.Interval, m)
	j := bestJ
	for k := 0; k < m; k++ {
		out[k] = groups[k][j]
		if ptr[k][j] < 0 {
			break
		}
		j = ptr[k][j]
	}
	return out
}
