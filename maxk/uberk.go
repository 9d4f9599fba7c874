package maxk

import (
	"github.com/grailbio/maxkphylo/mkerr"
	"github.com/grailbio/maxkphylo/scan"
)

// UberCores groups uber into G_0 .. G_{len(cores)-1} per spec.md §4.7: G_k is
// every uber interval that contains core k and is disjoint from both
// neighboring cores, sorted by start index. Every G_k must be non-empty;
// an empty group means the uber scan and the core list disagree, which
// cannot happen for a correctly-computed pair and is reported as an error
// rather than silently producing an unselectable core.
func UberCores(cores, uber []scan.Interval) ([][]scan.Interval, error) {
	groups := make([][]scan.Interval, len(cores))
	for k, core := range cores {
		var prev, next *scan.Interval
		if k > 0 {
			prev = &cores[k-1]
		}
		if k+1 < len(cores) {
			next = &cores[k+1]
		}
		var g []scan.Interval
		for _, u := range uber {
			if !u.Contains(core) {
				continue
			}
			if prev != nil && u.Intersects(*prev) {
				continue
			}
			if next != nil && u.Intersects(*next) {
				continue
			}
			g = append(g, u)
		}
		if len(g) == 0 {
			return nil, mkerr.BadInputFormat{Msg: "no uber interval covers core"}
		}
		groups[k] = g
	}
	return groups, nil
}
