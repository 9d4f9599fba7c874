// Package maxk combines a chromosome's forward greedy, reverse greedy, and
// uber scan results into the final max-K partition: one interval per core,
// chosen by a backward dynamic-programming sweep so that consecutive picks
// stay adjacent-or-overlapping while maximizing total covered extent.
package maxk

import (
	"fmt"

	"github.com/grailbio/maxkphylo/mkerr"
	"github.com/grailbio/maxkphylo/scan"
)

// Cores pairs a chromosome's forward and reverse greedy interval lists into
// the core interval list of spec.md §4.6. forward and reverse must have
// equal length (an invariant of running both greedy scans over the same
// matrix); Cores returns an error if they don't.
func Cores(forward, reverse []scan.Interval) ([]scan.Interval, error) {
	if len(forward) != len(reverse) {
		return nil, mkerr.BadInputFormat{
			Msg: fmt.Sprintf("forward/reverse greedy length mismatch: %d vs %d", len(forward), len(reverse)),
		}
	}
	cores := make([]scan.Interval, len(forward))
	for k := range forward {
		f, r := forward[k], reverse[k]
		if f.Start > r.End() {
			return nil, mkerr.BadInputFormat{
				Msg: fmt.Sprintf("core %d: forward start %d exceeds reverse end %d", k, f.Start, r.End()),
			}
		}
		cores[k] = scan.Interval{Start: f.Start, Extent: r.End() - f.Start + 1}
	}
	return cores, nil
}
