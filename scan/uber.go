package scan

import (
	"github.com/grailbio/maxkphylo/genotype"
)

// uberEntry is one (row, source index) pair tracked by the uber scan's
// working list L.
type uberEntry struct {
	row    []genotype.Call
	source uint32
}

// Uber produces every maximal right-extending compatible run over
// [0, view.SnpCount()), per spec.md §4.5. It is a single left-to-right sweep
// that is amortized linear in snp_count * sample_count: L holds, in
// insertion order (oldest first), all rows in the current interval; each
// new row either joins L, replaces a duplicate already in L, or triggers a
// purge of L's older entries up to the nearest (newest-first) conflict.
func Uber(view genotype.Matrix) []Interval {
	n := view.SnpCount()
	if n == 0 {
		return nil
	}
	var out []Interval
	var l []uberEntry
	start := uint32(0)
	for k := uint32(0); uint64(k) < n; k++ {
		row := view.SnpCalls(uint64(k))

		dupIdx := -1
		conflictIdx := -1
		var conflictSource uint32
		for i := len(l) - 1; i >= 0; i-- {
			if rowsEqual(l[i].row, row) {
				dupIdx = i
				break
			}
			if !fourGate(l[i].row, row) {
				conflictIdx = i
				conflictSource = l[i].source
				break
			}
		}

		switch {
		case dupIdx >= 0:
			l = append(l[:dupIdx], l[dupIdx+1:]...)
			l = append(l, uberEntry{row: row, source: k})
		case conflictIdx >= 0:
			out = append(out, Interval{Start: start, Extent: k - start})
			l = append([]uberEntry(nil), l[conflictIdx+1:]...)
			l = append(l, uberEntry{row: row, source: k})
			start = conflictSource + 1
		default:
			l = append(l, uberEntry{row: row, source: k})
		}
	}
	out = append(out, Interval{Start: start, Extent: uint32(n) - start})
	return out
}
