package scan

import (
	"github.com/grailbio/maxkphylo/genotype"
	"github.com/grailbio/maxkphylo/sdp"
)

// Greedy partitions [0, view.SnpCount()) into a non-overlapping, contiguous,
// covering sequence of Intervals by the left-to-right greedy algorithm of
// spec.md §4.4: grow an accumulator of rows with the incoming row as long as
// it is either a duplicate of an already-accumulated row (skipped) or
// four-gamete compatible with every accumulated row; otherwise close the
// current interval and start a new one at the rejecting row.
func Greedy(view genotype.Matrix) []Interval {
	n := view.SnpCount()
	if n == 0 {
		return nil
	}
	var out []Interval
	start := uint64(0)
	acc := [][]genotype.Call{rowAt(view, 0)}
	for j := uint64(1); j < n; j++ {
		row := rowAt(view, j)
		if containsRow(acc, row) {
			continue
		}
		if compatibleWithAll(acc, row) {
			acc = append(acc, row)
			continue
		}
		out = append(out, Interval{Start: uint32(start), Extent: uint32(j - start)})
		start = j
		acc = [][]genotype.Call{row}
	}
	out = append(out, Interval{Start: uint32(start), Extent: uint32(n - start)})
	return out
}

// ReverseGreedy runs Greedy over view's reverse view and mirrors the result
// back to view's forward index space, in ascending-Start order so that
// ReverseGreedy(view)[k] is the reverse-pass counterpart of Greedy(view)[k]
// (spec.md §4.6's "core" pairing requires this alignment).
func ReverseGreedy(view genotype.Matrix) []Interval {
	n := uint32(view.SnpCount())
	rev := Greedy(view.ReverseView())
	mirrored := ReverseIndexedIntervals(rev, n)
	// mirrored is in descending Start order because Greedy(reverse view)
	// produced ascending order in reverse-space; reverse it back to
	// ascending forward order.
	for i, j := 0, len(mirrored)-1; i < j; i, j = i+1, j-1 {
		mirrored[i], mirrored[j] = mirrored[j], mirrored[i]
	}
	return mirrored
}

func rowAt(view genotype.Matrix, i uint64) []genotype.Call {
	return view.SnpCalls(i)
}

func compatibleWithAll(acc [][]genotype.Call, row []genotype.Call) bool {
	for _, r := range acc {
		if !fourGate(r, row) {
			return false
		}
	}
	return true
}

func containsRow(acc [][]genotype.Call, row []genotype.Call) bool {
	for _, r := range acc {
		if rowsEqual(r, row) {
			return true
		}
	}
	return false
}

func fourGate(row1, row2 []genotype.Call) bool {
	return sdp.FourGateCompatible(asCalls(row1), asCalls(row2))
}

func rowsEqual(row1, row2 []genotype.Call) bool {
	return sdp.RowsEqual(asCalls(row1), asCalls(row2))
}

func asCalls(row []genotype.Call) []sdp.Call {
	out := make([]sdp.Call, len(row))
	for i, c := range row {
		out[i] = sdp.Call(c)
	}
	return out
}
