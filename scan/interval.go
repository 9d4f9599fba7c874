// Package scan implements the SDP compatibility scans: the greedy scan (run
// forwards and, via a reverse view, backwards) and the exhaustive uber scan.
// Both produce lists of Interval. The endpoint/index bookkeeping follows
// grailbio/bio/interval's EndpointIndex style of keeping interval arithmetic
// in small fixed-width integer types rather than reaching for a generic
// interval-tree library.
package scan

import "fmt"

// Interval is a contiguous, non-empty run of SNP indices [Start, Start+Extent).
type Interval struct {
	Start  uint32
	Extent uint32
}

// End returns the last included index, Start+Extent-1.
func (iv Interval) End() uint32 { return iv.Start + iv.Extent - 1 }

// Contains reports whether iv's closed range contains other's closed range.
func (iv Interval) Contains(other Interval) bool {
	return iv.Start <= other.Start && iv.End() >= other.End()
}

// Intersects reports whether iv and other's closed ranges overlap.
func (iv Interval) Intersects(other Interval) bool {
	return iv.Start <= other.End() && other.Start <= iv.End()
}

// Compare orders intervals by Start, then by Extent, returning -1, 0, or +1.
func (iv Interval) Compare(other Interval) int {
	if iv.Start != other.Start {
		if iv.Start < other.Start {
			return -1
		}
		return 1
	}
	switch {
	case iv.Extent < other.Extent:
		return -1
	case iv.Extent > other.Extent:
		return 1
	default:
		return 0
	}
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%d,%d)", iv.Start, iv.Start+iv.Extent)
}

// ReverseIndexedIntervals mirrors each interval in l from an n-long index
// space to its reversed-space counterpart: new_start = n - old_start -
// extent. Extent is unchanged. Applying this twice is the identity (spec.md
// §8 property 3).
func ReverseIndexedIntervals(l []Interval, n uint32) []Interval {
	out := make([]Interval, len(l))
	for i, iv := range l {
		out[i] = Interval{Start: n - iv.Start - iv.Extent, Extent: iv.Extent}
	}
	return out
}
