package sdp

// Call mirrors genotype.Call's encoding without importing the genotype
// package, avoiding an import cycle (genotype constructs SDPs from rows;
// sdp must not depend back on genotype).
type Call = int8

const (
	CallA Call = 1
	CallB Call = 2
	CallH Call = 3
	CallN Call = -1
)

// FromRow derives the (non-normalized) SDP for a row of calls, mapping
// A -> 1, B -> 0. ok is false if any entry is neither A nor B, which is the
// caller's cue to reject the row for phylogeny use (§3: "SDP ... rejecting
// non-A/B calls for phylogeny use").
func FromRow(row []Call) (s Set, ok bool) {
	s = New(len(row))
	for i, c := range row {
		switch c {
		case CallA:
			s.SetBit(i)
		case CallB:
			// zero bit, nothing to do
		default:
			return Set{}, false
		}
	}
	return s, true
}

// FourGateCompatible implements the four-gamete test directly on two rows of
// call codes: among positions where both calls are in {A, B}, compatible
// means not all four ordered pairs (A,A), (A,B), (B,A), (B,B) appear.
// Positions where either call is H or N are ignored.
func FourGateCompatible(row1, row2 []Call) bool {
	var sawAA, sawAB, sawBA, sawBB bool
	for i := range row1 {
		c1, c2 := row1[i], row2[i]
		if (c1 != CallA && c1 != CallB) || (c2 != CallA && c2 != CallB) {
			continue
		}
		switch {
		case c1 == CallA && c2 == CallA:
			sawAA = true
		case c1 == CallA && c2 == CallB:
			sawAB = true
		case c1 == CallB && c2 == CallA:
			sawBA = true
		case c1 == CallB && c2 == CallB:
			sawBB = true
		}
		if sawAA && sawAB && sawBA && sawBB {
			return false
		}
	}
	return true
}

// NormalizedCompatible implements the equivalent compatibility test over two
// already minority-normalized bitsets: compatible iff disjoint or one is a
// subset of the other. Per spec §8 property 7, this must agree with
// FourGateCompatible whenever both rows are drawn from {A, B} only.
func NormalizedCompatible(s1, s2 Set) bool {
	return s1.Disjoint(s2) || s1.SubsetOf(s2) || s2.SubsetOf(s1)
}

// RowsEqual reports whether two call rows are byte-identical. Used by the
// scan package to detect "duplicate SDP" rows, which get special handling:
// the greedy scan skips them, and the uber scan moves the stored duplicate
// to the newest position.
func RowsEqual(row1, row2 []Call) bool {
	if len(row1) != len(row2) {
		return false
	}
	for i := range row1 {
		if row1[i] != row2[i] {
			return false
		}
	}
	return true
}
