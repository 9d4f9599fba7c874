package sdp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fromBits(n int, bits ...int) Set {
	s := New(n)
	for _, b := range bits {
		s.SetBit(b)
	}
	return s
}

func TestNormalizeTieBreak(t *testing.T) {
	// n=4, ones==zeros==2, bit 0 set -> flip.
	s := fromBits(4, 0, 1)
	got := Normalize(s)
	assert.Equal(t, 2, got.PopCount())
	assert.True(t, got.Equal(fromBits(4, 2, 3)))

	// n=4, ones==zeros==2, bit 0 clear -> no flip.
	s2 := fromBits(4, 2, 3)
	got2 := Normalize(s2)
	assert.True(t, got2.Equal(fromBits(4, 2, 3)))

	// ones > half -> flip.
	s3 := fromBits(4, 0, 1, 2)
	got3 := Normalize(s3)
	assert.Equal(t, 1, got3.PopCount())
	assert.True(t, got3.Equal(fromBits(4, 3)))
}

func TestFourGateCompatibleEquivalence(t *testing.T) {
	tests := []struct {
		row1, row2 []Call
		compatible bool
	}{
		{[]Call{CallA, CallA, CallB, CallB}, []Call{CallA, CallB, CallA, CallB}, false},
		{[]Call{CallA, CallA, CallB, CallB}, []Call{CallB, CallA, CallB, CallA}, false},
		{[]Call{CallA, CallH, CallB, CallN}, []Call{CallA, CallB, CallB, CallA}, true},
	}
	for _, test := range tests {
		got := FourGateCompatible(test.row1, test.row2)
		assert.Equal(t, test.compatible, got)

		s1, ok1 := FromRow(test.row1)
		s2, ok2 := FromRow(test.row2)
		if ok1 && ok2 {
			n1 := Normalize(s1)
			n2 := Normalize(s2)
			assert.Equal(t, test.compatible, NormalizedCompatible(n1, n2))
		}
	}
}

func TestDisjointSubsetUnion(t *testing.T) {
	a := fromBits(8, 0, 1, 2)
	b := fromBits(8, 3, 4)
	assert.True(t, a.Disjoint(b))
	assert.False(t, a.SubsetOf(b))

	c := fromBits(8, 0, 1)
	assert.True(t, c.ProperSubsetOf(a))
	assert.False(t, a.ProperSubsetOf(a))

	u := a.Union(b)
	assert.Equal(t, 5, u.PopCount())
}

func TestFullSet(t *testing.T) {
	f := FullSet(5)
	assert.Equal(t, 5, f.PopCount())
	for i := 0; i < 5; i++ {
		assert.True(t, f.Test(i))
	}
}
