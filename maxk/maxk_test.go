package maxk

import (
	"testing"

	"github.com/grailbio/maxkphylo/genotype"
	"github.com/grailbio/maxkphylo/scan"
	"github.com/stretchr/testify/assert"
)

// fixtureMatrix mirrors scan's hand-verified fixture: rows 0-2 mutually
// compatible, row 3 conflicting only with row 0.
func fixtureMatrix(t *testing.T) *genotype.InMemoryMatrix {
	m := genotype.NewInMemoryMatrix([]string{"S1", "S2", "S3", "S4"})
	rows := [][]genotype.Call{
		{genotype.CallA, genotype.CallA, genotype.CallB, genotype.CallB},
		{genotype.CallA, genotype.CallA, genotype.CallA, genotype.CallB},
		{genotype.CallA, genotype.CallA, genotype.CallB, genotype.CallA},
		{genotype.CallB, genotype.CallA, genotype.CallB, genotype.CallA},
	}
	for _, r := range rows {
		assert.NoError(t, m.AppendRow(r))
	}
	return m
}

func TestCores(t *testing.T) {
	m := fixtureMatrix(t)
	forward := scan.Greedy(m)
	reverse := scan.ReverseGreedy(m)
	cores, err := Cores(forward, reverse)
	assert.NoError(t, err)
	assert.Equal(t, []scan.Interval{{Start: 0, Extent: 1}, {Start: 3, Extent: 1}}, cores)
}

func TestCoresLengthMismatch(t *testing.T) {
	_, err := Cores([]scan.Interval{{Start: 0, Extent: 1}}, nil)
	assert.Error(t, err)
}

func TestUberCoresAndSelect(t *testing.T) {
	m := fixtureMatrix(t)
	forward := scan.Greedy(m)
	reverse := scan.ReverseGreedy(m)
	uber := scan.Uber(m)

	cores, err := Cores(forward, reverse)
	assert.NoError(t, err)
	assert.Equal(t, []scan.Interval{{Start: 0, Extent: 1}, {Start: 3, Extent: 1}}, cores)

	groups, err := UberCores(cores, uber)
	assert.NoError(t, err)
	assert.Len(t, groups, 2)
	assert.Equal(t, []scan.Interval{{Start: 0, Extent: 3}}, groups[0])
	assert.Equal(t, []scan.Interval{{Start: 1, Extent: 3}}, groups[1])

	got := Select(groups)
	want := []scan.Interval{{Start: 0, Extent: 3}, {Start: 1, Extent: 3}}
	assert.Equal(t, want, got)

	// Property: consecutive picks are adjacent-or-overlapping, and each
	// contains its corresponding core.
	for k, iv := range got {
		assert.True(t, iv.Contains(cores[k]))
		if k+1 < len(got) {
			assert.GreaterOrEqual(t, iv.End()+1, got[k+1].Start)
		}
	}
}

func TestSelectTieBreaksLowestIndex(t *testing.T) {
	// Two distinct, equally-good choices at k=0 (total 4 either way); the
	// lower index must win.
	groups := [][]scan.Interval{
		{{Start: 0, Extent: 2}, {Start: 1, Extent: 2}},
		{{Start: 2, Extent: 2}},
	}
	got := Select(groups)
	assert.Equal(t, []scan.Interval{{Start: 0, Extent: 2}, {Start: 2, Extent: 2}}, got)
}
