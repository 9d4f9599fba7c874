package genotype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildMatrix(t *testing.T, rows [][]Call, chromIDs []string, bp []int64) *InMemoryMatrix {
	m := NewInMemoryMatrix([]string{"S1", "S2", "S3", "S4"})
	for _, r := range rows {
		assert.NoError(t, m.AppendRow(r))
	}
	assert.NoError(t, m.SetChromIDs(chromIDs))
	assert.NoError(t, m.SetBpPositions(bp))
	return m
}

func TestChromosomeViewsPartition(t *testing.T) {
	rows := make([][]Call, 6)
	for i := range rows {
		rows[i] = []Call{CallA, CallA, CallB, CallB}
	}
	chrom := []string{"chr1", "chr1", "chr1", "chrX", "chrX", "chr2"}
	bp := []int64{1, 2, 3, 1, 2, 1}
	m := buildMatrix(t, rows, chrom, bp)

	views, err := m.ChromosomeViews()
	assert.NoError(t, err)
	assert.Len(t, views, 3)

	var total uint64
	for _, v := range views {
		total += v.SnpCount()
	}
	assert.Equal(t, m.SnpCount(), total)

	sorted, err := SortViewsByChromosome(views)
	assert.NoError(t, err)
	got := make([]string, len(sorted))
	for i, v := range sorted {
		got[i] = v.ChromIDs()[0]
	}
	assert.Equal(t, []string{"chr1", "chr2", "chrX"}, got)
}

func TestChromosomeViewsMissingIds(t *testing.T) {
	m := NewInMemoryMatrix([]string{"S1"})
	assert.NoError(t, m.AppendRow([]Call{CallA}))
	_, err := m.ChromosomeViews()
	assert.Error(t, err)
}

func TestReverseViewDoubleMirrorIsIdentity(t *testing.T) {
	rows := [][]Call{
		{CallA, CallA, CallB, CallB},
		{CallA, CallB, CallA, CallB},
		{CallB, CallA, CallB, CallA},
	}
	chrom := []string{"chr1", "chr1", "chr1"}
	bp := []int64{10, 20, 30}
	m := buildMatrix(t, rows, chrom, bp)

	rv := m.ReverseView()
	assert.Equal(t, m.SnpCount(), rv.SnpCount())
	for i := uint64(0); i < m.SnpCount(); i++ {
		assert.Equal(t, m.SnpCalls(i), rv.SnpCalls(m.SnpCount()-1-i))
	}
	assert.Equal(t, []int64{30, 20, 10}, rv.BpPositions())

	rrv := rv.ReverseView()
	for i := uint64(0); i < m.SnpCount(); i++ {
		assert.Equal(t, m.SnpCalls(i), rrv.SnpCalls(i))
	}
	assert.Equal(t, m.BpPositions(), rrv.BpPositions())
}

func TestSubsetViewMutatorsRejected(t *testing.T) {
	m := NewInMemoryMatrix([]string{"S1"})
	assert.NoError(t, m.AppendRow([]Call{CallA}))
	v := m.SubsetView(0, 1)
	mm, ok := v.(MutableMatrix)
	assert.True(t, ok)
	assert.Error(t, mm.SetBuildID("b37"))
	assert.Error(t, mm.AppendRow([]Call{CallB}))
}
