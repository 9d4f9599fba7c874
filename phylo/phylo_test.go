package phylo

import (
	"testing"

	"github.com/grailbio/maxkphylo/genotype"
	"github.com/stretchr/testify/assert"
)

func TestBuildNestedHierarchy(t *testing.T) {
	m := genotype.NewInMemoryMatrix([]string{"S1", "S2", "S3", "S4"})
	rows := [][]genotype.Call{
		{genotype.CallA, genotype.CallA, genotype.CallB, genotype.CallB}, // minority {S3,S4}
		{genotype.CallA, genotype.CallA, genotype.CallA, genotype.CallB}, // minority {S4}, nested
	}
	for _, r := range rows {
		assert.NoError(t, m.AppendRow(r))
	}

	tree, err := Build(m)
	assert.NoError(t, err)

	want := "(S1,S2,(S3,(S4)));"
	assert.Equal(t, want, Emit(tree))

	parsed, err := Parse(want)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"S1", "S2", "S3", "S4"}, parsed.Samples)

	sdps := ExtractSDPs(tree, tree.Samples, 1)
	assert.Len(t, sdps, 1)
	assert.Equal(t, 2, sdps[0].PopCount())
	assert.True(t, sdps[0].Test(2)) // S3
	assert.True(t, sdps[0].Test(3)) // S4
}

func TestBuildEmptyPhylogeny(t *testing.T) {
	m := genotype.NewInMemoryMatrix([]string{"S1", "S2"})
	assert.NoError(t, m.AppendRow([]genotype.Call{genotype.CallA, genotype.CallA}))
	_, err := Build(m)
	assert.Error(t, err)
}

func TestBuildNonBiallelic(t *testing.T) {
	m := genotype.NewInMemoryMatrix([]string{"S1", "S2"})
	assert.NoError(t, m.AppendRow([]genotype.Call{genotype.CallA, genotype.CallH}))
	_, err := Build(m)
	assert.Error(t, err)
}

func TestIncompatibleSdpFails(t *testing.T) {
	// AABB -> minority {S3,S4}; ABAB -> minority {S2,S4} (crosses, shares S4).
	m := genotype.NewInMemoryMatrix([]string{"S1", "S2", "S3", "S4"})
	assert.NoError(t, m.AppendRow([]genotype.Call{genotype.CallA, genotype.CallA, genotype.CallB, genotype.CallB}))
	assert.NoError(t, m.AppendRow([]genotype.Call{genotype.CallA, genotype.CallB, genotype.CallA, genotype.CallB}))
	_, err := Build(m)
	assert.Error(t, err)
}
