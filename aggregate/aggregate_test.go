package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var sampleOrder = []string{"S1", "S2", "S3", "S4"}

func TestRunGroupsIdenticalSDPsAcrossIntervals(t *testing.T) {
	intervals := []Interval{
		{Chrom: "chr1", BpStart: 10, BpEnd: 20, Newick: "(S1,S2,(S3,(S4)));"},
		// Different leaf order, same {S3,S4} cherry: must group with the above.
		{Chrom: "chr1", BpStart: 30, BpEnd: 40, Newick: "(S2,S1,((S4),S3));"},
		// A distinct split {S1,S2}.
		{Chrom: "chr2", BpStart: 5, BpEnd: 15, Newick: "((S1,S2),(S3,S4));"},
	}

	groups, err := Run(intervals, sampleOrder, 1)
	assert.NoError(t, err)

	found := map[string][]Interval{}
	for _, g := range groups {
		var bits string
		for i := range sampleOrder {
			if g.SDP.Test(i) {
				bits += "1"
			} else {
				bits += "0"
			}
		}
		found[bits] = g.Intervals
	}

	// {S3,S4} is a cherry in all three trees (root-adjacent in the third);
	// {S1,S2} only arises as its own root-adjacent cherry in the third tree.
	assert.Len(t, found["0011"], 3)
	assert.Len(t, found["1100"], 1)
}

func TestRunPropagatesParseErrors(t *testing.T) {
	_, err := Run([]Interval{{Newick: "(S1,S2"}}, sampleOrder, 1)
	assert.Error(t, err)
}
