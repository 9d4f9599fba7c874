// Package aggregate implements the SDP aggregator named in spec.md §6's
// emit contract: given the Newick phylogenies produced per max-K interval,
// re-extract each tree's internal-edge SDPs and group identical bitsets
// across intervals, carrying forward the list of genomic intervals that
// contributed each distinct SDP.
package aggregate

import (
	"github.com/grailbio/maxkphylo/phylo"
	"github.com/grailbio/maxkphylo/sdp"
)

// Interval is one chromosome interval a phylogeny was built over.
type Interval struct {
	Chrom   string
	BpStart int64
	BpEnd   int64
	Newick  string
}

// Group is one distinct SDP bitset (the sample set below a tree edge) and
// the intervals it was extracted from.
type Group struct {
	SDP       sdp.Set
	Intervals []Interval
}

// Run parses every interval's Newick string, extracts its internal-edge
// SDPs restricted to sampleOrder (minor cardinality at least
// minMinorCardinality, per spec.md §4.9/§6), and groups identical bitsets
// across all intervals in first-seen order.
func Run(intervals []Interval, sampleOrder []string, minMinorCardinality int) ([]Group, error) {
	var groups []Group
	index := make(map[string]int)

	for _, iv := range intervals {
		t, err := phylo.Parse(iv.Newick)
		if err != nil {
			return nil, err
		}
		for _, s := range phylo.ExtractSDPs(t, sampleOrder, minMinorCardinality) {
			key := bitKey(s)
			if gi, ok := index[key]; ok {
				groups[gi].Intervals = append(groups[gi].Intervals, iv)
				continue
			}
			index[key] = len(groups)
			groups = append(groups, Group{SDP: s, Intervals: []Interval{iv}})
		}
	}
	return groups, nil
}

// bitKey renders s's bits as a string so identical Sets produce identical
// map keys regardless of their backing word slice identity.
func bitKey(s sdp.Set) string {
	buf := make([]byte, s.Len())
	for i := range buf {
		if s.Test(i) {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}
