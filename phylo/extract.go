package phylo

import "github.com/grailbio/maxkphylo/sdp"

// ExtractSDPs walks t and returns the SDP bitset of every internal edge (an
// edge whose child subtree spans more than one sample): the set of samples
// in the child subtree, as is, without minority normalization. Only edges
// whose minor cardinality (min(popcount, n-popcount)) is at least
// minMinorCardinality, per spec.md §4.9. sampleOrder fixes the bit-index
// assignment and must be a superset of t.Samples; samples outside t's tree
// contribute zero bits.
func ExtractSDPs(t *Tree, sampleOrder []string, minMinorCardinality int) []sdp.Set {
	index := make(map[string]int, len(sampleOrder))
	for i, name := range sampleOrder {
		index[name] = i
	}
	n := len(sampleOrder)

	var out []sdp.Set
	var walk func(n *Node) sdp.Set
	walk = func(node *Node) sdp.Set {
		if node.IsLeaf() {
			s := sdp.New(n)
			if i, ok := index[node.Name]; ok {
				s.SetBit(i)
			}
			return s
		}
		union := sdp.New(n)
		for _, c := range node.Children {
			cs := walk(c)
			union = union.Union(cs)
			if cs.PopCount() <= 1 {
				continue
			}
			minor := cs.PopCount()
			if n-minor < minor {
				minor = n - minor
			}
			if minor >= minMinorCardinality {
				out = append(out, cs)
			}
		}
		return union
	}
	walk(t.Root)
	return out
}
