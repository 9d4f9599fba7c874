package phylo

import (
	"github.com/grailbio/maxkphylo/genotype"
	"github.com/grailbio/maxkphylo/mkerr"
	"github.com/grailbio/maxkphylo/sdp"
)

// Node is one node of a materialized phylogeny tree. A leaf has Name set and
// no Children; an internal node may have an empty Name (unlabelled) and one
// Child per edge, each edge implicitly of length 1.0.
type Node struct {
	Name     string
	Children []*Node
}

// IsLeaf reports whether n is a terminal (sample) node.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Tree is a rooted phylogeny over a fixed sample list.
type Tree struct {
	Root    *Node
	Samples []string
}

// Build constructs the rooted phylogeny for one max-K window: view must
// already be restricted to [s, e] (see genotype.Matrix.SubsetView). Every
// row must decode to A/B only; NonBiallelicInWindow is returned otherwise.
// Rows whose minority-normalized SDP is empty are silently skipped (spec.md
// §4.8 step 1).
func Build(view genotype.Matrix) (*Tree, error) {
	samples := view.SampleIDs()
	n := len(samples)
	h := &hierarchy{}

	count := view.SnpCount()
	for i := uint64(0); i < count; i++ {
		row := view.SnpCalls(i)
		calls := make([]sdp.Call, len(row))
		for j, c := range row {
			calls[j] = sdp.Call(c)
		}
		s, ok := sdp.FromRow(calls)
		if !ok {
			return nil, mkerr.NonBiallelicInWindow{SNPIndex: i}
		}
		norm := sdp.Normalize(s)
		if norm.IsZero() {
			continue
		}
		if err := h.insert(norm); err != nil {
			return nil, err
		}
	}

	rootIdx := h.newNode(sdp.FullSet(n))
	h.arena[rootIdx].children = h.roots
	if len(h.roots) == 0 {
		return nil, mkerr.EmptyPhylogeny{}
	}

	root := materialize(h.arena, rootIdx, samples)
	return &Tree{Root: root, Samples: samples}, nil
}

// materialize recurses the hierarchy arena into a Node tree: a node's direct
// children are, in sample-list order, a leaf for each sample set in its SDP
// but not in any descendant's SDP, followed by one subtree per hierarchy
// child.
func materialize(arena []hierNode, idx int, samples []string) *Node {
	n := &arena[idx]

	childNodes := make([]*Node, 0, len(n.children))
	childUnion := sdp.New(len(samples))
	for _, ci := range n.children {
		childNodes = append(childNodes, materialize(arena, ci, samples))
		childUnion = childUnion.Union(arena[ci].sdp)
	}

	out := make([]*Node, 0, len(samples)+len(childNodes))
	for i, name := range samples {
		if n.sdp.Test(i) && !childUnion.Test(i) {
			out = append(out, &Node{Name: name})
		}
	}
	out = append(out, childNodes...)
	return &Node{Children: out}
}
