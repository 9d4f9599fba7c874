// Package phylo builds a rooted perfect phylogeny from the SDPs of a max-K
// window, and emits/parses/extracts it as Newick text, per spec.md §4.8-4.9.
package phylo

import (
	"fmt"

	"github.com/grailbio/maxkphylo/mkerr"
	"github.com/grailbio/maxkphylo/sdp"
)

// hierNode is one node of the inclusion-hierarchy arena. children holds
// indices into the same arena slice, never pointers, following
// fusion's integer-indexed node style so the arena can be grown with a
// plain append.
type hierNode struct {
	sdp      sdp.Set
	children []int
}

type hierarchy struct {
	arena []hierNode
	roots []int
}

func (h *hierarchy) newNode(s sdp.Set) int {
	h.arena = append(h.arena, hierNode{sdp: s})
	return len(h.arena) - 1
}

// insert adds s to the hierarchy per spec.md §4.8 step 2.
func (h *hierarchy) insert(s sdp.Set) error {
	return h.insertInto(&h.roots, s)
}

func (h *hierarchy) insertInto(siblings *[]int, s sdp.Set) error {
	sibs := *siblings
	for i := 0; i < len(sibs); i++ {
		n := &h.arena[sibs[i]]
		switch {
		case n.sdp.Equal(s):
			return nil
		case s.ProperSubsetOf(n.sdp):
			// Recurse on a local copy of the child list: the insert may grow
			// h.arena, which would leave a pointer into it stale.
			idx, children := sibs[i], n.children
			if err := h.insertInto(&children, s); err != nil {
				return err
			}
			h.arena[idx].children = children
			return nil
		case n.sdp.ProperSubsetOf(s):
			return h.replaceWithSuperset(siblings, sibs, i, s)
		case !s.Disjoint(n.sdp):
			return mkerr.IncompatibleSdp{Detail: fmt.Sprintf("sdp %v intersects %v without subset relation", s, n.sdp)}
		}
		// disjoint: keep scanning later siblings
	}
	*siblings = append(sibs, h.newNode(s))
	return nil
}

// replaceWithSuperset handles the case where incoming s is a proper
// superset of sibs[i]'s SDP: sibs[i] is replaced by a new node for s with
// sibs[i] as its first child, and every later sibling whose SDP intersects
// s must be a subset of s (and is moved under the new node) or disjoint
// from s (and stays a sibling); any other relation is IncompatibleSdp.
func (h *hierarchy) replaceWithSuperset(siblings *[]int, sibs []int, i int, s sdp.Set) error {
	newIdx := h.newNode(s)
	h.arena[newIdx].children = append(h.arena[newIdx].children, sibs[i])

	out := append([]int(nil), sibs[:i]...)
	out = append(out, newIdx)
	for j := i + 1; j < len(sibs); j++ {
		nj := &h.arena[sibs[j]]
		switch {
		case nj.sdp.Disjoint(s):
			out = append(out, sibs[j])
		case nj.sdp.SubsetOf(s):
			h.arena[newIdx].children = append(h.arena[newIdx].children, sibs[j])
		default:
			return mkerr.IncompatibleSdp{Detail: fmt.Sprintf("sdp %v neither subset of nor disjoint from %v", nj.sdp, s)}
		}
	}
	*siblings = out
	return nil
}
