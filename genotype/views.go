package genotype

import "github.com/grailbio/maxkphylo/mkerr"

// subsetView is a read-only adapter over a contiguous SNP range
// [start, start+extent) of an underlying Matrix.
type subsetView struct {
	unsupportedMutator
	under  Matrix
	start  uint64
	extent uint64
}

func newSubsetView(under Matrix, start, extent uint64) Matrix {
	return &subsetView{under: under, start: start, extent: extent}
}

func (v *subsetView) SnpCount() uint64    { return v.extent }
func (v *subsetView) SampleCount() uint32 { return v.under.SampleCount() }
func (v *subsetView) SnpCalls(i uint64) []Call { return v.under.SnpCalls(v.start + i) }
func (v *subsetView) SampleIDs() []string { return v.under.SampleIDs() }

func (v *subsetView) SnpIDs() []string { return sliceOrNil(v.under.SnpIDs(), v.start, v.extent) }
func (v *subsetView) ChromIDs() []string {
	return sliceOrNil(v.under.ChromIDs(), v.start, v.extent)
}
func (v *subsetView) BpPositions() []int64 {
	a := v.under.BpPositions()
	if a == nil {
		return nil
	}
	return a[v.start : v.start+v.extent]
}
func (v *subsetView) AAlleles() []byte { return sliceBytesOrNil(v.under.AAlleles(), v.start, v.extent) }
func (v *subsetView) BAlleles() []byte { return sliceBytesOrNil(v.under.BAlleles(), v.start, v.extent) }

func (v *subsetView) BuildID() string        { return v.under.BuildID() }
func (v *subsetView) SortedByPosition() bool { return v.under.SortedByPosition() }

func (v *subsetView) ChromosomeViews() ([]Matrix, error) { return chromosomeViews(v) }
func (v *subsetView) ReverseView() Matrix                { return newReverseView(v) }
func (v *subsetView) SubsetView(start, extent uint64) Matrix {
	return newSubsetView(v.under, v.start+start, extent)
}

func sliceOrNil(a []string, start, extent uint64) []string {
	if a == nil {
		return nil
	}
	return a[start : start+extent]
}

func sliceBytesOrNil(a []byte, start, extent uint64) []byte {
	if a == nil {
		return nil
	}
	return a[start : start+extent]
}

// reverseView is a read-only adapter presenting the underlying matrix's SNPs
// in reverse row order. Per-SNP metadata arrays (chromosome, position,
// allele, SNP id) appear reversed; sample ids are unchanged; the bytes
// within each row are NOT reversed (resolving the spec's second Open
// Question: ReverseView.call_matrix() returns the reversed row sequence of
// the underlying matrix, with per-row byte order unchanged).
type reverseView struct {
	unsupportedMutator
	under Matrix
}

func newReverseView(under Matrix) Matrix {
	return &reverseView{under: under}
}

func (v *reverseView) reverseIndex(i uint64) uint64 {
	return v.under.SnpCount() - 1 - i
}

func (v *reverseView) SnpCount() uint64    { return v.under.SnpCount() }
func (v *reverseView) SampleCount() uint32 { return v.under.SampleCount() }
func (v *reverseView) SnpCalls(i uint64) []Call {
	return v.under.SnpCalls(v.reverseIndex(i))
}
func (v *reverseView) SampleIDs() []string { return v.under.SampleIDs() }

func (v *reverseView) SnpIDs() []string      { return reverseStrings(v.under.SnpIDs()) }
func (v *reverseView) ChromIDs() []string    { return reverseStrings(v.under.ChromIDs()) }
func (v *reverseView) BpPositions() []int64  { return reverseInt64s(v.under.BpPositions()) }
func (v *reverseView) AAlleles() []byte      { return reverseBytes(v.under.AAlleles()) }
func (v *reverseView) BAlleles() []byte      { return reverseBytes(v.under.BAlleles()) }
func (v *reverseView) BuildID() string       { return v.under.BuildID() }
func (v *reverseView) SortedByPosition() bool {
	// Reversing descends rather than ascends, so a forward-sorted underlying
	// matrix is no longer "sorted ascending" from the view's perspective.
	return false
}

func (v *reverseView) ChromosomeViews() ([]Matrix, error) { return chromosomeViews(v) }
func (v *reverseView) ReverseView() Matrix                { return v.under }
func (v *reverseView) SubsetView(start, extent uint64) Matrix {
	return newSubsetView(v, start, extent)
}

func reverseStrings(a []string) []string {
	if a == nil {
		return nil
	}
	out := make([]string, len(a))
	for i, s := range a {
		out[len(a)-1-i] = s
	}
	return out
}

func reverseInt64s(a []int64) []int64 {
	if a == nil {
		return nil
	}
	out := make([]int64, len(a))
	for i, x := range a {
		out[len(a)-1-i] = x
	}
	return out
}

func reverseBytes(a []byte) []byte {
	if a == nil {
		return nil
	}
	out := make([]byte, len(a))
	for i, x := range a {
		out[len(a)-1-i] = x
	}
	return out
}

// unsupportedMutator is embedded by every view so that it also satisfies
// MutableMatrix: a caller holding a Matrix that turns out to be a view can
// still attempt a setter (e.g. after a failed type assertion elsewhere) and
// get a uniform mkerr.ErrUnsupportedOnView instead of a panic.
type unsupportedMutator struct{}

func (unsupportedMutator) SetSampleIDs([]string) error { return mkerr.ErrUnsupportedOnView{Op: "SetSampleIDs"} }
func (unsupportedMutator) SetSnpIDs([]string) error { return mkerr.ErrUnsupportedOnView{Op: "SetSnpIDs"} }
func (unsupportedMutator) SetChromIDs([]string) error {
	return mkerr.ErrUnsupportedOnView{Op: "SetChromIDs"}
}
func (unsupportedMutator) SetBpPositions([]int64) error {
	return mkerr.ErrUnsupportedOnView{Op: "SetBpPositions"}
}
func (unsupportedMutator) SetAAlleles([]byte) error { return mkerr.ErrUnsupportedOnView{Op: "SetAAlleles"} }
func (unsupportedMutator) SetBAlleles([]byte) error { return mkerr.ErrUnsupportedOnView{Op: "SetBAlleles"} }
func (unsupportedMutator) SetBuildID(string) error  { return mkerr.ErrUnsupportedOnView{Op: "SetBuildID"} }
func (unsupportedMutator) SetSortedByPosition(bool) error {
	return mkerr.ErrUnsupportedOnView{Op: "SetSortedByPosition"}
}
func (unsupportedMutator) AppendRow([]Call) error { return mkerr.ErrUnsupportedOnView{Op: "AppendRow"} }
