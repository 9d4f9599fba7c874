package genotype

import (
	"github.com/grailbio/maxkphylo/chromorder"
	"github.com/grailbio/maxkphylo/mkerr"
)

// InMemoryMatrix is a MutableMatrix backed entirely by in-process slices. It
// is the reference CallMatrix implementation; store.RecordioMatrix persists
// one to a file and loads it back as an InMemoryMatrix.
type InMemoryMatrix struct {
	sampleCount uint32
	sampleIDs   []string

	// rows[i] holds SampleCount() calls for SNP i.
	rows [][]Call

	snpIDs      []string
	chromIDs    []string
	bpPositions []int64
	aAlleles    []byte
	bAlleles    []byte

	buildID          string
	sortedByPosition bool
}

// NewInMemoryMatrix returns an empty matrix with the given sample ids fixed
// for its lifetime.
func NewInMemoryMatrix(sampleIDs []string) *InMemoryMatrix {
	return &InMemoryMatrix{
		sampleCount: uint32(len(sampleIDs)),
		sampleIDs:   append([]string(nil), sampleIDs...),
	}
}

func (m *InMemoryMatrix) SnpCount() uint64     { return uint64(len(m.rows)) }
func (m *InMemoryMatrix) SampleCount() uint32  { return m.sampleCount }
func (m *InMemoryMatrix) SnpCalls(i uint64) []Call { return m.rows[i] }
func (m *InMemoryMatrix) SampleIDs() []string  { return m.sampleIDs }
func (m *InMemoryMatrix) SnpIDs() []string     { return m.snpIDs }
func (m *InMemoryMatrix) ChromIDs() []string   { return m.chromIDs }
func (m *InMemoryMatrix) BpPositions() []int64 { return m.bpPositions }
func (m *InMemoryMatrix) AAlleles() []byte     { return m.aAlleles }
func (m *InMemoryMatrix) BAlleles() []byte     { return m.bAlleles }
func (m *InMemoryMatrix) BuildID() string      { return m.buildID }
func (m *InMemoryMatrix) SortedByPosition() bool { return m.sortedByPosition }

func (m *InMemoryMatrix) SetSampleIDs(ids []string) error {
	m.sampleIDs = ids
	m.sampleCount = uint32(len(ids))
	return nil
}

func (m *InMemoryMatrix) SetSnpIDs(ids []string) error      { m.snpIDs = ids; return nil }
func (m *InMemoryMatrix) SetChromIDs(ids []string) error    { m.chromIDs = ids; return nil }
func (m *InMemoryMatrix) SetBpPositions(p []int64) error    { m.bpPositions = p; return nil }
func (m *InMemoryMatrix) SetAAlleles(a []byte) error        { m.aAlleles = a; return nil }
func (m *InMemoryMatrix) SetBAlleles(b []byte) error        { m.bAlleles = b; return nil }
func (m *InMemoryMatrix) SetBuildID(id string) error        { m.buildID = id; return nil }
func (m *InMemoryMatrix) SetSortedByPosition(s bool) error  { m.sortedByPosition = s; return nil }

func (m *InMemoryMatrix) AppendRow(calls []Call) error {
	if len(m.rows) == 0 && m.sampleCount == 0 {
		m.sampleCount = uint32(len(calls))
	}
	if uint32(len(calls)) != m.sampleCount {
		return mkerr.BadInputFormat{Msg: "row length does not match sample count"}
	}
	m.rows = append(m.rows, calls)
	return nil
}

// ChromosomeViews partitions the matrix into maximal contiguous runs of
// identical chromosome id, in row order.
func (m *InMemoryMatrix) ChromosomeViews() ([]Matrix, error) {
	return chromosomeViews(m)
}

// ReverseView returns the reverse adapter over m.
func (m *InMemoryMatrix) ReverseView() Matrix {
	return newReverseView(m)
}

// SubsetView returns the contiguous-subset adapter over m.
func (m *InMemoryMatrix) SubsetView(start, extent uint64) Matrix {
	return newSubsetView(m, start, extent)
}

// chromosomeViews is shared by every Matrix implementation (InMemoryMatrix
// and views alike) since it only needs the Matrix interface.
func chromosomeViews(mat Matrix) ([]Matrix, error) {
	chromIDs := mat.ChromIDs()
	if chromIDs == nil {
		return nil, mkerr.MissingChromosomeIds{}
	}
	n := mat.SnpCount()
	if n == 0 {
		return nil, nil
	}
	var views []Matrix
	start := uint64(0)
	for i := uint64(1); i <= n; i++ {
		if i == n || chromIDs[i] != chromIDs[start] {
			views = append(views, mat.SubsetView(start, i-start))
			start = i
		}
	}
	return views, nil
}

type chromKeyedView struct {
	v   Matrix
	key chromorder.Key
}

// SortViewsByChromosome sorts chromosome views (as returned by
// ChromosomeViews) into chromorder.Key ascending order, using each view's
// first SNP's chromosome id. pipeline uses this to satisfy the ordering
// guarantee in spec.md §5.
func SortViewsByChromosome(views []Matrix) ([]Matrix, error) {
	ks := make([]chromKeyedView, len(views))
	for i, v := range views {
		ids := v.ChromIDs()
		if len(ids) == 0 {
			return nil, mkerr.MissingChromosomeIds{}
		}
		k, err := chromorder.Parse(ids[0])
		if err != nil {
			return nil, err
		}
		ks[i] = chromKeyedView{v, k}
	}
	// Simple insertion sort: chromosome counts are small (tens), and this
	// keeps the dependency surface to the standard comparator only.
	for i := 1; i < len(ks); i++ {
		for j := i; j > 0 && ks[j].key.LT(ks[j-1].key); j-- {
			ks[j], ks[j-1] = ks[j-1], ks[j]
		}
	}
	out := make([]Matrix, len(ks))
	for i, k := range ks {
		out[i] = k.v
	}
	return out, nil
}
