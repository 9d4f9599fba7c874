package genotype

// Matrix is the read-only capability every CallMatrix implementation and
// view must provide. Row access must be O(sample_count) or better;
// implementations may cache or lazily fetch from backing storage.
type Matrix interface {
	// SnpCount returns the number of SNP rows.
	SnpCount() uint64
	// SampleCount returns the number of samples (columns).
	SampleCount() uint32

	// SnpCalls returns the row of call codes for SNP i. The returned slice
	// must not be retained across calls that might invalidate it; callers
	// that need to keep it should copy.
	SnpCalls(i uint64) []Call

	// SampleIDs returns the sample ids, one per column, in column order.
	SampleIDs() []string

	// SnpIDs returns the per-SNP ids, or nil if not present.
	SnpIDs() []string
	// ChromIDs returns the per-SNP chromosome ids, or nil if not present.
	ChromIDs() []string
	// BpPositions returns the per-SNP base-pair positions, or nil if not
	// present.
	BpPositions() []int64
	// AAlleles returns the per-SNP A-allele characters, or nil if not
	// present.
	AAlleles() []byte
	// BAlleles returns the per-SNP B-allele characters, or nil if not
	// present.
	BAlleles() []byte

	// BuildID returns the opaque genome-build metadata string associated
	// with BpPositions, if any.
	BuildID() string
	// SortedByPosition reports whether rows are known to already be in
	// (chr, bp) ascending order under chromorder.
	SortedByPosition() bool

	// ChromosomeViews partitions the matrix into maximal contiguous runs of
	// identical chromosome id, in row order (not ChromosomeOrdering order;
	// callers that want emission order should sort the returned views
	// themselves, as pipeline does). Requires ChromIDs() to be non-nil;
	// fails with mkerr.MissingChromosomeIds otherwise.
	ChromosomeViews() ([]Matrix, error)

	// ReverseView returns a view where SNP index i maps to
	// SnpCount()-1-i on the underlying matrix. Chromosome, position,
	// allele, and SNP-id arrays appear reversed; sample ids are unchanged;
	// per-SNP call rows are returned without reversing within the row.
	ReverseView() Matrix

	// SubsetView returns a view over the contiguous SNP range
	// [start, start+extent).
	SubsetView(start, extent uint64) Matrix
}

// MutableMatrix adds the constructive setters used during ingest. Setting a
// nil-valued optional array deletes it. Views never implement this
// interface's semantics usefully; calling a setter on a view returns
// mkerr.ErrUnsupportedOnView (see unsupportedMutator, embedded by subsetView
// and reverseView).
type MutableMatrix interface {
	Matrix

	SetSampleIDs(ids []string) error
	SetSnpIDs(ids []string) error
	SetChromIDs(ids []string) error
	SetBpPositions(positions []int64) error
	SetAAlleles(alleles []byte) error
	SetBAlleles(alleles []byte) error
	SetBuildID(id string) error
	SetSortedByPosition(sorted bool) error

	// AppendRow appends one SNP's calls to the matrix. len(calls) must equal
	// SampleCount(); a matrix with no rows and no samples takes its sample
	// count from the first row.
	AppendRow(calls []Call) error
}
