package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/maxkphylo/genotype"
	"github.com/stretchr/testify/assert"
)

func TestInMemoryStoreRoundTrip(t *testing.T) {
	m := genotype.NewInMemoryMatrix([]string{"S1", "S2"})
	assert.NoError(t, m.AppendRow([]genotype.Call{genotype.CallA, genotype.CallB}))
	assert.NoError(t, m.SetChromIDs([]string{"chr1"}))
	assert.NoError(t, m.SetBpPositions([]int64{100}))

	s := NewInMemoryStore(nil)
	assert.NoError(t, s.Save(context.Background(), m))

	loaded, err := s.Load(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, m.SnpCount(), loaded.SnpCount())
	assert.Equal(t, m.SampleIDs(), loaded.SampleIDs())
	assert.Equal(t, m.ChromIDs(), loaded.ChromIDs())
	assert.Equal(t, m.BpPositions(), loaded.BpPositions())
}

func TestTrailerRoundTrip(t *testing.T) {
	raw := encodeTrailer(42, 0xdeadbeef)
	numRows, checksum, err := decodeTrailer(raw)
	assert.NoError(t, err)
	assert.Equal(t, uint64(42), numRows)
	assert.Equal(t, uint64(0xdeadbeef), checksum)
}

// TestRecordioMatrixSaveLoadRoundTrip drives the real recordio.Writer/Scanner
// + recordiozstd transformer + go-farm checksum path end to end, the same
// round trip basestrand_test.go's TestReadWriteBaseStrandsRio exercises for
// pileup rows.
func TestRecordioMatrixSaveLoadRoundTrip(t *testing.T) {
	ctx := vcontext.Background()
	m := genotype.NewInMemoryMatrix([]string{"S1", "S2", "S3"})
	assert.NoError(t, m.AppendRow([]genotype.Call{genotype.CallA, genotype.CallA, genotype.CallB}))
	assert.NoError(t, m.AppendRow([]genotype.Call{genotype.CallA, genotype.CallB, genotype.CallH}))
	assert.NoError(t, m.AppendRow([]genotype.Call{genotype.CallN, genotype.CallA, genotype.CallB}))
	assert.NoError(t, m.SetChromIDs([]string{"chr1", "chr1", "chr2"}))
	assert.NoError(t, m.SetSnpIDs([]string{"rs1", "rs2", "rs3"}))
	assert.NoError(t, m.SetBpPositions([]int64{100, 200, 50}))
	assert.NoError(t, m.SetAAlleles([]byte{'A', 'A', 'A'}))
	assert.NoError(t, m.SetBAlleles([]byte{'C', 'C', 'C'}))
	assert.NoError(t, m.SetBuildID("GRCh38"))
	assert.NoError(t, m.SetSortedByPosition(false))

	path := filepath.Join(t.TempDir(), "matrix.rio")
	s := NewRecordioMatrix(path)
	assert.NoError(t, s.Save(ctx, m))

	loaded, err := s.Load(ctx)
	assert.NoError(t, err)
	assert.Equal(t, m.SampleIDs(), loaded.SampleIDs())
	assert.Equal(t, m.SnpCount(), loaded.SnpCount())
	assert.Equal(t, m.ChromIDs(), loaded.ChromIDs())
	assert.Equal(t, m.SnpIDs(), loaded.SnpIDs())
	assert.Equal(t, m.BpPositions(), loaded.BpPositions())
	assert.Equal(t, m.AAlleles(), loaded.AAlleles())
	assert.Equal(t, m.BAlleles(), loaded.BAlleles())
	assert.Equal(t, m.BuildID(), loaded.BuildID())
	assert.Equal(t, m.SortedByPosition(), loaded.SortedByPosition())
	for i := uint64(0); i < m.SnpCount(); i++ {
		assert.Equal(t, m.SnpCalls(i), loaded.SnpCalls(i))
	}
}

// TestRecordioMatrixLoadDetectsCorruption flips a byte in a saved file and
// checks that Load's checksum comparison rejects it, rather than silently
// returning corrupted calls.
func TestRecordioMatrixLoadDetectsCorruption(t *testing.T) {
	ctx := vcontext.Background()
	m := genotype.NewInMemoryMatrix([]string{"S1", "S2"})
	assert.NoError(t, m.AppendRow([]genotype.Call{genotype.CallA, genotype.CallB}))
	assert.NoError(t, m.AppendRow([]genotype.Call{genotype.CallB, genotype.CallA}))
	assert.NoError(t, m.SetChromIDs([]string{"chr1", "chr1"}))
	assert.NoError(t, m.SetBpPositions([]int64{10, 20}))

	path := filepath.Join(t.TempDir(), "matrix.rio")
	s := NewRecordioMatrix(path)
	assert.NoError(t, s.Save(ctx, m))

	raw, err := os.ReadFile(path)
	assert.NoError(t, err)
	corrupt := append([]byte(nil), raw...)
	corrupt[len(corrupt)-1] ^= 0xff
	assert.NoError(t, os.WriteFile(path, corrupt, 0o644))

	_, err = s.Load(ctx)
	assert.Error(t, err)
}

func TestRowMarshalRoundTrip(t *testing.T) {
	r := &row{
		chromID: "chr1",
		snpID:   "rs1",
		bp:      12345,
		aAllele: 'A',
		bAllele: 'C',
		calls:   []genotype.Call{genotype.CallA, genotype.CallB, genotype.CallH, genotype.CallN},
	}
	buf, err := marshalRow(nil, r)
	assert.NoError(t, err)
	got, err := unmarshalRow(buf)
	assert.NoError(t, err)
	gotRow := got.(*row)
	assert.Equal(t, r.chromID, gotRow.chromID)
	assert.Equal(t, r.snpID, gotRow.snpID)
	assert.Equal(t, r.bp, gotRow.bp)
	assert.Equal(t, r.aAllele, gotRow.aAllele)
	assert.Equal(t, r.bAllele, gotRow.bAllele)
	assert.Equal(t, r.calls, gotRow.calls)
}
