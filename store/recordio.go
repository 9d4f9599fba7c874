package store

import (
	"context"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/dgryski/go-farm"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/recordio"
	"github.com/grailbio/base/recordio/recordiozstd"
	"github.com/grailbio/maxkphylo/genotype"
	"github.com/grailbio/maxkphylo/mkerr"
)

func init() {
	recordiozstd.Init()
}

const (
	headerSampleIDs  = "sample_ids"  // \0-joined, as pileup/snp/output.go does for ref names
	headerBuildID    = "build_id"
	headerSortedFlag = "sorted_by_position"
)

// row is one recordio record: one SNP's calls plus its sidecar metadata.
type row struct {
	chromID string
	snpID   string
	bp      int64
	aAllele byte
	bAllele byte
	calls   []genotype.Call
}

// RecordioMatrix is a recordio-backed CallMatrix store that persists a
// matrix to a file. Load reads the whole file back into an in-memory
// matrix; rows are not fetched lazily. It mirrors
// pileup/snp/output.go's convertPileupRowsToBasestrandRio: a
// recordio.Writer with the zstd transformer, header key/value pairs for
// fixed metadata, and one Append call per record; the matching Scanner on
// read.
type RecordioMatrix struct {
	path string
}

// NewRecordioMatrix returns a store backed by the recordio file at path.
func NewRecordioMatrix(path string) *RecordioMatrix {
	return &RecordioMatrix{path: path}
}

// Save writes m to the store's recordio file in full, one record per SNP
// row.
func (s *RecordioMatrix) Save(ctx context.Context, m genotype.Matrix) (err error) {
	dst, err := file.Create(ctx, s.path)
	if err != nil {
		return err
	}
	defer file.CloseAndReport(ctx, dst, &err)

	w := recordio.NewWriter(dst.Writer(ctx), recordio.WriterOpts{
		Marshal:      marshalRow,
		Transformers: []string{recordiozstd.Name},
	})
	w.AddHeader(headerSampleIDs, strings.Join(m.SampleIDs(), "\000"))
	w.AddHeader(headerBuildID, m.BuildID())
	w.AddHeader(headerSortedFlag, m.SortedByPosition())
	w.AddHeader(recordio.KeyTrailer, true)

	chromIDs, snpIDs, bp := m.ChromIDs(), m.SnpIDs(), m.BpPositions()
	aAlleles, bAlleles := m.AAlleles(), m.BAlleles()
	n := m.SnpCount()
	var checksum uint64
	for i := uint64(0); i < n; i++ {
		r := row{calls: m.SnpCalls(i)}
		if chromIDs != nil {
			r.chromID = chromIDs[i]
		}
		if snpIDs != nil {
			r.snpID = snpIDs[i]
		}
		if bp != nil {
			r.bp = bp[i]
		}
		if aAlleles != nil {
			r.aAllele = aAlleles[i]
		}
		if bAlleles != nil {
			r.bAllele = bAlleles[i]
		}
		checksum = farm.Hash64WithSeed(encodeRowForChecksum(r), checksum)
		if err := w.Append(&r); err != nil {
			return err
		}
	}
	w.SetTrailer(encodeTrailer(n, checksum))
	return w.Finish()
}

// Load reads the store's recordio file back into an in-memory matrix. The
// checksum recorded at Save time is recomputed and compared, failing with
// mkerr.BadInputFormat on mismatch.
func (s *RecordioMatrix) Load(ctx context.Context) (m *genotype.InMemoryMatrix, err error) {
	src, err := file.Open(ctx, s.path)
	if err != nil {
		return nil, err
	}
	defer file.CloseAndReport(ctx, src, &err)

	scanner := recordio.NewScanner(src.Reader(ctx), recordio.ScannerOpts{
		Unmarshal: unmarshalRow,
	})
	var sampleIDsPacked, buildID string
	var sortedByPosition bool
	for _, kv := range scanner.Header() {
		switch kv.Key {
		case headerSampleIDs:
			sampleIDsPacked, _ = kv.Value.(string)
		case headerBuildID:
			buildID, _ = kv.Value.(string)
		case headerSortedFlag:
			sortedByPosition, _ = kv.Value.(bool)
		}
	}
	sampleIDs := strings.Split(sampleIDsPacked, "\000")
	out := genotype.NewInMemoryMatrix(sampleIDs)

	var chromIDs, snpIDs []string
	var bp []int64
	var aAlleles, bAlleles []byte
	var checksum uint64
	var numRows uint64
	for scanner.Scan() {
		r := scanner.Get().(*row)
		checksum = farm.Hash64WithSeed(encodeRowForChecksum(*r), checksum)
		numRows++
		if err := out.AppendRow(r.calls); err != nil {
			return nil, err
		}
		chromIDs = append(chromIDs, r.chromID)
		snpIDs = append(snpIDs, r.snpID)
		bp = append(bp, r.bp)
		aAlleles = append(aAlleles, r.aAllele)
		bAlleles = append(bAlleles, r.bAllele)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := out.SetChromIDs(chromIDs); err != nil {
		return nil, err
	}
	if err := out.SetSnpIDs(snpIDs); err != nil {
		return nil, err
	}
	if err := out.SetBpPositions(bp); err != nil {
		return nil, err
	}
	if err := out.SetAAlleles(aAlleles); err != nil {
		return nil, err
	}
	if err := out.SetBAlleles(bAlleles); err != nil {
		return nil, err
	}
	if err := out.SetBuildID(buildID); err != nil {
		return nil, err
	}
	if err := out.SetSortedByPosition(sortedByPosition); err != nil {
		return nil, err
	}

	if raw := scanner.Trailer(); len(raw) != 0 {
		wantRows, wantChecksum, err := decodeTrailer(raw)
		if err != nil {
			return nil, err
		}
		if wantRows != numRows || wantChecksum != checksum {
			return nil, mkerr.BadInputFormat{Msg: fmt.Sprintf("recordio matrix store %s: checksum or row count mismatch", s.path)}
		}
	}
	return out, nil
}

// encodeTrailer/decodeTrailer pack the row count and go-farm fingerprint
// written at Save time into the raw trailer byte string, the way
// basestrand.go's baseStrandsRioTrailer/parseBaseStrandsTrailer encode a
// version and count with encoding/binary.
func encodeTrailer(numRows, checksum uint64) []byte {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint64(buf[:8], numRows)
	binary.LittleEndian.PutUint64(buf[8:], checksum)
	return buf
}

func decodeTrailer(raw []byte) (numRows, checksum uint64, err error) {
	if len(raw) != 16 {
		return 0, 0, mkerr.BadInputFormat{Msg: "malformed recordio matrix trailer"}
	}
	return binary.LittleEndian.Uint64(raw[:8]), binary.LittleEndian.Uint64(raw[8:]), nil
}

func encodeRowForChecksum(r row) []byte {
	buf := make([]byte, 0, 8+len(r.calls))
	buf = append(buf, []byte(r.chromID)...)
	buf = append(buf, []byte(r.snpID)...)
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], uint64(r.bp))
	buf = append(buf, tmp[:]...)
	buf = append(buf, r.aAllele, r.bAllele)
	for _, c := range r.calls {
		buf = append(buf, byte(c))
	}
	return buf
}

func marshalRow(scratch []byte, v interface{}) ([]byte, error) {
	r := v.(*row)
	out := encodeRowForChecksum(*r)
	var lenBuf [8]byte
	binary.LittleEndian.PutUint32(lenBuf[:4], uint32(len(r.chromID)))
	binary.LittleEndian.PutUint32(lenBuf[4:8], uint32(len(r.snpID)))
	return append(lenBuf[:], out...), nil
}

func unmarshalRow(in []byte) (interface{}, error) {
	if len(in) < 8 {
		return nil, mkerr.BadInputFormat{Msg: "truncated recordio row"}
	}
	chromLen := binary.LittleEndian.Uint32(in[:4])
	snpLen := binary.LittleEndian.Uint32(in[4:8])
	body := in[8:]
	if uint32(len(body)) < chromLen+snpLen+10 {
		return nil, mkerr.BadInputFormat{Msg: "truncated recordio row body"}
	}
	r := &row{
		chromID: string(body[:chromLen]),
		snpID:   string(body[chromLen : chromLen+snpLen]),
	}
	rest := body[chromLen+snpLen:]
	r.bp = int64(binary.LittleEndian.Uint64(rest[:8]))
	r.aAllele = rest[8]
	r.bAllele = rest[9]
	calls := rest[10:]
	r.calls = make([]genotype.Call, len(calls))
	for i, c := range calls {
		r.calls[i] = genotype.Call(int8(c))
	}
	return r, nil
}
