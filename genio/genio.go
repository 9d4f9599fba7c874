// Package genio ingests genotype call matrices from delimited text and
// emits pipeline results back out. Ingest uses bufio.Scanner plus
// strings.Split the way pileup/common.go's loadFa scans reference FASTA
// lines, since the row shape (five fixed columns, then one column per
// sample) is determined at runtime from the header and so can't go through
// grailbio/base/tsv's struct-tag reflection. Interval-row emission in TSV
// mode, which has a fixed row shape, uses that reflection; CSV mode and the
// per-sample SDP rows do not (see emit.go).
package genio

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/grailbio/maxkphylo/genotype"
	"github.com/grailbio/maxkphylo/mkerr"
	"github.com/pkg/errors"
)

const fixedCols = 5 // SNP_ID, CHROM, POS, A_ALLELE, B_ALLELE

// IngestOpt configures Ingest.
type IngestOpt func(*ingestOpts)

type ingestOpts struct {
	delimiter string
}

// WithDelimiter overrides the field delimiter (default "\t").
func WithDelimiter(d string) IngestOpt {
	return func(o *ingestOpts) { o.delimiter = d }
}

// Ingest decodes r into an in-memory CallMatrix. The header row is
// SNP_ID, CHROM, POS, A_ALLELE, B_ALLELE, followed by one column per sample
// whose header is taken as the sample id; each data row supplies one
// genotype call per sample column, decoded with genotype.DecodeCall against
// that row's A_ALLELE/B_ALLELE.
func Ingest(r io.Reader, opts ...IngestOpt) (*genotype.InMemoryMatrix, error) {
	o := &ingestOpts{delimiter: "\t"}
	for _, opt := range opts {
		opt(o)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64<<10), 1<<20)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrap(err, "genio: reading header")
		}
		return nil, mkerr.BadInputFormat{Msg: "empty input"}
	}
	header := strings.Split(scanner.Text(), o.delimiter)
	if len(header) <= fixedCols {
		return nil, mkerr.BadInputFormat{Msg: "no sample columns in header"}
	}
	sampleIDs := append([]string(nil), header[fixedCols:]...)
	m := genotype.NewInMemoryMatrix(sampleIDs)

	var snpIDs, chromIDs []string
	var bp []int64
	var aAlleles, bAlleles []byte

	for lineNum := 1; scanner.Scan(); lineNum++ {
		fields := strings.Split(scanner.Text(), o.delimiter)
		if len(fields) != len(header) {
			return nil, mkerr.BadInputFormat{
				Msg: "line " + strconv.Itoa(lineNum) + ": column count does not match header",
			}
		}
		pos, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "genio: line %d: parsing POS %q", lineNum, fields[2])
		}
		aAllele, bAllele := alleleByte(fields[3]), alleleByte(fields[4])

		calls := make([]genotype.Call, len(sampleIDs))
		for i, tok := range fields[fixedCols:] {
			calls[i] = genotype.DecodeCall(tok, aAllele, bAllele)
		}
		if err := m.AppendRow(calls); err != nil {
			return nil, err
		}
		snpIDs = append(snpIDs, fields[0])
		chromIDs = append(chromIDs, fields[1])
		bp = append(bp, pos)
		aAlleles = append(aAlleles, aAllele)
		bAlleles = append(bAlleles, bAllele)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "genio: scanning input")
	}

	if err := m.SetSnpIDs(snpIDs); err != nil {
		return nil, err
	}
	if err := m.SetChromIDs(chromIDs); err != nil {
		return nil, err
	}
	if err := m.SetBpPositions(bp); err != nil {
		return nil, err
	}
	if err := m.SetAAlleles(aAlleles); err != nil {
		return nil, err
	}
	return m, m.SetBAlleles(bAlleles)
}

// IngestFiles opens and concatenates paths, which must share a byte-
// identical header line, and decodes the result with Ingest. Per-file
// opening uses plain os.Open rather than grailbio/base/file, since the CLI
// layer is the only caller and never needs the s3:// scheme dispatch that
// store.RecordioMatrix exercises.
func IngestFiles(paths []string, opts ...IngestOpt) (*genotype.InMemoryMatrix, error) {
	if len(paths) == 0 {
		return nil, mkerr.BadInputFormat{Msg: "no input files"}
	}
	var header string
	var body strings.Builder
	for i, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return nil, errors.Wrapf(err, "genio: opening %s", p)
		}
		scanner := bufio.NewScanner(f)
		scanner.Buffer(make([]byte, 64<<10), 1<<20)
		if !scanner.Scan() {
			f.Close()
			return nil, mkerr.BadInputFormat{Msg: "empty input file " + p}
		}
		if i == 0 {
			header = scanner.Text()
			body.WriteString(header)
			body.WriteByte('\n')
		} else if scanner.Text() != header {
			f.Close()
			return nil, mkerr.BadInputFormat{Msg: "header mismatch in " + p}
		}
		for scanner.Scan() {
			body.WriteString(scanner.Text())
			body.WriteByte('\n')
		}
		err = scanner.Err()
		f.Close()
		if err != nil {
			return nil, errors.Wrapf(err, "genio: reading %s", p)
		}
	}
	return Ingest(strings.NewReader(body.String()), opts...)
}

func alleleByte(s string) byte {
	if len(s) != 1 {
		return 0
	}
	return s[0]
}
