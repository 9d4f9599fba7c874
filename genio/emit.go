package genio

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/grailbio/base/tsv"
	"github.com/grailbio/maxkphylo/mkerr"
)

// Delimiter selects the output field delimiter for RowWriter/SDPWriter.
type Delimiter int

const (
	// TAB emits TSV: RowWriter via grailbio/base/tsv's struct-tag
	// reflection, SDPWriter by joining fields with tabs.
	TAB Delimiter = iota
	// CSV emits comma-separated, quoted output via encoding/csv; tsv.RowWriter
	// has no quoting/escaping, which CSV mode needs for fields that might
	// contain a comma (e.g. a Newick string's commas), so CSV mode bypasses
	// it and drives encoding/csv directly off the same field values.
	CSV
)

// IntervalRow is one row of max-K phylogeny output: a compatible interval on
// one chromosome and its Newick phylogeny. Field tags match spec.md §6's
// required header literally: chrID, bpStartPosition, bpEndPosition,
// newickPerfectPhylogeny.
type IntervalRow struct {
	Chrom   string `tsv:"chrID"`
	BpStart int64  `tsv:"bpStartPosition"`
	BpEnd   int64  `tsv:"bpEndPosition"`
	Newick  string `tsv:"newickPerfectPhylogeny"`
}

// RowWriter emits IntervalRow values, the way pileup/snp/basestrand.go's
// WriteBaseStrandTsv drives a grailbio/base/tsv.RowWriter over a
// fixed-shape struct; in CSV mode it writes the same columns through
// encoding/csv instead.
type RowWriter struct {
	tw       *tsv.RowWriter
	cw       *csv.Writer
	wroteHdr bool
}

// NewRowWriter returns a RowWriter over w using delim (default TAB).
func NewRowWriter(w io.Writer, delim ...Delimiter) *RowWriter {
	if len(delim) > 0 && delim[0] == CSV {
		return &RowWriter{cw: csv.NewWriter(w)}
	}
	return &RowWriter{tw: tsv.NewRowWriter(w)}
}

// Write emits one interval row.
func (rw *RowWriter) Write(row IntervalRow) error {
	if rw.tw != nil {
		return rw.tw.Write(&row)
	}
	if !rw.wroteHdr {
		if err := rw.cw.Write([]string{"chrID", "bpStartPosition", "bpEndPosition", "newickPerfectPhylogeny"}); err != nil {
			return err
		}
		rw.wroteHdr = true
	}
	return rw.cw.Write([]string{
		row.Chrom,
		strconv.FormatInt(row.BpStart, 10),
		strconv.FormatInt(row.BpEnd, 10),
		row.Newick,
	})
}

// Flush flushes any buffered output.
func (rw *RowWriter) Flush() error {
	if rw.tw != nil {
		return rw.tw.Flush()
	}
	rw.cw.Flush()
	return rw.cw.Error()
}

// SDPRow is one row of the SDP aggregator's output: one distinct SDP bitset
// passing the minor-count threshold, as a "1"/"0" call per sample plus the
// genomic intervals whose phylogeny contributed it.
type SDPRow struct {
	// Calls holds one "1"/"0" per sample, in the same order as the sample
	// ids SDPWriter was constructed with.
	Calls []string
	// Intervals is the set of {chrom, bpStart, bpEnd} triples this SDP was
	// extracted from; SDPWriter joins them with "|" into genomicIntervals,
	// each triple internally joined with ";", per spec.md §6.
	Intervals []GenomicInterval
}

// GenomicInterval is one chr;bp_start;bp_end triple contributing to an
// SDPRow's genomicIntervals column.
type GenomicInterval struct {
	Chrom   string
	BpStart int64
	BpEnd   int64
}

func (g GenomicInterval) String() string {
	return g.Chrom + ";" + strconv.FormatInt(g.BpStart, 10) + ";" + strconv.FormatInt(g.BpEnd, 10)
}

// SDPWriter emits SDPRow values. Its row shape (one column per sample) is
// determined at runtime from sampleIDs, the same reason Ingest uses
// bufio.Scanner plus strings.Split rather than grailbio/base/tsv's
// reflection: the column count isn't fixed at compile time.
type SDPWriter struct {
	w         io.Writer
	delim     string
	csv       bool
	cw        *csv.Writer
	sampleIDs []string
	wroteHdr  bool
}

// NewSDPWriter returns an SDPWriter over w for the given sample ids, using
// delim (default TAB).
func NewSDPWriter(w io.Writer, sampleIDs []string, delim ...Delimiter) *SDPWriter {
	sw := &SDPWriter{w: w, sampleIDs: sampleIDs, delim: "\t"}
	if len(delim) > 0 && delim[0] == CSV {
		sw.csv = true
		sw.cw = csv.NewWriter(w)
	}
	return sw
}

func (sw *SDPWriter) header() []string {
	hdr := append([]string(nil), sw.sampleIDs...)
	return append(hdr, "genomicIntervals")
}

// Write emits one SDP row.
func (sw *SDPWriter) Write(row SDPRow) error {
	if len(row.Calls) != len(sw.sampleIDs) {
		return mkerr.BadInputFormat{Msg: "SDPRow.Calls length does not match sample count"}
	}
	intervals := make([]string, len(row.Intervals))
	for i, g := range row.Intervals {
		intervals[i] = g.String()
	}
	fields := append(append([]string(nil), row.Calls...), strings.Join(intervals, "|"))

	if sw.csv {
		if !sw.wroteHdr {
			if err := sw.cw.Write(sw.header()); err != nil {
				return err
			}
			sw.wroteHdr = true
		}
		return sw.cw.Write(fields)
	}
	if !sw.wroteHdr {
		if _, err := io.WriteString(sw.w, strings.Join(sw.header(), sw.delim)+"\n"); err != nil {
			return err
		}
		sw.wroteHdr = true
	}
	_, err := io.WriteString(sw.w, strings.Join(fields, sw.delim)+"\n")
	return err
}

// Flush flushes any buffered output.
func (sw *SDPWriter) Flush() error {
	if sw.csv {
		sw.cw.Flush()
		return sw.cw.Error()
	}
	return nil
}
