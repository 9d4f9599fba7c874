// Copyright 2020 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package main

/*
phylogeny-to-sdp reads the interval/phylogeny CSV or TSV produced by
max-k-phylogeny and aggregates every tree's internal-edge sample
distribution patterns (SDPs) across the whole input, grouping identical
bitsets and recording every genomic interval each one was extracted from.
*/

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/maxkphylo/aggregate"
	"github.com/grailbio/maxkphylo/genio"
	"github.com/grailbio/maxkphylo/mkerr"
	"github.com/pkg/errors"
)

var (
	in         = flag.String("in", "", "Input interval/phylogeny path, as produced by max-k-phylogeny")
	out        = flag.String("out", "", "Output path for the SDP aggregate TSV or CSV")
	samples    = flag.String("samples", "", "Comma-separated sample ids, fixing column order; required")
	minorCount = flag.Int("minor-count", 1, "Minimum minor-allele sample count for an SDP to be reported")
	inDelim    = flag.String("in-delimiter", "\t", "Input field delimiter")
	csvOut     = flag.Bool("csv", false, "Emit CSV instead of TSV")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s -in <tsv> -samples <S1,S2,...> -minor-count <int> -out <csv>\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	shutdown := grail.Init()
	defer shutdown()

	if *in == "" || *out == "" || *samples == "" {
		log.Fatalf("-in, -samples, and -out are required")
	}
	sampleOrder := strings.Split(*samples, ",")

	intervals, err := readIntervals(*in, *inDelim)
	if err != nil {
		log.Fatalf("reading %s: %v", *in, err)
	}

	groups, err := aggregate.Run(intervals, sampleOrder, *minorCount)
	if err != nil {
		log.Fatalf("aggregating SDPs: %v", err)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("creating %s: %v", *out, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Error.Printf("closing %s: %v", *out, cerr)
		}
	}()

	delimOpt := genio.TAB
	if *csvOut {
		delimOpt = genio.CSV
	}
	w := genio.NewSDPWriter(f, sampleOrder, delimOpt)
	for _, g := range groups {
		calls := make([]string, len(sampleOrder))
		for i := range sampleOrder {
			if g.SDP.Test(i) {
				calls[i] = "1"
			} else {
				calls[i] = "0"
			}
		}
		row := genio.SDPRow{Calls: calls}
		for _, iv := range g.Intervals {
			row.Intervals = append(row.Intervals, genio.GenomicInterval{Chrom: iv.Chrom, BpStart: iv.BpStart, BpEnd: iv.BpEnd})
		}
		if err := w.Write(row); err != nil {
			log.Fatalf("writing SDP row: %v", err)
		}
	}
	if err := w.Flush(); err != nil {
		log.Fatalf("flushing %s: %v", *out, err)
	}
	log.Debug.Printf("wrote %d distinct SDPs to %s", len(groups), *out)
}

// readIntervals parses the fixed-shape interval/phylogeny file (header
// chrID, bpStartPosition, bpEndPosition, newickPerfectPhylogeny) that
// max-k-phylogeny produces. Each line is split on delim with no unquoting,
// so max-k-phylogeny's default TSV output is read; its CSV output, whose
// quoted Newick field contains commas, fails the four-column check.
func readIntervals(path, delim string) ([]aggregate.Interval, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64<<10), 1<<20)
	if !scanner.Scan() {
		return nil, mkerr.BadInputFormat{Msg: "empty input"}
	}
	var out []aggregate.Interval
	for lineNum := 1; scanner.Scan(); lineNum++ {
		fields := strings.Split(scanner.Text(), delim)
		if len(fields) != 4 {
			return nil, mkerr.BadInputFormat{Msg: "line " + strconv.Itoa(lineNum) + ": expected 4 columns"}
		}
		bpStart, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: parsing bpStartPosition", lineNum)
		}
		bpEnd, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: parsing bpEndPosition", lineNum)
		}
		out = append(out, aggregate.Interval{Chrom: fields[0], BpStart: bpStart, BpEnd: bpEnd, Newick: fields[3]})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scanning input")
	}
	return out, nil
}
