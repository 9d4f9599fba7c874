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
max-k-phylogeny reads a biallelic genotype call matrix and, per chromosome,
partitions it into the maximal set of pairwise-compatible SNP intervals
(the "max-K" selection) and emits each interval's perfect phylogeny as
Newick.
*/

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/maxkphylo/genio"
	"github.com/grailbio/maxkphylo/pipeline"
)

var (
	in     = flag.String("in", "", "Input genotype call matrix TSV/CSV path(s), comma-separated; headers must match byte for byte")
	out    = flag.String("out", "", "Output path for the interval/phylogeny TSV or CSV")
	delim  = flag.String("in-delimiter", "\t", "Input field delimiter")
	csvOut = flag.Bool("csv", false, "Emit CSV instead of TSV")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s -in <matrix>[,<matrix>...] -out <output>\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	shutdown := grail.Init()
	defer shutdown()

	if *in == "" || *out == "" {
		log.Fatalf("-in and -out are required")
	}
	ctx := vcontext.Background()

	m, err := genio.IngestFiles(strings.Split(*in, ","), genio.WithDelimiter(*delim))
	if err != nil {
		log.Fatalf("ingest: %v", err)
	}

	rows, err := pipeline.Run(ctx, m)
	if err != nil {
		log.Fatalf("pipeline: %v", err)
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
	w := genio.NewRowWriter(f, delimOpt)
	for _, r := range rows {
		if err := w.Write(genio.IntervalRow{Chrom: r.Chrom, BpStart: r.BpStart, BpEnd: r.BpEnd, Newick: r.Newick}); err != nil {
			log.Fatalf("writing row: %v", err)
		}
	}
	if err := w.Flush(); err != nil {
		log.Fatalf("flushing %s: %v", *out, err)
	}
	log.Debug.Printf("wrote %d rows to %s", len(rows), *out)
}
