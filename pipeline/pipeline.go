// Package pipeline drives the engine end to end: for each chromosome view
// (in ChromosomeOrdering order), run the greedy/uber scans, select the
// max-K interval list, build a phylogeny per interval, and assemble output
// rows. Cross-chromosome work is fanned out with
// github.com/grailbio/base/traverse.Each, the way pileup/snp/pileup.go
// shards its main loop.
package pipeline

import (
	"context"
	"sort"

	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"
	"github.com/grailbio/maxkphylo/genotype"
	"github.com/grailbio/maxkphylo/maxk"
	"github.com/grailbio/maxkphylo/phylo"
	"github.com/grailbio/maxkphylo/scan"
)

// Row is one output record: a max-K interval on one chromosome, translated
// to base-pair coordinates, with its Newick phylogeny.
type Row struct {
	ChromIdx int // index into the chromosome-ordered view list
	Chrom    string
	BpStart  int64
	BpEnd    int64
	Newick   string
}

// Opt configures Run. None are defined yet; it exists so callers don't need
// to change call sites when one is added.
type Opt func(*opts)

type opts struct{}

// Run processes every chromosome view of m (ChromosomeViews, sorted by
// SortViewsByChromosome) and returns the assembled output rows in
// ChromosomeOrdering order, each chromosome's rows in ascending max-K
// interval start order, per spec.md §5. Chromosomes are fanned out with
// traverse.Each, which bounds concurrency to GOMAXPROCS on its own (see
// encoding/converter/convert.go's traverse.Each(len(shards), ...)); ctx is
// polled per chromosome, and a canceled context aborts the ones still
// pending.
func Run(ctx context.Context, m genotype.Matrix, opts_ ...Opt) ([]Row, error) {
	o := &opts{}
	for _, opt := range opts_ {
		opt(o)
	}

	views, err := m.ChromosomeViews()
	if err != nil {
		return nil, err
	}
	sorted, err := genotype.SortViewsByChromosome(views)
	if err != nil {
		return nil, err
	}

	results := make([][]Row, len(sorted))
	errs := make([]error, len(sorted))

	err = traverse.Each(len(sorted), func(i int) error {
		if err := ctx.Err(); err != nil {
			errs[i] = err
			return nil
		}
		rows, err := runChromosome(sorted[i], i)
		if err != nil {
			errs[i] = err
			return nil
		}
		results[i] = rows
		return nil
	})
	if err != nil {
		return nil, err
	}

	var out []Row
	for i, rows := range results {
		if errs[i] != nil {
			log.Printf("pipeline: chromosome %d failed: %v", i, errs[i])
			return out, errs[i]
		}
		out = append(out, rows...)
	}
	return out, nil
}

func runChromosome(view genotype.Matrix, chromIdx int) ([]Row, error) {
	forward := scan.Greedy(view)
	reverse := scan.ReverseGreedy(view)
	uber := scan.Uber(view)

	cores, err := maxk.Cores(forward, reverse)
	if err != nil {
		return nil, err
	}
	groups, err := maxk.UberCores(cores, uber)
	if err != nil {
		return nil, err
	}
	selected := maxk.Select(groups)

	chromIDs := view.ChromIDs()
	bp := view.BpPositions()
	chromName := ""
	if len(chromIDs) > 0 {
		chromName = chromIDs[0]
	}

	rows := make([]Row, 0, len(selected))
	for _, iv := range selected {
		window := view.SubsetView(uint64(iv.Start), uint64(iv.Extent))
		tree, err := phylo.Build(window)
		if err != nil {
			return nil, err
		}
		rows = append(rows, Row{
			ChromIdx: chromIdx,
			Chrom:    chromName,
			BpStart:  bp[iv.Start],
			BpEnd:    bp[iv.End()],
			Newick:   phylo.Emit(tree),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].BpStart < rows[j].BpStart })
	return rows, nil
}
