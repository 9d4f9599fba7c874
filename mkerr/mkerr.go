// Package mkerr defines the error kinds produced by the max-K/phylogeny
// engine. Each kind is a distinct type carrying whatever payload is useful
// for a caller to react to the failure; use errors.As (or a type assertion)
// to recover one from a returned error.
package mkerr

import "fmt"

// InvalidChromosome is returned when a chromosome name fails the
// ChromosomeOrdering parse grammar.
type InvalidChromosome struct {
	Name string
}

func (e InvalidChromosome) Error() string {
	return fmt.Sprintf("invalid chromosome name: %q", e.Name)
}

// MissingChromosomeIds is returned when an operation needs per-SNP
// chromosome ids and the CallMatrix does not carry them.
type MissingChromosomeIds struct{}

func (MissingChromosomeIds) Error() string {
	return "call matrix has no chromosome ids"
}

// NonBiallelicInWindow is returned when a phylogeny window contains a row
// with a call other than A or B where A/B was required.
type NonBiallelicInWindow struct {
	SNPIndex uint64
}

func (e NonBiallelicInWindow) Error() string {
	return fmt.Sprintf("non-biallelic call in phylogeny window at SNP index %d", e.SNPIndex)
}

// IncompatibleSdp is returned when SDP insertion into the inclusion
// hierarchy finds a non-trivial overlap that is neither a subset, a
// superset, nor disjoint.
type IncompatibleSdp struct {
	// Detail is a short human-readable description of the offending pair.
	Detail string
}

func (e IncompatibleSdp) Error() string {
	if e.Detail == "" {
		return "incompatible SDP encountered during hierarchy insertion"
	}
	return "incompatible SDP encountered during hierarchy insertion: " + e.Detail
}

// EmptyPhylogeny is returned when a max-K window produced no child edges.
// This is an invariant violation: it should never occur for a nonempty
// window with valid SDPs.
type EmptyPhylogeny struct{}

func (EmptyPhylogeny) Error() string {
	return "phylogeny window produced no child edges"
}

// BadInputFormat wraps a failure from the ingest layer.
type BadInputFormat struct {
	Msg string
}

func (e BadInputFormat) Error() string {
	return "bad input format: " + e.Msg
}

// ErrUnsupportedOnView is returned by any mutator called on a read-only
// CallMatrix view.
type ErrUnsupportedOnView struct {
	Op string
}

func (e ErrUnsupportedOnView) Error() string {
	return fmt.Sprintf("%s: unsupported on a read-only view", e.Op)
}

// EmptyAlchemyFile is returned by the (external, not-core) probe-intensity
// preprocessor when its input file is empty. It is defined here so that
// pipeline callers can recognize it like any other mkerr kind even though
// the preprocessor itself lives outside this module.
type EmptyAlchemyFile struct {
	Path string
}

func (e EmptyAlchemyFile) Error() string {
	return fmt.Sprintf("empty alchemy file: %s", e.Path)
}
