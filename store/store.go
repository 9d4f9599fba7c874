// Package store persists a genotype.CallMatrix. InMemoryStore is the
// trivial reference implementation ("an in-memory one is another", per
// spec.md §1); RecordioMatrix persists a matrix to a file with
// github.com/grailbio/base/recordio the way pileup/snp/output.go persists
// pileup rows, and loads it back fully into memory.
package store

import (
	"context"

	"github.com/grailbio/maxkphylo/genotype"
)

// MatrixStore loads and saves a genotype.CallMatrix as a unit.
type MatrixStore interface {
	Load(ctx context.Context) (*genotype.InMemoryMatrix, error)
	Save(ctx context.Context, m genotype.Matrix) error
}

// InMemoryStore is a MatrixStore that just holds a matrix in a field.
type InMemoryStore struct {
	m *genotype.InMemoryMatrix
}

// NewInMemoryStore returns a store seeded with m (may be nil).
func NewInMemoryStore(m *genotype.InMemoryMatrix) *InMemoryStore {
	return &InMemoryStore{m: m}
}

func (s *InMemoryStore) Load(context.Context) (*genotype.InMemoryMatrix, error) {
	return s.m, nil
}

func (s *InMemoryStore) Save(_ context.Context, m genotype.Matrix) error {
	snapshot := genotype.NewInMemoryMatrix(append([]string(nil), m.SampleIDs()...))
	for i := uint64(0); i < m.SnpCount(); i++ {
		row := append([]genotype.Call(nil), m.SnpCalls(i)...)
		if err := snapshot.AppendRow(row); err != nil {
			return err
		}
	}
	if ids := m.ChromIDs(); ids != nil {
		if err := snapshot.SetChromIDs(append([]string(nil), ids...)); err != nil {
			return err
		}
	}
	if bp := m.BpPositions(); bp != nil {
		if err := snapshot.SetBpPositions(append([]int64(nil), bp...)); err != nil {
			return err
		}
	}
	if ids := m.SnpIDs(); ids != nil {
		if err := snapshot.SetSnpIDs(append([]string(nil), ids...)); err != nil {
			return err
		}
	}
	if a := m.AAlleles(); a != nil {
		if err := snapshot.SetAAlleles(append([]byte(nil), a...)); err != nil {
			return err
		}
	}
	if b := m.BAlleles(); b != nil {
		if err := snapshot.SetBAlleles(append([]byte(nil), b...)); err != nil {
			return err
		}
	}
	if err := snapshot.SetBuildID(m.BuildID()); err != nil {
		return err
	}
	if err := snapshot.SetSortedByPosition(m.SortedByPosition()); err != nil {
		return err
	}
	s.m = snapshot
	return nil
}
