// Package memory provides an in-process term repository. It executes
// storage.TermQuery with the same semantics as the SQL backend and is meant for
// tests, demos and hosts that ship a fixed vocabulary.
package memory

import (
	"cmp"
	"context"
	"maps"
	"slices"
	"sync"

	"terms/pkg/domain"
	"terms/pkg/storage"
)

// Compile-time contract assertions.
var (
	_ storage.Storage   = (*Store)(nil)
	_ storage.TxStorage = (*Tx)(nil)
)

type state struct {
	terms  map[domain.TermID]domain.RawTerm
	nextID domain.TermID
}

func (s *state) clone() *state {
	return &state{terms: maps.Clone(s.terms), nextID: s.nextID}
}

func (s *state) byID(id domain.TermID) *domain.RawTerm {
	raw, ok := s.terms[id]
	if !ok {
		return nil
	}

	return &raw
}

func (s *state) query(q *storage.TermQuery) []domain.RawTerm {
	out := make([]domain.RawTerm, 0)
	for _, raw := range s.terms {
		if q.Matches(raw) {
			out = append(out, raw)
		}
	}

	if q.OrderBy == storage.OrderByNone {
		// map iteration is random; natural order is insertion (ID) order
		slices.SortFunc(out, func(a, b domain.RawTerm) int { return cmp.Compare(a.ID, b.ID) })
	} else {
		q.Sort(out)
	}

	return q.Window(out)
}

func (s *state) store(terms []domain.RawTerm) []domain.RawTerm {
	stored := make([]domain.RawTerm, 0, len(terms))
	for _, t := range terms {
		// (taxonomy, slug) identifies a stored term even when t carries another ID
		if id := s.idBySlug(t.Taxonomy, t.Slug); id != 0 {
			t.ID = id
		}
		if t.ID == 0 {
			s.nextID++
			t.ID = s.nextID
		}
		if t.ID > s.nextID {
			s.nextID = t.ID
		}
		s.terms[t.ID] = t
		stored = append(stored, t)
	}

	return stored
}

func (s *state) idBySlug(taxonomy, slug string) domain.TermID {
	for id, raw := range s.terms {
		if raw.Taxonomy == taxonomy && raw.Slug == slug {
			return id
		}
	}

	return 0
}

// Store is a concurrency-safe in-memory repository.
type Store struct {
	mu    sync.RWMutex
	state *state
}

// New returns a store seeded with terms. Terms without an ID get one assigned.
func New(terms ...domain.RawTerm) *Store {
	s := &Store{state: &state{terms: map[domain.TermID]domain.RawTerm{}}}
	s.state.store(terms)

	return s
}

func (s *Store) TermByID(_ context.Context, id domain.TermID) (*domain.RawTerm, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.byID(id), nil
}

func (s *Store) QueryTerms(_ context.Context, q *storage.TermQuery) ([]domain.RawTerm, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.query(q), nil
}

func (s *Store) StoreTerms(_ context.Context, terms ...domain.RawTerm) ([]domain.RawTerm, error) {
	if len(terms) == 0 {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.store(terms), nil
}

// Close is a no-op.
func (s *Store) Close() error { return nil }

// Begin snapshots the store. Changes made through the returned Tx replace
// the store's content on Commit.
func (s *Store) Begin(_ context.Context) (storage.TxStorage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return &Tx{store: s, state: s.state.clone()}, nil
}

// WithTx runs cb inside a transaction.
func (s *Store) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := s.Begin(ctx)
	if err != nil {
		return err
	}

	if err := cb(tx); err != nil {
		_ = tx.Rollback()

		return err
	}

	return tx.Commit()
}

// Tx is a transaction over a Store snapshot. It is not safe for concurrent use.
type Tx struct {
	store *Store
	state *state
	done  bool
}

func (t *Tx) TermByID(_ context.Context, id domain.TermID) (*domain.RawTerm, error) {
	if t.done {
		return nil, storage.ErrTxDone
	}

	return t.state.byID(id), nil
}

func (t *Tx) QueryTerms(_ context.Context, q *storage.TermQuery) ([]domain.RawTerm, error) {
	if t.done {
		return nil, storage.ErrTxDone
	}

	return t.state.query(q), nil
}

func (t *Tx) StoreTerms(_ context.Context, terms ...domain.RawTerm) ([]domain.RawTerm, error) {
	if t.done {
		return nil, storage.ErrTxDone
	}
	if len(terms) == 0 {
		return nil, nil
	}

	return t.state.store(terms), nil
}

func (t *Tx) Commit() error {
	if t.done {
		return storage.ErrTxDone
	}
	t.done = true

	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	t.store.state = t.state

	return nil
}

func (t *Tx) Rollback() error {
	if t.done {
		return storage.ErrTxDone
	}
	t.done = true

	return nil
}
