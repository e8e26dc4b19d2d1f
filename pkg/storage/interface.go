// Package storage defines the term repository the resolver reads from and the
// query object it executes. Backends (PostgreSQL, in-memory) live in
// sub-packages and share the query semantics defined here.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"

	"terms/pkg/domain"
)

// TermStorage is the read side of the repository.
type TermStorage interface {
	// TermByID returns the term with the given ID, or nil when it does not exist.
	TermByID(ctx context.Context, id domain.TermID) (*domain.RawTerm, error)
	// QueryTerms executes q and returns matching terms in the order q asks for.
	// No match is an empty result, not an error.
	QueryTerms(ctx context.Context, q *TermQuery) ([]domain.RawTerm, error)
}

// TermWriter is the write side of the repository, used for seeding.
type TermWriter interface {
	// StoreTerms upserts terms keyed by (taxonomy, slug) and returns them as
	// stored, including generated IDs.
	StoreTerms(ctx context.Context, terms ...domain.RawTerm) ([]domain.RawTerm, error)
}

// AllStorage groups every capability a storage handle offers.
type AllStorage interface {
	TermStorage
	TermWriter
}

// TxStorage is a storage handle bound to a transaction. It becomes unusable
// after Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is a non-transactional storage handle able to start transactions.
type Storage interface {
	AllStorage

	// Close releases the resources held by the backend.
	Close() error
	// Begin starts a new transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb inside a transaction, committing when cb returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
