package storage

import "errors"

var (
	// ErrAlreadyInTx is returned by Begin on a handle that is already inside a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned by Commit or Rollback outside a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrTxDone is returned when a finished transaction is used again.
	ErrTxDone = errors.New("tx already committed or rolled back")
)
