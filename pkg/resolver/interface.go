// Package resolver turns loosely typed descriptions of taxonomy terms into
// resolved domain objects.
//
// Resolve accepts identifiers, taxonomy names, raw records, query objects,
// already resolved objects, sequences of any of these and filter maps. The
// input is classified into exactly one Input variant, optionally normalized
// into a filter set, executed against a storage.TermStorage and the returned
// records are built into domain objects chosen by a class map.
//
//go:generate mockgen -package mockresolver -source=interface.go -destination=mock/mockresolver.go *
package resolver

import (
	"context"
	"time"

	"terms/pkg/storage"
)

// Resolver resolves term inputs.
type Resolver interface {
	// Resolve classifies input and resolves it. A value that matches nothing
	// yields a Result whose Found is false and a nil error. Errors are only
	// returned for invalid input, bad filters, repository failures and
	// constructors that reject a record.
	Resolve(ctx context.Context, input any) (Result, error)
}

// Recorder observes every resolution. *metrics.Recorder implements it.
type Recorder interface {
	ObserveResolve(ctx context.Context, variant, outcome string, elapsed time.Duration)
}

// Options configure a Resolver.
type Options struct {
	// Classes provides the class map. Nil means DefaultClassMap only.
	Classes ClassMapProvider
	// Metrics, when set, observes every call to Resolve.
	Metrics Recorder
}

type resolver struct {
	storage storage.TermStorage
	classes ClassMapProvider
	metrics Recorder
}

// New creates a Resolver reading from storage.
func New(storage storage.TermStorage, options Options) Resolver {
	classes := options.Classes
	if classes == nil {
		classes = StaticClassMap(nil)
	}

	return &resolver{
		storage: storage,
		classes: classes,
		metrics: options.Metrics,
	}
}
