package resolver

import (
	"context"
	"fmt"

	"terms/pkg/domain"
	"terms/pkg/serrors"
	"terms/pkg/storage"
)

// Input is a classified resolver input. The set of variants is closed: every
// variant implements the unexported resolve method, so each one carries its
// own resolution strategy.
type Input interface {
	// Variant names the variant for logs and metrics.
	Variant() string

	resolve(ctx context.Context, r *resolver) (Result, error)
}

var (
	_ Input = ByID{}
	_ Input = ByName{}
	_ Input = ByRecord{}
	_ Input = ByQuery{}
	_ Input = ByDomainObject{}
	_ Input = ByList{}
	_ Input = ByFilterMap{}
	_ Input = ForeignObject{}
	_ Input = Unrecognized{}
)

// ByID looks a single term up by its identifier.
type ByID struct {
	ID domain.TermID
}

func (ByID) Variant() string { return "id" }

func (in ByID) resolve(ctx context.Context, r *resolver) (Result, error) {
	raw, err := r.lookup(ctx, in.ID)
	if err != nil {
		return Result{}, err
	}
	if raw == nil {
		return NotFound(), nil
	}

	obj, err := r.build(raw)
	if err != nil {
		return Result{}, err
	}

	return single(obj), nil
}

// ByName queries every term of the named taxonomies with a single query.
type ByName struct {
	Names []string
}

func (ByName) Variant() string { return "name" }

func (in ByName) resolve(ctx context.Context, r *resolver) (Result, error) {
	names := in.Names
	if names == nil {
		names = []string{}
	}

	return ByFilterMap{Filters: FilterSet{KeyTaxonomy: names}}.resolve(ctx, r)
}

// ByRecord builds an object from a raw record without touching storage.
type ByRecord struct {
	Record *domain.RawTerm
}

func (ByRecord) Variant() string { return "record" }

func (in ByRecord) resolve(_ context.Context, r *resolver) (Result, error) {
	obj, err := r.build(in.Record)
	if err != nil {
		return Result{}, err
	}

	return single(obj), nil
}

// ByQuery executes a prebuilt query.
type ByQuery struct {
	Query *storage.TermQuery
}

func (ByQuery) Variant() string { return "query" }

func (in ByQuery) resolve(ctx context.Context, r *resolver) (Result, error) {
	raws, err := r.query(ctx, in.Query)
	if err != nil {
		return Result{}, err
	}

	return r.buildList(raws)
}

// ByDomainObject returns an already resolved object unchanged.
type ByDomainObject struct {
	Object domain.Object
}

func (ByDomainObject) Variant() string { return "object" }

func (in ByDomainObject) resolve(context.Context, *resolver) (Result, error) {
	return single(in.Object), nil
}

// ByList resolves every element independently, keeping positions.
type ByList struct {
	Items []any
}

func (ByList) Variant() string { return "list" }

func (in ByList) resolve(ctx context.Context, r *resolver) (Result, error) {
	results := make([]Result, len(in.Items))
	for i, item := range in.Items {
		res, err := r.Resolve(ctx, item)
		if err != nil {
			return Result{}, fmt.Errorf("could not resolve item %d: %w", i, err)
		}
		results[i] = res
	}

	return batch(results), nil
}

// ByFilterMap normalizes raw filter parameters and queries with them.
type ByFilterMap struct {
	Filters FilterSet
}

func (ByFilterMap) Variant() string { return "filters" }

func (in ByFilterMap) resolve(ctx context.Context, r *resolver) (Result, error) {
	raws, err := r.queryFilters(ctx, Normalize(in.Filters))
	if err != nil {
		return Result{}, err
	}

	return r.buildList(raws)
}

// ForeignObject is an object that is neither resolved nor a raw record.
// Resolving it is a programming error.
type ForeignObject struct {
	Value any
}

func (ForeignObject) Variant() string { return "foreign" }

func (in ForeignObject) resolve(context.Context, *resolver) (Result, error) {
	return Result{}, serrors.With(serrors.ErrInvalidInput,
		"expected a domain.Object or domain.RawTerm, got %T", in.Value)
}

// Unrecognized is any value no strategy applies to. It resolves to nothing.
type Unrecognized struct {
	Value any
}

func (Unrecognized) Variant() string { return "unrecognized" }

func (Unrecognized) resolve(context.Context, *resolver) (Result, error) {
	return NotFound(), nil
}
