package resolver

import (
	"context"
	"fmt"

	"terms/pkg/domain"
	"terms/pkg/logger"
	"terms/pkg/storage"

	"go.uber.org/zap"
)

func (r *resolver) lookup(ctx context.Context, id domain.TermID) (*domain.RawTerm, error) {
	raw, err := r.storage.TermByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get term %d: %w", id, err)
	}

	return raw, nil
}

func (r *resolver) queryFilters(ctx context.Context, filters FilterSet) ([]domain.RawTerm, error) {
	q, err := storage.NewTermQuery(filters)
	if err != nil {
		return nil, err
	}

	return r.query(ctx, q)
}

func (r *resolver) query(ctx context.Context, q *storage.TermQuery) ([]domain.RawTerm, error) {
	raws, err := r.storage.QueryTerms(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("could not query terms: %w", err)
	}

	logger.Debug(ctx, "queried terms",
		zap.Strings("taxonomies", q.Taxonomies),
		zap.Int("results", len(raws)))

	return raws, nil
}
