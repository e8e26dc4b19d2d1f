package postgres_test

import (
	"context"
	"errors"
	"testing"

	"terms/pkg/domain"
	"terms/pkg/storage"
	"terms/pkg/storage/postgres"

	"github.com/stretchr/testify/require"
)

func countSlug(t *testing.T, pg *postgres.PgSQL, slug string) int {
	t.Helper()

	q, err := storage.NewTermQuery(map[string]any{"slug": slug, "hide_empty": false})
	require.NoError(t, err)
	res, err := pg.QueryTerms(context.Background(), q)
	require.NoError(t, err)

	return len(res)
}

func TestPgSQL_Tx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	t.Run("begin and nested begin", func(t *testing.T) {
		txStorage, err := pg.Begin(ctx)
		require.NoError(t, err)

		inner, ok := txStorage.(*postgres.PgSQL)
		require.True(t, ok)
		_, err = inner.Begin(ctx)
		require.ErrorIs(t, err, storage.ErrAlreadyInTx)

		require.NoError(t, inner.Rollback())
	})

	t.Run("commit and rollback outside tx", func(t *testing.T) {
		require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
		require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)
	})

	t.Run("commit persists", func(t *testing.T) {
		tx, err := pg.Begin(ctx)
		require.NoError(t, err)
		_, err = tx.StoreTerms(ctx, domain.RawTerm{Name: "Kept", Slug: "kept", Taxonomy: "post_tag"})
		require.NoError(t, err)
		require.NoError(t, tx.Commit())

		require.Equal(t, 1, countSlug(t, pg, "kept"))
	})

	t.Run("rollback discards", func(t *testing.T) {
		tx, err := pg.Begin(ctx)
		require.NoError(t, err)
		_, err = tx.StoreTerms(ctx, domain.RawTerm{Name: "Dropped", Slug: "dropped", Taxonomy: "post_tag"})
		require.NoError(t, err)
		require.NoError(t, tx.Rollback())

		require.Equal(t, 0, countSlug(t, pg, "dropped"))
	})

	t.Run("with tx", func(t *testing.T) {
		err := pg.WithTx(ctx, func(s storage.AllStorage) error {
			_, err := s.StoreTerms(ctx, domain.RawTerm{Name: "Seven", Slug: "seven", Taxonomy: "post_tag"})

			return err
		})
		require.NoError(t, err)
		require.Equal(t, 1, countSlug(t, pg, "seven"))

		boom := errors.New("boom")
		err = pg.WithTx(ctx, func(s storage.AllStorage) error {
			_, _ = s.StoreTerms(ctx, domain.RawTerm{Name: "Nine", Slug: "nine", Taxonomy: "post_tag"})

			return boom
		})
		require.ErrorIs(t, err, boom)
		require.Equal(t, 0, countSlug(t, pg, "nine"))
	})
}
