package domain_test

import (
	"testing"

	"terms/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestNewTerm(t *testing.T) {
	raw := &domain.RawTerm{ID: 7, Name: "News", Slug: "news", Taxonomy: domain.TaxonomyCategory, Count: 3}

	obj, err := domain.NewTerm(raw)
	require.NoError(t, err)
	require.Equal(t, domain.TermID(7), obj.ID())
	require.Equal(t, domain.TaxonomyCategory, obj.Taxonomy())
	require.Equal(t, *raw, obj.Record())

	term, ok := obj.(*domain.Term)
	require.True(t, ok)
	require.Equal(t, "category/news#7", term.String())

	// the object keeps its own copy of the record
	raw.Name = "changed"
	require.Equal(t, "News", term.Name())
}

func TestNewTerm_NilRecord(t *testing.T) {
	_, err := domain.NewTerm(nil)
	require.ErrorIs(t, err, domain.ErrNilRecord)
}

func TestNewCategory(t *testing.T) {
	obj, err := domain.NewCategory(&domain.RawTerm{ID: 1, Taxonomy: domain.TaxonomyCategory})
	require.NoError(t, err)
	cat, ok := obj.(*domain.Category)
	require.True(t, ok)
	require.True(t, cat.IsTopLevel())

	obj, err = domain.NewCategory(&domain.RawTerm{ID: 2, Parent: 1, Taxonomy: domain.TaxonomyCategory})
	require.NoError(t, err)
	require.False(t, obj.(*domain.Category).IsTopLevel())

	_, err = domain.NewCategory(&domain.RawTerm{ID: 3, Taxonomy: domain.TaxonomyTag})
	require.Error(t, err)
}

func TestNewTag(t *testing.T) {
	obj, err := domain.NewTag(&domain.RawTerm{ID: 4, Slug: "golang", Taxonomy: domain.TaxonomyTag})
	require.NoError(t, err)
	tag, ok := obj.(*domain.Tag)
	require.True(t, ok)
	require.Equal(t, "#golang", tag.Hashtag())
	require.Equal(t, domain.TermID(4), tag.ID())
}
