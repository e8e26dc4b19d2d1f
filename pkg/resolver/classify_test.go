package resolver_test

import (
	"encoding/json"
	"testing"

	"terms/pkg/domain"
	"terms/pkg/resolver"
	"terms/pkg/storage"

	"github.com/stretchr/testify/require"
)

type article struct{ Title string }

func TestClassify(t *testing.T) {
	term, err := domain.NewTerm(&domain.RawTerm{ID: 3, Taxonomy: "category"})
	require.NoError(t, err)
	raw := domain.RawTerm{ID: 4, Taxonomy: "post_tag"}
	q := &storage.TermQuery{Taxonomies: []string{"category"}}

	tests := []struct {
		name string
		in   any
		want resolver.Input
	}{
		{name: "int", in: 7, want: resolver.ByID{ID: 7}},
		{name: "uint8", in: uint8(7), want: resolver.ByID{ID: 7}},
		{name: "term id", in: domain.TermID(7), want: resolver.ByID{ID: 7}},
		{name: "numeric string", in: "7", want: resolver.ByID{ID: 7}},
		{name: "padded numeric string", in: " -7 ", want: resolver.ByID{ID: -7}},
		{name: "json number", in: json.Number("7"), want: resolver.ByID{ID: 7}},
		{name: "fractional json number", in: json.Number("7.5"), want: resolver.Unrecognized{Value: json.Number("7.5")}},
		{name: "string", in: "category", want: resolver.ByName{Names: []string{"category"}}},
		{name: "fractional string", in: "7.5", want: resolver.ByName{Names: []string{"7.5"}}},
		{name: "query pointer", in: q, want: resolver.ByQuery{Query: q}},
		{name: "query value", in: *q, want: resolver.ByQuery{Query: q}},
		{name: "domain object", in: term, want: resolver.ByDomainObject{Object: term}},
		{name: "record pointer", in: &raw, want: resolver.ByRecord{Record: &raw}},
		{name: "record value", in: raw, want: resolver.ByRecord{Record: &raw}},
		{name: "foreign struct", in: article{}, want: resolver.ForeignObject{Value: article{}}},
		{name: "foreign pointer", in: &article{}, want: resolver.ForeignObject{Value: &article{}}},
		{name: "nil pointer", in: (*domain.RawTerm)(nil), want: resolver.Unrecognized{Value: (*domain.RawTerm)(nil)}},
		{name: "string list", in: []string{"category", "post_tag"}, want: resolver.ByName{Names: []string{"category", "post_tag"}}},
		{name: "any string list", in: []any{"category", "7"}, want: resolver.ByName{Names: []string{"category", "7"}}},
		{name: "empty list", in: []any{}, want: resolver.ByName{Names: []string{}}},
		{name: "mixed list", in: []any{7, "category"}, want: resolver.ByList{Items: []any{7, "category"}}},
		{name: "int keyed map", in: map[int]any{1: "b", 0: 7}, want: resolver.ByList{Items: []any{7, "b"}}},
		{name: "filter map", in: map[string]any{"tax": "tags"}, want: resolver.ByFilterMap{Filters: resolver.FilterSet{"tax": "tags"}}},
		{name: "any keyed filter map", in: map[any]any{"taxonomy": "category"}, want: resolver.ByFilterMap{Filters: resolver.FilterSet{"taxonomy": "category"}}},
		{name: "any keyed int map", in: map[any]any{1: "post_tag", 0: "category"}, want: resolver.ByName{Names: []string{"category", "post_tag"}}},
		{name: "empty any keyed map", in: map[any]any{}, want: resolver.ByFilterMap{Filters: resolver.FilterSet{}}},
		{name: "nil", in: nil, want: resolver.Unrecognized{}},
		{name: "float", in: 7.0, want: resolver.Unrecognized{Value: 7.0}},
		{name: "bool", in: true, want: resolver.Unrecognized{Value: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, resolver.Classify(tt.in))
		})
	}
}

func TestClassify_DomainObjectKeepsIdentity(t *testing.T) {
	term, err := domain.NewTag(&domain.RawTerm{ID: 3, Taxonomy: "post_tag"})
	require.NoError(t, err)

	in, ok := resolver.Classify(term).(resolver.ByDomainObject)
	require.True(t, ok)
	require.Same(t, term, in.Object)
}
