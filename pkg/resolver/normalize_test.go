package resolver_test

import (
	"testing"

	"terms/pkg/resolver"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   resolver.FilterSet
		want resolver.FilterSet
	}{
		{
			name: "empty",
			in:   resolver.FilterSet{},
			want: resolver.FilterSet{},
		},
		{
			name: "scalar taxonomy is wrapped",
			in:   resolver.FilterSet{"taxonomy": "category"},
			want: resolver.FilterSet{"taxonomy": []string{"category"}},
		},
		{
			name: "taxonomy name aliases",
			in:   resolver.FilterSet{"taxonomy": []string{"categories", "tags", "tag", "genre"}},
			want: resolver.FilterSet{"taxonomy": []string{"category", "post_tag", "post_tag", "genre"}},
		},
		{
			name: "key alias is copied and kept",
			in:   resolver.FilterSet{"taxonomies": []any{"tags"}},
			want: resolver.FilterSet{"taxonomies": []any{"tags"}, "taxonomy": []string{"post_tag"}},
		},
		{
			name: "last key alias wins",
			in:   resolver.FilterSet{"taxonomy": "genre", "taxonomies": "tags", "taxs": "categories", "tax": "tag"},
			want: resolver.FilterSet{
				"taxonomy":   []string{"post_tag"},
				"taxonomies": "tags",
				"taxs":       "categories",
				"tax":        "tag",
			},
		},
		{
			name: "nil key alias is ignored",
			in:   resolver.FilterSet{"taxonomy": "tags", "tax": nil},
			want: resolver.FilterSet{"taxonomy": []string{"post_tag"}, "tax": nil},
		},
		{
			name: "term_id scalar",
			in:   resolver.FilterSet{"term_id": 7},
			want: resolver.FilterSet{"term_id": 7, "include": []any{7}},
		},
		{
			name: "term_id sequence",
			in:   resolver.FilterSet{"term_id": []int{7, 9}},
			want: resolver.FilterSet{"term_id": []int{7, 9}, "include": []any{7, 9}},
		},
		{
			name: "zero term_id is absent",
			in:   resolver.FilterSet{"term_id": 0},
			want: resolver.FilterSet{"term_id": 0},
		},
		{
			name: "empty term_id sequence is absent",
			in:   resolver.FilterSet{"term_id": []int{}},
			want: resolver.FilterSet{"term_id": []int{}},
		},
		{
			name: "string zero term_id is absent",
			in:   resolver.FilterSet{"term_id": "0", "include": []any{3}},
			want: resolver.FilterSet{"term_id": "0", "include": []any{3}},
		},
		{
			name: "other keys pass through",
			in:   resolver.FilterSet{"orderby": "count", "number": 2},
			want: resolver.FilterSet{"orderby": "count", "number": 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.Normalize(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(got, resolver.Normalize(got)); diff != "" {
				t.Errorf("Normalize() is not idempotent (-once +twice):\n%s", diff)
			}
		})
	}
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	names := []string{"tags"}
	in := resolver.FilterSet{"taxonomy": names, "term_id": 7}

	_ = resolver.Normalize(in)

	require.Equal(t, resolver.FilterSet{"taxonomy": []string{"tags"}, "term_id": 7}, in)
	require.Equal(t, []string{"tags"}, names)
}

func TestNormalize_AliasesReachCanonicalForm(t *testing.T) {
	aliased := resolver.Normalize(resolver.FilterSet{"taxonomies": []string{"tags"}})
	canonical := resolver.Normalize(resolver.FilterSet{"taxonomy": []string{"post_tag"}})

	require.Equal(t, canonical["taxonomy"], aliased["taxonomy"])
}
