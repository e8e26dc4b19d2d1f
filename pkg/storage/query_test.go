package storage_test

import (
	"encoding/json"
	"testing"

	"terms/pkg/domain"
	"terms/pkg/serrors"
	"terms/pkg/storage"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func id(v domain.TermID) *domain.TermID { return &v }

func TestNewTermQuery(t *testing.T) {
	tests := []struct {
		name    string
		filters map[string]any
		want    *storage.TermQuery
	}{
		{
			name:    "defaults",
			filters: map[string]any{},
			want:    &storage.TermQuery{HideEmpty: true, OrderBy: storage.OrderByName},
		},
		{
			name: "taxonomy and include",
			filters: map[string]any{
				"taxonomy": []string{"category", "post_tag"},
				"include":  []any{7, "8", json.Number("9"), 7},
			},
			want: &storage.TermQuery{
				Taxonomies: []string{"category", "post_tag"},
				Include:    []domain.TermID{7, 8, 9},
				HideEmpty:  true,
				OrderBy:    storage.OrderByName,
			},
		},
		{
			name: "scalar values are wrapped",
			filters: map[string]any{
				"taxonomy": "category",
				"slug":     "news",
				"include":  12,
			},
			want: &storage.TermQuery{
				Taxonomies: []string{"category"},
				Slugs:      []string{"news"},
				Include:    []domain.TermID{12},
				HideEmpty:  true,
				OrderBy:    storage.OrderByName,
			},
		},
		{
			name: "comma separated ids",
			filters: map[string]any{
				"exclude": "3, 4,5",
			},
			want: &storage.TermQuery{
				Exclude:   []domain.TermID{3, 4, 5},
				HideEmpty: true,
				OrderBy:   storage.OrderByName,
			},
		},
		{
			name: "ordering and paging",
			filters: map[string]any{
				"orderby":    "COUNT",
				"order":      "desc",
				"number":     "10",
				"offset":     2,
				"hide_empty": "false",
				"parent":     "0",
				"search":     " go ",
				"name":       []any{"Go", "Rust"},
			},
			want: &storage.TermQuery{
				Names:      []string{"Go", "Rust"},
				Parent:     id(0),
				Search:     "go",
				HideEmpty:  false,
				OrderBy:    storage.OrderByCount,
				Descending: true,
				Number:     10,
				Offset:     2,
			},
		},
		{
			name: "unknown keys are ignored",
			filters: map[string]any{
				"term_id":    7,
				"taxonomies": []string{"tags"},
			},
			want: &storage.TermQuery{HideEmpty: true, OrderBy: storage.OrderByName},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := storage.NewTermQuery(tt.filters)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("query mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewTermQuery_Invalid(t *testing.T) {
	invalid := []map[string]any{
		{"include": []any{"abc"}},
		{"exclude": 1.5},
		{"parent": "top"},
		{"orderby": "random"},
		{"order": "sideways"},
		{"number": -1},
		{"hide_empty": "perhaps"},
		{"taxonomy": []any{map[string]any{}}},
		{"search": []string{"a"}},
	}

	for _, filters := range invalid {
		_, err := storage.NewTermQuery(filters)
		require.Error(t, err, "filters %v", filters)
		require.ErrorIs(t, err, serrors.ErrBadRequest, "filters %v", filters)
	}
}

func sampleTerms() []domain.RawTerm {
	return []domain.RawTerm{
		{ID: 1, Name: "News", Slug: "news", Taxonomy: "category", Count: 4},
		{ID: 2, Name: "Sports", Slug: "sports", Taxonomy: "category", Parent: 1, Count: 2},
		{ID: 3, Name: "Golang", Slug: "golang", Taxonomy: "post_tag", Count: 9},
		{ID: 4, Name: "Empty", Slug: "empty", Taxonomy: "post_tag", Count: 0},
		{ID: 5, Name: "Archive", Slug: "archive", Taxonomy: "category", Count: 1},
	}
}

func apply(q *storage.TermQuery, terms []domain.RawTerm) []domain.TermID {
	var matched []domain.RawTerm
	for _, raw := range terms {
		if q.Matches(raw) {
			matched = append(matched, raw)
		}
	}
	q.Sort(matched)

	ids := []domain.TermID{}
	for _, raw := range q.Window(matched) {
		ids = append(ids, raw.ID)
	}

	return ids
}

func TestTermQuery_MatchSortWindow(t *testing.T) {
	tests := []struct {
		name    string
		filters map[string]any
		want    []domain.TermID
	}{
		{name: "all non-empty by name", filters: map[string]any{}, want: []domain.TermID{5, 3, 1, 2}},
		{name: "empty included on request", filters: map[string]any{"hide_empty": false}, want: []domain.TermID{5, 4, 3, 1, 2}},
		{name: "by taxonomy", filters: map[string]any{"taxonomy": "category"}, want: []domain.TermID{5, 1, 2}},
		{name: "include order", filters: map[string]any{"include": []int{3, 1, 2}, "orderby": "include"}, want: []domain.TermID{3, 1, 2}},
		{name: "exclude", filters: map[string]any{"exclude": 1}, want: []domain.TermID{5, 3, 2}},
		{name: "children of news", filters: map[string]any{"parent": 1}, want: []domain.TermID{2}},
		{name: "search", filters: map[string]any{"search": "SPO"}, want: []domain.TermID{2}},
		{name: "count desc", filters: map[string]any{"orderby": "count", "order": "DESC"}, want: []domain.TermID{3, 1, 2, 5}},
		{name: "paged", filters: map[string]any{"orderby": "term_id", "number": 2, "offset": 1}, want: []domain.TermID{2, 3}},
		{name: "offset past end", filters: map[string]any{"offset": 10}, want: []domain.TermID{}},
		{name: "no match", filters: map[string]any{"taxonomy": "genre"}, want: []domain.TermID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := storage.NewTermQuery(tt.filters)
			require.NoError(t, err)
			require.Equal(t, tt.want, apply(q, sampleTerms()))
		})
	}
}
