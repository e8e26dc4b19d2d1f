package resolver

import (
	"fmt"
	"maps"

	"terms/pkg/loose"
	"terms/pkg/storage"
)

// FilterSet maps filter keys to values, as accepted by storage.NewTermQuery.
type FilterSet map[string]any

// Canonical keys written by Normalize.
const (
	KeyTaxonomy = storage.KeyTaxonomy
	KeyInclude  = storage.KeyInclude
	KeyTermID   = "term_id"
)

// taxonomyKeyAliases are applied in this order, so the last one present wins.
var taxonomyKeyAliases = []string{"taxonomies", "taxs", "tax"} //nolint: gochecknoglobals

var taxonomyNameAliases = map[string]string{ //nolint: gochecknoglobals
	"categories": "category",
	"tags":       "post_tag",
	"tag":        "post_tag",
}

// Normalize returns a copy of params with the common aliases corrected:
//
//   - "taxonomies", "taxs" and "tax" are copied to "taxonomy";
//   - "taxonomy" becomes a []string with "categories", "tags" and "tag"
//     replaced by their canonical taxonomy names;
//   - a truthy "term_id" is copied to "include" as a sequence.
//
// Alias keys and "term_id" are kept. params is never modified and
// Normalize(Normalize(x)) equals Normalize(x).
func Normalize(params FilterSet) FilterSet {
	out := make(FilterSet, len(params)+2)
	maps.Copy(out, params)

	for _, alias := range taxonomyKeyAliases {
		if v, ok := out[alias]; ok && v != nil {
			out[KeyTaxonomy] = v
		}
	}

	if v, ok := out[KeyTaxonomy]; ok && v != nil {
		names := taxonomyNames(v)
		for i, name := range names {
			if canonical, ok := taxonomyNameAliases[name]; ok {
				names[i] = canonical
			}
		}
		out[KeyTaxonomy] = names
	}

	// zero, empty and false identifiers are treated as absent
	if v := out[KeyTermID]; loose.Truthy(v) {
		if ids, ok := loose.Sequence(v); ok {
			out[KeyInclude] = ids
		} else {
			out[KeyInclude] = []any{v}
		}
	}

	return out
}

func taxonomyNames(v any) []string {
	items, ok := loose.Sequence(v)
	if !ok {
		items = []any{v}
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := loose.String(item)
		if !ok {
			s = fmt.Sprint(item)
		}
		names = append(names, s)
	}

	return names
}
