package storage

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"terms/pkg/domain"
	"terms/pkg/loose"
	"terms/pkg/serrors"
)

// Filter keys understood by NewTermQuery. Any other key is ignored.
const (
	KeyTaxonomy  = "taxonomy"
	KeyInclude   = "include"
	KeyExclude   = "exclude"
	KeyName      = "name"
	KeySlug      = "slug"
	KeyParent    = "parent"
	KeySearch    = "search"
	KeyHideEmpty = "hide_empty"
	KeyOrderBy   = "orderby"
	KeyOrder     = "order"
	KeyNumber    = "number"
	KeyOffset    = "offset"
)

// OrderBy names the field a query sorts by.
type OrderBy string

const (
	OrderByName  OrderBy = "name"
	OrderBySlug  OrderBy = "slug"
	OrderByID    OrderBy = "term_id"
	OrderByCount OrderBy = "count"
	// OrderByInclude keeps the order of TermQuery.Include.
	OrderByInclude OrderBy = "include"
	// OrderByNone leaves the backend's natural order.
	OrderByNone OrderBy = "none"
)

// TermQuery is the query object executed by TermStorage.QueryTerms. Empty
// list fields do not filter.
type TermQuery struct {
	// Taxonomies restricts results to these taxonomies.
	Taxonomies []string
	// Include restricts results to these IDs.
	Include []domain.TermID
	// Exclude drops these IDs from the results.
	Exclude []domain.TermID
	// Names restricts results to terms with one of these names.
	Names []string
	// Slugs restricts results to terms with one of these slugs.
	Slugs []string
	// Parent, when set, restricts results to direct children of this term.
	Parent *domain.TermID
	// Search matches a case-insensitive substring of the name or slug.
	Search string
	// HideEmpty drops terms with a zero count.
	HideEmpty bool
	// OrderBy selects the sort field.
	OrderBy OrderBy
	// Descending reverses the sort.
	Descending bool
	// Number caps the result size; zero means unlimited.
	Number uint
	// Offset skips that many results after sorting.
	Offset uint
}

// NewTermQuery builds a query with the default settings (hide empty terms,
// order by name ascending) and applies the recognised keys of filters.
func NewTermQuery(filters map[string]any) (*TermQuery, error) {
	q := &TermQuery{HideEmpty: true, OrderBy: OrderByName}

	var err error
	if q.Taxonomies, err = stringList(filters[KeyTaxonomy]); err != nil {
		return nil, badFilter(KeyTaxonomy, err)
	}
	if q.Include, err = idList(filters[KeyInclude]); err != nil {
		return nil, badFilter(KeyInclude, err)
	}
	if q.Exclude, err = idList(filters[KeyExclude]); err != nil {
		return nil, badFilter(KeyExclude, err)
	}
	if q.Names, err = stringList(filters[KeyName]); err != nil {
		return nil, badFilter(KeyName, err)
	}
	if q.Slugs, err = stringList(filters[KeySlug]); err != nil {
		return nil, badFilter(KeySlug, err)
	}

	if v := filters[KeyParent]; v != nil && v != "" {
		id, err := termID(v)
		if err != nil {
			return nil, badFilter(KeyParent, err)
		}
		q.Parent = &id
	}
	if v := filters[KeySearch]; v != nil {
		s, ok := loose.String(v)
		if !ok {
			return nil, badFilter(KeySearch, fmt.Errorf("expected a string, got %T", v))
		}
		q.Search = strings.TrimSpace(s)
	}
	if v := filters[KeyHideEmpty]; v != nil {
		b, ok := loose.Bool(v)
		if !ok {
			return nil, badFilter(KeyHideEmpty, fmt.Errorf("expected a boolean, got %v", v))
		}
		q.HideEmpty = b
	}
	if v := filters[KeyOrderBy]; v != nil {
		s, _ := loose.String(v)
		switch o := OrderBy(strings.ToLower(s)); o {
		case OrderByName, OrderBySlug, OrderByID, OrderByCount, OrderByInclude, OrderByNone:
			q.OrderBy = o
		default:
			return nil, badFilter(KeyOrderBy, fmt.Errorf("unsupported field %v", v))
		}
	}
	if v := filters[KeyOrder]; v != nil {
		s, _ := loose.String(v)
		switch strings.ToUpper(s) {
		case "ASC":
			q.Descending = false
		case "DESC":
			q.Descending = true
		default:
			return nil, badFilter(KeyOrder, fmt.Errorf("expected ASC or DESC, got %v", v))
		}
	}
	if q.Number, err = count(filters[KeyNumber]); err != nil {
		return nil, badFilter(KeyNumber, err)
	}
	if q.Offset, err = count(filters[KeyOffset]); err != nil {
		return nil, badFilter(KeyOffset, err)
	}

	return q, nil
}

// Matches reports whether raw passes every filter of q.
func (q *TermQuery) Matches(raw domain.RawTerm) bool {
	switch {
	case len(q.Taxonomies) > 0 && !slices.Contains(q.Taxonomies, raw.Taxonomy):
		return false
	case len(q.Include) > 0 && !slices.Contains(q.Include, raw.ID):
		return false
	case slices.Contains(q.Exclude, raw.ID):
		return false
	case len(q.Names) > 0 && !slices.Contains(q.Names, raw.Name):
		return false
	case len(q.Slugs) > 0 && !slices.Contains(q.Slugs, raw.Slug):
		return false
	case q.Parent != nil && raw.Parent != *q.Parent:
		return false
	case q.HideEmpty && raw.Count == 0:
		return false
	}

	if q.Search != "" {
		needle := strings.ToLower(q.Search)

		return strings.Contains(strings.ToLower(raw.Name), needle) ||
			strings.Contains(strings.ToLower(raw.Slug), needle)
	}

	return true
}

// Sort orders terms in place as q asks. Ties are broken by ID so results are
// stable across backends.
func (q *TermQuery) Sort(terms []domain.RawTerm) {
	if q.OrderBy == OrderByNone {
		return
	}

	compare := func(a, b domain.RawTerm) int {
		var c int
		switch q.OrderBy {
		case OrderBySlug:
			c = cmp.Compare(a.Slug, b.Slug)
		case OrderByID:
			c = cmp.Compare(a.ID, b.ID)
		case OrderByCount:
			c = cmp.Compare(a.Count, b.Count)
		case OrderByInclude:
			c = cmp.Compare(slices.Index(q.Include, a.ID), slices.Index(q.Include, b.ID))
		default:
			c = cmp.Compare(a.Name, b.Name)
		}
		if c == 0 {
			c = cmp.Compare(a.ID, b.ID)
		}
		if q.Descending {
			return -c
		}

		return c
	}

	slices.SortStableFunc(terms, compare)
}

// Window applies Offset and Number to already sorted terms.
func (q *TermQuery) Window(terms []domain.RawTerm) []domain.RawTerm {
	if q.Offset >= uint(len(terms)) {
		return terms[:0]
	}
	terms = terms[q.Offset:]
	if q.Number > 0 && q.Number < uint(len(terms)) {
		terms = terms[:q.Number]
	}

	return terms
}

func badFilter(key string, err error) error {
	return serrors.Wrap(serrors.ErrBadRequest, err, "invalid %q filter", key)
}

func stringList(v any) ([]string, error) {
	if v == nil {
		return nil, nil
	}

	seq, ok := loose.Sequence(v)
	if !ok {
		seq = []any{v}
	}

	out := make([]string, 0, len(seq))
	for _, e := range seq {
		s, ok := loose.String(e)
		if !ok {
			return nil, fmt.Errorf("expected a string, got %T", e)
		}
		out = append(out, s)
	}

	return out, nil
}

// idList accepts a single ID, a sequence of IDs or a comma/space separated
// string of IDs. Duplicates are dropped, first occurrence wins.
func idList(v any) ([]domain.TermID, error) {
	if v == nil {
		return nil, nil
	}

	seq, ok := loose.Sequence(v)
	if !ok {
		if s, isStr := v.(string); isStr {
			for _, f := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' }) {
				seq = append(seq, f)
			}
		} else {
			seq = []any{v}
		}
	}

	out := make([]domain.TermID, 0, len(seq))
	for _, e := range seq {
		id, err := termID(e)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}

	return out, nil
}

func termID(v any) (domain.TermID, error) {
	n, ok := loose.Integer(v)
	if !ok {
		return 0, fmt.Errorf("expected a term ID, got %v", v)
	}

	return domain.TermID(n), nil
}

func count(v any) (uint, error) {
	if v == nil {
		return 0, nil
	}
	n, ok := loose.Integer(v)
	if !ok || n < 0 {
		return 0, fmt.Errorf("expected a non-negative integer, got %v", v)
	}

	return uint(n), nil
}
