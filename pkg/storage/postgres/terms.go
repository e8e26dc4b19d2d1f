package postgres

import (
	"context"
	"fmt"
	"strings"

	"terms/pkg/domain"
	"terms/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

const (
	termsTable = "terms"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`) //nolint: gochecknoglobals

// TermByID returns a term by its ID, or nil when it does not exist.
func (p *PgSQL) TermByID(ctx context.Context, id domain.TermID) (*domain.RawTerm, error) {
	var row PgTerm
	found, err := p.Builder.From(termsTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch term by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	raw := row.ToDomain()

	return &raw, nil
}

// QueryTerms translates q into a single SELECT.
func (p *PgSQL) QueryTerms(ctx context.Context, q *storage.TermQuery) ([]domain.RawTerm, error) {
	ds := p.Builder.From(termsTable).
		Where(termFilters(q)...).
		Order(termOrder(q)...)
	if q.Number > 0 {
		ds = ds.Limit(q.Number)
	}
	if q.Offset > 0 {
		ds = ds.Offset(q.Offset)
	}

	rows := make([]PgTerm, 0)
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not query terms from pg: %w", err)
	}

	return pgTermsToDomain(rows), nil
}

func termFilters(q *storage.TermQuery) []exp.Expression {
	var w []exp.Expression
	if len(q.Taxonomies) > 0 {
		w = append(w, goqu.I("taxonomy").In(q.Taxonomies))
	}
	if len(q.Include) > 0 {
		w = append(w, goqu.I("id").In(termIDs(q.Include)))
	}
	if len(q.Exclude) > 0 {
		w = append(w, goqu.I("id").NotIn(termIDs(q.Exclude)))
	}
	if len(q.Names) > 0 {
		w = append(w, goqu.I("name").In(q.Names))
	}
	if len(q.Slugs) > 0 {
		w = append(w, goqu.I("slug").In(q.Slugs))
	}
	if q.Parent != nil {
		w = append(w, goqu.I("parent").Eq(int64(*q.Parent)))
	}
	if q.HideEmpty {
		w = append(w, goqu.I("count").Gt(0))
	}
	if q.Search != "" {
		pattern := "%" + likeEscaper.Replace(q.Search) + "%"
		w = append(w, goqu.Or(
			goqu.I("name").ILike(pattern),
			goqu.I("slug").ILike(pattern),
		))
	}

	return w
}

// termOrder mirrors TermQuery.Sort: byte-wise collation and ID as tie breaker.
func termOrder(q *storage.TermQuery) []exp.OrderedExpression {
	dir := func(e exp.Orderable) exp.OrderedExpression {
		if q.Descending {
			return e.Desc()
		}

		return e.Asc()
	}

	var primary exp.Orderable
	switch q.OrderBy {
	case storage.OrderByNone:
		return []exp.OrderedExpression{goqu.I("id").Asc()}
	case storage.OrderBySlug:
		primary = goqu.L(`"slug" COLLATE "C"`)
	case storage.OrderByID:
		primary = goqu.I("id")
	case storage.OrderByCount:
		primary = goqu.I("count")
	case storage.OrderByInclude:
		if len(q.Include) == 0 {
			primary = goqu.I("id")

			break
		}
		c := goqu.Case().Value(goqu.I("id"))
		for i, id := range q.Include {
			c = c.When(int64(id), i)
		}
		primary = c
	default:
		primary = goqu.L(`"name" COLLATE "C"`)
	}

	return []exp.OrderedExpression{dir(primary), dir(goqu.I("id"))}
}

// StoreTerms upserts terms keyed by (taxonomy, slug).
func (p *PgSQL) StoreTerms(ctx context.Context, terms ...domain.RawTerm) ([]domain.RawTerm, error) {
	if len(terms) == 0 {
		return nil, nil
	}

	explicitIDs := false
	out := make([]domain.RawTerm, 0, len(terms))
	for _, term := range terms {
		explicitIDs = explicitIDs || term.ID != 0

		var row PgTerm
		if _, err := p.Builder.Insert(termsTable).
			Rows(insertRecord(term)).
			OnConflict(goqu.DoUpdate("taxonomy, slug", goqu.Record{
				"name":        goqu.I("excluded.name"),
				"description": goqu.I("excluded.description"),
				"parent":      goqu.I("excluded.parent"),
				"count":       goqu.I("excluded.count"),
				"term_group":  goqu.I("excluded.term_group"),
			})).
			Returning(&PgTerm{}).
			Executor().ScanStructContext(ctx, &row); err != nil {
			return nil, fmt.Errorf("could not store term %s/%s into pg: %w", term.Taxonomy, term.Slug, err)
		}
		out = append(out, row.ToDomain())
	}

	// explicit IDs bypass the sequence; move it past them so generated IDs do not collide
	if explicitIDs {
		if _, err := p.DB.ExecContext(ctx,
			`SELECT setval(pg_get_serial_sequence('terms', 'id'), GREATEST((SELECT MAX(id) FROM terms), 1))`,
		); err != nil {
			return nil, fmt.Errorf("could not advance term id sequence: %w", err)
		}
	}

	return out, nil
}
