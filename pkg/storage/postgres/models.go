package postgres

import (
	"time"

	"terms/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

// PgTerm is the row layout of the terms table.
type PgTerm struct {
	ID          int64  `db:"id"          goqu:"skipinsert"`
	Name        string `db:"name"`
	Slug        string `db:"slug"`
	Taxonomy    string `db:"taxonomy"`
	Description string `db:"description"`
	Parent      int64  `db:"parent"`
	Count       int64  `db:"count"`
	TermGroup   int64  `db:"term_group"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgTerm) ToDomain() domain.RawTerm {
	return domain.RawTerm{
		ID:          domain.TermID(p.ID),
		Name:        p.Name,
		Slug:        p.Slug,
		Taxonomy:    p.Taxonomy,
		Description: p.Description,
		Parent:      domain.TermID(p.Parent),
		Count:       p.Count,
		TermGroup:   p.TermGroup,
	}
}

// insertRecord returns the column set for an upsert of term. The id column
// is only written when the caller chose an ID.
func insertRecord(term domain.RawTerm) goqu.Record {
	rec := goqu.Record{
		"name":        term.Name,
		"slug":        term.Slug,
		"taxonomy":    term.Taxonomy,
		"description": term.Description,
		"parent":      int64(term.Parent),
		"count":       term.Count,
		"term_group":  term.TermGroup,
	}
	if term.ID != 0 {
		rec["id"] = int64(term.ID)
	}

	return rec
}

func pgTermsToDomain(rows []PgTerm) []domain.RawTerm {
	out := make([]domain.RawTerm, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out
}

func termIDs(ids []domain.TermID) []int64 {
	out := make([]int64, len(ids))
	for i, id := range ids {
		out[i] = int64(id)
	}

	return out
}
