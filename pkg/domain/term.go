package domain

import (
	"errors"
	"fmt"
)

// TermID uniquely identifies a term inside the repository.
type TermID int64

// Well-known taxonomy names.
const (
	TaxonomyCategory = "category"
	TaxonomyTag      = "post_tag"
)

// ErrNilRecord is returned by constructors that receive a nil record.
var ErrNilRecord = errors.New("nil term record")

// RawTerm is a term exactly as the repository returns it. Resolution never
// mutates a RawTerm; constructors copy what they need.
type RawTerm struct {
	// ID is the repository identifier of the term.
	ID TermID `json:"id" yaml:"id"`
	// Name is the human-readable label.
	Name string `json:"name" yaml:"name"`
	// Slug is the URL-safe label, unique within a taxonomy.
	Slug string `json:"slug" yaml:"slug"`
	// Taxonomy names the classification scheme the term belongs to.
	Taxonomy string `json:"taxonomy" yaml:"taxonomy"`
	// Description is optional free text.
	Description string `json:"description,omitempty" yaml:"description"`
	// Parent is the ID of the parent term for hierarchical taxonomies, zero otherwise.
	Parent TermID `json:"parent,omitempty" yaml:"parent"`
	// Count is the number of objects attached to the term.
	Count int64 `json:"count" yaml:"count"`
	// TermGroup groups aliased terms together.
	TermGroup int64 `json:"termGroup,omitempty" yaml:"termGroup"`
}

// Object is implemented by every resolved term object. A value that already
// satisfies Object is considered resolved and is never rebuilt.
type Object interface {
	// ID returns the repository identifier of the term.
	ID() TermID
	// Taxonomy returns the taxonomy the term belongs to.
	Taxonomy() string
	// Record returns a copy of the raw record the object was built from.
	Record() RawTerm
}

// Constructor builds a resolved object from a raw record.
type Constructor func(raw *RawTerm) (Object, error)

// Term is the default resolved object used for every taxonomy the class map
// does not mention.
type Term struct {
	raw RawTerm
}

// Ensure Term implements Object.
var _ Object = (*Term)(nil)

// NewTerm builds a Term from a raw record. It is a Constructor.
func NewTerm(raw *RawTerm) (Object, error) {
	return newTerm(raw)
}

func newTerm(raw *RawTerm) (*Term, error) {
	if raw == nil {
		return nil, ErrNilRecord
	}

	return &Term{raw: *raw}, nil
}

func (t *Term) ID() TermID          { return t.raw.ID }
func (t *Term) Taxonomy() string    { return t.raw.Taxonomy }
func (t *Term) Record() RawTerm     { return t.raw }
func (t *Term) Name() string        { return t.raw.Name }
func (t *Term) Slug() string        { return t.raw.Slug }
func (t *Term) Description() string { return t.raw.Description }
func (t *Term) Parent() TermID      { return t.raw.Parent }
func (t *Term) Count() int64        { return t.raw.Count }

// String renders the term as "taxonomy/slug#id".
func (t *Term) String() string {
	return fmt.Sprintf("%s/%s#%d", t.raw.Taxonomy, t.raw.Slug, t.raw.ID)
}

// Category is a term from the hierarchical category taxonomy.
type Category struct {
	*Term
}

// NewCategory builds a Category. Records from any other taxonomy are rejected.
func NewCategory(raw *RawTerm) (Object, error) {
	t, err := newTerm(raw)
	if err != nil {
		return nil, err
	}
	if t.raw.Taxonomy != TaxonomyCategory {
		return nil, fmt.Errorf("could not build category from %q term %d", t.raw.Taxonomy, t.raw.ID)
	}

	return &Category{Term: t}, nil
}

// IsTopLevel reports whether the category has no parent.
func (c *Category) IsTopLevel() bool { return c.raw.Parent == 0 }

// Tag is a term from the flat tag taxonomy.
type Tag struct {
	*Term
}

// NewTag builds a Tag from any record.
func NewTag(raw *RawTerm) (Object, error) {
	t, err := newTerm(raw)
	if err != nil {
		return nil, err
	}

	return &Tag{Term: t}, nil
}

// Hashtag renders the tag name as a hashtag using its slug.
func (t *Tag) Hashtag() string { return "#" + t.raw.Slug }
