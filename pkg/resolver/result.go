package resolver

import "terms/pkg/domain"

// Shape tells which field of a Result carries the resolved objects.
type Shape uint8

const (
	// ShapeNone means nothing was resolved.
	ShapeNone Shape = iota
	// ShapeSingle carries one object in Result.Term.
	ShapeSingle
	// ShapeList carries the objects built from one query in Result.Terms.
	ShapeList
	// ShapeBatch carries one Result per element of a sequence in Result.Batch.
	ShapeBatch
)

func (s Shape) String() string {
	switch s {
	case ShapeNone:
		return "none"
	case ShapeSingle:
		return "single"
	case ShapeList:
		return "list"
	case ShapeBatch:
		return "batch"
	default:
		return "unknown"
	}
}

// Result is the outcome of a resolution.
type Result struct {
	Shape Shape
	Term  domain.Object
	Terms []domain.Object
	Batch []Result
}

// NotFound is the "nothing matched" result.
func NotFound() Result { return Result{Shape: ShapeNone} }

func single(obj domain.Object) Result { return Result{Shape: ShapeSingle, Term: obj} }

func list(objs []domain.Object) Result { return Result{Shape: ShapeList, Terms: objs} }

func batch(results []Result) Result { return Result{Shape: ShapeBatch, Batch: results} }

// Found reports whether anything was resolved. A query matching no record and
// a single lookup of a missing identifier are both not found. A batch is
// found as a whole even when some of its elements are not.
func (r Result) Found() bool {
	switch r.Shape {
	case ShapeSingle:
		return r.Term != nil
	case ShapeList:
		return len(r.Terms) > 0
	case ShapeBatch:
		return true
	default:
		return false
	}
}

// Objects flattens the result into the resolved objects it holds, in order.
func (r Result) Objects() []domain.Object {
	switch r.Shape {
	case ShapeSingle:
		if r.Term == nil {
			return nil
		}

		return []domain.Object{r.Term}
	case ShapeList:
		return r.Terms
	case ShapeBatch:
		var out []domain.Object
		for _, item := range r.Batch {
			out = append(out, item.Objects()...)
		}

		return out
	default:
		return nil
	}
}
