package v1handler

import (
	"terms/pkg/domain"
	"terms/pkg/resolver"

	"github.com/go-faster/jx"
)

// EncodeResult writes res as {"shape": ..., "found": ..., "result": ...}.
// result is null, a term, an array of terms or, for batches, an array of
// nested results.
func EncodeResult(e *jx.Encoder, res resolver.Result) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("shape", func(e *jx.Encoder) { e.Str(res.Shape.String()) })
		e.Field("found", func(e *jx.Encoder) { e.Bool(res.Found()) })
		e.Field("result", func(e *jx.Encoder) {
			switch res.Shape {
			case resolver.ShapeSingle:
				encodeTerm(e, res.Term)
			case resolver.ShapeList:
				e.Arr(func(e *jx.Encoder) {
					for _, obj := range res.Terms {
						encodeTerm(e, obj)
					}
				})
			case resolver.ShapeBatch:
				e.Arr(func(e *jx.Encoder) {
					for _, item := range res.Batch {
						EncodeResult(e, item)
					}
				})
			default:
				e.Null()
			}
		})
	})
}

func encodeTerm(e *jx.Encoder, obj domain.Object) {
	if obj == nil {
		e.Null()

		return
	}

	raw := obj.Record()
	e.Obj(func(e *jx.Encoder) {
		e.Field("type", func(e *jx.Encoder) { e.Str(kindOf(obj)) })
		e.Field("id", func(e *jx.Encoder) { e.Int64(int64(raw.ID)) })
		e.Field("name", func(e *jx.Encoder) { e.Str(raw.Name) })
		e.Field("slug", func(e *jx.Encoder) { e.Str(raw.Slug) })
		e.Field("taxonomy", func(e *jx.Encoder) { e.Str(raw.Taxonomy) })
		if raw.Description != "" {
			e.Field("description", func(e *jx.Encoder) { e.Str(raw.Description) })
		}
		if raw.Parent != 0 {
			e.Field("parent", func(e *jx.Encoder) { e.Int64(int64(raw.Parent)) })
		}
		e.Field("count", func(e *jx.Encoder) { e.Int64(raw.Count) })
		switch t := obj.(type) {
		case *domain.Category:
			e.Field("topLevel", func(e *jx.Encoder) { e.Bool(t.IsTopLevel()) })
		case *domain.Tag:
			e.Field("hashtag", func(e *jx.Encoder) { e.Str(t.Hashtag()) })
		}
	})
}

func kindOf(obj domain.Object) string {
	switch obj.(type) {
	case *domain.Category:
		return "category"
	case *domain.Tag:
		return "tag"
	case *domain.Term:
		return "term"
	default:
		return "custom"
	}
}
