package resolver

import (
	"fmt"

	"terms/pkg/domain"
)

// build constructs the object for raw. The class map is read on every call so
// changes made by the provider between builds are honoured.
func (r *resolver) build(raw *domain.RawTerm) (domain.Object, error) {
	if raw == nil {
		return nil, domain.ErrNilRecord
	}

	construct := r.classes.ClassMap(DefaultClassMap()).Constructor(raw)
	obj, err := construct(raw)
	if err != nil {
		return nil, fmt.Errorf("could not build %s term %d: %w", raw.Taxonomy, raw.ID, err)
	}

	return obj, nil
}

func (r *resolver) buildList(raws []domain.RawTerm) (Result, error) {
	objs := make([]domain.Object, 0, len(raws))
	for i := range raws {
		obj, err := r.build(&raws[i])
		if err != nil {
			return Result{}, err
		}
		objs = append(objs, obj)
	}

	return list(objs), nil
}
