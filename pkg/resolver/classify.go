package resolver

import (
	"encoding/json"
	"reflect"

	"terms/pkg/domain"
	"terms/pkg/loose"
	"terms/pkg/storage"
)

// Classify decides which resolution strategy applies to v. The checks run in
// a fixed order and the first match wins, since some values satisfy more than
// one of them (a numeric string is also a string, a resolved object may also
// be a struct):
//
//  1. integers and numeric strings: ByID
//  2. other strings: ByName with that single name
//  3. storage.TermQuery: ByQuery
//  4. objects: ByDomainObject, ByRecord or ForeignObject
//  5. sequences: ByName when every element is a string, ByList otherwise
//  6. string keyed maps: ByFilterMap
//  7. anything else: Unrecognized
func Classify(v any) Input {
	if n, ok := v.(json.Number); ok {
		if id, ok := loose.ParseInteger(n.String()); ok {
			return ByID{ID: domain.TermID(id)}
		}

		return Unrecognized{Value: v}
	}
	if id, ok := loose.Integer(v); ok {
		return ByID{ID: domain.TermID(id)}
	}
	if loose.IsString(v) {
		s, _ := loose.String(v)

		return ByName{Names: []string{s}}
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return Unrecognized{Value: v}
	}

	switch t := v.(type) {
	case *storage.TermQuery:
		return ByQuery{Query: t}
	case storage.TermQuery:
		return ByQuery{Query: &t}
	case domain.Object:
		return ByDomainObject{Object: t}
	case *domain.RawTerm:
		return ByRecord{Record: t}
	case domain.RawTerm:
		return ByRecord{Record: &t}
	}
	if rv.Kind() == reflect.Struct || rv.Kind() == reflect.Pointer {
		return ForeignObject{Value: v}
	}

	if items, ok := loose.Sequence(v); ok {
		if names, ok := allStrings(items); ok {
			return ByName{Names: names}
		}

		return ByList{Items: items}
	}
	if filters, ok := loose.Mapping(v); ok {
		return ByFilterMap{Filters: filters}
	}

	return Unrecognized{Value: v}
}

func allStrings(items []any) ([]string, bool) {
	names := make([]string, len(items))
	for i, item := range items {
		if !loose.IsString(item) {
			return nil, false
		}
		names[i], _ = loose.String(item)
	}

	return names, true
}
