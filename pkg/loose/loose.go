// Package loose interprets loosely typed values, the kind decoded from JSON or
// YAML documents or handed over by host code as plain `any`. It answers shape
// questions (is this a sequence, an integer, truthy?) without caring about the
// exact Go type behind the value.
package loose

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// Integer reports the integer held by v. Integer kinds qualify, as do strings
// (including json.Number) consisting of an optionally signed run of decimal
// digits, surrounding whitespace ignored. Floats never qualify.
func Integer(v any) (int64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > 1<<63-1 {
			return 0, false
		}

		return int64(u), true
	case reflect.String:
		return ParseInteger(rv.String())
	default:
		return 0, false
	}
}

// ParseInteger parses s as a decimal integer, ignoring surrounding whitespace.
func ParseInteger(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}

	return n, true
}

// IsString reports whether v is of a string kind.
func IsString(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.String
}

// String renders scalar v (string, integer, float or bool kinds) as a string.
// Composite values are rejected.
func String(v any) (string, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	default:
		return "", false
	}
}

// Bool interprets v as a boolean: bool kinds, integers (non-zero is true) and
// strings accepted by strconv.ParseBool.
func Bool(v any) (bool, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool(), true
	case reflect.String:
		b, err := strconv.ParseBool(strings.TrimSpace(rv.String()))
		if err != nil {
			return false, false
		}

		return b, true
	default:
		n, ok := Integer(v)

		return n != 0, ok
	}
}

// Sequence returns the elements of v when v is ordered and integer indexed:
// a slice, an array, or a map with integer keys (elements ordered by key).
// A map with interface keys qualifies when it is not empty and every key
// holds an integer.
func Sequence(v any) ([]any, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return []any{}, true
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}

		return out, true
	case reflect.Map:
		keys := rv.MapKeys()
		if !integerKeys(rv.Type().Key().Kind(), keys) {
			return nil, false
		}
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			ai, _ := Integer(a.Interface())
			bi, _ := Integer(b.Interface())

			return cmp.Compare(ai, bi)
		})
		out := make([]any, len(keys))
		for i, k := range keys {
			out[i] = rv.MapIndex(k).Interface()
		}

		return out, true
	default:
		return nil, false
	}
}

// Mapping returns a copy of v when v is a map keyed by strings. A map with
// interface keys qualifies when it is empty or holds at least one string
// key; its other keys are formatted with fmt.Sprint.
func Mapping(v any) (map[string]any, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return nil, false
	}

	switch rv.Type().Key().Kind() {
	case reflect.String:
	case reflect.Interface:
		keys := rv.MapKeys()
		if len(keys) > 0 && !slices.ContainsFunc(keys, func(k reflect.Value) bool {
			return k.Elem().Kind() == reflect.String
		}) {
			return nil, false
		}
	default:
		return nil, false
	}

	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		key := iter.Key()
		if key.Kind() == reflect.Interface {
			key = key.Elem()
		}
		if key.Kind() == reflect.String {
			out[key.String()] = iter.Value().Interface()
		} else {
			out[fmt.Sprint(iter.Key().Interface())] = iter.Value().Interface()
		}
	}

	return out, true
}

// Truthy applies the loose truthiness rules callers of a filter API expect:
// nil, false, zero numbers, "", "0" and empty collections are false.
func Truthy(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Invalid:
		return false
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.String:
		s := rv.String()

		return s != "" && s != "0"
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	default:
		return true
	}
}

// integerKeys reports whether map keys of kind keyKind index a sequence.
func integerKeys(keyKind reflect.Kind, keys []reflect.Value) bool {
	if isIntegerKind(keyKind) {
		return true
	}
	if keyKind != reflect.Interface || len(keys) == 0 {
		return false
	}

	return !slices.ContainsFunc(keys, func(k reflect.Value) bool {
		return !isIntegerKind(k.Elem().Kind())
	})
}

func isIntegerKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}
