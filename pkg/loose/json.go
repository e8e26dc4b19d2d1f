package loose

import (
	"errors"
	"fmt"

	"github.com/go-faster/jx"
)

// DecodeJSON decodes a JSON document into loose values: map[string]any for
// objects, []any for arrays, int64 for integral numbers, float64 for other
// numbers, string, bool and nil.
func DecodeJSON(data []byte) (any, error) {
	d := jx.DecodeBytes(data)

	v, err := Decode(d)
	if err != nil {
		return nil, fmt.Errorf("could not decode json: %w", err)
	}

	return v, nil
}

// Decode reads the next JSON value from d as a loose value.
func Decode(d *jx.Decoder) (any, error) {
	switch d.Next() {
	case jx.Object:
		out := map[string]any{}
		err := d.Obj(func(d *jx.Decoder, key string) error {
			v, err := Decode(d)
			if err != nil {
				return err
			}
			out[key] = v

			return nil
		})

		return out, err
	case jx.Array:
		out := []any{}
		err := d.Arr(func(d *jx.Decoder) error {
			v, err := Decode(d)
			if err != nil {
				return err
			}
			out = append(out, v)

			return nil
		})

		return out, err
	case jx.String:
		return d.Str()
	case jx.Number:
		n, err := d.Num()
		if err != nil {
			return nil, err
		}
		if n.IsInt() {
			return n.Int64()
		}

		return n.Float64()
	case jx.Bool:
		return d.Bool()
	case jx.Null:
		return nil, d.Null()
	default:
		return nil, errors.New("unexpected json token")
	}
}
