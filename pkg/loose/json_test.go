package loose_test

import (
	"testing"

	"terms/pkg/loose"

	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want any
	}{
		{name: "integer", in: `7`, want: int64(7)},
		{name: "negative integer", in: `-7`, want: int64(-7)},
		{name: "float", in: `7.5`, want: 7.5},
		{name: "string", in: `"category"`, want: "category"},
		{name: "bool", in: `true`, want: true},
		{name: "null", in: `null`, want: nil},
		{name: "array", in: `[7, "tags", null]`, want: []any{int64(7), "tags", nil}},
		{name: "empty array", in: `[]`, want: []any{}},
		{
			name: "object",
			in:   `{"taxonomy": ["tags"], "term_id": 7, "nested": {"a": false}}`,
			want: map[string]any{
				"taxonomy": []any{"tags"},
				"term_id":  int64(7),
				"nested":   map[string]any{"a": false},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := loose.DecodeJSON([]byte(tt.in))
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeJSON_Invalid(t *testing.T) {
	for _, in := range []string{``, `{"a":`, `[1,`, `tru`} {
		_, err := loose.DecodeJSON([]byte(in))
		require.Error(t, err, in)
	}
}
