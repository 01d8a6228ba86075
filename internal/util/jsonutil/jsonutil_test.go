package jsonutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecover_ValidPassthrough(t *testing.T) {
	raw, err := Recover(`  {"a": 1, "b": [true, null]}  `)
	require.NoError(t, err)
	require.JSONEq(t, `{"a":1,"b":[true,null]}`, string(raw))
}

func TestRecover_RepairStage(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "fenced with language tag",
			in:   "```json\n{\"a\": 1}\n```",
			want: `{"a":1}`,
		},
		{
			name: "bare fence",
			in:   "```\n[1, 2, 3]\n```",
			want: `[1,2,3]`,
		},
		{
			name: "trailing comma in object",
			in:   `{"a": 1,}`,
			want: `{"a":1}`,
		},
		{
			name: "trailing comma in nested array",
			in:   `{"a": [1, 2,],}`,
			want: `{"a":[1,2]}`,
		},
		{
			name: "unquoted keys",
			in:   `{labels: ["Q1", "Q2"], values: [1, 2]}`,
			want: `{"labels":["Q1","Q2"],"values":[1,2]}`,
		},
		{
			name: "truncated mid string",
			in:   `{"title": "Market siz`,
			want: `{"title":"Market siz"}`,
		},
		{
			name: "missing closers",
			in:   `{"a": {"b": [1, 2`,
			want: `{"a":{"b":[1,2]}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := Recover(tt.in)
			require.NoError(t, err)
			require.JSONEq(t, tt.want, string(raw))
		})
	}
}

func TestRecover_ExtractionStage(t *testing.T) {
	in := `Sure! Here is the JSON you asked for:

{"name": "Palette", "colors": ["#111111", "#222222"]}

Let me know if you need anything else.`
	raw, err := Recover(in)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"Palette","colors":["#111111","#222222"]}`, string(raw))
}

func TestRecover_ExtractionIgnoresBracesInStrings(t *testing.T) {
	in := `prefix {"text": "a } inside", "n": 1} suffix`
	raw, err := Recover(in)
	require.NoError(t, err)
	require.JSONEq(t, `{"text":"a } inside","n":1}`, string(raw))
}

func TestRecover_ExtractedPayloadStillRepaired(t *testing.T) {
	in := `The result: {"a": [1, 2,]} done`
	raw, err := Recover(in)
	require.NoError(t, err)
	var v map[string]any
	require.NoError(t, json.Unmarshal(raw, &v))
	require.Contains(t, v, "a")
}

func TestRecover_Fails(t *testing.T) {
	for _, in := range []string{"", "   ", "not json at all", "just words, no brackets"} {
		_, err := Recover(in)
		require.ErrorIs(t, err, ErrRecoveryFailed, "input %q", in)
	}
}

func TestRecoverInto(t *testing.T) {
	var out struct {
		Bullets []string `json:"bullets"`
	}
	err := RecoverInto("```json\n{\"bullets\": [\"one\", \"two\"],}\n```", &out)
	require.NoError(t, err)
	require.Equal(t, []string{"one", "two"}, out.Bullets)
}

func TestQuoteBareKeys_LeavesStringValuesAlone(t *testing.T) {
	in := `{"note": "key: value, other: thing", ok: true}`
	got := quoteBareKeys(in)
	require.Equal(t, `{"note": "key: value, other: thing", "ok": true}`, got)
}

func TestMarshalNoEscape(t *testing.T) {
	b, err := MarshalNoEscape(map[string]string{"q": "a < b && c > d"})
	require.NoError(t, err)
	require.Equal(t, `{"q":"a < b && c > d"}`, string(b))
}
