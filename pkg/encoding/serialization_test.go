package encoding

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

type envelope struct {
	Name  string          `json:"name"`
	Count int             `json:"count,omitempty"`
	Body  json.RawMessage `json:"body,omitempty"`
}

func TestCodecs(t *testing.T) {
	in := envelope{Name: "crate", Count: 3, Body: json.RawMessage(`{"a":[1,2],"b":"<x>"}`)}

	t.Run("JSON", func(t *testing.T) {
		data, err := JSON{}.Marshal(in)
		require.NoError(t, err)
		require.Equal(t, `{"name":"crate","count":3,"body":{"a":[1,2],"b":"<x>"}}`, string(data))

		var out envelope
		require.NoError(t, JSON{}.Unmarshal(data, &out))
		require.Equal(t, in, out)
	})

	t.Run("JSONIndent", func(t *testing.T) {
		data, err := JSON{Indent: "  "}.Marshal(map[string]int{"a": 1})
		require.NoError(t, err)
		require.Equal(t, "{\n  \"a\": 1\n}", string(data))
	})

	t.Run("YAML", func(t *testing.T) {
		data, err := YAML{}.Marshal(in)
		require.NoError(t, err)
		require.Contains(t, string(data), "name: crate")

		var out envelope
		require.NoError(t, YAML{}.Unmarshal(data, &out))
		require.Equal(t, in.Name, out.Name)
		require.Equal(t, in.Count, out.Count)
		require.JSONEq(t, string(in.Body), string(out.Body))
	})

	t.Run("YAMLMalformed", func(t *testing.T) {
		var out envelope
		require.Error(t, YAML{}.Unmarshal([]byte("name: [unclosed"), &out))
	})
}

func TestForFormat(t *testing.T) {
	cases := map[string]string{"": "json", "json": "json", "JSON": "json", "yaml": "yaml", "yml": "yaml"}
	for name, want := range cases {
		c, err := ForFormat(name, "")
		require.NoError(t, err, name)
		require.Equal(t, want, c.Name())
	}

	_, err := ForFormat("toml", "")
	require.Error(t, err)
}

func TestFingerprint(t *testing.T) {
	a, err := Fingerprint(envelope{Name: "x", Body: json.RawMessage("{ \"k\" : 1 }")})
	require.NoError(t, err)
	b, err := Fingerprint(envelope{Name: "x", Body: json.RawMessage(`{"k":1}`)})
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := Fingerprint(envelope{Name: "y", Body: json.RawMessage(`{"k":1}`)})
	require.NoError(t, err)
	require.NotEqual(t, a, c)
}

func TestFingerprintKeyOrder(t *testing.T) {
	a, err := Fingerprint(json.RawMessage(`{"b":1,"a":{"y":[1,2],"x":"s"}}`))
	require.NoError(t, err)
	b, err := Fingerprint(json.RawMessage(`{"a":{"x":"s","y":[1,2]},"b":1}`))
	require.NoError(t, err)
	require.Equal(t, a, b)
}
