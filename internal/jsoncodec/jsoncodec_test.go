package jsoncodec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestMarshalIndent(t *testing.T) {
	indented, err := MarshalIndent(testPayload{ID: 42, Name: "acme"}, "", "  ")
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(indented), "\n  \"id\""), "got %s", indented)
}

func TestEncodeAndDecode(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Encode(buf, testPayload{ID: 7, Name: "stream"}))

	var decoded testPayload
	require.NoError(t, Decode(buf, &decoded))
	assert.Equal(t, testPayload{ID: 7, Name: "stream"}, decoded)
}

func TestUnmarshalGeneric(t *testing.T) {
	var out any
	require.NoError(t, Unmarshal([]byte(`{"a":1}`), &out))
	assert.Equal(t, map[string]any{"a": float64(1)}, out)

	assert.Error(t, Unmarshal([]byte(`{"a":`), &out))
	assert.Error(t, Unmarshal([]byte(`<html>`), &out))
}

func TestValid(t *testing.T) {
	assert.True(t, Valid([]byte(`[1,2]`)))
	assert.False(t, Valid([]byte(`[1,2`)))
}
