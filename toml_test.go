package toml_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsekit/toml"
)

func TestParseReader(t *testing.T) {
	doc, err := toml.ParseReader(strings.NewReader("a = 1\n[b]\nc = \"x\"\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"a": int64(1),
		"b": map[string]interface{}{
			"c": "x",
		},
	}, doc)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestParseReader_ReadError(t *testing.T) {
	_, err := toml.ParseReader(failingReader{})
	require.EqualError(t, err, "broken pipe")
}

// decimal retains the exact text of a float literal.
type decimal string

func TestWithParseFloat(t *testing.T) {
	parse := func(s string) (interface{}, error) {
		return decimal(s), nil
	}
	doc, err := toml.Parse([]byte("a = 1_000.000_1\nb = inf\nc = 2"), toml.WithParseFloat(parse))
	require.NoError(t, err)

	// Underscores are stripped before the conversion runs; integers are
	// not routed through it.
	assert.Equal(t, decimal("1000.0001"), doc["a"])
	assert.Equal(t, decimal("inf"), doc["b"])
	assert.Equal(t, int64(2), doc["c"])
}

func TestWithParseFloat_ErrorBecomesDecodeError(t *testing.T) {
	parse := func(s string) (interface{}, error) {
		return nil, errors.New("no floats allowed")
	}
	_, err := toml.Parse([]byte("a = 1.5"), toml.WithParseFloat(parse))
	require.Error(t, err)

	var decodeErr *toml.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Contains(t, err.Error(), "no floats allowed")
}
