package toml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeError_Position(t *testing.T) {
	_, err := Parse([]byte("a = 1\nb = zzz\n"))
	require.Error(t, err)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)

	line, column := decodeErr.Position()
	assert.Equal(t, 2, line)
	assert.Equal(t, 5, column)
	assert.Contains(t, decodeErr.Error(), "(at line 2, column 5)")
}

func TestDecodeError_EndOfDocument(t *testing.T) {
	_, err := Parse([]byte(`a = "unterminated`))
	require.Error(t, err)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Contains(t, decodeErr.Error(), "(at end of document)")
}

func TestDecodeError_FirstLineColumn(t *testing.T) {
	_, err := Parse([]byte("!"))
	require.Error(t, err)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	line, column := decodeErr.Position()
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, column)
}

func TestDecodeError_ColumnCountsCharacters(t *testing.T) {
	// "é" is two bytes but one character; columns must count characters.
	_, err := Parse([]byte("a = \"héllo\" x"))
	require.Error(t, err)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	line, column := decodeErr.Position()
	assert.Equal(t, 1, line)
	assert.Equal(t, 13, column)
}

func TestDecodeError_HumanHighlight(t *testing.T) {
	_, err := Parse([]byte("a = 1\nb = zzz\n"))
	require.Error(t, err)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)

	human := decodeErr.String()
	lines := strings.Split(human, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "2| b = zzz", lines[0])
	assert.Equal(t, " |     ^ invalid value", lines[1])
}
