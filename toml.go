// Package toml decodes TOML 1.0 documents into plain Go values.
//
// The decoder produces a map[string]interface{} mirroring the document:
// tables become maps, arrays become []interface{}, and scalars become
// string, int64, bool, float64 (or whatever the configured float
// conversion returns), time.Time for offset date-times, and the
// LocalDate, LocalTime and LocalDateTime types for their timezone-less
// counterparts.
//
// Parsing either succeeds completely or fails with a *DecodeError
// locating the problem in the source; there is no partial result.
package toml

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/parsekit/toml/internal/tracker"
)

// ParseFloatFunc converts the decimal text of a TOML float into its
// in-memory value. The text has digit-separating underscores removed and
// may be one of the special forms inf, nan, +inf, -inf, +nan, -nan.
// Returning a custom type (e.g. an arbitrary-precision decimal) is
// allowed.
type ParseFloatFunc func(s string) (interface{}, error)

// Option adjusts the behavior of a Parse call.
type Option func(*config)

type config struct {
	parseFloat ParseFloatFunc
}

// WithParseFloat replaces the default float conversion
// (strconv.ParseFloat into a float64).
func WithParseFloat(fn ParseFloatFunc) Option {
	return func(c *config) {
		c.parseFloat = fn
	}
}

// Parse decodes a TOML document. The document must be UTF-8 encoded;
// Windows line endings are normalized to "\n" before parsing, including
// inside strings.
func Parse(data []byte, opts ...Option) (map[string]interface{}, error) {
	cfg := config{parseFloat: defaultParseFloat}
	for _, opt := range opts {
		opt(&cfg)
	}
	src := strings.ReplaceAll(string(data), "\r\n", "\n")
	if i := invalidUTF8Index(src); i >= 0 {
		return nil, newDecodeError(src, i, "invalid UTF-8 byte")
	}
	p := &parser{
		src:        src,
		out:        newNestedMap(),
		flags:      tracker.New(),
		parseFloat: cfg.parseFloat,
	}
	return p.parse()
}

// invalidUTF8Index returns the offset of the first byte of s that is not
// part of a valid UTF-8 encoding, or -1.
func invalidUTF8Index(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

// ParseReader reads r until EOF and decodes the result with Parse.
func ParseReader(r io.Reader, opts ...Option) (map[string]interface{}, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data, opts...)
}

func defaultParseFloat(s string) (interface{}, error) {
	// strconv rejects the sign on nan.
	switch s {
	case "+nan", "-nan":
		return math.NaN(), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Literals beyond the float64 range saturate to ±Inf
		// instead of failing.
		if errors.Is(err, strconv.ErrRange) {
			return f, nil
		}
		return nil, err
	}
	return f, nil
}
