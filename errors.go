package toml

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// DecodeError represents an error encountered while parsing a TOML
// document.
//
// In addition to the error message, it carries the position in the
// document where it happened, as well as a human-readable representation
// that shows where the error occurred in the document.
type DecodeError struct {
	message string
	line    int
	column  int
	eof     bool

	human string
}

// Error returns the error message suffixed with the position in the
// document, either "line L, column C" (1-based) or "end of document".
func (e *DecodeError) Error() string {
	if e.eof {
		return e.message + " (at end of document)"
	}
	return fmt.Sprintf("%s (at line %d, column %d)", e.message, e.line, e.column)
}

// String returns the human-readable contextualized error. This string is
// multi-line.
func (e *DecodeError) String() string {
	return e.human
}

// Position returns the (line, column) pair indicating where the error
// occurred in the document. Positions are 1-indexed.
func (e *DecodeError) Position() (row int, column int) {
	return e.line, e.column
}

// newDecodeError creates a DecodeError pointing at pos in src. The line
// and column are derived by counting newlines before pos.
func newDecodeError(src string, pos int, format string, args ...interface{}) error {
	e := &DecodeError{
		message: fmt.Sprintf(format, args...),
		eof:     pos >= len(src),
	}
	if e.eof {
		pos = len(src)
	}
	e.line, e.column = positionAtEnd(src[:pos])
	e.human = highlight(src, pos, e.line, e.message)
	return e
}

// highlight renders the line containing pos with a marker under the
// offending column.
func highlight(src string, pos, line int, message string) string {
	start := strings.LastIndexByte(src[:pos], '\n') + 1
	end := strings.IndexByte(src[pos:], '\n')
	if end < 0 {
		end = len(src)
	} else {
		end += pos
	}

	number := strconv.Itoa(line)
	var buf strings.Builder
	buf.WriteString(number)
	buf.WriteString("| ")
	buf.WriteString(src[start:end])
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(" ", len(number)))
	buf.WriteString("| ")
	buf.WriteString(strings.Repeat(" ", utf8.RuneCountInString(src[start:pos])))
	buf.WriteString("^ ")
	buf.WriteString(message)
	return buf.String()
}

// positionAtEnd computes the 1-based line and column just past b.
// Columns count characters, not bytes.
func positionAtEnd(b string) (row int, column int) {
	row = 1
	column = 1

	for _, c := range b {
		if c == '\n' {
			row++
			column = 1
		} else {
			column++
		}
	}
	return
}
