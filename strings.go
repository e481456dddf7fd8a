package toml

import (
	"strconv"
	"strings"
)

// parseBasicStr parses a single-line basic string. The cursor is on the
// opening quotation mark.
func (p *parser) parseBasicStr() (string, error) {
	p.pos++
	return p.parseStr('"', 1, isIllegalBasicStrChar, false)
}

// parseLiteralStr parses a single-line literal string: verbatim content
// between apostrophes, no escape processing.
func (p *parser) parseLiteralStr() (string, error) {
	p.pos++
	start := p.pos
	for {
		if p.pos >= len(p.src) {
			return "", p.errorf("unterminated string")
		}
		c := p.src[p.pos]
		if c == '\'' {
			break
		}
		if isIllegalLiteralStrChar(c) {
			return "", p.errorf("invalid character %#U in string", rune(c))
		}
		p.pos++
	}
	s := p.src[start:p.pos]
	p.pos++
	return s, nil
}

// parseMultilineStr parses a multiline basic or literal string. The
// cursor is on the first character of the opening triple delimiter.
func (p *parser) parseMultilineStr(literal bool) (string, error) {
	p.pos += 3
	// A newline immediately following the opening delimiter is trimmed.
	if p.pos < len(p.src) && p.src[p.pos] == '\n' {
		p.pos++
	}

	var result string
	var err error
	if literal {
		result, err = p.parseStr('\'', 3, isIllegalMultilineLiteralStrChar, true)
	} else {
		result, err = p.parseStr('"', 3, isIllegalMultilineBasicStrChar, true)
	}
	if err != nil {
		return "", err
	}

	// The closing sequence may be followed by up to two more delimiter
	// characters; they belong to the string content.
	delim := byte('\'')
	if !literal {
		delim = '"'
	}
	if p.pos >= len(p.src) || p.src[p.pos] != delim {
		return result, nil
	}
	p.pos++
	if p.pos >= len(p.src) || p.src[p.pos] != delim {
		return result + string(delim), nil
	}
	p.pos++
	return result + string(delim) + string(delim), nil
}

// parseStr scans until an unescaped run of delimLen delim characters.
// Escape sequences are only decoded for basic strings (delim '"');
// literal strings copy bytes verbatim.
func (p *parser) parseStr(delim byte, delimLen int, illegal func(byte) bool, multiline bool) (string, error) {
	expectAfter := strings.Repeat(string(delim), delimLen-1)
	var result strings.Builder
	start := p.pos
	for {
		if p.pos >= len(p.src) {
			return "", p.errorf("unterminated string")
		}
		c := p.src[p.pos]
		if c == delim {
			if scanFollows(p.src, p.pos+1, expectAfter) {
				result.WriteString(p.src[start:p.pos])
				p.pos += delimLen
				return result.String(), nil
			}
			p.pos++
			continue
		}
		if c == '\\' && delim == '"' {
			result.WriteString(p.src[start:p.pos])
			esc, err := p.parseBasicStrEscape(multiline)
			if err != nil {
				return "", err
			}
			result.WriteString(esc)
			start = p.pos
			continue
		}
		if illegal(c) {
			return "", p.errorf("illegal character %#U", rune(c))
		}
		p.pos++
	}
}

// parseBasicStrEscape decodes one escape sequence. The cursor is on the
// backslash. In multiline strings a backslash that ends a line consumes
// all following whitespace and newlines and contributes no text.
func (p *parser) parseBasicStrEscape(multiline bool) (string, error) {
	end := p.pos + 2
	if end > len(p.src) {
		end = len(p.src)
	}
	escapeID := p.src[p.pos:end]
	p.pos = end

	if multiline && (escapeID == "\\ " || escapeID == "\\\t" || escapeID == "\\\n") {
		// Skip whitespace until the next non-whitespace character or the
		// end of the document. Non-whitespace before the newline is an
		// error.
		if escapeID != "\\\n" {
			p.skipChars(isTomlWS)
			if p.pos >= len(p.src) {
				return "", nil
			}
			if p.src[p.pos] != '\n' {
				return "", p.errorf(`unescaped "\" in a string`)
			}
			p.pos++
		}
		p.skipChars(isTomlWSOrNewline)
		return "", nil
	}

	switch escapeID {
	case `\b`:
		return "\u0008", nil
	case `\t`:
		return "\u0009", nil
	case `\n`:
		return "\u000A", nil
	case `\f`:
		return "\u000C", nil
	case `\r`:
		return "\u000D", nil
	case `\"`:
		return "\u0022", nil
	case `\\`:
		return "\u005C", nil
	case `\u`:
		return p.parseHexChar(4)
	case `\U`:
		return p.parseHexChar(8)
	}
	if len(escapeID) != 2 {
		return "", p.errorf("unterminated string")
	}
	return "", p.errorf(`unescaped "\" in a string`)
}

// parseHexChar decodes the hex payload of a \u or \U escape into a
// single Unicode scalar value.
func (p *parser) parseHexChar(hexLen int) (string, error) {
	if p.pos+hexLen > len(p.src) {
		return "", p.errorf("invalid hex value")
	}
	hexStr := p.src[p.pos : p.pos+hexLen]
	for i := 0; i < hexLen; i++ {
		if !isHexDigit(hexStr[i]) {
			return "", p.errorf("invalid hex value")
		}
	}
	p.pos += hexLen

	cp, err := strconv.ParseUint(hexStr, 16, 32)
	if err != nil {
		return "", p.errorf("invalid hex value")
	}
	if !isUnicodeScalarValue(cp) {
		return "", p.errorf("escaped character is not a Unicode scalar value")
	}
	return string(rune(cp)), nil
}
