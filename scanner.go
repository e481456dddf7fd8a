package toml

import "regexp"

// Fixed-pattern literal recognition. Numeric and date/time literals are
// matched with anchored patterns mirroring the TOML grammar (RFC 3339
// for dates and times); everything else in the parser is scanned by
// hand.
const localTimePattern = `([01][0-9]|2[0-3]):([0-5][0-9]):([0-5][0-9])(\.[0-9]+)?`

var (
	// Capture groups: 1 year, 2 month, 3 day, 4 hour, 5 minute,
	// 6 second, 7 fraction (with leading dot), 8 Z/z, 9 offset sign,
	// 10 offset hour, 11 offset minute.
	datetimeRe = regexp.MustCompile(`^([0-9]{4})-(0[1-9]|1[0-2])-(0[1-9]|[12][0-9]|3[01])` +
		`(?:[Tt ]` + localTimePattern + `(?:([Zz])|([+-])([01][0-9]|2[0-3]):([0-5][0-9]))?)?`)

	localTimeRe = regexp.MustCompile(`^` + localTimePattern)

	hexRe = regexp.MustCompile(`^[0-9A-Fa-f](?:_?[0-9A-Fa-f])*`)
	octRe = regexp.MustCompile(`^[0-7](?:_?[0-7])*`)
	binRe = regexp.MustCompile(`^[01](?:_?[01])*`)

	// Greedily matches anything starting with a decimal digit, including
	// valid date/time prefixes, so recognizers using it must run after
	// the date/time and non-decimal integer ones.
	decOrFloatRe = regexp.MustCompile(`^[+-]?(?:0|[1-9](?:_?[0-9])*)` +
		`(?:\.[0-9](?:_?[0-9])*)?(?:[eE][+-]?[0-9](?:_?[0-9])*)?`)
)

// scanPattern matches an anchored pattern against src at pos. It returns
// the capture groups (index 0 is the whole match) and the position just
// past the match.
func scanPattern(re *regexp.Regexp, src string, pos int) (groups []string, end int, ok bool) {
	groups = re.FindStringSubmatch(src[pos:])
	if groups == nil {
		return nil, 0, false
	}
	return groups, pos + len(groups[0]), true
}

// scanFollows reports whether src continues with s at pos.
func scanFollows(src string, pos int, s string) bool {
	return len(src)-pos >= len(s) && src[pos:pos+len(s)] == s
}

func isTomlWS(c byte) bool {
	return c == ' ' || c == '\t'
}

func isTomlWSOrNewline(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n'
}

func isBareKeyChar(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '-' || c == '_'
}

func isKeyInitialChar(c byte) bool {
	return isBareKeyChar(c) || c == '"' || c == '\''
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' ||
		c >= 'a' && c <= 'f' ||
		c >= 'A' && c <= 'F'
}

// ASCII control characters other than tab are banned from comments,
// keys and single-line strings. The multiline variants additionally
// tolerate the line breaks that may appear inside them.
func isIllegalBasicStrChar(c byte) bool {
	return c < 0x20 && c != '\t' || c == 0x7f
}

func isIllegalMultilineBasicStrChar(c byte) bool {
	return c < 0x20 && c != '\t' && c != '\n' && c != '\r' || c == 0x7f
}

func isIllegalLiteralStrChar(c byte) bool {
	return isIllegalBasicStrChar(c)
}

func isIllegalMultilineLiteralStrChar(c byte) bool {
	return c < 0x20 && c != '\t' && c != '\n' || c == 0x7f
}

func isIllegalCommentChar(c byte) bool {
	return isIllegalBasicStrChar(c)
}

func isUnicodeScalarValue(cp uint64) bool {
	return cp <= 0xD7FF || cp >= 0xE000 && cp <= 0x10FFFF
}
