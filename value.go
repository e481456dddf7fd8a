package toml

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/parsekit/toml/internal/tracker"
)

// parseValue parses one TOML value at the cursor: scalar, array or
// inline table. Recognizers run in a fixed order; in particular the
// decimal-or-float pattern must run after the date/time and non-decimal
// integer ones because it also matches their prefixes.
func (p *parser) parseValue() (interface{}, error) {
	var c byte
	if p.pos < len(p.src) {
		c = p.src[p.pos]
	}

	// Basic strings
	if c == '"' {
		if scanFollows(p.src, p.pos, `"""`) {
			return p.parseMultilineStr(false)
		}
		return p.parseBasicStr()
	}

	// Literal strings
	if c == '\'' {
		if scanFollows(p.src, p.pos, "'''") {
			return p.parseMultilineStr(true)
		}
		return p.parseLiteralStr()
	}

	// Booleans
	if c == 't' && scanFollows(p.src, p.pos, "true") {
		p.pos += 4
		return true, nil
	}
	if c == 'f' && scanFollows(p.src, p.pos, "false") {
		p.pos += 5
		return false, nil
	}

	// Dates and times
	if groups, end, ok := scanPattern(datetimeRe, p.src, p.pos); ok {
		// The pattern checks digit ranges but not the calendar, so
		// 2021-02-30 still matches.
		if !localDateFromMatch(groups).IsValid() {
			return nil, p.errorf("invalid date or datetime")
		}
		p.pos = end
		return datetimeFromMatch(groups), nil
	}
	if groups, end, ok := scanPattern(localTimeRe, p.src, p.pos); ok {
		p.pos = end
		return localTimeFromMatch(groups[1:]), nil
	}

	// Non-decimal integers
	if c == '0' && p.pos+1 < len(p.src) {
		switch p.src[p.pos+1] {
		case 'x':
			p.pos += 2
			return p.parseRadixInt(hexRe, 16)
		case 'o':
			p.pos += 2
			return p.parseRadixInt(octRe, 8)
		case 'b':
			p.pos += 2
			return p.parseRadixInt(binRe, 2)
		}
	}

	// Decimal integers and "normal" floats
	if groups, end, ok := scanPattern(decOrFloatRe, p.src, p.pos); ok {
		text := groups[0]
		p.pos = end
		if strings.ContainsAny(text, ".eE") {
			return p.callParseFloat(text)
		}
		v, err := strconv.ParseInt(strings.ReplaceAll(text, "_", ""), 10, 64)
		if err != nil {
			return nil, p.errorf("cannot parse integer %s: %s", text, err)
		}
		return v, nil
	}

	// Arrays
	if c == '[' {
		return p.parseArray()
	}

	// Inline tables
	if c == '{' {
		return p.parseInlineTable()
	}

	// Special floats
	if three := p.lookahead(3); three == "inf" || three == "nan" {
		p.pos += 3
		return p.callParseFloat(three)
	}
	switch four := p.lookahead(4); four {
	case "-inf", "+inf", "-nan", "+nan":
		p.pos += 4
		return p.callParseFloat(four)
	}

	return nil, p.errorf("invalid value")
}

func (p *parser) lookahead(n int) string {
	if p.pos+n > len(p.src) {
		return ""
	}
	return p.src[p.pos : p.pos+n]
}

// parseArray parses a [...] array. Whitespace, newlines and comments are
// allowed between elements; a trailing comma before the closing bracket
// is permitted.
func (p *parser) parseArray() (interface{}, error) {
	p.pos++
	array := []interface{}{}

	if err := p.skipCommentsAndArrayWS(); err != nil {
		return nil, err
	}
	if scanFollows(p.src, p.pos, "]") {
		p.pos++
		return array, nil
	}
	for {
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		array = append(array, val)
		if err := p.skipCommentsAndArrayWS(); err != nil {
			return nil, err
		}

		if scanFollows(p.src, p.pos, "]") {
			p.pos++
			return array, nil
		}
		if !scanFollows(p.src, p.pos, ",") {
			return nil, p.errorf("unclosed array")
		}
		p.pos++

		if err := p.skipCommentsAndArrayWS(); err != nil {
			return nil, err
		}
		if scanFollows(p.src, p.pos, "]") {
			p.pos++
			return array, nil
		}
	}
}

// parseInlineTable parses a {...} table. Keys are tracked against a
// flag store local to this table, so a pair cannot drill into a
// container added by an earlier pair, and duplicate keys fail. Newlines
// are not permitted anywhere inside the construct.
func (p *parser) parseInlineTable() (interface{}, error) {
	p.pos++
	nested := newNestedMap()
	flags := tracker.New()

	p.skipChars(isTomlWS)
	if scanFollows(p.src, p.pos, "}") {
		p.pos++
		return nested.root, nil
	}
	for {
		key, value, err := p.parseKeyValuePair()
		if err != nil {
			return nil, err
		}
		keyParent, keyStem := key[:len(key)-1], key[len(key)-1]
		if flags.Is(key, tracker.Frozen) {
			return nil, p.errorf("cannot mutate immutable namespace %s", keyString(key))
		}
		nest, err := nested.getOrCreateNest(keyParent, false)
		if err != nil {
			return nil, p.errorf("cannot overwrite a value")
		}
		if _, exists := nest[keyStem]; exists {
			return nil, p.errorf("duplicate inline table key %q", keyStem)
		}
		nest[keyStem] = value

		p.skipChars(isTomlWS)
		if scanFollows(p.src, p.pos, "}") {
			p.pos++
			return nested.root, nil
		}
		if !scanFollows(p.src, p.pos, ",") {
			return nil, p.errorf("unclosed inline table")
		}
		if isContainer(value) {
			flags.Set(key, tracker.Frozen, true)
		}
		p.pos++
		p.skipChars(isTomlWS)
	}
}

// parseRadixInt parses the digit run of a hex, octal or binary integer.
// The cursor is just past the 0x/0o/0b prefix.
func (p *parser) parseRadixInt(re *regexp.Regexp, base int) (interface{}, error) {
	groups, end, ok := scanPattern(re, p.src, p.pos)
	if !ok {
		return nil, p.errorf("unexpected sequence")
	}
	p.pos = end
	v, err := strconv.ParseInt(strings.ReplaceAll(groups[0], "_", ""), base, 64)
	if err != nil {
		return nil, p.errorf("cannot parse integer %s: %s", groups[0], err)
	}
	return v, nil
}

// callParseFloat routes decimal text through the configured float
// conversion. Digit-separating underscores are removed first.
func (p *parser) callParseFloat(text string) (interface{}, error) {
	v, err := p.parseFloat(strings.ReplaceAll(text, "_", ""))
	if err != nil {
		return nil, p.errorf("cannot parse float %s: %s", text, err)
	}
	return v, nil
}

// datetimeFromMatch builds the value for a datetime pattern match: a
// LocalDate when no time is present, a time.Time in a fixed zone when an
// offset or Z is present, and a LocalDateTime otherwise.
func datetimeFromMatch(groups []string) interface{} {
	date := localDateFromMatch(groups)
	if groups[4] == "" {
		return date
	}
	lt := localTimeFromMatch(groups[4:])

	switch {
	case groups[9] != "": // numeric offset
		seconds := atoi(groups[10])*3600 + atoi(groups[11])*60
		if groups[9] == "-" {
			seconds = -seconds
		}
		zone := time.FixedZone(groups[9]+groups[10]+":"+groups[11], seconds)
		return time.Date(date.Year, time.Month(date.Month), date.Day,
			lt.Hour, lt.Minute, lt.Second, lt.Nanosecond, zone)
	case groups[8] != "": // Z
		return time.Date(date.Year, time.Month(date.Month), date.Day,
			lt.Hour, lt.Minute, lt.Second, lt.Nanosecond, time.UTC)
	default:
		return LocalDateTime{date, lt}
	}
}
