package toml

import (
	"strings"

	"github.com/parsekit/toml/internal/tracker"
)

// parser holds the state of one Parse call: the source text with the
// cursor into it, the document tree under construction, the namespace
// flags, and the table header the current statements are relative to.
type parser struct {
	src string
	pos int

	out    *nestedMap
	flags  *tracker.KeyFlags
	header []string

	parseFloat ParseFloatFunc
}

// parse consumes the document one statement at a time: blank lines,
// comments, key/value pairs, [table] headers and [[array]] headers.
// Every statement must be terminated by a newline or the end of the
// document.
func (p *parser) parse() (map[string]interface{}, error) {
	for {
		p.skipChars(isTomlWS)
		if p.pos >= len(p.src) {
			break
		}

		c := p.src[p.pos]
		var err error
		switch {
		case c == '\n':
			p.pos++
			continue
		case c == '#':
			err = p.expectComment()
		case isKeyInitialChar(c):
			err = p.keyValueRule()
		case scanFollows(p.src, p.pos, "[["):
			err = p.arrayTableRule()
		case c == '[':
			err = p.tableRule()
		default:
			err = p.errorf("invalid statement")
		}
		if err != nil {
			return nil, err
		}

		p.skipChars(isTomlWS)
		if err := p.skipComment(); err != nil {
			return nil, err
		}

		if p.pos >= len(p.src) {
			break
		}
		if p.src[p.pos] != '\n' {
			return nil, p.errorf("expected newline or end of document after a statement")
		}
		p.pos++
	}
	return p.out.root, nil
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return newDecodeError(p.src, p.pos, format, args...)
}

func (p *parser) skipChars(pred func(byte) bool) {
	for p.pos < len(p.src) && pred(p.src[p.pos]) {
		p.pos++
	}
}

// expectComment consumes a comment up to but not including the line
// break. Control characters other than tab are illegal in comments.
func (p *parser) expectComment() error {
	p.pos++
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == '\n' {
			break
		}
		if isIllegalCommentChar(c) {
			return p.errorf("invalid character %#U in comment", rune(c))
		}
		p.pos++
	}
	return nil
}

func (p *parser) skipComment() error {
	if p.pos < len(p.src) && p.src[p.pos] == '#' {
		return p.expectComment()
	}
	return nil
}

// skipCommentsAndArrayWS skips whitespace, newlines and comments, which
// may freely interleave between array elements.
func (p *parser) skipCommentsAndArrayWS() error {
	for {
		before := p.pos
		p.skipChars(isTomlWSOrNewline)
		if err := p.skipComment(); err != nil {
			return err
		}
		if p.pos == before {
			return nil
		}
	}
}

// tableRule handles a [key] header: the key becomes the active
// namespace. Redeclaring a table, reopening a dotted-key prefix or
// touching a frozen namespace is an error.
func (p *parser) tableRule() error {
	p.pos++
	p.skipChars(isTomlWS)
	key, err := p.parseKey()
	if err != nil {
		return err
	}

	if p.flags.Is(key, tracker.ExplicitNest) || p.flags.Is(key, tracker.Frozen) {
		return p.errorf("cannot declare %s twice", keyString(key))
	}
	p.flags.Set(key, tracker.ExplicitNest, false)
	if _, err := p.out.getOrCreateNest(key, true); err != nil {
		return p.errorf("cannot overwrite a value")
	}
	p.header = key

	if !scanFollows(p.src, p.pos, "]") {
		return p.errorf(`expected "]" at the end of a table declaration`)
	}
	p.pos++
	return nil
}

// arrayTableRule handles a [[key]] header: a fresh table is appended to
// the array at key, which becomes the active namespace. The key's flags
// are released first so the new element starts from a clean namespace,
// then the key itself is re-locked against [table] redeclaration.
func (p *parser) arrayTableRule() error {
	p.pos += 2
	p.skipChars(isTomlWS)
	key, err := p.parseKey()
	if err != nil {
		return err
	}

	if p.flags.Is(key, tracker.Frozen) {
		return p.errorf("cannot mutate immutable namespace %s", keyString(key))
	}
	p.flags.UnsetAll(key)
	p.flags.Set(key, tracker.ExplicitNest, false)
	if err := p.out.appendNestToList(key); err != nil {
		return p.errorf("cannot overwrite a value")
	}
	p.header = key

	if !scanFollows(p.src, p.pos, "]]") {
		return p.errorf(`expected "]]" at the end of an array declaration`)
	}
	p.pos += 2
	return nil
}

// keyValueRule handles a bare key = value statement, resolved against
// the active table header.
func (p *parser) keyValueRule() error {
	key, value, err := p.parseKeyValuePair()
	if err != nil {
		return err
	}
	keyParent, keyStem := key[:len(key)-1], key[len(key)-1]
	absKeyParent := concatKeys(p.header, keyParent)
	absKey := concatKeys(p.header, key)

	if p.flags.Is(absKeyParent, tracker.Frozen) {
		return p.errorf("cannot mutate immutable namespace %s", keyString(absKeyParent))
	}
	// Containers in the relative path can no longer be opened with the
	// table syntax after this.
	p.flags.SetForRelativeKey(p.header, key, tracker.ExplicitNest)

	nest, err := p.out.getOrCreateNest(absKeyParent, true)
	if err != nil {
		return p.errorf("cannot overwrite a value")
	}
	if _, exists := nest[keyStem]; exists {
		return p.errorf("cannot define %s twice", keyString(absKey))
	}
	// Inline table and array namespaces are immutable once built.
	if isContainer(value) {
		p.flags.Set(absKey, tracker.Frozen, true)
	}
	nest[keyStem] = value
	return nil
}

func (p *parser) parseKeyValuePair() ([]string, interface{}, error) {
	key, err := p.parseKey()
	if err != nil {
		return nil, nil, err
	}
	if p.pos >= len(p.src) || p.src[p.pos] != '=' {
		return nil, nil, p.errorf(`expected "=" after a key in a key/value pair`)
	}
	p.pos++
	p.skipChars(isTomlWS)
	value, err := p.parseValue()
	if err != nil {
		return nil, nil, err
	}
	return key, value, nil
}

// parseKey parses a dotted key: one or more bare or quoted segments
// separated by dots. Dots inside quoted segments are not separators.
func (p *parser) parseKey() ([]string, error) {
	part, err := p.parseKeyPart()
	if err != nil {
		return nil, err
	}
	key := []string{part}
	p.skipChars(isTomlWS)
	for p.pos < len(p.src) && p.src[p.pos] == '.' {
		p.pos++
		p.skipChars(isTomlWS)
		part, err = p.parseKeyPart()
		if err != nil {
			return nil, err
		}
		key = append(key, part)
		p.skipChars(isTomlWS)
	}
	return key, nil
}

func (p *parser) parseKeyPart() (string, error) {
	var c byte
	if p.pos < len(p.src) {
		c = p.src[p.pos]
	}
	switch {
	case isBareKeyChar(c):
		start := p.pos
		p.skipChars(isBareKeyChar)
		return p.src[start:p.pos], nil
	case c == '\'':
		return p.parseLiteralStr()
	case c == '"':
		return p.parseBasicStr()
	default:
		return "", p.errorf("invalid initial character for a key part")
	}
}

func keyString(key []string) string {
	return strings.Join(key, ".")
}

func concatKeys(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

func isContainer(v interface{}) bool {
	switch v.(type) {
	case map[string]interface{}, []interface{}:
		return true
	}
	return false
}
