// Package tracker enforces TOML's namespace mutability rules.
//
// The decoder records, for every dotted key path it has touched, whether
// that path may still be extended or redeclared. Two independent flags
// exist:
//
//   - ExplicitNest: the path was opened with header syntax ([table] or
//     [[array]]) or traversed as an intermediate segment of a dotted key.
//     Such a path can never be opened again with [table] syntax.
//   - Frozen: the path holds an inline table or an array value. The path
//     and everything beneath it are immutable for the rest of the
//     document.
package tracker

// Flag marks a property of a key path.
type Flag uint8

const (
	// Frozen marks an immutable namespace (inline table or array).
	Frozen Flag = 1 << iota
	// ExplicitNest marks a nest that has been explicitly created and can
	// no longer be opened using the "[table]" syntax.
	ExplicitNest
)

type node struct {
	flags     Flag
	recursive Flag
	children  map[string]*node
}

func newNode() *node {
	return &node{children: make(map[string]*node)}
}

// KeyFlags is a trie from key paths to flag sets. Each node carries a
// plain set, applying to that exact path, and a recursive set, applying
// to the path and every descendant. The zero value is not usable; create
// instances with New.
type KeyFlags struct {
	root *node
}

// New returns an empty flag store.
func New() *KeyFlags {
	return &KeyFlags{root: newNode()}
}

// UnsetAll removes every flag at exactly key, including flags of its
// descendants. Used when an array-of-tables header reuses a key: the
// previous element's namespace is released before the key is re-locked.
func (f *KeyFlags) UnsetAll(key []string) {
	cont := f.root
	for _, k := range key[:len(key)-1] {
		next, ok := cont.children[k]
		if !ok {
			return
		}
		cont = next
	}
	delete(cont.children, key[len(key)-1])
}

// SetForRelativeKey adds flag (non-recursively) to every segment of
// relKey resolved against headKey. Nodes are created as needed; headKey
// segments themselves are left unflagged.
func (f *KeyFlags) SetForRelativeKey(headKey, relKey []string, flag Flag) {
	cont := f.root
	for _, k := range headKey {
		next, ok := cont.children[k]
		if !ok {
			next = newNode()
			cont.children[k] = next
		}
		cont = next
	}
	for _, k := range relKey {
		next, ok := cont.children[k]
		if !ok {
			next = newNode()
			cont.children[k] = next
		}
		next.flags |= flag
		cont = next
	}
}

// Set adds flag to the exact node at key, creating intermediate nodes
// without flags. When recursive is true the flag also applies to every
// descendant of key.
func (f *KeyFlags) Set(key []string, flag Flag, recursive bool) {
	cont := f.root
	for _, k := range key[:len(key)-1] {
		next, ok := cont.children[k]
		if !ok {
			next = newNode()
			cont.children[k] = next
		}
		cont = next
	}
	stem := key[len(key)-1]
	n, ok := cont.children[stem]
	if !ok {
		n = newNode()
		cont.children[stem] = n
	}
	if recursive {
		n.recursive |= flag
	} else {
		n.flags |= flag
	}
}

// Is reports whether flag applies to key: either set on the node itself
// (plain or recursive), or set recursively on any strict ancestor. The
// empty key (document root) never has flags.
func (f *KeyFlags) Is(key []string, flag Flag) bool {
	if len(key) == 0 {
		return false
	}
	cont := f.root
	for _, k := range key[:len(key)-1] {
		next, ok := cont.children[k]
		if !ok {
			return false
		}
		if next.recursive&flag != 0 {
			return true
		}
		cont = next
	}
	if n, ok := cont.children[key[len(key)-1]]; ok {
		return (n.flags|n.recursive)&flag != 0
	}
	return false
}
