package toml

import "errors"

// Internal tree construction failures. Callers translate these into
// DecodeErrors before they can escape the package.
var (
	errNotNest = errors.New("no nest behind this key")
	errNotList = errors.New("an object other than a list found behind this key")
)

// nestedMap incrementally builds the decoded document: a tree of
// map[string]interface{} tables, []interface{} arrays and scalar leaves.
type nestedMap struct {
	root map[string]interface{}
}

func newNestedMap() *nestedMap {
	return &nestedMap{root: make(map[string]interface{})}
}

// getOrCreateNest walks key from the root, creating empty tables for
// missing segments. When accessLists is true and a traversed value is a
// list, the walk descends into its last element, which is the currently
// open array-of-tables entry. A traversed value that is not a table
// fails with errNotNest.
func (n *nestedMap) getOrCreateNest(key []string, accessLists bool) (map[string]interface{}, error) {
	cont := n.root
	for _, k := range key {
		v, ok := cont[k]
		if !ok {
			v = make(map[string]interface{})
			cont[k] = v
		}
		if list, ok := v.([]interface{}); ok && accessLists {
			v = list[len(list)-1]
		}
		next, ok := v.(map[string]interface{})
		if !ok {
			return nil, errNotNest
		}
		cont = next
	}
	return cont, nil
}

// appendNestToList appends a fresh empty table to the list at key,
// creating a one-element list if the key is absent. An existing value
// that is not a list fails with errNotList.
func (n *nestedMap) appendNestToList(key []string) error {
	cont, err := n.getOrCreateNest(key[:len(key)-1], true)
	if err != nil {
		return err
	}
	stem := key[len(key)-1]
	if existing, ok := cont[stem]; ok {
		list, ok := existing.([]interface{})
		if !ok {
			return errNotList
		}
		cont[stem] = append(list, make(map[string]interface{}))
	} else {
		cont[stem] = []interface{}{make(map[string]interface{})}
	}
	return nil
}
