package toml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateNest_CreatesIntermediateTables(t *testing.T) {
	n := newNestedMap()
	nest, err := n.getOrCreateNest([]string{"a", "b"}, true)
	require.NoError(t, err)
	nest["x"] = int64(1)

	assert.Equal(t, map[string]interface{}{
		"a": map[string]interface{}{
			"b": map[string]interface{}{
				"x": int64(1),
			},
		},
	}, n.root)
}

func TestGetOrCreateNest_ValueConflict(t *testing.T) {
	n := newNestedMap()
	n.root["a"] = int64(1)

	_, err := n.getOrCreateNest([]string{"a", "b"}, true)
	assert.ErrorIs(t, err, errNotNest)
}

func TestGetOrCreateNest_DescendsIntoLastListElement(t *testing.T) {
	n := newNestedMap()
	require.NoError(t, n.appendNestToList([]string{"a"}))
	require.NoError(t, n.appendNestToList([]string{"a"}))

	nest, err := n.getOrCreateNest([]string{"a"}, true)
	require.NoError(t, err)
	nest["x"] = int64(1)

	assert.Equal(t, map[string]interface{}{
		"a": []interface{}{
			map[string]interface{}{},
			map[string]interface{}{"x": int64(1)},
		},
	}, n.root)
}

func TestGetOrCreateNest_ListWithoutAccess(t *testing.T) {
	n := newNestedMap()
	require.NoError(t, n.appendNestToList([]string{"a"}))

	_, err := n.getOrCreateNest([]string{"a"}, false)
	assert.ErrorIs(t, err, errNotNest)
}

func TestAppendNestToList_ValueConflict(t *testing.T) {
	n := newNestedMap()
	n.root["a"] = int64(1)

	err := n.appendNestToList([]string{"a"})
	assert.ErrorIs(t, err, errNotList)
}
