package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildCursorTree builds
//
//	root
//	├── a
//	│   ├── a1
//	│   └── a2
//	├── b
//	└── c
func buildCursorTree(t *testing.T) (*Tree, map[string]NodeID) {
	t.Helper()

	tree := NewTree()
	ids := map[string]NodeID{}

	ids["root"] = tree.AddNode(None, KindOther, 0, 0, "root")
	ids["a"] = tree.AddNode(ids["root"], KindOther, 0, 2, "a")
	ids["a1"] = tree.AddNode(ids["a"], KindOther, 1, 4, "a1")
	ids["a2"] = tree.AddNode(ids["a"], KindOther, 1, 6, "a2")
	ids["b"] = tree.AddNode(ids["root"], KindOther, 2, 2, "b")
	ids["c"] = tree.AddNode(ids["root"], KindOther, 3, 0, "c")

	return tree, ids
}

func TestCursorDocumentOrder(t *testing.T) {
	tree, ids := buildCursorTree(t)

	cur := NewCursor(tree, ids["root"])

	var got []NodeID
	for id := cur.Next(); id != None; id = cur.Next() {
		got = append(got, id)
	}

	want := []NodeID{ids["a"], ids["a1"], ids["a2"], ids["b"], ids["c"]}
	assert.Equal(t, want, got)

	// Exhausted cursor stays exhausted.
	assert.Equal(t, None, cur.Next())
	assert.Equal(t, None, cur.Pos())
}

func TestCursorBoundedBySubtreeRoot(t *testing.T) {
	tree, ids := buildCursorTree(t)

	// A cursor over "a" must not escape into b or c.
	cur := NewCursor(tree, ids["a"])

	require.Equal(t, ids["a1"], cur.Next())
	require.Equal(t, ids["a2"], cur.Next())
	assert.Equal(t, None, cur.Next())
}

func TestCursorSeek(t *testing.T) {
	tree, ids := buildCursorTree(t)

	cur := NewCursor(tree, ids["root"])
	cur.Seek(ids["b"])

	assert.Equal(t, ids["b"], cur.Pos())
	assert.Equal(t, ids["c"], cur.Next())

	cur.Seek(None)
	assert.Equal(t, None, cur.Next())
}

func TestCursorLeafRoot(t *testing.T) {
	tree, ids := buildCursorTree(t)

	cur := NewCursor(tree, ids["c"])
	assert.Equal(t, None, cur.Next())
}
