package syntax

// Cursor walks the subtree rooted at a given node in document order:
// first child, then next sibling, then the nearest ancestor's next sibling.
// The walk never ascends past the subtree root, so the cursor produces a
// finite sequence even when the root sits in the middle of a larger tree.
//
// A fresh cursor is positioned at the root; the root itself is not produced
// by Next.
type Cursor struct {
	tree *Tree
	root NodeID
	cur  NodeID
}

// NewCursor returns a cursor over the subtree rooted at root.
func NewCursor(t *Tree, root NodeID) *Cursor {
	return &Cursor{tree: t, root: root, cur: root}
}

// Pos returns the cursor's current node, None when exhausted.
func (c *Cursor) Pos() NodeID { return c.cur }

// Seek repositions the cursor at id. Seeking to None exhausts the cursor.
// The caller is responsible for seeking only within the cursor's subtree.
func (c *Cursor) Seek(id NodeID) { c.cur = id }

// Next advances to the following node in document order and returns it,
// or None once the subtree is exhausted.
func (c *Cursor) Next() NodeID {
	if c.cur == None {
		return None
	}

	next := c.tree.FirstChild(c.cur)
	n := c.cur
	for n != None && next == None {
		if n == c.root {
			break
		}

		next = c.tree.NextSibling(n)
		if next == None {
			n = c.tree.Parent(n)
		}
	}

	c.cur = next
	return next
}
