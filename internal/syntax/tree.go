package syntax

// NodeID addresses a node inside a Tree arena.
type NodeID int32

// None is the absent-node value, used where a structural relative
// (parent, sibling, child) does not exist.
const None NodeID = -1

type node struct {
	kind Kind
	line int
	col  int
	text string

	parent     NodeID
	firstChild NodeID
	lastChild  NodeID
	prev       NodeID
	next       NodeID
}

// Tree is an arena-backed token tree. The zero value is not usable,
// construct with NewTree.
type Tree struct {
	nodes []node
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{}
}

// AddNode appends a node to the arena and links it as the last child of
// parent. Pass None as parent for a root node. Children must be added in
// document order: the builder relies on append order for sibling links.
func (t *Tree) AddNode(parent NodeID, kind Kind, line, col int, text string) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{
		kind:       kind,
		line:       line,
		col:        col,
		text:       text,
		parent:     parent,
		firstChild: None,
		lastChild:  None,
		prev:       None,
		next:       None,
	})

	if parent == None {
		return id
	}

	p := &t.nodes[parent]
	if p.firstChild == None {
		p.firstChild = id
		p.lastChild = id
		return id
	}

	last := p.lastChild
	t.nodes[last].next = id
	t.nodes[id].prev = last
	p.lastChild = id

	return id
}

// Len returns the number of nodes in the arena.
func (t *Tree) Len() int { return len(t.nodes) }

// Kind returns the kind tag of the node.
func (t *Tree) Kind(id NodeID) Kind { return t.nodes[id].kind }

// Line returns the 0-based source line of the node's token.
func (t *Tree) Line(id NodeID) int { return t.nodes[id].line }

// Column returns the 0-based source column of the node's token.
func (t *Tree) Column(id NodeID) int { return t.nodes[id].col }

// Text returns the literal token text, used in diagnostics only.
func (t *Tree) Text(id NodeID) string { return t.nodes[id].text }

// Parent returns the parent node or None for a root.
func (t *Tree) Parent(id NodeID) NodeID { return t.nodes[id].parent }

// FirstChild returns the first child or None.
func (t *Tree) FirstChild(id NodeID) NodeID { return t.nodes[id].firstChild }

// LastChild returns the last child or None.
func (t *Tree) LastChild(id NodeID) NodeID { return t.nodes[id].lastChild }

// NextSibling returns the following sibling or None.
func (t *Tree) NextSibling(id NodeID) NodeID { return t.nodes[id].next }

// PrevSibling returns the preceding sibling or None.
func (t *Tree) PrevSibling(id NodeID) NodeID { return t.nodes[id].prev }
