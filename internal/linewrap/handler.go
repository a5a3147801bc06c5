package linewrap

import (
	"sort"

	"github.com/wraplint/wraplint/internal/diag"
	"github.com/wraplint/wraplint/internal/syntax"
)

// Options configures a Verifier.
type Options struct {
	// Width is the number of extra columns a continuation line must have
	// over the header's base column.
	Width int

	// Strict demands an exact column match. When false, deeper indentation
	// than required is tolerated.
	Strict bool
}

// Verifier checks line-wrap indentation of a single header span.
// Construct with New, run with CheckIndentation. A verifier holds no
// per-call state and may be reused, but each call gets its own line map,
// so concurrent calls on one instance are safe as long as the tree is
// not mutated.
type Verifier struct {
	tree  *syntax.Tree
	first syntax.NodeID
	last  syntax.NodeID

	width  int
	strict bool
}

// New binds a verifier to the header rooted at root. The span's last node
// is the node immediately preceding root's last child, i.e. the token right
// before the trailing body or terminator subtree.
func New(tree *syntax.Tree, root syntax.NodeID, opts Options) *Verifier {
	return &Verifier{
		tree:   tree,
		first:  root,
		last:   findLastNode(tree, root),
		width:  opts.Width,
		strict: opts.Strict,
	}
}

// findLastNode locates the end of the header span. A root with fewer than
// two children has no header beyond its own line; None degenerates the
// span to the root only.
func findLastNode(tree *syntax.Tree, root syntax.NodeID) syntax.NodeID {
	lc := tree.LastChild(root)
	if lc == syntax.None {
		return syntax.None
	}

	return tree.PrevSibling(lc)
}

// CheckIndentation walks the header span and reports every line whose
// leftmost token violates the wrap indentation convention.
func (v *Verifier) CheckIndentation(sink diag.Sink) {
	firstNodesOnLines := v.collectFirstNodes()

	lines := sortedLines(firstNodesOnLines)
	firstNode := firstNodesOnLines[lines[0]]
	if v.tree.Kind(firstNode) == syntax.KindAnnotationMarker {
		v.checkAnnotationIndentation(firstNode, firstNodesOnLines, sink)
	}

	// The first line anchors the computation and is never re-checked here.
	lines = sortedLines(firstNodesOnLines)
	delete(firstNodesOnLines, lines[0])
	lines = lines[1:]

	firstNodeIndent := v.firstNodeIndent(firstNode)
	currentIndent := firstNodeIndent + v.width

	for _, line := range lines {
		node := firstNodesOnLines[line]
		kind := v.tree.Kind(node)

		switch {
		case kind.IsCloser():
			v.checkColumn(node, firstNodeIndent, sink)
		case kind == syntax.KindIf:
			parent := v.tree.Parent(node)
			if parent != syntax.None && v.tree.Kind(parent) == syntax.KindElse {
				v.checkColumn(parent, currentIndent, sink)
			}
		default:
			v.checkColumn(node, currentIndent, sink)
		}
	}
}

// firstNodeIndent computes the header base column. The "} else if" idiom
// anchors at the closing brace of the preceding block when that brace sits
// on the construct's line; a cascaded if without such a brace (including
// the bodyless single-statement case) falls back to the else's own column.
func (v *Verifier) firstNodeIndent(node syntax.NodeID) int {
	parent := v.tree.Parent(node)
	if v.tree.Kind(node) != syntax.KindIf || parent == syntax.None || v.tree.Kind(parent) != syntax.KindElse {
		return v.tree.Column(node)
	}

	block := v.tree.PrevSibling(parent)
	if block != syntax.None && v.tree.Kind(block) == syntax.KindBlock {
		rcurly := v.tree.LastChild(block)
		if rcurly != syntax.None && v.tree.Line(rcurly) == v.tree.Line(node) {
			return v.tree.Column(rcurly)
		}
	}

	return v.tree.Column(parent)
}

// collectFirstNodes maps each source line of the span to its leftmost
// token. On a column tie the later-visited node wins: the existing
// representative is replaced whenever its column is >= the new node's.
// Type-body interiors are separate scopes and are skipped wholesale.
func (v *Verifier) collectFirstNodes() map[int]syntax.NodeID {
	result := map[int]syntax.NodeID{
		v.tree.Line(v.first): v.first,
	}

	if v.last == syntax.None {
		return result
	}

	cur := syntax.NewCursor(v.tree, v.first)
	node := cur.Next()
	for node != syntax.None && node != v.last {
		if v.tree.Kind(node) == syntax.KindTypeBody {
			node = v.tree.NextSibling(node)
			cur.Seek(node)
		}

		if node != syntax.None {
			line := v.tree.Line(node)
			rep, ok := result[line]
			if !ok || v.tree.Column(rep) >= v.tree.Column(node) {
				result[line] = node
			}

			node = cur.Next()
		}
	}

	return result
}

// checkAnnotationIndentation judges the lines belonging to the run of
// annotation clauses opening the header. A marker starting a new top-level
// clause (its grandparent is the modifier list) aligns with the first
// marker; everything else inside the run is a continuation. Judged entries
// are removed from the map; the final remaining entry is never consumed.
func (v *Verifier) checkAnnotationIndentation(atNode syntax.NodeID, firstNodesOnLines map[int]syntax.NodeID, sink diag.Sink) {
	firstNodeIndent := v.tree.Column(atNode)
	currentIndent := firstNodeIndent + v.width

	lastAnnotationNode := v.lastAnnotationNode(atNode)
	if lastAnnotationNode == syntax.None {
		return
	}

	lastAnnotationLine := v.tree.Line(lastAnnotationNode)
	lastAnnotationColumn := v.tree.Column(lastAnnotationNode)

	for _, line := range sortedLines(firstNodesOnLines) {
		if len(firstNodesOnLines) <= 1 {
			break
		}

		node := firstNodesOnLines[line]
		if v.tree.Line(node) > lastAnnotationLine ||
			v.tree.Line(node) == lastAnnotationLine && v.tree.Column(node) > lastAnnotationColumn {
			break
		}

		if v.tree.Kind(node) == syntax.KindAnnotationMarker && v.grandparentKind(node) == syntax.KindModifierList {
			v.checkColumn(node, firstNodeIndent, sink)
		} else {
			v.checkColumn(node, currentIndent, sink)
		}

		delete(firstNodesOnLines, line)
	}
}

// lastAnnotationNode returns the last child token of the last annotation
// clause in the contiguous run starting at atNode's clause.
func (v *Verifier) lastAnnotationNode(atNode syntax.NodeID) syntax.NodeID {
	clause := v.tree.Parent(atNode)
	if clause == syntax.None {
		return syntax.None
	}

	for {
		next := v.tree.NextSibling(clause)
		if next == syntax.None || v.tree.Kind(next) != syntax.KindAnnotationClause {
			break
		}

		clause = next
	}

	return v.tree.LastChild(clause)
}

func (v *Verifier) grandparentKind(node syntax.NodeID) syntax.Kind {
	parent := v.tree.Parent(node)
	if parent == syntax.None {
		return syntax.KindOther
	}

	grand := v.tree.Parent(parent)
	if grand == syntax.None {
		return syntax.KindOther
	}

	return v.tree.Kind(grand)
}

// checkColumn applies the enforcement mode and reports a diagnostic when
// the node's column violates the required one.
func (v *Verifier) checkColumn(node syntax.NodeID, required int, sink diag.Sink) {
	actual := v.tree.Column(node)
	if v.strict {
		if actual == required {
			return
		}
	} else if actual >= required {
		return
	}

	sink.Report(diag.Diagnostic{
		Line:           v.tree.Line(node),
		Token:          v.tree.Text(node),
		ActualColumn:   actual,
		RequiredColumn: required,
		Key:            diag.KeyIndentationError,
	})
}

func sortedLines(m map[int]syntax.NodeID) []int {
	lines := make([]int, 0, len(m))
	for line := range m {
		lines = append(lines, line)
	}
	sort.Ints(lines)

	return lines
}
