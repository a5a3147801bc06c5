// Package javatree parses Java sources with tree-sitter and lowers the
// concrete syntax tree into the compact token tree the verifier expects.
//
// Lowering is mostly one-to-one, with three shape normalizations:
//
//   - wrapper nodes that only group a parenthesized token run
//     (formal parameter lists, annotation argument lists, parenthesized
//     conditions) are spliced, hoisting their children, so a header span
//     ends right before the trailing body rather than before the whole
//     parameter subtree;
//   - the "else" keyword becomes a real node owning the alternative branch,
//     giving cascaded "else if" chains the parent/child shape the
//     structural exceptions of the check rely on;
//   - grammar node types collapse into the syntax.Kind vocabulary.
package javatree

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"

	"github.com/wraplint/wraplint/internal/syntax"
	"github.com/wraplint/wraplint/internal/wrapcfg"
)

// MaxFileSize is the largest source the parser accepts (10MB).
const MaxFileSize = 10 * 1024 * 1024

// ErrFileTooLarge is returned when input exceeds MaxFileSize.
var ErrFileTooLarge = errors.New("file exceeds maximum size limit")

// ErrInvalidContent is returned when input is not valid UTF-8.
var ErrInvalidContent = errors.New("invalid content")

// Decl is a declaration header found during lowering, a candidate for
// line-wrap checking.
type Decl struct {
	ID    syntax.NodeID
	Token wrapcfg.Token
}

// Result is a lowered source file.
type Result struct {
	Tree  *syntax.Tree
	Root  syntax.NodeID
	Decls []Decl
}

// Headers returns the declaration roots selected by the allow-list, in
// document order.
func (r *Result) Headers(allow wrapcfg.TokenSet) []syntax.NodeID {
	var out []syntax.NodeID
	for _, d := range r.Decls {
		if allow.Has(d.Token) {
			out = append(out, d.ID)
		}
	}

	return out
}

// Parse parses Java source into a lowered token tree. Parsing is
// error-tolerant: sources with syntax errors still produce a tree, with
// a warning logged.
func Parse(ctx context.Context, src []byte, path string) (*Result, error) {
	if len(src) > MaxFileSize {
		return nil, fmt.Errorf("%w: size %d exceeds limit %d", ErrFileTooLarge, len(src), MaxFileSize)
	}
	if !utf8.Valid(src) {
		return nil, fmt.Errorf("%w: content is not valid UTF-8", ErrInvalidContent)
	}

	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("parse %s: no syntax tree produced", path)
	}
	if root.HasError() {
		slog.Warn("source contains syntax errors", slog.String("file", path))
	}

	l := lowerer{src: src, dst: syntax.NewTree()}
	rootID := l.lower(root, syntax.None)

	return &Result{Tree: l.dst, Root: rootID, Decls: l.decls}, nil
}

// declTokens maps grammar declaration types to the allow-list vocabulary.
var declTokens = map[string]wrapcfg.Token{
	"class_declaration":           wrapcfg.TokenClassDef,
	"interface_declaration":       wrapcfg.TokenInterfaceDef,
	"enum_declaration":            wrapcfg.TokenEnumDef,
	"annotation_type_declaration": wrapcfg.TokenAnnotationDef,
	"method_declaration":          wrapcfg.TokenMethodDef,
	"constructor_declaration":     wrapcfg.TokenCtorDef,
}

// splicedTypes are wrapper nodes whose children are hoisted into the
// parent, so the tokens before a trailing body are direct children of the
// declaration the way the span computation expects.
var splicedTypes = map[string]struct{}{
	"formal_parameters":        {},
	"annotation_argument_list": {},
	"parenthesized_expression": {},
}

type lowerer struct {
	src   []byte
	dst   *syntax.Tree
	decls []Decl
}

func (l *lowerer) lower(n *sitter.Node, parent syntax.NodeID) syntax.NodeID {
	pt := n.StartPoint()
	id := l.dst.AddNode(parent, mapKind(n.Type()), int(pt.Row), int(pt.Column), tokenText(n, l.src))

	if tok, ok := declTokens[n.Type()]; ok {
		l.decls = append(l.decls, Decl{ID: id, Token: tok})
	}

	if n.Type() == "if_statement" {
		l.lowerIfChildren(n, id)
		return id
	}

	l.lowerChildren(n, id)
	return id
}

func (l *lowerer) lowerChildren(n *sitter.Node, parent syntax.NodeID) {
	for i := 0; i < int(n.ChildCount()); i++ {
		l.lowerChild(n.Child(i), parent)
	}
}

func (l *lowerer) lowerChild(c *sitter.Node, parent syntax.NodeID) {
	if _, ok := splicedTypes[c.Type()]; ok {
		l.lowerChildren(c, parent)
		return
	}

	l.lower(c, parent)
}

// lowerIfChildren reshapes the flat if/else child list: the alternative
// branch moves under a synthesized else node taking the keyword's position.
func (l *lowerer) lowerIfChildren(n *sitter.Node, id syntax.NodeID) {
	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		c := n.Child(i)
		if c.Type() == "else" {
			pt := c.StartPoint()
			elseID := l.dst.AddNode(id, syntax.KindElse, int(pt.Row), int(pt.Column), "else")
			for j := i + 1; j < count; j++ {
				l.lowerChild(n.Child(j), elseID)
			}
			return
		}

		l.lowerChild(c, id)
	}
}

func mapKind(typ string) syntax.Kind {
	switch typ {
	case "@":
		return syntax.KindAnnotationMarker
	case "marker_annotation", "annotation":
		return syntax.KindAnnotationClause
	case "modifiers":
		return syntax.KindModifierList
	case "if_statement":
		return syntax.KindIf
	case "block", "constructor_body":
		return syntax.KindBlock
	case "class_body", "interface_body", "enum_body", "annotation_type_body":
		return syntax.KindTypeBody
	case "}":
		return syntax.KindCloseBrace
	case ")":
		return syntax.KindCloseParen
	case "array_initializer":
		return syntax.KindArrayInit
	default:
		return syntax.KindOther
	}
}

// tokenText yields the text carried into diagnostics: the literal token
// for leaves, the grammar type for interior nodes.
func tokenText(n *sitter.Node, src []byte) string {
	if n.ChildCount() == 0 {
		return n.Content(src)
	}

	return n.Type()
}
