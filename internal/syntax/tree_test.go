package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeLinks(t *testing.T) {
	tree := NewTree()

	root := tree.AddNode(None, KindOther, 0, 0, "root")
	a := tree.AddNode(root, KindOther, 0, 2, "a")
	b := tree.AddNode(root, KindOther, 1, 4, "b")
	c := tree.AddNode(root, KindCloseBrace, 2, 0, "}")

	require.Equal(t, 4, tree.Len())

	assert.Equal(t, None, tree.Parent(root))
	assert.Equal(t, a, tree.FirstChild(root))
	assert.Equal(t, c, tree.LastChild(root))

	assert.Equal(t, root, tree.Parent(b))
	assert.Equal(t, a, tree.PrevSibling(b))
	assert.Equal(t, c, tree.NextSibling(b))
	assert.Equal(t, None, tree.PrevSibling(a))
	assert.Equal(t, None, tree.NextSibling(c))

	assert.Equal(t, None, tree.FirstChild(a))
	assert.Equal(t, None, tree.LastChild(a))

	assert.Equal(t, KindCloseBrace, tree.Kind(c))
	assert.Equal(t, 1, tree.Line(b))
	assert.Equal(t, 4, tree.Column(b))
	assert.Equal(t, "}", tree.Text(c))
}

func TestKindText(t *testing.T) {
	tests := []struct {
		kind Kind
		text string
	}{
		{KindOther, "other"},
		{KindAnnotationMarker, "annotation-marker"},
		{KindAnnotationClause, "annotation-clause"},
		{KindModifierList, "modifier-list"},
		{KindIf, "if"},
		{KindElse, "else"},
		{KindBlock, "block"},
		{KindTypeBody, "type-body"},
		{KindCloseBrace, "close-brace"},
		{KindCloseParen, "close-paren"},
		{KindArrayInit, "array-init"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.text, tt.kind.String())

			raw, err := tt.kind.MarshalText()
			require.NoError(t, err)
			assert.Equal(t, tt.text, string(raw))

			var back Kind
			require.NoError(t, back.UnmarshalText([]byte(tt.text)))
			assert.Equal(t, tt.kind, back)
		})
	}

	var k Kind
	assert.Error(t, k.UnmarshalText([]byte("no-such-kind")))
}

func TestKindIsCloser(t *testing.T) {
	assert.True(t, KindCloseBrace.IsCloser())
	assert.True(t, KindCloseParen.IsCloser())
	assert.True(t, KindArrayInit.IsCloser())

	assert.False(t, KindOther.IsCloser())
	assert.False(t, KindBlock.IsCloser())
	assert.False(t, KindTypeBody.IsCloser())
}
