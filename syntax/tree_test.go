package syntax

import (
	"testing"

	"github.com/aledsdavies/alchemy/diagnostics"
	"github.com/aledsdavies/alchemy/token"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTree(src string) *Tree {
	toks := []token.Token{
		{ID: 0, Kind: token.IdentifierToken, Span: token.Span{Start: 0, End: 3}},
		{ID: 1, Kind: token.EndOfFileToken, Span: token.Span{Start: 3, End: 3}},
	}
	return &Tree{
		Source: []byte(src),
		Tokens: toks,
		Cold:   make([]token.Cold, len(toks)),
	}
}

func TestTreeTokenAndColdAccessors(t *testing.T) {
	tr := makeTree("foo")
	require.Equal(t, token.IdentifierToken, tr.TokenAt(0).Kind)
	assert.Equal(t, token.Cold{}, tr.ColdAt(0))
	assert.Equal(t, []byte("foo"), tr.TokenText(0))
}

func TestTreeSpanDerivedFromFirstAndLastToken(t *testing.T) {
	tr := makeTree("foo")
	n := New(KindIdentifierName, TokenChild(tr.Tokens[0]))
	start, end := tr.Span(n)
	assert.Equal(t, 0, start)
	assert.Equal(t, 3, end)
}

func TestKindChildrenFirstLastTokenAccessors(t *testing.T) {
	tk := token.Token{ID: 5, Kind: token.IdentifierToken}
	n := New(KindIdentifierName, TokenChild(tk))
	assert.Equal(t, KindIdentifierName, Kind_(n))
	require.Len(t, Children(n), 1)
	assert.Equal(t, token.ID(5), FirstToken(n))
	assert.Equal(t, token.ID(5), LastToken(n))
}

func TestWalkVisitsTokensInSourceOrderAcrossChildKinds(t *testing.T) {
	leaf := func(id token.ID) *Node { return New(KindIdentifierName, TokenChild(tok(id, 0))) }
	listNode := New(KindBlock, ListChild(&List{Items: []*Node{leaf(1), leaf(2)}}))
	sep := &SeparatedList{Items: []*Node{leaf(4), leaf(6)}, Separators: []token.Token{tok(5, 0)}}
	root := New(KindCompilationUnit,
		TokenChild(tok(0, 0)),
		NodeChild(listNode),
		SepListChild(sep),
	)

	var visited []token.ID
	Walk(root, func(id token.ID) bool {
		visited = append(visited, id)
		return true
	})

	want := []token.ID{0, 1, 2, 4, 5, 6}
	if diff := cmp.Diff(want, visited); diff != "" {
		t.Fatalf("Walk order mismatch (-want +got):\n%s", diff)
	}
}

func TestWalkStopsEarlyWhenVisitorReturnsFalse(t *testing.T) {
	leaf := func(id token.ID) *Node { return New(KindIdentifierName, TokenChild(tok(id, 0))) }
	root := New(KindBlock, TokenChild(tok(0, 0)), NodeChild(leaf(1)), TokenChild(tok(2, 0)))

	var visited []token.ID
	Walk(root, func(id token.ID) bool {
		visited = append(visited, id)
		return id != 1
	})
	assert.Equal(t, []token.ID{0, 1}, visited)
}

func TestKindVisitorDispatchesRegisteredHandlerElseDefault(t *testing.T) {
	var gotDefault, gotBlock bool
	v := &KindVisitor{
		Handlers: map[Kind]func(*Node){
			KindBlock: func(n *Node) { gotBlock = true },
		},
		Default: func(n *Node) { gotDefault = true },
	}

	v.Visit(New(KindBlock))
	assert.True(t, gotBlock)
	assert.False(t, gotDefault)

	v.Visit(New(KindIdentifierName))
	assert.True(t, gotDefault)
}

func TestKindVisitorVisitNilIsNoop(t *testing.T) {
	called := false
	v := &KindVisitor{Default: func(n *Node) { called = true }}
	v.Visit(nil)
	assert.False(t, called)
}

func TestKindVisitorVisitChildrenSkipsTokens(t *testing.T) {
	child := New(KindIdentifierName)
	listItem := New(KindIdentifierName)
	sepItem := New(KindIdentifierName)
	root := New(KindBlock,
		TokenChild(tok(0, 0)),
		NodeChild(child),
		ListChild(&List{Items: []*Node{listItem}}),
		SepListChild(&SeparatedList{Items: []*Node{sepItem}}),
	)

	var count int
	v := &KindVisitor{Default: func(n *Node) { count++ }}
	v.VisitChildren(root)
	assert.Equal(t, 3, count, "token children must not be dispatched to the visitor")
}

func TestTreeDiagnosticsFieldPreserved(t *testing.T) {
	tr := makeTree("x")
	tr.Diagnostics = []diagnostics.Diagnostic{{Code: diagnostics.ErrSyntaxError, Start: 0, End: 1}}
	require.Len(t, tr.Diagnostics, 1)
	assert.Equal(t, diagnostics.ErrSyntaxError, tr.Diagnostics[0].Code)
}
