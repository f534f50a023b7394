package parser_test

import (
	"testing"

	"github.com/aledsdavies/alchemy/diagnostics"
	"github.com/aledsdavies/alchemy/lexer"
	"github.com/aledsdavies/alchemy/parser"
	"github.com/aledsdavies/alchemy/syntax"
	"github.com/aledsdavies/alchemy/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) (*syntax.Node, *diagnostics.Sink) {
	t.Helper()
	sink := diagnostics.NewSink()
	toks, cold := lexer.Lex([]byte(src), sink)
	p := parser.New(toks, cold, sink)
	return p.ParseCompilationUnit(), sink
}

func firstMember(t *testing.T, root *syntax.Node) *syntax.Node {
	t.Helper()
	for _, c := range syntax.Children(root) {
		if c.ChildKind == syntax.ChildList && c.List != nil && len(c.List.Items) > 0 {
			return c.List.Items[0]
		}
	}
	t.Fatal("compilation unit has no members")
	return nil
}

func TestParseEmptySourceProducesCompilationUnitWithEOF(t *testing.T) {
	root, sink := parse(t, "")
	assert.Equal(t, syntax.KindCompilationUnit, syntax.Kind_(root))
	assert.Equal(t, 0, sink.Len())
	assert.False(t, root.IsMissing())
}

func TestParseEmptyClassDeclaration(t *testing.T) {
	root, sink := parse(t, "class Foo {}")
	require.Equal(t, 0, sink.Len())
	m := firstMember(t, root)
	assert.Equal(t, syntax.KindClassDeclaration, syntax.Kind_(m))
	assert.False(t, m.IsMissing())
}

func TestParseNamespaceWithUsingDirective(t *testing.T) {
	root, sink := parse(t, "using System; namespace App { class Foo {} }")
	require.Equal(t, 0, sink.Len())
	members := firstMemberList(t, root)
	require.Len(t, members, 2)
	assert.Equal(t, syntax.KindUsingDirective, syntax.Kind_(members[0]))
	assert.Equal(t, syntax.KindNamespaceDeclaration, syntax.Kind_(members[1]))
}

func firstMemberList(t *testing.T, root *syntax.Node) []*syntax.Node {
	t.Helper()
	for _, c := range syntax.Children(root) {
		if c.ChildKind == syntax.ChildList && c.List != nil {
			return c.List.Items
		}
	}
	t.Fatal("compilation unit has no member list")
	return nil
}

func TestParseMethodWithWhereConstraint(t *testing.T) {
	src := "class Foo { void Bar<T>() where T : unmanaged {} }"
	root, sink := parse(t, src)
	require.Equal(t, 0, sink.Len(), "a generic method with a where-constraint must parse clean")
	class := firstMember(t, root)
	require.Equal(t, syntax.KindClassDeclaration, syntax.Kind_(class))
}

func TestParseMissingSemicolonRecoversWithDiagnostic(t *testing.T) {
	root, sink := parse(t, "class Foo { void Bar() { return }\n}")
	require.Greater(t, sink.Len(), 0)
	assert.Equal(t, diagnostics.ErrSemicolonExpected, sink.Items()[0].Code)
	// parsing still produces a usable tree rather than aborting
	assert.Equal(t, syntax.KindCompilationUnit, syntax.Kind_(root))
}

func TestParseBadTokenRunIsSkippedAndReported(t *testing.T) {
	root, sink := parse(t, "class Foo { #### void Bar() {} }")
	require.Greater(t, sink.Len(), 0)
	class := firstMember(t, root)
	assert.Equal(t, syntax.KindClassDeclaration, syntax.Kind_(class))
	assert.True(t, class.ContainsDiagnostics())
}

func TestParseIfElseStatement(t *testing.T) {
	src := "class Foo { void Bar() { if (x) { y(); } else { z(); } } }"
	root, sink := parse(t, src)
	assert.Equal(t, 0, sink.Len())
	assert.Equal(t, syntax.KindClassDeclaration, syntax.Kind_(firstMember(t, root)))
}

// findNode does a preorder search for the first descendant (including root
// itself) of the given kind, walking node/list/separated-list children.
func findNode(root *syntax.Node, kind syntax.Kind) *syntax.Node {
	if root == nil {
		return nil
	}
	if syntax.Kind_(root) == kind {
		return root
	}
	for _, c := range syntax.Children(root) {
		switch c.ChildKind {
		case syntax.ChildNode:
			if found := findNode(c.Node, kind); found != nil {
				return found
			}
		case syntax.ChildList:
			if c.List == nil {
				continue
			}
			for _, it := range c.List.Items {
				if found := findNode(it, kind); found != nil {
					return found
				}
			}
		case syntax.ChildSeparatedList:
			if c.Sep == nil {
				continue
			}
			for _, it := range c.Sep.Items {
				if found := findNode(it, kind); found != nil {
					return found
				}
			}
		}
	}
	return nil
}

func TestParseBinaryExpressionPrecedence(t *testing.T) {
	src := "class Foo { void Bar() { x = 1 + 2 * 3; } }"
	root, sink := parse(t, src)
	require.Equal(t, 0, sink.Len())

	assign := findNode(root, syntax.KindAssignmentExpression)
	require.NotNil(t, assign, "expected an AssignmentExpression in the tree")
	require.Len(t, assign.Children, 3)

	add := assign.Children[2].Node
	require.NotNil(t, add)
	assert.Equal(t, syntax.KindBinaryExpression, syntax.Kind_(add))
	require.Len(t, add.Children, 3)
	assert.Equal(t, token.PlusToken, add.Children[1].Tok.Kind)
	assert.Equal(t, syntax.KindLiteralExpression, syntax.Kind_(add.Children[0].Node))

	mul := add.Children[2].Node
	require.NotNil(t, mul, "2 * 3 must nest as the right operand of +, not associate left with 1")
	assert.Equal(t, syntax.KindBinaryExpression, syntax.Kind_(mul))
	require.Len(t, mul.Children, 3)
	assert.Equal(t, token.AsteriskToken, mul.Children[1].Tok.Kind)
	assert.Equal(t, syntax.KindLiteralExpression, syntax.Kind_(mul.Children[0].Node))
	assert.Equal(t, syntax.KindLiteralExpression, syntax.Kind_(mul.Children[2].Node))
}

func TestParsePatternCombinators(t *testing.T) {
	src := "class Foo { void Bar() { if (x is 1 or 2 and not 3) {} } }"
	root, sink := parse(t, src)
	require.Equal(t, 0, sink.Len())

	isExpr := findNode(root, syntax.KindIsPatternExpression)
	require.NotNil(t, isExpr, "expected an IsPatternExpression in the tree")
	require.Len(t, isExpr.Children, 2)

	or := isExpr.Children[1].Node
	require.NotNil(t, or)
	assert.Equal(t, syntax.KindOrPattern, syntax.Kind_(or))
	require.Len(t, or.Children, 3)
	assert.Equal(t, syntax.KindConstantPattern, syntax.Kind_(or.Children[0].Node))

	and := or.Children[2].Node
	require.NotNil(t, and, "`and` must bind tighter than `or`, nesting as its right operand")
	assert.Equal(t, syntax.KindAndPattern, syntax.Kind_(and))
	require.Len(t, and.Children, 3)
	assert.Equal(t, syntax.KindConstantPattern, syntax.Kind_(and.Children[0].Node))

	not := and.Children[2].Node
	require.NotNil(t, not, "`not` must bind tighter than `and`, nesting as its right operand")
	assert.Equal(t, syntax.KindNotPattern, syntax.Kind_(not))
}

func TestParseSwitchExpression(t *testing.T) {
	src := `class Foo { void Bar() { var y = x switch { 1 => "a", _ => "b" }; } }`
	root, sink := parse(t, src)
	require.Equal(t, 0, sink.Len())

	sw := findNode(root, syntax.KindSwitchExpression)
	require.NotNil(t, sw, "expected a SwitchExpression in the tree")
	require.Len(t, sw.Children, 5)
	assert.Equal(t, syntax.KindIdentifierNameExpression, syntax.Kind_(sw.Children[0].Node))

	armsChild := sw.Children[3]
	require.Equal(t, syntax.ChildSeparatedList, armsChild.ChildKind)
	require.Len(t, armsChild.Sep.Items, 2)

	firstArm := armsChild.Sep.Items[0]
	assert.Equal(t, syntax.KindSwitchExpressionArm, syntax.Kind_(firstArm))
	require.Len(t, firstArm.Children, 3)
	assert.Equal(t, syntax.KindConstantPattern, syntax.Kind_(firstArm.Children[0].Node))

	secondArm := armsChild.Sep.Items[1]
	require.Len(t, secondArm.Children, 3)
	assert.Equal(t, syntax.KindDiscardPattern, syntax.Kind_(secondArm.Children[0].Node), "`_` must parse as a DiscardPattern arm")
}

func TestParseTupleVsParenthesizedExpression(t *testing.T) {
	tupleRoot, sink := parse(t, "class Foo { void Bar() { var t = (a, b); } }")
	require.Equal(t, 0, sink.Len())

	tup := findNode(tupleRoot, syntax.KindTupleExpression)
	require.NotNil(t, tup, "a parenthesized comma-separated list must parse as a TupleExpression")
	require.Equal(t, syntax.ChildSeparatedList, tup.Children[1].ChildKind)
	items := tup.Children[1].Sep.Items
	require.Len(t, items, 2)
	assert.Equal(t, syntax.KindIdentifierNameExpression, syntax.Kind_(items[0]))
	assert.Equal(t, syntax.KindIdentifierNameExpression, syntax.Kind_(items[1]))
	assert.Nil(t, findNode(tupleRoot, syntax.KindParenthesizedExpression), "a tuple must not also show up as a ParenthesizedExpression")

	parenRoot, sink2 := parse(t, "class Foo { void Bar() { var t = (a); } }")
	require.Equal(t, 0, sink2.Len())

	paren := findNode(parenRoot, syntax.KindParenthesizedExpression)
	require.NotNil(t, paren, "a single parenthesized expression without a comma must stay a ParenthesizedExpression, not a one-item tuple")
	require.Len(t, paren.Children, 3)
	assert.Equal(t, syntax.KindIdentifierNameExpression, syntax.Kind_(paren.Children[1].Node))
	assert.Nil(t, findNode(parenRoot, syntax.KindTupleExpression))
}

func TestParseInterfaceAndEnum(t *testing.T) {
	src := "interface IFoo {} enum Color { Red, Green, Blue }"
	root, sink := parse(t, src)
	require.Equal(t, 0, sink.Len())
	members := firstMemberList(t, root)
	require.Len(t, members, 2)
	assert.Equal(t, syntax.KindInterfaceDeclaration, syntax.Kind_(members[0]))
	assert.Equal(t, syntax.KindEnumDeclaration, syntax.Kind_(members[1]))
}

func TestParseUnterminatedClassReportsMissingCloseBrace(t *testing.T) {
	_, sink := parse(t, "class Foo {")
	require.Greater(t, sink.Len(), 0)
	found := false
	for _, d := range sink.Items() {
		if d.Code == diagnostics.ErrCloseBraceExpected {
			found = true
		}
	}
	assert.True(t, found)
}

func TestParseTopLevelStatementAfterNamespaceIsFlagged(t *testing.T) {
	_, sink := parse(t, "namespace App {}\nx();")
	require.Greater(t, sink.Len(), 0)
	found := false
	for _, d := range sink.Items() {
		if d.Code == diagnostics.ErrTopLevelStatementAfterNamespaceOrType {
			found = true
		}
	}
	assert.True(t, found)
}

func TestParseTreeWalkVisitsEveryTokenInSourceOrder(t *testing.T) {
	root, _ := parse(t, "class Foo { int x; }")
	var prev = -1
	count := 0
	syntax.Walk(root, func(id token.ID) bool {
		assert.Greater(t, int(id), prev, "Walk must visit tokens in strictly increasing source order")
		prev = int(id)
		count++
		return true
	})
	assert.Greater(t, count, 0)
}
