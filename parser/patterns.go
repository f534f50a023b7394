package parser

import (
	"github.com/aledsdavies/alchemy/syntax"
	"github.com/aledsdavies/alchemy/syntaxfacts"
	"github.com/aledsdavies/alchemy/token"
)

// parsePattern parses a full pattern expression, including the `and`/`or`
// combinators (spec.md §4.7's pattern list), at `not` binding tighter than
// `and` binding tighter than `or` — the same shape C#'s pattern grammar
// uses. original_source/Src/Parsing2/SyntaxKind.h names the OrPattern/
// AndPattern/NotPattern node kinds this builds, but Parser.cpp never got as
// far as a pattern-parsing function body (only the ScanType DefinitePattern
// mode and the switch-arm terminator flags exist there); the precedence
// climb itself is this implementation's own, grounded on the node shapes
// the original's SyntaxKind enumeration already committed to.
func (p *Parser) parsePattern() *syntax.Node {
	return p.parseOrPattern()
}

func (p *Parser) parseOrPattern() *syntax.Node {
	left := p.parseAndPattern()
	for p.atContextual(token.OrKeyword) {
		p.checkProgress("parseOrPattern")
		kw := p.eatAs(token.OrKeyword)
		right := p.parseAndPattern()
		left = p.newNode(syntax.KindOrPattern, syntax.NodeChild(left), syntax.TokenChild(kw), syntax.NodeChild(right))
	}
	return left
}

func (p *Parser) parseAndPattern() *syntax.Node {
	left := p.parseNegatedPattern()
	for p.atContextual(token.AndKeyword) {
		p.checkProgress("parseAndPattern")
		kw := p.eatAs(token.AndKeyword)
		right := p.parseNegatedPattern()
		left = p.newNode(syntax.KindAndPattern, syntax.NodeChild(left), syntax.TokenChild(kw), syntax.NodeChild(right))
	}
	return left
}

func (p *Parser) parseNegatedPattern() *syntax.Node {
	if p.atContextual(token.NotKeyword) {
		kw := p.eatAs(token.NotKeyword)
		inner := p.parseNegatedPattern()
		return p.newNode(syntax.KindNotPattern, syntax.TokenChild(kw), syntax.NodeChild(inner))
	}
	return p.parsePrimaryPattern()
}

// parsePrimaryPattern dispatches on the current token to one primitive
// pattern shape (spec.md §4.7): discard, var, relational, parenthesized/
// positional-only, list, or a type-led pattern (bare type, declaration with
// a binding identifier, or recursive with a positional and/or property
// clause), falling back to a constant pattern for anything else.
func (p *Parser) parsePrimaryPattern() *syntax.Node {
	switch {
	case isRelationalPatternOperator(p.currentFused().Kind):
		return p.parseRelationalPattern()
	case p.at(token.OpenParenToken):
		return p.parseParenthesizedOrPositionalPattern()
	case p.at(token.OpenBracketToken):
		return p.parseListPattern()
	case p.atContextual(token.VarKeyword):
		return p.parseVarPattern()
	case p.at(token.IdentifierToken) && p.isDiscardIdentifier(p.current()) && !p.startsRecursivePatternClause(1):
		discard := p.advance()
		return p.newNode(syntax.KindDiscardPattern, syntax.TokenChild(discard))
	case p.canStartPatternType():
		return p.parseTypeLedPattern()
	}
	return p.parseConstantPattern()
}

func isRelationalPatternOperator(k token.Kind) bool {
	switch k {
	case token.LessThanToken, token.LessThanEqualsToken, token.GreaterThanToken, token.GreaterThanEqualsToken,
		token.EqualsEqualsToken, token.ExclamationEqualsToken:
		return true
	}
	return false
}

func (p *Parser) parseRelationalPattern() *syntax.Node {
	op := p.advanceFused(p.currentFused().Kind)
	expr := p.parseUnaryExpression()
	return p.newNode(syntax.KindRelationalPattern, syntax.TokenChild(op), syntax.NodeChild(expr))
}

// canStartPatternType reports whether the cursor can open a type-led
// pattern (predefined type, or an identifier that isn't itself `var`/`_`
// and isn't immediately a bare constant like a literal).
func (p *Parser) canStartPatternType() bool {
	if syntaxfacts.IsPredefinedType(p.current().Kind) {
		return true
	}
	return p.at(token.IdentifierToken) && p.current().ContextualKind == token.None
}

// startsRecursivePatternClause looks ahead k tokens for '(' or '{', which
// would mean the identifier at the cursor is actually a type name leading a
// recursive pattern rather than a lone discard.
func (p *Parser) startsRecursivePatternClause(k int) bool {
	nk := p.peek(k).Kind
	return nk == token.OpenParenToken || nk == token.OpenBraceToken
}

func (p *Parser) parseVarPattern() *syntax.Node {
	kw := p.eatAs(token.VarKeyword)
	designation := p.parseDesignation()
	return p.newNode(syntax.KindVarPattern, syntax.TokenChild(kw), syntax.NodeChild(designation))
}

// parseDesignation parses a single-variable binding target: an identifier,
// or a discard "_". Tuple/positional designations are represented via the
// surrounding positional pattern clause instead of nesting here.
func (p *Parser) parseDesignation() *syntax.Node {
	name := p.eat(token.IdentifierToken)
	if p.isDiscardIdentifier(name) {
		return p.newNode(syntax.KindDiscardPattern, syntax.TokenChild(name))
	}
	return p.newNode(syntax.KindIdentifierName, syntax.TokenChild(name))
}

func (p *Parser) parseTypeLedPattern() *syntax.Node {
	typ := p.parseType()

	var positional *syntax.Node
	if p.at(token.OpenParenToken) {
		positional = p.parsePositionalPatternClause()
	}
	var property *syntax.Node
	if p.at(token.OpenBraceToken) {
		property = p.parsePropertyPatternClause()
	}
	var designation *syntax.Node
	if p.at(token.IdentifierToken) && p.current().ContextualKind == token.None {
		designation = p.parseDesignation()
	}

	if positional == nil && property == nil {
		if designation != nil {
			return p.newNode(syntax.KindDeclarationPattern, syntax.NodeChild(typ), syntax.NodeChild(designation))
		}
		return p.newNode(syntax.KindTypePattern, syntax.NodeChild(typ))
	}

	children := []syntax.Child{syntax.NodeChild(typ)}
	if positional != nil {
		children = append(children, syntax.NodeChild(positional))
	}
	if property != nil {
		children = append(children, syntax.NodeChild(property))
	}
	if designation != nil {
		children = append(children, syntax.NodeChild(designation))
	}
	return p.newNode(syntax.KindRecursivePattern, children...)
}

func (p *Parser) parsePositionalPatternClause() *syntax.Node {
	open := p.advance()
	var items []*syntax.Node
	var seps []token.Token
	for !p.at(token.CloseParenToken) && !p.at(token.EndOfFileToken) {
		p.checkProgress("parsePositionalPatternClause")
		items = append(items, p.parseSubpattern())
		if p.at(token.CommaToken) {
			seps = append(seps, p.advance())
			continue
		}
		break
	}
	close := p.eat(token.CloseParenToken)
	return p.newNode(syntax.KindPositionalPatternClause, syntax.TokenChild(open),
		syntax.SepListChild(&syntax.SeparatedList{Items: items, Separators: seps}), syntax.TokenChild(close))
}

func (p *Parser) parsePropertyPatternClause() *syntax.Node {
	open := p.advance()
	var items []*syntax.Node
	var seps []token.Token
	for !p.at(token.CloseBraceToken) && !p.at(token.EndOfFileToken) {
		p.checkProgress("parsePropertyPatternClause")
		items = append(items, p.parseSubpattern())
		if p.at(token.CommaToken) {
			seps = append(seps, p.advance())
			continue
		}
		break
	}
	close := p.eat(token.CloseBraceToken)
	return p.newNode(syntax.KindPropertyPatternClause, syntax.TokenChild(open),
		syntax.SepListChild(&syntax.SeparatedList{Items: items, Separators: seps}), syntax.TokenChild(close))
}

// parseSubpattern parses one element of a positional or property pattern
// clause: an optional `Name:` designator followed by a nested pattern.
func (p *Parser) parseSubpattern() *syntax.Node {
	if p.at(token.IdentifierToken) && p.peek(1).Kind == token.ColonToken {
		name := p.advance()
		colon := p.advance()
		pat := p.parsePattern()
		return p.newNode(syntax.KindSubpattern, syntax.TokenChild(name), syntax.TokenChild(colon), syntax.NodeChild(pat))
	}
	return p.newNode(syntax.KindSubpattern, syntax.NodeChild(p.parsePattern()))
}

// parseParenthesizedOrPositionalPattern disambiguates `(pattern)` from a
// type-less positional/tuple deconstruction pattern `(pattern, pattern)` by
// checking for a comma before the closing paren.
func (p *Parser) parseParenthesizedOrPositionalPattern() *syntax.Node {
	open := p.advance()
	if p.at(token.CloseParenToken) {
		close := p.advance()
		return p.newNode(syntax.KindPositionalPatternClause, syntax.TokenChild(open), syntax.TokenChild(close))
	}
	first := p.parseSubpattern()
	if !p.at(token.CommaToken) {
		close := p.eat(token.CloseParenToken)
		if first.Kind == syntax.KindSubpattern && len(first.Children) == 1 {
			inner := first.Children[0].Node
			return p.newNode(syntax.KindParenthesizedPattern, syntax.TokenChild(open), syntax.NodeChild(inner), syntax.TokenChild(close))
		}
		return p.newNode(syntax.KindPositionalPatternClause, syntax.TokenChild(open), syntax.NodeChild(first), syntax.TokenChild(close))
	}
	items := []*syntax.Node{first}
	var seps []token.Token
	for p.at(token.CommaToken) {
		seps = append(seps, p.advance())
		items = append(items, p.parseSubpattern())
	}
	close := p.eat(token.CloseParenToken)
	return p.newNode(syntax.KindPositionalPatternClause, syntax.TokenChild(open),
		syntax.SepListChild(&syntax.SeparatedList{Items: items, Separators: seps}), syntax.TokenChild(close))
}

func (p *Parser) parseListPattern() *syntax.Node {
	open := p.advance()
	var items []*syntax.Node
	var seps []token.Token
	for !p.at(token.CloseBracketToken) && !p.at(token.EndOfFileToken) {
		p.checkProgress("parseListPattern")
		if p.at(token.DotDotToken) {
			dotdot := p.advance()
			items = append(items, p.newNode(syntax.KindSlicePattern, syntax.TokenChild(dotdot)))
		} else {
			items = append(items, p.parsePattern())
		}
		if p.at(token.CommaToken) {
			seps = append(seps, p.advance())
			continue
		}
		break
	}
	close := p.eat(token.CloseBracketToken)
	return p.newNode(syntax.KindListPattern, syntax.TokenChild(open),
		syntax.SepListChild(&syntax.SeparatedList{Items: items, Separators: seps}), syntax.TokenChild(close))
}

// parseConstantPattern parses a constant-expression pattern: a literal,
// possibly negated numeric literal, or a (qualified) name referring to a
// constant such as an enum member. Built on parseUnaryExpression rather
// than the full expression grammar so that a following `when`/`:`/`,`/`)`
// in a case label is never mistaken for a continuing expression.
func (p *Parser) parseConstantPattern() *syntax.Node {
	expr := p.parseUnaryExpression()
	return p.newNode(syntax.KindConstantPattern, syntax.NodeChild(expr))
}
