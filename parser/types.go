package parser

import (
	"github.com/aledsdavies/alchemy/diagnostics"
	"github.com/aledsdavies/alchemy/syntax"
	"github.com/aledsdavies/alchemy/syntaxfacts"
	"github.com/aledsdavies/alchemy/token"
)

func (p *Parser) enterTypeArgumentContext() func() {
	p.typeArgDepth++
	return func() { p.typeArgDepth-- }
}

// parseType parses a type reference: a predefined type, a possibly-generic
// possibly-qualified name, an array rank suffix, a nullable '?' suffix, or a
// tuple type. Grounded on spec.md §4.6's type grammar and the disambiguation
// rule in §4.8.
func (p *Parser) parseType() *syntax.Node {
	var base *syntax.Node
	switch {
	case p.at(token.OpenParenToken):
		base = p.parseTupleType()
	case syntaxfacts.IsPredefinedType(p.current().Kind):
		base = p.newNode(syntax.KindPredefinedType, syntax.TokenChild(p.advance()))
	case p.at(token.IdentifierToken):
		base = p.parseNameType()
	default:
		pos := int(p.current().Span.Start)
		p.sink.Report(diagnostics.ErrTypeExpected, pos, pos, "")
		missing := token.Token{Kind: token.IdentifierToken, Flags: token.FlagMissing, Span: token.Span{Start: token.Position(pos), End: token.Position(pos)}}
		base = p.newNode(syntax.KindIdentifierName, syntax.TokenChild(missing))
	}

	for p.at(token.OpenBracketToken) {
		open := p.advance()
		close := p.eat(token.CloseBracketToken)
		base = p.newNode(syntax.KindArrayType, syntax.NodeChild(base),
			syntax.NodeChild(p.newNode(syntax.KindArrayRankSpecifier, syntax.TokenChild(open), syntax.TokenChild(close))))
	}
	if p.at(token.QuestionToken) {
		q := p.advance()
		base = p.newNode(syntax.KindNullableType, syntax.NodeChild(base), syntax.TokenChild(q))
	}
	return base
}

// parseNameType parses a (possibly qualified, possibly generic) type name:
// Identifier ('<' TypeArgumentList '>')? ('.' Identifier ...)*.
func (p *Parser) parseNameType() *syntax.Node {
	name := p.newNode(syntax.KindIdentifierName, syntax.TokenChild(p.advance()))
	for {
		if p.at(token.LessThanToken) {
			// In a type, '<' after a name can only open a type-argument
			// list, so only the '<' ... '>' shape is checked here, not the
			// token that follows it.
			m := p.mark()
			p.typeArgDepth++
			ok := p.scanTypeArgumentListBody()
			p.typeArgDepth--
			p.reset(m)
			if ok {
				args := p.parseTypeArgumentList()
				name = p.newNode(syntax.KindGenericName, syntax.NodeChild(name), syntax.NodeChild(args))
			}
		}
		if p.at(token.DotToken) {
			dot := p.advance()
			ident := p.eat(token.IdentifierToken)
			right := p.newNode(syntax.KindIdentifierName, syntax.TokenChild(ident))
			name = p.newNode(syntax.KindQualifiedName, syntax.NodeChild(name), syntax.TokenChild(dot), syntax.NodeChild(right))
			continue
		}
		break
	}
	return name
}

func (p *Parser) parseTypeArgumentList() *syntax.Node {
	leave := p.enterTypeArgumentContext()
	defer leave()
	open := p.advance() // '<'
	var items []*syntax.Node
	var seps []token.Token
	if !p.atFusable(token.GreaterThanToken) {
		for {
			items = append(items, p.parseType())
			if p.at(token.CommaToken) {
				seps = append(seps, p.advance())
				continue
			}
			break
		}
	}
	close := p.eat(token.GreaterThanToken)
	return p.newNode(syntax.KindTypeArgumentList, syntax.TokenChild(open),
		syntax.SepListChild(&syntax.SeparatedList{Items: items, Separators: seps}), syntax.TokenChild(close))
}

// scanPossibleTypeArgumentList speculatively scans forward from a '<' to
// decide whether it opens a type-argument list rather than being a
// less-than comparison, per spec.md §4.8: it must be followed by a
// comma-separated run of types, a matching (possibly fused) '>', and then a
// token from the "confirms a type-argument list" follow set. The scan is
// fully speculative: every token consumed here is rolled back regardless of
// the answer, via a reset point.
func (p *Parser) scanPossibleTypeArgumentList() bool {
	m := p.mark()
	defer p.reset(m)

	p.typeArgDepth++
	ok := p.scanTypeArgumentListBody()
	p.typeArgDepth--
	if !ok {
		return false
	}
	follow := p.currentFused().Kind
	return syntaxfacts.PostGenericCloseFollowSet(follow)
}

// scanTypeArgumentListBody scans '<' type (',' type)* '>' with fusion
// suppressed (the caller has already entered the type-argument context),
// returning whether the shape matched.
func (p *Parser) scanTypeArgumentListBody() bool {
	p.advance() // '<'
	for {
		if !p.scanType() {
			return false
		}
		if p.at(token.CommaToken) {
			p.advance()
			continue
		}
		break
	}
	if !p.atFusable(token.GreaterThanToken) {
		return false
	}
	p.advance()
	return true
}

// scanType speculatively consumes one type reference without building a
// tree, returning whether the tokens starting at the cursor could form one.
// Used only inside scanPossibleTypeArgumentList, where building real nodes
// would be wasted work on the (common) failure path.
func (p *Parser) scanType() bool {
	switch {
	case syntaxfacts.IsPredefinedType(p.current().Kind):
		p.advance()
	case p.at(token.IdentifierToken):
		p.advance()
		if p.at(token.LessThanToken) {
			if !p.scanPossibleTypeArgumentListNested() {
				return false
			}
		}
		for p.at(token.DotToken) {
			p.advance()
			if !p.at(token.IdentifierToken) {
				return false
			}
			p.advance()
			if p.at(token.LessThanToken) {
				if !p.scanPossibleTypeArgumentListNested() {
					return false
				}
			}
		}
	default:
		return false
	}
	for p.at(token.OpenBracketToken) && p.peek(1).Kind == token.CloseBracketToken {
		p.advance()
		p.advance()
	}
	if p.at(token.QuestionToken) {
		p.advance()
	}
	return true
}

// scanPossibleTypeArgumentListNested is scanType's own use of the same
// '<' ... '>' shape; it runs inside scanPossibleTypeArgumentList, which has
// already suppressed fusion for the whole speculative scan.
func (p *Parser) scanPossibleTypeArgumentListNested() bool {
	return p.scanTypeArgumentListBody()
}

func (p *Parser) parseTupleType() *syntax.Node {
	open := p.advance() // '('
	var items []*syntax.Node
	var seps []token.Token
	for !p.at(token.CloseParenToken) && !p.at(token.EndOfFileToken) {
		elemType := p.parseType()
		var name token.Token
		hasName := false
		if p.at(token.IdentifierToken) {
			name = p.advance()
			hasName = true
		}
		elemChildren := []syntax.Child{syntax.NodeChild(elemType)}
		if hasName {
			elemChildren = append(elemChildren, syntax.TokenChild(name))
		}
		items = append(items, p.newNode(syntax.KindTupleElement, elemChildren...))
		if p.at(token.CommaToken) {
			seps = append(seps, p.advance())
			continue
		}
		break
	}
	if len(items) < 2 {
		p.sink.Report(diagnostics.ErrTupleTooFewElements, int(open.Span.Start), int(p.current().Span.Start), "")
	}
	close := p.eat(token.CloseParenToken)
	return p.newNode(syntax.KindTupleType, syntax.TokenChild(open),
		syntax.SepListChild(&syntax.SeparatedList{Items: items, Separators: seps}), syntax.TokenChild(close))
}
