package parser

import (
	"github.com/aledsdavies/alchemy/diagnostics"
	"github.com/aledsdavies/alchemy/syntax"
	"github.com/aledsdavies/alchemy/syntaxfacts"
	"github.com/aledsdavies/alchemy/token"
)

// parseExpression implements precedence climbing over the binary/assignment
// operator table in syntaxfacts.BinaryPrecedence (spec.md §4.8), built on
// top of parseUnaryExpression for the leaves. minPrec is the loosest
// precedence the caller will accept; pass syntaxfacts.PrecExpression for any
// expression, or a tighter floor to stop early (e.g. a `for` clause parsing
// one operand at a time).
func (p *Parser) parseExpression(minPrec syntaxfacts.Precedence) *syntax.Node {
	left := p.parseUnaryExpression()

	for {
		k := p.currentFused().Kind
		if syntaxfacts.IsAssignmentOperator(k) {
			op := p.advanceFused(k)
			right := p.parseExpression(syntaxfacts.PrecAssignment)
			left = p.newNode(syntaxfacts.AssignmentExpressionKind(k), syntax.NodeChild(left), syntax.TokenChild(op), syntax.NodeChild(right))
			continue
		}
		if k == token.QuestionToken {
			if minPrec > syntaxfacts.PrecConditional {
				break
			}
			left = p.parseConditionalExpression(left)
			continue
		}
		if k == token.IsKeyword {
			if minPrec > syntaxfacts.PrecRelational {
				break
			}
			p.advance()
			left = p.parseIsPatternOrType(left)
			continue
		}
		if k == token.AsKeyword {
			if minPrec > syntaxfacts.PrecRelational {
				break
			}
			kw := p.advance()
			typ := p.parseType()
			left = p.newNode(syntax.KindAsExpression, syntax.NodeChild(left), syntax.TokenChild(kw), syntax.NodeChild(typ))
			continue
		}
		if k == token.SwitchKeyword && minPrec <= syntaxfacts.PrecSwitchWith {
			left = p.parseSwitchExpression(left)
			continue
		}

		prec, ok := syntaxfacts.BinaryPrecedence(k)
		if !ok || prec < minPrec {
			break
		}
		op := p.advanceFused(k)
		nextMin := prec + 1
		if syntaxfacts.IsRightAssociative(prec) {
			nextMin = prec
		}
		right := p.parseExpression(nextMin)
		left = p.newNode(syntaxfacts.BinaryExpressionKind(k), syntax.NodeChild(left), syntax.TokenChild(op), syntax.NodeChild(right))
	}
	return left
}

func (p *Parser) parseConditionalExpression(cond *syntax.Node) *syntax.Node {
	q := p.advance()
	whenTrue := p.parseExpression(syntaxfacts.PrecAssignment)
	colon := p.eat(token.ColonToken)
	whenFalse := p.parseExpression(syntaxfacts.PrecAssignment)
	return p.newNode(syntax.KindConditionalExpression, syntax.NodeChild(cond), syntax.TokenChild(q),
		syntax.NodeChild(whenTrue), syntax.TokenChild(colon), syntax.NodeChild(whenFalse))
}

// parseIsPatternOrType builds the `is` relational operator: either a type
// test (`x is SomeType`, indistinguishable in shape from `x is SomeType y`
// at this grain) or a full pattern (`x is > 0`, `x is { Prop: 1 }`, ...).
// Grounded on spec.md §4.8's disambiguation: a bare type name is parsed as
// a DeclarationPattern (optionally carrying a binding identifier); anything
// starting with a pattern-only token goes through parsePattern.
func (p *Parser) parseIsPatternOrType(left *syntax.Node) *syntax.Node {
	pat := p.parsePattern()
	return p.newNode(syntax.KindIsPatternExpression, syntax.NodeChild(left), syntax.NodeChild(pat))
}

func (p *Parser) parseSwitchExpression(governing *syntax.Node) *syntax.Node {
	kw := p.advance()
	open := p.eat(token.OpenBraceToken)
	restore := p.pushTerminator(termEndOfBlock)
	var arms []*syntax.Node
	var seps []token.Token
	for !p.at(token.CloseBraceToken) && !p.at(token.EndOfFileToken) {
		p.checkProgress("parseSwitchExpression")
		pat := p.parsePattern()
		var when *syntax.Node
		if p.atContextual(token.WhenKeyword) {
			whenKw := p.eatAs(token.WhenKeyword)
			cond := p.parseExpression(syntaxfacts.PrecExpression)
			when = p.newNode(syntax.KindWhenClause, syntax.TokenChild(whenKw), syntax.NodeChild(cond))
		}
		arrow := p.eat(token.EqualsGreaterThanToken)
		result := p.parseExpression(syntaxfacts.PrecAssignment)
		children := []syntax.Child{syntax.NodeChild(pat)}
		if when != nil {
			children = append(children, syntax.NodeChild(when))
		}
		children = append(children, syntax.TokenChild(arrow), syntax.NodeChild(result))
		arms = append(arms, p.newNode(syntax.KindSwitchExpressionArm, children...))
		if p.at(token.CommaToken) {
			seps = append(seps, p.advance())
			continue
		}
		break
	}
	restore()
	close := p.eat(token.CloseBraceToken)
	return p.newNode(syntax.KindSwitchExpression, syntax.NodeChild(governing), syntax.TokenChild(kw), syntax.TokenChild(open),
		syntax.SepListChild(&syntax.SeparatedList{Items: arms, Separators: seps}), syntax.TokenChild(close))
}

// parseUnaryExpression handles prefix operators, `throw`, and casts, then
// falls into parsePostfixExpression for the primary + postfix chain.
// Grounded on the teacher's parseUnary()-then-parsePrimary() split in
// runtime/parser/parser.go, generalized with the cast speculative scan built
// from original_source/Src/Parsing2/Parser.cpp's ScanType plus
// SyntaxFacts.h's CanFollowCast (there is no single named ScanCast in the
// original; cast disambiguation there is the same ScanType-then-follow-set
// check this does).
func (p *Parser) parseUnaryExpression() *syntax.Node {
	k := p.currentFused().Kind
	switch k {
	case token.PlusToken, token.MinusToken, token.BangToken, token.TildeToken, token.PlusPlusToken,
		token.MinusMinusToken, token.AmpersandToken, token.AsteriskToken:
		op := p.advanceFused(k)
		operand := p.parseUnaryExpression()
		return p.newNode(syntaxfacts.PrefixUnaryExpressionKind(k), syntax.TokenChild(op), syntax.NodeChild(operand))
	case token.ThrowKeyword:
		kw := p.advance()
		expr := p.parseExpression(syntaxfacts.PrecAssignment)
		return p.newNode(syntax.KindThrowExpression, syntax.TokenChild(kw), syntax.NodeChild(expr))
	case token.OpenParenToken:
		if node, ok := p.tryParseCast(); ok {
			return node
		}
	}
	return p.parsePostfixExpression()
}

// tryParseCast speculatively scans `(` type `)` followed by a token that
// cannot follow a parenthesized expression (syntaxfacts.CanFollowCast),
// rolling back via a reset point if the shape doesn't hold. Grounded on
// spec.md §4.8's cast-vs-parenthesized-expression disambiguation.
func (p *Parser) tryParseCast() (*syntax.Node, bool) {
	m := p.mark()
	open := p.advance()
	if !p.scanType() {
		p.reset(m)
		return nil, false
	}
	if !p.at(token.CloseParenToken) {
		p.reset(m)
		return nil, false
	}
	// Re-run for real now that the speculative scan confirmed a type.
	p.reset(m)
	p.advance() // '('
	typ := p.parseType()
	if !p.at(token.CloseParenToken) {
		p.reset(m)
		return nil, false
	}
	close := p.advance()
	if !syntaxfacts.CanFollowCast(p.currentFused().Kind) {
		p.reset(m)
		return nil, false
	}
	operand := p.parseUnaryExpression()
	return p.newNode(syntax.KindCastExpression, syntax.TokenChild(open), syntax.NodeChild(typ), syntax.TokenChild(close), syntax.NodeChild(operand)), true
}

// parsePostfixExpression parses a primary expression and then folds in any
// run of postfix operators: member access, invocation, element access,
// post-increment/decrement, conditional access, and `!` (disambiguated by
// the fact none of it ever shows up after this grain of the grammar, so
// every postfix token seen here is unconditionally consumed).
func (p *Parser) parsePostfixExpression() *syntax.Node {
	expr := p.parsePrimaryExpression()
	for {
		switch p.currentFused().Kind {
		case token.DotToken:
			dot := p.advance()
			name := p.eat(token.IdentifierToken)
			nameNode := p.nameOrGenericName(name)
			expr = p.newNode(syntax.KindSimpleMemberAccessExpression, syntax.NodeChild(expr), syntax.TokenChild(dot), syntax.NodeChild(nameNode))
		case token.QuestionToken:
			if p.peek(1).Kind != token.DotToken && p.peek(1).Kind != token.OpenBracketToken {
				return expr
			}
			q := p.advance()
			rest := p.parsePostfixExpression()
			expr = p.newNode(syntax.KindConditionalAccessExpression, syntax.NodeChild(expr), syntax.TokenChild(q), syntax.NodeChild(rest))
		case token.OpenParenToken:
			args := p.parseArgumentList()
			expr = p.newNode(syntax.KindInvocationExpression, syntax.NodeChild(expr), syntax.NodeChild(args))
		case token.OpenBracketToken:
			open := p.advance()
			var items []*syntax.Node
			var seps []token.Token
			for !p.at(token.CloseBracketToken) && !p.at(token.EndOfFileToken) {
				p.checkProgress("parsePostfixExpression(element-access)")
				items = append(items, p.newNode(syntax.KindArgument, syntax.NodeChild(p.parseExpression(syntaxfacts.PrecExpression))))
				if p.at(token.CommaToken) {
					seps = append(seps, p.advance())
					continue
				}
				break
			}
			close := p.eat(token.CloseBracketToken)
			argList := p.newNode(syntax.KindArgumentList, syntax.TokenChild(open),
				syntax.SepListChild(&syntax.SeparatedList{Items: items, Separators: seps}), syntax.TokenChild(close))
			expr = p.newNode(syntax.KindElementAccessExpression, syntax.NodeChild(expr), syntax.NodeChild(argList))
		case token.PlusPlusToken, token.MinusMinusToken:
			op := p.advance()
			expr = p.newNode(syntaxfacts.PostfixUnaryExpressionKind(op.Kind), syntax.NodeChild(expr), syntax.TokenChild(op))
		case token.BangToken:
			if hasLeadingTrivia(p.current()) {
				return expr
			}
			bang := p.advance()
			expr = p.newNode(syntax.KindPostfixUnaryExpression, syntax.NodeChild(expr), syntax.TokenChild(bang))
		default:
			return expr
		}
	}
}

func (p *Parser) parseArgumentList() *syntax.Node {
	open := p.eat(token.OpenParenToken)
	restore := p.pushTerminator(termEndOfArgumentList)
	var items []*syntax.Node
	var seps []token.Token
	for !p.at(token.CloseParenToken) && !p.at(token.EndOfFileToken) {
		p.checkProgress("parseArgumentList")
		items = append(items, p.parseArgument())
		if p.at(token.CommaToken) {
			seps = append(seps, p.advance())
			continue
		}
		break
	}
	restore()
	close := p.eat(token.CloseParenToken)
	return p.newNode(syntax.KindArgumentList, syntax.TokenChild(open),
		syntax.SepListChild(&syntax.SeparatedList{Items: items, Separators: seps}), syntax.TokenChild(close))
}

func (p *Parser) parseArgument() *syntax.Node {
	var mod token.Token
	hasMod := false
	if p.at(token.RefKeyword) || p.at(token.OutKeyword) || p.at(token.InKeyword) {
		mod = p.advance()
		hasMod = true
	}
	expr := p.parseExpression(syntaxfacts.PrecAssignment)
	if hasMod {
		return p.newNode(syntax.KindArgument, syntax.TokenChild(mod), syntax.NodeChild(expr))
	}
	return p.newNode(syntax.KindArgument, syntax.NodeChild(expr))
}

// parsePrimaryExpression parses the innermost grammar productions: literals,
// names, parenthesized/tuple expressions, object/array creation, `typeof`,
// `sizeof`, `default`, `stackalloc`, interpolated strings, and lambdas.
// Grounded on the teacher's parsePrimary() in runtime/parser/parser.go,
// extended with the productions original_source/Src/Parsing2/Parser.cpp's
// IsPossibleExpression lists (TypeOfKeyword, DefaultKeyword, SizeOfKeyword,
// NewKeyword, ...) that devcmd's command grammar never needed.
func (p *Parser) parsePrimaryExpression() *syntax.Node {
	t := p.current()
	switch {
	case t.Kind == token.NumericLiteralToken, t.Kind == token.StringLiteralToken, t.Kind == token.CharacterLiteralToken,
		t.Kind == token.TrueKeyword, t.Kind == token.FalseKeyword, t.Kind == token.NullKeyword:
		tok := p.advance()
		return p.newNode(syntax.KindLiteralExpression, syntax.TokenChild(tok))
	case t.Kind == token.ThisKeyword, t.Kind == token.BaseKeyword:
		tok := p.advance()
		return p.newNode(syntax.KindIdentifierNameExpression, syntax.TokenChild(tok))
	case t.Kind == token.InterpolatedStringStart:
		return p.parseInterpolatedString()
	case t.Kind == token.IdentifierToken:
		if p.peek(1).Kind == token.EqualsGreaterThanToken {
			return p.parseSimpleLambda()
		}
		if t.ContextualKind == token.NameofKeyword && p.peek(1).Kind == token.OpenParenToken {
			return p.parseNameofExpression()
		}
		name := p.advance()
		return p.nameOrGenericNameExpression(name)
	case t.Kind == token.OpenParenToken:
		return p.parseParenthesizedOrTupleOrLambda()
	case t.Kind == token.NewKeyword:
		return p.parseObjectOrArrayCreation()
	case t.Kind == token.TypeofKeyword:
		return p.parseTypeofExpression()
	case t.Kind == token.SizeofKeyword:
		return p.parseSizeofExpression()
	case t.Kind == token.DefaultKeyword:
		return p.parseDefaultExpression()
	case t.Kind == token.StackallocKeyword:
		return p.parseStackallocExpression()
	case syntaxfacts.IsPredefinedType(t.Kind):
		// `int.Parse(...)`, `(int)x` already handled by tryParseCast; a bare
		// predefined-type keyword used as a primary is a member-access base.
		tok := p.advance()
		return p.newNode(syntax.KindIdentifierNameExpression, syntax.TokenChild(tok))
	}

	pos := int(t.Span.Start)
	p.sink.Report(diagnostics.ErrSyntaxError, pos, pos, "expression expected")
	missing := token.Token{Kind: token.IdentifierToken, Flags: token.FlagMissing, Span: token.Span{Start: token.Position(pos), End: token.Position(pos)}}
	return p.newNode(syntax.KindIdentifierNameExpression, syntax.TokenChild(missing))
}

// nameOrGenericNameExpression builds the expression-position name node for
// an already-consumed identifier in primary-expression position: a
// GenericNameExpression if a following '<' is confirmed by
// scanPossibleTypeArgumentList to open a type-argument list, an
// IdentifierNameExpression otherwise. This is spec.md §1's "single hardest
// problem" applied to a generic method call (`Foo<Bar>(x)`), the same
// bounded speculative scan parseNameType already uses to disambiguate a
// generic type name in type position (types.go). Without this, a bare
// identifier in expression position never looks past itself, and
// `Foo<Bar>(x)` parses as `(Foo < Bar) > (x)` — two chained relational
// comparisons — instead of an invocation of the generic name `Foo<Bar>`. On
// a scan failure the '<' is left untouched for parseExpression's
// binary-operator loop to consume as less-than.
func (p *Parser) nameOrGenericNameExpression(name token.Token) *syntax.Node {
	if p.at(token.LessThanToken) && p.scanPossibleTypeArgumentList() {
		args := p.parseTypeArgumentList()
		return p.newNode(syntax.KindGenericNameExpression, syntax.TokenChild(name), syntax.NodeChild(args))
	}
	return p.newNode(syntax.KindIdentifierNameExpression, syntax.TokenChild(name))
}

// nameOrGenericName is nameOrGenericNameExpression's counterpart for a
// member name after '.': a SimpleName is the same production whether it
// names a type or a member, so this reuses the type-position IdentifierName/
// GenericName kinds (matching parseNameType's shape) rather than the
// Expression-suffixed kinds, keeping `obj.Method<T>(x)` and `Foo<Bar>(x)`
// disambiguated the same way.
func (p *Parser) nameOrGenericName(name token.Token) *syntax.Node {
	if p.at(token.LessThanToken) && p.scanPossibleTypeArgumentList() {
		args := p.parseTypeArgumentList()
		return p.newNode(syntax.KindGenericName,
			syntax.NodeChild(p.newNode(syntax.KindIdentifierName, syntax.TokenChild(name))), syntax.NodeChild(args))
	}
	return p.newNode(syntax.KindIdentifierName, syntax.TokenChild(name))
}

func (p *Parser) parseNameofExpression() *syntax.Node {
	kw := p.eatAs(token.NameofKeyword)
	open := p.eat(token.OpenParenToken)
	target := p.parseExpression(syntaxfacts.PrecExpression)
	close := p.eat(token.CloseParenToken)
	return p.newNode(syntax.KindInvocationExpression,
		syntax.NodeChild(p.newNode(syntax.KindIdentifierNameExpression, syntax.TokenChild(kw))),
		syntax.NodeChild(p.newNode(syntax.KindArgumentList, syntax.TokenChild(open),
			syntax.SepListChild(&syntax.SeparatedList{Items: []*syntax.Node{p.newNode(syntax.KindArgument, syntax.NodeChild(target))}}),
			syntax.TokenChild(close))))
}

// parseSimpleLambda parses `ident => body`.
func (p *Parser) parseSimpleLambda() *syntax.Node {
	param := p.advance()
	paramNode := p.newNode(syntax.KindParameter, syntax.TokenChild(param))
	arrow := p.eat(token.EqualsGreaterThanToken)
	body := p.parseLambdaBody()
	return p.newNode(syntax.KindSimpleLambdaExpression, syntax.NodeChild(paramNode), syntax.TokenChild(arrow), syntax.NodeChild(body))
}

func (p *Parser) parseLambdaBody() *syntax.Node {
	if p.at(token.OpenBraceToken) {
		return p.parseBlock()
	}
	return p.parseExpression(syntaxfacts.PrecAssignment)
}

// parseParenthesizedOrTupleOrLambda disambiguates three shapes that all
// start with '(': a parenthesized expression `(x)`, a tuple expression
// `(x, y)`, and a parenthesized lambda `(int x, int y) => ...` / `() => ...`.
// The lambda case is detected by a speculative scan to the matching ')'
// followed by '=>'; everything else falls into tuple-vs-parenthesized based
// on whether a comma appears before the closing paren.
func (p *Parser) parseParenthesizedOrTupleOrLambda() *syntax.Node {
	if p.looksLikeParenthesizedLambda() {
		return p.parseParenthesizedLambda()
	}

	open := p.advance()
	first := p.parseExpression(syntaxfacts.PrecExpression)
	if !p.at(token.CommaToken) {
		close := p.eat(token.CloseParenToken)
		return p.newNode(syntax.KindParenthesizedExpression, syntax.TokenChild(open), syntax.NodeChild(first), syntax.TokenChild(close))
	}

	items := []*syntax.Node{first}
	var seps []token.Token
	for p.at(token.CommaToken) {
		seps = append(seps, p.advance())
		items = append(items, p.parseExpression(syntaxfacts.PrecExpression))
	}
	close := p.eat(token.CloseParenToken)
	return p.newNode(syntax.KindTupleExpression, syntax.TokenChild(open),
		syntax.SepListChild(&syntax.SeparatedList{Items: items, Separators: seps}), syntax.TokenChild(close))
}

func (p *Parser) looksLikeParenthesizedLambda() bool {
	m := p.mark()
	defer p.reset(m)

	p.advance() // '('
	if p.at(token.CloseParenToken) {
		p.advance()
		return p.at(token.EqualsGreaterThanToken)
	}
	depth := 1
	for depth > 0 {
		switch p.currentFused().Kind {
		case token.EndOfFileToken:
			return false
		case token.OpenParenToken:
			depth++
		case token.CloseParenToken:
			depth--
		}
		p.advance()
	}
	return p.at(token.EqualsGreaterThanToken)
}

func (p *Parser) parseParenthesizedLambda() *syntax.Node {
	params := p.parseParameterList()
	arrow := p.eat(token.EqualsGreaterThanToken)
	body := p.parseLambdaBody()
	return p.newNode(syntax.KindParenthesizedLambdaExpression, syntax.NodeChild(params), syntax.TokenChild(arrow), syntax.NodeChild(body))
}

func (p *Parser) parseObjectOrArrayCreation() *syntax.Node {
	kw := p.advance()
	if p.at(token.OpenBraceToken) {
		init := p.parseInitializerExpression(syntax.KindAnonymousObjectCreationExpression)
		return p.newNode(syntax.KindAnonymousObjectCreationExpression, syntax.TokenChild(kw), syntax.NodeChild(init))
	}
	if p.at(token.OpenBracketToken) {
		return p.parseImplicitArrayCreation(kw)
	}

	typ := p.parseType()
	if p.at(token.OpenBracketToken) {
		return p.parseArrayCreationWithType(kw, typ)
	}
	if p.at(token.OpenParenToken) {
		args := p.parseArgumentList()
		children := []syntax.Child{syntax.TokenChild(kw), syntax.NodeChild(typ), syntax.NodeChild(args)}
		if p.at(token.OpenBraceToken) {
			init := p.parseInitializerExpression(syntax.KindObjectInitializerExpression)
			children = append(children, syntax.NodeChild(init))
		}
		return p.newNode(syntax.KindObjectCreationExpression, children...)
	}
	if p.at(token.OpenBraceToken) {
		init := p.parseInitializerExpression(syntax.KindObjectInitializerExpression)
		return p.newNode(syntax.KindObjectCreationExpression, syntax.TokenChild(kw), syntax.NodeChild(typ), syntax.NodeChild(init))
	}
	return p.newNode(syntax.KindObjectCreationExpression, syntax.TokenChild(kw), syntax.NodeChild(typ))
}

func (p *Parser) parseImplicitArrayCreation(kw token.Token) *syntax.Node {
	open := p.advance()
	for p.at(token.CommaToken) {
		p.advance()
	}
	close := p.eat(token.CloseBracketToken)
	init := p.parseInitializerExpression(syntax.KindCollectionInitializerExpression)
	return p.newNode(syntax.KindImplicitArrayCreationExpression, syntax.TokenChild(kw), syntax.TokenChild(open), syntax.TokenChild(close), syntax.NodeChild(init))
}

func (p *Parser) parseArrayCreationWithType(kw token.Token, elemType *syntax.Node) *syntax.Node {
	open := p.advance()
	var rank *syntax.Node
	hasInit := false
	if p.at(token.CloseBracketToken) {
		close := p.advance()
		rank = p.newNode(syntax.KindArrayRankSpecifier, syntax.TokenChild(open), syntax.TokenChild(close))
		hasInit = p.at(token.OpenBraceToken)
	} else {
		size := p.parseExpression(syntaxfacts.PrecExpression)
		close := p.eat(token.CloseBracketToken)
		rank = p.newNode(syntax.KindArrayRankSpecifier, syntax.TokenChild(open), syntax.NodeChild(size), syntax.TokenChild(close))
	}
	children := []syntax.Child{syntax.TokenChild(kw), syntax.NodeChild(elemType), syntax.NodeChild(rank)}
	if hasInit {
		init := p.parseInitializerExpression(syntax.KindCollectionInitializerExpression)
		children = append(children, syntax.NodeChild(init))
	}
	return p.newNode(syntax.KindArrayCreationExpression, children...)
}

func (p *Parser) parseInitializerExpression(kind syntax.Kind) *syntax.Node {
	open := p.eat(token.OpenBraceToken)
	restore := p.pushTerminator(termEndOfBlock)
	var items []*syntax.Node
	var seps []token.Token
	for !p.at(token.CloseBraceToken) && !p.at(token.EndOfFileToken) {
		p.checkProgress("parseInitializerExpression")
		items = append(items, p.parseInitializerMember(kind))
		if p.at(token.CommaToken) {
			seps = append(seps, p.advance())
			continue
		}
		break
	}
	restore()
	close := p.eat(token.CloseBraceToken)
	return p.newNode(kind, syntax.TokenChild(open), syntax.SepListChild(&syntax.SeparatedList{Items: items, Separators: seps}), syntax.TokenChild(close))
}

func (p *Parser) parseInitializerMember(kind syntax.Kind) *syntax.Node {
	if kind == syntax.KindAnonymousObjectCreationExpression && p.at(token.IdentifierToken) && p.peek(1).Kind == token.EqualsToken {
		name := p.advance()
		eq := p.advance()
		val := p.parseExpression(syntaxfacts.PrecAssignment)
		return p.newNode(syntax.KindAnonymousObjectMemberDeclarator, syntax.TokenChild(name), syntax.TokenChild(eq), syntax.NodeChild(val))
	}
	return p.parseExpression(syntaxfacts.PrecAssignment)
}

func (p *Parser) parseTypeofExpression() *syntax.Node {
	kw := p.advance()
	open := p.eat(token.OpenParenToken)
	typ := p.parseType()
	close := p.eat(token.CloseParenToken)
	return p.newNode(syntax.KindTypeOfExpression, syntax.TokenChild(kw), syntax.TokenChild(open), syntax.NodeChild(typ), syntax.TokenChild(close))
}

func (p *Parser) parseSizeofExpression() *syntax.Node {
	kw := p.advance()
	open := p.eat(token.OpenParenToken)
	typ := p.parseType()
	close := p.eat(token.CloseParenToken)
	return p.newNode(syntax.KindSizeOfExpression, syntax.TokenChild(kw), syntax.TokenChild(open), syntax.NodeChild(typ), syntax.TokenChild(close))
}

func (p *Parser) parseDefaultExpression() *syntax.Node {
	kw := p.advance()
	if !p.at(token.OpenParenToken) {
		return p.newNode(syntax.KindDefaultExpression, syntax.TokenChild(kw))
	}
	open := p.advance()
	typ := p.parseType()
	close := p.eat(token.CloseParenToken)
	return p.newNode(syntax.KindDefaultExpression, syntax.TokenChild(kw), syntax.TokenChild(open), syntax.NodeChild(typ), syntax.TokenChild(close))
}

func (p *Parser) parseStackallocExpression() *syntax.Node {
	kw := p.advance()
	typ := p.parseType()
	return p.newNode(syntax.KindStackAllocArrayCreationExpression, syntax.TokenChild(kw), syntax.NodeChild(typ))
}

// parseInterpolatedString assembles an InterpolatedStringExpression from the
// InterpolatedStringStart/...Text/InterpolationStart/expr/InterpolationEnd/
// ...End token run the lexer already produced (spec.md §4.10); the parser's
// only job here is to recursively parse each interpolation hole's
// expression using the ordinary expression grammar, since the lexer
// re-entered normal tokenization inside the braces.
func (p *Parser) parseInterpolatedString() *syntax.Node {
	start := p.advance()
	children := []syntax.Child{syntax.TokenChild(start)}
	for {
		switch p.current().Kind {
		case token.InterpolatedStringTextToken:
			text := p.advance()
			children = append(children, syntax.NodeChild(p.newNode(syntax.KindInterpolatedStringText, syntax.TokenChild(text))))
		case token.InterpolationStart:
			children = append(children, syntax.NodeChild(p.parseInterpolation()))
		case token.InterpolatedStringEnd, token.EndOfFileToken:
			end := p.eat(token.InterpolatedStringEnd)
			children = append(children, syntax.TokenChild(end))
			return p.newNode(syntax.KindInterpolatedStringExpression, children...)
		default:
			// Defensive: the lexer's state machine guarantees one of the
			// above, but recovery must still make progress.
			p.advance()
		}
	}
}

func (p *Parser) parseInterpolation() *syntax.Node {
	open := p.advance() // InterpolationStart
	expr := p.parseExpression(syntaxfacts.PrecExpression)
	var colon token.Token
	var format *syntax.Node
	hasFormat := false
	if p.at(token.ColonToken) {
		colon = p.advance()
		fmtTok := p.eat(token.InterpolatedStringTextToken)
		format = p.newNode(syntax.KindInterpolatedStringText, syntax.TokenChild(fmtTok))
		hasFormat = true
	}
	close := p.eat(token.InterpolationEnd)
	children := []syntax.Child{syntax.TokenChild(open), syntax.NodeChild(expr)}
	if hasFormat {
		children = append(children, syntax.TokenChild(colon), syntax.NodeChild(format))
	}
	children = append(children, syntax.TokenChild(close))
	return p.newNode(syntax.KindInterpolation, children...)
}
