package parser

import (
	"github.com/aledsdavies/alchemy/diagnostics"
	"github.com/aledsdavies/alchemy/syntax"
	"github.com/aledsdavies/alchemy/syntaxfacts"
	"github.com/aledsdavies/alchemy/token"
)

// parseTypeMember parses one member of a class/struct/interface body: a
// nested type, a constant, a field, a constructor, a method, a property, an
// indexer, or an operator/conversion-operator declaration (spec.md §4.6).
// Grounded on the teacher's parseDeclaration() dispatch in
// runtime/parser/parser.go, generalized to the full member grammar named in
// original_source/Src/Parsing2/Parser.cpp's IsPossibleMemberStart (there is
// no standalone ParseMemberDeclaration in the original; member dispatch
// there is folded into the same big top-level parse loop this predicate
// gates).
func (p *Parser) parseTypeMember() *syntax.Node {
	mods := p.parseModifiers()

	if isTypeDeclarationStart(effectiveKind(p.current())) {
		return p.parseTypeDeclarationWithModifiers(mods)
	}
	if p.at(token.ConstKeyword) {
		return p.parseConstDeclaration(mods)
	}
	if p.at(token.OperatorKeyword) {
		return p.parseOperatorDeclaration(mods, token.Token{})
	}
	if p.at(token.ImplicitKeyword) || p.at(token.ExplicitKeyword) {
		kw := p.advance()
		return p.parseOperatorDeclaration(mods, kw)
	}

	if !isTypeMemberStart(effectiveKind(p.current())) && !syntaxfacts.IsPredefinedType(p.current().Kind) {
		skipped := p.skipBadTokens(isTypeMemberStart)
		if skipped == 0 {
			if p.at(token.CloseBraceToken) || p.at(token.EndOfFileToken) {
				return nil
			}
			pos := int(p.current().Span.Start)
			p.sink.Report(diagnostics.ErrInvalidMemberDeclaration, pos, pos, "")
			bad := p.advance()
			return p.newNode(syntax.KindIdentifierName, syntax.TokenChild(bad))
		}
		return p.newNode(syntax.KindIdentifierName)
	}

	// Constructor: Identifier directly followed by '(' (no return type).
	if p.at(token.IdentifierToken) && p.peek(1).Kind == token.OpenParenToken {
		return p.parseConstructorDeclaration(mods)
	}

	typ := p.parseType()

	// Indexer: `this` keyword after the type.
	if p.at(token.ThisKeyword) {
		return p.parseIndexerDeclaration(mods, typ)
	}

	name := p.eat(token.IdentifierToken)

	if p.at(token.OpenParenToken) || p.at(token.LessThanToken) {
		return p.parseMethodDeclaration(mods, typ, name)
	}
	if p.at(token.OpenBraceToken) || p.at(token.EqualsGreaterThanToken) {
		return p.parsePropertyDeclaration(mods, typ, name)
	}
	return p.parseFieldDeclaration(mods, typ, name)
}

func (p *Parser) parseTypeDeclarationWithModifiers(mods []*syntax.Node) *syntax.Node {
	switch p.current().Kind {
	case token.ClassKeyword:
		return p.parseClassLikeDeclaration(mods, syntax.KindClassDeclaration)
	case token.StructKeyword:
		return p.parseClassLikeDeclaration(mods, syntax.KindStructDeclaration)
	case token.InterfaceKeyword:
		return p.parseClassLikeDeclaration(mods, syntax.KindInterfaceDeclaration)
	case token.EnumKeyword:
		return p.parseEnumDeclaration(mods)
	default:
		return p.parseDelegateDeclaration(mods)
	}
}

func (p *Parser) parseConstDeclaration(mods []*syntax.Node) *syntax.Node {
	kw := p.advance()
	typ := p.parseType()
	name := p.eat(token.IdentifierToken)
	eq := p.eat(token.EqualsToken)
	val := p.parseExpression(syntaxfacts.PrecExpression)
	declarator := p.newNode(syntax.KindVariableDeclarator, syntax.TokenChild(name),
		syntax.NodeChild(p.newNode(syntax.KindEqualsValueClause, syntax.TokenChild(eq), syntax.NodeChild(val))))
	declarators := []*syntax.Node{declarator}
	var seps []token.Token
	for p.at(token.CommaToken) {
		seps = append(seps, p.advance())
		n2 := p.eat(token.IdentifierToken)
		eq2 := p.eat(token.EqualsToken)
		v2 := p.parseExpression(syntaxfacts.PrecExpression)
		declarators = append(declarators, p.newNode(syntax.KindVariableDeclarator, syntax.TokenChild(n2),
			syntax.NodeChild(p.newNode(syntax.KindEqualsValueClause, syntax.TokenChild(eq2), syntax.NodeChild(v2)))))
	}
	semi := p.eat(token.SemicolonToken)
	decl := p.newNode(syntax.KindVariableDeclaration, syntax.NodeChild(typ),
		syntax.SepListChild(&syntax.SeparatedList{Items: declarators, Separators: seps}))
	return p.newNode(syntax.KindConstDeclaration, syntax.ListChild(&syntax.List{Items: mods}),
		syntax.TokenChild(kw), syntax.NodeChild(decl), syntax.TokenChild(semi))
}

func (p *Parser) parseConstructorDeclaration(mods []*syntax.Node) *syntax.Node {
	name := p.advance()
	params := p.parseParameterList()
	var initializer *syntax.Node
	if p.at(token.ColonToken) {
		colon := p.advance()
		baseOrThis := p.advance() // 'base' or 'this'
		args := p.parseArgumentList()
		initializer = p.newNode(syntax.KindArgumentList, syntax.TokenChild(colon), syntax.TokenChild(baseOrThis), syntax.NodeChild(args))
	}
	body := p.parseConstructorBody()
	children := []syntax.Child{syntax.ListChild(&syntax.List{Items: mods}), syntax.TokenChild(name), syntax.NodeChild(params)}
	if initializer != nil {
		children = append(children, syntax.NodeChild(initializer))
	}
	children = append(children, syntax.NodeChild(body))
	return p.newNode(syntax.KindConstructorDeclaration, children...)
}

func (p *Parser) parseConstructorBody() *syntax.Node {
	if p.at(token.SemicolonToken) {
		semi := p.advance()
		return p.newNode(syntax.KindBlock, syntax.TokenChild(semi))
	}
	return p.parseBlock()
}

func (p *Parser) parseMethodDeclaration(mods []*syntax.Node, retType *syntax.Node, name token.Token) *syntax.Node {
	var typeParams *syntax.Node
	if p.at(token.LessThanToken) {
		typeParams = p.parseTypeParameterList()
	}
	params := p.parseParameterList()
	for p.atContextual(token.WhereKeyword) {
		p.parseTypeParameterConstraintClause()
	}
	body := p.parseMethodBody()
	children := []syntax.Child{syntax.ListChild(&syntax.List{Items: mods}), syntax.NodeChild(retType), syntax.TokenChild(name)}
	if typeParams != nil {
		children = append(children, syntax.NodeChild(typeParams))
	}
	children = append(children, syntax.NodeChild(params), syntax.NodeChild(body))
	return p.newNode(syntax.KindMethodDeclaration, children...)
}

// parseMethodBody parses either a `;` (abstract/interface member), a block
// body, or an expression body (`=> expr;`), matching spec.md §4.6's "methods
// with bodies or expression-bodies".
func (p *Parser) parseMethodBody() *syntax.Node {
	if p.at(token.SemicolonToken) {
		semi := p.advance()
		return p.newNode(syntax.KindBlock, syntax.TokenChild(semi))
	}
	if p.at(token.EqualsGreaterThanToken) {
		return p.parseArrowExpressionClause()
	}
	return p.parseBlock()
}

func (p *Parser) parseArrowExpressionClause() *syntax.Node {
	arrow := p.advance()
	expr := p.parseExpression(syntaxfacts.PrecExpression)
	semi := p.eat(token.SemicolonToken)
	return p.newNode(syntax.KindArrowExpressionClause, syntax.TokenChild(arrow), syntax.NodeChild(expr), syntax.TokenChild(semi))
}

func (p *Parser) parseFieldDeclaration(mods []*syntax.Node, typ *syntax.Node, name token.Token) *syntax.Node {
	declarators := []*syntax.Node{p.parseVariableDeclarator(name)}
	var seps []token.Token
	for p.at(token.CommaToken) {
		seps = append(seps, p.advance())
		declarators = append(declarators, p.parseVariableDeclarator(p.eat(token.IdentifierToken)))
	}
	semi := p.eat(token.SemicolonToken)
	decl := p.newNode(syntax.KindVariableDeclaration, syntax.NodeChild(typ),
		syntax.SepListChild(&syntax.SeparatedList{Items: declarators, Separators: seps}))
	return p.newNode(syntax.KindFieldDeclaration, syntax.ListChild(&syntax.List{Items: mods}), syntax.NodeChild(decl), syntax.TokenChild(semi))
}

func (p *Parser) parsePropertyDeclaration(mods []*syntax.Node, typ *syntax.Node, name token.Token) *syntax.Node {
	if p.at(token.EqualsGreaterThanToken) {
		body := p.parseArrowExpressionClause()
		return p.newNode(syntax.KindPropertyDeclaration, syntax.ListChild(&syntax.List{Items: mods}), syntax.NodeChild(typ),
			syntax.TokenChild(name), syntax.NodeChild(body))
	}
	accessors := p.parseAccessorList()
	children := []syntax.Child{syntax.ListChild(&syntax.List{Items: mods}), syntax.NodeChild(typ), syntax.TokenChild(name), syntax.NodeChild(accessors)}
	if p.at(token.EqualsToken) {
		eq := p.advance()
		init := p.parseExpression(syntaxfacts.PrecAssignment)
		semi := p.eat(token.SemicolonToken)
		children = append(children, syntax.NodeChild(p.newNode(syntax.KindEqualsValueClause, syntax.TokenChild(eq), syntax.NodeChild(init))), syntax.TokenChild(semi))
	}
	return p.newNode(syntax.KindPropertyDeclaration, children...)
}

func (p *Parser) parseIndexerDeclaration(mods []*syntax.Node, typ *syntax.Node) *syntax.Node {
	thisKw := p.advance()
	open := p.eat(token.OpenBracketToken)
	restore := p.pushTerminator(termEndOfParameterList)
	var params []*syntax.Node
	var seps []token.Token
	for !p.at(token.CloseBracketToken) && !p.at(token.EndOfFileToken) {
		p.checkProgress("parseIndexerDeclaration")
		params = append(params, p.parseParameter())
		if p.at(token.CommaToken) {
			seps = append(seps, p.advance())
			continue
		}
		break
	}
	restore()
	close := p.eat(token.CloseBracketToken)
	paramList := p.newNode(syntax.KindParameterList, syntax.TokenChild(open),
		syntax.SepListChild(&syntax.SeparatedList{Items: params, Separators: seps}), syntax.TokenChild(close))

	if p.at(token.EqualsGreaterThanToken) {
		body := p.parseArrowExpressionClause()
		return p.newNode(syntax.KindIndexerDeclaration, syntax.ListChild(&syntax.List{Items: mods}), syntax.NodeChild(typ),
			syntax.TokenChild(thisKw), syntax.NodeChild(paramList), syntax.NodeChild(body))
	}
	accessors := p.parseAccessorList()
	return p.newNode(syntax.KindIndexerDeclaration, syntax.ListChild(&syntax.List{Items: mods}), syntax.NodeChild(typ),
		syntax.TokenChild(thisKw), syntax.NodeChild(paramList), syntax.NodeChild(accessors))
}

// parseAccessorList parses `{ get; set; }`, `{ get => expr; }`, and the
// init-only-setter variant, per spec.md §4.6.
func (p *Parser) parseAccessorList() *syntax.Node {
	open := p.eat(token.OpenBraceToken)
	restore := p.pushTerminator(termEndOfBlock)
	var accessors []*syntax.Node
	for !p.at(token.CloseBraceToken) && !p.at(token.EndOfFileToken) {
		p.checkProgress("parseAccessorList")
		accessors = append(accessors, p.parseAccessorDeclaration())
	}
	restore()
	close := p.eat(token.CloseBraceToken)
	return p.newNode(syntax.KindAccessorList, syntax.TokenChild(open), syntax.ListChild(&syntax.List{Items: accessors}), syntax.TokenChild(close))
}

func (p *Parser) parseAccessorDeclaration() *syntax.Node {
	accessorMods := p.parseModifiers()
	kind := syntaxfacts.GetAccessorKind(p.current().ContextualKind)
	if kind == syntax.KindNone {
		pos := int(p.current().Span.Start)
		p.sink.Report(diagnostics.ErrSyntaxError, pos, pos, "get, set, or init expected")
		bad := p.advance()
		return p.newNode(syntax.KindGetAccessorDeclaration, syntax.ListChild(&syntax.List{Items: accessorMods}), syntax.TokenChild(bad))
	}
	kw := p.advance()
	var body *syntax.Node
	switch {
	case p.at(token.SemicolonToken):
		semi := p.advance()
		body = p.newNode(syntax.KindBlock, syntax.TokenChild(semi))
	case p.at(token.EqualsGreaterThanToken):
		body = p.parseArrowExpressionClause()
	default:
		body = p.parseBlock()
	}
	return p.newNode(kind, syntax.ListChild(&syntax.List{Items: accessorMods}), syntax.TokenChild(kw), syntax.NodeChild(body))
}

// parseOperatorDeclaration parses `operator +(...)`/`operator ==(...)` and
// conversion operators `implicit/explicit operator T(...)` (spec.md §4.6).
// convKw is the zero token.Token for a plain operator declaration.
func (p *Parser) parseOperatorDeclaration(mods []*syntax.Node, convKw token.Token) *syntax.Node {
	hasConv := convKw.Kind == token.ImplicitKeyword || convKw.Kind == token.ExplicitKeyword
	opKw := p.eat(token.OperatorKeyword)

	var retType *syntax.Node
	if !hasConv {
		retType = p.parseType()
	}
	// For a conversion operator, 'operator' is immediately followed by the
	// target type rather than a return type preceding the keyword.
	var convType *syntax.Node
	if hasConv {
		convType = p.parseType()
	}

	var opToken token.Token
	if !hasConv {
		opToken = p.advance() // the operator symbol/keyword itself
	}
	params := p.parseParameterList()
	body := p.parseMethodBody()

	children := []syntax.Child{syntax.ListChild(&syntax.List{Items: mods})}
	if hasConv {
		children = append(children, syntax.TokenChild(convKw))
		children = append(children, syntax.TokenChild(opKw), syntax.NodeChild(convType))
		children = append(children, syntax.NodeChild(params), syntax.NodeChild(body))
		return p.newNode(syntax.KindConversionOperatorDeclaration, children...)
	}
	children = append(children, syntax.NodeChild(retType), syntax.TokenChild(opKw), syntax.TokenChild(opToken), syntax.NodeChild(params), syntax.NodeChild(body))
	return p.newNode(syntax.KindOperatorDeclaration, children...)
}
