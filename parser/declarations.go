package parser

import (
	"github.com/aledsdavies/alchemy/diagnostics"
	"github.com/aledsdavies/alchemy/syntax"
	"github.com/aledsdavies/alchemy/syntaxfacts"
	"github.com/aledsdavies/alchemy/token"
)

// parseNamespaceMember parses one top-level or namespace-body member: a
// using directive, a namespace declaration (block- or file-scoped), or a
// type declaration. Returns nil only when recovery reaches end of file; a
// token that cannot start any of these and that recovery does not skip is
// reported as ErrInvalidMemberDeclaration and consumed on its own inside an
// IdentifierName node. Grounded on spec.md §4.6's top-level grammar.
func (p *Parser) parseNamespaceMember() *syntax.Node {
	if p.at(token.UsingKeyword) {
		return p.parseUsingDirective()
	}
	if p.at(token.NamespaceKeyword) {
		return p.parseNamespaceDeclaration()
	}
	if isTypeDeclarationStart(effectiveKind(p.current())) || isTypeModifierStart(effectiveKind(p.current())) {
		return p.parseTypeDeclaration()
	}

	skipped := p.skipBadTokens(isNamespaceMemberStart)
	if skipped == 0 {
		if p.at(token.EndOfFileToken) {
			return nil
		}
		p.sink.Report(diagnostics.ErrInvalidMemberDeclaration, int(p.current().Span.Start), int(p.current().Span.End), "")
		bad := p.advance()
		return p.newNode(syntax.KindIdentifierName, syntax.TokenChild(bad))
	}
	if p.at(token.EndOfFileToken) {
		return nil
	}
	return p.parseNamespaceMember()
}

func (p *Parser) parseUsingDirective() *syntax.Node {
	kw := p.advance()
	var staticKw token.Token
	hasStatic := false
	if p.at(token.StaticKeyword) {
		staticKw = p.advance()
		hasStatic = true
	}
	var alias token.Token
	hasAlias := false
	if p.at(token.IdentifierToken) && p.peek(1).Kind == token.EqualsToken {
		alias = p.advance()
		p.advance() // '='
		hasAlias = true
	}
	name := p.parseNameType()
	semi := p.eat(token.SemicolonToken)

	children := []syntax.Child{syntax.TokenChild(kw)}
	if hasStatic {
		children = append(children, syntax.TokenChild(staticKw))
	}
	if hasAlias {
		children = append(children, syntax.TokenChild(alias))
	}
	children = append(children, syntax.NodeChild(name), syntax.TokenChild(semi))
	return p.newNode(syntax.KindUsingDirective, children...)
}

func (p *Parser) parseNamespaceDeclaration() *syntax.Node {
	kw := p.advance()
	name := p.parseNameType()

	if p.at(token.SemicolonToken) {
		semi := p.advance()
		restore := p.pushTerminator(termNamespaceMemberStartOrStop)
		defer restore()
		var members []*syntax.Node
		for !p.at(token.EndOfFileToken) {
			p.checkProgress("parseNamespaceDeclaration(file-scoped)")
			m := p.parseNamespaceMember()
			if m == nil {
				break
			}
			members = append(members, m)
		}
		return p.newNode(syntax.KindFileScopedNamespaceDeclaration, syntax.TokenChild(kw), syntax.NodeChild(name),
			syntax.TokenChild(semi), syntax.ListChild(&syntax.List{Items: members}))
	}

	open := p.eat(token.OpenBraceToken)
	restore := p.pushTerminator(termNamespaceMemberStartOrStop | termEndOfBlock)
	var members []*syntax.Node
	for !p.at(token.CloseBraceToken) && !p.at(token.EndOfFileToken) {
		p.checkProgress("parseNamespaceDeclaration(block)")
		m := p.parseNamespaceMember()
		if m == nil {
			break
		}
		members = append(members, m)
	}
	restore()
	close := p.eat(token.CloseBraceToken)
	return p.newNode(syntax.KindNamespaceDeclaration, syntax.TokenChild(kw), syntax.NodeChild(name),
		syntax.TokenChild(open), syntax.ListChild(&syntax.List{Items: members}), syntax.TokenChild(close))
}

func isTypeDeclarationStart(k token.Kind) bool {
	switch k {
	case token.ClassKeyword, token.StructKeyword, token.InterfaceKeyword, token.EnumKeyword, token.DelegateKeyword:
		return true
	}
	return false
}

func isTypeModifierStart(k token.Kind) bool {
	switch k {
	case token.PublicKeyword, token.PrivateKeyword, token.ProtectedKeyword, token.InternalKeyword, token.StaticKeyword,
		token.AbstractKeyword, token.SealedKeyword, token.PartialKeyword, token.ReadonlyKeyword:
		return true
	}
	return false
}

// parseModifiers consumes a run of access/type modifiers in any order,
// stopping at the first token that isn't one (spec.md §4.6).
func (p *Parser) parseModifiers() []*syntax.Node {
	var mods []*syntax.Node
	for isTypeModifierStart(effectiveKind(p.current())) || p.at(token.VirtualKeyword) || p.at(token.OverrideKeyword) ||
		p.at(token.ConstKeyword) || p.at(token.NewKeyword) {
		p.checkProgress("parseModifiers")
		mods = append(mods, p.newNode(syntax.KindToken, syntax.TokenChild(p.advance())))
	}
	return mods
}

func (p *Parser) parseTypeDeclaration() *syntax.Node {
	mods := p.parseModifiers()
	switch p.current().Kind {
	case token.ClassKeyword:
		return p.parseClassLikeDeclaration(mods, syntax.KindClassDeclaration)
	case token.StructKeyword:
		return p.parseClassLikeDeclaration(mods, syntax.KindStructDeclaration)
	case token.InterfaceKeyword:
		return p.parseClassLikeDeclaration(mods, syntax.KindInterfaceDeclaration)
	case token.EnumKeyword:
		return p.parseEnumDeclaration(mods)
	case token.DelegateKeyword:
		return p.parseDelegateDeclaration(mods)
	}
	// A run of modifiers not followed by a type keyword: recover by
	// reporting and wrapping what we have as a best-effort class shell.
	p.sink.Report(diagnostics.ErrInvalidMemberDeclaration, int(p.current().Span.Start), int(p.current().Span.End), "")
	kw := p.eat(token.ClassKeyword)
	return p.parseClassLikeDeclarationBody(mods, kw, syntax.KindClassDeclaration)
}

func (p *Parser) parseClassLikeDeclaration(mods []*syntax.Node, kind syntax.Kind) *syntax.Node {
	kw := p.advance()
	return p.parseClassLikeDeclarationBody(mods, kw, kind)
}

func (p *Parser) parseClassLikeDeclarationBody(mods []*syntax.Node, kw token.Token, kind syntax.Kind) *syntax.Node {
	name := p.eat(token.IdentifierToken)
	var typeParams *syntax.Node
	if p.at(token.LessThanToken) {
		typeParams = p.parseTypeParameterList()
	}
	var baseList *syntax.Node
	if p.at(token.ColonToken) {
		baseList = p.parseBaseList()
	}
	for p.atContextual(token.WhereKeyword) {
		p.parseTypeParameterConstraintClause()
	}

	open := p.eat(token.OpenBraceToken)
	restore := p.pushTerminator(termTypeMemberStartOrStop | termEndOfBlock)
	var members []*syntax.Node
	for !p.at(token.CloseBraceToken) && !p.at(token.EndOfFileToken) {
		p.checkProgress("parseClassLikeDeclarationBody")
		m := p.parseTypeMember()
		if m == nil {
			break
		}
		members = append(members, m)
	}
	restore()
	close := p.eat(token.CloseBraceToken)

	children := []syntax.Child{syntax.ListChild(&syntax.List{Items: mods}), syntax.TokenChild(kw), syntax.TokenChild(name)}
	if typeParams != nil {
		children = append(children, syntax.NodeChild(typeParams))
	}
	if baseList != nil {
		children = append(children, syntax.NodeChild(baseList))
	}
	children = append(children, syntax.TokenChild(open), syntax.ListChild(&syntax.List{Items: members}), syntax.TokenChild(close))
	return p.newNode(kind, children...)
}

func (p *Parser) parseTypeParameterList() *syntax.Node {
	leave := p.enterTypeArgumentContext()
	defer leave()
	open := p.advance()
	var items []*syntax.Node
	var seps []token.Token
	for {
		name := p.eat(token.IdentifierToken)
		items = append(items, p.newNode(syntax.KindTypeParameter, syntax.TokenChild(name)))
		if p.at(token.CommaToken) {
			seps = append(seps, p.advance())
			continue
		}
		break
	}
	close := p.eat(token.GreaterThanToken)
	return p.newNode(syntax.KindTypeParameterList, syntax.TokenChild(open),
		syntax.SepListChild(&syntax.SeparatedList{Items: items, Separators: seps}), syntax.TokenChild(close))
}

func (p *Parser) parseBaseList() *syntax.Node {
	colon := p.advance()
	var items []*syntax.Node
	var seps []token.Token
	for {
		items = append(items, p.parseType())
		if p.at(token.CommaToken) {
			seps = append(seps, p.advance())
			continue
		}
		break
	}
	return p.newNode(syntax.KindBaseList, syntax.TokenChild(colon),
		syntax.SepListChild(&syntax.SeparatedList{Items: items, Separators: seps}))
}

func (p *Parser) parseTypeParameterConstraintClause() *syntax.Node {
	where := p.advance()
	name := p.eat(token.IdentifierToken)
	colon := p.eat(token.ColonToken)
	var items []*syntax.Node
	var seps []token.Token
	for {
		if p.at(token.ClassKeyword) || p.at(token.StructKeyword) || p.at(token.NewKeyword) || p.atContextual(token.UnmanagedKeyword) {
			items = append(items, p.newNode(syntax.KindToken, syntax.TokenChild(p.advance())))
		} else {
			items = append(items, p.parseType())
		}
		if p.at(token.CommaToken) {
			seps = append(seps, p.advance())
			continue
		}
		break
	}
	return p.newNode(syntax.KindTypeParameterConstraintClause, syntax.TokenChild(where), syntax.TokenChild(name),
		syntax.TokenChild(colon), syntax.SepListChild(&syntax.SeparatedList{Items: items, Separators: seps}))
}

func (p *Parser) parseEnumDeclaration(mods []*syntax.Node) *syntax.Node {
	kw := p.advance()
	name := p.eat(token.IdentifierToken)
	var baseList *syntax.Node
	if p.at(token.ColonToken) {
		baseList = p.parseBaseList()
	}
	open := p.eat(token.OpenBraceToken)
	var items []*syntax.Node
	var seps []token.Token
	for !p.at(token.CloseBraceToken) && !p.at(token.EndOfFileToken) {
		p.checkProgress("parseEnumDeclaration")
		memberName := p.eat(token.IdentifierToken)
		children := []syntax.Child{syntax.TokenChild(memberName)}
		if p.at(token.EqualsToken) {
			eq := p.advance()
			val := p.parseExpression(syntaxfacts.PrecExpression)
			children = append(children, syntax.TokenChild(eq), syntax.NodeChild(val))
		}
		items = append(items, p.newNode(syntax.KindEnumMemberDeclaration, children...))
		if p.at(token.CommaToken) {
			seps = append(seps, p.advance())
			continue
		}
		break
	}
	close := p.eat(token.CloseBraceToken)

	children := []syntax.Child{syntax.ListChild(&syntax.List{Items: mods}), syntax.TokenChild(kw), syntax.TokenChild(name)}
	if baseList != nil {
		children = append(children, syntax.NodeChild(baseList))
	}
	children = append(children, syntax.TokenChild(open),
		syntax.SepListChild(&syntax.SeparatedList{Items: items, Separators: seps}), syntax.TokenChild(close))
	return p.newNode(syntax.KindEnumDeclaration, children...)
}

func (p *Parser) parseDelegateDeclaration(mods []*syntax.Node) *syntax.Node {
	kw := p.advance()
	retType := p.parseType()
	name := p.eat(token.IdentifierToken)
	var typeParams *syntax.Node
	if p.at(token.LessThanToken) {
		typeParams = p.parseTypeParameterList()
	}
	params := p.parseParameterList()
	semi := p.eat(token.SemicolonToken)

	children := []syntax.Child{syntax.ListChild(&syntax.List{Items: mods}), syntax.TokenChild(kw), syntax.NodeChild(retType), syntax.TokenChild(name)}
	if typeParams != nil {
		children = append(children, syntax.NodeChild(typeParams))
	}
	children = append(children, syntax.NodeChild(params), syntax.TokenChild(semi))
	return p.newNode(syntax.KindDelegateDeclaration, children...)
}

func (p *Parser) parseParameterList() *syntax.Node {
	open := p.eat(token.OpenParenToken)
	restore := p.pushTerminator(termEndOfParameterList)
	var items []*syntax.Node
	var seps []token.Token
	for !p.at(token.CloseParenToken) && !p.at(token.EndOfFileToken) {
		p.checkProgress("parseParameterList")
		items = append(items, p.parseParameter())
		if p.at(token.CommaToken) {
			seps = append(seps, p.advance())
			continue
		}
		break
	}
	restore()
	close := p.eat(token.CloseParenToken)
	return p.newNode(syntax.KindParameterList, syntax.TokenChild(open),
		syntax.SepListChild(&syntax.SeparatedList{Items: items, Separators: seps}), syntax.TokenChild(close))
}

func (p *Parser) parseParameter() *syntax.Node {
	var mod token.Token
	hasMod := false
	if p.at(token.RefKeyword) || p.at(token.OutKeyword) || p.at(token.InKeyword) {
		mod = p.advance()
		hasMod = true
	}
	typ := p.parseType()
	name := p.eat(token.IdentifierToken)
	children := []syntax.Child{}
	if hasMod {
		children = append(children, syntax.TokenChild(mod))
	}
	children = append(children, syntax.NodeChild(typ), syntax.TokenChild(name))
	if p.at(token.EqualsToken) {
		eq := p.advance()
		def := p.parseExpression(syntaxfacts.PrecExpression)
		children = append(children, syntax.TokenChild(eq), syntax.NodeChild(p.newNode(syntax.KindEqualsValueClause, syntax.NodeChild(def))))
	}
	return p.newNode(syntax.KindParameter, children...)
}
