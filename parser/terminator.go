package parser

import "github.com/aledsdavies/alchemy/token"

// terminators is the bitset of "what would end an enclosing construct"
// flags threaded through the recursive descent, so that error recovery
// (skipBadTokens) knows when to stop consuming and let an outer production
// pick up a token it is actually expecting. One-to-one with
// original_source/Src/Parsing2/TerminatorState.h; IsEndOfFunctionPointerParameterListErrored
// from that header has no equivalent here (Alchemy has no function-pointer
// types) and is intentionally not reproduced.
type terminators uint32

const (
	termEOF terminators = 1 << iota
	termNamespaceMemberStartOrStop
	termTypeMemberStartOrStop
	termStatementStartOrStop
	termEndOfParameterList
	termEndOfArgumentList
	termEndOfTypeArgumentList
	termEndOfTupleElementList
	termEndOfBlock
	termEndOfSwitchSection
	termEndOfSwitchSections
	termEndOfTryBlock
	termEndOfCatchClause
	termEndOfFinallyClause
	termEndOfForStatementArgument
	termEndOfEmbeddedStatement
	termEndOfMethodSignature
	termEndOfAttributeList
)

// has reports whether t includes flag.
func (t terminators) has(flag terminators) bool { return t&flag != 0 }

// withTerminator returns the parser's current set with flag added, for use
// with a deferred restore: `defer p.pushTerminator(termEndOfBlock)()`.
func (p *Parser) pushTerminator(flag terminators) func() {
	prev := p.terms
	p.terms |= flag
	return func() { p.terms = prev }
}

// isTerminator reports whether the current token would end some
// currently-open construct, per the active terminator set. Used by
// skipBadTokens to stop consuming garbage at a token an enclosing production
// is about to recognize as its own terminator, instead of eating it too.
func (p *Parser) isTerminator() bool {
	k := effectiveKind(p.stream.Current())
	if k == token.EndOfFileToken {
		return true
	}
	if p.terms.has(termEndOfBlock) && k == token.CloseBraceToken {
		return true
	}
	if p.terms.has(termEndOfParameterList) && k == token.CloseParenToken {
		return true
	}
	if p.terms.has(termEndOfArgumentList) && k == token.CloseParenToken {
		return true
	}
	if p.terms.has(termEndOfTypeArgumentList) && (k == token.GreaterThanToken || k == token.GreaterThanGreaterThanToken) {
		return true
	}
	if p.terms.has(termEndOfTupleElementList) && k == token.CloseParenToken {
		return true
	}
	if p.terms.has(termStatementStartOrStop) && (k == token.SemicolonToken || isStatementStart(k)) {
		return true
	}
	if p.terms.has(termNamespaceMemberStartOrStop) && (isNamespaceMemberStart(k) || k == token.CloseBraceToken) {
		return true
	}
	if p.terms.has(termTypeMemberStartOrStop) && (isTypeMemberStart(k) || k == token.CloseBraceToken) {
		return true
	}
	if p.terms.has(termEndOfSwitchSection) && (k == token.CaseKeyword || k == token.DefaultKeyword || k == token.CloseBraceToken) {
		return true
	}
	if p.terms.has(termEndOfTryBlock) && (k == token.CatchKeyword || k == token.FinallyKeyword) {
		return true
	}
	if p.terms.has(termEndOfCatchClause) && (k == token.CatchKeyword || k == token.FinallyKeyword) {
		return true
	}
	if p.terms.has(termEndOfSwitchSections) && k == token.CloseBraceToken {
		return true
	}
	if p.terms.has(termEndOfForStatementArgument) && (k == token.SemicolonToken || k == token.CloseParenToken) {
		return true
	}
	if p.terms.has(termEndOfFinallyClause) && k == token.CloseBraceToken {
		return true
	}
	return false
}
