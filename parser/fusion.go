package parser

import "github.com/aledsdavies/alchemy/token"

// The lexer always emits a lone GreaterThanToken (spec.md §4.2, §4.9) so
// that nested generics like List<Dict<K,V>> tokenize unambiguously. Outside
// a type-argument list, the parser fuses adjacent, trivia-free '>' tokens
// back into '>>', '>>>' and their '=' forms on the fly; inside one, it must
// consume them one at a time so the inner list's closing '>' doesn't eat the
// outer list's too. inTypeArgumentContext is a depth counter rather than a
// bool so nested generic closes still see fusion suppressed all the way out.

func (p *Parser) inTypeArgumentContext() bool { return p.typeArgDepth > 0 }

func hasLeadingTrivia(t token.Token) bool { return t.Flags.Has(token.FlagHasLeadingTrivia) }

// fusedGreaterThanWidth reports how many underlying '>' (and an optional
// trailing '=') tokens starting at the cursor fuse into a single operator,
// and that operator's kind. Called only when the current token is
// GreaterThanToken and fusion is not suppressed.
func (p *Parser) fusedGreaterThanWidth() (width int, kind token.Kind) {
	n := 1
	for n < 3 {
		next := p.peek(n)
		if next.Kind != token.GreaterThanToken || next.Span.Start != p.peek(n-1).Span.End {
			break
		}
		n++
	}
	eq := p.peek(n)
	hasEq := eq.Kind == token.EqualsToken && eq.Span.Start == p.peek(n-1).Span.End

	switch n {
	case 1:
		if hasEq {
			return 2, token.GreaterThanEqualsToken
		}
		return 1, token.GreaterThanToken
	case 2:
		if hasEq {
			return 3, token.GreaterThanGreaterThanEqualsToken
		}
		return 2, token.GreaterThanGreaterThanToken
	default:
		if hasEq {
			return 4, token.GreaterThanGreaterThanGreaterThanEqualsToken
		}
		return 3, token.GreaterThanGreaterThanGreaterThanToken
	}
}

// currentFused returns the current token as the parser sees it: a fused
// multi-'>' operator outside type-argument contexts, or the raw token
// otherwise. The returned token's Span covers only the first underlying
// token; callers that need the true span use advanceFused.
func (p *Parser) currentFused() token.Token {
	t := p.current()
	if t.Kind != token.GreaterThanToken || p.inTypeArgumentContext() {
		return t
	}
	_, kind := p.fusedGreaterThanWidth()
	t.Kind = kind
	return t
}

// atFusable reports whether the fused current token has kind k.
func (p *Parser) atFusable(k token.Kind) bool { return p.currentFused().Kind == k }

// advanceFused consumes the fused current token expecting kind k. If the
// current token isn't a GreaterThanToken run at all, or fusion doesn't
// produce k, it falls back to ordinary single-token advance so callers can
// still hit their own missing-token path.
func (p *Parser) advanceFused(k token.Kind) token.Token {
	if p.current().Kind != token.GreaterThanToken || p.inTypeArgumentContext() {
		return p.advance()
	}
	width, kind := p.fusedGreaterThanWidth()
	if kind != k {
		return p.advance()
	}
	first := p.current()
	last := first
	for i := 0; i < width; i++ {
		last = p.advance()
	}
	return token.Token{
		Kind:  kind,
		Flags: first.Flags | last.Flags,
		Span:  token.Span{Start: first.Span.Start, End: last.Span.End},
	}
}
