// Package lexer is the Unicode-aware streaming tokenizer (spec.md §4.2): it
// turns a source buffer into a token array with attached trivia and decoded
// literal values, plus a diagnostic list. Grounded on the structure of the
// teacher's runtime/lexer/v2.Lexer (a single-pass byte cursor driving
// NextToken, configured by functional options) and on the exact lexical
// semantics of original_source/Src/Parsing2/Tokenizer.cpp and Scanning.cpp.
package lexer

import (
	"bytes"

	"github.com/aledsdavies/alchemy/diagnostics"
	"github.com/aledsdavies/alchemy/keyword"
	"github.com/aledsdavies/alchemy/textwindow"
	"github.com/aledsdavies/alchemy/token"
	"github.com/aledsdavies/alchemy/unicodetbl"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// stringMode is one state of the interpolated-string scanning machine
// (spec.md §4.10).
type stringMode uint8

const (
	modeNormal stringMode = iota
	modeInterpolatedChunk
	modeInterpolationExpr
)

// frame is one entry of the lexer's mode stack. quote is the delimiter the
// enclosing string literal started with; exprDepth tracks unmatched
// (/[/{ nesting inside an interpolation hole, so that the hole's closing
// '}' can be told apart from a brace nested in e.g. `{ new P{X=1} }`.
type frame struct {
	mode      stringMode
	quote     byte
	exprDepth int
}

// Lexer turns a source buffer into a flat, EOF-terminated token array.
type Lexer struct {
	win   *textwindow.Window
	src   []byte
	sink  *diagnostics.Sink
	stack []frame

	tokens []token.Token
	cold   []token.Cold
}

// New creates a Lexer over source, reporting diagnostics to sink.
func New(source []byte, sink *diagnostics.Sink) *Lexer {
	return &Lexer{win: textwindow.New(source), src: source, sink: sink, stack: []frame{{mode: modeNormal}}}
}

func (l *Lexer) top() *frame { return &l.stack[len(l.stack)-1] }
func (l *Lexer) push(f frame) { l.stack = append(l.stack, f) }
func (l *Lexer) pop() {
	if len(l.stack) > 1 {
		l.stack = l.stack[:len(l.stack)-1]
	}
}

func spanOf(start, end int) token.Span { return token.Span{Start: token.Position(start), End: token.Position(end)} }

// Lex runs the lexer to completion and returns the token array (always
// ending in an EndOfFileToken, spec.md §4.2 Contract) alongside the cold
// data for each token, indexed in parallel by token.ID.
func Lex(source []byte, sink *diagnostics.Sink) ([]token.Token, []token.Cold) {
	l := New(source, sink)
	if bytes.HasPrefix(source, utf8BOM) {
		l.win.Advance(len(utf8BOM))
	}

	leading := l.scanTriviaRun()
	var id token.ID
	for {
		tok, lit := l.scanOne(id)

		var trailing, nextLeading []token.Trivia
		if tok.Kind == token.EndOfFileToken || l.top().mode == modeInterpolatedChunk {
			trailing = nil
		} else {
			run := l.scanTriviaRun()
			trailing, nextLeading = splitTrailingLeading(run)
		}

		cold := token.Cold{Leading: leading, Trailing: trailing, Literal: lit}
		if len(leading) > 0 {
			tok.Flags |= token.FlagHasLeadingTrivia
		}
		if len(trailing) > 0 {
			tok.Flags |= token.FlagHasTrailingTrivia
		}
		if triviaHasSpace(leading) {
			tok.Flags |= token.FlagHasSpaceBefore
		}
		if triviaHasError(leading) || triviaHasError(trailing) {
			tok.Flags |= token.FlagContainsError
		}
		tok.ID = id
		l.tokens = append(l.tokens, tok)
		l.cold = append(l.cold, cold)

		if tok.Kind == token.EndOfFileToken {
			break
		}
		leading = nextLeading
		id++
	}
	return l.tokens, l.cold
}

func triviaHasSpace(run []token.Trivia) bool {
	for _, t := range run {
		if t.Kind == token.WhitespaceTrivia || t.Kind == token.EndOfLineTrivia {
			return true
		}
	}
	return false
}

func triviaHasError(run []token.Trivia) bool {
	for _, t := range run {
		if t.DiagnosticAt >= 0 {
			return true
		}
	}
	return false
}

// splitTrailingLeading implements spec.md §4.2's trivia-attachment rule:
// trailing trivia of the previous token runs up to, but not past, the next
// EndOfLineTrivia; that trivium and everything after it becomes the next
// token's leading trivia. If no newline appears in the run at all, the
// whole run is trailing.
func splitTrailingLeading(run []token.Trivia) (trailing, leading []token.Trivia) {
	for i, t := range run {
		if t.Kind == token.EndOfLineTrivia {
			return run[:i], run[i:]
		}
	}
	return run, nil
}

// scanOne scans exactly one non-trivia token (or EOF) starting at the
// cursor, dispatching on the current mode.
func (l *Lexer) scanOne(id token.ID) (token.Token, token.LiteralValue) {
	if l.top().mode == modeInterpolatedChunk {
		return l.lexStringBody()
	}
	return l.lexNormal(id)
}

func (l *Lexer) lexNormal(id token.ID) (token.Token, token.LiteralValue) {
	if l.win.AtEnd() {
		if l.top().mode == modeInterpolationExpr {
			// Unterminated interpolation: fall back to treating EOF as the
			// end of everything; the outer string scan already reported it.
			l.pop()
		}
		return token.Token{Kind: token.EndOfFileToken, Span: spanOf(l.win.Position(), l.win.Position())}, token.LiteralValue{}
	}

	start := l.win.Position()
	r, width, ok := l.win.TryPeekCodepoint()
	if !ok {
		l.win.Advance(1)
		l.sink.Report(diagnostics.ErrUnexpectedCharacter, start, start+1, "")
		return l.bad(start), token.LiteralValue{}
	}

	switch {
	case unicodetbl.IsIdentifierStart(r):
		return l.lexIdentifierOrKeyword(start)
	case unicodetbl.IsDigit(r):
		return l.lexNumericLiteral(start)
	case r == '.' && unicodetbl.IsDigit(peekRuneAfter(l.win, width)):
		return l.lexNumericLiteral(start)
	case r == '"':
		return l.lexSimpleOrInterpolatedStart(start, false)
	case r == '\'':
		return l.lexCharacterLiteral(start)
	case r == '$' && l.win.PeekByte(width) == '"':
		l.win.Advance(width)
		return l.lexSimpleOrInterpolatedStart(start, true)
	}

	if l.top().mode == modeInterpolationExpr {
		switch r {
		case '(', '[':
			l.top().exprDepth++
		case ')', ']':
			l.top().exprDepth--
		case '{':
			l.top().exprDepth++
		case '}':
			if l.top().exprDepth == 0 {
				l.win.Advance(width)
				l.pop()
				return token.Token{Kind: token.InterpolationEnd, Span: spanOf(start, l.win.Position())}, token.LiteralValue{}
			}
			l.top().exprDepth--
		}
	}

	return l.lexPunctuation(start, r, width)
}

func (l *Lexer) bad(start int) token.Token {
	return token.Token{Kind: token.BadToken, Flags: token.FlagContainsError, Span: spanOf(start, l.win.Position())}
}

func peekRuneAfter(w *textwindow.Window, width int) rune {
	save := w.Position()
	w.Advance(width)
	r, _, ok := w.TryPeekCodepoint()
	w.Reset(save)
	if !ok {
		return 0
	}
	return r
}

func (l *Lexer) lexIdentifierOrKeyword(start int) (token.Token, token.LiteralValue) {
	for {
		r, width, ok := l.win.TryPeekCodepoint()
		if !ok || !unicodetbl.IsIdentifierPart(r) {
			break
		}
		l.win.Advance(width)
	}
	text := string(l.src[start:l.win.Position()])
	kind, contextual := keyword.Lookup(text)
	tok := token.Token{Kind: kind, ContextualKind: contextual, Span: spanOf(start, l.win.Position())}
	if kind == token.TrueKeyword || kind == token.FalseKeyword {
		return tok, token.LiteralValue{Kind: token.LiteralBool, B: kind == token.TrueKeyword}
	}
	if kind == token.IdentifierToken {
		// Keeps the exact spelling available to the parser without a
		// source-buffer dependency — used to recognize the "_" discard and
		// for diagnostic arguments (spec.md §4.4).
		return tok, token.LiteralValue{Kind: token.LiteralStringChunk, Str: text}
	}
	return tok, token.LiteralValue{}
}
