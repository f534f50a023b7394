package lexer

import (
	"github.com/aledsdavies/alchemy/diagnostics"
	"github.com/aledsdavies/alchemy/token"
	"github.com/aledsdavies/alchemy/unicodetbl"
)

func newTrivium(kind token.Kind, start, end int, diagAt int) token.Trivia {
	return token.Trivia{Kind: kind, Span: spanOf(start, end), DiagnosticAt: diagAt}
}

// scanTriviaRun consumes a maximal run of trivia (whitespace, newlines,
// comments) starting at the cursor and returns it as a flat slice, stopping
// at the first byte that cannot start a trivium or at EOF. Leading/trailing
// attachment is decided afterward by splitTrailingLeading. Grounded on
// original_source/Src/Parsing2/Scanning.cpp's ScanSingleLineComment and
// ScanMultiLineComment plus the newline handling of Tokenizer.cpp.
func (l *Lexer) scanTriviaRun() []token.Trivia {
	var out []token.Trivia
	for {
		if l.win.AtEnd() {
			return out
		}
		b := l.win.PeekByte(0)
		switch {
		case b == ' ' || b == '\t' || b == '\v' || b == '\f':
			start := l.win.Position()
			for {
				b2 := l.win.PeekByte(0)
				if b2 == ' ' || b2 == '\t' || b2 == '\v' || b2 == '\f' {
					l.win.Advance(1)
					continue
				}
				break
			}
			out = append(out, newTrivium(token.WhitespaceTrivia, start, l.win.Position(), -1))

		case b == '\r':
			start := l.win.Position()
			l.win.Advance(1)
			l.win.TryAdvance('\n')
			out = append(out, newTrivium(token.EndOfLineTrivia, start, l.win.Position(), -1))

		case b == '\n':
			start := l.win.Position()
			l.win.Advance(1)
			out = append(out, newTrivium(token.EndOfLineTrivia, start, l.win.Position(), -1))

		case b == '/' && l.win.PeekByte(1) == '/':
			start := l.win.Position()
			l.win.Advance(2)
			for {
				if l.win.AtEnd() {
					break
				}
				c := l.win.PeekByte(0)
				if c == '\r' || c == '\n' {
					break
				}
				l.win.Advance(1)
			}
			out = append(out, newTrivium(token.SingleLineCommentTrivia, start, l.win.Position(), -1))

		case b == '/' && l.win.PeekByte(1) == '*':
			start := l.win.Position()
			l.win.Advance(2)
			closed := false
			for !l.win.AtEnd() {
				if l.win.PeekByte(0) == '*' && l.win.PeekByte(1) == '/' {
					l.win.Advance(2)
					closed = true
					break
				}
				l.win.Advance(1)
			}
			diagAt := -1
			if !closed {
				l.sink.Report(diagnostics.ErrUnterminatedComment, start, l.win.Position(), "")
				diagAt = start
			}
			out = append(out, newTrivium(token.MultiLineCommentTrivia, start, l.win.Position(), diagAt))

		default:
			if r, width, ok := l.win.TryPeekCodepoint(); ok && width > 1 && unicodetbl.IsNewLine(r) {
				start := l.win.Position()
				l.win.Advance(width)
				out = append(out, newTrivium(token.EndOfLineTrivia, start, l.win.Position(), -1))
				continue
			}
			return out
		}
	}
}
