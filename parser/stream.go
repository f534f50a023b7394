package parser

import (
	"github.com/aledsdavies/alchemy/diagnostics"
	"github.com/aledsdavies/alchemy/token"
)

// stream is a cursor over the lexer's flat token array (spec.md §4.5). Its
// methods never mutate the underlying arrays (only the parser's
// skipBadTokens writes to them, adding a skipped-token run to the token
// that ends it); advancing is just incrementing pos, which is what makes a
// reset point an O(1) integer snapshot.
type stream struct {
	tokens []token.Token
	cold   []token.Cold
	pos    int
}

func newStream(tokens []token.Token, cold []token.Cold) *stream {
	return &stream{tokens: tokens, cold: cold}
}

// current returns the token at the cursor, or the final EOF token if pos has
// run past the end (it never does in practice, since EOF is never consumed
// past, but this keeps Current total).
func (s *stream) Current() token.Token {
	if s.pos >= len(s.tokens) {
		return s.tokens[len(s.tokens)-1]
	}
	return s.tokens[s.pos]
}

// Peek returns the token k positions ahead of the cursor (Peek(0) ==
// Current()), clamped to the final EOF token.
func (s *stream) Peek(k int) token.Token {
	i := s.pos + k
	if i < 0 {
		i = 0
	}
	if i >= len(s.tokens) {
		i = len(s.tokens) - 1
	}
	return s.tokens[i]
}

// Cold returns the trivia/literal data for a token id.
func (s *stream) Cold(id token.ID) token.Cold { return s.cold[id] }

// advance moves the cursor one token forward, unless already at EOF.
func (s *stream) advance() {
	if s.Current().Kind != token.EndOfFileToken {
		s.pos++
	}
}

// pos/setPos back the parser's reset points.
func (s *stream) position() int    { return s.pos }
func (s *stream) setPosition(p int) { s.pos = p }

// resetPoint is an atomic snapshot of everything a speculative parse must
// roll back: the stream cursor, the diagnostic count, and the node arena's
// high-water mark (spec.md §4.5, §8: "restores cursor, diagnostic count, and
// arena high-water mark exactly").
type resetPoint struct {
	pos      int
	diagMark diagnostics.Mark
	nodeMark int
}
