package lexer

import (
	"testing"

	"github.com/aledsdavies/alchemy/diagnostics"
	"github.com/aledsdavies/alchemy/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexAll(t *testing.T, src string) ([]token.Token, []token.Cold, *diagnostics.Sink) {
	t.Helper()
	sink := diagnostics.NewSink()
	toks, cold := Lex([]byte(src), sink)
	return toks, cold, sink
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tk := range toks {
		out[i] = tk.Kind
	}
	return out
}

func TestLexAlwaysEndsInEOF(t *testing.T) {
	toks, _, sink := lexAll(t, "")
	require.NotEmpty(t, toks)
	assert.Equal(t, token.EndOfFileToken, toks[len(toks)-1].Kind)
	assert.Equal(t, 0, sink.Len())
}

func TestLexSkipsBOM(t *testing.T) {
	src := string(utf8BOM) + "x"
	toks, _, _ := lexAll(t, src)
	require.GreaterOrEqual(t, len(toks), 2)
	assert.Equal(t, token.IdentifierToken, toks[0].Kind)
	assert.Equal(t, token.Position(3), toks[0].Span.Start, "BOM bytes must not be part of the first token's span")
}

func TestLexIdentifierAndKeyword(t *testing.T) {
	toks, _, _ := lexAll(t, "class foo")
	ids := kinds(toks)
	assert.Equal(t, []token.Kind{token.ClassKeyword, token.IdentifierToken, token.EndOfFileToken}, ids)
}

func TestLexContextualKeywordKeepsIdentifierKind(t *testing.T) {
	toks, _, _ := lexAll(t, "where")
	require.Len(t, toks, 2)
	assert.Equal(t, token.IdentifierToken, toks[0].Kind)
	assert.Equal(t, token.WhereKeyword, toks[0].ContextualKind)
}

func TestLexBoolLiteralsDecodeValue(t *testing.T) {
	toks, cold, _ := lexAll(t, "true false")
	require.Len(t, toks, 3)
	assert.True(t, cold[0].Literal.B)
	assert.False(t, cold[1].Literal.B)
}

func TestLexIntegerLiteralPicksSmallestFittingKind(t *testing.T) {
	toks, cold, sink := lexAll(t, "42")
	require.Len(t, toks, 2)
	assert.Equal(t, token.NumericLiteralToken, toks[0].Kind)
	assert.Equal(t, token.LiteralI32, cold[0].Literal.Kind)
	assert.Equal(t, uint64(42), cold[0].Literal.I)
	assert.Equal(t, 0, sink.Len())
}

func TestLexHexAndBinaryLiterals(t *testing.T) {
	toks, cold, _ := lexAll(t, "0xFF 0b101")
	require.Len(t, toks, 3)
	assert.Equal(t, uint64(255), cold[0].Literal.I)
	assert.Equal(t, uint64(5), cold[1].Literal.I)
}

func TestLexRealLiteralWithExponent(t *testing.T) {
	toks, cold, _ := lexAll(t, "1.5e2")
	require.Len(t, toks, 2)
	assert.Equal(t, token.LiteralF64, cold[0].Literal.Kind)
	assert.Equal(t, 150.0, cold[0].Literal.F)
}

func TestLexNumericLiteralWithDigitSeparators(t *testing.T) {
	toks, cold, sink := lexAll(t, "1_000_000")
	require.Len(t, toks, 2)
	assert.Equal(t, uint64(1000000), cold[0].Literal.I)
	assert.Equal(t, 0, sink.Len())
}

func TestLexMisplacedDigitSeparatorReportsButStillProducesToken(t *testing.T) {
	toks, _, sink := lexAll(t, "1_")
	require.Len(t, toks, 2)
	assert.Equal(t, token.NumericLiteralToken, toks[0].Kind)
	assert.Equal(t, 1, sink.Len())
	assert.Equal(t, diagnostics.ErrUnderscoreDigitSeparator, sink.Items()[0].Code)
}

func TestLexIntegerOverflowReportsAndSubstitutesZero(t *testing.T) {
	toks, cold, sink := lexAll(t, "99999999999999999999")
	require.Len(t, toks, 2)
	assert.Equal(t, 1, sink.Len())
	assert.Equal(t, diagnostics.ErrIntegerOverflow, sink.Items()[0].Code)
	assert.Equal(t, token.LiteralI32, cold[0].Literal.Kind)
}

func TestLexSimpleStringLiteral(t *testing.T) {
	toks, cold, sink := lexAll(t, `"hello\nworld"`)
	require.Len(t, toks, 2)
	assert.Equal(t, token.StringLiteralToken, toks[0].Kind)
	assert.Equal(t, "hello\nworld", cold[0].Literal.Str)
	assert.Equal(t, 0, sink.Len())
}

func TestLexUnterminatedStringReportsDiagnostic(t *testing.T) {
	toks, _, sink := lexAll(t, `"oops`)
	require.Len(t, toks, 2)
	assert.Equal(t, token.StringLiteralToken, toks[0].Kind)
	require.Equal(t, 1, sink.Len())
	assert.Equal(t, diagnostics.ErrUnterminatedString, sink.Items()[0].Code)
}

func TestLexCharacterLiteral(t *testing.T) {
	toks, cold, sink := lexAll(t, `'a'`)
	require.Len(t, toks, 2)
	assert.Equal(t, token.CharacterLiteralToken, toks[0].Kind)
	assert.Equal(t, uint64('a'), cold[0].Literal.I)
	assert.Equal(t, 0, sink.Len())
}

func TestLexEmptyCharacterLiteralReportsDiagnostic(t *testing.T) {
	toks, _, sink := lexAll(t, `''`)
	require.Len(t, toks, 2)
	require.Equal(t, 1, sink.Len())
	assert.Equal(t, diagnostics.ErrEmptyCharacterLiteral, sink.Items()[0].Code)
}

func TestLexTooManyCharactersInLiteralReportsDiagnostic(t *testing.T) {
	toks, _, sink := lexAll(t, `'ab'`)
	require.Len(t, toks, 2)
	require.Equal(t, 1, sink.Len())
	assert.Equal(t, diagnostics.ErrTooManyCharactersInLiteral, sink.Items()[0].Code)
}

func TestLexInterpolatedStringProducesHoleTokens(t *testing.T) {
	toks, _, sink := lexAll(t, `$"a{x}b"`)
	ids := kinds(toks)
	assert.Equal(t, []token.Kind{
		token.InterpolatedStringStart,
		token.InterpolatedStringTextToken,
		token.InterpolationStart,
		token.IdentifierToken,
		token.InterpolationEnd,
		token.InterpolatedStringTextToken,
		token.InterpolatedStringEnd,
		token.EndOfFileToken,
	}, ids)
	assert.Equal(t, 0, sink.Len())
}

func TestLexInterpolatedStringEscapedBraces(t *testing.T) {
	toks, cold, _ := lexAll(t, `$"{{literal}}"`)
	require.GreaterOrEqual(t, len(toks), 2)
	assert.Equal(t, token.InterpolatedStringStart, toks[0].Kind)
	assert.Equal(t, token.InterpolatedStringTextToken, toks[1].Kind)
	assert.Contains(t, cold[1].Literal.Str, "{")
}

func TestLexPunctuationLongestMatchFirst(t *testing.T) {
	toks, _, _ := lexAll(t, "<<= << <= < ?? ??= -> =>")
	assert.Equal(t, []token.Kind{
		token.LessThanLessThanEqualsToken,
		token.LessThanLessThanToken,
		token.LessThanEqualsToken,
		token.LessThanToken,
		token.QuestionQuestionToken,
		token.QuestionQuestionEqualsToken,
		token.MinusGreaterThanToken,
		token.EqualsGreaterThanToken,
		token.EndOfFileToken,
	}, kinds(toks))
}

func TestLexGreaterThanNeverFused(t *testing.T) {
	toks, _, _ := lexAll(t, ">>>=")
	ids := kinds(toks)
	// the lexer always emits separate '>' tokens (and a separate '='); fusion
	// is the parser's job
	assert.Equal(t, []token.Kind{
		token.GreaterThanToken,
		token.GreaterThanToken,
		token.GreaterThanToken,
		token.EqualsToken,
		token.EndOfFileToken,
	}, ids)
}

func TestLexUnexpectedCharacterProducesBadToken(t *testing.T) {
	toks, _, sink := lexAll(t, "\x01")
	require.Len(t, toks, 2)
	assert.Equal(t, token.BadToken, toks[0].Kind)
	assert.True(t, toks[0].ContainsError())
	require.Equal(t, 1, sink.Len())
	assert.Equal(t, diagnostics.ErrUnexpectedCharacter, sink.Items()[0].Code)
}

func TestLexTriviaAttachmentSplitsAtNewline(t *testing.T) {
	// "a  b" -> trailing trivia of 'a' is the space run; "a\n  b" -> the
	// newline moves everything from it onward to 'b's leading trivia.
	_, cold, _ := lexAll(t, "a  b")
	assert.NotEmpty(t, cold[0].Trailing)
	assert.Empty(t, cold[0].Leading)

	_, cold2, _ := lexAll(t, "a\n  b")
	assert.Empty(t, cold2[0].Trailing, "trivia from the newline onward must not trail the prior token")
	assert.NotEmpty(t, cold2[1].Leading)
}

func TestLexFlagsReflectTrivia(t *testing.T) {
	toks, _, _ := lexAll(t, "a \n b")
	assert.True(t, toks[0].Flags.Has(token.FlagHasTrailingTrivia))
	assert.True(t, toks[1].Flags.Has(token.FlagHasLeadingTrivia))
	assert.True(t, toks[1].Flags.Has(token.FlagHasSpaceBefore))
}
