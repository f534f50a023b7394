package lexer

import (
	"testing"

	"github.com/aledsdavies/alchemy/diagnostics"
	"github.com/aledsdavies/alchemy/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexSingleLineComment(t *testing.T) {
	_, cold, sink := lexAll(t, "a // trailing comment\nb")
	require.Len(t, cold[0].Trailing, 2)
	assert.Equal(t, token.SingleLineCommentTrivia, cold[0].Trailing[1].Kind)
	assert.Equal(t, 0, sink.Len())
}

func TestLexMultiLineComment(t *testing.T) {
	toks, cold, sink := lexAll(t, "/* c */a")
	require.Len(t, toks, 2)
	require.NotEmpty(t, cold[0].Leading)
	assert.Equal(t, token.MultiLineCommentTrivia, cold[0].Leading[0].Kind)
	assert.Equal(t, 0, sink.Len())
}

func TestLexUnterminatedMultiLineCommentReportsDiagnostic(t *testing.T) {
	_, cold, sink := lexAll(t, "/* unterminated")
	require.NotEmpty(t, cold[0].Leading)
	require.Equal(t, 1, sink.Len())
	assert.Equal(t, diagnostics.ErrUnterminatedComment, sink.Items()[0].Code)
	assert.True(t, cold[0].Leading[0].DiagnosticAt >= 0)
	assert.True(t, toksContainError(cold))
}

func toksContainError(cold []token.Cold) bool {
	for _, c := range cold {
		for _, tr := range c.Leading {
			if tr.DiagnosticAt >= 0 {
				return true
			}
		}
	}
	return false
}

func TestLexCRLFIsSingleEndOfLineTrivium(t *testing.T) {
	_, cold, _ := lexAll(t, "a\r\nb")
	require.NotEmpty(t, cold[1].Leading)
	assert.Equal(t, token.EndOfLineTrivia, cold[1].Leading[0].Kind)
	assert.Equal(t, 2, cold[1].Leading[0].Span.Len(), "\\r\\n collapses into one trivium spanning both bytes")
}
