// Package alchemy is the public entry point for the Alchemy compiler front
// end: a streaming, Unicode-aware lexer and a hand-written recursive-descent
// parser that together turn source text into a syntax.Tree, degrading
// gracefully on malformed input via diagnostics rather than Go errors.
//
// Both Tokenize and ParseCompilationUnit are safe for concurrent use across
// independent calls: each call allocates its own arena, diagnostic sink, and
// lexer state, sharing nothing with any other in-flight call.
package alchemy

import (
	"github.com/aledsdavies/alchemy/diagnostics"
	"github.com/aledsdavies/alchemy/lexer"
	"github.com/aledsdavies/alchemy/parser"
	"github.com/aledsdavies/alchemy/syntax"
	"github.com/aledsdavies/alchemy/token"
)

// Option configures a Tokenize or ParseCompilationUnit call, following the
// teacher's functional-options shape (runtime/lexer/v2.LexerOpt).
type Option func(*Config)

// Config holds the resolved options for one lex/parse call.
type Config struct {
	debug      bool
	traceLevel int
}

// WithDebug sets the debug flag in Config. Tokenize and
// ParseCompilationUnit do not read it: no telemetry is collected and
// lex/parse behavior is unchanged.
func WithDebug() Option {
	return func(c *Config) { c.debug = true }
}

// WithTraceLevel sets the trace level in Config. Tokenize and
// ParseCompilationUnit do not read it, so no trace events are produced at
// any level.
func WithTraceLevel(level int) Option {
	return func(c *Config) { c.traceLevel = level }
}

func resolve(opts []Option) *Config {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Tokenize lexes source into a flat token array, attaching trivia (comments
// and whitespace) to the cold side-table rather than the hot token slice.
// Malformed input never causes an error return: unrecognized bytes become
// BadToken entries and the corresponding diagnostics are appended to the
// returned slice.
func Tokenize(source []byte, opts ...Option) ([]token.Token, []diagnostics.Diagnostic) {
	_ = resolve(opts)
	sink := diagnostics.NewSink()
	tokens, _ := lexer.Lex(source, sink)
	return tokens, sink.Items()
}

// ParseCompilationUnit lexes and parses a full source file into a
// syntax.Tree. Parse errors never surface as a Go error: they are reported
// as diagnostics against the returned tree, which is always non-nil and
// always spans the full input, padded with missing tokens where recovery
// could not find real ones.
func ParseCompilationUnit(source []byte, opts ...Option) (*syntax.Tree, []diagnostics.Diagnostic) {
	_ = resolve(opts)
	sink := diagnostics.NewSink()
	tokens, cold := lexer.Lex(source, sink)
	p := parser.New(tokens, cold, sink)
	root := p.ParseCompilationUnit()
	tree := &syntax.Tree{
		Source:      source,
		Tokens:      tokens,
		Cold:        cold,
		Root:        root,
		Diagnostics: sink.Items(),
	}
	return tree, tree.Diagnostics
}
