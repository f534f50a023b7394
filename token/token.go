package token

// ID uniquely identifies a token within a compilation unit. IDs are dense,
// start at zero, and are assigned in source order; they stay stable for the
// life of the tree (spec.md §3.3).
type ID uint32

// Position is a byte offset into the source buffer.
type Position uint32

// Span is a half-open byte range [Start, End) into the source buffer.
type Span struct {
	Start Position
	End   Position
}

func (s Span) Len() int { return int(s.End - s.Start) }

// Flags records boolean facts about a token that the parser and its
// consumers need without touching cold data.
type Flags uint8

const (
	FlagMissing          Flags = 1 << iota // zero-width, synthesized by recovery
	FlagContainsError                      // this token or its trivia carries a diagnostic
	FlagHasLeadingTrivia                   // non-empty leading trivia run
	FlagHasTrailingTrivia                  // non-empty trailing trivia run
	FlagOmitted                            // intentionally-empty grammar slot
	FlagHasSpaceBefore                     // leading trivia contains at least one space/tab
)

func (f Flags) Has(bit Flags) bool { return f&bit != 0 }

// LiteralKind tags the decoded value carried by a literal token.
type LiteralKind uint8

const (
	LiteralNone LiteralKind = iota
	LiteralBool
	LiteralChar
	LiteralI32
	LiteralI64
	LiteralU32
	LiteralU64
	LiteralF32
	LiteralF64
	LiteralStringChunk
)

// LiteralValue is the decoded payload of a numeric/char/string/bool literal.
// Exactly one field is meaningful, selected by Kind.
type LiteralValue struct {
	Kind LiteralKind
	I    uint64 // i32/i64/u32/u64 bit pattern
	F    float64
	B    bool
	Str  string // decoded char/string-chunk content (escapes already processed)
}

// Token is the "hot" fixed-size record: everything the parser needs in O(1)
// without touching cold data (spec.md §3.1). Text, trivia, and diagnostics
// live in the parallel cold arrays the Lexer returns alongside Tokens.
type Token struct {
	ID             ID
	Kind           Kind
	ContextualKind Kind // None unless Kind == IdentifierToken and the spelling matches a contextual keyword
	Flags          Flags
	Span           Span
}

func (t Token) IsMissing() bool  { return t.Flags.Has(FlagMissing) }
func (t Token) IsOmitted() bool  { return t.Flags.Has(FlagOmitted) }
func (t Token) ContainsError() bool { return t.Flags.Has(FlagContainsError) }

// Trivia is a single leading/trailing trivium: whitespace, a newline run, a
// comment, or a skipped-token run. Kind is one of the *Trivia kinds.
type Trivia struct {
	Kind        Kind
	Span        Span
	IsTrailing  bool // true if this trivium trails the token it is attached to
	DiagnosticAt int  // index into the sink for a diagnostic anchored here, or -1
}

// Cold is the out-of-band data for a token: its attached trivia and, for
// literals, the decoded value. Indexed by Token.ID via Lexer.Cold(id).
type Cold struct {
	Leading  []Trivia
	Trailing []Trivia
	Literal  LiteralValue
}
