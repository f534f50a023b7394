// Package token defines the lexical token vocabulary shared by the lexer
// and parser: token kinds, flags, and the literal values decoded for
// numeric/string/char literals.
package token

// Kind tags a token's lexical category. Reserved keywords get their own
// Kind (ClassKeyword, IfKeyword, ...); an identifier whose spelling matches
// a contextual keyword keeps Kind == IdentifierToken and instead carries a
// non-None ContextualKind (see Token.ContextualKind).
type Kind uint16

const (
	None Kind = iota

	// Structural / sentinel kinds.
	EndOfFileToken
	MissingToken // zero-width, synthesized during recovery
	OmittedToken // zero-width, intentionally-empty grammar slot (e.g. []<no size>)
	BadToken     // a single byte/codepoint that does not start any valid token

	// Trivia kinds. Never produced as a parser-visible token; only ever
	// attached to a real token's leading/trailing trivia list.
	WhitespaceTrivia
	EndOfLineTrivia
	SingleLineCommentTrivia
	MultiLineCommentTrivia
	SkippedTokensTrivia

	// Names and literals.
	IdentifierToken
	NumericLiteralToken
	CharacterLiteralToken
	StringLiteralToken          // simple (non-interpolated) string
	InterpolatedStringStart     // $"
	InterpolatedStringTextToken // a literal chunk inside an interpolated string
	InterpolatedStringEnd       // closing "
	InterpolationStart          // { opening an expression hole
	InterpolationEnd            // } closing an expression hole

	// Punctuation and operators. `>>`, `>>>` and their `=` variants are
	// deliberately absent: the lexer always emits separate `>` tokens
	// (spec.md §4.2, §4.9); the parser fuses them back together outside
	// type-argument contexts.
	PlusToken
	MinusToken
	AsteriskToken
	SlashToken
	PercentToken
	BangToken
	TildeToken
	AmpersandToken
	BarToken
	CaretToken
	AmpersandAmpersandToken
	BarBarToken
	PlusPlusToken
	MinusMinusToken
	EqualsToken
	EqualsEqualsToken
	ExclamationEqualsToken
	LessThanToken
	LessThanEqualsToken
	GreaterThanToken
	GreaterThanEqualsToken
	EqualsGreaterThanToken // =>
	QuestionQuestionToken  // ??
	QuestionQuestionEqualsToken
	QuestionToken
	ColonToken
	ColonColonToken
	SemicolonToken
	CommaToken
	DotToken
	DotDotToken // ..
	MinusGreaterThanToken
	OpenParenToken
	CloseParenToken
	OpenBraceToken
	CloseBraceToken
	OpenBracketToken
	CloseBracketToken
	PlusEqualsToken
	MinusEqualsToken
	AsteriskEqualsToken
	SlashEqualsToken
	PercentEqualsToken
	AmpersandEqualsToken
	BarEqualsToken
	CaretEqualsToken
	LessThanLessThanToken
	LessThanLessThanEqualsToken
	AtToken
	DollarToken

	// Synthetic fused kinds. The lexer never produces these (spec.md §4.2,
	// §4.9): it always emits separate GreaterThanToken runs so that nested
	// generics like List<Dict<K,V>> tokenize unambiguously. The expression
	// parser fuses adjacent, trivia-free '>' tokens into one of these on
	// the fly, outside type-argument contexts (see parser.currentFused).
	GreaterThanGreaterThanToken
	GreaterThanGreaterThanGreaterThanToken
	GreaterThanGreaterThanEqualsToken
	GreaterThanGreaterThanGreaterThanEqualsToken

	// Reserved keywords.
	NamespaceKeyword
	UsingKeyword
	StaticKeyword
	AliasKeyword
	ClassKeyword
	StructKeyword
	InterfaceKeyword
	EnumKeyword
	DelegateKeyword
	PublicKeyword
	PrivateKeyword
	ProtectedKeyword
	InternalKeyword
	ReadonlyKeyword
	ConstKeyword
	VirtualKeyword
	OverrideKeyword
	AbstractKeyword
	SealedKeyword
	NewKeyword
	ReturnKeyword
	IfKeyword
	ElseKeyword
	ForKeyword
	ForeachKeyword
	WhileKeyword
	DoKeyword
	InKeyword
	BreakKeyword
	ContinueKeyword
	GotoKeyword
	CaseKeyword
	DefaultKeyword
	SwitchKeyword
	TryKeyword
	CatchKeyword
	FinallyKeyword
	ThrowKeyword
	NullKeyword
	TrueKeyword
	FalseKeyword
	ThisKeyword
	BaseKeyword
	TypeofKeyword
	SizeofKeyword
	IsKeyword
	AsKeyword
	OutKeyword
	RefKeyword
	InKeywordParam // 'in' parameter modifier reuses InKeyword in practice; kept distinct for clarity of intent only
	VoidKeyword
	IntKeyword
	LongKeyword
	UIntKeyword
	ULongKeyword
	FloatKeyword
	DoubleKeyword
	BoolKeyword
	CharKeyword
	StringKeyword
	ObjectKeyword
	OperatorKeyword
	ImplicitKeyword
	ExplicitKeyword
	StackallocKeyword

	// Contextual keywords. Lexed as IdentifierToken; this Kind value is
	// only ever found in Token.ContextualKind, never Token.Kind.
	VarKeyword
	PartialKeyword
	WhereKeyword
	GetKeyword
	SetKeyword
	InitKeyword
	WhenKeyword
	WithKeyword
	RecordKeyword
	NameofKeyword
	UnmanagedKeyword
	AndKeyword
	OrKeyword
	NotKeyword

	kindCount
)

var kindNames = [...]string{
	None:                        "None",
	EndOfFileToken:               "EndOfFileToken",
	MissingToken:                 "MissingToken",
	OmittedToken:                 "OmittedToken",
	BadToken:                     "BadToken",
	WhitespaceTrivia:             "WhitespaceTrivia",
	EndOfLineTrivia:              "EndOfLineTrivia",
	SingleLineCommentTrivia:      "SingleLineCommentTrivia",
	MultiLineCommentTrivia:       "MultiLineCommentTrivia",
	SkippedTokensTrivia:          "SkippedTokensTrivia",
	IdentifierToken:              "IdentifierToken",
	NumericLiteralToken:          "NumericLiteralToken",
	CharacterLiteralToken:        "CharacterLiteralToken",
	StringLiteralToken:           "StringLiteralToken",
	InterpolatedStringStart:      "InterpolatedStringStart",
	InterpolatedStringTextToken:  "InterpolatedStringTextToken",
	InterpolatedStringEnd:        "InterpolatedStringEnd",
	InterpolationStart:           "InterpolationStart",
	InterpolationEnd:             "InterpolationEnd",
	PlusToken:                    "PlusToken",
	MinusToken:                   "MinusToken",
	AsteriskToken:                "AsteriskToken",
	SlashToken:                   "SlashToken",
	PercentToken:                 "PercentToken",
	BangToken:                    "BangToken",
	TildeToken:                   "TildeToken",
	AmpersandToken:               "AmpersandToken",
	BarToken:                     "BarToken",
	CaretToken:                   "CaretToken",
	AmpersandAmpersandToken:      "AmpersandAmpersandToken",
	BarBarToken:                  "BarBarToken",
	PlusPlusToken:                "PlusPlusToken",
	MinusMinusToken:              "MinusMinusToken",
	EqualsToken:                  "EqualsToken",
	EqualsEqualsToken:            "EqualsEqualsToken",
	ExclamationEqualsToken:       "ExclamationEqualsToken",
	LessThanToken:                "LessThanToken",
	LessThanEqualsToken:          "LessThanEqualsToken",
	GreaterThanToken:             "GreaterThanToken",
	GreaterThanEqualsToken:       "GreaterThanEqualsToken",
	EqualsGreaterThanToken:       "EqualsGreaterThanToken",
	QuestionQuestionToken:        "QuestionQuestionToken",
	QuestionQuestionEqualsToken:  "QuestionQuestionEqualsToken",
	QuestionToken:                "QuestionToken",
	ColonToken:                   "ColonToken",
	ColonColonToken:              "ColonColonToken",
	SemicolonToken:               "SemicolonToken",
	CommaToken:                   "CommaToken",
	DotToken:                     "DotToken",
	DotDotToken:                  "DotDotToken",
	MinusGreaterThanToken:        "MinusGreaterThanToken",
	OpenParenToken:               "OpenParenToken",
	CloseParenToken:              "CloseParenToken",
	OpenBraceToken:               "OpenBraceToken",
	CloseBraceToken:              "CloseBraceToken",
	OpenBracketToken:             "OpenBracketToken",
	CloseBracketToken:            "CloseBracketToken",
	PlusEqualsToken:              "PlusEqualsToken",
	MinusEqualsToken:             "MinusEqualsToken",
	AsteriskEqualsToken:          "AsteriskEqualsToken",
	SlashEqualsToken:             "SlashEqualsToken",
	PercentEqualsToken:           "PercentEqualsToken",
	AmpersandEqualsToken:         "AmpersandEqualsToken",
	BarEqualsToken:               "BarEqualsToken",
	CaretEqualsToken:             "CaretEqualsToken",
	LessThanLessThanToken:        "LessThanLessThanToken",
	LessThanLessThanEqualsToken:  "LessThanLessThanEqualsToken",
	AtToken:                      "AtToken",
	DollarToken:                  "DollarToken",
	GreaterThanGreaterThanToken:                 "GreaterThanGreaterThanToken",
	GreaterThanGreaterThanGreaterThanToken:       "GreaterThanGreaterThanGreaterThanToken",
	GreaterThanGreaterThanEqualsToken:           "GreaterThanGreaterThanEqualsToken",
	GreaterThanGreaterThanGreaterThanEqualsToken: "GreaterThanGreaterThanGreaterThanEqualsToken",
	NamespaceKeyword:             "NamespaceKeyword",
	UsingKeyword:                 "UsingKeyword",
	StaticKeyword:                "StaticKeyword",
	AliasKeyword:                 "AliasKeyword",
	ClassKeyword:                 "ClassKeyword",
	StructKeyword:                "StructKeyword",
	InterfaceKeyword:             "InterfaceKeyword",
	EnumKeyword:                  "EnumKeyword",
	DelegateKeyword:              "DelegateKeyword",
	PublicKeyword:                "PublicKeyword",
	PrivateKeyword:               "PrivateKeyword",
	ProtectedKeyword:             "ProtectedKeyword",
	InternalKeyword:              "InternalKeyword",
	ReadonlyKeyword:              "ReadonlyKeyword",
	ConstKeyword:                 "ConstKeyword",
	VirtualKeyword:               "VirtualKeyword",
	OverrideKeyword:              "OverrideKeyword",
	AbstractKeyword:              "AbstractKeyword",
	SealedKeyword:                "SealedKeyword",
	NewKeyword:                   "NewKeyword",
	ReturnKeyword:                "ReturnKeyword",
	IfKeyword:                    "IfKeyword",
	ElseKeyword:                  "ElseKeyword",
	ForKeyword:                   "ForKeyword",
	ForeachKeyword:               "ForeachKeyword",
	WhileKeyword:                 "WhileKeyword",
	DoKeyword:                    "DoKeyword",
	InKeyword:                    "InKeyword",
	BreakKeyword:                 "BreakKeyword",
	ContinueKeyword:              "ContinueKeyword",
	GotoKeyword:                  "GotoKeyword",
	CaseKeyword:                  "CaseKeyword",
	DefaultKeyword:               "DefaultKeyword",
	SwitchKeyword:                "SwitchKeyword",
	TryKeyword:                   "TryKeyword",
	CatchKeyword:                 "CatchKeyword",
	FinallyKeyword:               "FinallyKeyword",
	ThrowKeyword:                 "ThrowKeyword",
	NullKeyword:                  "NullKeyword",
	TrueKeyword:                  "TrueKeyword",
	FalseKeyword:                 "FalseKeyword",
	ThisKeyword:                  "ThisKeyword",
	BaseKeyword:                  "BaseKeyword",
	TypeofKeyword:                "TypeofKeyword",
	SizeofKeyword:                "SizeofKeyword",
	IsKeyword:                    "IsKeyword",
	AsKeyword:                    "AsKeyword",
	OutKeyword:                   "OutKeyword",
	RefKeyword:                   "RefKeyword",
	InKeywordParam:               "InKeywordParam",
	VoidKeyword:                  "VoidKeyword",
	IntKeyword:                   "IntKeyword",
	LongKeyword:                  "LongKeyword",
	UIntKeyword:                  "UIntKeyword",
	ULongKeyword:                 "ULongKeyword",
	FloatKeyword:                 "FloatKeyword",
	DoubleKeyword:                "DoubleKeyword",
	BoolKeyword:                  "BoolKeyword",
	CharKeyword:                  "CharKeyword",
	StringKeyword:                "StringKeyword",
	ObjectKeyword:                "ObjectKeyword",
	OperatorKeyword:              "OperatorKeyword",
	ImplicitKeyword:              "ImplicitKeyword",
	ExplicitKeyword:              "ExplicitKeyword",
	StackallocKeyword:            "StackallocKeyword",
	VarKeyword:                   "VarKeyword",
	PartialKeyword:               "PartialKeyword",
	WhereKeyword:                 "WhereKeyword",
	GetKeyword:                   "GetKeyword",
	SetKeyword:                   "SetKeyword",
	InitKeyword:                  "InitKeyword",
	WhenKeyword:                  "WhenKeyword",
	WithKeyword:                  "WithKeyword",
	RecordKeyword:                "RecordKeyword",
	NameofKeyword:                "NameofKeyword",
	UnmanagedKeyword:             "UnmanagedKeyword",
	AndKeyword:                   "AndKeyword",
	OrKeyword:                    "OrKeyword",
	NotKeyword:                   "NotKeyword",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsReservedKeyword reports whether k is always a keyword (never usable as
// a plain identifier).
func (k Kind) IsReservedKeyword() bool {
	return k >= NamespaceKeyword && k <= StackallocKeyword
}

// IsContextualKeyword reports whether k is only a keyword in specific
// grammar positions; elsewhere it is an ordinary identifier.
func (k Kind) IsContextualKeyword() bool {
	return k >= VarKeyword && k <= NotKeyword
}

// IsTrivia reports whether k is one of the trivia kinds.
func (k Kind) IsTrivia() bool {
	return k >= WhitespaceTrivia && k <= SkippedTokensTrivia
}
