// Package keyword maps an identifier's spelling to either "not a keyword",
// a reserved keyword, or a contextual keyword (spec.md §4.4).
//
// The real implementation (original_source/Src/Parsing2/MatchKeyword.generated.cpp)
// is a build-time-generated dispatch: a 16-bit hash of the first two bytes
// selects a bucket, a length switch narrows further, and a fixed-width
// memcmp confirms the remainder. Here the dispatch is simpler: a length
// bounds check rejects spellings shorter or longer than any keyword, then
// one Go map holds the reserved keywords and a second map holds the
// contextual ones. The whole thing is a pure
// function of (text); there is no runtime state, matching spec.md §4.4's
// "this is a build-time artifact; at runtime it is a pure function".
package keyword

import "github.com/aledsdavies/alchemy/token"

// Lookup classifies text (the spelling of an already-lexed identifier run)
// as either not a keyword (kind == token.IdentifierToken, contextual ==
// token.None), a reserved keyword (kind == the keyword's own Kind), or a
// contextual keyword (kind == token.IdentifierToken, contextual == the
// keyword's Kind).
func Lookup(text string) (kind token.Kind, contextual token.Kind) {
	if len(text) < minLen || len(text) > maxLen {
		return token.IdentifierToken, token.None
	}
	if k, ok := reserved[text]; ok {
		return k, token.None
	}
	if k, ok := contextualKw[text]; ok {
		return token.IdentifierToken, k
	}
	return token.IdentifierToken, token.None
}

// IsContextualKeyword reports whether text spells a contextual keyword.
func IsContextualKeyword(text string) bool {
	_, ok := contextualKw[text]
	return ok
}

const (
	minLen = 2 // shortest keyword: "as", "do", "if", "in", "is"
	maxLen = 10 // longest keyword: "stackalloc"
)

var reserved = map[string]token.Kind{
	"namespace":  token.NamespaceKeyword,
	"using":      token.UsingKeyword,
	"static":     token.StaticKeyword,
	"alias":      token.AliasKeyword,
	"class":      token.ClassKeyword,
	"struct":     token.StructKeyword,
	"interface":  token.InterfaceKeyword,
	"enum":       token.EnumKeyword,
	"delegate":   token.DelegateKeyword,
	"public":     token.PublicKeyword,
	"private":    token.PrivateKeyword,
	"protected":  token.ProtectedKeyword,
	"internal":   token.InternalKeyword,
	"readonly":   token.ReadonlyKeyword,
	"const":      token.ConstKeyword,
	"virtual":    token.VirtualKeyword,
	"override":   token.OverrideKeyword,
	"abstract":   token.AbstractKeyword,
	"sealed":     token.SealedKeyword,
	"new":        token.NewKeyword,
	"return":     token.ReturnKeyword,
	"if":         token.IfKeyword,
	"else":       token.ElseKeyword,
	"for":        token.ForKeyword,
	"foreach":    token.ForeachKeyword,
	"while":      token.WhileKeyword,
	"do":         token.DoKeyword,
	"in":         token.InKeyword,
	"break":      token.BreakKeyword,
	"continue":   token.ContinueKeyword,
	"goto":       token.GotoKeyword,
	"case":       token.CaseKeyword,
	"default":    token.DefaultKeyword,
	"switch":     token.SwitchKeyword,
	"try":        token.TryKeyword,
	"catch":      token.CatchKeyword,
	"finally":    token.FinallyKeyword,
	"throw":      token.ThrowKeyword,
	"null":       token.NullKeyword,
	"true":       token.TrueKeyword,
	"false":      token.FalseKeyword,
	"this":       token.ThisKeyword,
	"base":       token.BaseKeyword,
	"typeof":     token.TypeofKeyword,
	"sizeof":     token.SizeofKeyword,
	"is":         token.IsKeyword,
	"as":         token.AsKeyword,
	"out":        token.OutKeyword,
	"ref":        token.RefKeyword,
	"void":       token.VoidKeyword,
	"int":        token.IntKeyword,
	"long":       token.LongKeyword,
	"uint":       token.UIntKeyword,
	"ulong":      token.ULongKeyword,
	"float":      token.FloatKeyword,
	"double":     token.DoubleKeyword,
	"bool":       token.BoolKeyword,
	"char":       token.CharKeyword,
	"string":     token.StringKeyword,
	"object":     token.ObjectKeyword,
	"operator":   token.OperatorKeyword,
	"implicit":   token.ImplicitKeyword,
	"explicit":   token.ExplicitKeyword,
	"stackalloc": token.StackallocKeyword,
}

var contextualKw = map[string]token.Kind{
	"var":       token.VarKeyword,
	"partial":   token.PartialKeyword,
	"where":     token.WhereKeyword,
	"get":       token.GetKeyword,
	"set":       token.SetKeyword,
	"init":      token.InitKeyword,
	"when":      token.WhenKeyword,
	"with":      token.WithKeyword,
	"record":    token.RecordKeyword,
	"nameof":    token.NameofKeyword,
	"unmanaged": token.UnmanagedKeyword,
	"and":       token.AndKeyword,
	"or":        token.OrKeyword,
	"not":       token.NotKeyword,
}
