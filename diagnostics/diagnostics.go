// Package diagnostics accumulates structured, positioned compiler errors
// (spec.md §4.3, §6.4).
package diagnostics

import "fmt"

// Severity classifies a diagnostic.
type Severity uint8

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "error"
}

// Code is a stable identifier drawn from a closed enumeration (spec.md §6.4).
// New codes are appended; existing values never change meaning.
type Code uint16

const (
	NoCode Code = iota

	ErrUnterminatedComment
	ErrIllegalEscape
	ErrUnexpectedCharacter
	ErrInvalidReal
	ErrInvalidNumber
	ErrIntegerOverflow
	ErrUnderscoreDigitSeparator
	ErrUnterminatedString
	ErrEmptyCharacterLiteral
	ErrTooManyCharactersInLiteral

	ErrIdentifierExpected
	ErrCloseParenExpected
	ErrCloseBraceExpected
	ErrOpenBraceExpected
	ErrSemicolonExpected
	ErrExpectedForeachKeyword
	ErrInExpected
	ErrBadForeachDeclaration
	ErrDiscardInSwitch
	ErrTupleTooFewElements
	ErrTopLevelStatementAfterNamespaceOrType
	ErrElementIsRequired
	ErrInvalidMemberDeclaration
	ErrExpectedEndTry
	ErrUnexpectedDoubleColon
	ErrConstantExpected
	ErrTypeExpected
	ErrSyntaxError
	ErrTokenExpected
)

var codeNames = map[Code]string{
	NoCode:                                    "none",
	ErrUnterminatedComment:                    "unterminated comment",
	ErrIllegalEscape:                          "illegal escape",
	ErrUnexpectedCharacter:                    "unexpected character",
	ErrInvalidReal:                            "invalid real literal",
	ErrInvalidNumber:                          "invalid number",
	ErrIntegerOverflow:                        "integer overflow",
	ErrUnderscoreDigitSeparator:               "misplaced digit separator",
	ErrUnterminatedString:                     "unterminated string",
	ErrEmptyCharacterLiteral:                  "empty character literal",
	ErrTooManyCharactersInLiteral:             "too many characters in character literal",
	ErrIdentifierExpected:                     "identifier expected",
	ErrCloseParenExpected:                     "') ' expected",
	ErrCloseBraceExpected:                     "'}' expected",
	ErrOpenBraceExpected:                      "'{' expected",
	ErrSemicolonExpected:                      "';' expected",
	ErrExpectedForeachKeyword:                 "expected 'foreach' keyword",
	ErrInExpected:                             "'in' expected",
	ErrBadForeachDeclaration:                  "bad foreach declaration",
	ErrDiscardInSwitch:                        "discard pattern not allowed here",
	ErrTupleTooFewElements:                    "tuple must contain at least two elements",
	ErrTopLevelStatementAfterNamespaceOrType:  "top-level statements must precede namespace and type declarations",
	ErrElementIsRequired:                      "element is required",
	ErrInvalidMemberDeclaration:               "invalid member declaration",
	ErrExpectedEndTry:                         "expected 'catch' or 'finally'",
	ErrUnexpectedDoubleColon:                  "unexpected '::'",
	ErrConstantExpected:                       "constant value expected",
	ErrTypeExpected:                           "type expected",
	ErrSyntaxError:                            "invalid syntax",
	ErrTokenExpected:                          "token expected",
}

func (c Code) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return "unknown diagnostic"
}

// Diagnostic is a single positioned compiler message.
type Diagnostic struct {
	Code     Code
	Severity Severity
	Start    int // byte offset, inclusive
	End      int // byte offset, exclusive
	Arg      string // optional textual argument substituted into the message
	Note     string // optional supplementary note
}

func (d Diagnostic) Error() string {
	msg := d.Code.String()
	if d.Arg != "" {
		msg = fmt.Sprintf("%s: %s", msg, d.Arg)
	}
	return fmt.Sprintf("%s at [%d,%d): %s", d.Severity, d.Start, d.End, msg)
}

// Sink accumulates diagnostics for one compilation unit in insertion order,
// deduplicating by (code, start) so that a single syntactic problem never
// cascades into several reports (spec.md §4.3, §7).
type Sink struct {
	items []Diagnostic
	seen  map[dedupKey]bool
}

type dedupKey struct {
	code  Code
	start int
}

// NewSink returns an empty sink.
func NewSink() *Sink {
	return &Sink{seen: make(map[dedupKey]bool)}
}

// Add appends d unless an equivalent (code, start) diagnostic was already
// recorded. Returns true if it was added.
func (s *Sink) Add(d Diagnostic) bool {
	key := dedupKey{d.Code, d.Start}
	if s.seen[key] {
		return false
	}
	s.seen[key] = true
	s.items = append(s.items, d)
	return true
}

// Report is a convenience constructor + Add for the common Error-severity case.
func (s *Sink) Report(code Code, start, end int, arg string) bool {
	return s.Add(Diagnostic{Code: code, Severity: Error, Start: start, End: end, Arg: arg})
}

// Len returns the number of recorded diagnostics.
func (s *Sink) Len() int { return len(s.items) }

// Items returns the diagnostics recorded so far, in insertion order. The
// caller must not mutate the returned slice.
func (s *Sink) Items() []Diagnostic { return s.items }

// Mark is an opaque snapshot of sink state, used by reset points to discard
// diagnostics emitted during an abandoned speculative scan (spec.md §4.5).
type Mark int

// Snapshot returns the current length, to be passed to Restore later.
func (s *Sink) Snapshot() Mark { return Mark(len(s.items)) }

// Restore truncates the sink back to a prior Snapshot, undoing every
// diagnostic (and its dedup entry) added since. Restoring is a no-op if m
// is not smaller than the current length.
func (s *Sink) Restore(m Mark) {
	if int(m) >= len(s.items) {
		return
	}
	for _, d := range s.items[m:] {
		delete(s.seen, dedupKey{d.Code, d.Start})
	}
	s.items = s.items[:m]
}
