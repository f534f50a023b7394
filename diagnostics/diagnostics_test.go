package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "error", Error.String())
	assert.Equal(t, "warning", Warning.String())
}

func TestCodeStringKnownAndUnknown(t *testing.T) {
	assert.Equal(t, "identifier expected", ErrIdentifierExpected.String())
	assert.Equal(t, "unknown diagnostic", Code(9999).String())
}

func TestDiagnosticErrorFormatting(t *testing.T) {
	d := Diagnostic{Code: ErrTypeExpected, Severity: Error, Start: 3, End: 7}
	assert.Equal(t, "error at [3,7): type expected", d.Error())

	withArg := Diagnostic{Code: ErrIdentifierExpected, Severity: Error, Start: 0, End: 1, Arg: "foo"}
	assert.Equal(t, "error at [0,1): identifier expected: foo", withArg.Error())
}

func TestSinkAddDeduplicatesByCodeAndStart(t *testing.T) {
	s := NewSink()
	added := s.Add(Diagnostic{Code: ErrSemicolonExpected, Start: 5, End: 6})
	assert.True(t, added)
	require.Equal(t, 1, s.Len())

	// same code + start, different end/arg: still a duplicate
	added = s.Add(Diagnostic{Code: ErrSemicolonExpected, Start: 5, End: 9, Arg: "x"})
	assert.False(t, added)
	assert.Equal(t, 1, s.Len())

	// different start: not a duplicate
	added = s.Add(Diagnostic{Code: ErrSemicolonExpected, Start: 6, End: 7})
	assert.True(t, added)
	assert.Equal(t, 2, s.Len())
}

func TestSinkReport(t *testing.T) {
	s := NewSink()
	ok := s.Report(ErrTypeExpected, 1, 2, "int")
	require.True(t, ok)
	require.Len(t, s.Items(), 1)
	got := s.Items()[0]
	assert.Equal(t, ErrTypeExpected, got.Code)
	assert.Equal(t, Error, got.Severity)
	assert.Equal(t, "int", got.Arg)
}

func TestSinkSnapshotAndRestore(t *testing.T) {
	s := NewSink()
	s.Report(ErrSyntaxError, 0, 1, "")
	mark := s.Snapshot()

	s.Report(ErrTypeExpected, 2, 3, "")
	s.Report(ErrConstantExpected, 4, 5, "")
	require.Equal(t, 3, s.Len())

	s.Restore(mark)
	assert.Equal(t, 1, s.Len(), "Restore must discard everything added since the snapshot")

	// diagnostics discarded by Restore must be re-addable (dedup entries undone too)
	added := s.Report(ErrTypeExpected, 2, 3, "")
	assert.True(t, added)
	assert.Equal(t, 2, s.Len())
}

func TestSinkRestoreToCurrentOrLaterMarkIsNoop(t *testing.T) {
	s := NewSink()
	s.Report(ErrSyntaxError, 0, 1, "")
	mark := s.Snapshot()
	s.Restore(mark)
	assert.Equal(t, 1, s.Len())

	s.Restore(Mark(int(mark) + 50))
	assert.Equal(t, 1, s.Len())
}
