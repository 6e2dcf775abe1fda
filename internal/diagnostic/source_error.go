package diagnostic

import "go.redy.dev/internal/token"

// SourceError is the lightweight error value lexer/parser productions
// return; ToEntry promotes it into a full DiagnosticEntry with a
// single source-referencing label, per spec.md §7's propagation
// policy ("Lexer and parser produce SourceError, which can be
// converted into a DiagnosticEntry with a Line-marker label").
type SourceError struct {
	ID          ID
	Severity    Severity
	FileID      FileID
	Range       token.Range
	MarkerType  LabelMarkerType
	MessageKey  string
	Args        FormatArgs
	Annotations []Annotation
}

// ToEntry builds the single-label DiagnosticEntry this error implies.
func (e SourceError) ToEntry() Entry {
	b := NewEntryBuilder(e.Severity, e.ID).LabelRange(e.FileID, e.Range, e.MarkerType, e.MessageKey, e.Args)
	for _, a := range e.Annotations {
		b.Annotation(a.Severity, a.MessageTrKey, a.Args)
	}
	return b.Build()
}

// Error satisfies the error interface so SourceError can be used with
// errors.As/errors.Is in boundary code that doesn't care about
// rendering.
func (e SourceError) Error() string {
	return e.ID.String()
}
