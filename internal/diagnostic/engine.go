package diagnostic

import (
	"go.redy.dev/internal/i18n"
	"go.redy.dev/internal/unicode/utf8"
)

// FileResolver is the subset of *utf8.FileManager the engine needs to
// render source snippets: a name and line lookup keyed by FileID. An
// interface here (rather than a direct *utf8.FileManager dependency)
// keeps the engine usable against any manager-shaped store, including
// one that has since unloaded a file's content but still remembers its
// name.
type FileResolver interface {
	Name(id FileID) (string, bool)
	Line(id FileID, lineNo int) ([]byte, error)
}

// managerResolver adapts *utf8.FileManager to FileResolver.
type managerResolver struct{ m *utf8.FileManager }

func (r managerResolver) Name(id FileID) (string, bool) {
	f, err := r.m.File(utf8.FileId(id))
	if err != nil {
		return "", false
	}
	return f.Name(), true
}

func (r managerResolver) Line(id FileID, lineNo int) ([]byte, error) {
	return r.m.Line(utf8.FileId(id), lineNo)
}

// NewFileResolver adapts a *utf8.FileManager into a FileResolver.
func NewFileResolver(m *utf8.FileManager) FileResolver { return managerResolver{m: m} }

// Engine owns a queue of entries produced by the lexer, parser and
// resolver, and renders them to text on demand. It holds no references
// into source text, only FileIDs, so entries are safe to retain across
// an unload as long as the file's slot still exists.
type Engine struct {
	entries    []Entry
	files      FileResolver
	translator *i18n.Translator
}

// NewEngine returns an Engine that renders against files using
// translator for message text.
func NewEngine(files FileResolver, translator *i18n.Translator) *Engine {
	return &Engine{files: files, translator: translator}
}

// Push appends entry to the queue.
func (e *Engine) Push(entry Entry) { e.entries = append(e.entries, entry) }

// Len reports how many entries are queued.
func (e *Engine) Len() int { return len(e.entries) }

// Clear discards all queued entries without rendering them.
func (e *Engine) Clear() { e.entries = nil }

// PopAndClear renders every queued entry and empties the queue.
// Total/pure w.r.t. engine state: calling it twice in a row without an
// intervening Push returns "" the second time (P8).
func (e *Engine) PopAndClear() string {
	out := e.FormatBatch()
	e.Clear()
	return out
}

// FormatBatchAndClear is an alias for PopAndClear matching spec.md's
// naming.
func (e *Engine) FormatBatchAndClear() string { return e.PopAndClear() }

// FormatBatch renders every queued entry without clearing the queue.
func (e *Engine) FormatBatch() string {
	var out []byte
	for _, entry := range e.entries {
		out = append(out, e.formatEntry(entry)...)
	}
	return string(out)
}
