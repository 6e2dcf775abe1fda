package utf8

import (
	"errors"
	"fmt"
)

// ErrFileNotLoaded is returned by File/Line when the requested slot's
// content is not currently resident.
var ErrFileNotLoaded = errors.New("utf8: file not loaded")

// FileManager owns a growable, append-only list of File records and
// hands out stable FileId values. It is not safe to share a single
// FileManager across concurrent compilations of different files; a
// driver that parallelizes per-file work gives each worker its own
// manager (spec.md §5).
type FileManager struct {
	files         []File
	virtualSerial uint32
}

// NewFileManager returns an empty manager.
func NewFileManager() *FileManager {
	return &FileManager{}
}

// RegisterFile allocates a slot for a real, on-disk file without
// loading its content. name must be non-empty.
func (m *FileManager) RegisterFile(name string) (FileId, error) {
	if name == "" {
		return InvalidFileId, errors.New("utf8: register_file requires a non-empty name")
	}
	return m.append(File{name: name, status: StatusNotLoaded}), nil
}

// RegisterLoaded allocates a slot whose content is supplied directly by
// the caller, building the line-end index immediately.
func (m *FileManager) RegisterLoaded(name string, content []byte) FileId {
	f := File{name: name, content: content}
	f.init()
	return m.append(f)
}

// RegisterVirtual synthesizes a unique name of the form
// "virtual_file_<N>.ry" and registers bytes under it.
func (m *FileManager) RegisterVirtual(content []byte) FileId {
	name := fmt.Sprintf("virtual_file_%d.ry", m.virtualSerial)
	m.virtualSerial++
	return m.RegisterLoaded(name, content)
}

func (m *FileManager) append(f File) FileId {
	id := FileId(len(m.files))
	m.files = append(m.files, f)
	return id
}

// Load reads a registered-but-unloaded file from disk. Idempotent: a
// file already loaded is left untouched.
func (m *FileManager) Load(id FileId) error {
	f, err := m.slot(id)
	if err != nil {
		return err
	}
	if f.status == StatusLoaded {
		return nil
	}
	content, err := readFromDisk(f.name)
	if err != nil {
		return fmt.Errorf("utf8: load %q: %w", f.name, err)
	}
	f.content = content
	f.init()
	return nil
}

// Unload drops a file's content buffer, keeping its slot and name.
func (m *FileManager) Unload(id FileId) error {
	f, err := m.slot(id)
	if err != nil {
		return err
	}
	f.content = nil
	f.lineEnds = nil
	f.status = StatusNotLoaded
	return nil
}

// File returns an immutable view of a loaded file.
func (m *FileManager) File(id FileId) (*File, error) {
	f, err := m.slot(id)
	if err != nil {
		return nil, err
	}
	if f.status != StatusLoaded {
		return nil, fmt.Errorf("utf8: %q: %w", f.name, ErrFileNotLoaded)
	}
	return f, nil
}

// Line returns the 1-indexed line of a loaded file as code points are
// later sliced by a Stream; this returns the raw bytes of that line.
func (m *FileManager) Line(id FileId, lineNo int) ([]byte, error) {
	f, err := m.File(id)
	if err != nil {
		return nil, err
	}
	return f.LineBytes(lineNo)
}

func (m *FileManager) slot(id FileId) (*File, error) {
	if int(id) < 0 || int(id) >= len(m.files) {
		return nil, fmt.Errorf("utf8: invalid file id %d", id)
	}
	return &m.files[id], nil
}
