package utf8

import (
	"fmt"
	"os"
)

// Status is the residency state of a File.
type Status uint8

const (
	StatusNotInitialized Status = iota
	StatusNotLoaded
	StatusLoaded
)

// FileId is a dense, stable identifier into a FileManager's slot list.
type FileId uint32

// InvalidFileId is returned where no valid FileId can be produced.
const InvalidFileId FileId = ^FileId(0)

// File pairs a name with an optionally loaded UTF-8 buffer and a
// precomputed line-end byte-offset index. Slots are never removed from
// a FileManager; unloading only drops content and the index.
type File struct {
	name     string
	content  []byte
	lineEnds []int
	status   Status
}

// Name returns the file's registered name.
func (f *File) Name() string { return f.name }

// Status reports whether the file's content is currently resident.
func (f *File) Status() Status { return f.status }

// Content returns the raw UTF-8 bytes. Empty when not loaded.
func (f *File) Content() []byte { return f.content }

// LineCount returns the number of lines indexed in the current buffer.
func (f *File) LineCount() int { return len(f.lineEnds) }

// init (re)builds the line-end index from the current content. Called
// once per successful load; never reused across an unload/load cycle
// per DESIGN.md's resolution of spec.md's open question on this point.
func (f *File) init() {
	f.lineEnds = indexNewlines(f.content)
	f.status = StatusLoaded
}

func indexNewlines(content []byte) []int {
	if len(content) == 0 {
		return nil
	}
	ends := make([]int, 0, len(content)/40+1)
	for i, b := range content {
		if b == '\n' {
			ends = append(ends, i)
		}
	}
	if content[len(content)-1] != '\n' {
		ends = append(ends, len(content))
	}
	return ends
}

// LineBytes returns the raw bytes of the 1-indexed line, with any
// trailing '\r' stripped.
func (f *File) LineBytes(lineNo int) ([]byte, error) {
	if lineNo < 1 || lineNo > len(f.lineEnds) {
		return nil, fmt.Errorf("utf8: line %d out of range (1..%d) in %q", lineNo, len(f.lineEnds), f.name)
	}
	start := 0
	if lineNo > 1 {
		start = f.lineEnds[lineNo-2] + 1
	}
	end := f.lineEnds[lineNo-1]
	if end > len(f.content) {
		end = len(f.content)
	}
	line := f.content[start:end]
	if len(line) > 0 && line[len(line)-1] == '\r' {
		line = line[:len(line)-1]
	}
	return line, nil
}

func readFromDisk(name string) ([]byte, error) {
	return os.ReadFile(name)
}
