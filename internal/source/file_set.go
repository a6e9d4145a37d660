package source

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"fortio.org/safecast"
	"github.com/zeebo/blake3"
)

// ErrSpanOutOfRange is returned when a span does not fit its file.
var ErrSpanOutOfRange = errors.New("span out of range")

// FileSet manages a collection of source files. It is the source map the
// HIR consults for span snippets.
type FileSet struct {
	files []File
	index map[string]FileID // path -> id
}

// NewFileSet creates a new empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{
		files: make([]File, 0),
		index: make(map[string]FileID),
	}
}

// Add stores a file from normalized bytes, computes LineIdx and Hash, and returns a new FileID.
// It always creates a new FileID even if a file with the same path already exists.
func (fileSet *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	if _, err := safecast.Conv[uint32](len(content)); err != nil {
		panic(fmt.Errorf("file %q too large: %w", path, err))
	}
	lenFiles, err := safecast.Conv[uint32](len(fileSet.files))
	if err != nil {
		panic(fmt.Errorf("len files overflow: %w", err))
	}
	id := FileID(lenFiles)
	normalizedPath := normalizePath(path)
	fileSet.files = append(fileSet.files, File{
		ID:      id,
		Path:    normalizedPath,
		Content: content,
		LineIdx: buildLineIndex(content),
		Hash:    blake3.Sum256(content),
		Flags:   flags,
	})
	fileSet.index[normalizedPath] = id
	return id
}

// Load reads a file from disk, normalizes CRLF/BOM, and calls Add.
func (fileSet *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)

	flags := FileFlags(0)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return fileSet.Add(path, content, flags), nil
}

// AddVirtual adds a virtual file (stdin, test, or generated) with the FileVirtual flag.
func (fileSet *FileSet) AddVirtual(name string, content []byte) FileID {
	return fileSet.Add(name, content, FileVirtual)
}

// Get returns the file metadata for the given ID, or nil if unknown. A nil
// set knows no files.
func (fileSet *FileSet) Get(id FileID) *File {
	if fileSet == nil || int(id) >= len(fileSet.files) {
		return nil
	}
	return &fileSet.files[id]
}

// GetLatest returns the latest file ID for the given path, if it exists.
func (fileSet *FileSet) GetLatest(path string) (FileID, bool) {
	id, ok := fileSet.index[normalizePath(path)]
	return id, ok
}

// Len returns the number of files in the set.
func (fileSet *FileSet) Len() int {
	if fileSet == nil {
		return 0
	}
	return len(fileSet.files)
}

// Resolve converts a span into line and column positions.
func (fileSet *FileSet) Resolve(span Span) (start, end LineCol) {
	f := fileSet.Get(span.File)
	if f == nil {
		return LineCol{}, LineCol{}
	}
	return toLineCol(f.LineIdx, span.Start), toLineCol(f.LineIdx, span.End)
}

// Snippet returns the source text covered by span.
func (fileSet *FileSet) Snippet(span Span) (string, error) {
	f := fileSet.Get(span.File)
	if f == nil {
		return "", fmt.Errorf("%w: unknown file %d", ErrSpanOutOfRange, span.File)
	}
	if span.Start > span.End || int(span.End) > len(f.Content) {
		return "", fmt.Errorf("%w: %s in %s", ErrSpanOutOfRange, span, f.Path)
	}
	return string(f.Content[span.Start:span.End]), nil
}

// EndPoint returns the span of the last character of span. Empty or unknown
// spans are returned unchanged.
func (fileSet *FileSet) EndPoint(span Span) Span {
	f := fileSet.Get(span.File)
	if f == nil || span.Empty() || span.Start > span.End || int(span.End) > len(f.Content) {
		return span
	}
	_, width := utf8.DecodeLastRune(f.Content[span.Start:span.End])
	if width <= 0 {
		width = 1
	}
	lo := span.End - uint32(width) // #nosec G115 -- width is at most utf8.UTFMax
	if lo < span.Start {
		lo = span.Start
	}
	return Span{File: span.File, Start: lo, End: span.End}
}
