// Package source models the single source file a lumen program is read
// from, so error reporting and debug tracing can refer back to a
// display name independent of how the bytes were obtained (a real file
// on disk or an in-memory string in a test).
package source

import (
	"path/filepath"
	"strings"
)

// SourceFile represents a source file with its content and metadata.
type SourceFile struct {
	Name    string // Display name (e.g. "script.lua", "<expr>")
	Path    string // Full file path (empty when there isn't one)
	Content string

	lines []string // cached split lines
}

// NewSourceFile creates a new source file.
func NewSourceFile(name, path, content string) *SourceFile {
	return &SourceFile{Name: name, Path: path, Content: content}
}

// NewExprSource creates an in-memory source file with no path, named
// "<expr>".
func NewExprSource(content string) *SourceFile {
	return &SourceFile{Name: "<expr>", Content: content}
}

// Lines returns the source split into lines, computed once and cached.
func (sf *SourceFile) Lines() []string {
	if sf.lines == nil {
		sf.lines = strings.Split(sf.Content, "\n")
	}
	return sf.lines
}

// DisplayPath returns the best path for display: the full path when one
// exists, otherwise the display name.
func (sf *SourceFile) DisplayPath() string {
	if sf.Path != "" {
		return sf.Path
	}
	return sf.Name
}

// FromFile creates a SourceFile from a file path and its already-read
// content.
func FromFile(filePath, content string) *SourceFile {
	return NewSourceFile(filepath.Base(filePath), filePath, content)
}
