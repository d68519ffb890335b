package domain

import "strings"

// SourceUnit is a generated snippet awaiting validation.
// The filename only supplies the extension used for dispatch.
type SourceUnit struct {
	Content  string
	Filename string
}

// NewSourceUnit creates a source unit.
func NewSourceUnit(content, filename string) SourceUnit {
	return SourceUnit{Content: content, Filename: filename}
}

// Extension returns the text after the final dot of the filename.
// A filename without a dot has an empty extension.
func (u SourceUnit) Extension() string {
	return ExtensionOf(u.Filename)
}

// ExtensionOf returns the text after the final dot of filename, or "".
func ExtensionOf(filename string) string {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return ""
	}
	return filename[i+1:]
}
