package domain

// Segment names a region of a single-file component.
type Segment string

// Segments of a single-file component.
const (
	SegmentTemplate Segment = "template"
	SegmentScript   Segment = "script"
	SegmentStyle    Segment = "style"
)

// String returns the string representation.
func (s Segment) String() string {
	return string(s)
}

// Title returns the segment name with an upper-case first letter.
func (s Segment) Title() string {
	if s == "" {
		return ""
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}

// Span is a located region of a document.
// Start and End are byte offsets of the body, excluding the boundary tags.
type Span struct {
	Start int
	End   int
	Body  string
}

// IsEmpty returns true if the body has no characters at all.
func (s *Span) IsEmpty() bool {
	return s == nil || s.Body == ""
}

// SegmentExtraction holds the regions found in a single-file component.
// A nil span means the region was not found.
type SegmentExtraction struct {
	Template *Span
	Script   *Span
	Style    *Span
}

// HasTemplate returns true if the markup region was located.
func (e SegmentExtraction) HasTemplate() bool {
	return e.Template != nil
}

// HasScript returns true if the script region was located.
func (e SegmentExtraction) HasScript() bool {
	return e.Script != nil
}

// HasStyle returns true if a style region was located, even an empty one.
func (e SegmentExtraction) HasStyle() bool {
	return e.Style != nil
}

// StyleEmpty returns true if a style region exists but has no content.
// This is distinct from the region being absent.
func (e SegmentExtraction) StyleEmpty() bool {
	return e.Style != nil && e.Style.Body == ""
}
