package journal

import (
	"fmt"
	"strings"
)

// maxRenderedReferences caps the bibliography in the rendered document even
// when more references were validated.
const maxRenderedReferences = 25

// Writer renders a journal article to its binary document form. Page layout
// and pagination are the writer's concern; the assembler only supplies field
// values and section order.
type Writer interface {
	Render(a Article) ([]byte, error)
	Extension() string
}

// ForFormat returns the writer for an output format ("docx" or "pdf").
func ForFormat(format string) (Writer, error) {
	switch strings.ToLower(format) {
	case "docx", "":
		return &DocxWriter{}, nil
	case "pdf":
		return &PDFWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// renderedReferences returns the reference list capped for rendering.
func renderedReferences(refs []string) []string {
	if len(refs) > maxRenderedReferences {
		return refs[:maxRenderedReferences]
	}
	return refs
}
