// Package parser converts raw thesis files (PDF, DOCX) into flat text with
// optional paragraph/style records. Extraction is best effort: every parser
// has a lower-fidelity fallback path, and a total failure yields an empty
// document rather than aborting the pipeline.
package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/benyaminbatau/journal-app/internal/structure"
)

// Parser converts raw document bytes into a Document.
type Parser interface {
	Parse(r io.Reader, filename string) (*Document, error)
}

// Document is the flat extraction result for one file.
type Document struct {
	// Text is the line-break-joined text blob of the whole file.
	Text string
	// Paragraphs carries per-paragraph style records for formats that
	// expose them (DOCX). Empty for PDF.
	Paragraphs []Paragraph
	// Structure describes markers detected in Text. Descriptive only.
	Structure structure.Info
}

// Paragraph is one styled paragraph from a structured document.
type Paragraph struct {
	Text         string
	StyleName    string
	HeadingLevel int // 0 = body text, 1-3 = heading depth
}

// SupportedTypes lists the file types this service can handle.
var SupportedTypes = map[string]bool{
	"pdf":  true,
	"docx": true,
}

// ForType returns the appropriate parser for a declared file type.
func ForType(fileType string) (Parser, error) {
	switch strings.ToLower(fileType) {
	case "pdf":
		return &PDFParser{FallbackPdftotext: true}, nil
	case "docx":
		return &DOCXParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file type: %s", fileType)
	}
}

// IsSupportedType checks whether a declared file type is supported.
func IsSupportedType(fileType string) bool {
	return SupportedTypes[strings.ToLower(fileType)]
}
