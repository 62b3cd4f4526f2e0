package assemble

import (
	"fmt"
	"os"

	"github.com/benyaminbatau/journal-app/internal/parser"
	"github.com/benyaminbatau/journal-app/internal/thesis"
)

// FileExtractor is the production Extractor: it opens the file at the
// descriptor's path and runs the parser for its declared type.
type FileExtractor struct {
	// PDFFallbackPdftotext enables the external pdftotext fallback when the
	// library extraction fails.
	PDFFallbackPdftotext bool
}

func (e FileExtractor) ExtractFile(fd thesis.FileDescriptor) (*parser.Document, error) {
	p, err := parser.ForType(fd.Type)
	if err != nil {
		return nil, err
	}
	if pp, ok := p.(*parser.PDFParser); ok {
		pp.FallbackPdftotext = e.PDFFallbackPdftotext
	}

	f, err := os.Open(fd.Filepath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", fd.Filename, err)
	}
	defer f.Close()

	doc, err := p.Parse(f, fd.Filename)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", fd.Filename, err)
	}
	return doc, nil
}
