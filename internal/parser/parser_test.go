package parser

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"
)

func TestForType(t *testing.T) {
	for _, ft := range []string{"pdf", "PDF", "docx", "DOCX"} {
		if _, err := ForType(ft); err != nil {
			t.Errorf("ForType(%q): %v", ft, err)
		}
	}
	if _, err := ForType("txt"); err == nil {
		t.Error("expected error for unsupported type")
	}
}

func TestIsSupportedType(t *testing.T) {
	tests := []struct {
		ft   string
		want bool
	}{
		{"pdf", true},
		{"Docx", true},
		{"doc", false},
		{"txt", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsSupportedType(tt.ft); got != tt.want {
			t.Errorf("IsSupportedType(%q) = %v, want %v", tt.ft, got, tt.want)
		}
	}
}

func TestHeadingLevel(t *testing.T) {
	tests := []struct {
		style string
		want  int
	}{
		{"Heading1", 1},
		{"heading 1", 1},
		{"Title", 1},
		{"Heading2", 2},
		{"heading 3", 3},
		{"Normal", 0},
		{"", 0},
		{"Heading9", 0},
	}

	for _, tt := range tests {
		if got := headingLevel(tt.style); got != tt.want {
			t.Errorf("headingLevel(%q) = %d, want %d", tt.style, got, tt.want)
		}
	}
}

// minimalDocx builds an in-memory zip holding only word/document.xml.
func minimalDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestExtractDocumentXML(t *testing.T) {
	src := minimalDocx(t, `<w:document><w:body>`+
		`<w:p><w:r><w:t>Halo dunia</w:t></w:r></w:p>`+
		`<w:p><w:r><w:t>Baris </w:t></w:r><w:r><w:t>kedua</w:t></w:r></w:p>`+
		`<w:p></w:p>`+
		`</w:body></w:document>`)

	text, err := extractDocumentXML(src)
	if err != nil {
		t.Fatal(err)
	}

	if text != "Halo dunia\nBaris kedua\n" {
		t.Errorf("unexpected text %q", text)
	}
}

func TestExtractDocumentXML_MissingEntry(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	zw.Close()

	if _, err := extractDocumentXML(buf.Bytes()); err == nil {
		t.Error("expected error for zip without document.xml")
	}
}

func TestDOCXParser_FallsBackToDocumentXML(t *testing.T) {
	// A zip with only word/document.xml is not a well-formed docx; the
	// fallback path must still pull the text out.
	src := minimalDocx(t, `<w:document><w:body>`+
		`<w:p><w:r><w:t>BAB I PENDAHULUAN</w:t></w:r></w:p>`+
		`<w:p><w:r><w:t>Isi pendahuluan penelitian.</w:t></w:r></w:p>`+
		`</w:body></w:document>`)

	doc, err := (&DOCXParser{}).Parse(bytes.NewReader(src), "bab_i.docx")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(doc.Text, "Isi pendahuluan penelitian.") {
		t.Errorf("expected document text, got %q", doc.Text)
	}
	if !doc.Structure.HasChapters {
		t.Error("expected chapter marker detected in extracted text")
	}
}

func TestDOCXParser_Garbage(t *testing.T) {
	if _, err := (&DOCXParser{}).Parse(strings.NewReader("not a zip at all"), "x.docx"); err == nil {
		t.Error("expected error for non-zip input")
	}
}
