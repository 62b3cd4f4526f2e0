package journal

import (
	"bytes"
	"fmt"
	"testing"
)

func sampleArticle() Article {
	return Article{
		Title:           "PENGARUH MODEL PEMBELAJARAN KOOPERATIF",
		Authors:         "Benyamin Batau¹*",
		Affiliation:     "Universitas Negeri Makassar",
		Email:           "penulis@unm.ac.id",
		AbstractEN:      "This study examines cooperative learning.",
		KeywordsEN:      "cooperative, learning, outcomes",
		AbstractID:      "Penelitian ini mengkaji pembelajaran kooperatif.",
		KeywordsID:      "kooperatif, pembelajaran, hasil",
		Introduction:    "Latar belakang penelitian.",
		Methodology:     "Metode eksperimen kuasi.",
		Results:         "Hasil menunjukkan peningkatan.",
		Discussion:      "Temuan sejalan dengan teori.",
		Conclusions:     "Model efektif diterapkan.",
		Acknowledgments: "Terima kasih kepada semua pihak.",
		References: []string{
			"Anderson, J. (2014). The atomic components of thought. Erlbaum.",
			"Brown, P. (2018). Advances in learning. Journal of Education.",
		},
	}
}

func TestForFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantExt string
		wantErr bool
	}{
		{"docx", "docx", false},
		{"PDF", "pdf", false},
		{"", "docx", false},
		{"xlsx", "", true},
	}

	for _, tt := range tests {
		w, err := ForFormat(tt.format)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ForFormat(%q): expected error", tt.format)
			}
			continue
		}
		if err != nil {
			t.Errorf("ForFormat(%q): %v", tt.format, err)
			continue
		}
		if w.Extension() != tt.wantExt {
			t.Errorf("ForFormat(%q).Extension() = %q, want %q", tt.format, w.Extension(), tt.wantExt)
		}
	}
}

func TestDocxWriter_Render(t *testing.T) {
	data, err := (&DocxWriter{}).Render(sampleArticle())
	if err != nil {
		t.Fatal(err)
	}
	// DOCX is a zip container.
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Errorf("expected zip magic, got % x", data[:4])
	}
}

func TestPDFWriter_Render(t *testing.T) {
	data, err := (&PDFWriter{}).Render(sampleArticle())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("expected PDF magic, got % x", data[:4])
	}
}

func TestRenderedReferences_Cap(t *testing.T) {
	refs := make([]string, 40)
	for i := range refs {
		refs[i] = fmt.Sprintf("Author%d. (2020). Title.", i)
	}

	if got := renderedReferences(refs); len(got) != maxRenderedReferences {
		t.Errorf("expected %d rendered references, got %d", maxRenderedReferences, len(got))
	}
	if got := renderedReferences(refs[:3]); len(got) != 3 {
		t.Errorf("short list must pass through, got %d", len(got))
	}
}
