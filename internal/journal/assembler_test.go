package journal

import (
	"strings"
	"testing"

	"github.com/benyaminbatau/journal-app/internal/thesis"
)

func TestArticleTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Tesis Pengaruh Media Digital", "PENGARUH MEDIA DIGITAL"},
		{"SKRIPSI: Analisis Kebijakan", ": ANALISIS KEBIJAKAN"},
		{"Pengaruh Disertasi Terhadap Karir", "PENGARUH TERHADAP KARIR"},
		{"Judul tanpa kata terlarang", "JUDUL TANPA KATA TERLARANG"},
	}

	for _, tt := range tests {
		if got := articleTitle(tt.in); got != tt.want {
			t.Errorf("articleTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatAuthors(t *testing.T) {
	s := thesis.DefaultSettings()
	s.AuthorName = "Benyamin Batau"

	if got := formatAuthors(s); got != "Benyamin Batau¹*" {
		t.Errorf("single author = %q", got)
	}

	s.Coauthors = "Sari Dewi, Andi Putra"
	if got := formatAuthors(s); got != "Benyamin Batau¹*, Sari Dewi, Andi Putra" {
		t.Errorf("with co-authors = %q", got)
	}
}

func TestIntroduction_Truncation(t *testing.T) {
	c := thesis.NewContent()
	c.Background = strings.Repeat("a", 2000)
	c.Objectives = strings.Repeat("b", 900)

	got := introduction(c)

	parts := strings.Split(got, "\n\n")
	if len(parts) != 2 {
		t.Fatalf("expected background and objectives blocks, got %d", len(parts))
	}
	if len(parts[0]) != maxIntroChars {
		t.Errorf("background capped at %d, got %d", maxIntroChars, len(parts[0]))
	}
	if len(parts[1]) != maxObjectiveChars {
		t.Errorf("objectives capped at %d, got %d", maxObjectiveChars, len(parts[1]))
	}
}

func TestDiscussion(t *testing.T) {
	results := "Data dianalisis.\nPEMBAHASAN\nTemuan sejalan dengan teori.\nKESIMPULAN\nSelesai."

	got := discussion(results)

	if got != "Temuan sejalan dengan teori." {
		t.Errorf("expected marked span, got %q", got)
	}
}

func TestDiscussion_FallbackAndCap(t *testing.T) {
	results := strings.Repeat("hasil ", 1000) // no marker

	got := discussion(results)

	if len([]rune(got)) != maxDiscussionChars {
		t.Errorf("expected cap at %d runes, got %d", maxDiscussionChars, len([]rune(got)))
	}
}

func TestAssembleArticle_PrefersSummaries(t *testing.T) {
	c := thesis.NewContent()
	c.Methodology = "metode mentah"
	c.MethodologySummary = "ringkasan metode"
	c.Results = "hasil mentah"
	c.Conclusions = "simpulan mentah"

	a := AssembleArticle(c, thesis.DefaultSettings())

	if a.Methodology != "ringkasan metode" {
		t.Errorf("expected summary preferred, got %q", a.Methodology)
	}
	if a.Results != "hasil mentah" {
		t.Errorf("missing summary falls back to raw, got %q", a.Results)
	}
	if a.Conclusions != "simpulan mentah" {
		t.Errorf("unexpected conclusions %q", a.Conclusions)
	}
}

func TestAssembleArticle_AbstractToggle(t *testing.T) {
	c := thesis.NewContent()
	c.AbstractEN = "An abstract."
	c.KeywordsEN = "one, two"
	c.AbstractID = "Sebuah abstrak."
	c.KeywordsID = "satu, dua"

	s := thesis.DefaultSettings()
	s.IncludeAbstract = false

	a := AssembleArticle(c, s)

	if a.AbstractEN != "" || a.KeywordsEN != "" || a.AbstractID != "" || a.KeywordsID != "" {
		t.Errorf("abstract toggle must blank all four fields: %+v", a)
	}
}

func TestAcknowledgments_DefaultAffiliation(t *testing.T) {
	s := thesis.DefaultSettings()

	got := acknowledgments(s)

	if !strings.Contains(got, "Universitas Negeri Makassar") {
		t.Errorf("expected default affiliation, got %q", got)
	}

	s.Affiliation = "Universitas Hasanuddin"
	if got := acknowledgments(s); !strings.Contains(got, "Universitas Hasanuddin") {
		t.Errorf("expected supplied affiliation, got %q", got)
	}
}
