package extract

import (
	"reflect"
	"strings"
	"testing"
)

func TestTitleAuthor_CoverPage(t *testing.T) {
	text := strings.Join([]string{
		"UNIVERSITAS NEGERI MAKASSAR",
		"PENGARUH MODEL PEMBELAJARAN KOOPERATIF TERHADAP HASIL BELAJAR",
		"SKRIPSI",
		"Benyamin Batau",
		"1234567890",
		"Program Pascasarjana",
	}, "\n")

	title, author := TitleAuthor(text)

	if title != "PENGARUH MODEL PEMBELAJARAN KOOPERATIF TERHADAP HASIL BELAJAR" {
		t.Errorf("unexpected title %q", title)
	}
	if author != "Benyamin Batau" {
		t.Errorf("expected author before the student-ID line, got %q", author)
	}
}

func TestTitleAuthor_SkipsInstitutionLines(t *testing.T) {
	text := "SEKOLAH TINGGI ILMU PENDIDIKAN NEGERI SULAWESI\nshort\njudul"

	title, author := TitleAuthor(text)

	if title != "" {
		t.Errorf("institution line must not become the title, got %q", title)
	}
	if author != "" {
		t.Errorf("expected empty author, got %q", author)
	}
}

func TestTitleAuthor_IDOnFirstLine(t *testing.T) {
	// A student ID with no preceding line yields no author.
	_, author := TitleAuthor("1234567890\nBenyamin Batau")
	if author != "" {
		t.Errorf("expected empty author, got %q", author)
	}
}

func TestSection_BoundedByChapterMarker(t *testing.T) {
	text := "1.1 Latar Belakang\nIsi latar belakang penelitian.\nBAB II TINJAUAN"

	got := Section(text, "latar belakang")

	if got != "Isi latar belakang penelitian." {
		t.Errorf("unexpected section %q", got)
	}
}

func TestSection_BoundedBySubsectionNumber(t *testing.T) {
	text := "Latar Belakang\nparagraf pertama\n1.2 Rumusan Masalah\nlainnya"

	got := Section(text, "latar belakang")

	if got != "paragraf pertama" {
		t.Errorf("expected text up to the numbered subsection, got %q", got)
	}
}

func TestSection_RunsToEndOfText(t *testing.T) {
	text := "KESIMPULAN\nSimpulan akhir penelitian ini."

	got := Section(text, "simpulan|kesimpulan")

	if !strings.Contains(got, "akhir penelitian") {
		t.Errorf("expected section to run to end of text, got %q", got)
	}
}

func TestSection_Absent(t *testing.T) {
	if got := Section("tidak ada bagian itu", "tujuan penelitian"); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestReferences_JoinsWrappedLines(t *testing.T) {
	text := strings.Join([]string{
		"DAFTAR PUSTAKA",
		"",
		"Anderson, J. (2014). The atomic components",
		"of thought. Lawrence Erlbaum.",
		"[2] Brown, P. (2018). Advances in machine learning.",
		"Journal of AI Research.",
	}, "\n")

	refs := References(text)

	want := []string{
		"Anderson, J. (2014). The atomic components of thought. Lawrence Erlbaum.",
		"[2] Brown, P. (2018). Advances in machine learning. Journal of AI Research.",
	}
	if !reflect.DeepEqual(refs, want) {
		t.Errorf("expected %v, got %v", want, refs)
	}
}

func TestReferences_SkipsHeaderAndEmptyInput(t *testing.T) {
	if refs := References("DAFTAR PUSTAKA\n\n"); len(refs) != 0 {
		t.Errorf("expected no references, got %v", refs)
	}
}

func TestAbstract_English(t *testing.T) {
	text := "ABSTRACT\nThis study examines cooperative learning.\nKeywords: learning, cooperation"

	got := Abstract(text, "english")

	if got != "This study examines cooperative learning." {
		t.Errorf("unexpected abstract %q", got)
	}
}

func TestAbstract_Indonesian(t *testing.T) {
	text := "ABSTRAK\nPenelitian ini mengkaji pembelajaran kooperatif.\nKata Kunci: pembelajaran"

	got := Abstract(text, "indonesian")

	if got != "Penelitian ini mengkaji pembelajaran kooperatif." {
		t.Errorf("unexpected abstract %q", got)
	}
}

func TestAbstract_CapsAtFiveHundredWords(t *testing.T) {
	long := strings.Repeat("kata ", 600)
	text := "ABSTRACT\n" + long + "\nKeywords: uji"

	got := Abstract(text, "english")

	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected truncated abstract to end with ellipsis, got tail %q", got[len(got)-10:])
	}
	if n := len(strings.Fields(got)); n != 500 {
		t.Errorf("expected 500 words, got %d", n)
	}
}

func TestAbstract_MissingMarker(t *testing.T) {
	if got := Abstract("BAB I PENDAHULUAN", "english"); got != "" {
		t.Errorf("expected empty abstract, got %q", got)
	}
}
