package journal

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// PDFWriter renders the article as a PDF on A4 pages with the journal's
// margin policy (2.5cm sides, 3cm top) and serif 11pt body text.
type PDFWriter struct{}

func (w *PDFWriter) Extension() string { return "pdf" }

func (w *PDFWriter) Render(a Article) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(25, 30, 25)
	pdf.SetAutoPageBreak(true, 25)
	pdf.AddPage()

	// Core fonts are cp1252; translate so the footnote markers survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Title block.
	pdf.SetFont("Times", "B", 11)
	pdf.MultiCell(0, 5, tr(a.Title), "", "C", false)
	pdf.Ln(3)
	pdf.MultiCell(0, 5, tr(a.Authors), "", "C", false)
	pdf.SetFont("Times", "", 11)
	pdf.MultiCell(0, 5, tr(fmt.Sprintf("¹%s, %s", a.Affiliation, a.Email)), "", "C", false)
	pdf.Ln(5)

	section := func(heading, content string, italic, center bool) {
		if content == "" {
			return
		}
		style := "B"
		if italic {
			style += "I"
		}
		align := "L"
		if center {
			align = "C"
		}
		pdf.SetFont("Times", style, 11)
		pdf.MultiCell(0, 5, tr(heading), "", align, false)
		bodyStyle := ""
		if italic {
			bodyStyle = "I"
		}
		pdf.SetFont("Times", bodyStyle, 11)
		pdf.MultiCell(0, 5, tr(content), "", "J", false)
		pdf.Ln(4)
	}

	section("ABSTRACT", a.AbstractEN, true, true)
	if a.AbstractEN != "" && a.KeywordsEN != "" {
		section("Keywords:", a.KeywordsEN, true, false)
	}
	section("ABSTRAK", a.AbstractID, false, true)
	if a.AbstractID != "" && a.KeywordsID != "" {
		section("Kata Kunci:", a.KeywordsID, false, false)
	}

	section("LATAR BELAKANG", a.Introduction, false, false)
	section("METODE PENELITIAN", a.Methodology, false, false)

	body := a.Results
	if a.Discussion != "" {
		if body != "" {
			body += "\n\n"
		}
		body += a.Discussion
	}
	section("HASIL DAN PEMBAHASAN", body, false, false)
	section("KESIMPULAN", a.Conclusions, false, false)
	section("UCAPAN TERIMA KASIH", a.Acknowledgments, false, false)

	if len(a.References) > 0 {
		pdf.SetFont("Times", "B", 11)
		pdf.MultiCell(0, 5, "DAFTAR PUSTAKA", "", "L", false)
		pdf.SetFont("Times", "", 11)
		for _, ref := range renderedReferences(a.References) {
			pdf.MultiCell(0, 5, tr(ref), "", "J", false)
			pdf.Ln(1)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
