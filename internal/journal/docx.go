package journal

import (
	"bytes"
	"fmt"

	"github.com/fumiama/go-docx"
)

// Body text policy: Times New Roman 11pt. go-docx sizes are half-points.
const (
	bodyFont = "Times New Roman"
	bodySize = "22"
)

// DocxWriter renders the article as a Word document in the journal's fixed
// section order.
type DocxWriter struct{}

func (w *DocxWriter) Extension() string { return "docx" }

func (w *DocxWriter) Render(a Article) ([]byte, error) {
	doc := docx.New().WithDefaultTheme()

	// Title, centered bold caps.
	p := doc.AddParagraph().Justification("center")
	styleRun(p.AddText(a.Title)).Bold()

	// Authors and affiliation.
	p = doc.AddParagraph().Justification("center")
	styleRun(p.AddText(a.Authors)).Bold()
	p = doc.AddParagraph().Justification("center")
	styleRun(p.AddText(fmt.Sprintf("¹%s, %s", a.Affiliation, a.Email)))

	if a.AbstractEN != "" {
		addSection(doc, "ABSTRACT", a.AbstractEN, true, true)
		if a.KeywordsEN != "" {
			addKeywords(doc, "Keywords: ", a.KeywordsEN, true)
		}
	}
	if a.AbstractID != "" {
		addSection(doc, "ABSTRAK", a.AbstractID, false, true)
		if a.KeywordsID != "" {
			addKeywords(doc, "Kata Kunci: ", a.KeywordsID, false)
		}
	}

	addSection(doc, "LATAR BELAKANG", a.Introduction, false, false)
	if a.Methodology != "" {
		addSection(doc, "METODE PENELITIAN", a.Methodology, false, false)
	}
	if a.Results != "" || a.Discussion != "" {
		body := a.Results
		if a.Discussion != "" {
			if body != "" {
				body += "\n\n"
			}
			body += a.Discussion
		}
		addSection(doc, "HASIL DAN PEMBAHASAN", body, false, false)
	}
	if a.Conclusions != "" {
		addSection(doc, "KESIMPULAN", a.Conclusions, false, false)
	}
	if a.Acknowledgments != "" {
		addSection(doc, "UCAPAN TERIMA KASIH", a.Acknowledgments, false, false)
	}

	if len(a.References) > 0 {
		p = doc.AddParagraph()
		styleRun(p.AddText("DAFTAR PUSTAKA")).Bold()
		for _, ref := range renderedReferences(a.References) {
			p = doc.AddParagraph().Justification("both")
			styleRun(p.AddText(ref))
		}
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write docx: %w", err)
	}
	return buf.Bytes(), nil
}

// addSection writes a bold heading followed by a justified content block.
func addSection(doc *docx.Docx, heading, content string, italic, centerTitle bool) {
	p := doc.AddParagraph()
	if centerTitle {
		p.Justification("center")
	}
	h := styleRun(p.AddText(heading)).Bold()
	if italic {
		h.Italic()
	}

	p = doc.AddParagraph().Justification("both")
	r := styleRun(p.AddText(content))
	if italic {
		r.Italic()
	}
}

func addKeywords(doc *docx.Docx, label, keywords string, italic bool) {
	p := doc.AddParagraph().Justification("both")
	l := styleRun(p.AddText(label)).Bold()
	r := styleRun(p.AddText(keywords))
	if italic {
		l.Italic()
		r.Italic()
	}
}

// styleRun applies the journal's body font policy to a run.
func styleRun(r *docx.Run) *docx.Run {
	return r.Size(bodySize).Font(bodyFont, "", bodyFont, "")
}
