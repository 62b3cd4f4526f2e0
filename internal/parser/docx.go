package parser

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fumiama/go-docx"
	"golang.org/x/net/html"

	"github.com/benyaminbatau/journal-app/internal/structure"
)

// DOCXParser handles .docx files. Structured extraction via go-docx keeps
// paragraph style names; when that fails, a lower-fidelity fallback pulls
// plain text straight out of word/document.xml.
type DOCXParser struct{}

func (p *DOCXParser) Parse(r io.Reader, filename string) (*Document, error) {
	// go-docx needs a ReaderAt+size, and the fallback re-reads the same
	// bytes, so buffer the whole file.
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read docx: %w", err)
	}

	doc, err := docx.Parse(bytes.NewReader(src), int64(len(src)))
	if err != nil {
		text, ferr := extractDocumentXML(src)
		if ferr != nil {
			return nil, fmt.Errorf("parse docx: %w", err)
		}
		return &Document{
			Text:      text,
			Structure: structure.Detect(text),
		}, nil
	}

	var out Document
	var buf strings.Builder
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		text := docxParagraphText(para)
		if text == "" {
			continue
		}
		style := docxStyleName(para)
		out.Paragraphs = append(out.Paragraphs, Paragraph{
			Text:         text,
			StyleName:    style,
			HeadingLevel: headingLevel(style),
		})
		buf.WriteString(text)
		buf.WriteString("\n\n")
	}

	out.Text = buf.String()
	out.Structure = structure.Detect(out.Text)
	return &out, nil
}

// headingLevel derives a heading depth from a paragraph style name.
// Title-like styles count as level 1; anything unrecognized is body text.
func headingLevel(styleName string) int {
	s := strings.ToLower(styleName)
	// Style names appear both as "Heading1" and "heading 1".
	s = strings.ReplaceAll(s, "heading", "heading ")
	s = strings.Join(strings.Fields(s), " ")
	switch {
	case strings.Contains(s, "heading 1"), strings.Contains(s, "title"):
		return 1
	case strings.Contains(s, "heading 2"):
		return 2
	case strings.Contains(s, "heading 3"):
		return 3
	}
	return 0
}

func docxStyleName(para *docx.Paragraph) string {
	if para.Properties == nil || para.Properties.Style == nil {
		return "Normal"
	}
	return para.Properties.Style.Val
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

// extractDocumentXML is the low-fidelity fallback: open the docx zip, find
// word/document.xml and collect the text runs with the lenient HTML parser.
// Paragraph elements become line breaks; style information is lost.
func extractDocumentXML(src []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(src), int64(len(src)))
	if err != nil {
		return "", fmt.Errorf("open docx zip: %w", err)
	}

	var docXML io.ReadCloser
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docXML, err = f.Open()
			if err != nil {
				return "", fmt.Errorf("open document.xml: %w", err)
			}
			break
		}
	}
	if docXML == nil {
		return "", fmt.Errorf("document.xml not found")
	}
	defer docXML.Close()

	node, err := html.Parse(docXML)
	if err != nil {
		return "", fmt.Errorf("parse document.xml: %w", err)
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "w:p" {
			line := textContent(n)
			if line != "" {
				buf.WriteString(line)
				buf.WriteString("\n")
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(node)

	return buf.String(), nil
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}
