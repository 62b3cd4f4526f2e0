// Package assemble merges per-file extraction results into a single thesis
// content record.
package assemble

import (
	"errors"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/benyaminbatau/journal-app/internal/extract"
	"github.com/benyaminbatau/journal-app/internal/parser"
	"github.com/benyaminbatau/journal-app/internal/thesis"
)

// ErrNoFiles is returned when a request carries no input files at all.
// This is a pipeline-level failure and must reach the caller.
var ErrNoFiles = errors.New("no input files")

// Extractor produces the extraction result for one file. The production
// implementation reads from disk; tests inject a stub.
type Extractor interface {
	ExtractFile(fd thesis.FileDescriptor) (*parser.Document, error)
}

// Assembler builds a thesis.Content from a set of uploaded files.
type Assembler struct {
	ext Extractor
	log *slog.Logger
}

func New(ext Extractor, log *slog.Logger) *Assembler {
	return &Assembler{ext: ext, log: log}
}

// Assemble extracts every file in priority order and merges the results.
// A file whose extraction fails contributes nothing; only an empty file set
// is an error.
func (a *Assembler) Assemble(files []thesis.FileDescriptor) (*thesis.Content, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	sorted := make([]thesis.FileDescriptor, len(files))
	copy(sorted, files)
	sort.SliceStable(sorted, func(i, j int) bool {
		return extract.RoleFor(sorted[i].Filename).Priority() <
			extract.RoleFor(sorted[j].Filename).Priority()
	})

	content := thesis.NewContent()
	for _, fd := range sorted {
		doc, err := a.ext.ExtractFile(fd)
		if err != nil {
			a.log.Warn("file extraction failed, skipping",
				"file", fd.Filename, "error", err)
			continue
		}
		a.log.Info("extracted file",
			"file", fd.Filename,
			"chapter_markers", len(doc.Structure.ChapterMarkers),
			"has_abstract", doc.Structure.HasAbstract)
		merge(content, fd, doc.Text)
	}

	postProcess(content)
	content.Metadata = computeMetadata(content)
	return content, nil
}

// merge routes one file's text into the content record by file role.
// Every file contributes to RawText regardless of role.
func merge(c *thesis.Content, fd thesis.FileDescriptor, text string) {
	role := extract.RoleFor(fd.Filename)

	switch role {
	case extract.RoleCover:
		c.Title, c.Author = extract.TitleAuthor(text)
	case extract.RoleChapter1:
		c.Chapters[role.ChapterKey()] = text
		c.Background = extract.Section(text, "latar belakang")
		c.Objectives = extract.Section(text, "tujuan penelitian")
	case extract.RoleChapter2:
		c.Chapters[role.ChapterKey()] = text
		c.LiteratureReview = text
	case extract.RoleChapter3:
		c.Chapters[role.ChapterKey()] = text
		c.Methodology = text
	case extract.RoleChapter4:
		c.Chapters[role.ChapterKey()] = text
		c.Results = text
	case extract.RoleChapter5:
		c.Chapters[role.ChapterKey()] = text
		c.Conclusions = extract.Section(text, "simpulan|kesimpulan")
	case extract.RoleBibliography:
		c.References = extract.References(text)
	}

	c.RawText += text + "\n\n"
}

var (
	pageNumberLineRe = regexp.MustCompile(`(?m)^[ \t]*\d+[ \t]*$\n?`)
	blankRunRe       = regexp.MustCompile(`\n{3,}`)
	spaceRunRe       = regexp.MustCompile(`[ \t]{2,}`)
)

// postProcess normalizes the accumulated raw text and fills abstracts that
// direct extraction missed.
func postProcess(c *thesis.Content) {
	c.RawText = cleanText(c.RawText)

	if c.AbstractEN == "" {
		c.AbstractEN = extract.Abstract(c.RawText, "english")
	}
	if c.AbstractID == "" {
		c.AbstractID = extract.Abstract(c.RawText, "indonesian")
	}
}

// cleanText drops stray page-number-only lines, collapses runs of blank
// lines to a single blank line, and collapses space runs within lines.
func cleanText(text string) string {
	text = pageNumberLineRe.ReplaceAllString(text, "")
	text = blankRunRe.ReplaceAllString(text, "\n\n")
	text = spaceRunRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// computeMetadata derives counts from the final merged state. It runs once,
// after every file is merged, so the result is never partially stale.
func computeMetadata(c *thesis.Content) thesis.Metadata {
	return thesis.Metadata{
		WordCount:      len(strings.Fields(c.RawText)),
		ChapterCount:   len(c.Chapters),
		ReferenceCount: len(c.References),
		HasMethodology: c.Methodology != "",
		HasResults:     c.Results != "",
	}
}
