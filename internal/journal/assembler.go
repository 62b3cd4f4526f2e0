// Package journal maps assembled thesis content into the fixed
// journal-article section layout and renders it to DOCX or PDF.
package journal

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/benyaminbatau/journal-app/internal/thesis"
)

// Section truncation caps, in characters. Character truncation is
// deliberate: mid-word cuts are accepted behavior.
const (
	maxIntroChars      = 1500
	maxObjectiveChars  = 500
	maxDiscussionChars = 2000
)

// defaultAffiliation is used in the acknowledgments when none is supplied.
const defaultAffiliation = "Universitas Negeri Makassar"

var (
	thesisWordsRe = regexp.MustCompile(`(?i)TESIS|SKRIPSI|DISERTASI|THESIS|DISSERTATION`)
	spaceRunRe    = regexp.MustCompile(`\s+`)
	discussionRe  = regexp.MustCompile(`(?is)pembahasan(.*?)(?:simpulan|kesimpulan|$)`)
)

// Article is the final journal-article model, assembled once from thesis
// content plus author settings and immutable thereafter. The document
// writers consume its fields in a fixed section order.
type Article struct {
	Title       string
	Authors     string
	Affiliation string
	Email       string

	AbstractEN string
	KeywordsEN string
	AbstractID string
	KeywordsID string

	Introduction    string
	Methodology     string
	Results         string
	Discussion      string
	Conclusions     string
	Acknowledgments string

	References []string
}

// AssembleArticle maps extracted/enhanced thesis content and user-supplied
// author metadata into the journal layout.
func AssembleArticle(c *thesis.Content, s thesis.Settings) Article {
	a := Article{
		Title:           articleTitle(c.Title),
		Authors:         formatAuthors(s),
		Affiliation:     s.Affiliation,
		Email:           s.Email,
		AbstractEN:      c.AbstractEN,
		KeywordsEN:      c.KeywordsEN,
		AbstractID:      c.AbstractID,
		KeywordsID:      c.KeywordsID,
		Introduction:    introduction(c),
		Methodology:     preferSummary(c.MethodologySummary, c.Methodology),
		Results:         preferSummary(c.ResultsSummary, c.Results),
		Discussion:      discussion(c.Results),
		Conclusions:     preferSummary(c.ConclusionsSummary, c.Conclusions),
		Acknowledgments: acknowledgments(s),
		References:      c.References,
	}

	if !s.IncludeAbstract {
		a.AbstractEN, a.KeywordsEN = "", ""
		a.AbstractID, a.KeywordsID = "", ""
	}
	return a
}

// articleTitle uppercases the thesis title and strips thesis-type keywords.
func articleTitle(title string) string {
	title = strings.ToUpper(title)
	title = thesisWordsRe.ReplaceAllString(title, "")
	return strings.TrimSpace(spaceRunRe.ReplaceAllString(title, " "))
}

// formatAuthors joins the primary author and any co-authors, each carrying
// the footnote-marker suffix convention.
func formatAuthors(s thesis.Settings) string {
	if s.Coauthors != "" {
		return fmt.Sprintf("%s¹*, %s", s.AuthorName, s.Coauthors)
	}
	return s.AuthorName + "¹*"
}

// introduction concatenates truncated background and objectives.
func introduction(c *thesis.Content) string {
	intro := truncateRunes(c.Background, maxIntroChars)
	if c.Objectives != "" {
		intro += "\n\n" + truncateRunes(c.Objectives, maxObjectiveChars)
	}
	return intro
}

// discussion locates the "pembahasan" span inside the results chapter,
// bounded by the conclusion marker or end of text; without a marker the raw
// results open the section. Always capped at 2000 characters.
func discussion(results string) string {
	if m := discussionRe.FindStringSubmatch(results); m != nil {
		return truncateRunes(strings.TrimSpace(m[1]), maxDiscussionChars)
	}
	return truncateRunes(results, maxDiscussionChars)
}

// preferSummary picks the externally supplied enhanced version when present.
func preferSummary(summary, raw string) string {
	if summary != "" {
		return summary
	}
	return raw
}

func acknowledgments(s thesis.Settings) string {
	affiliation := s.Affiliation
	if affiliation == "" {
		affiliation = defaultAffiliation
	}
	return fmt.Sprintf("Peneliti mengucapkan terima kasih kepada %s serta semua pihak yang telah mendukung penelitian ini.", affiliation)
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
