// Package extract holds the section-extraction heuristics applied to raw
// thesis text. Each heuristic is a named pure function so it can be unit
// tested on its own.
package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	institutionRe = regexp.MustCompile(`(?i)universitas|university|sekolah|institut`)
	studentIDRe   = regexp.MustCompile(`\d{9,}`)

	refHeaderRe = regexp.MustCompile(`(?i)^daftar\s+pustaka|^references|^bibliography`)
	refStartRe  = regexp.MustCompile(`^[\[\(]?\d+[\]\)]?|^[A-Z][a-z]+,?\s+[A-Z]`)

	abstractEN = regexp.MustCompile(`(?is)ABSTRACT(.*?)(?:Keywords|ABSTRAK|CHAPTER|BAB)`)
	abstractID = regexp.MustCompile(`(?is)ABSTRAK(.*?)(?:Kata\s+Kunci|CHAPTER|BAB|LATAR)`)
)

// maxAbstractWords caps the length of an abstract pulled out of raw text.
const maxAbstractWords = 500

// TitleAuthor extracts the thesis title and author from cover-page text.
// The title is the first of the first 10 non-blank lines that is longer than
// 20 characters, has more than 3 words, and is not an institution name. The
// author is the line immediately preceding the first line containing a
// student-ID number (9+ digits). Either may come back empty.
func TitleAuthor(text string) (title, author string) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			lines = append(lines, s)
		}
	}

	limit := len(lines)
	if limit > 10 {
		limit = 10
	}
	for _, line := range lines[:limit] {
		if utf8.RuneCountInString(line) > 20 &&
			len(strings.Fields(line)) > 3 &&
			!institutionRe.MatchString(line) {
			title = line
			break
		}
	}

	for i, line := range lines {
		if studentIDRe.MatchString(line) {
			if i > 0 {
				author = lines[i-1]
			}
			break
		}
	}

	return title, author
}

// Section returns the substring between the first case-insensitive match of
// namePattern and the next chapter marker, numbered subsection marker
// (e.g. "3.1"), or end of text. namePattern is a regular expression fragment
// such as "latar belakang" or "simpulan|kesimpulan". Returns "" when the
// pattern is absent.
func Section(text, namePattern string) string {
	re, err := regexp.Compile(`(?is)(?:` + namePattern + `)(.*?)(?:(?:BAB|CHAPTER|\d+\.\d+)|$)`)
	if err != nil {
		return ""
	}
	if m := re.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// References parses a bibliography text into individual reference entries.
// A line starting with a bracketed/parenthesized number or an author-name
// capital pattern begins a new entry; other non-empty lines are space-joined
// onto the current one. Header lines ("daftar pustaka", "references",
// "bibliography") are skipped.
func References(text string) []string {
	var refs []string
	var current string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		if refHeaderRe.MatchString(line) {
			continue
		}

		if refStartRe.MatchString(line) {
			if current != "" {
				refs = append(refs, strings.TrimSpace(current))
			}
			current = line
		} else if current != "" && line != "" {
			current += " " + line
		}
	}

	if current != "" {
		refs = append(refs, strings.TrimSpace(current))
	}
	return refs
}

// Abstract pulls an abstract out of raw text using language-specific
// boundary patterns: it starts at an ABSTRACT/ABSTRAK marker and ends at the
// first keywords or chapter marker. The result is capped at 500 words with a
// trailing ellipsis when truncated. language is "english" or "indonesian".
func Abstract(text, language string) string {
	re := abstractID
	if language == "english" {
		re = abstractEN
	}

	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}

	abstract := strings.TrimSpace(m[1])
	words := strings.Fields(abstract)
	if len(words) > maxAbstractWords {
		abstract = strings.Join(words[:maxAbstractWords], " ") + "..."
	}
	return abstract
}
