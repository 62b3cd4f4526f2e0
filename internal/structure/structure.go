// Package structure detects document structure markers in raw thesis text.
// Detection is purely descriptive: the result is attached to per-file
// extraction output and never gates merging logic.
package structure

import "regexp"

// Info describes the structure markers found in a text blob.
type Info struct {
	HasAbstract    bool
	HasChapters    bool
	ChapterMarkers []string
	Sections       []string
}

var (
	abstractRe = regexp.MustCompile(`(?i)abstract|abstrak`)
	chapterRe  = regexp.MustCompile(`(?i)(?:BAB|CHAPTER)\s+(?:[IVX]+|\d+)`)
)

// sectionPatterns lists the Indonesian academic section headings we look for.
// The canonical name (single spaces) is recorded once if the pattern appears
// anywhere in the text.
var sectionPatterns = []struct {
	re   *regexp.Regexp
	name string
}{
	{regexp.MustCompile(`(?i)pendahuluan`), "pendahuluan"},
	{regexp.MustCompile(`(?i)latar\s+belakang`), "latar belakang"},
	{regexp.MustCompile(`(?i)tinjauan\s+pustaka`), "tinjauan pustaka"},
	{regexp.MustCompile(`(?i)kajian\s+pustaka`), "kajian pustaka"},
	{regexp.MustCompile(`(?i)metode\s+penelitian`), "metode penelitian"},
	{regexp.MustCompile(`(?i)hasil\s+dan\s+pembahasan`), "hasil dan pembahasan"},
	{regexp.MustCompile(`(?i)hasil\s+penelitian`), "hasil penelitian"},
	{regexp.MustCompile(`(?i)pembahasan`), "pembahasan"},
	{regexp.MustCompile(`(?i)kesimpulan`), "kesimpulan"},
	{regexp.MustCompile(`(?i)simpulan`), "simpulan"},
	{regexp.MustCompile(`(?i)saran`), "saran"},
	{regexp.MustCompile(`(?i)daftar\s+pustaka`), "daftar pustaka"},
	{regexp.MustCompile(`(?i)referensi`), "referensi"},
}

// Detect scans text for abstract markers, chapter markers and known section
// headings. It is a pure function of its input: identical text yields
// identical results.
func Detect(text string) Info {
	info := Info{
		HasAbstract:    abstractRe.MatchString(text),
		ChapterMarkers: chapterRe.FindAllString(text, -1),
	}
	info.HasChapters = len(info.ChapterMarkers) > 0

	for _, sp := range sectionPatterns {
		if sp.re.MatchString(text) {
			info.Sections = append(info.Sections, sp.name)
		}
	}
	return info
}
