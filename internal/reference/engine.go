// Package reference cleans, sorts, validates and reformats bibliography
// entries against journal submission rules.
package reference

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Policy thresholds for journal submission.
const (
	minReferenceLen = 20 // cleaned entries at or below this are parsing noise
	minCountDefault = 15
	recencyWindow   = 10 // years
	recentRatioMin  = 80.0
	journalRatioMin = 80.0
	apaRatioMin     = 90.0
)

var (
	leadingMarkerRe = regexp.MustCompile(`^\s*[\[\(]?\d+[\]\)]?[.)]?\s*`)
	leadingBulletRe = regexp.MustCompile(`^\s*[•\-\*]\s*`)
	whitespaceRe    = regexp.MustCompile(`\s+`)

	parenYearRe   = regexp.MustCompile(`\((\d{4})\)`)
	anyYearRe     = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	authorFirstRe = regexp.MustCompile(`^[^(]+\(\d{4}\)`)
	journalRe     = regexp.MustCompile(`(?i)journal|jurnal|proceedings|conference`)
)

// Report is the result of validating a reference list. IsValid depends on
// the total count and the aggregate recommendations only; a per-item issue
// that does not drag a ratio below threshold does not block validity.
type Report struct {
	TotalCount        int
	RecentCount       int
	JournalCount      int
	APACompliantCount int
	Issues            []string
	Recommendations   []string
	IsValid           bool
}

// ShortfallError reports a reference list below the required minimum. It is
// a warning, not a failure: the formatted references are still returned and
// the caller decides whether to block.
type ShortfallError struct {
	Count int
	Min   int
}

func (e *ShortfallError) Error() string {
	return fmt.Sprintf("only %d references found, minimum required %d", e.Count, e.Min)
}

// Engine applies citation-style and recency policy. The clock is injectable
// so tests can pin the policy year.
type Engine struct {
	now func() time.Time
}

func NewEngine(now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{now: now}
}

// minYear is the oldest acceptable publication year under the recency policy.
func (e *Engine) minYear() int {
	return e.now().Year() - recencyWindow
}

// Format cleans and sorts raw references. Entries that clean down to 20
// characters or fewer are dropped as parsing noise. The result is sorted by
// the text before the first period (first-author surname proxy), stable on
// ties, and is idempotent: formatting formatted output is a no-op. When the
// result is shorter than minCount the references are returned together with
// a non-fatal *ShortfallError.
func (e *Engine) Format(raw []string, minCount int) ([]string, error) {
	if minCount <= 0 {
		minCount = minCountDefault
	}

	formatted := make([]string, 0, len(raw))
	for _, ref := range raw {
		cleaned := CleanReference(ref)
		if len(cleaned) > minReferenceLen {
			formatted = append(formatted, cleaned)
		}
	}

	sortStableByAuthor(formatted)

	if len(formatted) < minCount {
		return formatted, &ShortfallError{Count: len(formatted), Min: minCount}
	}
	return formatted, nil
}

func sortStableByAuthor(refs []string) {
	key := func(ref string) string {
		if i := strings.Index(ref, "."); i >= 0 {
			return ref[:i]
		}
		return ref
	}
	// Insertion sort keeps equal keys in input order.
	for i := 1; i < len(refs); i++ {
		for j := i; j > 0 && key(refs[j]) < key(refs[j-1]); j-- {
			refs[j], refs[j-1] = refs[j-1], refs[j]
		}
	}
}

// CleanReference strips a leading numeric or bullet marker, collapses
// internal whitespace and guarantees a single trailing period.
func CleanReference(ref string) string {
	ref = leadingMarkerRe.ReplaceAllString(ref, "")
	ref = leadingBulletRe.ReplaceAllString(ref, "")
	ref = whitespaceRe.ReplaceAllString(ref, " ")
	ref = strings.TrimSpace(ref)
	if ref != "" && !strings.HasSuffix(ref, ".") {
		ref += "."
	}
	return ref
}

// Validate checks a reference list against journal requirements: recency
// (parenthesized year within the last 10 years), journal-sourced ratio, and
// APA compliance. Issues are per-reference (1-indexed); recommendations are
// aggregate and all independently evaluated.
func (e *Engine) Validate(refs []string) Report {
	r := Report{TotalCount: len(refs)}
	minYear := e.minYear()

	for i, ref := range refs {
		n := i + 1

		if m := parenYearRe.FindStringSubmatch(ref); m != nil {
			year, _ := strconv.Atoi(m[1])
			if year >= minYear {
				r.RecentCount++
			} else {
				r.Issues = append(r.Issues,
					fmt.Sprintf("Reference %d: Year %d is too old (minimum %d)", n, year, minYear))
			}
		} else {
			r.Issues = append(r.Issues, fmt.Sprintf("Reference %d: No year found", n))
		}

		if journalRe.MatchString(ref) {
			r.JournalCount++
		}

		if IsAPACompliant(ref) {
			r.APACompliantCount++
		} else {
			r.Issues = append(r.Issues, fmt.Sprintf("Reference %d: Not in APA format", n))
		}
	}

	if r.TotalCount < minCountDefault {
		r.Recommendations = append(r.Recommendations,
			fmt.Sprintf("Add %d more references (minimum %d required)",
				minCountDefault-r.TotalCount, minCountDefault))
	}

	if r.TotalCount > 0 {
		recentPct := float64(r.RecentCount) / float64(r.TotalCount) * 100
		journalPct := float64(r.JournalCount) / float64(r.TotalCount) * 100
		apaPct := float64(r.APACompliantCount) / float64(r.TotalCount) * 100

		if recentPct < recentRatioMin {
			r.Recommendations = append(r.Recommendations,
				fmt.Sprintf("Increase recent references to 80%% (currently %.1f%%)", recentPct))
		}
		if journalPct < journalRatioMin {
			r.Recommendations = append(r.Recommendations,
				fmt.Sprintf("Increase journal references to 80%% (currently %.1f%%)", journalPct))
		}
		if apaPct < apaRatioMin {
			r.Recommendations = append(r.Recommendations,
				fmt.Sprintf("Fix APA formatting (currently %.1f%% compliant)", apaPct))
		}
	}

	r.IsValid = r.TotalCount >= minCountDefault && len(r.Recommendations) == 0
	return r
}

// IsAPACompliant reports whether a reference has the basic APA shape:
// an author segment followed by a parenthesized four-digit year, with no
// other opening parenthesis before the year.
func IsAPACompliant(ref string) bool {
	return parenYearRe.MatchString(ref) && authorFirstRe.MatchString(ref)
}

// ConvertToAPA attempts a best-effort reformat into "Author. (Year). Rest."
// shape using the first four-digit year token found anywhere in the string.
// A reference without a year token is returned unchanged; a year is never
// fabricated.
func ConvertToAPA(ref string) string {
	if IsAPACompliant(ref) {
		return ref
	}

	loc := anyYearRe.FindStringIndex(ref)
	if loc == nil {
		return ref
	}

	year := ref[loc[0]:loc[1]]
	author := strings.TrimSpace(ref[:loc[0]])
	rest := strings.TrimSpace(ref[loc[1]:])

	if author == "" {
		return ref
	}
	author = strings.TrimRight(author, ",.;")

	apa := fmt.Sprintf("%s. (%s). %s", author, year, rest)
	if !strings.HasSuffix(apa, ".") {
		apa += "."
	}
	return apa
}
