package enhance

import (
	"fmt"
	"strings"
)

// Input caps keep prompts bounded; the service summarizes, it does not chunk.
const (
	maxKeywordInput = 2000
	maxSummaryInput = 3000
)

func languageName(language string) string {
	if strings.EqualFold(language, "indonesian") {
		return "Indonesian"
	}
	return "English"
}

// buildPrompt assembles the fixed-contract prompt for an enhancement call.
func buildPrompt(text string, kind Kind, language string, maxWords int) string {
	switch kind {
	case KindKeywords:
		return fmt.Sprintf(`Extract %d most relevant keywords from the following text in %s.

Return ONLY the keywords separated by commas, nothing else.

Text:
%s

Keywords:`, maxWords, languageName(language), clip(text, maxKeywordInput))

	case KindSummary:
		return fmt.Sprintf(`Summarize the following section from a thesis into a concise paragraph suitable for a journal article (maximum %d words).

Focus on:
- Key points and findings
- Methodology or approach (if applicable)
- Main conclusions or implications

Text to summarize:
%s

Summary:`, maxWords, clip(text, maxSummaryInput))

	default: // KindAbstract
		return fmt.Sprintf(`Improve the following research abstract for a journal article in %s.

Requirements:
- Keep it between 150-250 words
- Clear structure: background, objectives, methods, results, conclusions
- Use academic language
- Keep all specific findings and data
- Do NOT add information not in the original text

Original abstract:
%s

Enhanced abstract:`, languageName(language), text)
	}
}

func clip(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
