package thesis

// Settings carries the per-request conversion options supplied by the user.
// All fields are optional; DefaultSettings documents the defaults.
type Settings struct {
	Template        string // journal template name
	OutputFormat    string // "docx" or "pdf"
	UseAI           bool
	AIProvider      string // "claude" or "gpt4"
	MaxPages        int
	IncludeAbstract bool
	MinReferences   int

	AuthorName  string
	Coauthors   string
	Affiliation string
	Email       string
}

// DefaultSettings returns the documented defaults for a conversion request.
func DefaultSettings() Settings {
	return Settings{
		Template:        "unm",
		OutputFormat:    "docx",
		UseAI:           true,
		AIProvider:      "claude",
		MaxPages:        10,
		IncludeAbstract: true,
		MinReferences:   15,
	}
}
