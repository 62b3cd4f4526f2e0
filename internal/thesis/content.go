package thesis

// FileDescriptor identifies one uploaded thesis file. It is immutable once
// created and consumed exactly once by extraction; it is not retained in
// Content.
type FileDescriptor struct {
	Filename string
	Filepath string
	Type     string // "pdf" or "docx"
}

// Content is the structured representation of a thesis extracted from raw
// uploaded files. It is owned by the assembler while files are merged, then
// passed downstream; Metadata is recomputed from the final merged state and
// is read-only afterward.
type Content struct {
	Title  string
	Author string

	AbstractEN string
	AbstractID string
	KeywordsEN string
	KeywordsID string

	// Chapters maps a closed set of keys ("bab_i".."bab_v") to the raw
	// chapter text. Files matching no known chapter contribute to RawText
	// only.
	Chapters map[string]string

	// Derived substrings of specific chapters. Each may be empty.
	Background       string
	Objectives       string
	LiteratureReview string
	Methodology      string
	Results          string
	Conclusions      string

	// Enhanced variants produced by the enhancement service. Empty unless
	// enhancement ran and succeeded for that field.
	MethodologySummary string
	ResultsSummary     string
	ConclusionsSummary string

	// References holds the raw reference strings in extraction order,
	// before cleaning and formatting.
	References []string

	// RawText accumulates every file's extracted text regardless of role.
	// It is the fallback source for abstract extraction.
	RawText string

	Metadata Metadata
}

// NewContent returns an empty Content with its chapter map initialized.
func NewContent() *Content {
	return &Content{Chapters: make(map[string]string)}
}

// Metadata holds counts derived once from the final merged content.
type Metadata struct {
	WordCount      int
	ChapterCount   int
	ReferenceCount int
	HasMethodology bool
	HasResults     bool
}
