package extract

import "strings"

// Role classifies an uploaded file by its place in the thesis.
type Role int

const (
	RoleUnknown Role = iota
	RoleCover
	RoleChapter1
	RoleChapter2
	RoleChapter3
	RoleChapter4
	RoleChapter5
	RoleBibliography
)

// roleKeywords routes filenames to roles by substring match. Longer chapter
// keywords come first so "bab_ii" is not captured by the "bab_i" prefix.
var roleKeywords = []struct {
	keyword string
	role    Role
}{
	{"sampul", RoleCover},
	{"cover", RoleCover},
	{"bab_iii", RoleChapter3},
	{"bab_ii", RoleChapter2},
	{"bab_iv", RoleChapter4},
	{"bab_v", RoleChapter5},
	{"bab_i", RoleChapter1},
	{"bab_1", RoleChapter1},
	{"bab_2", RoleChapter2},
	{"bab_3", RoleChapter3},
	{"bab_4", RoleChapter4},
	{"bab_5", RoleChapter5},
	{"chapter_1", RoleChapter1},
	{"chapter_2", RoleChapter2},
	{"chapter_3", RoleChapter3},
	{"chapter_4", RoleChapter4},
	{"chapter_5", RoleChapter5},
	{"daftar", RoleBibliography},
	{"pustaka", RoleBibliography},
	{"reference", RoleBibliography},
}

// RoleFor classifies a filename. A file matching no keyword is RoleUnknown
// and contributes only to the accumulated raw text.
func RoleFor(filename string) Role {
	lower := strings.ToLower(filename)
	for _, rk := range roleKeywords {
		if strings.Contains(lower, rk.keyword) {
			return rk.role
		}
	}
	return RoleUnknown
}

// Priority orders files for processing: cover first, chapters in order,
// bibliography after, unclassified files last.
func (r Role) Priority() int {
	switch r {
	case RoleCover:
		return 0
	case RoleChapter1:
		return 1
	case RoleChapter2:
		return 2
	case RoleChapter3:
		return 3
	case RoleChapter4:
		return 4
	case RoleChapter5:
		return 5
	case RoleBibliography:
		return 6
	}
	return 99
}

// ChapterKey returns the chapter map key for chapter roles, "" otherwise.
func (r Role) ChapterKey() string {
	switch r {
	case RoleChapter1:
		return "bab_i"
	case RoleChapter2:
		return "bab_ii"
	case RoleChapter3:
		return "bab_iii"
	case RoleChapter4:
		return "bab_iv"
	case RoleChapter5:
		return "bab_v"
	}
	return ""
}
