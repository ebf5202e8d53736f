package scoring

import (
	"strings"
	"unicode"

	"github.com/iumatch/coursematch-backend/internal/model"
)

// SchoolForMajor maps a free-text major onto a school via the configured
// Luddy keyword list. Phrases match case-insensitively anywhere in the
// major; short abbreviations like "cs" match whole words only, so they do
// not fire inside majors like "Economics". Everything that matches nothing
// defaults to Kelley. Total: there is no error case.
func (e *Engine) SchoolForMajor(major string) model.School {
	m := strings.ToLower(major)
	words := majorWords(m)
	if len(words) == 0 {
		return model.SchoolKelley
	}

	for _, kw := range e.cfg.School.LuddyMajorKeywords {
		if isAbbreviation(kw) {
			for _, w := range words {
				if w == kw {
					return model.SchoolLuddy
				}
			}
			continue
		}
		if strings.Contains(m, kw) {
			return model.SchoolLuddy
		}
	}
	return model.SchoolKelley
}

// majorWords splits an already-lowercased major into its words, dropping
// punctuation and degree suffixes like "(B.S.)".
func majorWords(m string) []string {
	return strings.FieldsFunc(m, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// isAbbreviation reports whether a keyword is a short form that must match
// a whole word rather than a substring.
func isAbbreviation(kw string) bool {
	return len(kw) <= 4 && !strings.Contains(kw, " ")
}

// schoolEligible reports whether a student of the given school may take
// the course at all. General courses are open to everyone.
func schoolEligible(student model.School, course model.School) bool {
	return course == model.SchoolGeneral || course == student
}
