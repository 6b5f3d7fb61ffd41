// Package language normalizes content-language tags and builds the
// query predicates that select articles by language.
package language

import (
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"
)

type Language string

const (
	English Language = "en"
	Kannada Language = "kn"
	// All is only meaningful at query time; stored articles never carry it.
	All Language = "all"
)

// Resolve maps free-form input to the concrete language stored on a record.
// Anything other than "kn", including "all", resolves to English.
func Resolve(input string) Language {
	if normalize(input) == string(Kannada) {
		return Kannada
	}
	return English
}

// Filter selects articles by language at read time.
type Filter struct {
	lang Language
}

// NewFilter builds a filter from a query parameter. Unknown and empty
// values select English.
func NewFilter(input string) Filter {
	switch normalize(input) {
	case string(Kannada):
		return Filter{lang: Kannada}
	case string(All):
		return Filter{lang: All}
	default:
		return Filter{lang: English}
	}
}

func (f Filter) Language() Language {
	if f.lang == "" {
		return English
	}
	return f.lang
}

// Matches reports whether a stored content_language value passes the
// filter. An empty value stands for a legacy row without the column set.
func (f Filter) Matches(stored string) bool {
	switch f.Language() {
	case All:
		return true
	case Kannada:
		return stored == string(Kannada)
	default:
		return stored == "" || stored == string(English)
	}
}

// Scope applies the filter to a gorm query on a table with a
// content_language column. Legacy NULL rows count as English.
func (f Filter) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch f.Language() {
		case All:
			return db
		case Kannada:
			return db.Where("content_language = ?", string(Kannada))
		default:
			return db.Where("(content_language IS NULL OR content_language IN ?)", []string{"", string(English)})
		}
	}
}

// kannadaThreshold is the share of Kannada code points above which text
// is classified as Kannada.
const kannadaThreshold = 0.10

// Detect classifies text as Kannada when more than 10% of its code points
// fall in the Kannada block (U+0C80–U+0CFF).
func Detect(text string) Language {
	total := utf8.RuneCountInString(text)
	if total == 0 {
		return English
	}

	kannada := 0
	for _, r := range text {
		if r >= 0x0C80 && r <= 0x0CFF {
			kannada++
		}
	}

	if float64(kannada)/float64(total) > kannadaThreshold {
		return Kannada
	}
	return English
}

func normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}
