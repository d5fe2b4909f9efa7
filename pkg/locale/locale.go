package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale is one of the two languages the assistant speaks. Profiles are
// namespaced per locale, so a bilingual user holds two independent documents.
type Locale string

const (
	EN Locale = "en"
	ES Locale = "es"
)

// Default is used when neither query parameter nor Accept-Language resolves.
const Default = EN

var matcher = language.NewMatcher([]language.Tag{
	language.English, // first tag is the fallback
	language.Spanish,
})

// Match resolves a raw language hint (query param value or an Accept-Language
// header) to a supported locale.
func Match(raw string) Locale {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(raw)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, _ := matcher.Match(tags...)
	if idx == 1 {
		return ES
	}
	return EN
}

// IsSupported reports whether s names one of the two locales exactly.
func IsSupported(s string) bool {
	return s == string(EN) || s == string(ES)
}

func (l Locale) String() string { return string(l) }

// Spanish reports whether the locale is Spanish; prompt and render text
// branch on this.
func (l Locale) Spanish() bool { return l == ES }
