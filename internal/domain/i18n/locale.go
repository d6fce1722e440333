// Package i18n holds the storefront's locale model and localized text resolution.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale is one of the storefront's display languages
type Locale string

const (
	LocaleRU Locale = "ru"
	LocaleUZ Locale = "uz"
)

// DefaultLocale is used whenever a requested locale is absent or unsupported
const DefaultLocale = LocaleRU

// supportedTags is ordered so that index 0 is the default locale
var supportedTags = []language.Tag{language.Russian, language.Uzbek}

var supportedLocales = []Locale{LocaleRU, LocaleUZ}

var matcher = language.NewMatcher(supportedTags)

// SupportedLocales returns every supported locale, default first
func SupportedLocales() []Locale {
	result := make([]Locale, len(supportedLocales))
	copy(result, supportedLocales)
	return result
}

// String returns the locale code
func (l Locale) String() string {
	return string(l)
}

// IsValid returns true if the locale is supported
func (l Locale) IsValid() bool {
	switch l {
	case LocaleRU, LocaleUZ:
		return true
	default:
		return false
	}
}

// ParseLocale parses a BCP 47 tag ("ru", "uz-Latn-UZ", "RU") into a supported locale.
// The second return value is false when the tag is malformed or its base
// language is not supported.
func ParseLocale(s string) (Locale, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultLocale, false
	}
	tag, err := language.Parse(s)
	if err != nil {
		return DefaultLocale, false
	}
	base, _ := tag.Base()
	loc := Locale(base.String())
	if !loc.IsValid() {
		return DefaultLocale, false
	}
	return loc, true
}

// MatchAcceptLanguage picks the best supported locale for an Accept-Language header.
// Falls back to DefaultLocale when the header is empty, malformed, or matches nothing.
func MatchAcceptLanguage(header string) Locale {
	loc, _ := NegotiateAcceptLanguage(header)
	return loc
}

// NegotiateAcceptLanguage is MatchAcceptLanguage reporting whether anything matched
func NegotiateAcceptLanguage(header string) (Locale, bool) {
	if strings.TrimSpace(header) == "" {
		return DefaultLocale, false
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return DefaultLocale, false
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultLocale, false
	}
	return supportedLocales[idx], true
}

// Tag returns the language tag for the locale
func (l Locale) Tag() language.Tag {
	if l == LocaleUZ {
		return language.Uzbek
	}
	return language.Russian
}
