package i18n

// LocalizedText maps each locale to its display string
type LocalizedText map[Locale]string

// Resolve returns the text for locale.
//
// Fallback order:
//  1. text[locale] when present and non-empty
//  2. text[defaultLocale] when present
//  3. "" (untranslated content degrades to an empty label, it never panics)
//
// Resolve is pure; identical inputs always yield identical output.
func Resolve(text LocalizedText, locale, defaultLocale Locale) string {
	if v, ok := text[locale]; ok && v != "" {
		return v
	}
	if v, ok := text[defaultLocale]; ok {
		return v
	}
	return ""
}

// In resolves the text for locale using DefaultLocale as fallback
func (t LocalizedText) In(locale Locale) string {
	return Resolve(t, locale, DefaultLocale)
}

// MissingLocales returns supported locales without a non-empty value
func (t LocalizedText) MissingLocales() []Locale {
	var missing []Locale
	for _, loc := range supportedLocales {
		if t[loc] == "" {
			missing = append(missing, loc)
		}
	}
	return missing
}

// Clone returns an independent copy
func (t LocalizedText) Clone() LocalizedText {
	if t == nil {
		return nil
	}
	out := make(LocalizedText, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Text builds a LocalizedText from Russian and Uzbek strings
func Text(ru, uz string) LocalizedText {
	return LocalizedText{LocaleRU: ru, LocaleUZ: uz}
}
