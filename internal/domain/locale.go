package domain

import "strings"

// Locale is one of the display languages the site ships string tables for.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleVI Locale = "vi"
	LocaleJA Locale = "ja"
)

// Locales returns the supported locales, default first.
func Locales() []Locale {
	return []Locale{LocaleEN, LocaleVI, LocaleJA}
}

// ParseLocale maps a language attribute ("vi-VN", "JA", "") to a Locale. Unknown values are English.
func ParseLocale(s string) Locale {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) > 2 {
		s = s[:2]
	}
	switch s {
	case "vi":
		return LocaleVI
	case "ja":
		return LocaleJA
	}
	return LocaleEN
}

// CompanyName is the brand name; Vietnamese keeps the diacritics.
func CompanyName(loc Locale) string {
	if loc == LocaleVI {
		return "Hằng Kỷ Investment Group"
	}
	return "Hang Ky Investment Group"
}

// CompanyNameFull is the registered legal name.
func CompanyNameFull(loc Locale) string {
	return CompanyName(loc) + " Joint Stock Company"
}

func CompanyNameShort(loc Locale) string {
	if loc == LocaleVI {
		return "Hằng Kỷ"
	}
	return "Hang Ky"
}
