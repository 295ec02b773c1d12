package middleware

import (
	"time"

	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/domain"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"
)

const (
	localeLocal  = "locale"
	LocaleCookie = "lang"
	localeQuery  = "lang"
)

var localeMatcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Vietnamese,
	language.Japanese,
})

// Locale resolves the display locale for the request: lang query, then lang cookie,
// then Accept-Language, then def. An explicit lang query also sets the cookie.
func Locale(def domain.Locale) fiber.Handler {
	return func(c *fiber.Ctx) error {
		loc, ok := supported(c.Query(localeQuery))
		if ok {
			c.Cookie(&fiber.Cookie{
				Name:     LocaleCookie,
				Value:    string(loc),
				Path:     "/",
				Expires:  time.Now().Add(365 * 24 * time.Hour),
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		} else if loc, ok = supported(c.Cookies(LocaleCookie)); !ok {
			loc = negotiate(c.Get(fiber.HeaderAcceptLanguage), def)
		}
		c.Locals(localeLocal, loc)
		c.Set(fiber.HeaderContentLanguage, string(loc))
		return c.Next()
	}
}

// GetLocale returns the resolved locale, English when the Locale middleware did not run.
func GetLocale(c *fiber.Ctx) domain.Locale {
	if loc, ok := c.Locals(localeLocal).(domain.Locale); ok {
		return loc
	}
	return domain.LocaleEN
}

func supported(s string) (domain.Locale, bool) {
	for _, loc := range domain.Locales() {
		if s == string(loc) {
			return loc, true
		}
	}
	return "", false
}

func negotiate(header string, def domain.Locale) domain.Locale {
	if header == "" {
		return def
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return def
	}
	_, idx, conf := localeMatcher.Match(tags...)
	if conf == language.No {
		return def
	}
	return domain.Locales()[idx]
}
