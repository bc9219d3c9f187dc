// Package i18n holds the two display languages of the site (English and
// Albanian) and the bilingual text pairs rendered to visitors. The language
// is resolved per request and passed explicitly; there is no process-wide
// current language.
package i18n

import (
	"strings"

	"github.com/gin-gonic/gin"
)

type Lang string

const (
	English  Lang = "en"
	Albanian Lang = "sq"
)

// LangCookie stores the visitor's language choice between requests.
const LangCookie = "lang"

// Parse maps a language preference to one of the two supported languages.
// Matching is case-insensitive on the two-letter prefix ("sq", "sq-AL", "SQ"
// all resolve to Albanian); everything else falls back to English.
func Parse(s string) Lang {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(s)), "sq") {
		return Albanian
	}
	return English
}

// FromRequest resolves the request language: the "lang" query parameter
// wins, then the language cookie, then the given default.
func FromRequest(c *gin.Context, fallback Lang) Lang {
	if q := c.Query("lang"); q != "" {
		return Parse(q)
	}
	if v, err := c.Cookie(LangCookie); err == nil && v != "" {
		return Parse(v)
	}
	return fallback
}

// Text is a user-facing string in both languages.
type Text struct {
	En string
	Sq string
}

func T(en, sq string) Text {
	return Text{En: en, Sq: sq}
}

// In picks the variant for lang. The English variant is the default and is
// returned as stored even when empty.
func (t Text) In(lang Lang) string {
	if lang == Albanian {
		return t.Sq
	}
	return t.En
}
