// Package i18n negotiates the request locale and translates user facing
// strings. Message keys are the English texts.
package i18n

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const (
	CookieName = "lang"
	printerKey = "i18n.printer"
	tagKey     = "i18n.tag"
)

// Supported lists the available locales; the first one is the fallback.
var Supported = []language.Tag{language.Spanish, language.English}

var (
	matcher = language.NewMatcher(Supported)
	cat     = buildCatalog()
)

// Translator formats message keys for one locale.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

func NewTranslator(tag language.Tag) *Translator {
	return &Translator{tag: tag, printer: message.NewPrinter(tag, message.Catalog(cat))}
}

// T translates key, applying args as fmt verbs when present.
func (t *Translator) T(key string, args ...any) string {
	return t.printer.Sprintf(key, args...)
}

// Lang is the base language code, used for the html lang attribute.
func (t *Translator) Lang() string {
	base, _ := t.tag.Base()
	return base.String()
}

// Resolve picks the locale from the lang cookie, then Accept-Language.
func Resolve(r *http.Request) language.Tag {
	var prefs []string
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		prefs = append(prefs, c.Value)
	}
	prefs = append(prefs, r.Header.Get("Accept-Language"))
	tag, _ := language.MatchStrings(matcher, prefs...)
	base, _ := tag.Base()
	return language.Make(base.String())
}

// IsSupported reports whether code names one of the Supported locales.
func IsSupported(code string) bool {
	tag, err := language.Parse(code)
	if err != nil {
		return false
	}
	_, _, confidence := matcher.Match(tag)
	return confidence == language.Exact
}

// Middleware stores the request Translator in the gin context.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tag := Resolve(c.Request)
		c.Set(tagKey, tag)
		c.Set(printerKey, NewTranslator(tag))
		c.Next()
	}
}

// From returns the request Translator, falling back to the default locale.
func From(c *gin.Context) *Translator {
	if v, ok := c.Get(printerKey); ok {
		if tr, ok := v.(*Translator); ok {
			return tr
		}
	}
	return NewTranslator(Supported[0])
}

// SetLanguage switches the locale cookie and redirects back.
//
// @Summary      Switch interface language
// @Tags         i18n
// @Accept       x-www-form-urlencoded
// @Param        language  formData  string  true   "es or en"
// @Param        next      formData  string  false  "local path to return to"
// @Success      302
// @Router       /i18n/ [post]
func SetLanguage(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		next := SafeRedirect(c.PostForm("next"), "")
		if next == "" {
			if ref, err := url.Parse(c.Request.Referer()); err == nil {
				next = SafeRedirect(ref.RequestURI(), "/")
			} else {
				next = "/"
			}
		}

		code := strings.ToLower(strings.TrimSpace(c.PostForm("language")))
		if IsSupported(code) {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(CookieName, code, 365*24*3600, "/", "", secure, false)
		}
		c.Redirect(http.StatusFound, next)
	}
}

// SafeRedirect returns target when it is a local absolute path, fallback otherwise.
func SafeRedirect(target, fallback string) string {
	if target == "" || !strings.HasPrefix(target, "/") ||
		strings.HasPrefix(target, "//") || strings.HasPrefix(target, `/\`) {
		return fallback
	}
	return target
}

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, es := range spanish {
		_ = b.SetString(language.Spanish, key, es)
	}
	for key := range spanish {
		_ = b.SetString(language.English, key, key)
	}
	return b
}
