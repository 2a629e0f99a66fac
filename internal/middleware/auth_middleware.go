package middleware

import (
	"net/http"
	"net/url"

	"tareas/internal/auth"

	"github.com/gin-gonic/gin"
)

const (
	// PrincipalKey is the gin context key of the authenticated auth.Principal.
	PrincipalKey = "principal"

	SessionCookie = "sessionid"
	LoginPath     = "/login/"
)

// Session resolves the session cookie into a Principal. Requests without a
// valid cookie continue anonymously; a stale cookie is cleared with the same
// secure attribute it was issued with.
func Session(tokens *auth.TokenManager, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(SessionCookie)
		if err == nil && raw != "" {
			principal, err := tokens.ParseToken(raw)
			if err != nil {
				ClearSession(c, secure)
			} else {
				c.Set(PrincipalKey, principal)
			}
		}
		c.Next()
	}
}

// LoginRequired sends anonymous requests to the login page, remembering where
// they were going.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			c.Redirect(http.StatusFound, LoginPath+"?next="+url.QueryEscape(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the request principal set by Session.
func CurrentUser(c *gin.Context) (auth.Principal, bool) {
	v, exists := c.Get(PrincipalKey)
	if !exists {
		return auth.Principal{}, false
	}
	principal, ok := v.(auth.Principal)
	return principal, ok
}

// Login issues the session cookie for principal.
func Login(c *gin.Context, tokens *auth.TokenManager, principal auth.Principal, secure bool) error {
	token, err := tokens.GenerateToken(principal)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, int(tokens.TTL().Seconds()), "/", "", secure, true)
	c.Set(PrincipalKey, principal)
	return nil
}

func ClearSession(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", secure, true)
}
