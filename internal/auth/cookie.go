package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CookieWriter hands the session token to the client and clears it on
// logout. The cookie is always httpOnly; release deployments additionally
// mark it Secure with SameSite=None so the cross-origin browser client can
// send it, while development keeps SameSite=Strict.
type CookieWriter struct {
	Name       string
	Domain     string
	Production bool
	MaxAge     int // seconds
}

// NewCookieWriter builds a writer for the named session cookie.
func NewCookieWriter(name, domain string, production bool, maxAge int) *CookieWriter {
	if name == "" {
		name = "token"
	}
	return &CookieWriter{
		Name:       name,
		Domain:     domain,
		Production: production,
		MaxAge:     maxAge,
	}
}

// Read returns the session token from the request, or "" when absent.
func (w *CookieWriter) Read(c *gin.Context) string {
	token, err := c.Cookie(w.Name)
	if err != nil {
		return ""
	}
	return token
}

// Write sets the session cookie carrying the token.
func (w *CookieWriter) Write(c *gin.Context, token string) {
	c.SetSameSite(w.sameSite())
	c.SetCookie(w.Name, token, w.MaxAge, "/", w.Domain, w.Production, true)
}

// Clear overwrites the stored credential with an immediately expired one.
// This is client-side invalidation only: there is no server-side revocation
// list, so a token captured before logout remains cryptographically valid
// until its natural expiry.
func (w *CookieWriter) Clear(c *gin.Context) {
	c.SetSameSite(w.sameSite())
	c.SetCookie(w.Name, "", -1, "/", w.Domain, w.Production, true)
}

func (w *CookieWriter) sameSite() http.SameSite {
	if w.Production {
		return http.SameSiteNoneMode
	}
	return http.SameSiteStrictMode
}
