package stubapi

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"

	"printduka-admin/pkg/log"
)

const (
	csrfCookieName = "csrftoken"
	csrfHeaderName = "X-CSRFToken"
	csrfCookieAge  = 31449600 // ~1 year, mirrors Django's default
)

// recovery turns panics into a 500 detail body instead of a dropped
// connection.
func recovery(l log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				l.Errorf(ctx, "Panic recovered: %v | Method: %s | Path: %s",
					err, c.Request.Method, c.Request.URL.Path)
				respondDetail(c, http.StatusInternalServerError, "Internal server error.")
				c.Abort()
			}
		}()
		c.Next()
	}
}

// csrf implements the double-submit contract: safe requests get a
// csrftoken cookie, unsafe requests must echo it in the X-CSRFToken
// header.
func (s *Server) csrf() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			if _, err := c.Cookie(csrfCookieName); err != nil {
				c.SetCookie(csrfCookieName, newCSRFToken(), csrfCookieAge,
					"/", s.cookie.Domain, s.cookie.Secure, false)
			}
			c.Next()
			return
		}

		cookie, err := c.Cookie(csrfCookieName)
		if err != nil {
			respondDetail(c, http.StatusForbidden, "CSRF Failed: CSRF cookie not set.")
			c.Abort()
			return
		}
		if header := c.GetHeader(csrfHeaderName); header == "" || header != cookie {
			respondDetail(c, http.StatusForbidden, "CSRF Failed: CSRF token missing or incorrect.")
			c.Abort()
			return
		}
		c.Next()
	}
}

// requireSession rejects requests without a valid session cookie.
func (s *Server) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(s.cookie.Name)
		if err != nil {
			respondDetail(c, http.StatusUnauthorized, "Authentication credentials were not provided.")
			c.Abort()
			return
		}
		claims, err := s.sessions.Verify(token)
		if err != nil {
			respondDetail(c, http.StatusUnauthorized, "Invalid or expired session.")
			c.Abort()
			return
		}
		c.Set("session", claims)
		c.Next()
	}
}

func newCSRFToken() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "0000000000000000"
	}
	return hex.EncodeToString(buf)
}
