package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	redirectCookieName = "__oauth_redirect"
	redirectTTL        = 5 * time.Minute

	authFailedPath = "/?err=authentication-failed"
)

// noReturnPaths are never used as post-login destinations; landing
// back on an auth form after signing in is useless.
var noReturnPaths = []string{"/signin", "/signup", "/signout"}

// rememberRedirect stores the caller-supplied post-login path for the
// duration of the OAuth handshake. Only local paths are accepted.
func rememberRedirect(c *gin.Context, path string) {
	if !validRedirectPath(path) {
		return
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     redirectCookieName,
		Value:    path,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(redirectTTL.Seconds()),
	})
}

// takeRedirect returns the remembered post-login path, defaulting to
// "/", and clears the cookie.
func takeRedirect(c *gin.Context) string {
	target := "/"

	cookie, err := c.Request.Cookie(redirectCookieName)
	if err == nil && validRedirectPath(cookie.Value) {
		target = cookie.Value
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     redirectCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	return target
}

// validRedirectPath accepts local absolute paths only, keeping the
// callback from becoming an open redirect.
func validRedirectPath(path string) bool {
	if path == "" || !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") {
		return false
	}
	for _, blocked := range noReturnPaths {
		if path == blocked {
			return false
		}
	}
	return true
}
