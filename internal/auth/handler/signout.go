package handler

import (
	"net/http"

	"riess-auth/internal/session"

	"github.com/gin-gonic/gin"
)

// Signout invalidates the session and clears the cookies. It is
// idempotent and succeeds for unauthenticated callers too.
func (h *Handler) Signout(c *gin.Context) {
	cookie, err := c.Request.Cookie(session.CookieName)
	if err == nil && cookie.Value != "" {
		// Best-effort store delete; an expired session is fine.
		_ = h.sessionStore.Delete(c.Request.Context(), cookie.Value)
	}

	session.ClearCookie(c.Writer, session.DefaultOptions())
	clearTokenCookie(c)

	c.Status(http.StatusOK)
}
