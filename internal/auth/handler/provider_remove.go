package handler

import (
	"net/http"
	"time"

	"riess-auth/internal/middleware"
	"riess-auth/internal/session"

	"github.com/gin-gonic/gin"
)

// RemoveOAuthProvider unlinks an additional provider from the
// authenticated user. Removing a provider that was never linked is a
// no-op and still succeeds.
func (h *Handler) RemoveOAuthProvider(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, apiError("User is not authenticated"))
		return
	}

	providerName := c.Query("provider")
	if providerName == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	u, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil || u == nil {
		c.JSON(http.StatusUnauthorized, apiError("User is not authenticated"))
		return
	}

	delete(u.AdditionalProvidersData, providerName)

	if err := h.users.UpdateAdditionalProviders(c.Request.Context(), u); err != nil {
		c.JSON(http.StatusUnprocessableEntity, apiError(err.Error()))
		return
	}

	h.refreshSession(c)

	c.JSON(http.StatusOK, u)
}

// refreshSession extends the caller's session after a profile change,
// the equivalent of re-establishing the login.
func (h *Handler) refreshSession(c *gin.Context) {
	cookie, err := c.Request.Cookie(session.CookieName)
	if err != nil || cookie.Value == "" {
		return
	}

	sess, err := h.sessionStore.Get(c.Request.Context(), cookie.Value)
	if err != nil || sess == nil {
		return
	}

	sess.ExpiresAt = time.Now().Add(sessionTTL)
	_ = h.sessionStore.Update(c.Request.Context(), *sess)
	session.SetCookie(c.Writer, sess.SessionID, sess.ExpiresAt, session.DefaultOptions())
}
