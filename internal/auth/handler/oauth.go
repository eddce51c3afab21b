package handler

import (
	"net/http"
	"time"

	"riess-auth/internal/logger"
	"riess-auth/internal/session"
	"riess-auth/internal/user"

	"github.com/gin-gonic/gin"
)

// OAuthCall starts the named provider's OAuth handshake redirect. An
// optional ?redirect= query carries the post-login destination.
func (h *Handler) OAuthCall(c *gin.Context) {
	providerName := c.Param("strategy")

	p, err := h.providers.Get(providerName)
	if err != nil {
		c.JSON(http.StatusBadRequest, apiError("unknown oauth provider"))
		return
	}

	rememberRedirect(c, c.Query("redirect"))

	state := generateState(c)
	_, codeChallenge := generatePKCE(c)

	c.Redirect(http.StatusFound, p.AuthCodeURL(state, codeChallenge))
}

// OAuthCallback completes the handshake. Success issues a token
// cookie plus a session and redirects to the remembered path; every
// failure collapses into one opaque redirect so no provider or
// internal detail leaks to the client.
func (h *Handler) OAuthCallback(c *gin.Context) {
	providerName := c.Param("strategy")

	p, err := h.providers.Get(providerName)
	if err != nil {
		c.Redirect(http.StatusFound, authFailedPath)
		return
	}

	if !validateState(c) {
		logger.Warn("oauth callback state mismatch", map[string]any{
			"provider": providerName,
		})
		c.Redirect(http.StatusFound, authFailedPath)
		return
	}

	if errParam := c.Query("error"); errParam != "" {
		logger.Warn("oauth callback returned error", map[string]any{
			"provider": providerName,
			"error":    errParam,
			"desc":     c.Query("error_description"),
		})
		c.Redirect(http.StatusFound, authFailedPath)
		return
	}

	code := c.Query("code")
	codeVerifier := getPKCEVerifier(c)
	if code == "" || codeVerifier == "" {
		c.Redirect(http.StatusFound, authFailedPath)
		return
	}

	profile, err := p.ExchangeCode(c.Request.Context(), code, codeVerifier)
	if err != nil {
		logger.Error("oauth code exchange failed", map[string]any{
			"provider": providerName,
			"error":    err.Error(),
		})
		c.Redirect(http.StatusFound, authFailedPath)
		return
	}

	// An already-authenticated caller is linking a new provider to
	// their account; everyone else is signing in or up.
	u := h.currentUser(c)
	if u != nil {
		err = h.resolver.Link(c.Request.Context(), u, profile)
	} else {
		u, err = h.resolver.Resolve(c.Request.Context(), profile)
	}
	if err != nil {
		logger.Error("oauth profile resolution failed", map[string]any{
			"provider": providerName,
			"error":    err.Error(),
		})
		c.Redirect(http.StatusFound, authFailedPath)
		return
	}

	token, err := h.tokens.Issue(u)
	if err != nil {
		logger.Error("token issuance failed", map[string]any{
			"provider": providerName,
			"error":    err.Error(),
		})
		c.Redirect(http.StatusFound, authFailedPath)
		return
	}

	if err := h.establishSession(c, u); err != nil {
		c.Redirect(http.StatusFound, authFailedPath)
		return
	}
	setTokenCookie(c, token)

	logger.Info("oauth login succeeded", map[string]any{
		"provider": providerName,
		"user_id":  u.ID,
	})

	c.Redirect(http.StatusFound, takeRedirect(c))
}

// currentUser loads the session-authenticated user, if any.
func (h *Handler) currentUser(c *gin.Context) *user.User {
	cookie, err := c.Request.Cookie(session.CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	sess, err := h.sessionStore.Get(c.Request.Context(), cookie.Value)
	if err != nil || sess == nil || time.Now().After(sess.ExpiresAt) {
		return nil
	}

	u, err := h.users.GetByID(c.Request.Context(), sess.UserID)
	if err != nil {
		return nil
	}
	return u
}
