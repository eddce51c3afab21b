package handler

import (
	"errors"
	"net/http"

	"riess-auth/internal/auth/credentials"

	"github.com/gin-gonic/gin"
)

// tokenCookieName is the cookie set after a successful OAuth callback
// so browser clients pick up the issued JWT.
const tokenCookieName = "token"

type tokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Token authenticates credentials and issues a signed JWT.
func (h *Handler) Token(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apiError("invalid request"))
		return
	}

	u, err := h.credentials.Authenticate(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, credentials.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, apiError(err.Error()))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, apiError(err.Error()))
		return
	}

	token, err := h.tokens.Issue(u)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apiError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func setTokenCookie(c *gin.Context, token string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     tokenCookieName,
		Value:    token,
		Path:     "/",
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearTokenCookie(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     tokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}
