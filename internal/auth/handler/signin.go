package handler

import (
	"net/http"

	"riess-auth/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Signin returns the user the LocalAuth middleware attached and
// establishes a session for it.
func (h *Handler) Signin(c *gin.Context) {
	u, ok := middleware.UserFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apiError("invalid credentials"))
		return
	}

	if err := h.establishSession(c, u); err != nil {
		c.JSON(http.StatusInternalServerError, apiError("session error"))
		return
	}

	c.JSON(http.StatusOK, u)
}
