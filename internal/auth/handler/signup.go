package handler

import (
	"net/http"

	"riess-auth/internal/auth/credentials"

	"github.com/gin-gonic/gin"
)

// Signup creates a local account and returns it as JSON. The session
// is established right away so the fresh account is signed in.
func (h *Handler) Signup(c *gin.Context) {
	var input credentials.SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, apiError("invalid request"))
		return
	}

	u, err := h.credentials.SignUp(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, apiError(err.Error()))
		return
	}

	if err := h.establishSession(c, u); err != nil {
		c.JSON(http.StatusInternalServerError, apiError("session error"))
		return
	}

	c.JSON(http.StatusOK, u)
}
