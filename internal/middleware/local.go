package middleware

import (
	"context"
	"net/http"

	"riess-auth/internal/user"

	"github.com/gin-gonic/gin"
)

// UserKey is the gin context key under which LocalAuth stores the
// authenticated user.
const UserKey = "authUser"

// Authenticator verifies local credentials.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*user.User, error)
}

type localAuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LocalAuth authenticates the request body's credentials and attaches
// the user to the gin context. Downstream handlers can assume an
// authenticated user is present.
func LocalAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req localAuthRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"message": "invalid request",
			})
			return
		}

		u, err := auth.Authenticate(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "invalid credentials",
			})
			return
		}

		c.Set(UserKey, u)
		c.Next()
	}
}

// UserFromGinContext returns the user attached by LocalAuth.
func UserFromGinContext(c *gin.Context) (*user.User, bool) {
	val, ok := c.Get(UserKey)
	if !ok {
		return nil, false
	}
	u, ok := val.(*user.User)
	return u, ok
}
