package handler

import (
	"context"
	"time"

	"riess-auth/internal/auth/credentials"
	"riess-auth/internal/auth/provider"
	"riess-auth/internal/auth/resolver"
	"riess-auth/internal/logger"
	"riess-auth/internal/middleware"
	"riess-auth/internal/session"
	"riess-auth/internal/user"

	"github.com/gin-gonic/gin"
)

const sessionTTL = 24 * time.Hour

// CredentialService handles local signup and credential checks.
type CredentialService interface {
	SignUp(ctx context.Context, input credentials.SignupInput) (*user.User, error)
	Authenticate(ctx context.Context, email, password string) (*user.User, error)
}

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Issue(u *user.User) (string, error)
}

// UserStore is the slice of the user repository the handlers need.
type UserStore interface {
	GetByID(ctx context.Context, id string) (*user.User, error)
	UpdateAdditionalProviders(ctx context.Context, u *user.User) error
}

type Handler struct {
	providers    *provider.Registry
	sessionStore session.Store
	resolver     resolver.Resolver
	credentials  CredentialService
	tokens       TokenIssuer
	users        UserStore
}

func NewHandler(
	registry *provider.Registry,
	sessionStore session.Store,
	resolver resolver.Resolver,
	credentials CredentialService,
	tokens TokenIssuer,
	users UserStore,
) *Handler {
	return &Handler{
		providers:    registry,
		sessionStore: sessionStore,
		resolver:     resolver,
		credentials:  credentials,
		tokens:       tokens,
		users:        users,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	r.POST("/signup", h.Signup)
	r.POST("/signin", middleware.LocalAuth(h.credentials), h.Signin)
	r.GET("/signout", h.Signout)
	r.POST("/token", h.Token)

	r.GET("/auth/:strategy", h.OAuthCall)
	r.GET("/auth/:strategy/callback", h.OAuthCallback)
	r.DELETE("/auth/provider",
		middleware.GinRequireAuth(authMiddleware),
		h.RemoveOAuthProvider,
	)

	logger.Info("auth routes registered", map[string]any{
		"providers": h.providers.Names(),
	})
}

// apiError is the uniform error envelope for direct JSON endpoints.
func apiError(message string) gin.H {
	return gin.H{"message": message}
}

// establishSession creates a fresh session for the user and sets the
// session cookie.
func (h *Handler) establishSession(c *gin.Context, u *user.User) error {
	sessionID, err := session.GenerateID()
	if err != nil {
		return err
	}

	now := time.Now()
	expiresAt := now.Add(sessionTTL)
	if err := h.sessionStore.Create(
		c.Request.Context(),
		session.Session{
			SessionID: sessionID,
			UserID:    u.ID,
			CreatedAt: now,
			ExpiresAt: expiresAt,
		},
	); err != nil {
		return err
	}

	session.SetCookie(c.Writer, sessionID, expiresAt, session.DefaultOptions())
	return nil
}
