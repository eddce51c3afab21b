package app

import (
	"context"

	"riess-auth/internal/auth/credentials"
	"riess-auth/internal/auth/handler"
	"riess-auth/internal/auth/provider"
	"riess-auth/internal/auth/provider/google"
	"riess-auth/internal/auth/provider/keycloak"
	"riess-auth/internal/auth/resolver"
	"riess-auth/internal/auth/token"
	"riess-auth/internal/config"
	"riess-auth/internal/logger"
	"riess-auth/internal/middleware"
	"riess-auth/internal/session"
	"riess-auth/internal/user"

	"github.com/gin-gonic/gin"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	sessionStore := session.NewRedisStore(infra.Redis.Client)
	userRepo := user.NewRepository(infra.DB)
	accountResolver := resolver.NewAccountResolver(userRepo)
	credentialService := credentials.NewService(infra.DB, userRepo)

	tokenService, err := token.NewService(cfg.TokenSecret, cfg.TokenIssuer, cfg.TokenTTL)
	if err != nil {
		return nil, nil, err
	}

	// Providers are optional; only fully configured ones register.
	var providers []provider.OAuthProvider

	if cfg.GoogleClientID != "" {
		googleProvider, err := google.New(
			ctx,
			cfg.GoogleClientID,
			cfg.GoogleClientSecret,
			cfg.GoogleRedirectURL,
		)
		if err != nil {
			return nil, nil, err
		}
		providers = append(providers, googleProvider)
	}

	if cfg.KeycloakIssuer != "" {
		keycloakProvider, err := keycloak.New(
			ctx,
			cfg.KeycloakIssuer,
			cfg.KeycloakClientID,
			cfg.KeycloakRedirectURL,
			cfg.KeycloakPublicBaseURL,
		)
		if err != nil {
			return nil, nil, err
		}
		providers = append(providers, keycloakProvider)
	}

	registry := provider.NewRegistry(providers...)

	authHandler := handler.NewHandler(
		registry,
		sessionStore,
		accountResolver,
		credentialService,
		tokenService,
		userRepo,
	)

	authMiddleware := middleware.NewAuthMiddleware(sessionStore)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	// ----------------------------
	// Public Routes
	// ----------------------------

	authHandler.RegisterRoutes(router, authMiddleware)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Protected API Routes
	// ----------------------------

	api := router.Group("/api")
	api.Use(middleware.GinRequireAuth(authMiddleware))

	api.GET("/me", func(c *gin.Context) {
		userID, _ := middleware.UserIDFromContext(c.Request.Context())
		u, err := userRepo.GetByID(c.Request.Context(), userID)
		if err != nil || u == nil {
			c.JSON(404, gin.H{"message": "user not found"})
			return
		}
		c.JSON(200, u)
	})

	logger.Info("http router ready", map[string]any{
		"providers": registry.Names(),
	})

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		return infra.DB.Close()
	}, nil
}
