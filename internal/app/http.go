package app

import (
	"context"
	"net/http"

	"clinic-portal/internal/audit"
	"clinic-portal/internal/auth"
	"clinic-portal/internal/auth/credentials"
	"clinic-portal/internal/auth/handler"
	"clinic-portal/internal/config"
	"clinic-portal/internal/middleware"
	"clinic-portal/internal/rbac"
	"clinic-portal/internal/session"

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

	auditRecorder := audit.NewDBRecorder(infra.DB)

	sessionStore := session.NewRedisStore(infra.Redis.Client)
	sessionManager := session.NewManager(
		sessionStore,
		auditRecorder,
		cfg.IdleTimeout,
		cfg.MaxSessionLifetime,
	)

	credentialStore := credentials.NewDBStore(infra.DB)
	authenticator := auth.NewAuthenticator(credentialStore, sessionManager, auditRecorder)

	matrix := rbac.Default()

	cookieOpts := session.CookieOptions{
		SameSite: http.SameSiteStrictMode,
	}

	portalHandler := handler.NewHandler(
		authenticator,
		sessionManager,
		credentialStore,
		matrix,
		auditRecorder,
		cookieOpts,
	)

	authMiddleware := middleware.NewAuthMiddleware(sessionManager)

	// Browser-facing routes bounce to the login entry point instead of 401.
	webAuthMiddleware := middleware.NewAuthMiddleware(sessionManager)
	webAuthMiddleware.RedirectURL = cfg.BaseRedirectURL

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	// ----------------------------
	// Public Routes
	// ----------------------------

	portalHandler.RegisterPublicRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Protected API Routes
	// ----------------------------
	// Page-boundary contract: authentication first, then the role
	// gate, then the handler. Data-level scoping (assigned patients
	// only) belongs to resource handlers, not to these gates.

	api := router.Group("/api")
	api.Use(middleware.GinRequireAuth(authMiddleware))

	api.GET("/me", portalHandler.Me)
	api.GET("/permissions", portalHandler.Permissions)

	users := api.Group("/users")
	users.Use(middleware.GinRequireRole(
		auditRecorder,
		rbac.RoleAdministrator,
		rbac.RoleOfficeManager,
	))
	users.POST("", portalHandler.CreateUser)

	adminOnly := api.Group("")
	adminOnly.Use(middleware.GinRequireRole(auditRecorder, rbac.RoleAdministrator))
	adminOnly.GET("/audit-log", portalHandler.AuditLog)

	// ----------------------------
	// Protected Web Routes
	// ----------------------------

	web := router.Group("/portal")
	web.Use(middleware.GinRequireAuth(webAuthMiddleware))

	web.GET("/dashboard", portalHandler.Me)

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		return infra.DB.Close()
	}, nil
}
