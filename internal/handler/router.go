package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"swim-academy-api/internal/handler/api"
	"swim-academy-api/internal/handler/middleware"
	"swim-academy-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	enrollmentHandler *api.EnrollmentHandler,
	webhookHandler *api.WebhookHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, authHandler, enrollmentHandler, webhookHandler, adminHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	enrollmentHandler *api.EnrollmentHandler,
	webhookHandler *api.WebhookHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		lessons := apiGroup.Group("/lessons")
		{
			addRoutes(lessons, []route{
				{Method: http.MethodGet, Path: "/:id/availability", Handler: enrollmentHandler.GetLessonAvailability},
			})

			lessonsAuth := lessons.Group("")
			lessonsAuth.Use(authMiddleware.RequireAuth())
			addRoutes(lessonsAuth, []route{
				{Method: http.MethodPost, Path: "/:id/enrollments", Handler: enrollmentHandler.CreateEnrollment},
			})
		}

		enrollments := apiGroup.Group("/enrollments")
		enrollments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(enrollments, []route{
				{Method: http.MethodGet, Path: "", Handler: enrollmentHandler.GetMyEnrollments},
				{Method: http.MethodGet, Path: "/:id", Handler: enrollmentHandler.GetEnrollment},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: enrollmentHandler.RequestCancel},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/lockers/availability", Handler: enrollmentHandler.GetLockerAvailability},
		})

		// Gateway callbacks authenticate by source address, not by token.
		payments := apiGroup.Group("/payments")
		payments.Use(middleware.NewIPAllowlist(cfg.Gateway.AllowedIPs))
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "/notify", Handler: webhookHandler.Notify},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/enrollments", Handler: adminHandler.ListEnrollments},
				{Method: http.MethodGet, Path: "/enrollments/:id", Handler: adminHandler.GetEnrollment},
				{Method: http.MethodGet, Path: "/enrollments/:id/refund-preview", Handler: adminHandler.PreviewRefund},
				{Method: http.MethodPost, Path: "/enrollments/:id/approve-cancel", Handler: adminHandler.ApproveCancel},
				{Method: http.MethodPost, Path: "/enrollments/:id/deny-cancel", Handler: adminHandler.DenyCancel},
				{Method: http.MethodPost, Path: "/enrollments/:id/cancel", Handler: adminHandler.CancelEnrollment},
				{Method: http.MethodPut, Path: "/enrollments/:id/days-used", Handler: adminHandler.OverrideDaysUsed},
				{Method: http.MethodGet, Path: "/cancellations", Handler: adminHandler.ListCancellationRequests},
				{Method: http.MethodPost, Path: "/sweeps/run", Handler: adminHandler.RunSweeps},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
