package handler

import (
	"net/http"

	"parkease/internal/domain/user"
	"parkease/internal/handler/api"
	"parkease/internal/handler/middleware"
	"parkease/internal/infra/ratelimit"
	"parkease/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	BookingRequests *api.BookingRequestHandler
	Availability    *api.AvailabilityHandler
}

var (
	staffRoles    = []user.Role{user.RoleWatchman, user.RoleOwner, user.RoleAdmin}
	approverRoles = []user.Role{user.RoleOwner, user.RoleAdmin}
)

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter ratelimit.Limiter) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, h, authMiddleware, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter ratelimit.Limiter) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	staff := authMiddleware.RequireRole(staffRoles...)
	approvers := authMiddleware.RequireRole(approverRoles...)

	var mutation []gin.HandlerFunc
	if cfg.RateLimit.Enabled && limiter != nil {
		mutation = append(mutation, middleware.RateLimit(limiter, cfg.RateLimit.Capacity))
	}
	withLimit := func(mw ...gin.HandlerFunc) []gin.HandlerFunc {
		return append(mw, mutation...)
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		requests := apiGroup.Group("/booking-requests")
		addRoutes(requests, []route{
			{Method: http.MethodPost, Path: "", Handler: h.BookingRequests.Create, Mw: withLimit(staff)},
			{Method: http.MethodGet, Path: "/:id", Handler: h.BookingRequests.Get, Mw: []gin.HandlerFunc{staff}},
			{Method: http.MethodPost, Path: "/:id/approve", Handler: h.BookingRequests.Approve, Mw: withLimit(approvers)},
			{Method: http.MethodPost, Path: "/:id/reject", Handler: h.BookingRequests.Reject, Mw: withLimit(approvers)},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.BookingRequests.Cancel, Mw: withLimit(staff)},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.BookingRequests.Delete, Mw: withLimit(approvers)},
		})

		locations := apiGroup.Group("/locations")
		addRoutes(locations, []route{
			{Method: http.MethodGet, Path: "/:id/booking-requests", Handler: h.BookingRequests.ListByLocation, Mw: []gin.HandlerFunc{staff}},
			{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Availability.Check},
		})
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
