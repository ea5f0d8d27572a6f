package routes

import (
	"github.com/gin-gonic/gin"
	_ "github.com/linskybing/form-console/docs"
	"github.com/linskybing/form-console/internal/api/handlers"
	"github.com/linskybing/form-console/internal/api/middleware"
	"github.com/linskybing/form-console/internal/repository"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handlers, repos *repository.Repos, loginLimiter *middleware.RateLimiter) {
	authMiddleware := middleware.NewAuth(repos)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// public
	public := r.Group("/auth")
	{
		public.POST("/register", loginLimiter.Middleware(), h.Auth.Register)
		public.GET("/confirm", h.Auth.Confirm)
		public.POST("/login", loginLimiter.Middleware(), h.Auth.Login)
		public.POST("/logout", h.Auth.Logout)
	}

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/auth/status", h.Auth.Status)
		auth.GET("/ws/session", h.Session.Stream)

		admin := auth.Group("/")
		admin.Use(authMiddleware.Admin())
		FormRoutes(admin, h.Form, h.Question)

		admin.GET("/dashboard/stats", h.Dashboard.Stats)
		admin.GET("/audit/logs", h.Audit.GetAuditLogs)
	}
}
