package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cep.backend/internal/domain/entities"
	"cep.backend/internal/interfaces/http/handlers"
	"cep.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler      *handlers.AuthHandler
	candidateHandler *handlers.CandidateHandler
	companyHandler   *handlers.CompanyHandler
	interviewHandler *handlers.InterviewHandler
	profileHandler   *handlers.ProfileHandler
	authMiddleware   gin.HandlerFunc
	limiter          *middleware.RedisLimiter
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "cep-backend",
			"version": "1.0.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	api := r.Group("/api")
	{
		// Auth routes (login and reset are public, rate limited per IP)
		auth := api.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimitMiddleware(d.limiter, 10, time.Minute), d.authHandler.Login)
			auth.POST("/send-otp", middleware.RateLimitMiddleware(d.limiter, 5, time.Minute), d.authHandler.SendOTP)
			auth.POST("/reset-password", middleware.RateLimitMiddleware(d.limiter, 5, time.Minute), d.authHandler.ResetPassword)
			auth.GET("/me", d.authMiddleware, d.authHandler.GetMe)
		}

		// Candidate routes (protected)
		candidates := api.Group("/candidates")
		candidates.Use(d.authMiddleware)
		{
			candidates.GET("", d.candidateHandler.List)
			candidates.GET("/:id", d.candidateHandler.Get)
			candidates.POST("", middleware.RequireAdminOrRecruiter(), d.candidateHandler.Create)
			candidates.PUT("/:id", middleware.RequireAdminOrRecruiter(), d.candidateHandler.Update)
			candidates.PATCH("/:id/status", middleware.RequireAdminOrRecruiter(), d.candidateHandler.UpdateStatus)
			candidates.DELETE("/:id", middleware.RequireAdmin(), d.candidateHandler.Delete)
		}

		// Company routes (protected)
		companies := api.Group("/companies")
		companies.Use(d.authMiddleware)
		{
			companies.GET("", middleware.RequireAdminOrRecruiter(), d.companyHandler.List)
			companies.GET("/:id", d.companyHandler.Get)
			companies.POST("", middleware.RequireAdminOrRecruiter(), d.companyHandler.Create)
			companies.PUT("/:id", middleware.RequireAdminOrRecruiter(), d.companyHandler.Update)
			companies.DELETE("/:id", middleware.RequireAdmin(), d.companyHandler.Delete)
		}

		// Interview routes (protected)
		interviews := api.Group("/interviews")
		interviews.Use(d.authMiddleware)
		{
			interviews.GET("", d.interviewHandler.List)
			interviews.GET("/:id", d.interviewHandler.Get)
			interviews.POST("", d.interviewHandler.Create)
			interviews.PUT("/:id", d.interviewHandler.Update)
			interviews.PATCH("/:id/status", d.interviewHandler.UpdateStatus)
			interviews.DELETE("/:id", d.interviewHandler.Delete)
		}

		// Candidate self-service profile
		profile := api.Group("/profile")
		profile.Use(d.authMiddleware, middleware.RequireRole(string(entities.UserRoleCandidate)))
		{
			profile.GET("/me", d.profileHandler.GetMe)
		}
	}
}
