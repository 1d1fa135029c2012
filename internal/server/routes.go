// Package server contain the gin engine wiring and route registration.
package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	// Init swagger doc
	_ "github.com/tariquek-git/CommonJobs/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/tariquek-git/CommonJobs/internal/auth"
	"github.com/tariquek-git/CommonJobs/internal/controller/admin"
	"github.com/tariquek-git/CommonJobs/internal/controller/aiassist"
	"github.com/tariquek-git/CommonJobs/internal/controller/jobs"
	"github.com/tariquek-git/CommonJobs/internal/middleware"
)

// Request bodies are small JSON documents; anything bigger is abuse.
const maxBodyBytes = 1 << 20

// RegisterRoutes will register each http endpoint route on a fresh engine.
func (s *Server) RegisterRoutes() http.Handler {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     s.cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(middleware.SafeHeader())
	r.Use(middleware.SizeLimit(maxBodyBytes))

	loginHandler := auth.NewAdminLoginHandler(s.cfg)
	jobsController := jobs.NewController(s.cfg, s.stores.Jobs, s.stores.Clicks, s.dedup)
	adminController := admin.NewController(s.cfg, s.stores.Jobs, s.stores.Clicks)
	aiController := aiassist.NewController(s.ai)

	r.GET("/health", s.healthHandler)

	authRoute := r.Group("/auth")
	{
		authRoute.POST("admin-login",
			middleware.RateLimiter(s.cfg.RateLimitWindow, s.cfg.RateLimitLogin),
			loginHandler.Login)
	}

	jobsRoute := r.Group("/jobs")
	{
		jobsRoute.POST("search", jobsController.Search)
		jobsRoute.GET(":id", jobsController.GetJob)
		jobsRoute.POST(":id/click",
			middleware.RateLimiter(s.cfg.RateLimitWindow, s.cfg.RateLimitClick),
			jobsController.Click)
		jobsRoute.POST("submissions",
			middleware.RateLimiter(s.cfg.RateLimitWindow, s.cfg.RateLimitSubmit),
			jobsController.Submit)
	}

	adminRoute := r.Group("/admin")
	{
		adminRoute.Use(middleware.RequireAdmin(s.cfg))
		adminRoute.GET("jobs", adminController.ListJobs)
		adminRoute.POST("jobs", adminController.CreateJob)
		adminRoute.PATCH("jobs/:id", adminController.UpdateJob)
		adminRoute.PATCH("jobs/:id/status", adminController.UpdateStatus)
		adminRoute.GET("runtime", adminController.Runtime)
	}

	aiRoute := r.Group("/ai")
	{
		aiRoute.POST("analyze-job", aiController.AnalyzeJob)
		aiRoute.POST("parse-search", aiController.ParseSearch)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":        true,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
