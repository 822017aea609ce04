package routes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/seogi1004/dental-al/internal/config"
	"github.com/seogi1004/dental-al/internal/handlers"
	"github.com/seogi1004/dental-al/internal/middleware"
)

func Register(router *gin.Engine, cfg config.Config) {
	router.Use(corsMiddleware(cfg.AllowedOriginsRaw))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "dental-al-backend"})
	})

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authHandler := handlers.NewAuthHandler(cfg)
	rosterHandler := handlers.NewRosterHandler(cfg)
	leaveHandler := handlers.NewLeaveHandler(cfg)
	offHandler := handlers.NewOffHandler(cfg)
	statusHandler := handlers.NewStatusHandler(cfg)
	exportHandler := handlers.NewExportHandler(cfg)

	api := router.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)

		// Reads work without a session through the public CSV export.
		api.GET("/roster", middleware.AuthOptional(cfg.JwtSecret), rosterHandler.Get)
		api.GET("/status", middleware.AuthOptional(cfg.JwtSecret), statusHandler.Get)
	}

	protected := api.Group("/")
	protected.Use(middleware.AuthRequired(cfg.JwtSecret))
	{
		protected.GET("/me", authHandler.Me)
		protected.GET("/offs", offHandler.List)
		protected.GET("/export/roster.xlsx", exportHandler.RosterXLSX)
		protected.GET("/form/leave.pdf", exportHandler.LeavePDF)

		admin := protected.Group("/")
		admin.Use(middleware.AdminRequired())
		{
			admin.POST("/roster", rosterHandler.Save)

			admin.POST("/leaves", leaveHandler.Add)
			admin.PUT("/leaves", leaveHandler.Update)
			admin.DELETE("/leaves", leaveHandler.Delete)

			admin.POST("/offs", offHandler.Add)
			admin.PUT("/offs", offHandler.Update)
			admin.DELETE("/offs", offHandler.Delete)
		}
	}
}

func corsMiddleware(allowed string) gin.HandlerFunc {
	origins := []string{}
	for _, origin := range strings.Split(allowed, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}

	allowAll := len(origins) == 0

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if allowAll {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		} else {
			for _, allowedOrigin := range origins {
				if origin == allowedOrigin {
					c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
					c.Writer.Header().Set("Vary", "Origin")
					break
				}
			}
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
