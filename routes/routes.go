package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/turfwars/api-go/config"
	"github.com/turfwars/api-go/controllers"
	"github.com/turfwars/api-go/middleware"
	"github.com/turfwars/api-go/territory"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, engine *territory.Engine, cfg *config.Config) {
	// Initialize controllers
	territoryController := controllers.NewTerritoryController(engine)
	locationController := controllers.NewLocationController(db, cfg.Territory.LeaderboardWindow)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware(cfg.Auth.JWTSecret))
	{
		SetupTerritoryRoutes(protected, territoryController, locationController)
	}
}
