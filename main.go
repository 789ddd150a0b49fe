package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/turfwars/api-go/config"
	"github.com/turfwars/api-go/logger"
	"github.com/turfwars/api-go/middleware"
	"github.com/turfwars/api-go/routes"
	"github.com/turfwars/api-go/territory"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	if err := logger.Initialize(cfg.Debug); err != nil {
		log.Fatal("Error initializing logger: ", err)
	}
	defer logger.Sync()

	// Initialize database
	db, err := config.ConnectDatabase(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Wire the territory engine to its store
	store := territory.NewGormStore(db)
	engine := territory.NewEngine(store, cfg.EngineConfig())

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create a new Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	// Initialize routes
	routes.SetupRoutes(r, db, engine, cfg)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("Server exited", zap.Error(err))
	}
}
