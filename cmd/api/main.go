package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/caleb-rm/worship-rota-api/api/swagger"
	"github.com/caleb-rm/worship-rota-api/internal/handler"
	"github.com/caleb-rm/worship-rota-api/internal/middleware"
	"github.com/caleb-rm/worship-rota-api/internal/repository"
	"github.com/caleb-rm/worship-rota-api/internal/rota"
	"github.com/caleb-rm/worship-rota-api/internal/service"
	"github.com/caleb-rm/worship-rota-api/pkg/cache"
	"github.com/caleb-rm/worship-rota-api/pkg/config"
	"github.com/caleb-rm/worship-rota-api/pkg/database"
	"github.com/caleb-rm/worship-rota-api/pkg/logger"
	corsmiddleware "github.com/caleb-rm/worship-rota-api/pkg/middleware/cors"
	reqidmiddleware "github.com/caleb-rm/worship-rota-api/pkg/middleware/requestid"
)

// @title Worship Rota API
// @version 1.0.0
// @description Sunday worship team rotation, swaps, overrides and song library
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, snapshot fallback disabled", "error", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
	}
	snapshots := cache.NewSnapshotStore(redisClient)

	teamRepo := repository.NewTeamRepository(db)
	overrideRepo := repository.NewOverrideRepository(db)
	swapRepo := repository.NewSwapRepository(db)
	songRepo := repository.NewSongRepository(db)

	metricsSvc := service.NewMetricsService()
	authSvc := service.NewAuthService(nil, logr, service.AuthConfig{
		AccessCodes:      cfg.Auth.AccessCodes,
		AccessCodeHashes: cfg.Auth.AccessCodeHashes,
		SessionSecret:    cfg.Auth.SessionSecret,
		SessionTTL:       cfg.Auth.SessionTTL,
	})

	scheduleSvc := service.NewScheduleService(teamRepo, overrideRepo, swapRepo, snapshots, logr, service.ScheduleServiceConfig{
		DwellWeeks:   cfg.Rota.DwellWeeks,
		SpecialDates: specialDates(cfg.Rota.SpecialDates),
		SnapshotTTL:  cfg.Rota.SnapshotTTL,
	})

	teamSvc := service.NewTeamService(teamRepo, scheduleSvc, nil, logr)
	overrideSvc := service.NewOverrideService(overrideRepo, scheduleSvc, nil, logr)
	swapSvc := service.NewSwapService(swapRepo, scheduleSvc, nil, logr)
	songSvc := service.NewSongService(songRepo, nil, logr)

	authHandler := handler.NewAuthHandler(authSvc)
	scheduleHandler := handler.NewScheduleHandler(scheduleSvc, metricsSvc)
	teamHandler := handler.NewTeamHandler(teamSvc)
	overrideHandler := handler.NewOverrideHandler(overrideSvc)
	swapHandler := handler.NewSwapHandler(swapSvc)
	songHandler := handler.NewSongHandler(songSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.POST("/auth/access", authHandler.Access)

	protected := api.Group("")
	protected.Use(middleware.Session(authSvc))
	{
		protected.GET("/schedule", scheduleHandler.Get)
		protected.GET("/schedule/export", scheduleHandler.Export)

		protected.GET("/teams", teamHandler.List)
		protected.POST("/teams", teamHandler.Create)
		protected.GET("/teams/:id", teamHandler.Get)
		protected.PUT("/teams/:id", teamHandler.Update)
		protected.DELETE("/teams/:id", teamHandler.Delete)

		protected.GET("/overrides", overrideHandler.List)
		protected.PUT("/overrides/:date", overrideHandler.Set)
		protected.DELETE("/overrides/:date", overrideHandler.Clear)

		protected.GET("/swaps", swapHandler.List)
		protected.POST("/swaps", swapHandler.Create)
		protected.PATCH("/swaps/:id/status", swapHandler.Decide)

		protected.GET("/songs", songHandler.List)
		protected.POST("/songs", songHandler.Save)
		protected.POST("/songs/import", songHandler.Import)
		protected.GET("/songs/export", songHandler.Export)
		protected.GET("/songs/:slug", songHandler.Get)
		protected.PUT("/songs/:slug", songHandler.Update)
		protected.DELETE("/songs/:slug", songHandler.Delete)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

func specialDates(dates []config.SpecialDate) []rota.SpecialDate {
	result := make([]rota.SpecialDate, 0, len(dates))
	for _, d := range dates {
		result = append(result, rota.SpecialDate{Year: d.Year, Month: d.Month, Day: d.Day, Kind: d.Kind})
	}
	return result
}
