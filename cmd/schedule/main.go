package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/hospital-api/internal/config"
	"github.com/jwalitptl/hospital-api/internal/handler/health"
	promHandler "github.com/jwalitptl/hospital-api/internal/handler/prometheus"
	scheduleHandler "github.com/jwalitptl/hospital-api/internal/handler/schedule"
	"github.com/jwalitptl/hospital-api/internal/repository/postgres"
	"github.com/jwalitptl/hospital-api/internal/router"
	"github.com/jwalitptl/hospital-api/internal/server"
	scheduleService "github.com/jwalitptl/hospital-api/internal/service/schedule"
	"github.com/jwalitptl/hospital-api/pkg/logger"
	"github.com/jwalitptl/hospital-api/pkg/metrics"
)

func main() {
	cfg, err := config.Load(config.Defaults{Name: "schedule", Version: "1.0.0"})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Setup(cfg.Service.Name, logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	gin.SetMode(gin.ReleaseMode)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg, cfg.Monitoring.Namespace)

	db, err := postgres.Open(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := db.PingContext(pingCtx); err != nil {
		log.Warn().Err(err).Str("host", cfg.Database.Host).Msg("database not reachable yet")
	}
	cancelPing()

	scheduleSvc := scheduleService.NewService(postgres.NewScheduleRepository(db, m))

	engine := router.New(router.ConfigFrom(cfg), promHandler.New(reg, m),
		health.NewHandler(cfg.Service.Version, db),
		scheduleHandler.NewHandler(scheduleSvc),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info().
		Str("version", cfg.Service.Version).
		Int("port", cfg.Server.Port).
		Msg("starting schedule service")

	if err := server.New(cfg.Server, engine).Run(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		db.Close()
		os.Exit(1)
	}
}
