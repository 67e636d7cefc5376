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
	appointmentHandler "github.com/jwalitptl/hospital-api/internal/handler/appointment"
	doctorHandler "github.com/jwalitptl/hospital-api/internal/handler/doctor"
	"github.com/jwalitptl/hospital-api/internal/handler/health"
	patientHandler "github.com/jwalitptl/hospital-api/internal/handler/patient"
	promHandler "github.com/jwalitptl/hospital-api/internal/handler/prometheus"
	"github.com/jwalitptl/hospital-api/internal/repository/postgres"
	"github.com/jwalitptl/hospital-api/internal/router"
	"github.com/jwalitptl/hospital-api/internal/server"
	appointmentService "github.com/jwalitptl/hospital-api/internal/service/appointment"
	doctorService "github.com/jwalitptl/hospital-api/internal/service/doctor"
	patientService "github.com/jwalitptl/hospital-api/internal/service/patient"
	"github.com/jwalitptl/hospital-api/pkg/logger"
	"github.com/jwalitptl/hospital-api/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.Load(config.Defaults{Name: "registry", Version: "2.0.0"})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Setup(cfg.Service.Name, logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	gin.SetMode(gin.ReleaseMode)

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg, cfg.Monitoring.Namespace)

	// Initialize database
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

	// Initialize repositories
	doctorRepo := postgres.NewDoctorRepository(db, m)
	patientRepo := postgres.NewPatientRepository(db, m)
	appointmentRepo := postgres.NewAppointmentRepository(db, m)

	// Initialize services
	doctorSvc := doctorService.NewService(doctorRepo)
	patientSvc := patientService.NewService(patientRepo)
	appointmentSvc := appointmentService.NewService(appointmentRepo, doctorRepo, patientRepo)

	// Setup router
	engine := router.New(router.ConfigFrom(cfg), promHandler.New(reg, m),
		health.NewHandler(cfg.Service.Version, db),
		doctorHandler.NewHandler(doctorSvc),
		patientHandler.NewHandler(patientSvc),
		appointmentHandler.NewHandler(appointmentSvc),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info().
		Str("version", cfg.Service.Version).
		Int("port", cfg.Server.Port).
		Msg("starting registry service")

	if err := server.New(cfg.Server, engine).Run(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		db.Close()
		os.Exit(1)
	}
}
