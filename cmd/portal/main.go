package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/crimewatch/portal-api/internal/config"
	"github.com/crimewatch/portal-api/internal/domain/authority"
	"github.com/crimewatch/portal-api/internal/domain/crime"
	"github.com/crimewatch/portal-api/internal/domain/dashboard"
	"github.com/crimewatch/portal-api/internal/domain/report"
	"github.com/crimewatch/portal-api/internal/domain/session"
	"github.com/crimewatch/portal-api/internal/domain/station"
	"github.com/crimewatch/portal-api/internal/middleware"
	"github.com/crimewatch/portal-api/internal/pkg/crimeapi"
	"github.com/crimewatch/portal-api/internal/pkg/database"
	"github.com/crimewatch/portal-api/internal/pkg/imaging"
	"github.com/crimewatch/portal-api/internal/pkg/jwt"
	"github.com/crimewatch/portal-api/internal/pkg/logger"
	pkgresponse "github.com/crimewatch/portal-api/internal/pkg/response"
	"github.com/crimewatch/portal-api/internal/pkg/storage"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(logger.Config{Level: cfg.LogLevel, Environment: cfg.Env}); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize logger")
	}

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting CrimeWatch portal API")

	redis, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redis)

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.JWTAccessTTL)

	apiClient := crimeapi.NewClient(
		cfg.CrimeAPIBaseURL,
		time.Duration(cfg.CrimeAPITimeoutSeconds)*time.Second,
		"crimewatch-portal/1.0",
	)

	stager := storage.NewStager(storage.Config{
		AccountID:       cfg.R2AccountID,
		AccessKeyID:     cfg.R2AccessKeyID,
		AccessKeySecret: cfg.R2AccessKeySecret,
		BucketName:      cfg.R2BucketName,
		PublicURL:       cfg.R2PublicURL,
	})

	imageProcessor := imaging.NewProcessor(imaging.DefaultConfig())

	// ---------- Services ----------
	sessionService := session.NewService(apiClient, redis, cfg.JWTAccessTTL)
	reportService := report.NewService(apiClient, evidenceStager(stager), imageProcessor)
	stationService := station.NewService(apiClient)
	authorityService := authority.NewService(apiClient)
	crimeService := crime.NewService(apiClient)
	dashboardService := dashboard.NewService(apiClient, time.Duration(cfg.DashboardTimeoutSeconds)*time.Second)

	// ---------- Handlers ----------
	maxProofBytes := int64(cfg.MaxProofSizeMB) << 20

	sessionHandler := session.NewHandler(sessionService)
	reportHandler := report.NewHandler(reportService, maxProofBytes)
	stationHandler := station.NewHandler(stationService)
	authorityHandler := authority.NewHandler(authorityService)
	crimeHandler := crime.NewHandler(crimeService)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	authMiddleware := middleware.Auth(jwtService, sessionService)

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))
	r.Use(chimw.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/session", sessionHandler.Routes(authMiddleware))
		r.Mount("/reports", reportHandler.Routes(authMiddleware))
		r.Mount("/stations", stationHandler.Routes(authMiddleware))
		r.Mount("/authorities", authorityHandler.Routes(authMiddleware))
		r.Mount("/crimes", crimeHandler.TypeRoutes(authMiddleware))
		r.Mount("/crime-categories", crimeHandler.CategoryRoutes(authMiddleware))
		r.Mount("/dashboard", dashboardHandler.Routes(authMiddleware))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

// evidenceStager keeps a disabled stager out of the report service. A nil
// *storage.Stager inside a non-nil interface would dodge the service's
// nil check.
func evidenceStager(s *storage.Stager) report.EvidenceStager {
	if s == nil {
		return nil
	}
	return s
}
