package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dealflow-platform/admin-api/internal/config"
	"github.com/dealflow-platform/admin-api/internal/db"
	adminHttp "github.com/dealflow-platform/admin-api/internal/handler/http"
	"github.com/dealflow-platform/admin-api/internal/project"
	"github.com/dealflow-platform/admin-api/internal/request"
	"github.com/dealflow-platform/admin-api/internal/seed"
	"github.com/dealflow-platform/admin-api/internal/user"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Info().Msg("Starting admin-api...")

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	var (
		userRepo    user.Repository
		projectRepo project.Repository
		requestRepo request.Repository
	)

	switch cfg.Store {
	case config.StorePostgres:
		database, err := db.New(cfg.Postgres)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		defer database.Close()

		userRepo = user.NewPostgresRepository(database.Pool)
		projectRepo = project.NewPostgresRepository(database.Pool)
		requestRepo = request.NewPostgresRepository(database.Pool)
	default:
		users := user.NewMemoryRepository()
		projects := project.NewMemoryRepository()
		requests := request.NewMemoryRepository()
		if cfg.SeedDemoData {
			seed.Demo(users, projects, requests)
		}
		userRepo = users
		projectRepo = projects
		requestRepo = requests
	}

	userHandler := adminHttp.NewUserHandler(user.NewService(userRepo))
	projectHandler := adminHttp.NewProjectHandler(project.NewService(projectRepo))
	requestHandler := adminHttp.NewRequestHandler(request.NewService(requestRepo))

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	router.Route("/api", func(r chi.Router) {
		userHandler.RegisterRoutes(r)
		projectHandler.RegisterRoutes(r)
		requestHandler.RegisterRoutes(r)
	})

	server := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.App.Port).Str("store", cfg.Store).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)
	<-stopCh

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server shutdown failed")
	}

	log.Info().Msg("Admin-api stopped gracefully.")
}
