package commutedash

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

var server *http.Server

// Routes builds the router: the board page at /, JSON endpoints under
// /api with permissive CORS.
func (d *Dashboard) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", d.handleIndex)

	r.Route("/api", func(api chi.Router) {
		api.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet},
		}))
		api.NotFound(func(w http.ResponseWriter, r *http.Request) {
			writeError(w, http.StatusNotFound, "api", "unknown endpoint")
		})
		api.Get("/health", d.handleHealth)
		api.Get("/trains", d.handleTrains)
		api.Get("/tubes", d.handleTubes)
		api.Get("/buses", d.handleBuses)
		api.Get("/weather", d.handleWeather)
	})

	return r
}

// StartServer runs the HTTP server in the background.
func StartServer(d *Dashboard, log zerolog.Logger) {
	addr := fmt.Sprintf(":%d", d.cfg.Server.Port)
	server = &http.Server{
		Addr:              addr,
		Handler:           d.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()
	log.Info().Str("addr", addr).Msg("server listening")
}

// HandleGracefulShutdown blocks until SIGINT/SIGTERM and drains the
// server.
func HandleGracefulShutdown(log zerolog.Logger) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info().Msg("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if server != nil {
		if err := server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("server shutdown error")
		} else {
			log.Info().Msg("server shut down")
		}
	}
}
