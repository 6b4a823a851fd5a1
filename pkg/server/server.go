package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	handlers "github.com/safetyworks/depot-report/pkg/handlers/report"
	depotmiddleware "github.com/safetyworks/depot-report/pkg/server/middleware"
	"github.com/safetyworks/depot-report/pkg/services/report"
)

type Dependencies struct {
	Reports report.Manager
	Logger  zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func ConfigureRouter(config Config) *chi.Mux {
	reportHandler := handlers.NewHandler(config.Dependencies.Reports)

	router := chi.NewRouter()

	router.Use(depotmiddleware.Logger(&config.Dependencies.Logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/reports", reportHandler.CreateReport)
		r.Get("/reports", reportHandler.ListReports)
		r.Get("/reports/{id}", reportHandler.GetReport)
		r.Put("/reports/{id}", reportHandler.UpdateReport)
		r.Delete("/reports/{id}", reportHandler.DeleteReport)
		r.Get("/reports/{id}/document", reportHandler.GetDocument)
	})

	return router
}

type WebAPI struct {
	logger *zerolog.Logger
	server *http.Server
	config Config
}

func NewWebAPI(config Config) *WebAPI {
	router := ConfigureRouter(config)
	return &WebAPI{
		logger: &config.Dependencies.Logger,
		config: config,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		timeout := w.config.ShutdownTimeout
		if timeout == 0 {
			timeout = 10 * time.Second
		}

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
