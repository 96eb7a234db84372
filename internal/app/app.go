package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	Optimizer  Optimizer
	MetaPrompt string
	Config     Config
	Logger     zerolog.Logger

	validate *validator.Validate
}

func New(config Config, optimizer Optimizer, metaPrompt string, logger zerolog.Logger) *App {
	return &App{
		Optimizer:  optimizer,
		MetaPrompt: metaPrompt,
		Config:     config,
		Logger:     logger,
		validate:   validator.New(),
	}
}

func (a *App) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/", ComponentHandler(a.index))
	mux.Handle("/optimize", ComponentHandler(a.submit))
	mux.Handle("/api/optimize", AppHandler(a.optimize))
	mux.Handle("/healthz", AppHandler(a.health))

	origins := a.Config.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:     origins,
		AllowedMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:     []string{"Content-Type"},
		// Preflights still reach the handlers, so /api/optimize answers them with 405.
		OptionsPassthrough: true,
	})

	return withRequestLogger(a.Logger, corsHandler.Handler(mux))
}

// Start serves until ctx is cancelled and then drains in-flight requests.
func (a *App) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:              ":" + a.Config.Port,
		Handler:           a.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info().Str("address", server.Addr).Msg("App running")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	a.Logger.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
