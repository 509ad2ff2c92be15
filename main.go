package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"

	"github.com/yumyai/geneplatter/logger"
	"github.com/yumyai/geneplatter/pkg/handler"
	"github.com/yumyai/geneplatter/pkg/middle"
	"go.uber.org/zap"
)

const VERSION = "0.1.0"

// Result of loading .env, reported once the logger is up.
var dotenvErr error

func main() {

	// Try load env, before viper reads GENEPLATTER_*
	dotenvErr = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	stop()

	defer logger.Sync() // Make sure that the buffered is flushed.

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		logger.Sync()
		os.Exit(1)
	}
}

func NewRouter(app *handler.AppContext) *http.ServeMux {
	mux := http.NewServeMux()

	// Error route
	mux.HandleFunc("GET /favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	})

	// Main routes
	mux.HandleFunc("GET /{$}", app.MainPage)

	// API routes
	mux.HandleFunc("GET /api/v1/health", handler.HealthCheck)
	mux.HandleFunc("GET /api/v1/genes", app.GenesAPI)
	mux.HandleFunc("GET /api/v1/series", app.SeriesAPI)
	mux.HandleFunc("GET /api/v1/matrix.csv", app.MatrixCSVHandler)
	mux.HandleFunc("GET /api/v1/chart.png", app.ChartPNGHandler)

	return mux
}

// serve blocks until the server fails or ctx is cancelled.
func serve(ctx context.Context, addr string, app *handler.AppContext) error {
	h := middle.Chain(NewRouter(app),
		middle.RequestIDMiddleware(logger.L()),
		middle.LoggingMiddleware(logger.L()),
	)

	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", zap.String("addr", "http://"+addr), zap.String("Version", VERSION))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "error starting server")
	case <-ctx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
