package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/GabrielVilchis-215460/nextjs-practice/internal/core/services"
	"github.com/GabrielVilchis-215460/nextjs-practice/internal/handlers"
	"github.com/GabrielVilchis-215460/nextjs-practice/internal/metrics"
	"github.com/GabrielVilchis-215460/nextjs-practice/internal/middleware"
	"github.com/GabrielVilchis-215460/nextjs-practice/internal/platform/viewcache"
	"github.com/GabrielVilchis-215460/nextjs-practice/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/ulule/limiter/v3"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var skipMigrations bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if !skipMigrations {
				if err := a.migrate(database.MigrateUp); err != nil {
					return err
				}
			}
			return a.serve(ctx)
		},
	}
	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "do not apply pending migrations on startup")
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	repos, closeStorage, err := a.openRepositories(ctx)
	if err != nil {
		return err
	}
	defer closeStorage()

	actionMetrics := metrics.NewActionMetrics()
	views, err := viewcache.New(a.cfg.ViewCacheSize, viewcache.WithRecorder(actionMetrics))
	if err != nil {
		return err
	}
	serviceContainer := services.NewServiceContainer(repos, views, actionMetrics)

	var mutationLimiter *limiter.Limiter
	if a.cfg.MutationRateLimit != "" {
		mutationLimiter, err = middleware.NewMemoryLimiter(a.cfg.MutationRateLimit)
		if err != nil {
			return err
		}
	}

	if a.cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(a.logger), gin.Recovery())
	if len(a.cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  a.cfg.CORSAllowedOrigins,
			AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
			ExposeHeaders: []string{"Location", "X-Request-ID"},
			MaxAge:        12 * time.Hour,
		}))
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		return err
	}

	handlers.RegisterRoutes(r, serviceContainer, mutationLimiter)

	srv := &http.Server{
		Addr:              ":" + a.cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		a.logger.Info("Server starting", slog.String("port", a.cfg.Port))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
