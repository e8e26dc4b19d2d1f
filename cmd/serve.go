package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"terms/internal/api"
	"terms/internal/classmap"
	"terms/internal/config"
	"terms/pkg/logger"
	"terms/pkg/resolver"
	"terms/pkg/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// setupClassMap builds the registry the resolver reads taxonomy classes from.
// When a class map file is configured it is loaded, and watched for changes if
// enabled. The returned function stops the watcher.
func setupClassMap(ctx context.Context, cfg *config.Config) (*resolver.Registry, func()) {
	registry := resolver.NewRegistry(nil)
	if cfg.ClassMap.Path == "" {
		return registry, func() {}
	}

	if !cfg.ClassMap.Watch {
		entries, err := classmap.Load(cfg.ClassMap.Path)
		if err != nil {
			logger.Fatal(ctx, "could not load class map", zap.String("path", cfg.ClassMap.Path), zap.Error(err))
		}
		registry.Replace(entries)

		return registry, func() {}
	}

	watcher, err := classmap.Watch(ctx, cfg.ClassMap.Path, registry)
	if err != nil {
		logger.Fatal(ctx, "could not watch class map", zap.String("path", cfg.ClassMap.Path), zap.Error(err))
	}

	return registry, func() {
		if err := watcher.Close(); err != nil {
			logger.Warn(ctx, "could not close class map watcher", zap.Error(err))
		}
	}
}

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(ctx, deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the term resolution API server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			registry, closeClassMap := setupClassMap(ctx, cfg)
			defer closeClassMap()
			logger.Info(ctx, "class map ready", zap.Strings("taxonomies", registry.Taxonomies()))

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Storage: storage.TermStorage(strg),
				Classes: registry,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
