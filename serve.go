package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"mcp-playground/cache"
	"mcp-playground/config"
	"mcp-playground/middleware"
	"mcp-playground/panel"
	"mcp-playground/router"
	"mcp-playground/seed"
	"mcp-playground/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if port, _ := cmd.Flags().GetString("port"); port != "" {
			cfg.Port = port
		}
		return serve(cmd.Context(), cfg)
	},
}

func init() {
	serveCmd.Flags().StringP("port", "p", "", "port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context, cfg *config.Config) error {
	log := newLogger(cfg)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize repositories
	repos, closeRepos, err := openRepositories(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeRepos()

	if cfg.SeedOnStart && cfg.StorageDriver == config.StorageMemory {
		data, err := seed.Load()
		if err != nil {
			return err
		}
		if err := seed.Apply(ctx, repos, data, log); err != nil {
			return err
		}
	}

	// Initialize list caches
	backend, err := config.NewCache(ctx, cfg)
	if err != nil {
		return err
	}
	toolLists := cache.NewNamespace(backend, "tools", cfg.CacheTTL, log)
	blogLists := cache.NewNamespace(backend, "blog", cfg.CacheTTL, log)
	docLists := cache.NewNamespace(backend, "docs", cfg.CacheTTL, log)
	// a shared backend may hold lists from a previous process with different data
	for _, ns := range []*cache.Namespace{toolLists, blogLists, docLists} {
		ns.Invalidate(ctx)
	}

	// Initialize playground
	sessions := panel.NewSessionStore(
		cfg.PlaygroundSessionTTL,
		panel.DefaultConfig(),
		panel.SimulatedDispatcher{Latency: cfg.PlaygroundLatency},
		log,
	)

	var contactLimiter *middleware.RateLimiter
	if cfg.ContactRateLimit > 0 {
		contactLimiter = middleware.NewRateLimiter(cfg.ContactRateLimit, cfg.ContactRateBurst, 10*time.Minute)
	}

	// Setup router
	engine := router.Setup(router.Deps{
		Logger:         log,
		Version:        version,
		Tools:          services.NewToolService(repos.Tools, toolLists),
		Blog:           services.NewBlogService(repos.BlogPosts, blogLists),
		Contact:        services.NewContactService(repos.ContactMessages, log),
		Documentation:  services.NewDocumentationService(repos.Documentation, docLists),
		Playground:     services.NewPlaygroundService(sessions),
		ContactLimiter: contactLimiter,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", "port", cfg.Port, "storage", cfg.StorageDriver, "cache", cfg.CacheDriver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("server exited")
	return nil
}
