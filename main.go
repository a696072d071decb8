package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"mcp-playground/config"
	"mcp-playground/logger"
	"mcp-playground/repositories"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:           "mcp-playground",
	Short:         "MCP tool catalog and playground API",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	return logger.New(logger.Config{
		Format:      cfg.LogFormat,
		Environment: cfg.Environment,
		Level:       logger.ParseLevel(cfg.LogLevel),
	})
}

// openRepositories returns the repository set for the configured storage
// driver and a cleanup func for the underlying connection.
func openRepositories(ctx context.Context, cfg *config.Config, log *slog.Logger) (*repositories.Repositories, func(), error) {
	if cfg.StorageDriver == config.StorageMemory {
		log.Info("using in-memory storage")
		return repositories.NewMemoryRepositories(), func() {}, nil
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := db.WithContext(ctx).DB()
	if err != nil {
		return nil, nil, err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}
	log.Info("connected to postgres")

	return repositories.NewGormRepositories(db), func() { _ = sqlDB.Close() }, nil
}
