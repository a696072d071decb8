package main

import (
	"errors"

	"github.com/spf13/cobra"

	"mcp-playground/config"
	"mcp-playground/repositories"
	"mcp-playground/seed"
)

var errMemoryStorage = errors.New("STORAGE_DRIVER is memory; set it to postgres to use this command")

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.StorageDriver == config.StorageMemory {
			return errMemoryStorage
		}

		log := newLogger(cfg)
		db, err := config.InitDB(cfg)
		if err != nil {
			return err
		}
		if err := repositories.Migrate(db); err != nil {
			return err
		}
		log.Info("migration complete")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the bundled tools, blog posts and documentation into empty tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.StorageDriver == config.StorageMemory {
			return errMemoryStorage
		}

		log := newLogger(cfg)
		repos, closeRepos, err := openRepositories(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer closeRepos()

		data, err := seed.Load()
		if err != nil {
			return err
		}
		return seed.Apply(cmd.Context(), repos, data, log)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd, seedCmd)
}
