// Package seed loads the bundled catalog content into empty repositories.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	"mcp-playground/models"
	"mcp-playground/repositories"
)

//go:embed seed.yaml
var defaultData []byte

// Data is the content of a seed file.
type Data struct {
	Tools         []models.Tool                 `yaml:"tools"`
	BlogPosts     []models.BlogPost             `yaml:"blog_posts"`
	Documentation []models.DocumentationSection `yaml:"documentation"`
}

// Load decodes the bundled seed file.
func Load() (*Data, error) {
	return Parse(defaultData)
}

func Parse(b []byte) (*Data, error) {
	var data Data
	if err := yaml.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}
	return &data, nil
}

// Apply inserts data into each repository that is still empty, so running it
// twice does not duplicate records.
func Apply(ctx context.Context, repos *repositories.Repositories, data *Data, logger *slog.Logger) error {
	if err := applyTable(ctx, "tools", repos.Tools.Count, data.Tools, repos.Tools.Create, logger); err != nil {
		return err
	}
	if err := applyTable(ctx, "blog_posts", repos.BlogPosts.Count, data.BlogPosts, repos.BlogPosts.Create, logger); err != nil {
		return err
	}
	return applyTable(ctx, "documentation", repos.Documentation.Count, data.Documentation, repos.Documentation.Create, logger)
}

func applyTable[T any](
	ctx context.Context,
	name string,
	count func(context.Context) (int64, error),
	rows []T,
	create func(context.Context, *T) error,
	logger *slog.Logger,
) error {
	n, err := count(ctx)
	if err != nil {
		return fmt.Errorf("count %s: %w", name, err)
	}
	if n > 0 {
		logger.Info("seed skipped, table not empty", "table", name, "rows", n)
		return nil
	}

	for i := range rows {
		if err := create(ctx, &rows[i]); err != nil {
			return fmt.Errorf("seed %s: %w", name, err)
		}
	}
	logger.Info("seeded", "table", name, "rows", len(rows))
	return nil
}
