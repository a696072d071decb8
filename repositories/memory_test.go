package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcp-playground/models"
)

func TestMemoryToolRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryToolRepository()

	require.NoError(t, repo.Create(ctx, &models.Tool{ID: "1", Name: "First", Tags: []string{"a"}}))
	require.NoError(t, repo.Create(ctx, &models.Tool{ID: "2", Name: "Second"}))

	t.Run("duplicate id is rejected", func(t *testing.T) {
		err := repo.Create(ctx, &models.Tool{ID: "1"})
		assert.Error(t, err)
	})

	t.Run("list keeps insertion order", func(t *testing.T) {
		tools, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, tools, 2)
		assert.Equal(t, "1", tools[0].ID)
		assert.Equal(t, "2", tools[1].ID)
	})

	t.Run("returned records do not alias the store", func(t *testing.T) {
		tool, err := repo.GetByID(ctx, "1")
		require.NoError(t, err)
		tool.Tags[0] = "mutated"
		tool.Name = "mutated"

		again, err := repo.GetByID(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "First", again.Name)
		assert.Equal(t, []string{"a"}, again.Tags)
	})

	t.Run("update replaces the record", func(t *testing.T) {
		tool, err := repo.GetByID(ctx, "2")
		require.NoError(t, err)
		tool.Rating = 4.5
		require.NoError(t, repo.Update(ctx, tool))

		again, err := repo.GetByID(ctx, "2")
		require.NoError(t, err)
		assert.Equal(t, 4.5, again.Rating)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "nope")
		assert.True(t, models.IsNotFound(err))
		assert.EqualError(t, err, "Tool not found")

		assert.True(t, models.IsNotFound(repo.Update(ctx, &models.Tool{ID: "nope"})))
		assert.True(t, models.IsNotFound(repo.Delete(ctx, "nope")))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "1"))
		n, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})
}

func TestMemoryBlogPostRepositoryGetBySlug(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryBlogPostRepository()
	require.NoError(t, repo.Create(ctx, &models.BlogPost{ID: "1", Slug: "hello-world", CreatedAt: time.Now()}))

	post, err := repo.GetBySlug(ctx, "hello-world")
	require.NoError(t, err)
	assert.Equal(t, "1", post.ID)

	_, err = repo.GetBySlug(ctx, "missing")
	assert.EqualError(t, err, "Blog post not found")
}

func TestMemoryContactMessageRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryContactMessageRepository()
	require.NoError(t, repo.Create(ctx, &models.ContactMessage{ID: "m1", Status: models.ContactStatusNew}))

	msg, err := repo.GetByID(ctx, "m1")
	require.NoError(t, err)
	msg.Status = models.ContactStatusReplied
	require.NoError(t, repo.Update(ctx, msg))

	msg, err = repo.GetByID(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, models.ContactStatusReplied, msg.Status)

	_, err = repo.GetByID(ctx, "m2")
	assert.EqualError(t, err, "Contact message not found")
}

func TestMemoryDocumentationRepository(t *testing.T) {
	ctx := context.Background()
	repos := NewMemoryRepositories()
	require.NoError(t, repos.Documentation.Create(ctx, &models.DocumentationSection{ID: "1", Order: 2}))
	require.NoError(t, repos.Documentation.Create(ctx, &models.DocumentationSection{ID: "2", Order: 1}))

	docs, err := repos.Documentation.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "1", docs[0].ID)

	_, err = repos.Documentation.GetByID(ctx, "3")
	assert.EqualError(t, err, "Documentation section not found")
}
