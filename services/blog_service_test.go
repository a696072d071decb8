package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcp-playground/cache"
	"mcp-playground/logger"
	"mcp-playground/models"
	"mcp-playground/repositories"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hello World!":                  "hello-world",
		"  Building Custom AI Tools  ":  "building-custom-ai-tools",
		"MCP -- the (future) of tools?": "mcp-the-future-of-tools",
		"!!!":                           "",
		"Café au lait":                  "caf-au-lait",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), in)
	}
}

func TestExcerpt(t *testing.T) {
	long := strings.Repeat("a", 250)
	assert.Equal(t, strings.Repeat("a", 200)+"...", Excerpt(long))
	assert.Equal(t, "short", Excerpt("short"))
	assert.Equal(t, strings.Repeat("b", 200), Excerpt(strings.Repeat("b", 200)))
}

func newBlogService() (BlogService, repositories.BlogPostRepository) {
	repo := repositories.NewMemoryBlogPostRepository()
	return NewBlogService(repo, nil), repo
}

func TestCreatePostDerivesSlugAndExcerpt(t *testing.T) {
	svc, _ := newBlogService()
	content := strings.Repeat("x", 250)

	post, err := svc.CreatePost(context.Background(), models.CreateBlogPostRequest{
		Title: "Hello World!", Content: content, Author: "Ada",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(post.ID, "post-"))
	assert.Equal(t, "hello-world", post.Slug)
	assert.Equal(t, strings.Repeat("x", 200)+"...", post.Excerpt)
	assert.False(t, post.Published)
	assert.NotNil(t, post.Tags)
}

func TestCreatePostKeepsGivenExcerpt(t *testing.T) {
	svc, _ := newBlogService()
	post, err := svc.CreatePost(context.Background(), models.CreateBlogPostRequest{
		Title: "T", Content: strings.Repeat("x", 300), Author: "Ada", Excerpt: "mine", Published: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "mine", post.Excerpt)
	assert.True(t, post.Published)
}

func TestCreatePostUniqueSlugs(t *testing.T) {
	svc, repo := newBlogService()
	ctx := context.Background()
	req := models.CreateBlogPostRequest{Title: "Hello World", Content: "c", Author: "a"}

	first, err := svc.CreatePost(ctx, req)
	require.NoError(t, err)
	second, err := svc.CreatePost(ctx, req)
	require.NoError(t, err)
	third, err := svc.CreatePost(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, "hello-world", first.Slug)
	assert.Equal(t, "hello-world-2", second.Slug)
	assert.Equal(t, "hello-world-3", third.Slug)

	got, err := repo.GetBySlug(ctx, "hello-world-2")
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)
}

func TestCreatePostSymbolOnlyTitle(t *testing.T) {
	svc, _ := newBlogService()
	post, err := svc.CreatePost(context.Background(), models.CreateBlogPostRequest{Title: "???", Content: "c", Author: "a"})
	require.NoError(t, err)
	assert.Equal(t, "post", post.Slug)
}

func TestCreatePostMissingFields(t *testing.T) {
	svc, repo := newBlogService()
	_, err := svc.CreatePost(context.Background(), models.CreateBlogPostRequest{Title: "only title"})
	assert.EqualError(t, err, "Missing required fields: content, author")

	n, _ := repo.Count(context.Background())
	assert.Equal(t, int64(0), n)
}

func TestListPostsPublishedFilter(t *testing.T) {
	svc, _ := newBlogService()
	ctx := context.Background()
	_, err := svc.CreatePost(ctx, models.CreateBlogPostRequest{Title: "Draft", Content: "c", Author: "a"})
	require.NoError(t, err)
	_, err = svc.CreatePost(ctx, models.CreateBlogPostRequest{Title: "Live", Content: "c", Author: "a", Published: true})
	require.NoError(t, err)

	res, err := svc.ListPosts(ctx, models.BlogListParams{})
	require.NoError(t, err)
	require.Equal(t, 1, res.Total)
	assert.Equal(t, "Live", res.Items[0].Title)

	res, err = svc.ListPosts(ctx, models.BlogListParams{Published: "true"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)

	res, err = svc.ListPosts(ctx, models.BlogListParams{Published: "false"})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
}

func TestGetPostBySlugNotFound(t *testing.T) {
	svc, _ := newBlogService()
	_, err := svc.GetPostBySlug(context.Background(), "nope")
	assert.EqualError(t, err, "Blog post not found")
}

func TestRepeatedListPostsReturnsIdenticalResult(t *testing.T) {
	repo := repositories.NewMemoryBlogPostRepository()
	lists := cache.NewNamespace(cache.NewMemory(time.Minute), "blog", time.Minute, logger.Nop())
	svc := NewBlogService(repo, lists)
	ctx := context.Background()

	for _, title := range []string{"One", "Two", "Three"} {
		_, err := svc.CreatePost(ctx, models.CreateBlogPostRequest{
			Title: title, Content: strings.Repeat("word ", 60), Author: "Ada", Published: true,
		})
		require.NoError(t, err)
	}

	params := models.BlogListParams{Limit: "2", Offset: "1"}
	first, err := svc.ListPosts(ctx, params)
	require.NoError(t, err)
	second, err := svc.ListPosts(ctx, params)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 3, second.Total)
	assert.Len(t, second.Items, 2)
}
