package services

import (
	"context"
	"strconv"
	"sync"

	"mcp-playground/cache"
	"mcp-playground/idgen"
	"mcp-playground/models"
	"mcp-playground/query"
	"mcp-playground/repositories"
	"mcp-playground/validation"
)

type BlogService interface {
	ListPosts(ctx context.Context, params models.BlogListParams) (query.Result[models.BlogPost], error)
	GetPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	CreatePost(ctx context.Context, req models.CreateBlogPostRequest) (*models.BlogPost, error)
}

type blogService struct {
	postRepo repositories.BlogPostRepository
	lists    *cache.Namespace

	// serializes slug allocation
	mu sync.Mutex
}

func NewBlogService(postRepo repositories.BlogPostRepository, lists *cache.Namespace) BlogService {
	return &blogService{
		postRepo: postRepo,
		lists:    lists,
	}
}

// ListPosts shows only published posts unless published is set to something
// other than "true".
func (s *blogService) ListPosts(ctx context.Context, params models.BlogListParams) (query.Result[models.BlogPost], error) {
	q := query.BlogQuery{
		PublishedOnly: params.Published == "" || params.Published == "true",
		Tag:           params.Tag,
		Window:        query.ParseWindow(params.Limit, params.Offset),
	}

	return cache.Remember(ctx, s.lists, q, func() (query.Result[models.BlogPost], error) {
		posts, err := s.postRepo.List(ctx)
		if err != nil {
			return query.Result[models.BlogPost]{}, err
		}
		return query.BlogPosts(posts, q), nil
	})
}

func (s *blogService) GetPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	return s.postRepo.GetBySlug(ctx, slug)
}

func (s *blogService) CreatePost(ctx context.Context, req models.CreateBlogPostRequest) (*models.BlogPost, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	id, err := idgen.Generate("post")
	if err != nil {
		return nil, err
	}

	excerpt := req.Excerpt
	if excerpt == "" {
		excerpt = Excerpt(req.Content)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	slug, err := s.uniqueSlug(ctx, Slugify(req.Title))
	if err != nil {
		return nil, err
	}

	ts := now()
	post := &models.BlogPost{
		ID:            id,
		Title:         req.Title,
		Content:       req.Content,
		Excerpt:       excerpt,
		Author:        req.Author,
		Tags:          emptyIfNil(req.Tags),
		Published:     req.Published,
		Slug:          slug,
		FeaturedImage: req.FeaturedImage,
		CreatedAt:     ts,
		UpdatedAt:     ts,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	s.lists.Invalidate(ctx)

	return post, nil
}

// uniqueSlug appends -2, -3, ... to base until no stored post uses it.
func (s *blogService) uniqueSlug(ctx context.Context, base string) (string, error) {
	if base == "" {
		base = "post"
	}
	slug := base
	for n := 2; ; n++ {
		_, err := s.postRepo.GetBySlug(ctx, slug)
		if models.IsNotFound(err) {
			return slug, nil
		}
		if err != nil {
			return "", err
		}
		slug = base + "-" + strconv.Itoa(n)
	}
}
