package services

import (
	"context"

	"mcp-playground/cache"
	"mcp-playground/models"
	"mcp-playground/query"
	"mcp-playground/repositories"
)

type DocumentationService interface {
	ListSections(ctx context.Context, params models.DocumentationListParams) (query.Result[models.DocumentationSection], error)
	GetSection(ctx context.Context, id string) (*models.DocumentationSection, error)
	Categories(ctx context.Context) ([]string, error)
}

type documentationService struct {
	docRepo repositories.DocumentationRepository
	lists   *cache.Namespace
}

func NewDocumentationService(docRepo repositories.DocumentationRepository, lists *cache.Namespace) DocumentationService {
	return &documentationService{
		docRepo: docRepo,
		lists:   lists,
	}
}

// ListSections returns every matching section unless a limit or offset is
// given.
func (s *documentationService) ListSections(ctx context.Context, params models.DocumentationListParams) (query.Result[models.DocumentationSection], error) {
	q := query.DocumentationQuery{Category: params.Category}
	if params.Limit != "" || params.Offset != "" {
		w := query.ParseWindow(params.Limit, params.Offset)
		q.Window = &w
	}

	return cache.Remember(ctx, s.lists, q, func() (query.Result[models.DocumentationSection], error) {
		docs, err := s.docRepo.List(ctx)
		if err != nil {
			return query.Result[models.DocumentationSection]{}, err
		}
		return query.Documentation(docs, q), nil
	})
}

func (s *documentationService) GetSection(ctx context.Context, id string) (*models.DocumentationSection, error) {
	return s.docRepo.GetByID(ctx, id)
}

// Categories lists each category once, in the order sections are shown.
func (s *documentationService) Categories(ctx context.Context) ([]string, error) {
	const key = "categories"

	return cache.Remember(ctx, s.lists, key, func() ([]string, error) {
		docs, err := s.docRepo.List(ctx)
		if err != nil {
			return nil, err
		}
		return query.Categories(query.Documentation(docs, query.DocumentationQuery{}).Items), nil
	})
}
