package services

import (
	"context"

	"mcp-playground/cache"
	"mcp-playground/idgen"
	"mcp-playground/models"
	"mcp-playground/query"
	"mcp-playground/repositories"
	"mcp-playground/validation"
)

type ToolService interface {
	ListTools(ctx context.Context, params models.ToolListParams) (query.Result[models.Tool], error)
	GetTool(ctx context.Context, id string) (*models.Tool, error)
	CreateTool(ctx context.Context, req models.CreateToolRequest) (*models.Tool, error)
	UpdateTool(ctx context.Context, id string, req models.UpdateToolRequest) (*models.Tool, error)
	DeleteTool(ctx context.Context, id string) error
}

type toolService struct {
	toolRepo repositories.ToolRepository
	lists    *cache.Namespace
}

// NewToolService creates the tool service. lists may be nil to disable list
// caching.
func NewToolService(toolRepo repositories.ToolRepository, lists *cache.Namespace) ToolService {
	return &toolService{
		toolRepo: toolRepo,
		lists:    lists,
	}
}

func (s *toolService) ListTools(ctx context.Context, params models.ToolListParams) (query.Result[models.Tool], error) {
	q := query.ToolQuery{
		Term:     params.Q,
		Category: params.Category,
		Tags:     query.SplitList(params.Tags...),
		Sort:     models.ParseToolSort(params.Sort),
		Window:   query.ParseWindow(params.Limit, params.Offset),
	}

	return cache.Remember(ctx, s.lists, q, func() (query.Result[models.Tool], error) {
		tools, err := s.toolRepo.List(ctx)
		if err != nil {
			return query.Result[models.Tool]{}, err
		}
		return query.Tools(tools, q), nil
	})
}

func (s *toolService) GetTool(ctx context.Context, id string) (*models.Tool, error) {
	return s.toolRepo.GetByID(ctx, id)
}

func (s *toolService) CreateTool(ctx context.Context, req models.CreateToolRequest) (*models.Tool, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	id, err := idgen.Generate("tool")
	if err != nil {
		return nil, err
	}

	ts := now()
	tool := &models.Tool{
		ID:             id,
		Name:           req.Name,
		Description:    req.Description,
		Category:       req.Category,
		Tags:           emptyIfNil(req.Tags),
		Version:        req.Version,
		Author:         req.Author,
		Repository:     req.Repository,
		Documentation:  req.Documentation,
		InstallCommand: req.InstallCommand,
		UsageExamples:  req.UsageExamples,
		Downloads:      0,
		Rating:         0,
		CreatedAt:      ts,
		UpdatedAt:      ts,
	}

	if err := s.toolRepo.Create(ctx, tool); err != nil {
		return nil, err
	}
	s.lists.Invalidate(ctx)

	return tool, nil
}

// UpdateTool merges the provided fields over the stored tool. The id and
// creation time never change.
func (s *toolService) UpdateTool(ctx context.Context, id string, req models.UpdateToolRequest) (*models.Tool, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	tool, err := s.toolRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	mergeTool(tool, req)
	tool.UpdatedAt = now()

	if err := s.toolRepo.Update(ctx, tool); err != nil {
		return nil, err
	}
	s.lists.Invalidate(ctx)

	return tool, nil
}

func (s *toolService) DeleteTool(ctx context.Context, id string) error {
	if err := s.toolRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.lists.Invalidate(ctx)
	return nil
}

func mergeTool(tool *models.Tool, req models.UpdateToolRequest) {
	setIf(&tool.Name, req.Name)
	setIf(&tool.Description, req.Description)
	setIf(&tool.Category, req.Category)
	setIf(&tool.Version, req.Version)
	setIf(&tool.Author, req.Author)
	setIf(&tool.Repository, req.Repository)
	setIf(&tool.Documentation, req.Documentation)
	setIf(&tool.InstallCommand, req.InstallCommand)
	setIf(&tool.Downloads, req.Downloads)
	setIf(&tool.Rating, req.Rating)
	if req.Tags != nil {
		tool.Tags = emptyIfNil(*req.Tags)
	}
	setIf(&tool.UsageExamples, req.UsageExamples)
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
