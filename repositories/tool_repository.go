package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"mcp-playground/models"
)

type toolRepository struct {
	db *gorm.DB
}

func NewToolRepository(db *gorm.DB) ToolRepository {
	return &toolRepository{db: db}
}

func (r *toolRepository) List(ctx context.Context) ([]models.Tool, error) {
	var tools []models.Tool
	err := r.db.WithContext(ctx).Order("seq asc").Find(&tools).Error
	return tools, err
}

func (r *toolRepository) GetByID(ctx context.Context, id string) (*models.Tool, error) {
	var tool models.Tool
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&tool).Error
	if err != nil {
		return nil, translateNotFound(err, "Tool")
	}
	return &tool, nil
}

func (r *toolRepository) Create(ctx context.Context, tool *models.Tool) error {
	return r.db.WithContext(ctx).Create(tool).Error
}

func (r *toolRepository) Update(ctx context.Context, tool *models.Tool) error {
	return r.db.WithContext(ctx).Save(tool).Error
}

func (r *toolRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Tool{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrorNotFound{Resource: "Tool"}
	}
	return nil
}

func (r *toolRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Tool{}).Count(&n).Error
	return n, err
}

func translateNotFound(err error, resource string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrorNotFound{Resource: resource}
	}
	return err
}
