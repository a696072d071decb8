package repositories

import (
	"context"

	"gorm.io/gorm"

	"mcp-playground/models"
)

type documentationRepository struct {
	db *gorm.DB
}

func NewDocumentationRepository(db *gorm.DB) DocumentationRepository {
	return &documentationRepository{db: db}
}

func (r *documentationRepository) List(ctx context.Context) ([]models.DocumentationSection, error) {
	var docs []models.DocumentationSection
	err := r.db.WithContext(ctx).Order("seq asc").Find(&docs).Error
	return docs, err
}

func (r *documentationRepository) GetByID(ctx context.Context, id string) (*models.DocumentationSection, error) {
	var doc models.DocumentationSection
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&doc).Error; err != nil {
		return nil, translateNotFound(err, "Documentation section")
	}
	return &doc, nil
}

func (r *documentationRepository) Create(ctx context.Context, doc *models.DocumentationSection) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *documentationRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.DocumentationSection{}).Count(&n).Error
	return n, err
}
