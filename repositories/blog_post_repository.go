package repositories

import (
	"context"

	"gorm.io/gorm"

	"mcp-playground/models"
)

type blogPostRepository struct {
	db *gorm.DB
}

func NewBlogPostRepository(db *gorm.DB) BlogPostRepository {
	return &blogPostRepository{db: db}
}

func (r *blogPostRepository) List(ctx context.Context) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := r.db.WithContext(ctx).Order("seq asc").Find(&posts).Error
	return posts, err
}

func (r *blogPostRepository) GetByID(ctx context.Context, id string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
		return nil, translateNotFound(err, "Blog post")
	}
	return &post, nil
}

func (r *blogPostRepository) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&post).Error; err != nil {
		return nil, translateNotFound(err, "Blog post")
	}
	return &post, nil
}

func (r *blogPostRepository) Create(ctx context.Context, post *models.BlogPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *blogPostRepository) Update(ctx context.Context, post *models.BlogPost) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *blogPostRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.BlogPost{}).Count(&n).Error
	return n, err
}
