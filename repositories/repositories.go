package repositories

import (
	"context"

	"gorm.io/gorm"

	"mcp-playground/models"
)

// Every List returns records in store (insertion) order. Update expects a
// record previously returned by the same repository.

type ToolRepository interface {
	List(ctx context.Context) ([]models.Tool, error)
	GetByID(ctx context.Context, id string) (*models.Tool, error)
	Create(ctx context.Context, tool *models.Tool) error
	Update(ctx context.Context, tool *models.Tool) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type BlogPostRepository interface {
	List(ctx context.Context) ([]models.BlogPost, error)
	GetByID(ctx context.Context, id string) (*models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	Create(ctx context.Context, post *models.BlogPost) error
	Update(ctx context.Context, post *models.BlogPost) error
	Count(ctx context.Context) (int64, error)
}

type ContactMessageRepository interface {
	List(ctx context.Context) ([]models.ContactMessage, error)
	GetByID(ctx context.Context, id string) (*models.ContactMessage, error)
	Create(ctx context.Context, msg *models.ContactMessage) error
	Update(ctx context.Context, msg *models.ContactMessage) error
	Count(ctx context.Context) (int64, error)
}

type DocumentationRepository interface {
	List(ctx context.Context) ([]models.DocumentationSection, error)
	GetByID(ctx context.Context, id string) (*models.DocumentationSection, error)
	Create(ctx context.Context, doc *models.DocumentationSection) error
	Count(ctx context.Context) (int64, error)
}

// Repositories bundles one repository per resource.
type Repositories struct {
	Tools           ToolRepository
	BlogPosts       BlogPostRepository
	ContactMessages ContactMessageRepository
	Documentation   DocumentationRepository
}

func NewGormRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Tools:           NewToolRepository(db),
		BlogPosts:       NewBlogPostRepository(db),
		ContactMessages: NewContactMessageRepository(db),
		Documentation:   NewDocumentationRepository(db),
	}
}

func NewMemoryRepositories() *Repositories {
	return &Repositories{
		Tools:           NewMemoryToolRepository(),
		BlogPosts:       NewMemoryBlogPostRepository(),
		ContactMessages: NewMemoryContactMessageRepository(),
		Documentation:   NewMemoryDocumentationRepository(),
	}
}

// Migrate creates or updates the tables backing the gorm repositories.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Tool{},
		&models.BlogPost{},
		&models.ContactMessage{},
		&models.DocumentationSection{},
	)
}
