package repositories

import (
	"context"
	"fmt"
	"sync"

	"mcp-playground/models"
)

// memoryTable is an ordered, mutex-guarded slice of rows. Rows are cloned on
// the way in and out so callers never share state with the table.
type memoryTable[T any] struct {
	mu       sync.RWMutex
	rows     []T
	resource string
	key      func(*T) string
	clone    func(T) T
}

func newMemoryTable[T any](resource string, key func(*T) string, clone func(T) T) *memoryTable[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &memoryTable[T]{resource: resource, key: key, clone: clone}
}

func (t *memoryTable[T]) list() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, len(t.rows))
	for i, row := range t.rows {
		out[i] = t.clone(row)
	}
	return out
}

func (t *memoryTable[T]) find(match func(*T) bool) (*T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for i := range t.rows {
		if match(&t.rows[i]) {
			row := t.clone(t.rows[i])
			return &row, nil
		}
	}
	return nil, models.ErrorNotFound{Resource: t.resource}
}

func (t *memoryTable[T]) get(key string) (*T, error) {
	return t.find(func(row *T) bool { return t.key(row) == key })
}

func (t *memoryTable[T]) insert(row *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	k := t.key(row)
	for i := range t.rows {
		if t.key(&t.rows[i]) == k {
			return fmt.Errorf("%s %q already exists", t.resource, k)
		}
	}
	t.rows = append(t.rows, t.clone(*row))
	return nil
}

func (t *memoryTable[T]) replace(row *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	k := t.key(row)
	for i := range t.rows {
		if t.key(&t.rows[i]) == k {
			t.rows[i] = t.clone(*row)
			return nil
		}
	}
	return models.ErrorNotFound{Resource: t.resource}
}

func (t *memoryTable[T]) remove(key string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.rows {
		if t.key(&t.rows[i]) == key {
			t.rows = append(t.rows[:i], t.rows[i+1:]...)
			return nil
		}
	}
	return models.ErrorNotFound{Resource: t.resource}
}

func (t *memoryTable[T]) count() int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return int64(len(t.rows))
}

type memoryToolRepository struct {
	table *memoryTable[models.Tool]
}

func NewMemoryToolRepository() ToolRepository {
	return &memoryToolRepository{
		table: newMemoryTable("Tool", func(t *models.Tool) string { return t.ID }, models.Tool.Clone),
	}
}

func (r *memoryToolRepository) List(_ context.Context) ([]models.Tool, error) {
	return r.table.list(), nil
}

func (r *memoryToolRepository) GetByID(_ context.Context, id string) (*models.Tool, error) {
	return r.table.get(id)
}

func (r *memoryToolRepository) Create(_ context.Context, tool *models.Tool) error {
	return r.table.insert(tool)
}

func (r *memoryToolRepository) Update(_ context.Context, tool *models.Tool) error {
	return r.table.replace(tool)
}

func (r *memoryToolRepository) Delete(_ context.Context, id string) error {
	return r.table.remove(id)
}

func (r *memoryToolRepository) Count(_ context.Context) (int64, error) {
	return r.table.count(), nil
}

type memoryBlogPostRepository struct {
	table *memoryTable[models.BlogPost]
}

func NewMemoryBlogPostRepository() BlogPostRepository {
	return &memoryBlogPostRepository{
		table: newMemoryTable("Blog post", func(p *models.BlogPost) string { return p.ID }, models.BlogPost.Clone),
	}
}

func (r *memoryBlogPostRepository) List(_ context.Context) ([]models.BlogPost, error) {
	return r.table.list(), nil
}

func (r *memoryBlogPostRepository) GetByID(_ context.Context, id string) (*models.BlogPost, error) {
	return r.table.get(id)
}

func (r *memoryBlogPostRepository) GetBySlug(_ context.Context, slug string) (*models.BlogPost, error) {
	return r.table.find(func(p *models.BlogPost) bool { return p.Slug == slug })
}

func (r *memoryBlogPostRepository) Create(_ context.Context, post *models.BlogPost) error {
	return r.table.insert(post)
}

func (r *memoryBlogPostRepository) Update(_ context.Context, post *models.BlogPost) error {
	return r.table.replace(post)
}

func (r *memoryBlogPostRepository) Count(_ context.Context) (int64, error) {
	return r.table.count(), nil
}

type memoryContactMessageRepository struct {
	table *memoryTable[models.ContactMessage]
}

func NewMemoryContactMessageRepository() ContactMessageRepository {
	return &memoryContactMessageRepository{
		table: newMemoryTable[models.ContactMessage]("Contact message", func(m *models.ContactMessage) string { return m.ID }, nil),
	}
}

func (r *memoryContactMessageRepository) List(_ context.Context) ([]models.ContactMessage, error) {
	return r.table.list(), nil
}

func (r *memoryContactMessageRepository) GetByID(_ context.Context, id string) (*models.ContactMessage, error) {
	return r.table.get(id)
}

func (r *memoryContactMessageRepository) Create(_ context.Context, msg *models.ContactMessage) error {
	return r.table.insert(msg)
}

func (r *memoryContactMessageRepository) Update(_ context.Context, msg *models.ContactMessage) error {
	return r.table.replace(msg)
}

func (r *memoryContactMessageRepository) Count(_ context.Context) (int64, error) {
	return r.table.count(), nil
}

type memoryDocumentationRepository struct {
	table *memoryTable[models.DocumentationSection]
}

func NewMemoryDocumentationRepository() DocumentationRepository {
	return &memoryDocumentationRepository{
		table: newMemoryTable[models.DocumentationSection]("Documentation section", func(d *models.DocumentationSection) string { return d.ID }, nil),
	}
}

func (r *memoryDocumentationRepository) List(_ context.Context) ([]models.DocumentationSection, error) {
	return r.table.list(), nil
}

func (r *memoryDocumentationRepository) GetByID(_ context.Context, id string) (*models.DocumentationSection, error) {
	return r.table.get(id)
}

func (r *memoryDocumentationRepository) Create(_ context.Context, doc *models.DocumentationSection) error {
	return r.table.insert(doc)
}

func (r *memoryDocumentationRepository) Count(_ context.Context) (int64, error) {
	return r.table.count(), nil
}
