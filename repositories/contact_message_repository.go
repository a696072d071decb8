package repositories

import (
	"context"

	"gorm.io/gorm"

	"mcp-playground/models"
)

type contactMessageRepository struct {
	db *gorm.DB
}

func NewContactMessageRepository(db *gorm.DB) ContactMessageRepository {
	return &contactMessageRepository{db: db}
}

func (r *contactMessageRepository) List(ctx context.Context) ([]models.ContactMessage, error) {
	var msgs []models.ContactMessage
	err := r.db.WithContext(ctx).Order("seq asc").Find(&msgs).Error
	return msgs, err
}

func (r *contactMessageRepository) GetByID(ctx context.Context, id string) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&msg).Error; err != nil {
		return nil, translateNotFound(err, "Contact message")
	}
	return &msg, nil
}

func (r *contactMessageRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

// Update only writes the status column; it is the only mutable field.
func (r *contactMessageRepository) Update(ctx context.Context, msg *models.ContactMessage) error {
	res := r.db.WithContext(ctx).Model(&models.ContactMessage{}).
		Where("id = ?", msg.ID).
		Update("status", msg.Status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrorNotFound{Resource: "Contact message"}
	}
	return nil
}

func (r *contactMessageRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.ContactMessage{}).Count(&n).Error
	return n, err
}
