package repository

import (
	"context"

	"smarthaus/internal/domain/entities"
	"smarthaus/internal/usecase/interfaces"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationGormRepository struct {
	db *gorm.DB
}

var _ interfaces.INotificationRepository = (*NotificationGormRepository)(nil)

func NewNotificationGormRepository(db *gorm.DB) *NotificationGormRepository {
	return &NotificationGormRepository{db: db}
}

func (r *NotificationGormRepository) Create(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(&n).Error; err != nil {
		return entities.Notification{}, err
	}
	return n, nil
}
