package interfaces

import (
	"context"

	"smarthaus/internal/domain/entities"
)

//go:generate mockgen -source=notification_repository_interface.go -destination=mocks/notification_repository_interface.go -package=mock_interfaces

// INotificationRepository persists admin-facing operational notifications.
type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
}
