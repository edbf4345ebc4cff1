package interfaces

import (
	"context"

	"smarthaus/internal/domain/entities"
)

//go:generate mockgen -source=trip_repository_interface.go -destination=mocks/trip_repository_interface.go -package=mock_interfaces

// ITripRepository persists scheduled site visits and their task checklists.
type ITripRepository interface {
	CreateWithTasks(ctx context.Context, trip entities.Trip) (entities.Trip, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Trip, error)
}
