package interfaces

import (
	"context"

	"smarthaus/internal/domain/entities"
)

//go:generate mockgen -source=project_repository_interface.go -destination=mocks/project_repository_interface.go -package=mock_interfaces

// IProjectRepository gives the milestone engine read access to project
// context plus the few status transitions it owns.
type IProjectRepository interface {
	GetByID(ctx context.Context, id string) (entities.Project, error)
	UpdateStatus(ctx context.Context, id string, status entities.ProjectStatus) (entities.Project, error)
	GetOnboardingByProjectID(ctx context.Context, projectID string) (*entities.Onboarding, error)
}
