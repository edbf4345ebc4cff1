package repository

import (
	"context"
	"errors"

	"smarthaus/internal/domain/entities"
	"smarthaus/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// ProjectGormRepository persists Project context in MySQL.
//
// Convention (shared by every repository here): lookups that miss return the
// zero entity with a nil error; use cases detect absence via ID == "".

type ProjectGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IProjectRepository = (*ProjectGormRepository)(nil)

func NewProjectGormRepository(db *gorm.DB) *ProjectGormRepository {
	return &ProjectGormRepository{db: db}
}

func (r *ProjectGormRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	var p entities.Project
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Project{}, nil
	}
	if err != nil {
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectGormRepository) UpdateStatus(ctx context.Context, id string, status entities.ProjectStatus) (entities.Project, error) {
	res := r.db.WithContext(ctx).Model(&entities.Project{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return entities.Project{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Project{}, nil
	}
	return r.GetByID(ctx, id)
}

func (r *ProjectGormRepository) GetOnboardingByProjectID(ctx context.Context, projectID string) (*entities.Onboarding, error) {
	var ob entities.Onboarding
	err := r.db.WithContext(ctx).First(&ob, "project_id = ?", projectID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ob, nil
}
