package repository

import (
	"context"

	"smarthaus/internal/domain/entities"
	"smarthaus/internal/usecase/interfaces"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TripGormRepository persists site visits and their seeded task checklists.

type TripGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ITripRepository = (*TripGormRepository)(nil)

func NewTripGormRepository(db *gorm.DB) *TripGormRepository {
	return &TripGormRepository{db: db}
}

func (r *TripGormRepository) CreateWithTasks(ctx context.Context, trip entities.Trip) (entities.Trip, error) {
	if trip.ID == "" {
		trip.ID = uuid.NewString()
	}
	for i := range trip.Tasks {
		if trip.Tasks[i].ID == "" {
			trip.Tasks[i].ID = uuid.NewString()
		}
		trip.Tasks[i].TripID = trip.ID
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tasks := trip.Tasks
		trip.Tasks = nil
		if err := tx.Create(&trip).Error; err != nil {
			return err
		}
		if len(tasks) > 0 {
			if err := tx.Create(&tasks).Error; err != nil {
				return err
			}
		}
		trip.Tasks = tasks
		return nil
	})
	if err != nil {
		return entities.Trip{}, err
	}
	return trip, nil
}

func (r *TripGormRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.Trip, error) {
	var trips []entities.Trip
	err := r.db.WithContext(ctx).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB { return db.Order("idx ASC") }).
		Where("project_id = ?", projectID).
		Order("scheduled_for ASC").
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}
