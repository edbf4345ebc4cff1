package repository

import (
	"context"
	"errors"
	"time"

	"smarthaus/internal/domain/entities"
	"smarthaus/internal/usecase/interfaces"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MilestoneGormRepository owns the milestone sequence, the payment plan
// record and the settlement transaction.
//
// Both mutations take a FOR UPDATE lock on the project row first, so plan
// regeneration and in-flight settlement for the same project are serialized
// instead of racing.

type MilestoneGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IMilestoneRepository = (*MilestoneGormRepository)(nil)

func NewMilestoneGormRepository(db *gorm.DB) *MilestoneGormRepository {
	return &MilestoneGormRepository{db: db}
}

func (r *MilestoneGormRepository) ReplacePlan(ctx context.Context, projectID string, planType entities.PlanType, milestones []entities.Milestone) ([]entities.Milestone, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var project entities.Project
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&project, "id = ?", projectID).Error; err != nil {
			return err
		}

		var completed int64
		if err := tx.Model(&entities.Milestone{}).
			Where("project_id = ? AND status = ?", projectID, entities.MilestoneStatusCompleted).
			Count(&completed).Error; err != nil {
			return err
		}
		if completed > 0 {
			return interfaces.ErrPlanLocked
		}

		plan := entities.PaymentPlan{
			ID:        uuid.NewString(),
			ProjectID: projectID,
			Type:      planType,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "project_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"type", "updated_at"}),
		}).Create(&plan).Error; err != nil {
			return err
		}

		// Destructive by design: the previous set is replaced wholesale.
		if err := tx.Where("project_id = ?", projectID).
			Delete(&entities.Milestone{}).Error; err != nil {
			return err
		}
		return tx.Create(&milestones).Error
	})
	if err != nil {
		return nil, err
	}
	return milestones, nil
}

func (r *MilestoneGormRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.Milestone, error) {
	var ms []entities.Milestone
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("idx ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	return ms, nil
}

func (r *MilestoneGormRepository) GetByID(ctx context.Context, id string) (entities.Milestone, error) {
	var m entities.Milestone
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Milestone{}, nil
	}
	if err != nil {
		return entities.Milestone{}, err
	}
	return m, nil
}

func (r *MilestoneGormRepository) SettleWithShipment(ctx context.Context, milestoneID, reference string, items []entities.ShipmentItem, now time.Time) (entities.Milestone, error) {
	var settled entities.Milestone
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m entities.Milestone
		if err := tx.First(&m, "id = ?", milestoneID).Error; err != nil {
			return err
		}

		var project entities.Project
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&project, "id = ?", m.ProjectID).Error; err != nil {
			return err
		}

		// Re-read under the lock; a concurrent settlement may have won.
		if err := tx.First(&m, "id = ?", milestoneID).Error; err != nil {
			return err
		}
		settled = m
		if err := m.Settle(reference, now); err != nil {
			return err
		}
		if err := tx.Model(&entities.Milestone{}).Where("id = ?", m.ID).Updates(map[string]any{
			"status":            m.Status,
			"payment_reference": m.PaymentReference,
			"completed_at":      m.CompletedAt,
		}).Error; err != nil {
			return err
		}

		if err := appendShipmentItems(tx, m.ProjectID, items); err != nil {
			return err
		}

		var pending int64
		if err := tx.Model(&entities.Milestone{}).
			Where("project_id = ? AND status = ?", m.ProjectID, entities.MilestoneStatusPending).
			Count(&pending).Error; err != nil {
			return err
		}
		status := entities.ProjectStatusInstallationScheduled
		if pending == 0 {
			status = entities.ProjectStatusCompleted
		}
		if err := tx.Model(&entities.Project{}).
			Where("id = ?", m.ProjectID).
			Update("status", status).Error; err != nil {
			return err
		}

		settled = m
		return nil
	})
	if err != nil {
		return settled, err
	}
	return settled, nil
}

// appendShipmentItems merges items into the project's device shipment ledger,
// creating the record on first use. Items are appended, never replaced.
func appendShipmentItems(tx *gorm.DB, projectID string, items []entities.ShipmentItem) error {
	var shipment entities.DeviceShipment
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&shipment, "project_id = ?", projectID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		shipment = entities.DeviceShipment{
			ID:        uuid.NewString(),
			ProjectID: projectID,
			Items:     datatypes.NewJSONType(items),
			Status:    entities.ShipmentStatusPreparing,
		}
		return tx.Create(&shipment).Error
	}
	if err != nil {
		return err
	}

	merged := append(shipment.Items.Data(), items...)
	return tx.Model(&entities.DeviceShipment{}).
		Where("id = ?", shipment.ID).
		Update("items", datatypes.NewJSONType(merged)).Error
}

func (r *MilestoneGormRepository) RecordEffect(ctx context.Context, effect entities.SettlementEffect) error {
	if effect.ID == "" {
		effect.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(&effect).Error
}
