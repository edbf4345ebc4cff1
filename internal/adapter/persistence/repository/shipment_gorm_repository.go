package repository

import (
	"context"
	"errors"

	"smarthaus/internal/domain/entities"
	"smarthaus/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// DeviceShipmentGormRepository serves the read side of the device shipment
// ledger. The write side lives in the settlement transaction.

type DeviceShipmentGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IDeviceShipmentRepository = (*DeviceShipmentGormRepository)(nil)

func NewDeviceShipmentGormRepository(db *gorm.DB) *DeviceShipmentGormRepository {
	return &DeviceShipmentGormRepository{db: db}
}

func (r *DeviceShipmentGormRepository) GetByProjectID(ctx context.Context, projectID string) (entities.DeviceShipment, error) {
	var s entities.DeviceShipment
	err := r.db.WithContext(ctx).First(&s, "project_id = ?", projectID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.DeviceShipment{}, nil
	}
	if err != nil {
		return entities.DeviceShipment{}, err
	}
	return s, nil
}
