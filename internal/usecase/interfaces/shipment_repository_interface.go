package interfaces

import (
	"context"

	"smarthaus/internal/domain/entities"
)

//go:generate mockgen -source=shipment_repository_interface.go -destination=mocks/shipment_repository_interface.go -package=mock_interfaces

// IDeviceShipmentRepository reads the per-project device shipment ledger.
// Writes go through IMilestoneRepository.SettleWithShipment so the ledger
// merge stays in the settlement transaction.
type IDeviceShipmentRepository interface {
	GetByProjectID(ctx context.Context, projectID string) (entities.DeviceShipment, error)
}
