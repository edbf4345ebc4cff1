package entities

import (
	"time"

	"gorm.io/datatypes"
)

// ShipmentStatus tracks the fulfilment state of a project's device batch.

type ShipmentStatus string

const (
	ShipmentStatusPreparing ShipmentStatus = "PREPARING"
	ShipmentStatusInTransit ShipmentStatus = "IN_TRANSIT"
	ShipmentStatusDelivered ShipmentStatus = "DELIVERED"
)

// ShipmentItem is one released device line, denormalized with name and
// category so the fulfilment view needs no quote join.
type ShipmentItem struct {
	QuoteItemID string         `json:"quote_item_id"`
	Quantity    int            `json:"quantity"`
	Name        string         `json:"name"`
	Category    DeviceCategory `json:"category"`
}

// DeviceShipment is the project-scoped running ledger of device line items
// released for fulfilment as their funding milestone is paid.
//
// Created lazily on the first settlement; items are only ever appended.
type DeviceShipment struct {
	ID        string                             `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProjectID string                             `json:"project_id" gorm:"type:varchar(36);uniqueIndex;not null"`
	Items     datatypes.JSONType[[]ShipmentItem] `json:"items"`
	Status    ShipmentStatus                     `json:"status" gorm:"type:varchar(16);default:'PREPARING'"`
	Location  string                             `json:"location"`
	CreatedAt time.Time                          `json:"created_at"`
	UpdatedAt time.Time                          `json:"updated_at"`
}
