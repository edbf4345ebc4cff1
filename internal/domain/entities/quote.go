package entities

import "time"

// DeviceCategory classifies a quote line item. The fallback planner uses the
// category to decide which installation phase funds which devices.

type DeviceCategory string

const (
	DeviceCategoryGate         DeviceCategory = "GATE"
	DeviceCategoryStaircase    DeviceCategory = "STAIRCASE"
	DeviceCategorySurveillance DeviceCategory = "SURVEILLANCE"
	DeviceCategoryLighting     DeviceCategory = "LIGHTING"
	DeviceCategoryClimate      DeviceCategory = "CLIMATE"
	DeviceCategoryAccess       DeviceCategory = "ACCESS"
	DeviceCategoryAudio        DeviceCategory = "AUDIO"
	DeviceCategoryOther        DeviceCategory = "OTHER"
)

// Quote is a priced device/service proposal for a project.
//
// Monetary representation:
//   - Total is the authoritative amount in whole currency units (int64).
//     All milestone amounts are derived from it and must sum back to it.
//
// The milestone engine treats a selected quote as immutable input.
type Quote struct {
	ID         string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProjectID  string      `json:"project_id" gorm:"type:varchar(36);index;not null"`
	IsSelected bool        `json:"is_selected" gorm:"index"`
	Total      int64       `json:"total" gorm:"not null"`
	Items      []QuoteItem `json:"items" gorm:"foreignKey:QuoteID"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// QuoteItem is one device/service line on a quote. Read-only input to planning.
type QuoteItem struct {
	ID         string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	QuoteID    string         `json:"quote_id" gorm:"type:varchar(36);index;not null"`
	Name       string         `json:"name" gorm:"not null"`
	Category   DeviceCategory `json:"category" gorm:"type:varchar(32);default:'OTHER'"`
	Quantity   int            `json:"quantity" gorm:"not null"`
	UnitPrice  int64          `json:"unit_price" gorm:"not null"`
	TotalPrice int64          `json:"total_price" gorm:"not null"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}
