package entities

import (
	"time"

	"gorm.io/datatypes"
)

// ProjectStatus tracks a project from onboarding through completion.
//
// The milestone engine only writes three of these transitions:
//   - PAYMENT_PLAN_SELECTED when a payment plan is (re)selected
//   - INSTALLATION_SCHEDULED when the first settled milestone schedules a visit
//   - COMPLETED when the final milestone settles
//
// Every other transition belongs to the onboarding/quoting flows.

type ProjectStatus string

const (
	ProjectStatusOnboarding            ProjectStatus = "ONBOARDING"
	ProjectStatusQuoteGenerated        ProjectStatus = "QUOTE_GENERATED"
	ProjectStatusQuoteSelected         ProjectStatus = "QUOTE_SELECTED"
	ProjectStatusContractAccepted      ProjectStatus = "CONTRACT_ACCEPTED"
	ProjectStatusPaymentPlanSelected   ProjectStatus = "PAYMENT_PLAN_SELECTED"
	ProjectStatusInstallationScheduled ProjectStatus = "INSTALLATION_SCHEDULED"
	ProjectStatusInProgress            ProjectStatus = "IN_PROGRESS"
	ProjectStatusCompleted             ProjectStatus = "COMPLETED"
)

// Project is a customer's smart-home installation project.
type Project struct {
	ID           string        `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID       string        `json:"user_id" gorm:"type:varchar(36);index;not null"`
	Name         string        `json:"name" gorm:"not null"`
	Address      string        `json:"address"`
	OwnerEmail   string        `json:"owner_email"`
	RoomCount    int           `json:"room_count"`
	BuildingType string        `json:"building_type"`
	Status       ProjectStatus `json:"status" gorm:"type:varchar(32);default:'ONBOARDING'"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// Onboarding captures the optional site survey answers collected during
// onboarding. All fields may be absent; the plan source treats them as hints.
type Onboarding struct {
	ID                  string                      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProjectID           string                      `json:"project_id" gorm:"type:varchar(36);uniqueIndex;not null"`
	ConstructionStage   *string                     `json:"construction_stage"`
	InspectionRequested *bool                       `json:"inspection_requested"`
	SelectedFeatures    datatypes.JSONSlice[string] `json:"selected_features"`
	StairStepCount      *int                        `json:"stair_step_count"`
	CreatedAt           time.Time                   `json:"created_at"`
	UpdatedAt           time.Time                   `json:"updated_at"`
}
