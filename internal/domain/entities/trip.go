package entities

import "time"

// TripStatus is the lifecycle of a scheduled site visit.

type TripStatus string

const (
	TripStatusScheduled  TripStatus = "SCHEDULED"
	TripStatusInProgress TripStatus = "IN_PROGRESS"
	TripStatusCompleted  TripStatus = "COMPLETED"
	TripStatusCancelled  TripStatus = "CANCELLED"
)

// Trip is a scheduled site visit, optionally linked to the milestone whose
// settlement triggered it.
type Trip struct {
	ID           string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProjectID    string     `json:"project_id" gorm:"type:varchar(36);index;not null"`
	MilestoneID  *string    `json:"milestone_id,omitempty" gorm:"type:varchar(36);index"`
	Status       TripStatus `json:"status" gorm:"type:varchar(16);default:'SCHEDULED'"`
	ScheduledFor time.Time  `json:"scheduled_for"`
	CheckInAt    *time.Time `json:"check_in_at,omitempty"`
	CheckOutAt   *time.Time `json:"check_out_at,omitempty"`
	Notes        string     `json:"notes" gorm:"type:text"`
	Tasks        []TripTask `json:"tasks" gorm:"foreignKey:TripID"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TripTask is one ordered checklist item for a visit.
type TripTask struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	TripID    string    `json:"trip_id" gorm:"type:varchar(36);index;not null"`
	Index     int       `json:"index" gorm:"column:idx;not null"`
	Title     string    `json:"title" gorm:"not null"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
