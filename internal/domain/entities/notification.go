package entities

import "time"

// NotificationAudience scopes who a notification is shown to.

type NotificationAudience string

const (
	NotificationAudienceAdmin NotificationAudience = "ADMIN"
)

// Notification is an operational in-app notification. The settlement
// orchestrator raises one per settled milestone.
type Notification struct {
	ID        string               `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Audience  NotificationAudience `json:"audience" gorm:"type:varchar(16);default:'ADMIN'"`
	ProjectID string               `json:"project_id" gorm:"type:varchar(36);index"`
	Title     string               `json:"title" gorm:"not null"`
	Body      string               `json:"body" gorm:"type:text"`
	ReadAt    *time.Time           `json:"read_at,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
}
