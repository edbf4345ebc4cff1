package entities

import "time"

// PlanType is the milestone split shape chosen by the customer.
//
//   - MILESTONE_3: flexible three-way split (40/40/20 when planned by fallback)
//   - EIGHTY_TEN_TEN: fixed 80/10/10 split

type PlanType string

const (
	PlanTypeMilestone3   PlanType = "MILESTONE_3"
	PlanTypeEightyTenTen PlanType = "EIGHTY_TEN_TEN"
)

// Valid reports whether t is one of the supported plan types.
func (t PlanType) Valid() bool {
	switch t {
	case PlanTypeMilestone3, PlanTypeEightyTenTen:
		return true
	}
	return false
}

// PaymentPlan records the chosen split for a project. One per project,
// upserted on every selection event.
type PaymentPlan struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProjectID string    `json:"project_id" gorm:"type:varchar(36);uniqueIndex;not null"`
	Type      PlanType  `json:"type" gorm:"type:varchar(32);not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
