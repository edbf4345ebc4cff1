package entities

import (
	"errors"
	"time"

	"gorm.io/datatypes"
)

// MilestoneStatus is the payment state of a milestone.
//
// The machine has a single transition, PENDING -> COMPLETED, driven by a
// verified gateway payment. COMPLETED is terminal; there is no cancel or
// reopen path.

type MilestoneStatus string

const (
	MilestoneStatusPending   MilestoneStatus = "PENDING"
	MilestoneStatusCompleted MilestoneStatus = "COMPLETED"
)

var (
	// ErrAlreadySettled is returned by Settle when the milestone was settled
	// by a different payment reference.
	ErrAlreadySettled = errors.New("milestone already settled")
	// ErrSettledDuplicate is returned by Settle when the same reference is
	// replayed against an already-settled milestone. Callers treat it as a
	// no-op, not a failure.
	ErrSettledDuplicate = errors.New("milestone already settled by this reference")
)

// MilestoneItemRef ties a milestone to the quote line items it funds.
// References, not owned copies.
type MilestoneItemRef struct {
	QuoteItemID string `json:"quote_item_id"`
	Quantity    int    `json:"quantity"`
}

// Milestone is one scheduled partial payment covering a percentage of the
// selected quote's total.
//
// Invariants for a project's milestone set:
//   - Index values are the contiguous sequence 1..3, ascending
//   - sum(Percentage) == 100
//   - sum(Amount) == quote.Total exactly (whole currency units)
//
// The set is created in a batch and replaced wholesale on plan reselection,
// never partially edited.
type Milestone struct {
	ID               string                                 `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProjectID        string                                 `json:"project_id" gorm:"type:varchar(36);index;not null"`
	Index            int                                    `json:"index" gorm:"column:idx;not null"`
	Title            string                                 `json:"title" gorm:"not null"`
	Description      string                                 `json:"description" gorm:"type:text"`
	Percentage       int                                    `json:"percentage" gorm:"not null"`
	Amount           int64                                  `json:"amount" gorm:"not null"`
	Items            datatypes.JSONType[[]MilestoneItemRef] `json:"items"`
	Status           MilestoneStatus                        `json:"status" gorm:"type:varchar(16);default:'PENDING'"`
	PaymentReference string                                 `json:"payment_reference,omitempty" gorm:"index"`
	CompletedAt      *time.Time                             `json:"completed_at,omitempty"`
	CreatedAt        time.Time                              `json:"created_at"`
	UpdatedAt        time.Time                              `json:"updated_at"`
}

// Settle applies the PaymentVerified event to the milestone.
//
// Idempotency key is milestone + reference: replaying the settling reference
// yields ErrSettledDuplicate (no-op), any other reference against a settled
// milestone yields ErrAlreadySettled.
func (m *Milestone) Settle(reference string, now time.Time) error {
	if m.Status == MilestoneStatusCompleted {
		if m.PaymentReference == reference {
			return ErrSettledDuplicate
		}
		return ErrAlreadySettled
	}
	m.Status = MilestoneStatusCompleted
	m.PaymentReference = reference
	m.CompletedAt = &now
	return nil
}

// SettlementEffectKind names one post-settlement side effect.

type SettlementEffectKind string

const (
	EffectShipmentMerge SettlementEffectKind = "SHIPMENT_MERGE"
	EffectTripSchedule  SettlementEffectKind = "TRIP_SCHEDULE"
	EffectAdminNotify   SettlementEffectKind = "ADMIN_NOTIFY"
	EffectCustomerEmail SettlementEffectKind = "CUSTOMER_EMAIL"
)

// SettlementEffect records the outcome of one side effect of a settlement.
// One row per effect lets a reconciliation pass (or an operator) spot and
// repair partial completions without re-running the settlement.
type SettlementEffect struct {
	ID          string               `json:"id" gorm:"primaryKey;type:varchar(36)"`
	MilestoneID string               `json:"milestone_id" gorm:"type:varchar(36);index;not null"`
	Effect      SettlementEffectKind `json:"effect" gorm:"type:varchar(32);not null"`
	OK          bool                 `json:"ok"`
	Error       string               `json:"error,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}
