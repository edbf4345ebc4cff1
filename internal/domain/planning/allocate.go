package planning

import (
	"errors"
	"math"

	"smarthaus/internal/domain/entities"
)

var (
	ErrInvalidTotal   = errors.New("quote total must be positive")
	ErrNegativeAmount = errors.New("reconciled milestone amount is negative")
)

// Allocated is a milestone with its final percentage and reconciled amount,
// ready to persist.
type Allocated struct {
	Index       int
	Title       string
	Description string
	Percentage  int
	Amount      int64
	Items       []entities.MilestoneItemRef
}

// Allocate converts a validated plan's percentages into exact currency
// amounts that sum to total.
//
// Percentages are clamped to the integer range [0,100] by rounding. Amounts
// for all but the last milestone are round(total*pct/100); the last amount is
// recomputed as total minus the sum of the previous ones, so rounding drift
// is absorbed there and the stored sum equals total exactly. All three
// amounts are computed up front, before any write. A plan whose percentages
// overshoot 100 would reconcile the last amount below zero; that is rejected
// here so no negative charge can ever reach the gateway.
func Allocate(plan Plan, total int64) ([]Allocated, error) {
	if total <= 0 {
		return nil, ErrInvalidTotal
	}
	if len(plan.Milestones) != PlanMilestoneCount {
		return nil, ErrWrongMilestoneCount
	}

	out := make([]Allocated, 0, PlanMilestoneCount)
	var allocated int64
	for i, m := range plan.Milestones {
		pct := clampPercentage(m.Percentage)
		var amount int64
		if i == PlanMilestoneCount-1 {
			amount = total - allocated
			if amount < 0 {
				return nil, ErrNegativeAmount
			}
		} else {
			amount = int64(math.Round(float64(total) * float64(pct) / 100))
			allocated += amount
		}
		out = append(out, Allocated{
			Index:       i + 1,
			Title:       m.Title,
			Description: m.Description,
			Percentage:  pct,
			Amount:      amount,
			Items:       m.Items,
		})
	}
	return out, nil
}

func clampPercentage(p float64) int {
	n := int(math.Round(p))
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
