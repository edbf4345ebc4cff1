package planning

import (
	"errors"
	"testing"

	"smarthaus/internal/domain/entities"
)

func planWithPercentages(pcts ...float64) Plan {
	ms := make([]DraftMilestone, 0, len(pcts))
	for i, p := range pcts {
		ms = append(ms, DraftMilestone{
			Title:      "Milestone",
			Percentage: p,
			Items:      []entities.MilestoneItemRef{{QuoteItemID: "item", Quantity: i + 1}},
		})
	}
	return Plan{Source: SourceFallback, Milestones: ms}
}

func TestAllocate(t *testing.T) {
	t.Run("should split 500000 eighty ten ten exactly", func(t *testing.T) {
		out, err := Allocate(planWithPercentages(80, 10, 10), 500000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []int64{400000, 50000, 50000}
		for i, a := range out {
			if a.Amount != want[i] {
				t.Fatalf("milestone %d amount = %d, want %d", a.Index, a.Amount, want[i])
			}
		}
	})

	t.Run("should absorb rounding drift in the last milestone", func(t *testing.T) {
		out, err := Allocate(planWithPercentages(40, 40, 20), 333)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []int64{133, 133, 67}
		var sum int64
		for i, a := range out {
			if a.Amount != want[i] {
				t.Fatalf("milestone %d amount = %d, want %d", a.Index, a.Amount, want[i])
			}
			sum += a.Amount
		}
		if sum != 333 {
			t.Fatalf("amounts sum to %d, want 333", sum)
		}
	})

	t.Run("should always sum amounts to the total", func(t *testing.T) {
		cases := []struct {
			name  string
			pcts  []float64
			total int64
		}{
			{"even split", []float64{33.3, 33.3, 33.4}, 1000},
			{"tiny total", []float64{80, 10, 10}, 1},
			{"prime total", []float64{40, 40, 20}, 9973},
			{"large total", []float64{80, 10, 10}, 12345678901},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				out, err := Allocate(planWithPercentages(tc.pcts...), tc.total)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				var sum int64
				for _, a := range out {
					sum += a.Amount
				}
				if sum != tc.total {
					t.Fatalf("amounts sum to %d, want %d", sum, tc.total)
				}
			})
		}
	})

	t.Run("should index milestones from 1", func(t *testing.T) {
		out, err := Allocate(planWithPercentages(40, 40, 20), 100)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i, a := range out {
			if a.Index != i+1 {
				t.Fatalf("milestone position %d has index %d", i, a.Index)
			}
		}
	})

	t.Run("should clamp out-of-range percentages", func(t *testing.T) {
		out, err := Allocate(planWithPercentages(150, -20, 10), 1000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out[0].Percentage != 100 {
			t.Fatalf("first percentage = %d, want 100", out[0].Percentage)
		}
		if out[1].Percentage != 0 {
			t.Fatalf("second percentage = %d, want 0", out[1].Percentage)
		}
	})

	t.Run("should reject non positive total", func(t *testing.T) {
		if _, err := Allocate(planWithPercentages(80, 10, 10), 0); !errors.Is(err, ErrInvalidTotal) {
			t.Fatalf("expected ErrInvalidTotal, got %v", err)
		}
		if _, err := Allocate(planWithPercentages(80, 10, 10), -5); !errors.Is(err, ErrInvalidTotal) {
			t.Fatalf("expected ErrInvalidTotal, got %v", err)
		}
	})

	t.Run("should reject percentages that reconcile below zero", func(t *testing.T) {
		if _, err := Allocate(planWithPercentages(70, 60, 10), 1000); !errors.Is(err, ErrNegativeAmount) {
			t.Fatalf("expected ErrNegativeAmount, got %v", err)
		}
	})

	t.Run("should reject wrong milestone count", func(t *testing.T) {
		if _, err := Allocate(planWithPercentages(50, 50), 1000); !errors.Is(err, ErrWrongMilestoneCount) {
			t.Fatalf("expected ErrWrongMilestoneCount, got %v", err)
		}
	})
}
