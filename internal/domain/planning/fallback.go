package planning

import (
	"sort"

	"smarthaus/internal/domain/entities"
)

// Deterministic fallback plan of record, used whenever the external plan
// source is absent, errors out, or returns an invalid shape.

var fallbackTemplates = map[entities.PlanType]struct {
	percentages [PlanMilestoneCount]float64
	titles      [PlanMilestoneCount]string
}{
	entities.PlanTypeEightyTenTen: {
		percentages: [PlanMilestoneCount]float64{80, 10, 10},
		titles: [PlanMilestoneCount]string{
			"Initial mobilisation & equipment",
			"Installation progress payment",
			"Final testing & handover",
		},
	},
	entities.PlanTypeMilestone3: {
		percentages: [PlanMilestoneCount]float64{40, 40, 20},
		titles: [PlanMilestoneCount]string{
			"Mobilisation & infrastructure",
			"Main installation & configuration",
			"Finishing touches & handover",
		},
	},
}

// categoryBucket ranks device categories into installation phases:
// infrastructure first, then comfort, then everything else.
func categoryBucket(c entities.DeviceCategory) int {
	switch c {
	case entities.DeviceCategoryGate, entities.DeviceCategoryStaircase, entities.DeviceCategorySurveillance:
		return 0
	case entities.DeviceCategoryLighting, entities.DeviceCategoryClimate, entities.DeviceCategoryAccess:
		return 1
	default:
		return 2
	}
}

// FallbackPlan builds the deterministic 3-milestone draft for the given plan
// type. Pure function of the quote items and the plan type: items are
// stable-sorted by (bucket, name) and split into 3 contiguous chunks of size
// ceil(N/3), the last chunk taking the remainder.
func FallbackPlan(planType entities.PlanType, items []entities.QuoteItem) Plan {
	tpl, ok := fallbackTemplates[planType]
	if !ok {
		tpl = fallbackTemplates[entities.PlanTypeMilestone3]
	}

	sorted := make([]entities.QuoteItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		bi, bj := categoryBucket(sorted[i].Category), categoryBucket(sorted[j].Category)
		if bi != bj {
			return bi < bj
		}
		return sorted[i].Name < sorted[j].Name
	})

	chunkSize := (len(sorted) + PlanMilestoneCount - 1) / PlanMilestoneCount
	if chunkSize < 1 {
		chunkSize = 1
	}

	milestones := make([]DraftMilestone, 0, PlanMilestoneCount)
	for i := 0; i < PlanMilestoneCount; i++ {
		start := i * chunkSize
		if start > len(sorted) {
			start = len(sorted)
		}
		end := start + chunkSize
		if i == PlanMilestoneCount-1 || end > len(sorted) {
			end = len(sorted)
		}

		refs := make([]entities.MilestoneItemRef, 0, end-start)
		for _, it := range sorted[start:end] {
			refs = append(refs, entities.MilestoneItemRef{QuoteItemID: it.ID, Quantity: it.Quantity})
		}

		milestones = append(milestones, DraftMilestone{
			Title:      tpl.titles[i],
			Percentage: tpl.percentages[i],
			Items:      refs,
		})
	}

	return Plan{Source: SourceFallback, Milestones: milestones}
}
