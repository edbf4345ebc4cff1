package planning

import (
	"errors"
	"reflect"
	"testing"

	"smarthaus/internal/domain/entities"
)

func quoteItem(id, name string, category entities.DeviceCategory) entities.QuoteItem {
	return entities.QuoteItem{ID: id, Name: name, Category: category, Quantity: 1}
}

func TestFallbackPlan(t *testing.T) {
	t.Run("should use the eighty ten ten template", func(t *testing.T) {
		plan := FallbackPlan(entities.PlanTypeEightyTenTen, nil)
		if plan.Source != SourceFallback {
			t.Fatalf("source = %s, want fallback", plan.Source)
		}
		if len(plan.Milestones) != PlanMilestoneCount {
			t.Fatalf("milestone count = %d, want %d", len(plan.Milestones), PlanMilestoneCount)
		}
		wantPcts := []float64{80, 10, 10}
		for i, m := range plan.Milestones {
			if m.Percentage != wantPcts[i] {
				t.Fatalf("milestone %d percentage = %v, want %v", i+1, m.Percentage, wantPcts[i])
			}
			if m.Title == "" {
				t.Fatalf("milestone %d has no title", i+1)
			}
		}
	})

	t.Run("should use the forty forty twenty template", func(t *testing.T) {
		plan := FallbackPlan(entities.PlanTypeMilestone3, nil)
		wantPcts := []float64{40, 40, 20}
		for i, m := range plan.Milestones {
			if m.Percentage != wantPcts[i] {
				t.Fatalf("milestone %d percentage = %v, want %v", i+1, m.Percentage, wantPcts[i])
			}
		}
	})

	t.Run("should put infrastructure items in the first milestone", func(t *testing.T) {
		items := []entities.QuoteItem{
			quoteItem("q-lamp", "Smart lamp", entities.DeviceCategoryLighting),
			quoteItem("q-speaker", "Ceiling speaker", entities.DeviceCategoryAudio),
			quoteItem("q-gate", "Gate motor", entities.DeviceCategoryGate),
			quoteItem("q-cam", "Dome camera", entities.DeviceCategorySurveillance),
			quoteItem("q-thermo", "Thermostat", entities.DeviceCategoryClimate),
			quoteItem("q-lock", "Door lock", entities.DeviceCategoryAccess),
		}
		plan := FallbackPlan(entities.PlanTypeMilestone3, items)

		first := plan.Milestones[0].Items
		if len(first) != 2 {
			t.Fatalf("first milestone has %d items, want 2", len(first))
		}
		// bucket 0 sorted by name: Dome camera, Gate motor
		if first[0].QuoteItemID != "q-cam" || first[1].QuoteItemID != "q-gate" {
			t.Fatalf("first milestone items = %v", first)
		}
		last := plan.Milestones[2].Items
		if len(last) != 2 {
			t.Fatalf("last milestone has %d items, want 2", len(last))
		}
		if last[1].QuoteItemID != "q-speaker" {
			t.Fatalf("last milestone items = %v", last)
		}
	})

	t.Run("should be deterministic for equal input", func(t *testing.T) {
		items := []entities.QuoteItem{
			quoteItem("a", "Alpha", entities.DeviceCategoryLighting),
			quoteItem("b", "Beta", entities.DeviceCategoryGate),
			quoteItem("c", "Gamma", entities.DeviceCategoryAudio),
			quoteItem("d", "Delta", entities.DeviceCategoryClimate),
		}
		p1 := FallbackPlan(entities.PlanTypeEightyTenTen, items)
		p2 := FallbackPlan(entities.PlanTypeEightyTenTen, items)
		if !reflect.DeepEqual(p1, p2) {
			t.Fatalf("plans differ for identical input")
		}
	})

	t.Run("should assign all items exactly once", func(t *testing.T) {
		items := []entities.QuoteItem{
			quoteItem("1", "One", entities.DeviceCategoryGate),
			quoteItem("2", "Two", entities.DeviceCategoryLighting),
			quoteItem("3", "Three", entities.DeviceCategoryAudio),
			quoteItem("4", "Four", entities.DeviceCategorySurveillance),
			quoteItem("5", "Five", entities.DeviceCategoryAccess),
			quoteItem("6", "Six", entities.DeviceCategoryOther),
			quoteItem("7", "Seven", entities.DeviceCategoryClimate),
		}
		plan := FallbackPlan(entities.PlanTypeMilestone3, items)
		seen := map[string]int{}
		for _, m := range plan.Milestones {
			for _, ref := range m.Items {
				seen[ref.QuoteItemID]++
			}
		}
		if len(seen) != len(items) {
			t.Fatalf("assigned %d distinct items, want %d", len(seen), len(items))
		}
		for id, n := range seen {
			if n != 1 {
				t.Fatalf("item %s assigned %d times", id, n)
			}
		}
	})

	t.Run("should produce three milestones for an empty quote", func(t *testing.T) {
		plan := FallbackPlan(entities.PlanTypeEightyTenTen, nil)
		if len(plan.Milestones) != PlanMilestoneCount {
			t.Fatalf("milestone count = %d, want %d", len(plan.Milestones), PlanMilestoneCount)
		}
		for i, m := range plan.Milestones {
			if len(m.Items) != 0 {
				t.Fatalf("milestone %d has items for an empty quote", i+1)
			}
		}
	})

	t.Run("should fall back to the default template for unknown plan type", func(t *testing.T) {
		plan := FallbackPlan(entities.PlanType("SOMETHING_ELSE"), nil)
		if plan.Milestones[0].Percentage != 40 {
			t.Fatalf("unknown plan type percentage = %v, want 40", plan.Milestones[0].Percentage)
		}
	})
}

func TestValidateExternal(t *testing.T) {
	quoteItems := []entities.QuoteItem{
		quoteItem("q1", "One", entities.DeviceCategoryGate),
		quoteItem("q2", "Two", entities.DeviceCategoryLighting),
	}
	valid := func() []DraftMilestone {
		return []DraftMilestone{
			{Title: "A", Percentage: 40, Items: []entities.MilestoneItemRef{{QuoteItemID: "q1", Quantity: 1}}},
			{Title: "B", Percentage: 40, Items: []entities.MilestoneItemRef{{QuoteItemID: "q2", Quantity: 1}}},
			{Title: "C", Percentage: 20},
		}
	}

	t.Run("should accept a well formed draft", func(t *testing.T) {
		if err := ValidateExternal(valid(), quoteItems); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("should reject wrong milestone count", func(t *testing.T) {
		err := ValidateExternal(valid()[:2], quoteItems)
		if !errors.Is(err, ErrWrongMilestoneCount) {
			t.Fatalf("expected ErrWrongMilestoneCount, got %v", err)
		}
	})

	t.Run("should reject a missing title", func(t *testing.T) {
		draft := valid()
		draft[1].Title = ""
		if err := ValidateExternal(draft, quoteItems); !errors.Is(err, ErrMissingTitle) {
			t.Fatalf("expected ErrMissingTitle, got %v", err)
		}
	})

	t.Run("should reject percentages that do not sum to 100", func(t *testing.T) {
		draft := valid()
		draft[0].Percentage = 70
		draft[1].Percentage = 60
		draft[2].Percentage = 10
		if err := ValidateExternal(draft, quoteItems); !errors.Is(err, ErrBadPercentageSum) {
			t.Fatalf("expected ErrBadPercentageSum, got %v", err)
		}
	})

	t.Run("should accept fractional percentages that round to 100", func(t *testing.T) {
		draft := valid()
		draft[0].Percentage = 33.5
		draft[1].Percentage = 33.3
		draft[2].Percentage = 33.2
		if err := ValidateExternal(draft, quoteItems); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("should reject an unknown quote item reference", func(t *testing.T) {
		draft := valid()
		draft[0].Items = append(draft[0].Items, entities.MilestoneItemRef{QuoteItemID: "q-missing", Quantity: 1})
		if err := ValidateExternal(draft, quoteItems); !errors.Is(err, ErrUnknownQuoteItem) {
			t.Fatalf("expected ErrUnknownQuoteItem, got %v", err)
		}
	})
}
