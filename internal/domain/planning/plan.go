package planning

import (
	"errors"
	"fmt"

	"smarthaus/internal/domain/entities"
)

// PlanMilestoneCount is fixed: every payment plan splits into exactly three
// milestones regardless of how the draft was produced.
const PlanMilestoneCount = 3

var (
	ErrWrongMilestoneCount = errors.New("plan must contain exactly 3 milestones")
	ErrUnknownQuoteItem    = errors.New("plan references a quote item not on the quote")
	ErrMissingTitle        = errors.New("plan milestone missing title")
	ErrBadPercentageSum    = errors.New("plan percentages must sum to 100")
)

// DraftMilestone is one milestone proposal before allocation. Percentages
// arrive as floats because the external plan source is not trusted to send
// integers that sum to 100.
type DraftMilestone struct {
	Title       string
	Description string
	Percentage  float64
	Items       []entities.MilestoneItemRef
}

// Source records where a plan draft came from. Allocation downstream is
// oblivious to provenance; it only matters for logging.

type Source string

const (
	SourceExternal Source = "external"
	SourceFallback Source = "fallback"
)

// Plan is a validated draft together with its provenance.
type Plan struct {
	Source     Source
	Milestones []DraftMilestone
}

// ValidateExternal checks a plan-source draft against the wire contract:
// exactly 3 milestones, every milestone titled, percentages summing to 100
// after clamping, and every item reference pointing at a line item of the
// input quote. Partial acceptance is never allowed; any violation discards
// the whole draft.
func ValidateExternal(milestones []DraftMilestone, quoteItems []entities.QuoteItem) error {
	if len(milestones) != PlanMilestoneCount {
		return fmt.Errorf("%w: got %d", ErrWrongMilestoneCount, len(milestones))
	}
	known := make(map[string]struct{}, len(quoteItems))
	for _, it := range quoteItems {
		known[it.ID] = struct{}{}
	}
	pctSum := 0
	for i, m := range milestones {
		if m.Title == "" {
			return fmt.Errorf("%w: milestone %d", ErrMissingTitle, i+1)
		}
		pctSum += clampPercentage(m.Percentage)
		for _, ref := range m.Items {
			if _, ok := known[ref.QuoteItemID]; !ok {
				return fmt.Errorf("%w: %s", ErrUnknownQuoteItem, ref.QuoteItemID)
			}
		}
	}
	if pctSum != 100 {
		return fmt.Errorf("%w: got %d", ErrBadPercentageSum, pctSum)
	}
	return nil
}
