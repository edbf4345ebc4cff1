package response

import (
	"time"

	"smarthaus/internal/domain/entities"
)

// MilestoneResponse is the per-milestone read model consumed by the customer
// dashboard to gate the "pay next milestone" action.
type MilestoneResponse struct {
	ID          string                      `json:"id"`
	ProjectID   string                      `json:"project_id"`
	Index       int                         `json:"index"`
	Title       string                      `json:"title"`
	Description string                      `json:"description,omitempty"`
	Percentage  int                         `json:"percentage"`
	Amount      int64                       `json:"amount"`
	Status      string                      `json:"status"`
	Items       []entities.MilestoneItemRef `json:"items"`
	CompletedAt *time.Time                  `json:"completed_at,omitempty"`
}

func FromMilestone(m entities.Milestone) MilestoneResponse {
	return MilestoneResponse{
		ID:          m.ID,
		ProjectID:   m.ProjectID,
		Index:       m.Index,
		Title:       m.Title,
		Description: m.Description,
		Percentage:  m.Percentage,
		Amount:      m.Amount,
		Status:      string(m.Status),
		Items:       m.Items.Data(),
		CompletedAt: m.CompletedAt,
	}
}

func FromMilestones(ms []entities.Milestone) []MilestoneResponse {
	out := make([]MilestoneResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromMilestone(m))
	}
	return out
}
