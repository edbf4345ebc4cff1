package response

import (
	"time"

	"smarthaus/internal/domain/entities"
)

type TripTaskResponse struct {
	ID    string `json:"id"`
	Index int    `json:"index"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

type TripResponse struct {
	ID           string             `json:"id"`
	ProjectID    string             `json:"project_id"`
	MilestoneID  *string            `json:"milestone_id,omitempty"`
	Status       string             `json:"status"`
	ScheduledFor time.Time          `json:"scheduled_for"`
	CheckInAt    *time.Time         `json:"check_in_at,omitempty"`
	CheckOutAt   *time.Time         `json:"check_out_at,omitempty"`
	Notes        string             `json:"notes,omitempty"`
	Tasks        []TripTaskResponse `json:"tasks"`
}

func FromTrip(t entities.Trip) TripResponse {
	tasks := make([]TripTaskResponse, 0, len(t.Tasks))
	for _, task := range t.Tasks {
		tasks = append(tasks, TripTaskResponse{
			ID:    task.ID,
			Index: task.Index,
			Title: task.Title,
			Done:  task.Done,
		})
	}
	return TripResponse{
		ID:           t.ID,
		ProjectID:    t.ProjectID,
		MilestoneID:  t.MilestoneID,
		Status:       string(t.Status),
		ScheduledFor: t.ScheduledFor,
		CheckInAt:    t.CheckInAt,
		CheckOutAt:   t.CheckOutAt,
		Notes:        t.Notes,
		Tasks:        tasks,
	}
}

func FromTrips(ts []entities.Trip) []TripResponse {
	out := make([]TripResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromTrip(t))
	}
	return out
}
