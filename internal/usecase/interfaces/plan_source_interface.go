package interfaces

import (
	"context"

	"smarthaus/internal/domain/entities"
	"smarthaus/internal/domain/planning"
)

//go:generate mockgen -source=plan_source_interface.go -destination=mocks/plan_source_interface.go -package=mock_interfaces

// PlanRequest is the full context handed to the external planning assistant.
// Onboarding may be nil; all its fields are hints, not requirements.
type PlanRequest struct {
	PlanType   entities.PlanType
	Project    entities.Project
	Onboarding *entities.Onboarding
	Quote      entities.Quote
}

// IPlanSource is the AI planning assistant. A best-effort enhancement: any
// error means "no plan" and the caller falls back to the deterministic
// planner, never surfacing the failure.
type IPlanSource interface {
	GeneratePlan(ctx context.Context, req PlanRequest) ([]planning.DraftMilestone, error)
}
