package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"

	"smarthaus/internal/domain/entities"
	"smarthaus/internal/domain/planning"
	"smarthaus/internal/usecase/interfaces"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

var (
	ErrInvalidProjectID  = errors.New("invalid project id")
	ErrInvalidPlanType   = errors.New("invalid plan type")
	ErrProjectNotFound   = errors.New("project not found")
	ErrNoSelectedQuote   = errors.New("no selected quote for project")
	ErrInvalidQuoteTotal = errors.New("selected quote total must be positive")
)

// IPaymentPlanUseCase converts a chosen plan type into the persisted,
// reconciled milestone sequence for a project.
//
// Plan generation is a two-stage pipeline: the external planning assistant is
// tried first and its draft validated strictly; on any failure the
// deterministic fallback planner takes over. Allocation downstream never
// learns which one produced the draft.

type IPaymentPlanUseCase interface {
	SelectPlan(ctx context.Context, projectID string, planType entities.PlanType) ([]entities.Milestone, error)
	ListMilestones(ctx context.Context, projectID string) ([]entities.Milestone, error)
}

type PaymentPlanUseCase struct {
	projects   interfaces.IProjectRepository
	quotes     interfaces.IQuoteRepository
	milestones interfaces.IMilestoneRepository
	planSource interfaces.IPlanSource
}

var _ IPaymentPlanUseCase = (*PaymentPlanUseCase)(nil)

// NewPaymentPlanUseCase wires the plan selection pipeline. planSource may be
// nil; the fallback planner then handles every request.
func NewPaymentPlanUseCase(projects interfaces.IProjectRepository, quotes interfaces.IQuoteRepository, milestones interfaces.IMilestoneRepository, planSource interfaces.IPlanSource) *PaymentPlanUseCase {
	return &PaymentPlanUseCase{projects: projects, quotes: quotes, milestones: milestones, planSource: planSource}
}

func (u *PaymentPlanUseCase) SelectPlan(ctx context.Context, projectID string, planType entities.PlanType) ([]entities.Milestone, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}
	if !planType.Valid() {
		return nil, ErrInvalidPlanType
	}
	log.Printf("[plan][usecase] select start project_id=%s plan_type=%s", projectID, planType)

	project, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.ID == "" {
		return nil, ErrProjectNotFound
	}

	quote, err := u.quotes.GetSelectedByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if quote.ID == "" {
		return nil, ErrNoSelectedQuote
	}
	if quote.Total <= 0 {
		return nil, ErrInvalidQuoteTotal
	}

	plan := u.resolvePlan(ctx, project, quote, planType)
	log.Printf("[plan][usecase] plan resolved project_id=%s source=%s", projectID, plan.Source)

	allocated, err := planning.Allocate(plan, quote.Total)
	if err != nil {
		if errors.Is(err, planning.ErrInvalidTotal) {
			return nil, ErrInvalidQuoteTotal
		}
		return nil, err
	}

	batch := make([]entities.Milestone, 0, len(allocated))
	for _, a := range allocated {
		batch = append(batch, entities.Milestone{
			ID:          uuid.NewString(),
			ProjectID:   projectID,
			Index:       a.Index,
			Title:       a.Title,
			Description: a.Description,
			Percentage:  a.Percentage,
			Amount:      a.Amount,
			Items:       datatypes.NewJSONType(a.Items),
			Status:      entities.MilestoneStatusPending,
		})
	}

	created, err := u.milestones.ReplacePlan(ctx, projectID, planType, batch)
	if err != nil {
		log.Printf("[plan][usecase] replace failed project_id=%s err=%v", projectID, err)
		return nil, err
	}

	if _, err := u.projects.UpdateStatus(ctx, projectID, entities.ProjectStatusPaymentPlanSelected); err != nil {
		log.Printf("[plan][usecase] project status update failed project_id=%s err=%v", projectID, err)
		return nil, err
	}

	log.Printf("[plan][usecase] select success project_id=%s plan_type=%s milestones=%d", projectID, planType, len(created))
	return created, nil
}

// resolvePlan tries the external plan source and falls back to the
// deterministic planner. Enhancement failures are logged, never surfaced.
func (u *PaymentPlanUseCase) resolvePlan(ctx context.Context, project entities.Project, quote entities.Quote, planType entities.PlanType) planning.Plan {
	if u.planSource == nil {
		return planning.FallbackPlan(planType, quote.Items)
	}

	onboarding, err := u.projects.GetOnboardingByProjectID(ctx, project.ID)
	if err != nil {
		log.Printf("[plan][usecase] onboarding lookup failed project_id=%s err=%v", project.ID, err)
		onboarding = nil
	}

	draft, err := u.planSource.GeneratePlan(ctx, interfaces.PlanRequest{
		PlanType:   planType,
		Project:    project,
		Onboarding: onboarding,
		Quote:      quote,
	})
	if err != nil {
		log.Printf("[plan][usecase] plan source unavailable project_id=%s err=%v", project.ID, err)
		return planning.FallbackPlan(planType, quote.Items)
	}

	if err := planning.ValidateExternal(draft, quote.Items); err != nil {
		log.Printf("[plan][usecase] plan source draft rejected project_id=%s err=%v", project.ID, err)
		return planning.FallbackPlan(planType, quote.Items)
	}
	if planType == entities.PlanTypeEightyTenTen && !isEightyTenTen(draft) {
		log.Printf("[plan][usecase] plan source draft rejected project_id=%s err=percentages not 80/10/10", project.ID)
		return planning.FallbackPlan(planType, quote.Items)
	}

	return planning.Plan{Source: planning.SourceExternal, Milestones: draft}
}

// isEightyTenTen enforces the fixed split for the EIGHTY_TEN_TEN plan type:
// the persisted percentage sequence must be exactly [80,10,10].
func isEightyTenTen(draft []planning.DraftMilestone) bool {
	want := [...]float64{80, 10, 10}
	if len(draft) != len(want) {
		return false
	}
	for i, m := range draft {
		if math.Round(m.Percentage) != want[i] {
			return false
		}
	}
	return true
}

func (u *PaymentPlanUseCase) ListMilestones(ctx context.Context, projectID string) ([]entities.Milestone, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}
	return u.milestones.ListByProjectID(ctx, projectID)
}
