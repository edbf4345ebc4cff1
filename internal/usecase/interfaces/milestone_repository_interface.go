package interfaces

import (
	"context"
	"errors"
	"time"

	"smarthaus/internal/domain/entities"
)

//go:generate mockgen -source=milestone_repository_interface.go -destination=mocks/milestone_repository_interface.go -package=mock_interfaces

// ErrPlanLocked is returned by ReplacePlan when a milestone of the previous
// plan is already COMPLETED. Regenerating would destroy paid history, so the
// store refuses.
var ErrPlanLocked = errors.New("payment plan locked: a milestone is already completed")

// IMilestoneRepository owns the persisted milestone sequence of a project.
//
// Mutations are transactional and serialized per project (the implementation
// locks the project row):
//   - ReplacePlan upserts the PaymentPlan record, deletes the previous
//     milestone set wholesale and inserts the new batch.
//   - SettleWithShipment flips one milestone PENDING -> COMPLETED and appends
//     the released items to the project's DeviceShipment ledger in the same
//     transaction, then advances the project status.
type IMilestoneRepository interface {
	ReplacePlan(ctx context.Context, projectID string, planType entities.PlanType, milestones []entities.Milestone) ([]entities.Milestone, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Milestone, error)
	GetByID(ctx context.Context, id string) (entities.Milestone, error)
	SettleWithShipment(ctx context.Context, milestoneID, reference string, items []entities.ShipmentItem, now time.Time) (entities.Milestone, error)
	RecordEffect(ctx context.Context, effect entities.SettlementEffect) error
}
