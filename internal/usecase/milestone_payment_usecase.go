package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"smarthaus/internal/domain/entities"
	"smarthaus/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidMilestoneID      = errors.New("invalid milestone id")
	ErrInvalidPayerEmail       = errors.New("invalid payer email")
	ErrInvalidReference        = errors.New("invalid payment reference")
	ErrMilestoneNotFound       = errors.New("milestone not found")
	ErrMilestoneOutOfOrder     = errors.New("milestone cannot be paid before earlier milestones")
	ErrMilestoneAlreadySettled = errors.New("milestone already settled")
	ErrPaymentNotSuccessful    = errors.New("payment not successful")
	ErrPaymentScopeMismatch    = errors.New("payment metadata does not match milestone scope")
	ErrGatewayNotConfigured    = errors.New("payment gateway not configured")
)

// Fixed visit checklist seeded on every auto-scheduled trip.
var tripTaskTitles = [...]string{
	"Wiring & infrastructure preparation",
	"Device installation on site",
	"Integration, testing & client walkthrough",
}

const tripAutoScheduleNote = "Automatically scheduled after milestone payment. Our team will confirm the visit window with you."

// SettlementResult summarizes a verified settlement: the settled milestone
// and the recorded outcome of every side effect. AlreadySettled marks a
// replayed verification that was detected as a no-op.
type SettlementResult struct {
	Milestone      entities.Milestone
	AlreadySettled bool
	Effects        []entities.SettlementEffect
}

// MilestonePaymentOptions carries the request-independent settings for the
// payment flow.
type MilestonePaymentOptions struct {
	CallbackURL  string
	DashboardURL string
	OpsInbox     string
}

// IMilestonePaymentUseCase enforces the ordered payment state machine over a
// project's milestones and orchestrates settlement.

type IMilestonePaymentUseCase interface {
	InitializePayment(ctx context.Context, projectID, milestoneID, email string) (interfaces.PaymentInit, error)
	VerifyAndSettle(ctx context.Context, reference string) (SettlementResult, error)
	GetShipment(ctx context.Context, projectID string) (entities.DeviceShipment, error)
	ListTrips(ctx context.Context, projectID string) ([]entities.Trip, error)
}

type MilestonePaymentUseCase struct {
	milestones    interfaces.IMilestoneRepository
	projects      interfaces.IProjectRepository
	quotes        interfaces.IQuoteRepository
	shipments     interfaces.IDeviceShipmentRepository
	trips         interfaces.ITripRepository
	notifications interfaces.INotificationRepository
	gateway       interfaces.IPaymentGateway
	mailer        interfaces.IMailer
	opts          MilestonePaymentOptions

	now func() time.Time
}

var _ IMilestonePaymentUseCase = (*MilestonePaymentUseCase)(nil)

func NewMilestonePaymentUseCase(
	milestones interfaces.IMilestoneRepository,
	projects interfaces.IProjectRepository,
	quotes interfaces.IQuoteRepository,
	shipments interfaces.IDeviceShipmentRepository,
	trips interfaces.ITripRepository,
	notifications interfaces.INotificationRepository,
	gateway interfaces.IPaymentGateway,
	mailer interfaces.IMailer,
	opts MilestonePaymentOptions,
) *MilestonePaymentUseCase {
	return &MilestonePaymentUseCase{
		milestones:    milestones,
		projects:      projects,
		quotes:        quotes,
		shipments:     shipments,
		trips:         trips,
		notifications: notifications,
		gateway:       gateway,
		mailer:        mailer,
		opts:          opts,
		now:           time.Now,
	}
}

// InitializePayment opens a checkout session for a milestone. Only the
// earliest-by-index milestone not yet COMPLETED may be paid; anything else is
// a sequencing violation.
func (u *MilestonePaymentUseCase) InitializePayment(ctx context.Context, projectID, milestoneID, email string) (interfaces.PaymentInit, error) {
	projectID = strings.TrimSpace(projectID)
	milestoneID = strings.TrimSpace(milestoneID)
	email = strings.TrimSpace(email)
	if projectID == "" {
		return interfaces.PaymentInit{}, ErrInvalidProjectID
	}
	if milestoneID == "" {
		return interfaces.PaymentInit{}, ErrInvalidMilestoneID
	}
	if email == "" || !strings.Contains(email, "@") {
		return interfaces.PaymentInit{}, ErrInvalidPayerEmail
	}
	if u.gateway == nil {
		return interfaces.PaymentInit{}, ErrGatewayNotConfigured
	}
	log.Printf("[payment][usecase] initialize start project_id=%s milestone_id=%s", projectID, milestoneID)

	milestone, err := u.milestones.GetByID(ctx, milestoneID)
	if err != nil {
		return interfaces.PaymentInit{}, err
	}
	if milestone.ID == "" || milestone.ProjectID != projectID {
		return interfaces.PaymentInit{}, ErrMilestoneNotFound
	}
	if milestone.Status == entities.MilestoneStatusCompleted {
		return interfaces.PaymentInit{}, ErrMilestoneAlreadySettled
	}

	all, err := u.milestones.ListByProjectID(ctx, projectID)
	if err != nil {
		return interfaces.PaymentInit{}, err
	}
	for _, m := range all {
		if m.Status != entities.MilestoneStatusCompleted {
			if m.Index != milestone.Index {
				log.Printf("[payment][usecase] out-of-order project_id=%s requested_idx=%d next_idx=%d", projectID, milestone.Index, m.Index)
				return interfaces.PaymentInit{}, ErrMilestoneOutOfOrder
			}
			break
		}
	}

	reference := "ms_" + uuid.NewString()
	init, err := u.gateway.Initialize(ctx, email, milestone.Amount, reference, u.opts.CallbackURL, map[string]string{
		"project_id":   projectID,
		"milestone_id": milestoneID,
	})
	if err != nil {
		log.Printf("[payment][usecase] initialize failed project_id=%s milestone_id=%s err=%v", projectID, milestoneID, err)
		return interfaces.PaymentInit{}, err
	}
	log.Printf("[payment][usecase] initialize success milestone_id=%s reference=%s", milestoneID, init.Reference)
	return init, nil
}

// VerifyAndSettle handles the gateway verification callback. The reference is
// verified with the gateway, the milestone recovered from the echoed
// metadata, and a successful payment settles the milestone and fans out its
// side effects.
func (u *MilestonePaymentUseCase) VerifyAndSettle(ctx context.Context, reference string) (SettlementResult, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return SettlementResult{}, ErrInvalidReference
	}
	if u.gateway == nil {
		return SettlementResult{}, ErrGatewayNotConfigured
	}
	log.Printf("[payment][usecase] verify start reference=%s", reference)

	verification, err := u.gateway.Verify(ctx, reference)
	if err != nil {
		log.Printf("[payment][usecase] verify failed reference=%s err=%v", reference, err)
		return SettlementResult{}, err
	}
	if verification.Status != "success" {
		log.Printf("[payment][usecase] payment not successful reference=%s status=%s", reference, verification.Status)
		return SettlementResult{}, ErrPaymentNotSuccessful
	}

	projectID := verification.Metadata["project_id"]
	milestoneID := verification.Metadata["milestone_id"]
	if projectID == "" || milestoneID == "" {
		log.Printf("[payment][usecase] metadata missing scope reference=%s", reference)
		return SettlementResult{}, ErrPaymentScopeMismatch
	}

	milestone, err := u.milestones.GetByID(ctx, milestoneID)
	if err != nil {
		return SettlementResult{}, err
	}
	if milestone.ID == "" {
		return SettlementResult{}, ErrMilestoneNotFound
	}
	// The reference alone is not trusted as scope proof.
	if milestone.ProjectID != projectID {
		log.Printf("[payment][usecase] scope mismatch reference=%s milestone_project=%s metadata_project=%s", reference, milestone.ProjectID, projectID)
		return SettlementResult{}, ErrPaymentScopeMismatch
	}
	if verification.Amount != 0 && verification.Amount != milestone.Amount*100 {
		log.Printf("[payment][usecase] amount drift reference=%s verified=%d expected_minor=%d", reference, verification.Amount, milestone.Amount*100)
	}

	items := u.resolveShipmentItems(ctx, milestone)

	settled, err := u.milestones.SettleWithShipment(ctx, milestone.ID, reference, items, u.now())
	if err != nil {
		if errors.Is(err, entities.ErrSettledDuplicate) {
			log.Printf("[payment][usecase] duplicate verification ignored milestone_id=%s reference=%s", milestone.ID, reference)
			return SettlementResult{Milestone: settled, AlreadySettled: true}, nil
		}
		if errors.Is(err, entities.ErrAlreadySettled) {
			return SettlementResult{}, ErrMilestoneAlreadySettled
		}
		log.Printf("[payment][usecase] settle failed milestone_id=%s err=%v", milestone.ID, err)
		return SettlementResult{}, err
	}
	log.Printf("[payment][usecase] milestone settled project_id=%s milestone_id=%s idx=%d", projectID, settled.ID, settled.Index)

	effects := u.fanOut(ctx, settled)
	return SettlementResult{Milestone: settled, Effects: effects}, nil
}

// resolveShipmentItems denormalizes the milestone's item references with name
// and category from the selected quote. Unknown references are kept with the
// bare reference so the ledger never silently loses a funded item.
func (u *MilestonePaymentUseCase) resolveShipmentItems(ctx context.Context, m entities.Milestone) []entities.ShipmentItem {
	refs := m.Items.Data()
	if len(refs) == 0 {
		return nil
	}

	byID := map[string]entities.QuoteItem{}
	quote, err := u.quotes.GetSelectedByProjectID(ctx, m.ProjectID)
	if err != nil {
		log.Printf("[payment][usecase] quote lookup failed project_id=%s err=%v", m.ProjectID, err)
	} else {
		for _, it := range quote.Items {
			byID[it.ID] = it
		}
	}

	items := make([]entities.ShipmentItem, 0, len(refs))
	for _, ref := range refs {
		item := entities.ShipmentItem{QuoteItemID: ref.QuoteItemID, Quantity: ref.Quantity}
		if qi, ok := byID[ref.QuoteItemID]; ok {
			item.Name = qi.Name
			item.Category = qi.Category
		} else {
			log.Printf("[payment][usecase] unknown quote item in milestone milestone_id=%s quote_item_id=%s", m.ID, ref.QuoteItemID)
		}
		items = append(items, item)
	}
	return items
}

// fanOut runs the post-settlement side effects in order. Every effect is
// best-effort, single-attempt: an individual failure is logged and recorded
// but never blocks the remaining effects or the settlement itself.
func (u *MilestonePaymentUseCase) fanOut(ctx context.Context, m entities.Milestone) []entities.SettlementEffect {
	// The ledger merge already happened inside the settlement transaction.
	effects := []entities.SettlementEffect{
		u.recordEffect(ctx, m.ID, entities.EffectShipmentMerge, nil),
	}

	project, err := u.projects.GetByID(ctx, m.ProjectID)
	if err != nil || project.ID == "" {
		log.Printf("[payment][usecase] project lookup failed for fan-out project_id=%s err=%v", m.ProjectID, err)
	}

	trip, tripErr := u.scheduleTrip(ctx, m)
	effects = append(effects, u.recordEffect(ctx, m.ID, entities.EffectTripSchedule, tripErr))

	notifyErr := u.notifyAdmin(ctx, m, project)
	effects = append(effects, u.recordEffect(ctx, m.ID, entities.EffectAdminNotify, notifyErr))

	emailErr := u.emailCustomer(ctx, m, project, trip)
	effects = append(effects, u.recordEffect(ctx, m.ID, entities.EffectCustomerEmail, emailErr))

	return effects
}

func (u *MilestonePaymentUseCase) recordEffect(ctx context.Context, milestoneID string, kind entities.SettlementEffectKind, effErr error) entities.SettlementEffect {
	effect := entities.SettlementEffect{
		ID:          uuid.NewString(),
		MilestoneID: milestoneID,
		Effect:      kind,
		OK:          effErr == nil,
	}
	if effErr != nil {
		effect.Error = effErr.Error()
		log.Printf("[payment][usecase] settlement effect failed milestone_id=%s effect=%s err=%v", milestoneID, kind, effErr)
	}
	if err := u.milestones.RecordEffect(ctx, effect); err != nil {
		log.Printf("[payment][usecase] effect record failed milestone_id=%s effect=%s err=%v", milestoneID, kind, err)
	}
	return effect
}

// scheduleTrip books the follow-up site visit: 3 calendar days out at 10:00
// local time, seeded with the fixed 3-step checklist.
func (u *MilestonePaymentUseCase) scheduleTrip(ctx context.Context, m entities.Milestone) (entities.Trip, error) {
	if u.trips == nil {
		return entities.Trip{}, errors.New("trip repository not configured")
	}

	visit := u.now().AddDate(0, 0, 3)
	scheduledFor := time.Date(visit.Year(), visit.Month(), visit.Day(), 10, 0, 0, 0, time.Local)

	milestoneID := m.ID
	tasks := make([]entities.TripTask, 0, len(tripTaskTitles))
	for i, title := range tripTaskTitles {
		tasks = append(tasks, entities.TripTask{Index: i + 1, Title: title})
	}

	trip, err := u.trips.CreateWithTasks(ctx, entities.Trip{
		ProjectID:    m.ProjectID,
		MilestoneID:  &milestoneID,
		Status:       entities.TripStatusScheduled,
		ScheduledFor: scheduledFor,
		Notes:        tripAutoScheduleNote,
		Tasks:        tasks,
	})
	if err != nil {
		return entities.Trip{}, err
	}
	log.Printf("[payment][usecase] trip scheduled project_id=%s trip_id=%s scheduled_for=%s", m.ProjectID, trip.ID, scheduledFor.Format(time.RFC3339))
	return trip, nil
}

func (u *MilestonePaymentUseCase) notifyAdmin(ctx context.Context, m entities.Milestone, project entities.Project) error {
	if u.notifications == nil {
		return errors.New("notification repository not configured")
	}

	projectName := project.Name
	if projectName == "" {
		projectName = m.ProjectID
	}
	_, err := u.notifications.Create(ctx, entities.Notification{
		Audience:  entities.NotificationAudienceAdmin,
		ProjectID: m.ProjectID,
		Title:     fmt.Sprintf("Milestone %d paid", m.Index),
		Body:      fmt.Sprintf("Milestone %d (%s) was paid for project %s.", m.Index, m.Title, projectName),
	})
	if err != nil {
		return err
	}

	if u.mailer != nil && u.opts.OpsInbox != "" {
		subject := fmt.Sprintf("Milestone %d paid — %s", m.Index, projectName)
		body := fmt.Sprintf("<p>Milestone %d (%s) was paid for project <b>%s</b>.</p>", m.Index, m.Title, projectName)
		if err := u.mailer.Send(ctx, u.opts.OpsInbox, subject, body); err != nil {
			return fmt.Errorf("ops email: %w", err)
		}
	}
	return nil
}

func (u *MilestonePaymentUseCase) emailCustomer(ctx context.Context, m entities.Milestone, project entities.Project, trip entities.Trip) error {
	if u.mailer == nil {
		return errors.New("mailer not configured")
	}
	if project.OwnerEmail == "" {
		return errors.New("project owner email not set")
	}

	when := "soon"
	if !trip.ScheduledFor.IsZero() {
		when = trip.ScheduledFor.Format("Monday, 2 January 2006 at 15:04")
	}
	html := fmt.Sprintf(
		`<p>Thanks for your payment on milestone %d of <b>%s</b>.</p>`+
			`<p>An installation visit at %s has been scheduled for %s.</p>`+
			`<p><a href="%s">View your project dashboard</a></p>`,
		m.Index, project.Name, project.Address, when, u.opts.DashboardURL,
	)
	return u.mailer.Send(ctx, project.OwnerEmail, "Your installation visit is scheduled", html)
}

func (u *MilestonePaymentUseCase) GetShipment(ctx context.Context, projectID string) (entities.DeviceShipment, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.DeviceShipment{}, ErrInvalidProjectID
	}
	return u.shipments.GetByProjectID(ctx, projectID)
}

func (u *MilestonePaymentUseCase) ListTrips(ctx context.Context, projectID string) ([]entities.Trip, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}
	return u.trips.ListByProjectID(ctx, projectID)
}
