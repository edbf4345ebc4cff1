package response

import (
	"testing"
	"time"

	"smarthaus/internal/domain/entities"
	"smarthaus/internal/usecase"

	"gorm.io/datatypes"
)

func TestFromMilestone(t *testing.T) {
	completed := time.Now().UTC()
	m := entities.Milestone{
		ID:               "ms-1",
		ProjectID:        "proj-1",
		Index:            2,
		Title:            "Installation progress payment",
		Percentage:       10,
		Amount:           50000,
		Items:            datatypes.NewJSONType([]entities.MilestoneItemRef{{QuoteItemID: "qi-1", Quantity: 3}}),
		Status:           entities.MilestoneStatusCompleted,
		PaymentReference: "ms_abc",
		CompletedAt:      &completed,
	}

	res := FromMilestone(m)
	if res.ID != "ms-1" || res.ProjectID != "proj-1" || res.Index != 2 {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Percentage != 10 || res.Amount != 50000 || res.Status != "COMPLETED" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if len(res.Items) != 1 || res.Items[0].QuoteItemID != "qi-1" || res.Items[0].Quantity != 3 {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
	if res.CompletedAt == nil || !res.CompletedAt.Equal(completed) {
		t.Fatalf("unexpected completed_at: %+v", res.CompletedAt)
	}
}

func TestFromSettlement(t *testing.T) {
	result := usecase.SettlementResult{
		Milestone:      entities.Milestone{ID: "ms-1", Status: entities.MilestoneStatusCompleted},
		AlreadySettled: false,
		Effects: []entities.SettlementEffect{
			{Effect: entities.EffectShipmentMerge, OK: true},
			{Effect: entities.EffectCustomerEmail, OK: false, Error: "mailer down"},
		},
	}

	res := FromSettlement(result)
	if res.Milestone.ID != "ms-1" || res.AlreadySettled {
		t.Fatalf("unexpected settlement: %+v", res)
	}
	if len(res.Effects) != 2 {
		t.Fatalf("unexpected effects: %+v", res.Effects)
	}
	if res.Effects[0].Effect != "SHIPMENT_MERGE" || !res.Effects[0].OK {
		t.Fatalf("unexpected first effect: %+v", res.Effects[0])
	}
	if res.Effects[1].OK || res.Effects[1].Error != "mailer down" {
		t.Fatalf("unexpected second effect: %+v", res.Effects[1])
	}
}
