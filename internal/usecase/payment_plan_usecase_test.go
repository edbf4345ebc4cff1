package usecase

import (
	"context"
	"errors"
	"testing"

	"smarthaus/internal/domain/entities"
	"smarthaus/internal/domain/planning"
	"smarthaus/internal/usecase/interfaces"
	mock_interfaces "smarthaus/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func selectedQuote(projectID string, total int64) entities.Quote {
	return entities.Quote{
		ID:         "quote-1",
		ProjectID:  projectID,
		IsSelected: true,
		Total:      total,
		Items: []entities.QuoteItem{
			{ID: "qi-gate", QuoteID: "quote-1", Name: "Gate motor", Category: entities.DeviceCategoryGate, Quantity: 1},
			{ID: "qi-lamp", QuoteID: "quote-1", Name: "Smart lamp", Category: entities.DeviceCategoryLighting, Quantity: 4},
			{ID: "qi-cam", QuoteID: "quote-1", Name: "Dome camera", Category: entities.DeviceCategorySurveillance, Quantity: 2},
		},
	}
}

func TestPaymentPlanUseCase_SelectPlan_Validations(t *testing.T) {
	t.Run("empty project id", func(t *testing.T) {
		uc := NewPaymentPlanUseCase(nil, nil, nil, nil)
		_, err := uc.SelectPlan(context.Background(), "  ", entities.PlanTypeMilestone3)
		if !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})

	t.Run("unknown plan type", func(t *testing.T) {
		uc := NewPaymentPlanUseCase(nil, nil, nil, nil)
		_, err := uc.SelectPlan(context.Background(), "proj-1", entities.PlanType("WEEKLY"))
		if !errors.Is(err, ErrInvalidPlanType) {
			t.Fatalf("expected ErrInvalidPlanType, got %v", err)
		}
	})

	t.Run("project not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewPaymentPlanUseCase(projects, nil, nil, nil)

		projects.EXPECT().GetByID(gomock.Any(), "proj-1").Return(entities.Project{}, nil)

		_, err := uc.SelectPlan(context.Background(), "proj-1", entities.PlanTypeMilestone3)
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("no selected quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewPaymentPlanUseCase(projects, quotes, nil, nil)

		projects.EXPECT().GetByID(gomock.Any(), "proj-1").Return(entities.Project{ID: "proj-1"}, nil)
		quotes.EXPECT().GetSelectedByProjectID(gomock.Any(), "proj-1").Return(entities.Quote{}, nil)

		_, err := uc.SelectPlan(context.Background(), "proj-1", entities.PlanTypeMilestone3)
		if !errors.Is(err, ErrNoSelectedQuote) {
			t.Fatalf("expected ErrNoSelectedQuote, got %v", err)
		}
	})

	t.Run("non positive quote total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewPaymentPlanUseCase(projects, quotes, nil, nil)

		projects.EXPECT().GetByID(gomock.Any(), "proj-1").Return(entities.Project{ID: "proj-1"}, nil)
		quotes.EXPECT().GetSelectedByProjectID(gomock.Any(), "proj-1").Return(selectedQuote("proj-1", 0), nil)

		_, err := uc.SelectPlan(context.Background(), "proj-1", entities.PlanTypeMilestone3)
		if !errors.Is(err, ErrInvalidQuoteTotal) {
			t.Fatalf("expected ErrInvalidQuoteTotal, got %v", err)
		}
	})
}

func TestPaymentPlanUseCase_SelectPlan_Fallback(t *testing.T) {
	t.Run("no plan source uses fallback and reconciles amounts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		milestones := mock_interfaces.NewMockIMilestoneRepository(ctrl)
		uc := NewPaymentPlanUseCase(projects, quotes, milestones, nil)

		projects.EXPECT().GetByID(gomock.Any(), "proj-1").Return(entities.Project{ID: "proj-1"}, nil)
		quotes.EXPECT().GetSelectedByProjectID(gomock.Any(), "proj-1").Return(selectedQuote("proj-1", 500000), nil)

		milestones.EXPECT().
			ReplacePlan(gomock.Any(), "proj-1", entities.PlanTypeEightyTenTen, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ entities.PlanType, batch []entities.Milestone) ([]entities.Milestone, error) {
				if len(batch) != 3 {
					t.Fatalf("batch size = %d, want 3", len(batch))
				}
				wantAmounts := []int64{400000, 50000, 50000}
				var sum int64
				for i, m := range batch {
					if m.Index != i+1 {
						t.Fatalf("milestone %d index = %d", i, m.Index)
					}
					if m.Amount != wantAmounts[i] {
						t.Fatalf("milestone %d amount = %d, want %d", i+1, m.Amount, wantAmounts[i])
					}
					if m.Status != entities.MilestoneStatusPending {
						t.Fatalf("milestone %d status = %s", i+1, m.Status)
					}
					if m.ID == "" {
						t.Fatalf("milestone %d has no id", i+1)
					}
					sum += m.Amount
				}
				if sum != 500000 {
					t.Fatalf("amounts sum to %d, want 500000", sum)
				}
				return batch, nil
			})
		projects.EXPECT().UpdateStatus(gomock.Any(), "proj-1", entities.ProjectStatusPaymentPlanSelected).Return(entities.Project{ID: "proj-1"}, nil)

		created, err := uc.SelectPlan(context.Background(), "proj-1", entities.PlanTypeEightyTenTen)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(created) != 3 {
			t.Fatalf("created %d milestones, want 3", len(created))
		}
	})

	t.Run("plan source error falls back silently", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		milestones := mock_interfaces.NewMockIMilestoneRepository(ctrl)
		planSource := mock_interfaces.NewMockIPlanSource(ctrl)
		uc := NewPaymentPlanUseCase(projects, quotes, milestones, planSource)

		projects.EXPECT().GetByID(gomock.Any(), "proj-1").Return(entities.Project{ID: "proj-1"}, nil)
		quotes.EXPECT().GetSelectedByProjectID(gomock.Any(), "proj-1").Return(selectedQuote("proj-1", 1000), nil)
		projects.EXPECT().GetOnboardingByProjectID(gomock.Any(), "proj-1").Return(nil, nil)
		planSource.EXPECT().GeneratePlan(gomock.Any(), gomock.Any()).Return(nil, errors.New("assistant unavailable"))
		milestones.EXPECT().ReplacePlan(gomock.Any(), "proj-1", entities.PlanTypeMilestone3, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ entities.PlanType, batch []entities.Milestone) ([]entities.Milestone, error) {
				return batch, nil
			})
		projects.EXPECT().UpdateStatus(gomock.Any(), "proj-1", entities.ProjectStatusPaymentPlanSelected).Return(entities.Project{ID: "proj-1"}, nil)

		created, err := uc.SelectPlan(context.Background(), "proj-1", entities.PlanTypeMilestone3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		wantPcts := []int{40, 40, 20}
		for i, m := range created {
			if m.Percentage != wantPcts[i] {
				t.Fatalf("milestone %d percentage = %d, want %d", i+1, m.Percentage, wantPcts[i])
			}
		}
	})

	t.Run("two milestone draft is discarded for fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		milestones := mock_interfaces.NewMockIMilestoneRepository(ctrl)
		planSource := mock_interfaces.NewMockIPlanSource(ctrl)
		uc := NewPaymentPlanUseCase(projects, quotes, milestones, planSource)

		projects.EXPECT().GetByID(gomock.Any(), "proj-1").Return(entities.Project{ID: "proj-1"}, nil)
		quotes.EXPECT().GetSelectedByProjectID(gomock.Any(), "proj-1").Return(selectedQuote("proj-1", 1000), nil)
		projects.EXPECT().GetOnboardingByProjectID(gomock.Any(), "proj-1").Return(nil, nil)
		planSource.EXPECT().GeneratePlan(gomock.Any(), gomock.Any()).Return([]planning.DraftMilestone{
			{Title: "Half", Percentage: 50},
			{Title: "Rest", Percentage: 50},
		}, nil)
		milestones.EXPECT().ReplacePlan(gomock.Any(), "proj-1", entities.PlanTypeMilestone3, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ entities.PlanType, batch []entities.Milestone) ([]entities.Milestone, error) {
				return batch, nil
			})
		projects.EXPECT().UpdateStatus(gomock.Any(), "proj-1", entities.ProjectStatusPaymentPlanSelected).Return(entities.Project{ID: "proj-1"}, nil)

		created, err := uc.SelectPlan(context.Background(), "proj-1", entities.PlanTypeMilestone3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(created) != 3 {
			t.Fatalf("created %d milestones, want 3 from fallback", len(created))
		}
		if created[0].Title != "Mobilisation & infrastructure" {
			t.Fatalf("fallback title = %q", created[0].Title)
		}
	})

	t.Run("draft with percentages over 100 is discarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		milestones := mock_interfaces.NewMockIMilestoneRepository(ctrl)
		planSource := mock_interfaces.NewMockIPlanSource(ctrl)
		uc := NewPaymentPlanUseCase(projects, quotes, milestones, planSource)

		projects.EXPECT().GetByID(gomock.Any(), "proj-1").Return(entities.Project{ID: "proj-1"}, nil)
		quotes.EXPECT().GetSelectedByProjectID(gomock.Any(), "proj-1").Return(selectedQuote("proj-1", 1000), nil)
		projects.EXPECT().GetOnboardingByProjectID(gomock.Any(), "proj-1").Return(nil, nil)
		planSource.EXPECT().GeneratePlan(gomock.Any(), gomock.Any()).Return([]planning.DraftMilestone{
			{Title: "A", Percentage: 70},
			{Title: "B", Percentage: 60},
			{Title: "C", Percentage: 10},
		}, nil)
		milestones.EXPECT().ReplacePlan(gomock.Any(), "proj-1", entities.PlanTypeMilestone3, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ entities.PlanType, batch []entities.Milestone) ([]entities.Milestone, error) {
				return batch, nil
			})
		projects.EXPECT().UpdateStatus(gomock.Any(), "proj-1", entities.ProjectStatusPaymentPlanSelected).Return(entities.Project{ID: "proj-1"}, nil)

		created, err := uc.SelectPlan(context.Background(), "proj-1", entities.PlanTypeMilestone3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		wantPcts := []int{40, 40, 20}
		var sum int64
		for i, m := range created {
			if m.Percentage != wantPcts[i] {
				t.Fatalf("milestone %d percentage = %d, want %d", i+1, m.Percentage, wantPcts[i])
			}
			if m.Amount < 0 {
				t.Fatalf("milestone %d amount = %d, want non negative", i+1, m.Amount)
			}
			sum += m.Amount
		}
		if sum != 1000 {
			t.Fatalf("amounts sum to %d, want 1000", sum)
		}
	})

	t.Run("eighty ten ten draft with other percentages is discarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		milestones := mock_interfaces.NewMockIMilestoneRepository(ctrl)
		planSource := mock_interfaces.NewMockIPlanSource(ctrl)
		uc := NewPaymentPlanUseCase(projects, quotes, milestones, planSource)

		projects.EXPECT().GetByID(gomock.Any(), "proj-1").Return(entities.Project{ID: "proj-1"}, nil)
		quotes.EXPECT().GetSelectedByProjectID(gomock.Any(), "proj-1").Return(selectedQuote("proj-1", 1000), nil)
		projects.EXPECT().GetOnboardingByProjectID(gomock.Any(), "proj-1").Return(nil, nil)
		planSource.EXPECT().GeneratePlan(gomock.Any(), gomock.Any()).Return([]planning.DraftMilestone{
			{Title: "A", Percentage: 50},
			{Title: "B", Percentage: 30},
			{Title: "C", Percentage: 20},
		}, nil)
		milestones.EXPECT().ReplacePlan(gomock.Any(), "proj-1", entities.PlanTypeEightyTenTen, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ entities.PlanType, batch []entities.Milestone) ([]entities.Milestone, error) {
				return batch, nil
			})
		projects.EXPECT().UpdateStatus(gomock.Any(), "proj-1", entities.ProjectStatusPaymentPlanSelected).Return(entities.Project{ID: "proj-1"}, nil)

		created, err := uc.SelectPlan(context.Background(), "proj-1", entities.PlanTypeEightyTenTen)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		wantPcts := []int{80, 10, 10}
		for i, m := range created {
			if m.Percentage != wantPcts[i] {
				t.Fatalf("milestone %d percentage = %d, want %d", i+1, m.Percentage, wantPcts[i])
			}
		}
	})

	t.Run("valid external draft is used as is", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		milestones := mock_interfaces.NewMockIMilestoneRepository(ctrl)
		planSource := mock_interfaces.NewMockIPlanSource(ctrl)
		uc := NewPaymentPlanUseCase(projects, quotes, milestones, planSource)

		projects.EXPECT().GetByID(gomock.Any(), "proj-1").Return(entities.Project{ID: "proj-1"}, nil)
		quotes.EXPECT().GetSelectedByProjectID(gomock.Any(), "proj-1").Return(selectedQuote("proj-1", 2000), nil)
		projects.EXPECT().GetOnboardingByProjectID(gomock.Any(), "proj-1").Return(nil, nil)
		planSource.EXPECT().GeneratePlan(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req interfaces.PlanRequest) ([]planning.DraftMilestone, error) {
				if req.Project.ID != "proj-1" {
					t.Fatalf("plan request project = %s", req.Project.ID)
				}
				return []planning.DraftMilestone{
					{Title: "Perimeter first", Percentage: 50, Items: []entities.MilestoneItemRef{{QuoteItemID: "qi-gate", Quantity: 1}}},
					{Title: "Interior devices", Percentage: 30, Items: []entities.MilestoneItemRef{{QuoteItemID: "qi-lamp", Quantity: 4}}},
					{Title: "Handover", Percentage: 20, Items: []entities.MilestoneItemRef{{QuoteItemID: "qi-cam", Quantity: 2}}},
				}, nil
			})
		milestones.EXPECT().ReplacePlan(gomock.Any(), "proj-1", entities.PlanTypeMilestone3, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ entities.PlanType, batch []entities.Milestone) ([]entities.Milestone, error) {
				return batch, nil
			})
		projects.EXPECT().UpdateStatus(gomock.Any(), "proj-1", entities.ProjectStatusPaymentPlanSelected).Return(entities.Project{ID: "proj-1"}, nil)

		created, err := uc.SelectPlan(context.Background(), "proj-1", entities.PlanTypeMilestone3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created[0].Title != "Perimeter first" {
			t.Fatalf("external title lost, got %q", created[0].Title)
		}
		wantAmounts := []int64{1000, 600, 400}
		for i, m := range created {
			if m.Amount != wantAmounts[i] {
				t.Fatalf("milestone %d amount = %d, want %d", i+1, m.Amount, wantAmounts[i])
			}
		}
	})
}

func TestPaymentPlanUseCase_SelectPlan_PlanLocked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	projects := mock_interfaces.NewMockIProjectRepository(ctrl)
	quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
	milestones := mock_interfaces.NewMockIMilestoneRepository(ctrl)
	uc := NewPaymentPlanUseCase(projects, quotes, milestones, nil)

	projects.EXPECT().GetByID(gomock.Any(), "proj-1").Return(entities.Project{ID: "proj-1"}, nil)
	quotes.EXPECT().GetSelectedByProjectID(gomock.Any(), "proj-1").Return(selectedQuote("proj-1", 1000), nil)
	milestones.EXPECT().ReplacePlan(gomock.Any(), "proj-1", entities.PlanTypeMilestone3, gomock.Any()).
		Return(nil, interfaces.ErrPlanLocked)

	_, err := uc.SelectPlan(context.Background(), "proj-1", entities.PlanTypeMilestone3)
	if !errors.Is(err, interfaces.ErrPlanLocked) {
		t.Fatalf("expected ErrPlanLocked, got %v", err)
	}
}

func TestPaymentPlanUseCase_ListMilestones(t *testing.T) {
	t.Run("empty project id", func(t *testing.T) {
		uc := NewPaymentPlanUseCase(nil, nil, nil, nil)
		_, err := uc.ListMilestones(context.Background(), " ")
		if !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})

	t.Run("returns stored milestones", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		milestones := mock_interfaces.NewMockIMilestoneRepository(ctrl)
		uc := NewPaymentPlanUseCase(nil, nil, milestones, nil)

		milestones.EXPECT().ListByProjectID(gomock.Any(), "proj-1").
			Return([]entities.Milestone{{ID: "ms-1", Index: 1}, {ID: "ms-2", Index: 2}}, nil)

		got, err := uc.ListMilestones(context.Background(), "proj-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("got %d milestones, want 2", len(got))
		}
	})
}
