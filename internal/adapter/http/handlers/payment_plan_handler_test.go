package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"smarthaus/internal/adapter/http/handlers/mocks"
	"smarthaus/internal/domain/entities"
	"smarthaus/internal/usecase"
	"smarthaus/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentPlanHandler_SelectPaymentPlan(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *PaymentPlanHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/projects/:project_id/payment-plan", h.SelectPaymentPlan)
		return r
	}

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentPlanUseCase(ctrl)
		r := newRouter(NewPaymentPlanHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/proj-1/payment-plan", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("project not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentPlanUseCase(ctrl)
		r := newRouter(NewPaymentPlanHandler(uc))

		uc.EXPECT().SelectPlan(gomock.Any(), "proj-1", entities.PlanTypeMilestone3).
			Return(nil, usecase.ErrProjectNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/proj-1/payment-plan", bytes.NewBufferString(`{"plan_type":"MILESTONE_3"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("locked plan maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentPlanUseCase(ctrl)
		r := newRouter(NewPaymentPlanHandler(uc))

		uc.EXPECT().SelectPlan(gomock.Any(), "proj-1", entities.PlanTypeEightyTenTen).
			Return(nil, interfaces.ErrPlanLocked)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/proj-1/payment-plan", bytes.NewBufferString(`{"plan_type":"EIGHTY_TEN_TEN"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "PLAN_LOCKED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentPlanUseCase(ctrl)
		r := newRouter(NewPaymentPlanHandler(uc))

		uc.EXPECT().SelectPlan(gomock.Any(), "proj-1", entities.PlanTypeEightyTenTen).
			Return([]entities.Milestone{
				{ID: "ms-1", ProjectID: "proj-1", Index: 1, Title: "Initial mobilisation & equipment", Percentage: 80, Amount: 400000, Status: entities.MilestoneStatusPending},
				{ID: "ms-2", ProjectID: "proj-1", Index: 2, Title: "Installation progress payment", Percentage: 10, Amount: 50000, Status: entities.MilestoneStatusPending},
				{ID: "ms-3", ProjectID: "proj-1", Index: 3, Title: "Final testing & handover", Percentage: 10, Amount: 50000, Status: entities.MilestoneStatusPending},
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/proj-1/payment-plan", bytes.NewBufferString(`{"plan_type":"EIGHTY_TEN_TEN"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body) != 3 {
			t.Fatalf("expected 3 milestones, got %d", len(body))
		}
		if body[0]["amount"].(float64) != 400000 {
			t.Fatalf("unexpected first amount: %v", body[0]["amount"])
		}
	})
}

func TestPaymentPlanHandler_ListMilestones(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns milestone read model", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentPlanUseCase(ctrl)
		h := NewPaymentPlanHandler(uc)

		r := gin.New()
		r.GET("/v1/projects/:project_id/milestones", h.ListMilestones)

		uc.EXPECT().ListMilestones(gomock.Any(), "proj-1").
			Return([]entities.Milestone{{ID: "ms-1", Index: 1, Status: entities.MilestoneStatusCompleted}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/proj-1/milestones", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid id maps to bad request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentPlanUseCase(ctrl)
		h := NewPaymentPlanHandler(uc)

		r := gin.New()
		r.GET("/v1/projects/:project_id/milestones", h.ListMilestones)

		uc.EXPECT().ListMilestones(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrInvalidProjectID)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/x/milestones", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
