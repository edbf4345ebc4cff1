package handlers

import (
	"errors"
	"log"
	"net/http"

	request "smarthaus/internal/adapter/http/dto/request"
	response "smarthaus/internal/adapter/http/dto/response"
	"smarthaus/internal/domain/entities"
	"smarthaus/internal/usecase"
	"smarthaus/internal/usecase/interfaces"
	"smarthaus/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPlanPayload = pkg.NewDomainErrorSimple("INVALID_PLAN_INPUT", "Invalid payment plan payload", http.StatusBadRequest)

// PaymentPlanHandler handles HTTP requests for payment plan selection and
// the milestone read model.

type PaymentPlanHandler struct {
	usecase usecase.IPaymentPlanUseCase
}

func NewPaymentPlanHandler(uc usecase.IPaymentPlanUseCase) *PaymentPlanHandler {
	return &PaymentPlanHandler{usecase: uc}
}

// SelectPaymentPlan (re)generates the milestone sequence for a project.
//
// @Summary      Select a payment plan
// @Tags         payment-plans
// @Accept       json
// @Produce      json
// @Param        project_id  path  string                            true  "Project ID"
// @Param        payload     body  request.PaymentPlanSelectRequest  true  "Plan selection"
// @Success      201  {array}   response.MilestoneResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /projects/{project_id}/payment-plan [post]
func (h *PaymentPlanHandler) SelectPaymentPlan(c *gin.Context) {
	projectID := c.Param("project_id")

	var payload request.PaymentPlanSelectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPlanPayload.HTTPStatus, errInvalidPlanPayload.ToHTTPError())
		return
	}
	log.Printf("[plan][handler] select start project_id=%s plan_type=%s", projectID, payload.PlanType)

	milestones, err := h.usecase.SelectPlan(c.Request.Context(), projectID, entities.PlanType(payload.PlanType))
	if err != nil {
		log.Printf("[plan][handler] select failed project_id=%s err=%v", projectID, err)
		appErr := mapPaymentPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[plan][handler] select success project_id=%s milestones=%d", projectID, len(milestones))

	c.JSON(http.StatusCreated, response.FromMilestones(milestones))
}

// ListMilestones returns the ordered milestone read model for a project.
//
// @Summary      List project milestones
// @Tags         payment-plans
// @Produce      json
// @Param        project_id  path  string  true  "Project ID"
// @Success      200  {array}   response.MilestoneResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /projects/{project_id}/milestones [get]
func (h *PaymentPlanHandler) ListMilestones(c *gin.Context) {
	projectID := c.Param("project_id")

	milestones, err := h.usecase.ListMilestones(c.Request.Context(), projectID)
	if err != nil {
		appErr := mapPaymentPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMilestones(milestones))
}

func mapPaymentPlanError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID), errors.Is(err, usecase.ErrInvalidPlanType):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoSelectedQuote):
		return pkg.NewDomainErrorSimple("NO_SELECTED_QUOTE", "No selected quote for this project", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidQuoteTotal):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_TOTAL", "Selected quote has no payable total", http.StatusConflict)
	case errors.Is(err, interfaces.ErrPlanLocked):
		return pkg.NewDomainErrorSimple("PLAN_LOCKED", "A milestone is already completed; the payment plan can no longer be changed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
