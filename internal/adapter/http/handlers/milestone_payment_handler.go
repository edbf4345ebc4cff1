package handlers

import (
	"errors"
	"log"
	"net/http"

	request "smarthaus/internal/adapter/http/dto/request"
	response "smarthaus/internal/adapter/http/dto/response"
	"smarthaus/internal/usecase"
	"smarthaus/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPayPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)

// MilestonePaymentHandler handles checkout initialization, the gateway
// verification callback and the settlement read models.

type MilestonePaymentHandler struct {
	usecase usecase.IMilestonePaymentUseCase
}

func NewMilestonePaymentHandler(uc usecase.IMilestonePaymentUseCase) *MilestonePaymentHandler {
	return &MilestonePaymentHandler{usecase: uc}
}

// InitializePayment opens a checkout session for the next payable milestone.
//
// @Summary      Initialize a milestone payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        project_id    path  string                       true  "Project ID"
// @Param        milestone_id  path  string                       true  "Milestone ID"
// @Param        payload       body  request.MilestonePayRequest  true  "Payer"
// @Success      200  {object}  response.PaymentInitResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /projects/{project_id}/milestones/{milestone_id}/pay [post]
func (h *MilestonePaymentHandler) InitializePayment(c *gin.Context) {
	projectID := c.Param("project_id")
	milestoneID := c.Param("milestone_id")

	var payload request.MilestonePayRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayPayload.HTTPStatus, errInvalidPayPayload.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] initialize start project_id=%s milestone_id=%s", projectID, milestoneID)

	init, err := h.usecase.InitializePayment(c.Request.Context(), projectID, milestoneID, payload.Email)
	if err != nil {
		log.Printf("[payment][handler] initialize failed milestone_id=%s err=%v", milestoneID, err)
		appErr := mapMilestonePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] initialize success milestone_id=%s reference=%s", milestoneID, init.Reference)

	c.JSON(http.StatusOK, response.FromPaymentInit(init))
}

// VerifyPayment is the gateway callback: verifies the reference and settles
// the targeted milestone.
//
// @Summary      Verify a payment and settle its milestone
// @Tags         payments
// @Produce      json
// @Param        reference  query  string  true  "Gateway payment reference"
// @Success      200  {object}  response.SettlementResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      402  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /payments/verify [get]
func (h *MilestonePaymentHandler) VerifyPayment(c *gin.Context) {
	reference := c.Query("reference")
	log.Printf("[payment][handler] verify start reference=%s", reference)

	result, err := h.usecase.VerifyAndSettle(c.Request.Context(), reference)
	if err != nil {
		log.Printf("[payment][handler] verify failed reference=%s err=%v", reference, err)
		appErr := mapMilestonePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] verify success reference=%s milestone_id=%s already_settled=%v", reference, result.Milestone.ID, result.AlreadySettled)

	c.JSON(http.StatusOK, response.FromSettlement(result))
}

// GetShipment returns the project's device shipment ledger.
//
// @Summary      Get the device shipment ledger
// @Tags         shipments
// @Produce      json
// @Param        project_id  path  string  true  "Project ID"
// @Success      200  {object}  response.ShipmentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /projects/{project_id}/shipment [get]
func (h *MilestonePaymentHandler) GetShipment(c *gin.Context) {
	projectID := c.Param("project_id")

	shipment, err := h.usecase.GetShipment(c.Request.Context(), projectID)
	if err != nil {
		appErr := mapMilestonePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if shipment.ID == "" {
		appErr := pkg.NewDomainErrorSimple("SHIPMENT_NOT_FOUND", "No shipment for this project yet", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromShipment(shipment))
}

// ListTrips returns the project's scheduled visits with their checklists.
//
// @Summary      List project trips
// @Tags         trips
// @Produce      json
// @Param        project_id  path  string  true  "Project ID"
// @Success      200  {array}   response.TripResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /projects/{project_id}/trips [get]
func (h *MilestonePaymentHandler) ListTrips(c *gin.Context) {
	projectID := c.Param("project_id")

	trips, err := h.usecase.ListTrips(c.Request.Context(), projectID)
	if err != nil {
		appErr := mapMilestonePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTrips(trips))
}

func mapMilestonePaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID),
		errors.Is(err, usecase.ErrInvalidMilestoneID),
		errors.Is(err, usecase.ErrInvalidPayerEmail),
		errors.Is(err, usecase.ErrInvalidReference):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMilestoneNotFound):
		return pkg.NewDomainErrorSimple("MILESTONE_NOT_FOUND", "Milestone not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMilestoneOutOfOrder):
		return pkg.NewDomainErrorSimple("MILESTONE_OUT_OF_ORDER", "Earlier milestones must be paid first", http.StatusConflict)
	case errors.Is(err, usecase.ErrMilestoneAlreadySettled):
		return pkg.NewDomainErrorSimple("MILESTONE_ALREADY_SETTLED", "Milestone already settled", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotSuccessful):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_SUCCESSFUL", "Payment was not successful", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentScopeMismatch):
		return pkg.NewDomainErrorSimple("PAYMENT_SCOPE_MISMATCH", "Payment does not match this project", http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment provider error, please try again", err, http.StatusBadGateway)
	}
}
