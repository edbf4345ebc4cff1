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

var errInvalidTransferPayload = pkg.NewDomainErrorSimple("INVALID_TRANSFER_INPUT", "Invalid transfer payload", http.StatusBadRequest)

// TransferHandler handles installer/contractor payout requests.

type TransferHandler struct {
	usecase usecase.ITransferUseCase
}

func NewTransferHandler(uc usecase.ITransferUseCase) *TransferHandler {
	return &TransferHandler{usecase: uc}
}

// CreateTransfer resolves the beneficiary account and initiates a payout.
//
// @Summary      Pay a project beneficiary
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Param        payload  body  request.TransferCreateRequest  true  "Transfer"
// @Success      200  {object}  response.TransferResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /transfers [post]
func (h *TransferHandler) CreateTransfer(c *gin.Context) {
	var payload request.TransferCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTransferPayload.HTTPStatus, errInvalidTransferPayload.ToHTTPError())
		return
	}
	log.Printf("[transfer][handler] create start account=%s amount=%d", payload.AccountNumber, payload.Amount)

	result, err := h.usecase.PayBeneficiary(c.Request.Context(), usecase.TransferRequest{
		ProjectID:     payload.ProjectID,
		AccountName:   payload.AccountName,
		AccountNumber: payload.AccountNumber,
		BankCode:      payload.BankCode,
		Currency:      payload.Currency,
		Amount:        payload.Amount,
		Reason:        payload.Reason,
	})
	if err != nil {
		log.Printf("[transfer][handler] create failed account=%s err=%v", payload.AccountNumber, err)
		appErr := mapTransferError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[transfer][handler] create success reference=%s", result.Reference)

	c.JSON(http.StatusOK, response.FromTransfer(result))
}

func mapTransferError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTransferAmount), errors.Is(err, usecase.ErrInvalidAccountDetails):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBeneficiaryNotFound):
		return pkg.NewDomainErrorSimple("BENEFICIARY_NOT_FOUND", "Beneficiary account could not be resolved", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment provider error, please try again", err, http.StatusBadGateway)
	}
}
