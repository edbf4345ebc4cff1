package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"smarthaus/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransferAmount = errors.New("invalid transfer amount")
	ErrInvalidAccountDetails = errors.New("invalid account details")
	ErrBeneficiaryNotFound   = errors.New("beneficiary account could not be resolved")
)

// TransferRequest is a payout instruction for an installer/contractor
// beneficiary.
type TransferRequest struct {
	ProjectID     string
	AccountName   string
	AccountNumber string
	BankCode      string
	Currency      string
	Amount        int64
	Reason        string
}

// TransferResult reports the gateway handles of an initiated payout.
type TransferResult struct {
	Reference     string
	TransferCode  string
	RecipientCode string
	AccountName   string
}

// ITransferUseCase pays project beneficiaries through the gateway:
// resolve account, create recipient, initiate transfer. Single attempt;
// gateway failures propagate as actionable errors.

type ITransferUseCase interface {
	PayBeneficiary(ctx context.Context, req TransferRequest) (TransferResult, error)
}

type TransferUseCase struct {
	projects interfaces.IProjectRepository
	gateway  interfaces.IPaymentGateway
}

var _ ITransferUseCase = (*TransferUseCase)(nil)

func NewTransferUseCase(projects interfaces.IProjectRepository, gateway interfaces.IPaymentGateway) *TransferUseCase {
	return &TransferUseCase{projects: projects, gateway: gateway}
}

func (u *TransferUseCase) PayBeneficiary(ctx context.Context, req TransferRequest) (TransferResult, error) {
	if u.gateway == nil {
		return TransferResult{}, ErrGatewayNotConfigured
	}
	if req.Amount <= 0 {
		return TransferResult{}, ErrInvalidTransferAmount
	}
	req.AccountNumber = strings.TrimSpace(req.AccountNumber)
	req.BankCode = strings.TrimSpace(req.BankCode)
	if req.AccountNumber == "" || req.BankCode == "" {
		return TransferResult{}, ErrInvalidAccountDetails
	}
	if req.Currency == "" {
		req.Currency = "NGN"
	}

	if projectID := strings.TrimSpace(req.ProjectID); projectID != "" {
		project, err := u.projects.GetByID(ctx, projectID)
		if err != nil {
			return TransferResult{}, err
		}
		if project.ID == "" {
			return TransferResult{}, ErrProjectNotFound
		}
	}

	log.Printf("[transfer][usecase] resolve start account=%s bank=%s", req.AccountNumber, req.BankCode)
	resolved, err := u.gateway.ResolveAccount(ctx, req.AccountNumber, req.BankCode)
	if err != nil {
		log.Printf("[transfer][usecase] resolve failed account=%s err=%v", req.AccountNumber, err)
		return TransferResult{}, fmt.Errorf("%w: %v", ErrBeneficiaryNotFound, err)
	}

	name := strings.TrimSpace(req.AccountName)
	if name == "" {
		name = resolved.AccountName
	}

	recipientCode, err := u.gateway.CreateRecipient(ctx, name, req.AccountNumber, req.BankCode, req.Currency)
	if err != nil {
		log.Printf("[transfer][usecase] create recipient failed account=%s err=%v", req.AccountNumber, err)
		return TransferResult{}, err
	}

	reference := "trf_" + uuid.NewString()
	transferCode, err := u.gateway.InitiateTransfer(ctx, recipientCode, req.Amount, req.Reason, reference)
	if err != nil {
		log.Printf("[transfer][usecase] initiate failed recipient=%s err=%v", recipientCode, err)
		return TransferResult{}, err
	}

	log.Printf("[transfer][usecase] transfer initiated reference=%s transfer_code=%s", reference, transferCode)
	return TransferResult{
		Reference:     reference,
		TransferCode:  transferCode,
		RecipientCode: recipientCode,
		AccountName:   resolved.AccountName,
	}, nil
}
