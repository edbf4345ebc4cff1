package response

import (
	"smarthaus/internal/domain/entities"
	"smarthaus/internal/usecase"
	"smarthaus/internal/usecase/interfaces"
)

// PaymentInitResponse hands the hosted checkout handle back to the UI.
type PaymentInitResponse struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code,omitempty"`
	Reference        string `json:"reference"`
}

func FromPaymentInit(p interfaces.PaymentInit) PaymentInitResponse {
	return PaymentInitResponse{
		AuthorizationURL: p.AuthorizationURL,
		AccessCode:       p.AccessCode,
		Reference:        p.Reference,
	}
}

// SettlementEffectResponse reports one side effect outcome of a settlement.
type SettlementEffectResponse struct {
	Effect string `json:"effect"`
	OK     bool   `json:"ok"`
	Error  string `json:"error,omitempty"`
}

// SettlementResponse summarizes a verified payment callback.
type SettlementResponse struct {
	Milestone      MilestoneResponse          `json:"milestone"`
	AlreadySettled bool                       `json:"already_settled"`
	Effects        []SettlementEffectResponse `json:"effects,omitempty"`
}

func FromSettlement(r usecase.SettlementResult) SettlementResponse {
	effects := make([]SettlementEffectResponse, 0, len(r.Effects))
	for _, e := range r.Effects {
		effects = append(effects, SettlementEffectResponse{
			Effect: string(e.Effect),
			OK:     e.OK,
			Error:  e.Error,
		})
	}
	return SettlementResponse{
		Milestone:      FromMilestone(r.Milestone),
		AlreadySettled: r.AlreadySettled,
		Effects:        effects,
	}
}

// TransferResponse reports an initiated payout.
type TransferResponse struct {
	Reference     string `json:"reference"`
	TransferCode  string `json:"transfer_code"`
	RecipientCode string `json:"recipient_code"`
	AccountName   string `json:"account_name,omitempty"`
}

func FromTransfer(r usecase.TransferResult) TransferResponse {
	return TransferResponse{
		Reference:     r.Reference,
		TransferCode:  r.TransferCode,
		RecipientCode: r.RecipientCode,
		AccountName:   r.AccountName,
	}
}

// ShipmentResponse is the device shipment ledger read model.
type ShipmentResponse struct {
	ID        string                  `json:"id"`
	ProjectID string                  `json:"project_id"`
	Status    string                  `json:"status"`
	Location  string                  `json:"location,omitempty"`
	Items     []entities.ShipmentItem `json:"items"`
}

func FromShipment(s entities.DeviceShipment) ShipmentResponse {
	return ShipmentResponse{
		ID:        s.ID,
		ProjectID: s.ProjectID,
		Status:    string(s.Status),
		Location:  s.Location,
		Items:     s.Items.Data(),
	}
}
