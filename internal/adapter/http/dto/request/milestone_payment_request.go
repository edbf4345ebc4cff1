package request

// MilestonePayRequest starts a checkout session for a milestone. The payer
// email is forwarded to the gateway for the hosted checkout page.
type MilestonePayRequest struct {
	Email string `json:"email" binding:"required"`
}

// TransferCreateRequest is a payout instruction for an installer or
// contractor beneficiary. Amount is in whole currency units.
type TransferCreateRequest struct {
	ProjectID     string `json:"project_id"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number" binding:"required"`
	BankCode      string `json:"bank_code" binding:"required"`
	Currency      string `json:"currency"`
	Amount        int64  `json:"amount" binding:"required"`
	Reason        string `json:"reason"`
}
