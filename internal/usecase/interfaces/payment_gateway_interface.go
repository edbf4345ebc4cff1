package interfaces

import "context"

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/payment_gateway_interface.go -package=mock_interfaces

// PaymentInit is an initialized checkout session at the gateway.
type PaymentInit struct {
	AuthorizationURL string
	AccessCode       string
	Reference        string
}

// PaymentVerification is the gateway's authoritative view of a transaction.
// Amount is in minor currency units (x100). Metadata echoes whatever the
// caller attached on Initialize; settlement relies on it to recover the
// project/milestone scope.
type PaymentVerification struct {
	Status    string
	Reference string
	Amount    int64
	Currency  string
	Metadata  map[string]string
}

// ResolvedAccount is a bank account verified by the gateway.
type ResolvedAccount struct {
	AccountNumber string
	AccountName   string
}

// IPaymentGateway abstracts the external payment provider.
//
// Callers must treat a payment as settled only when Verify reports
// status "success", and must independently check that the echoed metadata
// matches the scope being acted upon. The reference alone is not proof.
type IPaymentGateway interface {
	Initialize(ctx context.Context, email string, amount int64, reference, callbackURL string, metadata map[string]string) (PaymentInit, error)
	Verify(ctx context.Context, reference string) (PaymentVerification, error)
	ResolveAccount(ctx context.Context, accountNumber, bankCode string) (ResolvedAccount, error)
	CreateRecipient(ctx context.Context, name, accountNumber, bankCode, currency string) (string, error)
	InitiateTransfer(ctx context.Context, recipientCode string, amount int64, reason, reference string) (string, error)
}
