package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"smarthaus/internal/usecase/interfaces"
)

var ErrMissingPaystackSecretKey = errors.New("missing PAYSTACK_SECRET_KEY")

const defaultBaseURL = "https://api.paystack.co"

// PaystackGateway talks to the Paystack REST API. Amounts cross the wire in
// minor currency units (x100); the rest of the system works in whole units.
type PaystackGateway struct {
	secretKey string
	baseURL   string
	client    *http.Client
	mockMode  bool
}

var _ interfaces.IPaymentGateway = (*PaystackGateway)(nil)

func NewPaystackGateway(secretKey, baseURL string) (*PaystackGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &PaystackGateway{mockMode: true}, nil
	}

	if secretKey == "" {
		log.Printf("[payment][gateway] missing PAYSTACK_SECRET_KEY")
		return nil, ErrMissingPaystackSecretKey
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	log.Printf("[payment][gateway] Paystack client initialized base_url=%s", baseURL)
	return &PaystackGateway{
		secretKey: secretKey,
		baseURL:   strings.TrimRight(baseURL, "/"),
		client:    &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// paystackEnvelope is the uniform Paystack response wrapper.
type paystackEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (g *PaystackGateway) Initialize(ctx context.Context, email string, amount int64, reference, callbackURL string, metadata map[string]string) (interfaces.PaymentInit, error) {
	if g.mockMode {
		log.Printf("[payment][gateway] mock initialize reference=%s amount=%d", reference, amount)
		return interfaces.PaymentInit{
			AuthorizationURL: "https://checkout.example.test/" + reference,
			AccessCode:       "mock_" + reference,
			Reference:        reference,
		}, nil
	}

	payload := map[string]any{
		"email":     email,
		"amount":    amount * 100,
		"reference": reference,
		"metadata":  metadata,
	}
	if callbackURL != "" {
		payload["callback_url"] = callbackURL
	}

	var data struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	}
	if err := g.post(ctx, "/transaction/initialize", payload, &data); err != nil {
		return interfaces.PaymentInit{}, err
	}
	log.Printf("[payment][gateway] initialize success reference=%s", data.Reference)
	return interfaces.PaymentInit{
		AuthorizationURL: data.AuthorizationURL,
		AccessCode:       data.AccessCode,
		Reference:        data.Reference,
	}, nil
}

func (g *PaystackGateway) Verify(ctx context.Context, reference string) (interfaces.PaymentVerification, error) {
	if g.mockMode {
		log.Printf("[payment][gateway] mock verify reference=%s", reference)
		return interfaces.PaymentVerification{Status: "success", Reference: reference, Currency: "NGN"}, nil
	}

	var data struct {
		Status    string            `json:"status"`
		Reference string            `json:"reference"`
		Amount    int64             `json:"amount"`
		Currency  string            `json:"currency"`
		Metadata  map[string]string `json:"metadata"`
	}
	if err := g.get(ctx, "/transaction/verify/"+url.PathEscape(reference), &data); err != nil {
		return interfaces.PaymentVerification{}, err
	}
	log.Printf("[payment][gateway] verify success reference=%s status=%s", data.Reference, data.Status)
	return interfaces.PaymentVerification{
		Status:    data.Status,
		Reference: data.Reference,
		Amount:    data.Amount,
		Currency:  data.Currency,
		Metadata:  data.Metadata,
	}, nil
}

func (g *PaystackGateway) ResolveAccount(ctx context.Context, accountNumber, bankCode string) (interfaces.ResolvedAccount, error) {
	if g.mockMode {
		return interfaces.ResolvedAccount{AccountNumber: accountNumber, AccountName: "Mock Beneficiary"}, nil
	}

	q := url.Values{}
	q.Set("account_number", accountNumber)
	q.Set("bank_code", bankCode)

	var data struct {
		AccountNumber string `json:"account_number"`
		AccountName   string `json:"account_name"`
	}
	if err := g.get(ctx, "/bank/resolve?"+q.Encode(), &data); err != nil {
		return interfaces.ResolvedAccount{}, err
	}
	return interfaces.ResolvedAccount{AccountNumber: data.AccountNumber, AccountName: data.AccountName}, nil
}

func (g *PaystackGateway) CreateRecipient(ctx context.Context, name, accountNumber, bankCode, currency string) (string, error) {
	if g.mockMode {
		return "RCP_mock", nil
	}

	payload := map[string]any{
		"type":           "nuban",
		"name":           name,
		"account_number": accountNumber,
		"bank_code":      bankCode,
		"currency":       currency,
	}
	var data struct {
		RecipientCode string `json:"recipient_code"`
	}
	if err := g.post(ctx, "/transferrecipient", payload, &data); err != nil {
		return "", err
	}
	return data.RecipientCode, nil
}

func (g *PaystackGateway) InitiateTransfer(ctx context.Context, recipientCode string, amount int64, reason, reference string) (string, error) {
	if g.mockMode {
		return "TRF_mock_" + reference, nil
	}

	payload := map[string]any{
		"source":    "balance",
		"amount":    amount * 100,
		"recipient": recipientCode,
		"reason":    reason,
		"reference": reference,
	}
	var data struct {
		TransferCode string `json:"transfer_code"`
	}
	if err := g.post(ctx, "/transfer", payload, &data); err != nil {
		return "", err
	}
	return data.TransferCode, nil
}

func (g *PaystackGateway) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	return g.do(ctx, http.MethodPost, path, bytes.NewReader(body), out)
}

func (g *PaystackGateway) get(ctx context.Context, path string, out any) error {
	return g.do(ctx, http.MethodGet, path, nil, out)
}

func (g *PaystackGateway) do(ctx context.Context, method, path string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("paystack request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var envelope paystackEnvelope
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return fmt.Errorf("decode response (%d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !envelope.Status {
		log.Printf("[payment][gateway] request failed path=%s status=%d message=%q", path, resp.StatusCode, envelope.Message)
		return fmt.Errorf("paystack error (%d): %s", resp.StatusCode, envelope.Message)
	}
	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "PAYSTACK_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
