package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/smtp"
	"time"

	"smarthaus/config"
	"smarthaus/internal/usecase/interfaces"
)

const resendEndpoint = "https://api.resend.com/emails"

// Mailer sends transactional email through the Resend API, with a plain SMTP
// fallback for self-hosted deployments.
type Mailer struct {
	cfg    config.EmailConfig
	client *http.Client
}

var _ interfaces.IMailer = (*Mailer)(nil)

func New(cfg config.EmailConfig) *Mailer {
	return &Mailer{cfg: cfg, client: &http.Client{Timeout: 15 * time.Second}}
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (m *Mailer) Send(ctx context.Context, to, subject, html string) error {
	if m.cfg.SMTPEnabled {
		return m.sendViaSMTP(to, subject, html)
	}
	return m.sendViaResend(ctx, to, subject, html)
}

func (m *Mailer) sendViaResend(ctx context.Context, to, subject, html string) error {
	body := resendRequest{
		From:    m.cfg.FromEmail,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendEndpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.cfg.ResendAPIKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("resend error (%d): %s", resp.StatusCode, string(b))
	}
	return nil
}

func (m *Mailer) sendViaSMTP(to, subject, html string) error {
	msg := []byte("From: " + m.cfg.FromEmail + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=UTF-8\r\n" +
		"\r\n" + html + "\r\n")

	addr := m.cfg.SMTPHost + ":" + m.cfg.SMTPPort
	auth := smtp.PlainAuth("", m.cfg.SMTPUser, m.cfg.SMTPPassword, m.cfg.SMTPHost)
	if err := smtp.SendMail(addr, auth, m.cfg.FromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
