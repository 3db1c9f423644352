package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Mailer delivers a rendered message to the shop owner.
type Mailer interface {
	Send(ctx context.Context, subject, html string) error
}

// ResendMailer posts through the Resend HTTP API. With no API key or
// recipient configured it logs the message and reports success, which keeps
// local development mail-free.
type ResendMailer struct {
	APIKey string
	From   string
	To     string
	Client *http.Client
}

func NewResendMailer(apiKey, from, to string) *ResendMailer {
	return &ResendMailer{
		APIKey: apiKey,
		From:   from,
		To:     to,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (m *ResendMailer) Send(ctx context.Context, subject, html string) error {
	if m.APIKey == "" || m.To == "" {
		log.Printf("[mail] not configured, dropping %q", subject)
		return nil
	}

	payload := map[string]any{
		"from":    m.From,
		"to":      m.To,
		"subject": subject,
		"html":    html,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		"https://api.resend.com/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.Client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("resend api error: status %d", resp.StatusCode)
	}
	log.Printf("[mail] sent %q to %s", subject, m.To)
	return nil
}
