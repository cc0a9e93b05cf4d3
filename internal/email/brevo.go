// Package email sends transactional email through the Brevo HTTP API.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultBaseURL = "https://api.brevo.com/v3"
	sendTimeout    = 10 * time.Second
)

// Sender delivers email to a set of recipients.
type Sender interface {
	Send(ctx context.Context, subject, htmlContent string, recipients []Recipient) error
}

// Recipient is a single email recipient.
type Recipient struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

// Brevo is a Sender backed by the Brevo /smtp/email endpoint. An empty API
// key turns it into a no-op so local environments need no account.
type Brevo struct {
	apiKey      string
	senderName  string
	senderEmail string
	baseURL     string
	httpClient  *http.Client
}

// Ensure Brevo implements Sender interface
var _ Sender = (*Brevo)(nil)

// NewBrevo creates a Brevo email sender.
func NewBrevo(apiKey, senderName, senderEmail string) *Brevo {
	return &Brevo{
		apiKey:      apiKey,
		senderName:  senderName,
		senderEmail: senderEmail,
		baseURL:     defaultBaseURL,
		httpClient:  &http.Client{Timeout: sendTimeout},
	}
}

type sendRequest struct {
	Sender      Recipient   `json:"sender"`
	To          []Recipient `json:"to"`
	Subject     string      `json:"subject"`
	HTMLContent string      `json:"htmlContent"`
}

// Send delivers an email to the given recipients.
func (b *Brevo) Send(ctx context.Context, subject, htmlContent string, recipients []Recipient) error {
	if b.apiKey == "" {
		logrus.Debug("Email sending disabled, skipping")
		return nil
	}
	if len(recipients) == 0 {
		return nil
	}

	payload := sendRequest{
		Sender:      Recipient{Name: b.senderName, Email: b.senderEmail},
		To:          recipients,
		Subject:     subject,
		HTMLContent: htmlContent,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+"/smtp/email", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("api-key", b.apiKey)

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("brevo returned %d: %s", resp.StatusCode, detail)
	}

	return nil
}
