// Package mocks provides a mock implementation of the Sender interface for testing.
package mocks

import (
	"context"

	"skillswap/internal/email"
)

// MockSender is a mock implementation of email.Sender.
type MockSender struct {
	SendFunc func(ctx context.Context, subject, htmlContent string, recipients []email.Recipient) error
}

func (m *MockSender) Send(ctx context.Context, subject, htmlContent string, recipients []email.Recipient) error {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, subject, htmlContent, recipients)
	}
	return nil
}
