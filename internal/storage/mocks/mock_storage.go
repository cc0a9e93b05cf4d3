// Package mocks provides a mock implementation of the Storage interface for testing.
package mocks

import (
	"context"
	"time"
)

// MockStorage is a mock implementation of storage.Storage.
type MockStorage struct {
	GetPresignedURLFunc    func(ctx context.Context, key string, expiry time.Duration) (string, error)
	GetPresignedPutURLFunc func(ctx context.Context, key, contentType string, expiry time.Duration) (string, error)
}

func (m *MockStorage) GetPresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if m.GetPresignedURLFunc != nil {
		return m.GetPresignedURLFunc(ctx, key, expiry)
	}
	return "", nil
}

func (m *MockStorage) GetPresignedPutURL(ctx context.Context, key, contentType string, expiry time.Duration) (string, error) {
	if m.GetPresignedPutURLFunc != nil {
		return m.GetPresignedPutURLFunc(ctx, key, contentType, expiry)
	}
	return "", nil
}
