// Package service defines domain-level service contracts implemented by the
// infrastructure layer.
package service

import (
	"context"
)

// PushService defines the interface for the push-notification transport.
type PushService interface {
	// SendBatch sends a push notification to multiple device tokens in one
	// transport call. Returns success count, failure count, and the subset of
	// tokens the transport reported as invalid or unregistered.
	SendBatch(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)
}
