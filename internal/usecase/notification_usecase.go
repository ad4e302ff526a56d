package usecase

import (
	"context"

	"github.com/google/uuid"
)

// Caller identifies the authenticated principal invoking a use case.
type Caller struct {
	UserID        uuid.UUID
	Roles         []string
	Authenticated bool
}

// ManualSendInput carries the fields of a manual push request.
type ManualSendInput struct {
	Title  string            `json:"title"`
	Body   string            `json:"body"`
	Tokens []string          `json:"tokens"`
	Data   map[string]string `json:"data,omitempty"`
}

// ManualSendResult reports the transport outcome of a manual push.
type ManualSendResult struct {
	Success     bool `json:"success"`
	SentCount   int  `json:"sent_count"`
	FailedCount int  `json:"failed_count"`
}

// NotificationUsecase defines the out-of-band manual push operation.
type NotificationUsecase interface {
	// SendManual sends a push to an explicit token list. The caller must be an
	// authenticated admin; authorization is checked before validation and both
	// are checked before any transport call.
	SendManual(ctx context.Context, caller Caller, input ManualSendInput) (*ManualSendResult, error)
}
