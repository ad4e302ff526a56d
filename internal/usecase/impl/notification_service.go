package impl

import (
	"context"
	"log/slog"

	"farmstay/internal/domain/entity"
	domainerrors "farmstay/internal/domain/errors"
	"farmstay/internal/domain/service"
	"farmstay/internal/usecase"
)

// Firebase multicast token limit per call
const maxManualTokens = 500

type notificationService struct {
	pushSvc service.PushService
	logger  *slog.Logger
}

// NewNotificationService creates the manual-push service instance.
func NewNotificationService(pushSvc service.PushService, logger *slog.Logger) usecase.NotificationUsecase {
	return &notificationService{
		pushSvc: pushSvc,
		logger:  logger,
	}
}

// SendManual sends an out-of-band push to an explicit token list. The checks
// run in a fixed order: authentication, then the admin role, then input
// validation, so a non-admin with a bad payload sees the authorization error.
func (s *notificationService) SendManual(ctx context.Context, caller usecase.Caller, input usecase.ManualSendInput) (*usecase.ManualSendResult, error) {
	if !caller.Authenticated {
		return nil, domainerrors.ErrUnauthenticated
	}
	if !entity.RolesFromStrings(caller.Roles).Contains(entity.RoleAdmin) {
		return nil, domainerrors.ErrPermissionDenied
	}

	if input.Title == "" || input.Body == "" {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("title and body are required")
	}
	if len(input.Tokens) == 0 {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("at least one token is required")
	}
	if len(input.Tokens) > maxManualTokens {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("too many tokens in one request")
	}

	// Firebase is optional in config; without it the transport is absent
	if s.pushSvc == nil {
		return nil, domainerrors.ErrPushUnavailable.WithDetails("push transport is not configured")
	}

	successCount, failureCount, _, err := s.pushSvc.SendBatch(ctx, input.Tokens, input.Title, input.Body, input.Data)
	if err != nil {
		s.logger.Error("manual push failed",
			slog.String("admin_id", caller.UserID.String()),
			slog.Int("token_count", len(input.Tokens)),
			slog.Any("error", err))

		return nil, domainerrors.ErrPushUnavailable.WithDetails(err.Error())
	}

	s.logger.Info("manual push sent",
		slog.String("admin_id", caller.UserID.String()),
		slog.Int("success_count", successCount),
		slog.Int("failure_count", failureCount))

	return &usecase.ManualSendResult{
		Success:     failureCount == 0,
		SentCount:   successCount,
		FailedCount: failureCount,
	}, nil
}
