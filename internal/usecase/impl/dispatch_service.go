// Package impl provides the concrete implementations of the usecase interfaces.
package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"farmstay/config"
	"farmstay/internal/domain/entity"
	"farmstay/internal/domain/repository"
	"farmstay/internal/domain/service"
	"farmstay/internal/usecase"

	"github.com/google/uuid"
)

const (
	// Firebase caps multicast sends at 500 tokens per call
	defaultDispatchBatchSize = 500

	deliveryStatusSent   = "sent"
	deliveryStatusFailed = "failed"
)

// errNoPushTransport is returned before any claim or lookup when the push
// service was never configured, keeping the event redeliverable.
var errNoPushTransport = errors.New("push transport is not configured")

// bookingStatusMessages maps a booking lifecycle transition to its push content.
var bookingStatusMessages = map[entity.BookingStatus]struct{ Title, Body string }{
	entity.BookingConfirmed: {"Booking Confirmed", "Your booking has been confirmed. We look forward to hosting you!"},
	entity.BookingCancelled: {"Booking Cancelled", "Your booking has been cancelled. Contact support if this is unexpected."},
	entity.BookingCompleted: {"Booking Completed", "Your stay is complete. Thank you for booking with us!"},
}

// paymentStatusMessages maps a payment transition to its push content. Used only
// when the booking status itself did not change.
var paymentStatusMessages = map[entity.PaymentStatus]struct{ Title, Body string }{
	entity.PaymentPaid:     {"Payment Received", "We have received your payment. Your booking is all set."},
	entity.PaymentFailed:   {"Payment Failed", "Your payment could not be processed. Please update your payment method."},
	entity.PaymentRefunded: {"Payment Refunded", "Your payment has been refunded. It may take a few days to appear."},
}

type dispatchService struct {
	broadcastRepo repository.BroadcastRepository
	userRepo      repository.UserRepository
	deviceRepo    repository.DeviceRepository
	pushSvc       service.PushService
	batchSize     int
	logger        *slog.Logger
}

// NewDispatchService creates the dispatcher behind the push worker.
func NewDispatchService(
	cfg *config.Config,
	broadcastRepo repository.BroadcastRepository,
	userRepo repository.UserRepository,
	deviceRepo repository.DeviceRepository,
	pushSvc service.PushService,
	logger *slog.Logger,
) usecase.DispatchUsecase {
	batchSize := defaultDispatchBatchSize
	if cfg.Dispatch != nil && cfg.Dispatch.BatchSize > 0 && cfg.Dispatch.BatchSize <= defaultDispatchBatchSize {
		batchSize = cfg.Dispatch.BatchSize
	}

	return &dispatchService{
		broadcastRepo: broadcastRepo,
		userRepo:      userRepo,
		deviceRepo:    deviceRepo,
		pushSvc:       pushSvc,
		batchSize:     batchSize,
		logger:        logger,
	}
}

// DispatchBroadcast fans a broadcast out to its recipient set and writes the
// outcome back onto the record. A non-nil return means nothing was sent yet and
// the event is safe to redeliver; once the claim succeeds every failure is
// absorbed into the outcome fields instead, so redelivery never double-sends.
func (s *dispatchService) DispatchBroadcast(ctx context.Context, event *service.BroadcastCreatedEvent) error {
	// Checked before the claim: without a transport nothing can be sent, and
	// the event must stay redeliverable.
	if s.pushSvc == nil {
		return errNoPushTransport
	}

	broadcastID, err := uuid.Parse(event.BroadcastID)
	if err != nil {
		s.logger.Warn("dispatch: unparseable broadcast id, dropping event",
			slog.String("broadcast_id", event.BroadcastID))

		return nil
	}

	broadcast, err := s.broadcastRepo.FindBroadcastByID(ctx, broadcastID)
	if err != nil {
		if errors.Is(err, repository.ErrBroadcastNotFound) {
			s.logger.Warn("dispatch: broadcast record missing, dropping event",
				slog.String("broadcast_id", event.BroadcastID))

			return nil
		}

		return fmt.Errorf("failed to load broadcast: %w", err)
	}

	if broadcast.Processed() {
		s.logger.Info("dispatch: broadcast already processed, skipping",
			slog.String("broadcast_id", event.BroadcastID))

		return nil
	}

	// Claim before sending. Losing the claim means another delivery of this
	// event got here first.
	if err := s.broadcastRepo.ClaimForDelivery(ctx, broadcastID); err != nil {
		if errors.Is(err, repository.ErrBroadcastAlreadyProcessed) {
			s.logger.Info("dispatch: broadcast claimed by another delivery, skipping",
				slog.String("broadcast_id", event.BroadcastID))

			return nil
		}

		return fmt.Errorf("failed to claim broadcast: %w", err)
	}

	// Resolve recipients
	recipients, err := s.userRepo.FindBySelector(ctx, broadcast.Selector, broadcast.RecipientID)
	if err != nil {
		s.recordFailure(ctx, broadcastID, fmt.Sprintf("recipient resolution failed: %v", err))

		return nil
	}

	if len(recipients) == 0 {
		s.logger.Info("dispatch: broadcast resolved to zero recipients",
			slog.String("broadcast_id", event.BroadcastID),
			slog.String("selector", string(broadcast.Selector)))
		s.recordDelivered(ctx, broadcastID, 0, 0)

		return nil
	}

	userIDs := make([]uuid.UUID, 0, len(recipients))
	for _, user := range recipients {
		userIDs = append(userIDs, user.ID)
	}

	devices, err := s.deviceRepo.FindActiveDevicesForUsers(ctx, userIDs)
	if err != nil {
		s.recordFailure(ctx, broadcastID, fmt.Sprintf("device lookup failed: %v", err))

		return nil
	}

	// Users without a registered token contribute nothing to either count
	if len(devices) == 0 {
		s.logger.Info("dispatch: no active devices for broadcast recipients",
			slog.String("broadcast_id", event.BroadcastID))
		s.recordDelivered(ctx, broadcastID, 0, 0)

		return nil
	}

	tokens := make([]string, 0, len(devices))
	deviceByToken := make(map[string]*entity.UserDevice, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
		deviceByToken[device.FCMToken] = device
	}

	data := map[string]string{
		"communication_id": broadcast.ID.String(),
		"type":             "general",
	}

	var (
		totalSent      int
		totalFailed    int
		batchesSucceed int
		lastSendErr    error
		invalidTokens  []string
		deliveryLogs   []*entity.DeliveryLog
	)

	for i := 0; i < len(tokens); i += s.batchSize {
		end := min(i+s.batchSize, len(tokens))
		batch := tokens[i:end]

		successCount, failureCount, batchInvalid, err := s.pushSvc.SendBatch(ctx, batch, broadcast.Title, broadcast.Body, data)
		if err != nil {
			s.logger.Error("dispatch: batch send failed",
				slog.String("broadcast_id", event.BroadcastID),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", err))
			totalFailed += len(batch)
			lastSendErr = err
			deliveryLogs = append(deliveryLogs, s.buildDeliveryLogs(broadcastID, batch, deviceByToken, nil, err.Error())...)

			continue
		}

		batchesSucceed++
		totalSent += successCount
		totalFailed += failureCount
		invalidTokens = append(invalidTokens, batchInvalid...)
		deliveryLogs = append(deliveryLogs, s.buildDeliveryLogs(broadcastID, batch, deviceByToken, batchInvalid, "")...)
	}

	if len(deliveryLogs) > 0 {
		if err := s.broadcastRepo.BatchCreateDeliveryLogs(ctx, deliveryLogs); err != nil {
			s.logger.Error("dispatch: failed to persist delivery logs",
				slog.String("broadcast_id", event.BroadcastID),
				slog.Any("error", err))
		}
	}

	s.deactivateInvalidDevices(ctx, invalidTokens, deviceByToken)

	if batchesSucceed == 0 && lastSendErr != nil {
		s.recordFailure(ctx, broadcastID, lastSendErr.Error())

		return nil
	}

	s.recordDelivered(ctx, broadcastID, totalSent, totalFailed)
	s.logger.Info("dispatch: broadcast delivered",
		slog.String("broadcast_id", event.BroadcastID),
		slog.Int("success_count", totalSent),
		slog.Int("failure_count", totalFailed))

	return nil
}

// DispatchBookingChange notifies the guest of a booking-status or
// payment-status transition. Fire and forget: any failure here is logged and
// dropped, never retried.
func (s *dispatchService) DispatchBookingChange(ctx context.Context, event *service.BookingUpdatedEvent) error {
	bookingChanged := event.Before.BookingStatus != event.After.BookingStatus
	paymentChanged := event.Before.PaymentStatus != event.After.PaymentStatus

	if !bookingChanged && !paymentChanged {
		s.logger.Debug("dispatch: booking update changed no status fields, skipping",
			slog.String("booking_id", event.BookingID))

		return nil
	}

	// Booking status wins when both changed, so the guest gets one push per update
	var title, body string
	if bookingChanged {
		msg, ok := bookingStatusMessages[entity.BookingStatus(event.After.BookingStatus)]
		if !ok {
			s.logger.Warn("dispatch: no message for booking status, skipping",
				slog.String("booking_id", event.BookingID),
				slog.String("booking_status", event.After.BookingStatus))

			return nil
		}
		title, body = msg.Title, msg.Body
	} else {
		msg, ok := paymentStatusMessages[entity.PaymentStatus(event.After.PaymentStatus)]
		if !ok {
			s.logger.Warn("dispatch: no message for payment status, skipping",
				slog.String("booking_id", event.BookingID),
				slog.String("payment_status", event.After.PaymentStatus))

			return nil
		}
		title, body = msg.Title, msg.Body
	}

	data := map[string]string{
		"booking_id":     event.BookingID,
		"type":           "booking_update",
		"booking_status": event.After.BookingStatus,
		"payment_status": event.After.PaymentStatus,
	}

	return s.sendToUser(ctx, event.UserID, title, body, data)
}

// DispatchListingChange notifies the owner of a listing approval transition.
// Fire and forget, same as booking updates.
func (s *dispatchService) DispatchListingChange(ctx context.Context, event *service.ListingUpdatedEvent) error {
	if event.ApprovedBefore == event.ApprovedAfter {
		s.logger.Debug("dispatch: listing update left approval unchanged, skipping",
			slog.String("listing_id", event.ListingID))

		return nil
	}

	var title, body string
	if event.ApprovedAfter {
		title = "Listing Approved"
		body = fmt.Sprintf("Congratulations! Your listing %q has been approved and is now visible to guests.", event.ListingName)
	} else {
		title = "Listing Status Updated"
		body = fmt.Sprintf("The status of your listing %q has been updated. Check the app for details.", event.ListingName)
	}

	data := map[string]string{
		"listing_id": event.ListingID,
		"type":       "listing_update",
		"approved":   fmt.Sprintf("%t", event.ApprovedAfter),
	}

	return s.sendToUser(ctx, event.OwnerID, title, body, data)
}

// sendToUser pushes one message to every active device of a single user.
// Repository errors are returned (nothing was sent, redelivery is safe);
// transport errors are logged and dropped.
func (s *dispatchService) sendToUser(ctx context.Context, rawUserID, title, body string, data map[string]string) error {
	if s.pushSvc == nil {
		return errNoPushTransport
	}

	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		s.logger.Warn("dispatch: unparseable user id, dropping event",
			slog.String("user_id", rawUserID))

		return nil
	}

	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to find active devices: %w", err)
	}

	if len(devices) == 0 {
		s.logger.Debug("dispatch: user has no active devices, skipping",
			slog.String("user_id", rawUserID))

		return nil
	}

	tokens := make([]string, 0, len(devices))
	deviceByToken := make(map[string]*entity.UserDevice, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
		deviceByToken[device.FCMToken] = device
	}

	successCount, failureCount, invalidTokens, err := s.pushSvc.SendBatch(ctx, tokens, title, body, data)
	if err != nil {
		s.logger.Error("dispatch: user push failed",
			slog.String("user_id", rawUserID),
			slog.Any("error", err))

		return nil
	}

	s.deactivateInvalidDevices(ctx, invalidTokens, deviceByToken)

	s.logger.Info("dispatch: user notified",
		slog.String("user_id", rawUserID),
		slog.Int("success_count", successCount),
		slog.Int("failure_count", failureCount))

	return nil
}

func (s *dispatchService) buildDeliveryLogs(
	broadcastID uuid.UUID,
	batch []string,
	deviceByToken map[string]*entity.UserDevice,
	invalidTokens []string,
	batchError string,
) []*entity.DeliveryLog {
	invalid := make(map[string]struct{}, len(invalidTokens))
	for _, token := range invalidTokens {
		invalid[token] = struct{}{}
	}

	logs := make([]*entity.DeliveryLog, 0, len(batch))
	for _, token := range batch {
		device, ok := deviceByToken[token]
		if !ok {
			continue
		}

		status := deliveryStatusSent
		errorMsg := ""
		switch {
		case batchError != "":
			status = deliveryStatusFailed
			errorMsg = batchError
		default:
			if _, bad := invalid[token]; bad {
				status = deliveryStatusFailed
				errorMsg = "invalid or unregistered token"
			}
		}

		logs = append(logs, &entity.DeliveryLog{
			ID:           uuid.New(),
			BroadcastID:  broadcastID,
			UserID:       device.UserID,
			DeviceID:     device.ID,
			Status:       status,
			ErrorMessage: errorMsg,
			SentAt:       time.Now(),
		})
	}

	return logs
}

// deactivateInvalidDevices retires tokens the transport reported as dead so
// later fan-outs stop targeting them.
func (s *dispatchService) deactivateInvalidDevices(ctx context.Context, invalidTokens []string, deviceByToken map[string]*entity.UserDevice) {
	for _, token := range invalidTokens {
		device, ok := deviceByToken[token]
		if !ok {
			continue
		}

		if err := s.deviceRepo.DeactivateDevice(ctx, device.ID); err != nil {
			s.logger.Error("dispatch: failed to deactivate invalid device",
				slog.String("device_id", device.ID.String()),
				slog.Any("error", err))
		}
	}
}

func (s *dispatchService) recordDelivered(ctx context.Context, id uuid.UUID, successCount, failureCount int) {
	if err := s.broadcastRepo.MarkDelivered(ctx, id, successCount, failureCount); err != nil {
		s.logger.Error("dispatch: failed to record broadcast outcome",
			slog.String("broadcast_id", id.String()),
			slog.Any("error", err))
	}
}

func (s *dispatchService) recordFailure(ctx context.Context, id uuid.UUID, message string) {
	if err := s.broadcastRepo.MarkFailed(ctx, id, message); err != nil {
		s.logger.Error("dispatch: failed to record broadcast failure",
			slog.String("broadcast_id", id.String()),
			slog.Any("error", err))
	}
}
