// Package handler contains the Pub/Sub push handlers for the dispatch worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"farmstay/config"
	deliverycontext "farmstay/internal/delivery/context"
	"farmstay/internal/domain/constants"
	"farmstay/internal/domain/service"
	"farmstay/internal/infra/metrics"
	"farmstay/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// DispatchHandler handles Pub/Sub push messages carrying change events
type DispatchHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	dispatchSvc    usecase.DispatchUsecase
	metrics        *metrics.DispatchMetrics
}

// DispatchHandlerParams holds dependencies for the DispatchHandler
type DispatchHandlerParams struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	DispatchSvc usecase.DispatchUsecase
	Metrics     *metrics.DispatchMetrics
}

// NewDispatchHandler creates a new Pub/Sub push handler
func NewDispatchHandler(params DispatchHandlerParams) *DispatchHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &DispatchHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		dispatchSvc:    params.DispatchSvc,
		metrics:        params.Metrics,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *DispatchHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse change event
	var event service.ChangeEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse change event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	// Update context with request_id and logger
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing change event",
		slog.String("event_type", string(event.Type)),
		slog.String("record_id", event.Key()),
	)

	started := time.Now()
	err = h.dispatch(ctx, &event)
	h.metrics.ObserveDuration(string(event.Type), time.Since(started))

	if err != nil {
		h.metrics.IncFailure(string(event.Type))
		reqLogger.Error("[Worker] Failed to process change event",
			slog.String("event_type", string(event.Type)),
			slog.String("record_id", event.Key()),
			slog.Any("error", err),
		)

		// Every dispatch error surfaces before anything was sent, so a
		// redelivery is safe. 503 asks Pub/Sub to try again.
		return c.NoContent(http.StatusServiceUnavailable)
	}

	h.metrics.IncSuccess(string(event.Type))
	reqLogger.Info("[Worker] Change event processed successfully",
		slog.String("event_type", string(event.Type)),
		slog.String("record_id", event.Key()),
	)

	return c.NoContent(http.StatusOK)
}

// dispatch routes the event to the matching dispatcher operation. Unknown or
// malformed envelopes are dropped rather than retried.
func (h *DispatchHandler) dispatch(ctx context.Context, event *service.ChangeEvent) error {
	switch event.Type {
	case service.EventBroadcastCreated:
		if event.Broadcast == nil {
			h.logger.Warn("[Worker] Broadcast event missing payload, dropping")

			return nil
		}

		return h.dispatchSvc.DispatchBroadcast(ctx, event.Broadcast)
	case service.EventBookingUpdated:
		if event.Booking == nil {
			h.logger.Warn("[Worker] Booking event missing payload, dropping")

			return nil
		}

		return h.dispatchSvc.DispatchBookingChange(ctx, event.Booking)
	case service.EventListingUpdated:
		if event.Listing == nil {
			h.logger.Warn("[Worker] Listing event missing payload, dropping")

			return nil
		}

		return h.dispatchSvc.DispatchListingChange(ctx, event.Listing)
	default:
		h.logger.Warn("[Worker] Unknown event type, dropping",
			slog.String("event_type", string(event.Type)),
		)

		return nil
	}
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *DispatchHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.ChangeEvent) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Construct the expected audience (the push endpoint URL)
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// Verify the token is from Google Pub/Sub
	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
