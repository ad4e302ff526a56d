package handler

import (
	"log/slog"
	"net/http"

	"farmstay/internal/delivery/http/response"
	"farmstay/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// NotificationHandler holds dependencies for manual push handlers.
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler.
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// ManualSendRequest represents the request body for a manual push.
type ManualSendRequest struct {
	Title  string            `json:"title" validate:"required"`
	Body   string            `json:"body" validate:"required"`
	Tokens []string          `json:"tokens" validate:"required,min=1"`
	Data   map[string]string `json:"data,omitempty"`
}

// SendManual handles an admin sending a push to an explicit token list.
func (h *NotificationHandler) SendManual(c echo.Context) error {
	caller := callerFromContext(c)

	var req ManualSendRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}

	result, err := h.uc.SendManual(c.Request().Context(), caller, usecase.ManualSendInput{
		Title:  req.Title,
		Body:   req.Body,
		Tokens: req.Tokens,
		Data:   req.Data,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Notification sent")
}

// callerFromContext rebuilds the authenticated principal from context values
// set by the auth middleware.
func callerFromContext(c echo.Context) usecase.Caller {
	caller := usecase.Caller{}

	if userID, ok := c.Get("userID").(uuid.UUID); ok {
		caller.UserID = userID
		caller.Authenticated = true
	}
	if roles, ok := c.Get("roles").([]string); ok {
		caller.Roles = roles
	}

	return caller
}
