package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"farmstay/internal/delivery/http/response"
	"farmstay/internal/domain/entity"
	"farmstay/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// BroadcastHandler holds dependencies for broadcast-related handlers.
type BroadcastHandler struct {
	uc     usecase.BroadcastUsecase
	logger *slog.Logger
}

// NewBroadcastHandler is the constructor for BroadcastHandler.
func NewBroadcastHandler(uc usecase.BroadcastUsecase, logger *slog.Logger) *BroadcastHandler {
	return &BroadcastHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateBroadcastRequest represents the request body for creating a broadcast.
type CreateBroadcastRequest struct {
	Selector    string  `json:"selector" validate:"required"`
	RecipientID *string `json:"recipient_id,omitempty"`
	Title       string  `json:"title" validate:"required"`
	Body        string  `json:"body" validate:"required"`
}

// CreateBroadcast handles authoring a new broadcast.
func (h *BroadcastHandler) CreateBroadcast(c echo.Context) error {
	createdBy, ok := getUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateBroadcastRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid broadcast input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Selector, title and body are required")
	}

	input := usecase.CreateBroadcastInput{
		Selector: entity.RecipientSelector(req.Selector),
		Title:    req.Title,
		Body:     req.Body,
	}
	if req.RecipientID != nil {
		recipientID, parseErr := uuid.Parse(*req.RecipientID)
		if parseErr != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid recipient ID")
		}
		input.RecipientID = &recipientID
	}

	broadcast, err := h.uc.CreateBroadcast(c.Request().Context(), createdBy, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, broadcast, "Broadcast created successfully")
}

// ListBroadcasts handles retrieving the communication history.
func (h *BroadcastHandler) ListBroadcasts(c echo.Context) error {
	limit := 0
	offset := 0

	if limitStr := c.QueryParam("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	if offsetStr := c.QueryParam("offset"); offsetStr != "" {
		if parsedOffset, err := strconv.Atoi(offsetStr); err == nil && parsedOffset >= 0 {
			offset = parsedOffset
		}
	}

	broadcasts, err := h.uc.ListBroadcasts(c.Request().Context(), limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, broadcasts, "Broadcast history retrieved successfully")
}

// getUserID extracts the authenticated user ID from the context.
func getUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("userID").(uuid.UUID)

	return userID, ok
}
