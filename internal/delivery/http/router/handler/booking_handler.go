package handler

import (
	"log/slog"
	"net/http"

	"farmstay/internal/delivery/http/response"
	"farmstay/internal/domain/entity"
	"farmstay/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// BookingHandler holds dependencies for booking-related handlers.
type BookingHandler struct {
	uc     usecase.BookingUsecase
	logger *slog.Logger
}

// NewBookingHandler is the constructor for BookingHandler.
func NewBookingHandler(uc usecase.BookingUsecase, logger *slog.Logger) *BookingHandler {
	return &BookingHandler{
		uc:     uc,
		logger: logger,
	}
}

// UpdateBookingStatusRequest represents the request body for a status update.
// At least one of the two fields must be set.
type UpdateBookingStatusRequest struct {
	BookingStatus *string `json:"booking_status,omitempty"`
	PaymentStatus *string `json:"payment_status,omitempty"`
}

// UpdateBookingStatus handles an admin updating a booking's status fields.
func (h *BookingHandler) UpdateBookingStatus(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid booking ID")
	}

	var req UpdateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid booking status input")
	}

	input := usecase.UpdateBookingStatusInput{}
	if req.BookingStatus != nil {
		status := entity.BookingStatus(*req.BookingStatus)
		input.BookingStatus = &status
	}
	if req.PaymentStatus != nil {
		status := entity.PaymentStatus(*req.PaymentStatus)
		input.PaymentStatus = &status
	}

	booking, err := h.uc.UpdateBookingStatus(c.Request().Context(), bookingID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, booking, "Booking status updated successfully")
}
