package handler

import (
	"log/slog"
	"net/http"

	"farmstay/internal/delivery/http/response"
	"farmstay/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ListingHandler holds dependencies for listing-related handlers.
type ListingHandler struct {
	uc     usecase.ListingUsecase
	logger *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler.
func NewListingHandler(uc usecase.ListingUsecase, logger *slog.Logger) *ListingHandler {
	return &ListingHandler{
		uc:     uc,
		logger: logger,
	}
}

// SetListingApprovalRequest represents the request body for an approval change.
type SetListingApprovalRequest struct {
	Approved *bool `json:"approved" validate:"required"`
}

// SetListingApproval handles an admin approving or revoking a listing.
func (h *ListingHandler) SetListingApproval(c echo.Context) error {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	var req SetListingApprovalRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid approval input")
	}

	if req.Approved == nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "approved is required")
	}

	listing, err := h.uc.SetListingApproval(c.Request().Context(), listingID, *req.Approved)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listing, "Listing approval updated successfully")
}
