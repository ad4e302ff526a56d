package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"farmstay/internal/usecase"

	"github.com/labstack/echo/v4"
)

// PendingHandler streams pending-review counts to admin dashboards.
type PendingHandler struct {
	uc     usecase.PendingUsecase
	logger *slog.Logger
}

// NewPendingHandler is the constructor for PendingHandler.
func NewPendingHandler(uc usecase.PendingUsecase, logger *slog.Logger) *PendingHandler {
	return &PendingHandler{
		uc:     uc,
		logger: logger,
	}
}

// StreamPendingCounts serves a Server-Sent Events stream. The first event is
// the current snapshot, and subsequent events follow every count change. The
// stream ends when the client disconnects.
func (h *PendingHandler) StreamPendingCounts(c echo.Context) error {
	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set(echo.HeaderCacheControl, "no-cache")
	w.Header().Set(echo.HeaderConnection, "keep-alive")
	w.WriteHeader(http.StatusOK)

	ctx := c.Request().Context()
	counts, unsubscribe := h.uc.Subscribe(ctx)
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return nil
		case snapshot, ok := <-counts:
			if !ok {
				return nil
			}

			payload, err := json.Marshal(snapshot)
			if err != nil {
				h.logger.Error("Failed to encode pending counts", "error", err.Error())

				continue
			}

			if _, err := fmt.Fprintf(w, "event: pending\ndata: %s\n\n", payload); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}
