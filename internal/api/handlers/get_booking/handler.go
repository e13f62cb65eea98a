package get_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BKT-BookingService/internal/api/handlers"
	"github.com/m04kA/BKT-BookingService/internal/service/bookings"
)

const (
	msgInvalidRefID = "некорректный референс бронирования"
	msgNotFound     = "бронирование не найдено"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{refId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	refID := vars["refId"]

	if refID == "" {
		h.logger.Warn("GET /bookings/{refId} - Missing ref ID")
		handlers.RespondBadRequest(w, msgInvalidRefID)
		return
	}

	booking, err := h.service.GetByRefID(r.Context(), refID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{refId} - Booking not found: ref_id=%s", refID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings/{refId} - Invalid ref ID: %s", refID)
			handlers.RespondBadRequest(w, msgInvalidRefID)

		default:
			h.logger.Error("GET /bookings/{refId} - Failed to get booking: ref_id=%s, error=%v", refID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{refId} - Booking retrieved successfully: ref_id=%s", refID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(booking))
}
