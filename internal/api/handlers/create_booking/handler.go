package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/BKT-BookingService/internal/api/handlers"
	createBooking "github.com/m04kA/BKT-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные бронирования"
	msgSlotNotAvailable   = "выбранный слот недоступен или мест не хватает"
	msgExperienceNotFound = "experience не найден"
	msgPromoNotApplicable = "промокод не существует или неприменим к заказу"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: experience_id=%d, slot_id=%d: %v",
				req.ExperienceID, req.SlotID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: experience_id=%d, slot_id=%d, quantity=%d",
				req.ExperienceID, req.SlotID, req.Quantity)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrExperienceNotFound):
			h.logger.Warn("POST /bookings - Experience not found: experience_id=%d", req.ExperienceID)
			handlers.RespondNotFound(w, msgExperienceNotFound)

		case errors.Is(err, createBooking.ErrPromoNotApplicable):
			h.logger.Warn("POST /bookings - Promo not applicable: experience_id=%d, slot_id=%d",
				req.ExperienceID, req.SlotID)
			handlers.RespondUnprocessableEntity(w, msgPromoNotApplicable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: experience_id=%d, slot_id=%d, error=%v",
				req.ExperienceID, req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: ref_id=%s, experience_id=%d, slot_id=%d",
		result.RefID, req.ExperienceID, req.SlotID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
