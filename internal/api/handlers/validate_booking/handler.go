package validate_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SpaBooking/internal/api/handlers"
	validateBooking "github.com/m04kA/SMC-SpaBooking/internal/usecase/validate_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные параметры проверки"
	msgServiceNotFound    = "услуга не найдена"
	msgStaffNotFound      = "мастер не найден"
	msgRoomNotFound       = "комната не найдена"
)

type Handler struct {
	useCase ValidateBookingUseCase
	logger  Logger
}

func NewHandler(useCase ValidateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/validate
// Нарушение бизнес-правил - это 200 с isValid=false, а не ошибка
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ValidateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings/validate - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, validateBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/validate - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, validateBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings/validate - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, validateBooking.ErrStaffNotFound):
			h.logger.Warn("POST /bookings/validate - Staff not found: staff_id=%d", req.StaffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, validateBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings/validate - Room not found")
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("POST /bookings/validate - Failed to validate booking: service_id=%d, staff_id=%d, error=%v",
				req.ServiceID, req.StaffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/validate - Validated: service_id=%d, staff_id=%d, valid=%t",
		req.ServiceID, req.StaffID, result.Result.IsValid)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
