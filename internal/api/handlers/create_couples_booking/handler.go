package create_couples_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SpaBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SpaBooking/internal/api/middleware"
	createCouplesBooking "github.com/m04kA/SMC-SpaBooking/internal/usecase/create_couples_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgUnauthorized       = "не удалось определить пользователя"
	msgInvalidInput       = "некорректные параметры парного бронирования"
	msgValidationFailed   = "парное бронирование не прошло проверку"
	msgSlotNotAvailable   = "не удалось забронировать двоих на это время, выберите другое"
	msgCommitRejected     = "бронирование отклонено"
	msgServiceNotFound    = "услуга не найдена"
	msgStaffNotFound      = "мастер не найден"
	msgRoomNotFound       = "комната не найдена"
)

type Handler struct {
	useCase CreateCouplesBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateCouplesBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/couples
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/couples - Missing user in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateCouplesBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/couples - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(customerID)
	if err != nil {
		h.logger.Warn("POST /bookings/couples - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.respondUseCaseError(w, customerID, err)
		return
	}

	h.logger.Info("POST /bookings/couples - Couples booking created: group_id=%s, bookings=%d,%d, attempts=%d",
		result.GroupID, result.Primary.BookingID, result.Secondary.BookingID, result.Attempts)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func (h *Handler) respondUseCaseError(w http.ResponseWriter, customerID int64, err error) {
	var couplesErr *createCouplesBooking.CouplesError
	errors.As(err, &couplesErr)

	switch {
	case errors.Is(err, createCouplesBooking.ErrValidationFailed):
		h.logger.Warn("POST /bookings/couples - Booking rejected: customer_id=%d, %v", customerID, err)
		details := ValidationDetails{}
		if couplesErr != nil {
			details.Primary = handlers.FromValidationResult(couplesErr.Primary)
			details.Secondary = handlers.FromValidationResult(couplesErr.Secondary)
		}
		handlers.RespondErrorWithDetails(w, http.StatusUnprocessableEntity, msgValidationFailed, details)

	case errors.Is(err, createCouplesBooking.ErrSlotNotAvailable):
		h.logger.Warn("POST /bookings/couples - Slot is taken: customer_id=%d, %v", customerID, err)
		handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

	case errors.Is(err, createCouplesBooking.ErrAttemptsExhausted):
		h.logger.Warn("POST /bookings/couples - Lost every attempt: customer_id=%d, %v", customerID, err)
		handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

	case errors.Is(err, createCouplesBooking.ErrCommitRejected):
		h.logger.Warn("POST /bookings/couples - Commit rejected: customer_id=%d, %v", customerID, err)
		handlers.RespondError(w, http.StatusConflict, msgCommitRejected)

	case errors.Is(err, createCouplesBooking.ErrInvalidInput):
		h.logger.Warn("POST /bookings/couples - Invalid input: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, createCouplesBooking.ErrServiceNotFound):
		handlers.RespondNotFound(w, msgServiceNotFound)

	case errors.Is(err, createCouplesBooking.ErrStaffNotFound):
		handlers.RespondNotFound(w, msgStaffNotFound)

	case errors.Is(err, createCouplesBooking.ErrRoomNotFound):
		handlers.RespondNotFound(w, msgRoomNotFound)

	default:
		// Сюда же попадает частичная фиксация: это сбой хранилища, а не выбор клиента
		h.logger.Error("POST /bookings/couples - Failed to create couples booking: customer_id=%d, error=%v", customerID, err)
		handlers.RespondInternalError(w)
	}
}
