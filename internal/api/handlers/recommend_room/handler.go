package recommend_room

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SpaBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SpaBooking/internal/domain"
	recommendRoom "github.com/m04kA/SMC-SpaBooking/internal/usecase/recommend_room"
)

const (
	msgInvalidServiceID = "некорректный ID услуги"
	msgInvalidStaffID   = "некорректный ID мастера"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingTime      = "время начала обязательно"
	msgInvalidInput     = "некорректные параметры запроса"
	msgServiceNotFound  = "услуга не найдена"
	msgStaffNotFound    = "мастер не найден"
	msgNoRoomAvailable  = "нет свободной подходящей комнаты"
)

type Handler struct {
	useCase RecommendRoomUseCase
	logger  Logger
}

func NewHandler(useCase RecommendRoomUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/recommendation
// Query params: serviceId, staffId, date (YYYY-MM-DD), time (HH:MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	serviceID, err := strconv.ParseInt(query.Get("serviceId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/recommendation - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	staffID, err := strconv.ParseInt(query.Get("staffId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/recommendation - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /rooms/recommendation - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	startTime := query.Get("time")
	if startTime == "" {
		handlers.RespondBadRequest(w, msgMissingTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &recommendRoom.Request{
		ServiceID: serviceID,
		StaffID:   staffID,
		Date:      date,
		StartTime: startTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, recommendRoom.ErrInvalidInput):
			h.logger.Warn("GET /rooms/recommendation - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, recommendRoom.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, recommendRoom.ErrStaffNotFound):
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, recommendRoom.ErrNoRoomAvailable):
			h.logger.Info("GET /rooms/recommendation - %v", err)
			handlers.RespondErrorWithDetails(w, http.StatusConflict, msgNoRoomAvailable, err.Error())

		default:
			h.logger.Error("GET /rooms/recommendation - Failed to recommend room: service_id=%d, staff_id=%d, error=%v",
				serviceID, staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/recommendation - Room recommended: service_id=%d, staff_id=%d, room_id=%d",
		serviceID, staffID, result.Room.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
