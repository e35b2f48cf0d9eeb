package get_salon_config

import (
	"net/http"

	"github.com/m04kA/SMC-SpaBooking/internal/api/handlers"
)

type Handler struct {
	catalog  CatalogReader
	settings Settings
	logger   Logger
}

func NewHandler(catalog CatalogReader, settings Settings, logger Logger) *Handler {
	return &Handler{
		catalog:  catalog,
		settings: settings,
		logger:   logger,
	}
}

// Handle GET /api/v1/salon/config
// Публичный endpoint: рабочие часы, услуги, комнаты и мастера для мастера записи
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	services, err := h.catalog.ListServices(ctx)
	if err != nil {
		h.logger.Error("GET /salon/config - Failed to list services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	rooms, err := h.catalog.ListRooms(ctx)
	if err != nil {
		h.logger.Error("GET /salon/config - Failed to list rooms: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	staff, err := h.catalog.ListStaff(ctx)
	if err != nil {
		h.logger.Error("GET /salon/config - Failed to list staff: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /salon/config - Config retrieved: services=%d, rooms=%d, staff=%d",
		len(services), len(rooms), len(staff))
	handlers.RespondJSON(w, http.StatusOK, toResponse(h.settings, services, rooms, staff))
}
