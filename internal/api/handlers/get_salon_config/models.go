package get_salon_config

import (
	"github.com/m04kA/SMC-SpaBooking/internal/domain"
	"github.com/m04kA/SMC-SpaBooking/internal/service/staffschedule"
)

// Settings правила бронирования салона
type Settings struct {
	BusinessHours   domain.BusinessHours
	SlotStepMinutes int
}

// SalonConfigResponse HTTP response model
type SalonConfigResponse struct {
	OpenTime        string            `json:"openTime"`
	CloseTime       string            `json:"closeTime"`
	SlotStepMinutes int               `json:"slotStepMinutes"`
	Services        []ServiceResponse `json:"services"`
	Rooms           []RoomResponse    `json:"rooms"`
	Staff           []StaffResponse   `json:"staff"`
}

type ServiceResponse struct {
	ID                    int64   `json:"id"`
	Name                  string  `json:"name"`
	Category              string  `json:"category"`
	DurationMinutes       int     `json:"durationMinutes"`
	Price                 float64 `json:"price"`
	RequiresCouplesRoom   bool    `json:"requiresCouplesRoom"`
	RequiresBodyScrubRoom bool    `json:"requiresBodyScrubRoom"`
}

type RoomResponse struct {
	ID                    int64    `json:"id"`
	Name                  string   `json:"name"`
	Capabilities          []string `json:"capabilities"`
	HasBodyScrubEquipment bool     `json:"hasBodyScrubEquipment"`
	IsCouplesRoom         bool     `json:"isCouplesRoom"`
	IsActive              bool     `json:"isActive"`
}

// StaffResponse мастер; Schedule строится из расписания, отдельно не хранится
type StaffResponse struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	Categories       []string `json:"categories"`
	DefaultRoomID    *int64   `json:"defaultRoomId,omitempty"`
	Schedule         string   `json:"schedule"`
	MinNoticeMinutes int      `json:"minNoticeMinutes"`
	IsActive         bool     `json:"isActive"`
}

func toResponse(settings Settings, services []*domain.Service, rooms []*domain.Room, staff []*domain.Staff) *SalonConfigResponse {
	resp := &SalonConfigResponse{
		OpenTime:        settings.BusinessHours.Open.String(),
		CloseTime:       settings.BusinessHours.Close.String(),
		SlotStepMinutes: settings.SlotStepMinutes,
		Services:        make([]ServiceResponse, 0, len(services)),
		Rooms:           make([]RoomResponse, 0, len(rooms)),
		Staff:           make([]StaffResponse, 0, len(staff)),
	}

	for _, s := range services {
		resp.Services = append(resp.Services, ServiceResponse{
			ID:                    s.ID,
			Name:                  s.Name,
			Category:              string(s.Category),
			DurationMinutes:       s.DurationMinutes,
			Price:                 s.Price,
			RequiresCouplesRoom:   s.NeedsCouplesRoom(),
			RequiresBodyScrubRoom: s.NeedsBodyScrubRoom(),
		})
	}

	for _, r := range rooms {
		resp.Rooms = append(resp.Rooms, RoomResponse{
			ID:                    r.ID,
			Name:                  r.Name,
			Capabilities:          categoryNames(r.Capabilities),
			HasBodyScrubEquipment: r.HasBodyScrubEquipment,
			IsCouplesRoom:         r.IsCouplesRoom,
			IsActive:              r.IsActive,
		})
	}

	for _, st := range staff {
		resp.Staff = append(resp.Staff, StaffResponse{
			ID:               st.ID,
			Name:             st.Name,
			Categories:       categoryNames(st.CanPerformServices),
			DefaultRoomID:    st.DefaultRoomID,
			Schedule:         staffschedule.Describe(st),
			MinNoticeMinutes: st.MinNoticeMinutes,
			IsActive:         st.IsActive,
		})
	}

	return resp
}

func categoryNames(categories []domain.Category) []string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = string(c)
	}
	return names
}
