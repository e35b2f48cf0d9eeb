package recommend_room

import (
	"github.com/m04kA/SMC-SpaBooking/internal/domain"
	recommendRoom "github.com/m04kA/SMC-SpaBooking/internal/usecase/recommend_room"
)

// RoomResponse модель комнаты
type RoomResponse struct {
	ID                    int64    `json:"id"`
	Name                  string   `json:"name"`
	Capabilities          []string `json:"capabilities"`
	HasBodyScrubEquipment bool     `json:"hasBodyScrubEquipment"`
	IsCouplesRoom         bool     `json:"isCouplesRoom"`
}

// RecommendationResponse HTTP response model
type RecommendationResponse struct {
	Room         RoomResponse   `json:"room"`
	Reason       string         `json:"reason"`
	Alternatives []RoomResponse `json:"alternatives"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *recommendRoom.Response) *RecommendationResponse {
	alternatives := make([]RoomResponse, len(resp.Alternatives))
	for i, room := range resp.Alternatives {
		alternatives[i] = fromRoom(room)
	}

	return &RecommendationResponse{
		Room:         fromRoom(resp.Room),
		Reason:       resp.Reason,
		Alternatives: alternatives,
	}
}

func fromRoom(room *domain.Room) RoomResponse {
	capabilities := make([]string, len(room.Capabilities))
	for i, c := range room.Capabilities {
		capabilities[i] = string(c)
	}

	return RoomResponse{
		ID:                    room.ID,
		Name:                  room.Name,
		Capabilities:          capabilities,
		HasBodyScrubEquipment: room.HasBodyScrubEquipment,
		IsCouplesRoom:         room.IsCouplesRoom,
	}
}
