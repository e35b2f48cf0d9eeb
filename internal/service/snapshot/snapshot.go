package snapshot

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
)

// ReservationFetcher путь чтения из хранилища
type ReservationFetcher interface {
	FetchReservations(ctx context.Context, resourceType domain.ResourceType, resourceID int64, date time.Time) ([]*domain.Reservation, error)
}

// Load собирает снимок бронирований на день для указанных комнат и мастеров
// Дубликаты (бронирование попадает и в комнату, и в мастера) удаляются
func Load(
	ctx context.Context,
	fetcher ReservationFetcher,
	date time.Time,
	roomIDs []int64,
	staffIDs []int64,
) ([]*domain.Reservation, error) {
	seen := make(map[int64]struct{})
	result := make([]*domain.Reservation, 0)

	collect := func(resourceType domain.ResourceType, ids []int64) error {
		for _, id := range ids {
			reservations, err := fetcher.FetchReservations(ctx, resourceType, id, date)
			if err != nil {
				return fmt.Errorf("fetch %s id=%d reservations: %w", resourceType, id, err)
			}
			for _, r := range reservations {
				if _, ok := seen[r.ID]; ok {
					continue
				}
				seen[r.ID] = struct{}{}
				result = append(result, r)
			}
		}
		return nil
	}

	if err := collect(domain.ResourceRoom, roomIDs); err != nil {
		return nil, err
	}
	if err := collect(domain.ResourceStaff, staffIDs); err != nil {
		return nil, err
	}

	sort.SliceStable(result, func(i, j int) bool {
		si, sj := result[i].StartTime.Minutes(), result[j].StartTime.Minutes()
		if si != sj {
			return si < sj
		}
		return result[i].ID < result[j].ID
	})

	return result, nil
}

// RoomIDs возвращает ID комнат
func RoomIDs(rooms []*domain.Room) []int64 {
	ids := make([]int64, 0, len(rooms))
	for _, r := range rooms {
		ids = append(ids, r.ID)
	}
	return ids
}
