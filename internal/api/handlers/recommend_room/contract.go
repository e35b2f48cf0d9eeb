package recommend_room

import (
	"context"

	recommendRoom "github.com/m04kA/SMC-SpaBooking/internal/usecase/recommend_room"
)

type RecommendRoomUseCase interface {
	Execute(ctx context.Context, req *recommendRoom.Request) (*recommendRoom.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
