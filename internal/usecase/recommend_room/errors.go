package recommend_room

import "errors"

var (
	ErrServiceNotFound = errors.New("recommend_room: service not found")
	ErrStaffNotFound   = errors.New("recommend_room: staff not found")

	// ErrNoRoomAvailable возвращается, когда ни одна подходящая комната не свободна
	ErrNoRoomAvailable = errors.New("recommend_room: no room available")

	ErrInvalidInput = errors.New("recommend_room: invalid input data")
	ErrInternal     = errors.New("recommend_room: internal error")
)
