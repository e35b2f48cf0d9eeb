package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("catalog: service not found")

	// ErrStaffNotFound возвращается, когда мастер не найден
	ErrStaffNotFound = errors.New("catalog: staff not found")

	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("catalog: room not found")

	// ErrInvalidCatalog возвращается, когда файл каталога некорректен
	ErrInvalidCatalog = errors.New("catalog: invalid catalog")
)
