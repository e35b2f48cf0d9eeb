package reservation

import "errors"

var (
	// ErrCommitConflict возвращается, когда фиксация проиграла гонку конкурентному бронированию
	// Единственная ошибка фиксации, после которой допустим повтор
	ErrCommitConflict = errors.New("reservation.repository: commit conflict")

	// ErrInvalidCommand возвращается при некорректной команде фиксации
	ErrInvalidCommand = errors.New("reservation.repository: invalid commit command")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")

	// errLegRejected внутренний сигнал отката парного бронирования
	errLegRejected = errors.New("reservation.repository: couples leg rejected")
)

// ErrReservationNotFound возвращается, когда бронирование не найдено
var ErrReservationNotFound = errors.New("reservation.repository: reservation not found")
