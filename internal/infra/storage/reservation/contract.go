package reservation

import (
	"context"

	"github.com/m04kA/SMC-SpaBooking/pkg/txmanager"
)

// DBExecutor общий интерфейс для *sql.DB и *sql.Tx
type DBExecutor = txmanager.DBExecutor

// TransactionManager выполняет фиксацию бронирований в сериализуемой транзакции
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}
