package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
	"github.com/m04kA/SMC-SpaBooking/internal/service/conflicts"
	"github.com/m04kA/SMC-SpaBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SpaBooking/pkg/txmanager"
	"github.com/m04kA/SMC-SpaBooking/pkg/types"
)

const table = "reservations"

// Коды ошибок PostgreSQL, означающие проигранную гонку
const (
	pgExclusionViolation   = "23P01"
	pgSerializationFailure = "40001"
	pgUniqueViolation      = "23505"
	pgDeadlockDetected     = "40P01"
)

const (
	msgRolledBack = "rolled back: partner booking was rejected"
	msgConflict   = "%s id=%d is already booked %s-%s"
)

// resourceRef ресурс, по которому проверяется пересечение
type resourceRef struct {
	resourceType domain.ResourceType
	id           int64
}

var columns = []string{
	"id",
	"room_id",
	"staff_id",
	"service_id",
	"customer_id",
	"booking_date",
	"start_time",
	"duration_minutes",
	"status",
	"couples_group_id",
	"created_at",
	"updated_at",
}

// Repository хранилище бронирований в PostgreSQL
// Таблица защищена exclusion-ограничениями по комнате и мастеру; репозиторий
// дополнительно блокирует бронирования дня (FOR UPDATE) и перепроверяет пересечения
type Repository struct {
	db        DBExecutor
	txManager TransactionManager
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor, txManager TransactionManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// FetchReservations возвращает неотмененные бронирования ресурса на дату
func (r *Repository) FetchReservations(
	ctx context.Context,
	resourceType domain.ResourceType,
	resourceID int64,
	date time.Time,
) ([]*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	column := "room_id"
	if resourceType == domain.ResourceStaff {
		column = "staff_id"
	}

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"booking_date": dateOnly(date)}).
		Where(squirrel.Eq{column: resourceID}).
		Where(squirrel.NotEq{"status": inactiveStatuses()}).
		OrderBy("start_time", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FetchReservations - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FetchReservations - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// CommitSingleBooking атомарно фиксирует одно бронирование
// Пересечения перепроверяются внутри транзакции; при проигранной гонке возвращается ErrCommitConflict
func (r *Repository) CommitSingleBooking(ctx context.Context, cmd domain.SingleCommit) (*domain.Reservation, error) {
	if err := validateLeg(cmd.DurationMinutes, cmd.StartTime); err != nil {
		return nil, err
	}

	var created *domain.Reservation

	err := r.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Блокируем бронирования дня по комнате и мастеру
		locked, err := r.lockDay(txCtx, cmd.Date, []int64{cmd.RoomID}, []int64{cmd.StaffID})
		if err != nil {
			return err
		}

		// 2. Перепроверяем пересечения на стороне хранилища
		msg, err := findCommitConflict(locked, locked, cmd.Date, cmd.StartTime, cmd.DurationMinutes, cmd.RoomID, cmd.StaffID)
		if err != nil {
			return err
		}
		if msg != "" {
			return fmt.Errorf("%w: %s", ErrCommitConflict, msg)
		}

		// 3. Сохраняем
		created, err = r.insert(txCtx, &domain.Reservation{
			RoomID:          cmd.RoomID,
			StaffID:         cmd.StaffID,
			ServiceID:       cmd.ServiceID,
			CustomerID:      cmd.CustomerID,
			Date:            dateOnly(cmd.Date),
			StartTime:       cmd.StartTime,
			DurationMinutes: cmd.DurationMinutes,
			Status:          domain.StatusConfirmed,
		})
		return err
	})
	if err != nil {
		return nil, classify(err)
	}

	return created, nil
}

// CommitCouplesBooking фиксирует обе половины парного бронирования в одной транзакции
//
// Обе половины занимают одну парную комнату. Результат по каждой половине возвращается
// всегда, когда транзакция дошла до проверки: отклоненная половина помечается Conflict,
// вторая откатывается вместе с ней. Частично зафиксированного состояния хранилище не оставляет
func (r *Repository) CommitCouplesBooking(ctx context.Context, cmd domain.CouplesCommit) ([]domain.LegResult, error) {
	legs := cmd.Legs()
	for _, leg := range legs {
		if err := validateLeg(leg.DurationMinutes, cmd.StartTime); err != nil {
			return nil, err
		}
	}
	if legs[0].RoomID != legs[1].RoomID {
		return nil, fmt.Errorf("%w: couples legs must share one room", ErrInvalidCommand)
	}

	results := make([]domain.LegResult, len(legs))
	groupID := uuid.NullUUID{UUID: cmd.GroupID, Valid: cmd.GroupID != uuid.Nil}

	err := r.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		roomIDs := []int64{legs[0].RoomID}
		staffIDs := []int64{legs[0].StaffID, legs[1].StaffID}

		// 1. Блокируем бронирования дня по комнате и обоим мастерам
		locked, err := r.lockDay(txCtx, cmd.Date, roomIDs, staffIDs)
		if err != nil {
			return err
		}

		// 2. Проверяем и вставляем половины по очереди
		// Комнату половины делят между собой, а мастер у каждой свой:
		// вставленная половина участвует только в проверке мастера следующей
		staffBusy := locked
		for i, leg := range legs {
			msg, err := findCommitConflict(locked, staffBusy, cmd.Date, cmd.StartTime, leg.DurationMinutes, leg.RoomID, leg.StaffID)
			if err != nil {
				return err
			}
			if msg != "" {
				rejectLegs(results, legs, i, msg)
				return errLegRejected
			}

			created, err := r.insert(txCtx, &domain.Reservation{
				RoomID:          leg.RoomID,
				StaffID:         leg.StaffID,
				ServiceID:       leg.ServiceID,
				CustomerID:      cmd.CustomerID,
				Date:            dateOnly(cmd.Date),
				StartTime:       cmd.StartTime,
				DurationMinutes: leg.DurationMinutes,
				Status:          domain.StatusConfirmed,
				CouplesGroupID:  uuidPtr(groupID),
			})
			if err != nil {
				return err
			}

			results[i] = domain.LegResult{BookingID: created.ID, RoomID: leg.RoomID, Success: true}
			staffBusy = append(slices.Clip(staffBusy), created)
		}

		return nil
	})

	if errors.Is(err, errLegRejected) {
		return results, nil
	}
	if err != nil {
		return nil, classify(err)
	}

	return results, nil
}

// CheckAvailabilityAdvisory предварительная проверка без блокировок
// Ответ не гарантирует успешную фиксацию
func (r *Repository) CheckAvailabilityAdvisory(ctx context.Context, q domain.AdvisoryQuery) (*domain.AdvisoryResult, error) {
	existing, err := r.selectDay(ctx, q.Date, q.RoomIDs, q.StaffIDs, false)
	if err != nil {
		return nil, err
	}

	checks := make([]resourceRef, 0, len(q.RoomIDs)+len(q.StaffIDs))
	for _, id := range q.RoomIDs {
		checks = append(checks, resourceRef{domain.ResourceRoom, id})
	}
	for _, id := range q.StaffIDs {
		checks = append(checks, resourceRef{domain.ResourceStaff, id})
	}

	for _, check := range checks {
		found, err := conflicts.FindOverlap(existing, conflicts.Query{
			ResourceType:    check.resourceType,
			ResourceID:      check.id,
			Date:            q.Date,
			StartTime:       q.StartTime,
			DurationMinutes: q.DurationMinutes,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: CheckAvailabilityAdvisory - %v", ErrInvalidCommand, err)
		}
		if found != nil {
			return &domain.AdvisoryResult{
				IsAvailable:  false,
				ErrorMessage: conflictMessage(check.resourceType, check.id, found),
			}, nil
		}
	}

	return &domain.AdvisoryResult{IsAvailable: true}, nil
}

// lockDay выбирает бронирования дня по ресурсам с блокировкой строк
func (r *Repository) lockDay(ctx context.Context, date time.Time, roomIDs, staffIDs []int64) ([]*domain.Reservation, error) {
	return r.selectDay(ctx, date, roomIDs, staffIDs, true)
}

func (r *Repository) selectDay(
	ctx context.Context,
	date time.Time,
	roomIDs, staffIDs []int64,
	forUpdate bool,
) ([]*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"booking_date": dateOnly(date)}).
		Where(squirrel.Or{
			squirrel.Eq{"room_id": roomIDs},
			squirrel.Eq{"staff_id": staffIDs},
		}).
		Where(squirrel.NotEq{"status": inactiveStatuses()}).
		OrderBy("start_time", "id")

	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: selectDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: selectDay - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

func (r *Repository) insert(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	var groupID uuid.NullUUID
	if res.CouplesGroupID != nil {
		groupID = uuid.NullUUID{UUID: *res.CouplesGroupID, Valid: true}
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"room_id",
			"staff_id",
			"service_id",
			"customer_id",
			"booking_date",
			"start_time",
			"duration_minutes",
			"status",
			"couples_group_id",
		).
		Values(
			res.RoomID,
			res.StaffID,
			res.ServiceID,
			res.CustomerID,
			res.Date,
			res.StartTime,
			res.DurationMinutes,
			res.Status,
			groupID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: insert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.ID, &createdAt, &updatedAt)
	if err != nil {
		// %w сохраняет *pq.Error для classify
		return nil, fmt.Errorf("%w: insert - execute insert: %w", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		var (
			res                  domain.Reservation
			groupID              uuid.NullUUID
			createdAt, updatedAt sql.NullTime
		)

		err := rows.Scan(
			&res.ID,
			&res.RoomID,
			&res.StaffID,
			&res.ServiceID,
			&res.CustomerID,
			&res.Date,
			&res.StartTime,
			&res.DurationMinutes,
			&res.Status,
			&groupID,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scan reservation: %v", ErrScanRow, err)
		}

		res.CouplesGroupID = uuidPtr(groupID)
		res.CreatedAt = createdAt.Time
		res.UpdatedAt = updatedAt.Time
		reservations = append(reservations, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate reservations: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// findCommitConflict возвращает описание первого пересечения по комнате или мастеру
// roomBusy и staffBusy - бронирования, с которыми сверяются комната и мастер соответственно
func findCommitConflict(
	roomBusy, staffBusy []*domain.Reservation,
	date time.Time,
	start types.TimeString,
	durationMinutes int,
	roomID, staffID int64,
) (string, error) {
	checks := []struct {
		resourceRef
		existing []*domain.Reservation
	}{
		{resourceRef{domain.ResourceRoom, roomID}, roomBusy},
		{resourceRef{domain.ResourceStaff, staffID}, staffBusy},
	}

	for _, check := range checks {
		found, err := conflicts.FindOverlap(check.existing, conflicts.Query{
			ResourceType:    check.resourceType,
			ResourceID:      check.id,
			Date:            date,
			StartTime:       start,
			DurationMinutes: durationMinutes,
		})
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidCommand, err)
		}
		if found != nil {
			return conflictMessage(check.resourceType, check.id, found), nil
		}
	}

	return "", nil
}

func conflictMessage(resourceType domain.ResourceType, id int64, found *domain.Reservation) string {
	end, _ := found.EndTime()
	return fmt.Sprintf(msgConflict, resourceType, id, found.StartTime, end)
}

// rejectLegs помечает отклоненную половину и откатывает остальные
func rejectLegs(results []domain.LegResult, legs []domain.CouplesLeg, rejected int, msg string) {
	for i, leg := range legs {
		if i == rejected {
			results[i] = domain.LegResult{RoomID: leg.RoomID, ErrorMessage: msg, Conflict: true}
			continue
		}
		results[i] = domain.LegResult{RoomID: leg.RoomID, ErrorMessage: msgRolledBack}
	}
}

// classify переводит ошибки PostgreSQL о проигранной гонке в ErrCommitConflict
func classify(err error) error {
	if errors.Is(err, ErrCommitConflict) {
		return err
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pgExclusionViolation, pgSerializationFailure, pgUniqueViolation, pgDeadlockDetected:
			return fmt.Errorf("%w: %s (%s)", ErrCommitConflict, pqErr.Message, pqErr.Code)
		}
	}

	return err
}

func validateLeg(durationMinutes int, start types.TimeString) error {
	if durationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidCommand)
	}
	if err := start.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCommand, err)
	}
	return nil
}

func inactiveStatuses() []string {
	statuses := make([]string, 0, len(domain.InactiveStatuses))
	for _, s := range domain.InactiveStatuses {
		statuses = append(statuses, string(s))
	}
	return statuses
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func uuidPtr(n uuid.NullUUID) *uuid.UUID {
	if !n.Valid {
		return nil
	}
	id := n.UUID
	return &id
}
