package create_couples_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
	reservationRepo "github.com/m04kA/SMC-SpaBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-SpaBooking/internal/service/bookings"
	"github.com/m04kA/SMC-SpaBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-SpaBooking/internal/service/bookingvalidator"
	"github.com/m04kA/SMC-SpaBooking/internal/service/capability"
	"github.com/m04kA/SMC-SpaBooking/pkg/ptr"
	"github.com/m04kA/SMC-SpaBooking/pkg/types"
)

// UseCase use case для парного бронирования
//
// Состояния: preparing → availability_checked → committing → succeeded | failed.
// Оба участника занимают одну парную комнату. Повторяется только конфликт при фиксации;
// каждая попытка заново читает снимок, проверяет обоих участников и заново выбирает комнату
type UseCase struct {
	reservationRepo ReservationRepository
	loader          BookingLoader
	validator       BookingValidator
	metrics         MetricsCollector
	cfg             Config
	sleeper         Sleeper
	timeProvider    TimeProvider
	newGroupID      func() uuid.UUID
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	loader BookingLoader,
	validator BookingValidator,
	metrics MetricsCollector,
	cfg Config,
	logger Logger,
) *UseCase {
	if cfg.MaxAttempts <= 0 || cfg.MaxAttempts > domain.DefaultCouplesMaxAttempts {
		cfg.MaxAttempts = domain.DefaultCouplesMaxAttempts
	}
	if cfg.BackoffStep < 0 {
		cfg.BackoffStep = 0
	}

	return &UseCase{
		reservationRepo: reservationRepo,
		loader:          loader,
		validator:       validator,
		metrics:         metrics,
		cfg:             cfg,
		sleeper:         &RealSleeper{},
		timeProvider:    &RealTimeProvider{},
		newGroupID:      uuid.New,
		logger:          logger,
	}
}

// retryableError попытка проиграла гонку, ее можно повторить
type retryableError struct {
	state State
	err   error
	legs  []domain.LegResult
}

func (e *retryableError) Error() string {
	return e.err.Error()
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// leg участник вместе с комнатой и результатом проверки текущей попытки
type leg struct {
	participant domain.Participant
	room        *domain.Room
	result      *domain.ValidationResult
}

// Execute бронирует двух участников на одно время как одну операцию
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateCouplesBooking: customer=%d, date=%s, time=%s, primary=(service=%d, staff=%d, room=%v), secondary=(service=%d, staff=%d, room=%v)",
		req.CustomerID, req.Date.Format(domain.DateFormat), req.StartTime,
		req.Primary.ServiceID, req.Primary.StaffID, ptr.Value(req.Primary.RoomID),
		req.Secondary.ServiceID, req.Secondary.StaffID, ptr.Value(req.Secondary.RoomID))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateCouplesBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Справочные данные участников не меняются между попытками
	primary, err := uc.loadParticipant(ctx, req.Primary)
	if err != nil {
		return nil, err
	}
	secondary, err := uc.loadParticipant(ctx, req.Secondary)
	if err != nil {
		return nil, err
	}

	// Явно выбранная комната одного участника - комната обоих
	if primary.Room == nil {
		primary.Room = secondary.Room
	}

	request := domain.BookingRequest{
		Service:    primary.Service,
		Staff:      primary.Staff,
		Room:       primary.Room,
		Date:       req.Date,
		StartTime:  req.StartTime,
		CustomerID: req.CustomerID,
		Secondary:  &secondary,
	}

	// 3. Попытки с линейной задержкой
	var last *retryableError
	for attempt := 1; attempt <= uc.cfg.MaxAttempts; attempt++ {
		if attempt > 1 {
			delay := time.Duration(attempt-1) * uc.cfg.BackoffStep
			uc.logger.Info("CreateCouplesBooking: retrying in %v (attempt %d/%d)", delay, attempt, uc.cfg.MaxAttempts)

			if err := uc.sleeper.Sleep(ctx, delay); err != nil {
				uc.logger.Warn("CreateCouplesBooking: backoff interrupted: %v", err)
				return nil, &CouplesError{
					State:    last.state,
					Attempts: attempt - 1,
					Err:      fmt.Errorf("%w: backoff interrupted: %w", ErrInternal, err),
					Legs:     last.legs,
				}
			}
		}

		resp, err := uc.attempt(ctx, request, attempt)
		if err == nil {
			return resp, nil
		}

		var retry *retryableError
		if !errors.As(err, &retry) {
			return nil, err
		}

		uc.logger.Warn("CreateCouplesBooking: attempt %d/%d lost the race: %v", attempt, uc.cfg.MaxAttempts, retry.err)
		last = retry
	}

	uc.logger.Error("CreateCouplesBooking: giving up after %d attempts: %v", uc.cfg.MaxAttempts, last.err)

	return nil, &CouplesError{
		State:    last.state,
		Attempts: uc.cfg.MaxAttempts,
		Err:      fmt.Errorf("%w: %v", ErrAttemptsExhausted, last.err),
		Legs:     last.legs,
	}
}

// attempt одна полная попытка: снимок → проверка обоих → предварительная проверка → фиксация
func (uc *UseCase) attempt(ctx context.Context, request domain.BookingRequest, attempt int) (*Response, error) {
	terminal := func(state State, outcome string, err error) *CouplesError {
		uc.metrics.ObserveCouplesAttempt(outcome)
		uc.logger.Error("CreateCouplesBooking: attempt %d failed at %s: %v", attempt, state, err)
		return &CouplesError{State: state, Attempts: attempt, Err: err}
	}

	// Preparing: свежий снимок дня
	primary := leg{participant: request.Primary()}
	secondary := leg{participant: *request.Secondary}

	snapshot, err := uc.loader.LoadSnapshot(ctx, request.Date, primary.participant.Staff.ID, secondary.participant.Staff.ID)
	if err != nil {
		return nil, terminal(StatePreparing, OutcomeError, fmt.Errorf("%w: failed to load snapshot: %v", ErrInternal, err))
	}

	// Каждый участник проверяется отдельно. Комната выбирается для первого участника
	// среди подходящих обоим, второй участник проверяется в ней же
	now := uc.timeProvider.Now()

	excluded := unsuitableRoomIDs(snapshot.Rooms, secondary.participant.Service)
	if err := uc.validateLeg(&primary, request, snapshot.Rooms, snapshot, now, excluded); err != nil {
		return nil, terminal(StatePreparing, OutcomeError, err)
	}

	secondaryRooms := snapshot.Rooms
	if primary.room != nil {
		secondary.participant.Room = primary.room
		secondaryRooms = []*domain.Room{primary.room}
	}
	if err := uc.validateLeg(&secondary, request, secondaryRooms, snapshot, now, nil); err != nil {
		return nil, terminal(StatePreparing, OutcomeError, err)
	}

	if !primary.result.IsValid || !secondary.result.IsValid {
		cerr := terminal(StatePreparing, OutcomeInvalid,
			fmt.Errorf("%w: %s", ErrValidationFailed, describeInvalid(primary.result, secondary.result)))
		cerr.Primary = primary.result
		cerr.Secondary = secondary.result
		return nil, cerr
	}

	// Время уже проверено валидатором
	start, _ := types.NewTimeStringFromString(request.StartTime)

	// AvailabilityChecked: неавторитетная проверка отсекает заведомо занятые слоты
	for _, l := range []leg{primary, secondary} {
		advisory, err := uc.reservationRepo.CheckAvailabilityAdvisory(ctx, domain.AdvisoryQuery{
			StaffIDs:        []int64{l.participant.Staff.ID},
			RoomIDs:         []int64{l.room.ID},
			Date:            request.Date,
			StartTime:       start,
			DurationMinutes: l.participant.Service.DurationMinutes,
		})
		if err != nil {
			return nil, terminal(StatePreparing, OutcomeError, fmt.Errorf("%w: advisory check failed: %v", ErrInternal, err))
		}
		if !advisory.IsAvailable {
			// Заведомо занятый слот: фиксацию не пытаемся и не повторяем
			return nil, terminal(StateAvailabilityChecked, OutcomeAdvisoryRejected,
				fmt.Errorf("%w: %s in %s: %s", ErrSlotNotAvailable, l.participant.Staff.Name, l.room.Name, advisory.ErrorMessage))
		}
	}
	uc.logger.Info("CreateCouplesBooking: attempt %d: %s (room %d)", attempt, StateAvailabilityChecked, primary.room.ID)

	// Committing: авторитетная фиксация обеих половин
	cmd := domain.CouplesCommit{
		GroupID: uc.newGroupID(),
		Primary: domain.CouplesLeg{
			ServiceID:       primary.participant.Service.ID,
			StaffID:         primary.participant.Staff.ID,
			RoomID:          primary.room.ID,
			DurationMinutes: primary.participant.Service.DurationMinutes,
		},
		Secondary: domain.CouplesLeg{
			ServiceID:       secondary.participant.Service.ID,
			StaffID:         secondary.participant.Staff.ID,
			RoomID:          secondary.room.ID,
			DurationMinutes: secondary.participant.Service.DurationMinutes,
		},
		CustomerID: request.CustomerID,
		Date:       request.Date,
		StartTime:  start,
	}

	uc.logger.Info("CreateCouplesBooking: attempt %d: %s group=%s", attempt, StateCommitting, cmd.GroupID)

	legs, err := uc.reservationRepo.CommitCouplesBooking(ctx, cmd)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrCommitConflict) {
			uc.metrics.ObserveCommitConflict("couples")
			uc.metrics.ObserveCouplesAttempt(OutcomeConflict)
			return nil, &retryableError{state: StateCommitting, err: err}
		}
		return nil, terminal(StateCommitting, OutcomeError, fmt.Errorf("%w: failed to commit couples booking: %v", ErrInternal, err))
	}

	if len(legs) != 2 {
		return nil, terminal(StateCommitting, OutcomeError,
			fmt.Errorf("%w: expected 2 leg results, got %d", ErrInternal, len(legs)))
	}

	switch succeeded := countSucceeded(legs); {
	case succeeded == len(legs):
		uc.metrics.ObserveCouplesAttempt(OutcomeSucceeded)
		uc.logger.Info("CreateCouplesBooking: %s on attempt %d: group=%s, bookings %d and %d",
			StateSucceeded, attempt, cmd.GroupID, legs[0].BookingID, legs[1].BookingID)

		return &Response{
			GroupID:    cmd.GroupID,
			CustomerID: request.CustomerID,
			Date:       request.Date,
			StartTime:  start,
			Attempts:   attempt,
			Primary:    legResponse(primary, legs[0], snapshot),
			Secondary:  legResponse(secondary, legs[1], snapshot),
		}, nil

	case succeeded > 0:
		// Откат частичного состояния - ответственность хранилища
		cerr := terminal(StateCommitting, OutcomePartial,
			fmt.Errorf("%w: %s", ErrPartialCommit, describeLegs(legs)))
		cerr.Legs = legs
		return nil, cerr

	case hasConflict(legs):
		uc.metrics.ObserveCommitConflict("couples")
		uc.metrics.ObserveCouplesAttempt(OutcomeConflict)
		return nil, &retryableError{
			state: StateCommitting,
			err:   fmt.Errorf("%w: %s", reservationRepo.ErrCommitConflict, describeLegs(legs)),
			legs:  legs,
		}

	default:
		cerr := terminal(StateCommitting, OutcomeRejected,
			fmt.Errorf("%w: %s", ErrCommitRejected, describeLegs(legs)))
		cerr.Legs = legs
		return nil, cerr
	}
}

// validateLeg проверяет участника и определяет его комнату
func (uc *UseCase) validateLeg(
	l *leg,
	request domain.BookingRequest,
	rooms []*domain.Room,
	snapshot *models.Snapshot,
	now time.Time,
	excludeRoomIDs []int64,
) error {
	result, err := uc.validator.Validate(bookingvalidator.Input{
		Request:        request.ForParticipant(l.participant),
		Rooms:          rooms,
		Reservations:   snapshot.Reservations,
		Now:            now,
		ExcludeRoomIDs: excludeRoomIDs,
	})
	if err != nil {
		return fmt.Errorf("%w: validator error: %v", ErrInternal, err)
	}

	uc.metrics.ObserveValidation(result.IsValid)
	l.result = result

	l.room = l.participant.Room
	if l.room == nil && result.RecommendedRoomID != nil {
		l.room = snapshot.RoomByID(*result.RecommendedRoomID)
	}
	if result.IsValid && l.room == nil {
		return fmt.Errorf("%w: no room assigned for %s", ErrInternal, l.participant.Staff.Name)
	}

	return nil
}

func (uc *UseCase) loadParticipant(ctx context.Context, p Participant) (domain.Participant, error) {
	participant, err := uc.loader.LoadParticipant(ctx, models.ParticipantIDs{
		ServiceID: p.ServiceID,
		StaffID:   p.StaffID,
		RoomID:    p.RoomID,
	})
	if err == nil {
		return participant, nil
	}

	switch {
	case errors.Is(err, bookings.ErrServiceNotFound):
		return domain.Participant{}, ErrServiceNotFound
	case errors.Is(err, bookings.ErrStaffNotFound):
		return domain.Participant{}, ErrStaffNotFound
	case errors.Is(err, bookings.ErrRoomNotFound):
		return domain.Participant{}, ErrRoomNotFound
	default:
		return domain.Participant{}, fmt.Errorf("%w: failed to load participant: %v", ErrInternal, err)
	}
}

func legResponse(l leg, result domain.LegResult, snapshot *models.Snapshot) LegResponse {
	resp := LegResponse{
		BookingID:       result.BookingID,
		ServiceID:       l.participant.Service.ID,
		ServiceName:     l.participant.Service.Name,
		StaffID:         l.participant.Staff.ID,
		StaffName:       l.participant.Staff.Name,
		RoomID:          result.RoomID,
		DurationMinutes: l.participant.Service.DurationMinutes,
		Warnings:        l.result.WarningMessages(),
	}
	if room := snapshot.RoomByID(result.RoomID); room != nil {
		resp.RoomName = room.Name
	}
	return resp
}

// unsuitableRoomIDs комнаты, которые не принимают услугу второго участника
func unsuitableRoomIDs(rooms []*domain.Room, service *domain.Service) []int64 {
	ids := make([]int64, 0, len(rooms))
	for _, room := range rooms {
		if room != nil && !capability.RoomCanHost(room, service).OK {
			ids = append(ids, room.ID)
		}
	}
	return ids
}

func countSucceeded(legs []domain.LegResult) int {
	count := 0
	for _, l := range legs {
		if l.Success {
			count++
		}
	}
	return count
}

func hasConflict(legs []domain.LegResult) bool {
	for _, l := range legs {
		if l.Conflict {
			return true
		}
	}
	return false
}

func describeLegs(legs []domain.LegResult) string {
	parts := make([]string, 0, len(legs))
	for i, l := range legs {
		status := "ok"
		if !l.Success {
			status = l.ErrorMessage
		}
		parts = append(parts, fmt.Sprintf("leg %d: %s", i+1, status))
	}
	return strings.Join(parts, "; ")
}

func describeInvalid(primary, secondary *domain.ValidationResult) string {
	parts := make([]string, 0, 2)
	if !primary.IsValid {
		parts = append(parts, "primary: "+strings.Join(primary.ErrorMessages(), ", "))
	}
	if !secondary.IsValid {
		parts = append(parts, "secondary: "+strings.Join(secondary.ErrorMessages(), ", "))
	}
	return strings.Join(parts, "; ")
}
