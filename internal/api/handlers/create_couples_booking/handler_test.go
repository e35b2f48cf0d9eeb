package create_couples_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SpaBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SpaBooking/internal/domain"
	fx "github.com/m04kA/SMC-SpaBooking/internal/testfixtures"
	"github.com/m04kA/SMC-SpaBooking/internal/testfixtures/fakes"
	createCouplesBooking "github.com/m04kA/SMC-SpaBooking/internal/usecase/create_couples_booking"
)

type fakeUseCase struct {
	got  *createCouplesBooking.Request
	resp *createCouplesBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createCouplesBooking.Request) (*createCouplesBooking.Response, error) {
	f.got = req
	return f.resp, f.err
}

const validBody = `{
	"bookingDate": "2025-10-18",
	"startTime": "10:00",
	"primary": {"serviceId": 102, "staffId": 11},
	"secondary": {"serviceId": 102, "staffId": 12, "roomId": 3}
}`

func serve(uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/couples", strings.NewReader(body))
	req = req.WithContext(middleware.WithUserID(req.Context(), 7))
	NewHandler(uc, &fakes.Logger{}).Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	groupID := uuid.MustParse("6f1c1d4e-2b7a-4c3e-9d52-0a8b7e4f1c11")
	uc := &fakeUseCase{resp: &createCouplesBooking.Response{
		GroupID:    groupID,
		CustomerID: 7,
		Date:       fx.Saturday,
		StartTime:  "10:00",
		Attempts:   2,
		Primary:    createCouplesBooking.LegResponse{BookingID: 501, RoomID: fx.Room3ID, RoomName: "Room 3"},
		Secondary:  createCouplesBooking.LegResponse{BookingID: 502, RoomID: fx.Room3ID, RoomName: "Room 3"},
	}}

	rec := serve(uc, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(7), uc.got.CustomerID)
	assert.Equal(t, fx.BrunoID, uc.got.Primary.StaffID)
	assert.Nil(t, uc.got.Primary.RoomID)
	require.NotNil(t, uc.got.Secondary.RoomID)
	assert.Equal(t, fx.Room3ID, *uc.got.Secondary.RoomID)

	var body CouplesBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, groupID.String(), body.GroupID)
	assert.Equal(t, "2025-10-18", body.BookingDate)
	assert.Equal(t, 2, body.Attempts)
	assert.Equal(t, int64(501), body.Primary.BookingID)
	assert.Equal(t, int64(502), body.Secondary.BookingID)
}

func TestHandle_ValidationFailedReturnsBothResults(t *testing.T) {
	primary := domain.NewValidationResult()
	secondary := domain.NewValidationResult()
	secondary.AddError(domain.IssueStaffSchedule, "Carla is not available on Monday")

	uc := &fakeUseCase{err: &createCouplesBooking.CouplesError{
		State:     createCouplesBooking.StatePreparing,
		Attempts:  1,
		Err:       fmt.Errorf("%w: secondary", createCouplesBooking.ErrValidationFailed),
		Primary:   primary,
		Secondary: secondary,
	}}

	rec := serve(uc, validBody)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Details ValidationDetails `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Details.Primary)
	require.NotNil(t, body.Details.Secondary)
	assert.True(t, body.Details.Primary.IsValid)
	assert.False(t, body.Details.Secondary.IsValid)
}

func TestHandle_Errors(t *testing.T) {
	wrap := func(err error) error {
		return &createCouplesBooking.CouplesError{State: createCouplesBooking.StateCommitting, Attempts: 3, Err: err}
	}

	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{"bad json", `[]`, nil, http.StatusBadRequest},
		{"bad date", `{"bookingDate":"tomorrow","startTime":"10:00"}`, nil, http.StatusBadRequest},
		{"slot taken", validBody, &createCouplesBooking.CouplesError{
			State: createCouplesBooking.StateAvailabilityChecked, Attempts: 1, Err: createCouplesBooking.ErrSlotNotAvailable,
		}, http.StatusConflict},
		{"exhausted", validBody, wrap(createCouplesBooking.ErrAttemptsExhausted), http.StatusConflict},
		{"rejected", validBody, wrap(createCouplesBooking.ErrCommitRejected), http.StatusConflict},
		{"partial", validBody, wrap(createCouplesBooking.ErrPartialCommit), http.StatusInternalServerError},
		{"invalid input", validBody, createCouplesBooking.ErrInvalidInput, http.StatusBadRequest},
		{"service not found", validBody, createCouplesBooking.ErrServiceNotFound, http.StatusNotFound},
		{"staff not found", validBody, createCouplesBooking.ErrStaffNotFound, http.StatusNotFound},
		{"room not found", validBody, createCouplesBooking.ErrRoomNotFound, http.StatusNotFound},
		{"internal", validBody, wrap(createCouplesBooking.ErrInternal), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
