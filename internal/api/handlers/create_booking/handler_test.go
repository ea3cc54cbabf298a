package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubUseCase struct {
	gotReq *createBooking.Request
	resp   *createBooking.Response
	err    error
}

func (s *stubUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	s.gotReq = req
	return s.resp, s.err
}

func doRequest(t *testing.T, uc CreateBookingUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

const validBody = `{"serviceId":"cut-men-30","date":"2026-09-02","startTime":"10:00","name":"Max","email":"max@example.com"}`

func TestHandle_Created(t *testing.T) {
	uc := &stubUseCase{resp: &createBooking.Response{
		Date:            time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC),
		StartMin:        600,
		EndMin:          630,
		ServiceID:       "cut-men-30",
		ServiceName:     "Herrenhaarschnitt",
		Stylist:         "ANY",
		DurationMinutes: 30,
		RedirectURL:     "https://salon.example/thanks",
	}}

	rec := doRequest(t, uc, validBody)

	assert.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "cut-men-30", uc.gotReq.ServiceID)
	assert.Equal(t, types.MinuteOfDay(600), uc.gotReq.StartMin)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2026-09-02", resp.Date)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "10:30", resp.EndTime)
	assert.Equal(t, "https://salon.example/thanks", resp.RedirectURL)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		useCaseErr error
		wantStatus int
	}{
		{name: "slot taken", useCaseErr: createBooking.ErrSlotTaken, wantStatus: http.StatusConflict},
		{name: "salon closed", useCaseErr: createBooking.ErrSalonClosed, wantStatus: http.StatusBadRequest},
		{name: "no slot selected", useCaseErr: createBooking.ErrNoSlotSelected, wantStatus: http.StatusBadRequest},
		{name: "unknown service", useCaseErr: createBooking.ErrUnknownService, wantStatus: http.StatusNotFound},
		{name: "invalid time slot", useCaseErr: createBooking.ErrInvalidTimeSlot, wantStatus: http.StatusBadRequest},
		{name: "invalid input", useCaseErr: createBooking.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal", useCaseErr: createBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &stubUseCase{err: tt.useCaseErr}, validBody)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var errResp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
			assert.Equal(t, tt.wantStatus, errResp.Code)
			assert.NotEmpty(t, errResp.Message)
		})
	}
}

func TestHandle_MalformedBody(t *testing.T) {
	rec := doRequest(t, &stubUseCase{}, `{broken`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UnknownFieldRejected(t *testing.T) {
	rec := doRequest(t, &stubUseCase{}, `{"serviceId":"x","unknown":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidDateAndTime(t *testing.T) {
	rec := doRequest(t, &stubUseCase{}, `{"serviceId":"x","date":"02.09.2026","startTime":"10:00","name":"Max","email":"max@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, &stubUseCase{}, `{"serviceId":"x","date":"2026-09-02","startTime":"25:99","name":"Max","email":"max@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_EmptyStartTimeReachesUseCase(t *testing.T) {
	// Пустое время - это "слот не выбран", а не ошибка формата:
	// запрос должен дойти до use case с отрицательным StartMin
	uc := &stubUseCase{err: createBooking.ErrNoSlotSelected}
	body := `{"serviceId":"cut-men-30","date":"2026-09-02","startTime":"","name":"Max","email":"max@example.com"}`

	rec := doRequest(t, uc, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, types.MinuteOfDay(-1), uc.gotReq.StartMin)
}
