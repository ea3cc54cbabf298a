package join_waitlist

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/infra/storage/kv"
	"github.com/m04kA/SMC-SalonBooking/internal/infra/storage/waitlist"
	catalogService "github.com/m04kA/SMC-SalonBooking/internal/service/catalog"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubCatalog struct {
	services map[string]domain.EffectiveService
}

func (c *stubCatalog) Effective(id string) (domain.EffectiveService, error) {
	svc, ok := c.services[id]
	if !ok {
		return domain.EffectiveService{}, catalogService.ErrUnknownService
	}
	return svc, nil
}

type fixedTime struct{ now time.Time }

func (p fixedTime) Now() time.Time { return p.now }

var (
	saturday = time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC)
	joinedAt = time.Date(2026, time.September, 2, 15, 45, 0, 0, time.UTC)
)

func newTestUseCase(store kv.Store) *UseCase {
	catalog := &stubCatalog{services: map[string]domain.EffectiveService{
		"cut-men-30": {ID: "cut-men-30", Name: "Herrenhaarschnitt", DurationMinutes: 30},
	}}
	uc := NewUseCase(waitlist.NewRepository(store), catalog, nopLogger{})
	uc.timeProvider = fixedTime{now: joinedAt}
	return uc
}

func validRequest() *Request {
	return &Request{
		Date:      saturday,
		ServiceID: "cut-men-30",
		Name:      "Erika Musterfrau",
		Email:     "erika@example.com",
	}
}

func TestExecute_CreatesEntry(t *testing.T) {
	store := kv.NewMemoryStore()
	uc := newTestUseCase(store)
	ctx := context.Background()

	resp, err := uc.Execute(ctx, validRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, saturday, resp.Date)
	assert.Equal(t, "cut-men-30", resp.ServiceID)
	// Имя услуги снапшотится на момент записи
	assert.Equal(t, "Herrenhaarschnitt", resp.ServiceName)
	assert.Equal(t, domain.StylistAny, resp.Stylist)
	assert.Equal(t, joinedAt, resp.CreatedAt)

	raw, found, err := store.Get(ctx, waitlist.DayKey(saturday))
	require.NoError(t, err)
	require.True(t, found)
	assert.Contains(t, string(raw), resp.ID)
	assert.Contains(t, string(raw), "Erika Musterfrau")
}

func TestExecute_KeepsStylistPreference(t *testing.T) {
	uc := newTestUseCase(kv.NewMemoryStore())

	req := validRequest()
	req.Stylist = "anna"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "anna", resp.Stylist)
}

func TestExecute_EntriesGetDistinctIDs(t *testing.T) {
	uc := newTestUseCase(kv.NewMemoryStore())
	ctx := context.Background()

	first, err := uc.Execute(ctx, validRequest())
	require.NoError(t, err)
	second, err := uc.Execute(ctx, validRequest())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestExecute_UnknownService(t *testing.T) {
	uc := newTestUseCase(kv.NewMemoryStore())

	req := validRequest()
	req.ServiceID = "no-such"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrUnknownService)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(kv.NewMemoryStore())
	ctx := context.Background()

	req := validRequest()
	req.Date = time.Time{}
	_, err := uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.Email = "no-at-sign"
	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
