package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/infra/storage/kv"
	"github.com/m04kA/SMC-SalonBooking/internal/infra/storage/overrides"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubSource struct {
	services []domain.Service
	err      error
}

func (s *stubSource) FetchServices(_ context.Context) ([]domain.Service, error) {
	return s.services, s.err
}

func baseServices() []domain.Service {
	return []domain.Service{
		{ID: "cut-men-30", Name: "Herrenhaarschnitt", DurationMinutes: 30, Deposit: 10, PaymentLink: "https://pay.example/cut"},
		{ID: "color-120", Name: "Coloration", DurationMinutes: 120, Deposit: 30},
	}
}

func newLoadedService(t *testing.T, overridesDoc string) *Service {
	t.Helper()

	store := kv.NewMemoryStore()
	ctx := context.Background()
	if overridesDoc != "" {
		require.NoError(t, store.Set(ctx, "nnz-services-overrides", []byte(overridesDoc)))
	}

	svc := NewService(&stubSource{services: baseServices()}, overrides.NewRepository(store), nopLogger{})
	require.NoError(t, svc.Load(ctx))
	return svc
}

func TestService_EffectiveWithoutOverrides(t *testing.T) {
	svc := newLoadedService(t, "")

	eff, err := svc.Effective("cut-men-30")
	require.NoError(t, err)
	assert.Equal(t, 30, eff.DurationMinutes)
	assert.Equal(t, 10.0, eff.Deposit)
	// Payment link есть - предоплата требуется по умолчанию
	assert.True(t, eff.RequireDeposit)

	eff, err = svc.Effective("color-120")
	require.NoError(t, err)
	assert.False(t, eff.RequireDeposit)
}

func TestService_EffectiveAppliesOverrides(t *testing.T) {
	svc := newLoadedService(t, `{"cut-men-30":{"durationMin":45,"deposit":12.5}}`)

	eff, err := svc.Effective("cut-men-30")
	require.NoError(t, err)
	assert.Equal(t, 45, eff.DurationMinutes)
	assert.Equal(t, 12.5, eff.Deposit)
	assert.True(t, eff.RequireDeposit)
}

func TestService_OverriddenRequireDepositFallsBackToBaseDeposit(t *testing.T) {
	// requireDeposit включен оверрайдом, сумма не переопределена -
	// действует базовый депозит услуги
	svc := newLoadedService(t, `{"color-120":{"requireDeposit":true}}`)

	eff, err := svc.Effective("color-120")
	require.NoError(t, err)
	assert.True(t, eff.RequireDeposit)
	assert.Equal(t, 30.0, eff.Deposit)
	assert.Equal(t, 120, eff.DurationMinutes)
}

func TestService_MalformedOverridesDocumentIsIgnored(t *testing.T) {
	svc := newLoadedService(t, `{broken json`)

	eff, err := svc.Effective("cut-men-30")
	require.NoError(t, err)
	assert.Equal(t, 30, eff.DurationMinutes)
	assert.True(t, eff.RequireDeposit)
}

func TestService_UnknownService(t *testing.T) {
	svc := newLoadedService(t, "")

	_, err := svc.Effective("no-such-service")
	assert.ErrorIs(t, err, ErrUnknownService)
}

func TestService_NotLoaded(t *testing.T) {
	svc := NewService(&stubSource{}, overrides.NewRepository(kv.NewMemoryStore()), nopLogger{})

	_, err := svc.Effective("cut-men-30")
	assert.ErrorIs(t, err, ErrNotLoaded)

	_, err = svc.List()
	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestService_LoadPropagatesSourceError(t *testing.T) {
	sourceErr := errors.New("catalog down")
	svc := NewService(&stubSource{err: sourceErr}, overrides.NewRepository(kv.NewMemoryStore()), nopLogger{})

	err := svc.Load(context.Background())
	assert.ErrorIs(t, err, sourceErr)
}

func TestService_ListPreservesCatalogOrder(t *testing.T) {
	svc := newLoadedService(t, "")

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "cut-men-30", list[0].ID)
	assert.Equal(t, "color-120", list[1].ID)
}
