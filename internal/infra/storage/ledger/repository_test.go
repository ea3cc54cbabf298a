package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/infra/storage/kv"
)

func testDate() time.Time {
	return time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC)
}

func TestDayKey(t *testing.T) {
	assert.Equal(t, "bookings-2026-09-02", DayKey(testDate()))
}

func TestRepository_GetAbsentDateIsEmptyLedger(t *testing.T) {
	repo := NewRepository(kv.NewMemoryStore())

	ledger, err := repo.Get(context.Background(), testDate())

	require.NoError(t, err)
	assert.Empty(t, ledger)
}

func TestRepository_AppendGetRoundTrip(t *testing.T) {
	repo := NewRepository(kv.NewMemoryStore())
	ctx := context.Background()

	first := domain.Booking{Stylist: domain.StylistAny, StartMin: 600, EndMin: 630, Seed: true}
	second := domain.Booking{Stylist: "anna", StartMin: 840, EndMin: 900}

	require.NoError(t, repo.Append(ctx, testDate(), first))
	require.NoError(t, repo.Append(ctx, testDate(), second))

	ledger, err := repo.Get(ctx, testDate())
	require.NoError(t, err)
	require.Len(t, ledger, 2)
	assert.Equal(t, first, ledger[0])
	assert.Equal(t, second, ledger[1])
}

func TestRepository_DatesAreIsolated(t *testing.T) {
	repo := NewRepository(kv.NewMemoryStore())
	ctx := context.Background()
	other := testDate().AddDate(0, 0, 1)

	require.NoError(t, repo.Append(ctx, testDate(), domain.Booking{Stylist: domain.StylistAny, StartMin: 600, EndMin: 630}))

	ledger, err := repo.Get(ctx, other)
	require.NoError(t, err)
	assert.Empty(t, ledger)
}

func TestRepository_GetMalformedDocument(t *testing.T) {
	store := kv.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, DayKey(testDate()), []byte("not json")))

	repo := NewRepository(store)
	_, err := repo.Get(ctx, testDate())

	assert.ErrorIs(t, err, ErrDecode)
}

func TestRepository_SeedMarker(t *testing.T) {
	repo := NewRepository(kv.NewMemoryStore())
	ctx := context.Background()

	seeded, err := repo.Seeded(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)

	require.NoError(t, repo.MarkSeeded(ctx))

	seeded, err = repo.Seeded(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)
}

func TestRepository_StorageFormatIsStable(t *testing.T) {
	// Формат значений разделяется с существующими инсталляциями виджета,
	// поэтому фиксируем его явно.
	store := kv.NewMemoryStore()
	repo := NewRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, testDate(), domain.Booking{
		Stylist: domain.StylistAny, StartMin: 600, EndMin: 630, Seed: true,
	}))

	raw, found, err := store.Get(ctx, "bookings-2026-09-02")
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `[{"stylist":"ANY","startMin":600,"endMin":630,"seed":true}]`, string(raw))
}
