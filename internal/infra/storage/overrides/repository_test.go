package overrides

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/infra/storage/kv"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
)

func TestRepository_LoadAbsentDocument(t *testing.T) {
	repo := NewRepository(kv.NewMemoryStore())

	ov, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, ov)
	assert.NotNil(t, ov)
}

func TestRepository_LoadMalformedDocumentSilentDefault(t *testing.T) {
	store := kv.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "nnz-services-overrides", []byte("{broken")))

	repo := NewRepository(store)
	ov, err := repo.Load(ctx)

	require.NoError(t, err)
	assert.Empty(t, ov)
}

func TestRepository_LoadParsesStoredDocument(t *testing.T) {
	store := kv.NewMemoryStore()
	ctx := context.Background()
	doc := `{"cut-men-30":{"durationMin":45,"requireDeposit":true},"color-120":{"deposit":20}}`
	require.NoError(t, store.Set(ctx, "nnz-services-overrides", []byte(doc)))

	repo := NewRepository(store)
	ov, err := repo.Load(ctx)

	require.NoError(t, err)
	require.Len(t, ov, 2)

	cut := ov["cut-men-30"]
	require.NotNil(t, cut.DurationMinutes)
	assert.Equal(t, 45, *cut.DurationMinutes)
	assert.Nil(t, cut.Deposit)
	require.NotNil(t, cut.RequireDeposit)
	assert.True(t, *cut.RequireDeposit)

	color := ov["color-120"]
	require.NotNil(t, color.Deposit)
	assert.Equal(t, 20.0, *color.Deposit)
	assert.Nil(t, color.DurationMinutes)
	assert.Nil(t, color.RequireDeposit)
}

func TestRepository_SaveLoadRoundTrip(t *testing.T) {
	repo := NewRepository(kv.NewMemoryStore())
	ctx := context.Background()

	in := map[string]domain.ServiceOverride{
		"cut-men-30": {
			DurationMinutes: ptr.Ptr(45),
			Deposit:         ptr.Ptr(12.5),
			RequireDeposit:  ptr.Ptr(false),
		},
	}
	require.NoError(t, repo.Save(ctx, in))

	out, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
