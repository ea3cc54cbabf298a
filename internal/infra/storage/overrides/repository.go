package overrides

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/infra/storage/kv"
)

// storeKey ключ документа с оверрайдами услуг.
// Значение унаследовано от исходного виджета для совместимости данных.
const storeKey = "nnz-services-overrides"

// overrideRecord формат оверрайда одной услуги в хранилище
type overrideRecord struct {
	DurationMinutes *int     `json:"durationMin,omitempty"`
	Deposit         *float64 `json:"deposit,omitempty"`
	RequireDeposit  *bool    `json:"requireDeposit,omitempty"`
}

// Repository репозиторий оверрайдов услуг поверх key-value хранилища.
// Оверрайды пишутся внешним админ-инструментом; ядро их только читает,
// Save оставлен для этого внешнего сценария.
type Repository struct {
	store kv.Store
}

// NewRepository создает новый экземпляр репозитория оверрайдов
func NewRepository(store kv.Store) *Repository {
	return &Repository{store: store}
}

// Load читает карту оверрайдов из хранилища.
// Политика silent-default: битый или отсутствующий документ превращается
// в пустую карту без ошибки, ошибкой считается только отказ хранилища.
func (r *Repository) Load(ctx context.Context) (map[string]domain.ServiceOverride, error) {
	raw, found, err := r.store.Get(ctx, storeKey)
	if err != nil {
		return nil, fmt.Errorf("%w: Load - key=%s: %v", ErrStoreRead, storeKey, err)
	}
	if !found {
		return map[string]domain.ServiceOverride{}, nil
	}

	var records map[string]overrideRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		// Малформатный документ трактуем как отсутствие оверрайдов
		return map[string]domain.ServiceOverride{}, nil
	}

	out := make(map[string]domain.ServiceOverride, len(records))
	for id, rec := range records {
		out[id] = domain.ServiceOverride{
			DurationMinutes: rec.DurationMinutes,
			Deposit:         rec.Deposit,
			RequireDeposit:  rec.RequireDeposit,
		}
	}
	return out, nil
}

// Save записывает карту оверрайдов целиком
func (r *Repository) Save(ctx context.Context, ov map[string]domain.ServiceOverride) error {
	records := make(map[string]overrideRecord, len(ov))
	for id, o := range ov {
		records[id] = overrideRecord{
			DurationMinutes: o.DurationMinutes,
			Deposit:         o.Deposit,
			RequireDeposit:  o.RequireDeposit,
		}
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: Save: %v", ErrEncode, err)
	}

	if err := r.store.Set(ctx, storeKey, raw); err != nil {
		return fmt.Errorf("%w: Save - key=%s: %v", ErrStoreWrite, storeKey, err)
	}

	return nil
}
