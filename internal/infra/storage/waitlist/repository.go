package waitlist

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/infra/storage/kv"
)

// dayKeyPrefix префикс ключа листа ожидания на дату.
// Формат унаследован от исходного виджета.
const dayKeyPrefix = "waitlist-"

// entryRecord формат записи листа ожидания в хранилище
type entryRecord struct {
	ID          string `json:"id"`
	CreatedAt   string `json:"createdAt"` // RFC3339
	Name        string `json:"name"`
	Email       string `json:"email"`
	ServiceID   string `json:"serviceId"`
	ServiceName string `json:"serviceName"`
	Stylist     string `json:"stylist"`
}

// Repository репозиторий листа ожидания поверх key-value хранилища.
// Append-only: ядро записи никогда не читает обратно, потребление
// листа - задача внешнего инструмента.
type Repository struct {
	store kv.Store
}

// NewRepository создает новый экземпляр репозитория листа ожидания
func NewRepository(store kv.Store) *Repository {
	return &Repository{store: store}
}

// DayKey возвращает ключ хранилища для указанной даты
func DayKey(date time.Time) string {
	return dayKeyPrefix + date.Format(domain.DateFormat)
}

// Append добавляет запись в лист ожидания даты
func (r *Repository) Append(ctx context.Context, date time.Time, entry domain.WaitlistEntry) error {
	key := DayKey(date)

	raw, found, err := r.store.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("%w: Append - key=%s: %v", ErrStoreRead, key, err)
	}

	var records []entryRecord
	if found {
		if err := json.Unmarshal(raw, &records); err != nil {
			return fmt.Errorf("%w: Append - key=%s: %v", ErrDecode, key, err)
		}
	}

	records = append(records, entryRecord{
		ID:          entry.ID,
		CreatedAt:   entry.CreatedAt.Format(time.RFC3339),
		Name:        entry.Name,
		Email:       entry.Email,
		ServiceID:   entry.ServiceID,
		ServiceName: entry.ServiceName,
		Stylist:     entry.Stylist,
	})

	out, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: Append - key=%s: %v", ErrEncode, key, err)
	}

	if err := r.store.Set(ctx, key, out); err != nil {
		return fmt.Errorf("%w: Append - key=%s: %v", ErrStoreWrite, key, err)
	}

	return nil
}
