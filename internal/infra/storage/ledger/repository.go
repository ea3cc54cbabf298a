package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/infra/storage/kv"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Ключи хранилища. Формат унаследован от исходного виджета,
// менять нельзя - по этим же ключам записаны данные существующих инсталляций.
const (
	dayKeyPrefix  = "bookings-"
	seedMarkerKey = "cutlendly-seeded"
)

// bookingRecord формат бронирования в хранилище
type bookingRecord struct {
	Stylist  string `json:"stylist"`
	StartMin int    `json:"startMin"`
	EndMin   int    `json:"endMin"`
	Seed     bool   `json:"seed,omitempty"`
}

// Repository репозиторий журнала занятости (Day Ledger) поверх key-value хранилища.
// Одна запись на календарную дату, значение - список занятых интервалов.
type Repository struct {
	store kv.Store
}

// NewRepository создает новый экземпляр репозитория журнала занятости
func NewRepository(store kv.Store) *Repository {
	return &Repository{store: store}
}

// DayKey возвращает ключ хранилища для указанной даты
func DayKey(date time.Time) string {
	return dayKeyPrefix + date.Format(domain.DateFormat)
}

// Get возвращает журнал занятости на дату.
// Отсутствие записи - пустой журнал, не ошибка.
func (r *Repository) Get(ctx context.Context, date time.Time) (domain.DayLedger, error) {
	raw, found, err := r.store.Get(ctx, DayKey(date))
	if err != nil {
		return nil, fmt.Errorf("%w: Get - key=%s: %v", ErrStoreRead, DayKey(date), err)
	}
	if !found {
		return domain.DayLedger{}, nil
	}

	var records []bookingRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: Get - key=%s: %v", ErrDecode, DayKey(date), err)
	}

	out := make(domain.DayLedger, len(records))
	for i, rec := range records {
		out[i] = domain.Booking{
			Stylist:  rec.Stylist,
			StartMin: types.MinuteOfDay(rec.StartMin),
			EndMin:   types.MinuteOfDay(rec.EndMin),
			Seed:     rec.Seed,
		}
	}
	return out, nil
}

// Append добавляет одно бронирование в журнал даты и сохраняет его.
// Дедупликации и проверки пересечений нет - вызывающий обязан перепроверить
// коллизии непосредственно перед вызовом (см. usecase create_booking).
func (r *Repository) Append(ctx context.Context, date time.Time, booking domain.Booking) error {
	current, err := r.Get(ctx, date)
	if err != nil {
		return err
	}

	records := make([]bookingRecord, 0, len(current)+1)
	for _, b := range current {
		records = append(records, bookingRecord{
			Stylist:  b.Stylist,
			StartMin: int(b.StartMin),
			EndMin:   int(b.EndMin),
			Seed:     b.Seed,
		})
	}
	records = append(records, bookingRecord{
		Stylist:  booking.Stylist,
		StartMin: int(booking.StartMin),
		EndMin:   int(booking.EndMin),
		Seed:     booking.Seed,
	})

	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: Append - key=%s: %v", ErrEncode, DayKey(date), err)
	}

	if err := r.store.Set(ctx, DayKey(date), raw); err != nil {
		return fmt.Errorf("%w: Append - key=%s: %v", ErrStoreWrite, DayKey(date), err)
	}

	return nil
}

// Seeded проверяет, выполнялся ли уже одноразовый посев демо-данных
func (r *Repository) Seeded(ctx context.Context) (bool, error) {
	_, found, err := r.store.Get(ctx, seedMarkerKey)
	if err != nil {
		return false, fmt.Errorf("%w: Seeded: %v", ErrStoreRead, err)
	}
	return found, nil
}

// MarkSeeded устанавливает маркер посева демо-данных
func (r *Repository) MarkSeeded(ctx context.Context) error {
	if err := r.store.Set(ctx, seedMarkerKey, []byte(`"1"`)); err != nil {
		return fmt.Errorf("%w: MarkSeeded: %v", ErrStoreWrite, err)
	}
	return nil
}
