package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/integrations/mailer"
)

// LedgerRepository интерфейс репозитория журнала занятости
type LedgerRepository interface {
	// Get получает журнал занятости на конкретную дату
	Get(ctx context.Context, date time.Time) (domain.DayLedger, error)
	// Append добавляет бронирование в журнал даты
	Append(ctx context.Context, date time.Time, booking domain.Booking) error
}

// Catalog интерфейс каталога услуг
type Catalog interface {
	Effective(id string) (domain.EffectiveService, error)
}

// Mailer интерфейс отправки писем-подтверждений
type Mailer interface {
	SendBookingConfirmation(ctx context.Context, msg mailer.BookingConfirmation) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
