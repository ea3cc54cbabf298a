package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// LedgerRepository интерфейс репозитория журнала занятости
type LedgerRepository interface {
	// Get получает журнал занятости на конкретную дату
	Get(ctx context.Context, date time.Time) (domain.DayLedger, error)
}

// Catalog интерфейс каталога услуг
type Catalog interface {
	Effective(id string) (domain.EffectiveService, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
