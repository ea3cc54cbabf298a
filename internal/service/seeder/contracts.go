package seeder

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// LedgerRepository интерфейс репозитория журнала занятости
type LedgerRepository interface {
	Append(ctx context.Context, date time.Time, booking domain.Booking) error
	Seeded(ctx context.Context) (bool, error)
	MarkSeeded(ctx context.Context) error
}

// WaitlistRepository интерфейс репозитория листа ожидания
type WaitlistRepository interface {
	Append(ctx context.Context, date time.Time, entry domain.WaitlistEntry) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
