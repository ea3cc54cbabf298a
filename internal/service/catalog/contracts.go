package catalog

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// CatalogSource интерфейс источника каталога услуг
type CatalogSource interface {
	FetchServices(ctx context.Context) ([]domain.Service, error)
}

// OverridesRepository интерфейс репозитория оверрайдов услуг
type OverridesRepository interface {
	Load(ctx context.Context) (map[string]domain.ServiceOverride, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
