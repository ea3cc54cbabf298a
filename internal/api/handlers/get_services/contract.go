package get_services

import (
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

type Catalog interface {
	List() ([]domain.EffectiveService, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
