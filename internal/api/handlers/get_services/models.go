package get_services

import "github.com/m04kA/SMC-SalonBooking/internal/domain"

// ServiceResponse эффективное представление услуги для дропдауна виджета
type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Deposit         float64 `json:"deposit"`
	RequireDeposit  bool    `json:"requireDeposit"`
}

// ServicesResponse HTTP response model
type ServicesResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromEffectiveServices конвертирует каталог в HTTP response
func FromEffectiveServices(services []domain.EffectiveService) *ServicesResponse {
	out := make([]ServiceResponse, len(services))
	for i, s := range services {
		out[i] = ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			DurationMinutes: s.DurationMinutes,
			Deposit:         s.Deposit,
			RequireDeposit:  s.RequireDeposit,
		}
	}
	return &ServicesResponse{Services: out}
}
