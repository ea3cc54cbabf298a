package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID string `json:"serviceId"`
	Date      string `json:"date"`      // "2025-10-15"
	StartTime string `json:"startTime"` // "10:00"
	Stylist   string `json:"stylist,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	ServiceID       string  `json:"serviceId"`
	ServiceName     string  `json:"serviceName"`
	Stylist         string  `json:"stylist"`
	DurationMinutes int     `json:"durationMinutes"`
	RequireDeposit  bool    `json:"requireDeposit"`
	DepositAmount   float64 `json:"depositAmount"`
	RedirectURL     string  `json:"redirectUrl"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Пустое время - не ошибка формата: use case ответит ErrNoSlotSelected,
	// а клиент предложит лист ожидания
	startMin := types.MinuteOfDay(-1)
	if r.StartTime != "" {
		startMin, err = types.NewMinuteOfDayFromString(r.StartTime)
		if err != nil {
			return nil, err
		}
	}

	return &createBooking.Request{
		Date:      date,
		StartMin:  startMin,
		ServiceID: r.ServiceID,
		Stylist:   r.Stylist,
		Name:      r.Name,
		Email:     r.Email,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartMin.String(),
		EndTime:         resp.EndMin.String(),
		ServiceID:       resp.ServiceID,
		ServiceName:     resp.ServiceName,
		Stylist:         resp.Stylist,
		DurationMinutes: resp.DurationMinutes,
		RequireDeposit:  resp.RequireDeposit,
		DepositAmount:   resp.DepositAmount,
		RedirectURL:     resp.RedirectURL,
	}
}
