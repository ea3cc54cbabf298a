package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string   `json:"date"`
	ServiceID       string   `json:"serviceId"`
	Stylist         string   `json:"stylist"`
	DurationMinutes int      `json:"durationMinutes"`
	Closed          bool     `json:"closed"`
	NextOpenDate    string   `json:"nextOpenDate"`
	Slots           []string `json:"slots"` // "HH:MM", по возрастанию
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = s.String()
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		ServiceID:       resp.ServiceID,
		Stylist:         resp.Stylist,
		DurationMinutes: resp.DurationMinutes,
		Closed:          resp.Closed,
		NextOpenDate:    resp.NextOpenDate.Format(domain.DateFormat),
		Slots:           slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(serviceID, stylist, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		Date:      date,
		ServiceID: serviceID,
		Stylist:   stylist,
	}, nil
}
