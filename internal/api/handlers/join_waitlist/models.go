package join_waitlist

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	joinWaitlist "github.com/m04kA/SMC-SalonBooking/internal/usecase/join_waitlist"
)

// JoinWaitlistRequest HTTP request model
type JoinWaitlistRequest struct {
	ServiceID string `json:"serviceId"`
	Date      string `json:"date"` // "2025-10-15"
	Stylist   string `json:"stylist,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}

// WaitlistEntryResponse HTTP response model
type WaitlistEntryResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	ServiceID   string `json:"serviceId"`
	ServiceName string `json:"serviceName"`
	Stylist     string `json:"stylist"`
	CreatedAt   string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *JoinWaitlistRequest) ToUseCaseRequest() (*joinWaitlist.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &joinWaitlist.Request{
		Date:      date,
		ServiceID: r.ServiceID,
		Stylist:   r.Stylist,
		Name:      r.Name,
		Email:     r.Email,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *joinWaitlist.Response) *WaitlistEntryResponse {
	return &WaitlistEntryResponse{
		ID:          resp.ID,
		Date:        resp.Date.Format(domain.DateFormat),
		ServiceID:   resp.ServiceID,
		ServiceName: resp.ServiceName,
		Stylist:     resp.Stylist,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}
