package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// validateRequest валидирует входные данные запроса.
// Отсутствие времени или услуги - отдельная ошибка ErrNoSlotSelected:
// клиент показывает для неё собственное сообщение и предлагает лист ожидания.
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.ServiceID == "" || req.StartMin < 0 {
		return ErrNoSlotSelected
	}

	if req.Name == "" || req.Email == "" {
		return fmt.Errorf("%w: name and email are required", ErrInvalidInput)
	}

	if len(req.Name) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	if len(req.Email) > domain.MaxCustomerEmailLength || !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	return nil
}

// validateTimeSlot проверяет, что интервал лежит внутри рабочих часов
func validateTimeSlot(start, end types.MinuteOfDay) error {
	if !start.IsValid() || start < domain.OpenMinute || end > domain.CloseMinute {
		return fmt.Errorf("%w: [%s, %s) is outside business hours", ErrInvalidTimeSlot, start, end)
	}
	return nil
}
