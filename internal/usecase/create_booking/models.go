package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Date      time.Time         // Дата бронирования
	StartMin  types.MinuteOfDay // Время начала
	ServiceID string            // ID услуги из каталога
	Stylist   string            // Предпочтение стилиста; пустая строка = ANY
	Name      string            // Имя клиента
	Email     string            // E-mail клиента
}

// Response модель ответа на создание бронирования
type Response struct {
	Date            time.Time
	StartMin        types.MinuteOfDay
	EndMin          types.MinuteOfDay
	ServiceID       string
	ServiceName     string
	Stylist         string
	DurationMinutes int
	RequireDeposit  bool
	DepositAmount   float64
	RedirectURL     string // payment link при требуемой предоплате, иначе thank-you страница
}
