package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date      time.Time // Дата, на которую запрашиваются слоты
	ServiceID string    // ID услуги из каталога
	Stylist   string    // Предпочтение стилиста; пустая строка = ANY
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time           // Дата, на которую запрашивались слоты
	ServiceID       string              // ID услуги
	Stylist         string              // Нормализованное предпочтение стилиста
	DurationMinutes int                 // Эффективная длительность услуги
	Closed          bool                // Салон закрыт в эту дату (отдельное состояние, не "нет слотов")
	NextOpenDate    time.Time           // Ближайший открытый день начиная с запрошенной даты
	Slots           []types.MinuteOfDay // Свободные времена начала по возрастанию
}
