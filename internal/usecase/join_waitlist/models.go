package join_waitlist

import "time"

// Request модель запроса на постановку в лист ожидания
type Request struct {
	Date      time.Time // День, на который клиент хочет попасть
	ServiceID string    // ID услуги из каталога
	Stylist   string    // Предпочтение стилиста; пустая строка = ANY
	Name      string    // Имя клиента
	Email     string    // E-mail клиента
}

// Response модель ответа на постановку в лист ожидания
type Response struct {
	ID          string    // ID созданной записи
	Date        time.Time // День листа ожидания
	ServiceID   string
	ServiceName string // Снапшот эффективного имени услуги
	Stylist     string
	CreatedAt   time.Time
}
