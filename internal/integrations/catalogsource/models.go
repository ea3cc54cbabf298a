package catalogsource

// serviceRecord формат записи услуги в документе каталога
type serviceRecord struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMin"`
	Deposit         float64 `json:"deposit"`
	PaymentLink     string  `json:"paymentLink,omitempty"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
