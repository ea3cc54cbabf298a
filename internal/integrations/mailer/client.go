package mailer

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// BookingConfirmation данные письма-подтверждения бронирования.
// Набор полей повторяет шаблон письма исходного виджета.
type BookingConfirmation struct {
	ToEmail       string
	CustomerName  string
	ServiceName   string
	Date          string // YYYY-MM-DD
	Time          string // HH:MM
	DepositAmount string // например "15 €" или "0 €"
}

// Sender интерфейс отправки писем-подтверждений.
// Реализации: SendGrid и заглушка для выключенной почты/тестов.
type Sender interface {
	SendBookingConfirmation(ctx context.Context, msg BookingConfirmation) error
}

// Client отправляет письма через SendGrid API
type Client struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
	salonName string
	log       Logger
}

// NewClient создает новый экземпляр SendGrid клиента
func NewClient(apiKey, fromEmail, fromName, salonName string, log Logger) *Client {
	return &Client{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
		salonName: salonName,
		log:       log,
	}
}

// SendBookingConfirmation отправляет письмо-подтверждение бронирования
func (c *Client) SendBookingConfirmation(ctx context.Context, msg BookingConfirmation) error {
	from := mail.NewEmail(c.fromName, c.fromEmail)
	to := mail.NewEmail(msg.CustomerName, msg.ToEmail)

	subject := fmt.Sprintf("%s: подтверждение записи на %s %s", c.salonName, msg.Date, msg.Time)
	body := fmt.Sprintf(
		"%s,\n\nваша запись подтверждена.\n\nУслуга: %s\nДата: %s\nВремя: %s\nПредоплата: %s\n\n%s",
		msg.CustomerName, msg.ServiceName, msg.Date, msg.Time, msg.DepositAmount, c.salonName,
	)

	message := mail.NewSingleEmail(from, subject, to, body, body)

	resp, err := c.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDispatch, err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: sendgrid returned status %d: %s", ErrDispatch, resp.StatusCode, resp.Body)
	}

	c.log.Info("Confirmation email sent to %s (status=%d)", msg.ToEmail, resp.StatusCode)
	return nil
}

// StubClient заглушка отправителя: логирует письмо и ничего не отправляет.
// Используется, когда почта выключена в конфигурации, и в тестах.
type StubClient struct {
	log Logger
}

// NewStubClient создает клиента-заглушку
func NewStubClient(log Logger) *StubClient {
	return &StubClient{log: log}
}

// SendBookingConfirmation логирует письмо без отправки
func (c *StubClient) SendBookingConfirmation(_ context.Context, msg BookingConfirmation) error {
	c.log.Info("Mail disabled, skipping confirmation email to %s (service=%s, date=%s %s)",
		msg.ToEmail, msg.ServiceName, msg.Date, msg.Time)
	return nil
}
