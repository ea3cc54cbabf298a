package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/integrations/mailer"
	catalogService "github.com/m04kA/SMC-SalonBooking/internal/service/catalog"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// UseCase use case создания бронирования.
//
// Между чтением журнала и дописыванием бронирования нет ни транзакции,
// ни блокировки: другой клиент может успеть занять слот в этом окне.
// Повторная проверка коллизии прямо перед записью сужает окно, но не
// закрывает его. Это принятое ограничение: честная многоклиентская
// консистентность требует серверного арбитра за пределами этого ядра.
type UseCase struct {
	ledgerRepo LedgerRepository
	catalog    Catalog
	calendar   *domain.CalendarPolicy
	mailer     Mailer
	thanksURL  string
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	ledgerRepo LedgerRepository,
	catalog Catalog,
	calendar *domain.CalendarPolicy,
	mailSender Mailer,
	thanksURL string,
	logger Logger,
) *UseCase {
	return &UseCase{
		ledgerRepo: ledgerRepo,
		catalog:    catalog,
		calendar:   calendar,
		mailer:     mailSender,
		thanksURL:  thanksURL,
		logger:     logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: service=%s, stylist=%q, date=%s, time=%s",
		req.ServiceID, req.Stylist, req.Date.Format(domain.DateFormat), req.StartMin)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Закрытый день блокирует отправку
	if uc.calendar.IsClosed(req.Date) {
		uc.logger.Warn("CreateBooking: salon closed on %s", req.Date.Format(domain.DateFormat))
		return nil, ErrSalonClosed
	}

	// 3. Получаем эффективное представление услуги
	service, err := uc.catalog.Effective(req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogService.ErrUnknownService) {
			uc.logger.Warn("CreateBooking: service id=%s not found", req.ServiceID)
			return nil, ErrUnknownService
		}
		uc.logger.Error("CreateBooking: failed to resolve service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to resolve service: %v", ErrInternal, err)
	}

	stylist := req.Stylist
	if stylist == "" {
		stylist = domain.StylistAny
	}

	start := req.StartMin
	end := start.Add(service.DurationMinutes)

	// 4. Проверяем, что интервал внутри рабочих часов
	if err := validateTimeSlot(start, end); err != nil {
		uc.logger.Warn("CreateBooking: time slot validation failed: %v", err)
		return nil, err
	}

	// 5. Перечитываем журнал и повторяем проверку коллизии:
	// слот мог быть занят после показа списка слотов
	ledger, err := uc.ledgerRepo.Get(ctx, req.Date)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get day ledger: %v", err)
		return nil, fmt.Errorf("%w: failed to get day ledger: %v", ErrInternal, err)
	}

	if ledger.HasCollision(stylist, start, end) {
		uc.logger.Warn("CreateBooking: slot taken, stylist=%s, interval=[%s, %s)", stylist, start, end)
		return nil, ErrSlotTaken
	}

	// 6. Дописываем бронирование в журнал
	booking := domain.Booking{
		Stylist:  stylist,
		StartMin: start,
		EndMin:   end,
	}
	if err := uc.ledgerRepo.Append(ctx, req.Date, booking); err != nil {
		uc.logger.Error("CreateBooking: failed to append booking: %v", err)
		return nil, fmt.Errorf("%w: failed to append booking: %v", ErrInternal, err)
	}

	// 7. Письмо-подтверждение best-effort: неудача логируется и глотается,
	// бронирование в любом случае состоялось
	uc.sendConfirmation(ctx, req, &service, start)

	// 8. Решение о редиректе: платежная ссылка при требуемой предоплате,
	// иначе thank-you страница
	redirect := uc.thanksURL
	if service.RequireDeposit && service.PaymentLink != "" {
		redirect = service.PaymentLink
	}

	uc.logger.Info("CreateBooking: booked service=%s, stylist=%s, date=%s %s, redirect=%s",
		req.ServiceID, stylist, req.Date.Format(domain.DateFormat), start, redirect)

	return &Response{
		Date:            req.Date,
		StartMin:        start,
		EndMin:          end,
		ServiceID:       service.ID,
		ServiceName:     service.Name,
		Stylist:         stylist,
		DurationMinutes: service.DurationMinutes,
		RequireDeposit:  service.RequireDeposit,
		DepositAmount:   service.Deposit,
		RedirectURL:     redirect,
	}, nil
}

func (uc *UseCase) sendConfirmation(ctx context.Context, req *Request, service *domain.EffectiveService, start types.MinuteOfDay) {
	deposit := "0 €"
	if service.RequireDeposit {
		deposit = fmt.Sprintf("%.2f €", service.Deposit)
	}

	msg := mailer.BookingConfirmation{
		ToEmail:       req.Email,
		CustomerName:  req.Name,
		ServiceName:   service.Name,
		Date:          req.Date.Format(domain.DateFormat),
		Time:          start.String(),
		DepositAmount: deposit,
	}

	if err := uc.mailer.SendBookingConfirmation(ctx, msg); err != nil {
		uc.logger.Warn("CreateBooking: confirmation email failed (ignored): %v", err)
	}
}
