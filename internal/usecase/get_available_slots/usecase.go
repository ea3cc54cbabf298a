package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	catalogService "github.com/m04kA/SMC-SalonBooking/internal/service/catalog"
)

// UseCase use case для получения доступных слотов для бронирования.
// Результат пересчитывается заново на каждый вызов, кеширования нет.
type UseCase struct {
	ledgerRepo LedgerRepository
	catalog    Catalog
	calendar   *domain.CalendarPolicy
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	ledgerRepo LedgerRepository,
	catalog Catalog,
	calendar *domain.CalendarPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		ledgerRepo: ledgerRepo,
		catalog:    catalog,
		calendar:   calendar,
		logger:     logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%s, stylist=%q, date=%s",
		req.ServiceID, req.Stylist, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	stylist := normalizeStylist(req.Stylist)

	// 2. Закрытый день обрезает флоу до обращения к журналу:
	// "закрыто" и "нет свободных слотов" - разные состояния для клиента
	if uc.calendar.IsClosed(req.Date) {
		uc.logger.Info("GetAvailableSlots: salon closed on %s", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:         req.Date,
			ServiceID:    req.ServiceID,
			Stylist:      stylist,
			Closed:       true,
			NextOpenDate: uc.calendar.NextOpenDate(req.Date),
			Slots:        nil,
		}, nil
	}

	// 3. Получаем эффективное представление услуги
	service, err := uc.catalog.Effective(req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogService.ErrUnknownService) {
			uc.logger.Warn("GetAvailableSlots: service id=%s not found", req.ServiceID)
			return nil, ErrUnknownService
		}
		uc.logger.Error("GetAvailableSlots: failed to resolve service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to resolve service: %v", ErrInternal, err)
	}

	// 4. Получаем журнал занятости на дату
	ledger, err := uc.ledgerRepo.Get(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get day ledger: %v", err)
		return nil, fmt.Errorf("%w: failed to get day ledger: %v", ErrInternal, err)
	}

	// 5. Перечисляем свободные слоты
	slots := generateSlots(ledger, service.DurationMinutes, stylist)

	uc.logger.Info("GetAvailableSlots: %d slots for service=%s, stylist=%s, date=%s",
		len(slots), req.ServiceID, stylist, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		ServiceID:       req.ServiceID,
		Stylist:         stylist,
		DurationMinutes: service.DurationMinutes,
		Closed:          false,
		NextOpenDate:    req.Date,
		Slots:           slots,
	}, nil
}
