package join_waitlist

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	catalogService "github.com/m04kA/SMC-SalonBooking/internal/service/catalog"
)

// UseCase use case постановки клиента в лист ожидания на день.
// Записи только добавляются; чтение и оповещение - забота внешнего
// инструмента.
type UseCase struct {
	waitlistRepo WaitlistRepository
	catalog      Catalog
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(waitlistRepo WaitlistRepository, catalog Catalog, logger Logger) *UseCase {
	return &UseCase{
		waitlistRepo: waitlistRepo,
		catalog:      catalog,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case постановки в лист ожидания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("JoinWaitlist: service=%s, date=%s", req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("JoinWaitlist: validation failed: %v", err)
		return nil, err
	}

	// 2. Снапшотим эффективное имя услуги на момент записи
	service, err := uc.catalog.Effective(req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogService.ErrUnknownService) {
			uc.logger.Warn("JoinWaitlist: service id=%s not found", req.ServiceID)
			return nil, ErrUnknownService
		}
		uc.logger.Error("JoinWaitlist: failed to resolve service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to resolve service: %v", ErrInternal, err)
	}

	stylist := req.Stylist
	if stylist == "" {
		stylist = domain.StylistAny
	}

	entry := domain.WaitlistEntry{
		ID:          uuid.NewString(),
		CreatedAt:   uc.timeProvider.Now(),
		Name:        req.Name,
		Email:       req.Email,
		ServiceID:   service.ID,
		ServiceName: service.Name,
		Stylist:     stylist,
	}

	// 3. Дописываем запись в лист ожидания дня
	if err := uc.waitlistRepo.Append(ctx, req.Date, entry); err != nil {
		uc.logger.Error("JoinWaitlist: failed to append entry: %v", err)
		return nil, fmt.Errorf("%w: failed to append entry: %v", ErrInternal, err)
	}

	uc.logger.Info("JoinWaitlist: entry id=%s created for %s", entry.ID, req.Date.Format(domain.DateFormat))

	return &Response{
		ID:          entry.ID,
		Date:        req.Date,
		ServiceID:   entry.ServiceID,
		ServiceName: entry.ServiceName,
		Stylist:     entry.Stylist,
		CreatedAt:   entry.CreatedAt,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.ServiceID == "" {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}
	if req.Name == "" || req.Email == "" {
		return fmt.Errorf("%w: name and email are required", ErrInvalidInput)
	}
	if !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	return nil
}
