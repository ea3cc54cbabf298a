package seeder

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Стартовые точки демо-бронирований: 10:00 и 14:00.
// Значения из исходного виджета - чтобы демо всегда показывало
// частично занятые дни.
const (
	seedMorningStart   = types.MinuteOfDay(10 * 60)
	seedAfternoonStart = types.MinuteOfDay(14 * 60)
)

// Service одноразовый посев демо-данных в журнал занятости.
// Должен отработать до первого запроса слотов.
type Service struct {
	ledgerRepo   LedgerRepository
	waitlistRepo WaitlistRepository
	calendar     *domain.CalendarPolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса посева
func NewService(
	ledgerRepo LedgerRepository,
	waitlistRepo WaitlistRepository,
	calendar *domain.CalendarPolicy,
	logger Logger,
) *Service {
	return &Service{
		ledgerRepo:   ledgerRepo,
		waitlistRepo: waitlistRepo,
		calendar:     calendar,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// SeedOnce идемпотентно заполняет журнал демо-бронированиями.
// Если маркер посева уже установлен - no-op. Иначе на каждый открытый
// день из окна lookaheadDays (включая сегодня) добавляет два synthetic
// бронирования (стилист ANY, 10:00 и 14:00) и ставит маркер.
func (s *Service) SeedOnce(ctx context.Context, lookaheadDays, fallbackDurationMin int) error {
	seeded, err := s.ledgerRepo.Seeded(ctx)
	if err != nil {
		return fmt.Errorf("SeedOnce - check marker: %w", err)
	}
	if seeded {
		s.logger.Info("SeedOnce: already seeded, skipping")
		return nil
	}

	today := s.timeProvider.Now()
	seededDays := 0

	for i := 0; i < lookaheadDays; i++ {
		day := today.AddDate(0, 0, i)
		if s.calendar.IsClosed(day) {
			continue
		}

		for _, start := range []types.MinuteOfDay{seedMorningStart, seedAfternoonStart} {
			booking := domain.Booking{
				Stylist:  domain.StylistAny,
				StartMin: start,
				EndMin:   start.Add(fallbackDurationMin),
				Seed:     true,
			}
			if err := s.ledgerRepo.Append(ctx, day, booking); err != nil {
				return fmt.Errorf("SeedOnce - append %s %s: %w", day.Format(domain.DateFormat), start, err)
			}
		}
		seededDays++
	}

	if err := s.ledgerRepo.MarkSeeded(ctx); err != nil {
		return fmt.Errorf("SeedOnce - set marker: %w", err)
	}

	s.logger.Info("SeedOnce: seeded %d open days over a %d-day window", seededDays, lookaheadDays)
	return nil
}

// SeedDemoWaitlistEntry добавляет демо-запись в лист ожидания на завтра.
// В отличие от SeedOnce не идемпотентен (как и в исходном виджете),
// поэтому в конфигурации выключен по умолчанию.
func (s *Service) SeedDemoWaitlistEntry(ctx context.Context, serviceID, serviceName string) error {
	tomorrow := s.timeProvider.Now().AddDate(0, 0, 1)

	entry := domain.WaitlistEntry{
		ID:          uuid.NewString(),
		CreatedAt:   s.timeProvider.Now(),
		Name:        "Max Mustermann",
		Email:       "max@example.com",
		ServiceID:   serviceID,
		ServiceName: serviceName,
		Stylist:     domain.StylistAny,
	}

	if err := s.waitlistRepo.Append(ctx, tomorrow, entry); err != nil {
		return fmt.Errorf("SeedDemoWaitlistEntry: %w", err)
	}

	s.logger.Info("SeedDemoWaitlistEntry: demo entry created for %s", tomorrow.Format(domain.DateFormat))
	return nil
}
