package catalog

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
)

// Service каталог услуг: базовые записи из внешнего источника плюс
// оверрайды из хранилища, слитые в эффективное представление.
//
// Load вызывается один раз при старте; после этого каталог только
// читается. Производный requireDeposit вычисляется на этапе Load и
// записывается в in-memory карту оверрайдов - в персистентное хранилище
// он НЕ сохраняется, это явное действие внешнего админ-инструмента.
type Service struct {
	source        CatalogSource
	overridesRepo OverridesRepository
	logger        Logger

	services  []domain.Service // порядок каталога сохраняется
	byID      map[string]int
	overrides map[string]domain.ServiceOverride
	loaded    bool
}

// NewService создает новый экземпляр сервиса каталога
func NewService(source CatalogSource, overridesRepo OverridesRepository, logger Logger) *Service {
	return &Service{
		source:        source,
		overridesRepo: overridesRepo,
		logger:        logger,
	}
}

// Load загружает каталог и оверрайды.
// Ошибка загрузки каталога фатальна (пробрасывается как есть - вызывающий
// матчит на catalogsource.ErrCatalogUnavailable). Ошибка чтения оверрайдов
// из-за битого содержимого не возникает вовсе: репозиторий возвращает
// пустую карту (политика silent-default).
func (s *Service) Load(ctx context.Context) error {
	services, err := s.source.FetchServices(ctx)
	if err != nil {
		return err
	}

	ov, err := s.overridesRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("%w: Load - failed to load overrides: %v", ErrInternal, err)
	}

	byID := make(map[string]int, len(services))
	for i, svc := range services {
		byID[svc.ID] = i

		// Выводим requireDeposit из наличия payment link, если ни в
		// хранилище, ни ранее он явно не задан
		rec := ov[svc.ID]
		if rec.RequireDeposit == nil {
			rec.RequireDeposit = ptr.Ptr(svc.HasPaymentLink())
			ov[svc.ID] = rec
		}
	}

	s.services = services
	s.byID = byID
	s.overrides = ov
	s.loaded = true

	s.logger.Info("Catalog ready: %d services, %d overrides", len(services), len(ov))
	return nil
}

// Effective возвращает эффективное представление услуги:
// базовые поля с пооверрайденными поверх, поле за полем.
func (s *Service) Effective(id string) (domain.EffectiveService, error) {
	if !s.loaded {
		return domain.EffectiveService{}, ErrNotLoaded
	}

	idx, ok := s.byID[id]
	if !ok {
		return domain.EffectiveService{}, fmt.Errorf("%w: id=%s", ErrUnknownService, id)
	}

	ov, hasOv := s.overrides[id]
	if !hasOv {
		return domain.MergeService(s.services[idx], nil), nil
	}
	return domain.MergeService(s.services[idx], &ov), nil
}

// List возвращает эффективные представления всех услуг в порядке каталога
func (s *Service) List() ([]domain.EffectiveService, error) {
	if !s.loaded {
		return nil, ErrNotLoaded
	}

	out := make([]domain.EffectiveService, len(s.services))
	for i, svc := range s.services {
		eff, err := s.Effective(svc.ID)
		if err != nil {
			return nil, err
		}
		out[i] = eff
	}
	return out, nil
}
