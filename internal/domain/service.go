package domain

// Service represents a catalog entry loaded from the external services
// document. Immutable once loaded for a session.
type Service struct {
	ID              string
	Name            string
	DurationMinutes int
	Deposit         float64
	PaymentLink     string // empty = no payment link
}

// HasPaymentLink reports whether the service carries a payment link.
func (s *Service) HasPaymentLink() bool {
	return s.PaymentLink != ""
}

// ServiceOverride holds per-service configuration overrides, keyed by
// service ID in the override store. Nil fields mean "not overridden".
type ServiceOverride struct {
	DurationMinutes *int
	Deposit         *float64
	RequireDeposit  *bool
}

// IsEmpty reports whether no field is overridden.
func (o *ServiceOverride) IsEmpty() bool {
	return o.DurationMinutes == nil && o.Deposit == nil && o.RequireDeposit == nil
}

// EffectiveService is a Service with its override merged in. All
// duration/deposit/requireDeposit decisions downstream use this view.
type EffectiveService struct {
	ID              string
	Name            string
	DurationMinutes int
	Deposit         float64
	PaymentLink     string
	RequireDeposit  bool
}

// MergeService applies an override to a base service field by field.
// Precedence per field: override -> base. RequireDeposit falls back to
// "base has a payment link" when the override leaves it unset.
func MergeService(base Service, override *ServiceOverride) EffectiveService {
	eff := EffectiveService{
		ID:              base.ID,
		Name:            base.Name,
		DurationMinutes: base.DurationMinutes,
		Deposit:         base.Deposit,
		PaymentLink:     base.PaymentLink,
		RequireDeposit:  base.HasPaymentLink(),
	}

	if override == nil {
		return eff
	}

	if override.DurationMinutes != nil {
		eff.DurationMinutes = *override.DurationMinutes
	}
	if override.Deposit != nil {
		eff.Deposit = *override.Deposit
	}
	if override.RequireDeposit != nil {
		eff.RequireDeposit = *override.RequireDeposit
	}

	return eff
}
