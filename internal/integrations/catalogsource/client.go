package catalogsource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Client клиент источника каталога услуг.
// Каталог - read-only JSON документ по фиксированному адресу
// (статический файл рядом с виджетом либо внешний сервис).
type Client struct {
	url        string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента каталога
func NewClient(url string, timeout time.Duration, log Logger) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// FetchServices загружает каталог услуг.
// Любая ошибка сети или парсинга оборачивается в ErrCatalogUnavailable -
// ретраев нет, решение об обработке на стороне вызывающего.
func (c *Client) FetchServices(ctx context.Context) ([]domain.Service, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrCatalogUnavailable, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrCatalogUnavailable, resp.StatusCode, string(body))
	}

	var records []serviceRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: failed to decode catalog: %v", ErrCatalogUnavailable, err)
	}

	services := make([]domain.Service, 0, len(records))
	for _, rec := range records {
		if rec.ID == "" {
			return nil, fmt.Errorf("%w: service with empty id", ErrInvalidResponse)
		}
		if rec.DurationMinutes < domain.MinServiceDurationMinutes || rec.DurationMinutes > domain.MaxServiceDurationMinutes {
			return nil, fmt.Errorf("%w: service %q has duration %d outside %d..%d minutes",
				ErrInvalidResponse, rec.ID, rec.DurationMinutes, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
		}
		if rec.Deposit < 0 {
			return nil, fmt.Errorf("%w: service %q has negative deposit", ErrInvalidResponse, rec.ID)
		}
		services = append(services, domain.Service{
			ID:              rec.ID,
			Name:            rec.Name,
			DurationMinutes: rec.DurationMinutes,
			Deposit:         rec.Deposit,
			PaymentLink:     rec.PaymentLink,
		})
	}

	c.log.Info("Catalog loaded: %d services from %s", len(services), c.url)
	return services, nil
}
