package catalogsource

import "errors"

var (
	// ErrCatalogUnavailable возвращается, когда каталог услуг не удалось
	// загрузить или распарсить. Фатально для инициализации сервиса.
	ErrCatalogUnavailable = errors.New("catalogsource client: catalog unavailable")

	// ErrInvalidResponse возвращается при некорректном содержимом каталога
	ErrInvalidResponse = errors.New("catalogsource client: invalid response")
)
