package catalog

import "errors"

var (
	// ErrUnknownService возвращается, когда услуга с указанным ID
	// отсутствует в каталоге. В нормальном флоу не возникает.
	ErrUnknownService = errors.New("catalog.service: unknown service")

	// ErrNotLoaded возвращается при обращении к каталогу до успешного Load
	ErrNotLoaded = errors.New("catalog.service: catalog not loaded")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog.service: internal error")
)
