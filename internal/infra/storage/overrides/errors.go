package overrides

import "errors"

var (
	// ErrStoreRead возвращается при ошибке чтения из key-value хранилища
	ErrStoreRead = errors.New("overrides.repository: failed to read from store")

	// ErrStoreWrite возвращается при ошибке записи в key-value хранилище
	ErrStoreWrite = errors.New("overrides.repository: failed to write to store")

	// ErrEncode возвращается при ошибке сериализации оверрайдов
	ErrEncode = errors.New("overrides.repository: failed to encode overrides")
)
