package waitlist

import "errors"

var (
	// ErrStoreRead возвращается при ошибке чтения из key-value хранилища
	ErrStoreRead = errors.New("waitlist.repository: failed to read from store")

	// ErrStoreWrite возвращается при ошибке записи в key-value хранилище
	ErrStoreWrite = errors.New("waitlist.repository: failed to write to store")

	// ErrDecode возвращается при некорректном содержимом листа ожидания
	ErrDecode = errors.New("waitlist.repository: failed to decode waitlist")

	// ErrEncode возвращается при ошибке сериализации листа ожидания
	ErrEncode = errors.New("waitlist.repository: failed to encode waitlist")
)
