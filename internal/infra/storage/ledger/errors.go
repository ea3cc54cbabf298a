package ledger

import "errors"

var (
	// ErrStoreRead возвращается при ошибке чтения из key-value хранилища
	ErrStoreRead = errors.New("ledger.repository: failed to read from store")

	// ErrStoreWrite возвращается при ошибке записи в key-value хранилище
	ErrStoreWrite = errors.New("ledger.repository: failed to write to store")

	// ErrDecode возвращается при некорректном содержимом записи дня
	ErrDecode = errors.New("ledger.repository: failed to decode day ledger")

	// ErrEncode возвращается при ошибке сериализации записи дня
	ErrEncode = errors.New("ledger.repository: failed to encode day ledger")
)
