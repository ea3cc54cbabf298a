package mailer

import "errors"

var (
	// ErrDispatch возвращается при неудачной отправке письма.
	// Вызывающие обязаны трактовать её как best-effort: логировать и
	// продолжать, пользователю ошибка не показывается.
	ErrDispatch = errors.New("mailer client: failed to dispatch email")
)
