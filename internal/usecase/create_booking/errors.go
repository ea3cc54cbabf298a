package create_booking

import "errors"

var (
	// ErrSalonClosed возвращается при попытке бронирования на закрытый день
	ErrSalonClosed = errors.New("salon is closed on this date")

	// ErrNoSlotSelected возвращается, когда не выбрано время или услуга
	ErrNoSlotSelected = errors.New("no slot selected")

	// ErrSlotTaken возвращается, когда выбранный слот занят.
	// В том числе ловит слот, занятый между показом списка и отправкой формы.
	ErrSlotTaken = errors.New("slot is already taken")

	// ErrUnknownService возвращается, когда услуга не найдена в каталоге
	ErrUnknownService = errors.New("unknown service")

	// ErrInvalidTimeSlot возвращается при времени вне рабочих часов
	ErrInvalidTimeSlot = errors.New("invalid time slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
