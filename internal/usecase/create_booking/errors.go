package create_booking

import "errors"

var (
	// ErrSlotNotAvailable возвращается, когда слот не существует, отключен,
	// принадлежит другому experience или не имеет достаточной вместимости.
	// Это нормальный бизнес-исход, а не сбой.
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrExperienceNotFound возвращается, когда experience не найден или неактивен
	ErrExperienceNotFound = errors.New("create_booking: experience not found")

	// ErrPromoNotApplicable возвращается в строгом режиме, когда указанный
	// промокод не существует или неприменим к заказу
	ErrPromoNotApplicable = errors.New("create_booking: promo code is not applicable")

	// ErrRefIDGeneration возвращается, когда не удалось сгенерировать
	// уникальный референс за отведенное число попыток
	ErrRefIDGeneration = errors.New("create_booking: failed to generate unique booking reference")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
