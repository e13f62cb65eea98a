package create_booking

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/BKT-BookingService/internal/domain"
)

// maxPromoCodeLength максимальная длина промокода (по ширине колонки в БД)
const maxPromoCodeLength = 64

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ExperienceID <= 0 {
		return fmt.Errorf("%w: experienceID must be positive", ErrInvalidInput)
	}

	if req.SlotID <= 0 {
		return fmt.Errorf("%w: slotID must be positive", ErrInvalidInput)
	}

	if req.Quantity < domain.MinQuantity || req.Quantity > domain.MaxQuantity {
		return fmt.Errorf("%w: quantity must be between %d and %d",
			ErrInvalidInput, domain.MinQuantity, domain.MaxQuantity)
	}

	// Длина имени считается в символах, не в байтах
	name := strings.TrimSpace(req.CustomerName)
	nameLen := utf8.RuneCountInString(name)
	if nameLen < domain.MinCustomerNameLength || nameLen > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName must be between %d and %d characters",
			ErrInvalidInput, domain.MinCustomerNameLength, domain.MaxCustomerNameLength)
	}

	if err := validateEmail(req.CustomerEmail); err != nil {
		return err
	}

	if req.PromoCode != nil && len(*req.PromoCode) > maxPromoCodeLength {
		return fmt.Errorf("%w: promoCode is too long", ErrInvalidInput)
	}

	return nil
}

// validateEmail проверяет формат email
func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: customerEmail is required", ErrInvalidInput)
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: invalid customerEmail format", ErrInvalidInput)
	}

	return nil
}
