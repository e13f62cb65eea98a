package models

import (
	"time"

	"github.com/m04kA/BKT-BookingService/internal/domain"
)

// BookingResponse модель бронирования для читающих операций
type BookingResponse struct {
	ID             int64
	RefID          string
	ExperienceID   int64
	SlotID         int64
	CustomerName   string
	CustomerEmail  string
	Quantity       int
	Subtotal       float64
	DiscountAmount float64
	TaxAmount      float64
	TotalAmount    float64
	PromoCode      *string
	CreatedAt      time.Time
}

// FromDomainBooking конвертирует доменную модель бронирования в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:             b.ID,
		RefID:          b.RefID,
		ExperienceID:   b.ExperienceID,
		SlotID:         b.SlotID,
		CustomerName:   b.CustomerName,
		CustomerEmail:  b.CustomerEmail,
		Quantity:       b.Quantity,
		Subtotal:       b.Subtotal,
		DiscountAmount: b.DiscountAmount,
		TaxAmount:      b.TaxAmount,
		TotalAmount:    b.TotalAmount,
		PromoCode:      b.PromoCode,
		CreatedAt:      b.CreatedAt,
	}
}
