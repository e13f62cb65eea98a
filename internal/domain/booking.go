package domain

import "time"

// Booking represents a committed reservation with its computed pricing.
// Создается ровно один раз на успешную транзакцию бронирования и после
// этого никогда не изменяется - это иммутабельная аудиторская запись.
type Booking struct {
	ID            int64
	RefID         string
	ExperienceID  int64
	SlotID        int64
	CustomerName  string
	CustomerEmail string
	Quantity      int

	Subtotal       float64
	DiscountAmount float64
	TaxAmount      float64
	TotalAmount    float64
	PromoCode      *string

	CreatedAt time.Time
}

// HasDiscount returns true if a promo discount was applied to the booking
func (b *Booking) HasDiscount() bool {
	return b.DiscountAmount > 0
}
