package create_booking

import (
	"time"

	createBooking "github.com/m04kA/BKT-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ExperienceID  int64   `json:"experienceId"`
	SlotID        int64   `json:"slotId"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	Quantity      int     `json:"quantity"`
	PromoCode     *string `json:"promoCode,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             int64   `json:"id"`
	RefID          string  `json:"refId"`
	ExperienceID   int64   `json:"experienceId"`
	SlotID         int64   `json:"slotId"`
	CustomerName   string  `json:"customerName"`
	CustomerEmail  string  `json:"customerEmail"`
	Quantity       int     `json:"quantity"`
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discountAmount"`
	TaxAmount      float64 `json:"taxAmount"`
	TotalAmount    float64 `json:"totalAmount"`
	PromoCode      *string `json:"promoCode,omitempty"`
	CreatedAt      string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	// Пустой промокод трактуем как отсутствующий
	promoCode := r.PromoCode
	if promoCode != nil && *promoCode == "" {
		promoCode = nil
	}

	return &createBooking.Request{
		ExperienceID:  r.ExperienceID,
		SlotID:        r.SlotID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		Quantity:      r.Quantity,
		PromoCode:     promoCode,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:             resp.ID,
		RefID:          resp.RefID,
		ExperienceID:   resp.ExperienceID,
		SlotID:         resp.SlotID,
		CustomerName:   resp.CustomerName,
		CustomerEmail:  resp.CustomerEmail,
		Quantity:       resp.Quantity,
		Subtotal:       resp.Subtotal,
		DiscountAmount: resp.DiscountAmount,
		TaxAmount:      resp.TaxAmount,
		TotalAmount:    resp.TotalAmount,
		PromoCode:      resp.PromoCode,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
	}
}
