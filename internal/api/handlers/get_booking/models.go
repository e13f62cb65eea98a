package get_booking

import (
	"time"

	"github.com/m04kA/BKT-BookingService/internal/service/bookings/models"
)

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

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.BookingResponse) *BookingResponse {
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
