package validate_promo

import (
	validatePromo "github.com/m04kA/BKT-BookingService/internal/usecase/validate_promo"
)

// ValidatePromoRequest HTTP request model
type ValidatePromoRequest struct {
	Code   string  `json:"code"`
	Amount float64 `json:"amount"`
}

// ValidatePromoResponse HTTP response model.
// Для неприменимого кода возвращается valid=false с пояснением.
type ValidatePromoResponse struct {
	Valid          bool    `json:"valid"`
	DiscountAmount float64 `json:"discountAmount,omitempty"`
	DiscountType   string  `json:"discountType,omitempty"`
	Error          string  `json:"error,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ValidatePromoRequest) ToUseCaseRequest() *validatePromo.Request {
	return &validatePromo.Request{
		Code:   r.Code,
		Amount: r.Amount,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *validatePromo.Response) *ValidatePromoResponse {
	if !resp.Valid {
		return &ValidatePromoResponse{
			Valid: false,
			Error: "промокод не существует или неприменим к заказу",
		}
	}

	return &ValidatePromoResponse{
		Valid:          true,
		DiscountAmount: resp.DiscountAmount,
		DiscountType:   resp.DiscountType,
	}
}
