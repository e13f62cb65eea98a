package domain

// Pricing разбивка стоимости бронирования
type Pricing struct {
	Subtotal       float64
	DiscountAmount float64
	TaxAmount      float64
	TotalAmount    float64
}

// CalculatePricing вычисляет стоимость бронирования.
// Детерминированная чистая функция:
//
//	subtotal = basePrice * quantity
//	tax      = (subtotal - discount) * TaxRate
//	total    = subtotal - discount + tax
//
// discountAmount должен быть уже ограничен subtotal (см. PromoCode.Evaluate),
// поэтому tax и total не могут быть отрицательными.
func CalculatePricing(basePrice float64, quantity int, discountAmount float64) Pricing {
	subtotal := basePrice * float64(quantity)
	taxAmount := (subtotal - discountAmount) * TaxRate
	totalAmount := subtotal - discountAmount + taxAmount

	return Pricing{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		TaxAmount:      taxAmount,
		TotalAmount:    totalAmount,
	}
}
