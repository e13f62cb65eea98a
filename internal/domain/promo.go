package domain

import "time"

// DiscountType тип скидки промокода
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// PromoCode represents a discount rule with eligibility constraints
// and an optional usage cap.
//
// Инвариант: UsedCount <= MaxUses, если лимит задан. UsedCount изменяется
// только координатором бронирования и только при успешном коммите
// транзакции, в которой промокод был реально применён.
type PromoCode struct {
	ID            int64
	Code          string
	DiscountType  DiscountType
	DiscountValue float64
	MinAmount     float64
	ValidFrom     *time.Time
	ValidUntil    *time.Time
	MaxUses       *int
	UsedCount     int
	IsActive      bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Discount результат применения промокода к заказу
type Discount struct {
	Amount float64
	Type   DiscountType
}

// HasUsageCap returns true if the code has a limit on total uses
func (p *PromoCode) HasUsageCap() bool {
	return p.MaxUses != nil
}

// IsExhausted returns true if the usage cap has been reached
func (p *PromoCode) IsExhausted() bool {
	return p.MaxUses != nil && p.UsedCount >= *p.MaxUses
}

// IsWithinValidityWindow проверяет, что дата today попадает в окно действия кода.
// Отсутствующая граница трактуется как отсутствие ограничения.
func (p *PromoCode) IsWithinValidityWindow(today time.Time) bool {
	day := truncateToDay(today)

	if p.ValidFrom != nil && day.Before(truncateToDay(*p.ValidFrom)) {
		return false
	}
	if p.ValidUntil != nil && day.After(truncateToDay(*p.ValidUntil)) {
		return false
	}
	return true
}

// IsEligible проверяет применимость кода к заказу. Все условия объединяются по AND:
// код активен, дата внутри окна действия, лимит использований не исчерпан,
// сумма заказа не меньше минимальной.
func (p *PromoCode) IsEligible(subtotal float64, today time.Time) bool {
	if !p.IsActive {
		return false
	}
	if !p.IsWithinValidityWindow(today) {
		return false
	}
	if p.IsExhausted() {
		return false
	}
	return subtotal >= p.MinAmount
}

// Evaluate вычисляет скидку кода для заказа по иммутабельному снимку промокода.
// Возвращает (Discount, true) при применимости, иначе (Discount{}, false).
//
// percentage: discount = subtotal * value / 100
// fixed:      discount = min(value, subtotal) - скидка никогда не превышает
// сумму заказа, итог не может стать отрицательным.
func (p *PromoCode) Evaluate(subtotal float64, today time.Time) (Discount, bool) {
	if !p.IsEligible(subtotal, today) {
		return Discount{}, false
	}

	var amount float64
	switch p.DiscountType {
	case DiscountPercentage:
		amount = subtotal * p.DiscountValue / 100
	case DiscountFixed:
		amount = p.DiscountValue
		if amount > subtotal {
			amount = subtotal
		}
	default:
		return Discount{}, false
	}

	return Discount{Amount: amount, Type: p.DiscountType}, true
}

// truncateToDay обнуляет время, оставляя только дату
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
