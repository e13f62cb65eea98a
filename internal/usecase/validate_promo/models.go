package validate_promo

// Request модель запроса на проверку промокода
type Request struct {
	Code   string  // Промокод
	Amount float64 // Сумма заказа, к которой проверяется применимость
}

// Response результат проверки промокода.
// Для неприменимого кода Valid = false - это не ошибка.
type Response struct {
	Valid          bool    // Применим ли код
	DiscountAmount float64 // Размер скидки при применении
	DiscountType   string  // Тип скидки (percentage | fixed)
}
