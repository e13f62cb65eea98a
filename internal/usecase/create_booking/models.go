package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	ExperienceID  int64   // ID experience
	SlotID        int64   // ID слота
	CustomerName  string  // Имя клиента
	CustomerEmail string  // Email клиента
	Quantity      int     // Количество мест (1-10)
	PromoCode     *string // Промокод (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64  // Внутренний ID бронирования
	RefID         string // Человекочитаемый референс (BKT...)
	ExperienceID  int64  // ID experience
	SlotID        int64  // ID слота
	CustomerName  string // Имя клиента
	CustomerEmail string // Email клиента
	Quantity      int    // Количество мест

	// Разбивка стоимости
	Subtotal       float64 // Сумма без скидки и налога
	DiscountAmount float64 // Применённая скидка
	TaxAmount      float64 // Налог
	TotalAmount    float64 // Итог к оплате
	PromoCode      *string // Применённый промокод (если был)

	CreatedAt time.Time // Время создания
}
