package domain

// TaxRate фиксированная налоговая ставка (6%), применяется к сумме после скидки
const TaxRate = 0.06

// Business validation constants
const (
	MinQuantity           = 1
	MaxQuantity           = 10
	MinCustomerNameLength = 2
	MaxCustomerNameLength = 255
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
