package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePricing(t *testing.T) {
	tests := []struct {
		name           string
		basePrice      float64
		quantity       int
		discountAmount float64
		want           Pricing
	}{
		{
			name:      "без скидки",
			basePrice: 1000,
			quantity:  2,
			want: Pricing{
				Subtotal:    2000,
				TaxAmount:   120,
				TotalAmount: 2120,
			},
		},
		{
			name:           "процентная скидка 10%",
			basePrice:      1000,
			quantity:       2,
			discountAmount: 200,
			want: Pricing{
				Subtotal:       2000,
				DiscountAmount: 200,
				TaxAmount:      108,
				TotalAmount:    1908,
			},
		},
		{
			name:           "скидка равна сумме заказа",
			basePrice:      1000,
			quantity:       2,
			discountAmount: 2000,
			want: Pricing{
				Subtotal:       2000,
				DiscountAmount: 2000,
				TaxAmount:      0,
				TotalAmount:    0,
			},
		},
		{
			name:      "одно место",
			basePrice: 750.50,
			quantity:  1,
			want: Pricing{
				Subtotal:    750.50,
				TaxAmount:   45.03,
				TotalAmount: 795.53,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePricing(tt.basePrice, tt.quantity, tt.discountAmount)

			assert.InDelta(t, tt.want.Subtotal, got.Subtotal, 0.001)
			assert.InDelta(t, tt.want.DiscountAmount, got.DiscountAmount, 0.001)
			assert.InDelta(t, tt.want.TaxAmount, got.TaxAmount, 0.001)
			assert.InDelta(t, tt.want.TotalAmount, got.TotalAmount, 0.001)
		})
	}
}

func TestCalculatePricing_Deterministic(t *testing.T) {
	first := CalculatePricing(1234.56, 7, 300)
	second := CalculatePricing(1234.56, 7, 300)

	assert.Equal(t, first, second)
}

func TestSlot_Capacity(t *testing.T) {
	slot := Slot{
		MaxCapacity: 10,
		BookedCount: 8,
		IsAvailable: true,
	}

	assert.Equal(t, 2, slot.AvailableSpots())
	assert.True(t, slot.HasCapacity(2))
	assert.False(t, slot.HasCapacity(3))
	assert.False(t, slot.IsFull())

	slot.BookedCount = 10
	assert.True(t, slot.IsFull())
	assert.False(t, slot.HasCapacity(1))
	assert.Equal(t, 0, slot.AvailableSpots())
}
