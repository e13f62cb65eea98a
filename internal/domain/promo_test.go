package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BKT-BookingService/pkg/ptr"
)

var promoToday = time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)

func activePercentagePromo() PromoCode {
	return PromoCode{
		ID:            1,
		Code:          "SAVE10",
		DiscountType:  DiscountPercentage,
		DiscountValue: 10,
		IsActive:      true,
	}
}

func TestPromoCode_IsEligible(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(p *PromoCode)
		subtotal float64
		want     bool
	}{
		{
			name:     "активный код без ограничений",
			mutate:   func(p *PromoCode) {},
			subtotal: 100,
			want:     true,
		},
		{
			name:     "неактивный код",
			mutate:   func(p *PromoCode) { p.IsActive = false },
			subtotal: 100,
			want:     false,
		},
		{
			name: "окно ещё не началось",
			mutate: func(p *PromoCode) {
				p.ValidFrom = ptr.Ptr(promoToday.AddDate(0, 0, 1))
			},
			subtotal: 100,
			want:     false,
		},
		{
			name: "окно начинается сегодня",
			mutate: func(p *PromoCode) {
				// Граница с временем позже текущего - сравнение идёт по датам
				p.ValidFrom = ptr.Ptr(time.Date(2026, 9, 1, 23, 59, 0, 0, time.UTC))
			},
			subtotal: 100,
			want:     true,
		},
		{
			name: "окно истекло вчера",
			mutate: func(p *PromoCode) {
				p.ValidUntil = ptr.Ptr(promoToday.AddDate(0, 0, -1))
			},
			subtotal: 100,
			want:     false,
		},
		{
			name: "окно заканчивается сегодня",
			mutate: func(p *PromoCode) {
				p.ValidUntil = ptr.Ptr(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
			},
			subtotal: 100,
			want:     true,
		},
		{
			name: "лимит использований исчерпан",
			mutate: func(p *PromoCode) {
				p.MaxUses = ptr.Ptr(5)
				p.UsedCount = 5
			},
			subtotal: 100,
			want:     false,
		},
		{
			name: "осталось одно использование",
			mutate: func(p *PromoCode) {
				p.MaxUses = ptr.Ptr(5)
				p.UsedCount = 4
			},
			subtotal: 100,
			want:     true,
		},
		{
			name:     "сумма меньше минимальной",
			mutate:   func(p *PromoCode) { p.MinAmount = 500 },
			subtotal: 499.99,
			want:     false,
		},
		{
			name:     "сумма равна минимальной",
			mutate:   func(p *PromoCode) { p.MinAmount = 500 },
			subtotal: 500,
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			promo := activePercentagePromo()
			tt.mutate(&promo)

			assert.Equal(t, tt.want, promo.IsEligible(tt.subtotal, promoToday))
		})
	}
}

func TestPromoCode_Evaluate_Percentage(t *testing.T) {
	promo := activePercentagePromo()

	discount, ok := promo.Evaluate(2000, promoToday)
	require.True(t, ok)

	assert.Equal(t, 200.0, discount.Amount)
	assert.Equal(t, DiscountPercentage, discount.Type)
}

func TestPromoCode_Evaluate_FixedClampedToSubtotal(t *testing.T) {
	promo := PromoCode{
		ID:            2,
		Code:          "FLAT5000",
		DiscountType:  DiscountFixed,
		DiscountValue: 5000,
		IsActive:      true,
	}

	// Скидка больше суммы заказа - ограничивается ею
	discount, ok := promo.Evaluate(2000, promoToday)
	require.True(t, ok)
	assert.Equal(t, 2000.0, discount.Amount)

	// Скидка меньше суммы заказа - применяется полностью
	discount, ok = promo.Evaluate(8000, promoToday)
	require.True(t, ok)
	assert.Equal(t, 5000.0, discount.Amount)
}

func TestPromoCode_Evaluate_IneligibleReturnsFalse(t *testing.T) {
	promo := activePercentagePromo()
	promo.IsActive = false

	discount, ok := promo.Evaluate(2000, promoToday)
	assert.False(t, ok)
	assert.Equal(t, 0.0, discount.Amount)
}

func TestPromoCode_Evaluate_UnknownDiscountType(t *testing.T) {
	promo := activePercentagePromo()
	promo.DiscountType = DiscountType("loyalty_points")

	_, ok := promo.Evaluate(2000, promoToday)
	assert.False(t, ok)
}
