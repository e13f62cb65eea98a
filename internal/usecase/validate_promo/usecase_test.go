package validate_promo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BKT-BookingService/internal/domain"
	promoRepo "github.com/m04kA/BKT-BookingService/internal/infra/storage/promo"
	"github.com/m04kA/BKT-BookingService/pkg/ptr"
)

// fakePromoRepo только читает: считаем обращения, чтобы убедиться,
// что проверка кода никогда не расходует использование
type fakePromoRepo struct {
	promos map[string]domain.PromoCode
	reads  int
}

func (r *fakePromoRepo) GetByCode(_ context.Context, code string) (*domain.PromoCode, error) {
	r.reads++
	p, ok := r.promos[code]
	if !ok {
		return nil, promoRepo.ErrPromoNotFound
	}
	copied := p
	return &copied, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testToday = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

func newTestUseCase(repo *fakePromoRepo) *UseCase {
	uc := NewUseCase(repo, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testToday}
	return uc
}

func TestExecute_ValidCode(t *testing.T) {
	repo := &fakePromoRepo{promos: map[string]domain.PromoCode{
		"SAVE10": {
			ID:            1,
			Code:          "SAVE10",
			DiscountType:  domain.DiscountPercentage,
			DiscountValue: 10,
			IsActive:      true,
		},
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{Code: "SAVE10", Amount: 2000})
	require.NoError(t, err)

	assert.True(t, resp.Valid)
	assert.Equal(t, 200.0, resp.DiscountAmount)
	assert.Equal(t, "percentage", resp.DiscountType)
}

func TestExecute_UnknownCode(t *testing.T) {
	repo := &fakePromoRepo{promos: map[string]domain.PromoCode{}}
	uc := newTestUseCase(repo)

	// Неизвестный код - это Valid=false, а не ошибка
	resp, err := uc.Execute(context.Background(), &Request{Code: "NOSUCH", Amount: 2000})
	require.NoError(t, err)
	assert.False(t, resp.Valid)
	assert.Equal(t, 0.0, resp.DiscountAmount)
}

func TestExecute_IneligibleCode(t *testing.T) {
	repo := &fakePromoRepo{promos: map[string]domain.PromoCode{
		"MIN5000": {
			ID:            2,
			Code:          "MIN5000",
			DiscountType:  domain.DiscountFixed,
			DiscountValue: 500,
			MinAmount:     5000,
			IsActive:      true,
		},
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{Code: "MIN5000", Amount: 2000})
	require.NoError(t, err)
	assert.False(t, resp.Valid)
}

func TestExecute_NeverConsumesUsage(t *testing.T) {
	repo := &fakePromoRepo{promos: map[string]domain.PromoCode{
		"LASTONE": {
			ID:            3,
			Code:          "LASTONE",
			DiscountType:  domain.DiscountPercentage,
			DiscountValue: 10,
			MaxUses:       ptr.Ptr(1),
			UsedCount:     0,
			IsActive:      true,
		},
	}}
	uc := newTestUseCase(repo)

	// Проверка кода сколько угодно раз не списывает использования
	for i := 0; i < 5; i++ {
		resp, err := uc.Execute(context.Background(), &Request{Code: "LASTONE", Amount: 2000})
		require.NoError(t, err)
		assert.True(t, resp.Valid)
	}

	assert.Equal(t, 5, repo.reads)
	assert.Equal(t, 0, repo.promos["LASTONE"].UsedCount)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakePromoRepo{promos: map[string]domain.PromoCode{}})

	_, err := uc.Execute(context.Background(), &Request{Code: "", Amount: 2000})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Code: "SAVE10", Amount: 0})
	require.ErrorIs(t, err, ErrInvalidInput)
}
