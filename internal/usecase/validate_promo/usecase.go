package validate_promo

import (
	"context"
	"errors"
	"fmt"

	promoRepo "github.com/m04kA/BKT-BookingService/internal/infra/storage/promo"
)

// UseCase use case проверки промокода без бронирования.
// Это чисто читающая операция: счетчик использований кода НЕ расходуется,
// validation-only probe никогда не потребляет использование. Использование
// списывается только при коммите успешного бронирования.
type UseCase struct {
	promoRepo    PromoRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(promoRepository PromoRepository, logger Logger) *UseCase {
	return &UseCase{
		promoRepo:    promoRepository,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute проверяет применимость промокода к заказу указанной суммы
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Code == "" {
		return nil, fmt.Errorf("%w: code is required", ErrInvalidInput)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	promo, err := uc.promoRepo.GetByCode(ctx, req.Code)
	if err != nil {
		if errors.Is(err, promoRepo.ErrPromoNotFound) {
			uc.logger.Info("ValidatePromo: code %q not found", req.Code)
			return &Response{Valid: false}, nil
		}
		uc.logger.Error("ValidatePromo: failed to get promo code %q: %v", req.Code, err)
		return nil, fmt.Errorf("%w: failed to get promo code: %v", ErrInternal, err)
	}

	discount, ok := promo.Evaluate(req.Amount, uc.timeProvider.Now())
	if !ok {
		uc.logger.Info("ValidatePromo: code %q not applicable to amount %.2f", req.Code, req.Amount)
		return &Response{Valid: false}, nil
	}

	uc.logger.Info("ValidatePromo: code %q valid, discount=%.2f", req.Code, discount.Amount)

	return &Response{
		Valid:          true,
		DiscountAmount: discount.Amount,
		DiscountType:   string(discount.Type),
	}, nil
}
