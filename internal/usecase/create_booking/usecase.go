package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BKT-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/BKT-BookingService/internal/infra/storage/booking"
	experienceRepo "github.com/m04kA/BKT-BookingService/internal/infra/storage/experience"
	promoRepo "github.com/m04kA/BKT-BookingService/internal/infra/storage/promo"
	slotRepo "github.com/m04kA/BKT-BookingService/internal/infra/storage/slot"
)

// refIDMaxAttempts количество попыток транзакции при коллизии референса
const refIDMaxAttempts = 3

// UseCase use case создания бронирования.
// Координирует последовательность lock-check-price-persist как единую
// атомарную транзакцию: любая ошибка на любом шаге откатывает всё,
// включая уже взятую резервацию слота.
type UseCase struct {
	slotRepo       SlotRepository
	experienceRepo ExperienceRepository
	promoRepo      PromoRepository
	bookingRepo    BookingRepository
	txManager      TransactionManager
	timeProvider   TimeProvider
	refIDProvider  RefIDProvider
	strictPromo    bool
	logger         Logger
}

// NewUseCase создает новый экземпляр use case.
// strictPromo управляет политикой неприменимых промокодов: false - код молча
// игнорируется (скидка 0), true - бронирование отклоняется.
func NewUseCase(
	slotRepository SlotRepository,
	experienceRepository ExperienceRepository,
	promoRepository PromoRepository,
	bookingRepository BookingRepository,
	txManager TransactionManager,
	strictPromo bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:       slotRepository,
		experienceRepo: experienceRepository,
		promoRepo:      promoRepository,
		bookingRepo:    bookingRepository,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		refIDProvider:  &RealRefIDProvider{},
		strictPromo:    strictPromo,
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования.
// Вся работа с БД идёт в одной сериализуемой транзакции: блокировка строки
// слота (FOR UPDATE) удерживается до коммита или отката, поэтому конкурентные
// попытки бронирования одного слота линеаризуются и совместно превысить
// вместимость не могут.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: experience=%d, slot=%d, quantity=%d, promo=%v",
		req.ExperienceID, req.SlotID, req.Quantity, req.PromoCode != nil)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	today := uc.timeProvider.Now()

	// Переменная для хранения результата
	var result *domain.Booking

	// 2. Выполняем операции с БД в сериализуемой транзакции.
	//
	// Коллизия референса откатывает транзакцию целиком: после ошибки
	// стейтмента PostgreSQL переводит транзакцию в abort-only состояние,
	// и повторная вставка внутри неё невозможна. Поэтому каждая попытка -
	// это новая транзакция с новым референсом.
	var err error
	for attempt := 1; attempt <= refIDMaxAttempts; attempt++ {
		err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			// Отложенные эффекты (инкремент занятости слота, инкремент счетчика
			// промокода). Применяются после записи бронирования, в той же
			// транзакции - при откате на любом шаге ни один эффект не виден снаружи.
			var effects []func(ctx context.Context) error

			// 2.1. Блокируем строку слота и проверяем вместимость
			slot, err := uc.slotRepo.GetForUpdate(txCtx, req.SlotID, req.ExperienceID)
			if err != nil {
				if errors.Is(err, slotRepo.ErrSlotNotFound) {
					uc.logger.Warn("CreateBooking: slot id=%d not available for experience id=%d",
						req.SlotID, req.ExperienceID)
					return ErrSlotNotAvailable
				}
				uc.logger.Error("CreateBooking: failed to lock slot id=%d: %v", req.SlotID, err)
				return fmt.Errorf("%w: failed to lock slot: %v", ErrInternal, err)
			}

			if !slot.HasCapacity(req.Quantity) {
				uc.logger.Warn("CreateBooking: slot id=%d has no capacity, %d/%d booked, requested %d",
					slot.ID, slot.BookedCount, slot.MaxCapacity, req.Quantity)
				return ErrSlotNotAvailable
			}

			effects = append(effects, func(c context.Context) error {
				return uc.slotRepo.IncrementBooked(c, slot.ID, req.Quantity)
			})

			// 2.2. Получаем experience
			exp, err := uc.experienceRepo.GetByID(txCtx, req.ExperienceID)
			if err != nil {
				if errors.Is(err, experienceRepo.ErrExperienceNotFound) {
					uc.logger.Warn("CreateBooking: experience id=%d not found", req.ExperienceID)
					return ErrExperienceNotFound
				}
				uc.logger.Error("CreateBooking: failed to get experience id=%d: %v", req.ExperienceID, err)
				return fmt.Errorf("%w: failed to get experience: %v", ErrInternal, err)
			}

			// 2.3. Считаем сумму заказа
			subtotal := exp.BasePrice * float64(req.Quantity)

			// 2.4. Применяем промокод, если указан.
			// Снимок промокода берётся в этой же транзакции с FOR UPDATE -
			// применимость не может быть вычислена по устаревшим данным.
			var discountAmount float64
			var appliedCode *string

			if req.PromoCode != nil && *req.PromoCode != "" {
				code := *req.PromoCode

				promo, err := uc.promoRepo.GetByCode(txCtx, code)
				if err != nil && !errors.Is(err, promoRepo.ErrPromoNotFound) {
					uc.logger.Error("CreateBooking: failed to get promo code %q: %v", code, err)
					return fmt.Errorf("%w: failed to get promo code: %v", ErrInternal, err)
				}

				if promo != nil {
					if discount, ok := promo.Evaluate(subtotal, today); ok {
						discountAmount = discount.Amount
						appliedCode = &promo.Code

						// Использование кода расходуется только при коммите
						// этой транзакции и ровно один раз
						effects = append(effects, func(c context.Context) error {
							return uc.promoRepo.IncrementUsage(c, promo.ID)
						})

						uc.logger.Info("CreateBooking: promo %q applied, discount=%.2f", code, discountAmount)
					}
				}

				if appliedCode == nil {
					if uc.strictPromo {
						uc.logger.Warn("CreateBooking: promo %q not applicable, rejecting (strict mode)", code)
						return ErrPromoNotApplicable
					}
					uc.logger.Info("CreateBooking: promo %q not applicable, proceeding without discount", code)
				}
			}

			// 2.5. Итоговая стоимость
			pricing := domain.CalculatePricing(exp.BasePrice, req.Quantity, discountAmount)

			// 2.6. Записываем бронирование. Уникальность референса обеспечивает
			// UNIQUE-констрейнт; коллизия пробрасывается наружу и откатывает
			// транзакцию - повтор пойдёт новой транзакцией с новым референсом.
			created, err := uc.persistBooking(txCtx, req, pricing, appliedCode)
			if err != nil {
				return err
			}

			// 2.7. Применяем отложенные эффекты
			for _, apply := range effects {
				if err := apply(txCtx); err != nil {
					uc.logger.Error("CreateBooking: failed to apply pending effect: %v", err)
					return fmt.Errorf("%w: failed to apply pending effect: %v", ErrInternal, err)
				}
			}

			result = created
			return nil
		})

		if errors.Is(err, bookingRepo.ErrRefIDConflict) {
			uc.logger.Warn("CreateBooking: ref_id collision on attempt %d/%d, retrying in a new transaction",
				attempt, refIDMaxAttempts)
			continue
		}
		break
	}

	if err != nil {
		if errors.Is(err, bookingRepo.ErrRefIDConflict) {
			uc.logger.Error("CreateBooking: exhausted %d ref_id attempts", refIDMaxAttempts)
			return nil, ErrRefIDGeneration
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking ref=%s, total=%.2f",
		result.RefID, result.TotalAmount)

	return toResponse(result), nil
}

// persistBooking вставляет запись бронирования с новым референсом.
// Коллизия уникальности возвращается как ErrRefIDConflict без обёртки -
// существующая запись никогда не перезаписывается, а вызывающий код
// повторяет всю транзакцию с новым референсом.
func (uc *UseCase) persistBooking(
	ctx context.Context,
	req *Request,
	pricing domain.Pricing,
	promoCode *string,
) (*domain.Booking, error) {
	b := &domain.Booking{
		RefID:          uc.refIDProvider.New(),
		ExperienceID:   req.ExperienceID,
		SlotID:         req.SlotID,
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
		Quantity:       req.Quantity,
		Subtotal:       pricing.Subtotal,
		DiscountAmount: pricing.DiscountAmount,
		TaxAmount:      pricing.TaxAmount,
		TotalAmount:    pricing.TotalAmount,
		PromoCode:      promoCode,
	}

	created, err := uc.bookingRepo.Create(ctx, b)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrRefIDConflict) {
			return nil, err
		}
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	return created, nil
}

// toResponse конвертирует доменную модель в ответ use case
func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:             b.ID,
		RefID:          b.RefID,
		ExperienceID:   b.ExperienceID,
		SlotID:         b.SlotID,
		CustomerName:   b.CustomerName,
		CustomerEmail:  b.CustomerEmail,
		Quantity:       b.Quantity,
		Subtotal:       b.Subtotal,
		DiscountAmount: b.DiscountAmount,
		TaxAmount:      b.TaxAmount,
		TotalAmount:    b.TotalAmount,
		PromoCode:      b.PromoCode,
		CreatedAt:      b.CreatedAt,
	}
}
