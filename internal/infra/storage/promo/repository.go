package promo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/BKT-BookingService/internal/domain"
	"github.com/m04kA/BKT-BookingService/pkg/dbmetrics"
	"github.com/m04kA/BKT-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий промокодов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория промокодов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByCode получает промокод по строковому коду.
//
// Внутри транзакции запрос выполняется с FOR UPDATE: снимок промокода,
// по которому вычисляется применимость, блокируется до конца транзакции,
// и два конкурентных бронирования не могут совместно израсходовать
// последнее использование кода с лимитом.
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"code",
		"discount_type",
		"discount_value",
		"min_amount",
		"valid_from",
		"valid_until",
		"max_uses",
		"used_count",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("promo_codes").
		Where(squirrel.Eq{"code": code})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.PromoCode
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.Code,
		&p.DiscountType,
		&p.DiscountValue,
		&p.MinAmount,
		&p.ValidFrom,
		&p.ValidUntil,
		&p.MaxUses,
		&p.UsedCount,
		&p.IsActive,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPromoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - scan promo code: %v", ErrScanRow, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

// IncrementUsage увеличивает счетчик использований промокода на 1.
//
// Предикат used_count < max_uses продублирован в UPDATE: если лимит уже
// исчерпан, запрос не затронет ни одной строки и вернётся ErrUsageCapReached,
// а транзакция бронирования откатится целиком.
func (r *Repository) IncrementUsage(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("promo_codes").
		Set("used_count", squirrel.Expr("used_count + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Or{
			squirrel.Eq{"max_uses": nil},
			squirrel.Expr("used_count < max_uses"),
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: IncrementUsage - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementUsage - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementUsage - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrUsageCapReached
	}

	return nil
}
