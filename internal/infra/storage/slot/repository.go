package slot

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

// Repository репозиторий слотов - владеет состоянием вместимости
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetForUpdate получает слот с эксклюзивной блокировкой строки.
//
// Должен вызываться внутри транзакции: тогда запрос выполняется с FOR UPDATE,
// и блокировка удерживается до конца транзакции. Это сериализует все
// конкурентные попытки бронирования одного слота - пара проверка-инкремент
// выполняется атомарно относительно других писателей.
//
// Возвращает ErrSlotNotFound, если слот не существует, принадлежит другому
// experience или отключен (is_available = false).
func (r *Repository) GetForUpdate(ctx context.Context, slotID, experienceID int64) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"experience_id",
		"date",
		"start_time",
		"end_time",
		"max_capacity",
		"booked_count",
		"is_available",
		"created_at",
		"updated_at",
	).
		From("slots").
		Where(squirrel.Eq{
			"id":            slotID,
			"experience_id": experienceID,
			"is_available":  true,
		})

	// Блокировка имеет смысл только внутри транзакции
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetForUpdate - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Slot
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.ExperienceID,
		&s.Date,
		&s.StartTime,
		&s.EndTime,
		&s.MaxCapacity,
		&s.BookedCount,
		&s.IsAvailable,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetForUpdate - scan slot: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// IncrementBooked увеличивает занятость слота на quantity.
//
// Предикат booked_count + quantity <= max_capacity продублирован в самом
// UPDATE: даже если вызывающий код пропустил проверку вместимости, инвариант
// слота нарушен не будет - запрос просто не затронет ни одной строки и
// вернётся ErrCapacityExceeded.
func (r *Repository) IncrementBooked(ctx context.Context, slotID int64, quantity int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("booked_count", squirrel.Expr("booked_count + ?", quantity)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": slotID}).
		Where(squirrel.Expr("booked_count + ? <= max_capacity", quantity)).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: IncrementBooked - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementBooked - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementBooked - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCapacityExceeded
	}

	return nil
}
