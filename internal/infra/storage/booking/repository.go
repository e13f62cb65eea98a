package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/BKT-BookingService/internal/domain"
	"github.com/m04kA/BKT-BookingService/pkg/dbmetrics"
	"github.com/m04kA/BKT-BookingService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL для нарушения UNIQUE-констрейнта
const uniqueViolation = "23505"

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция, использует её - при создании
// бронирования с резервацией слота это обязательно, иначе пара вставка-инкремент
// не будет атомарной.
//
// При нарушении уникальности ref_id возвращает ErrRefIDConflict: запись
// с таким референсом уже существует и молча перезаписана не будет.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"ref_id",
			"experience_id",
			"slot_id",
			"customer_name",
			"customer_email",
			"quantity",
			"subtotal",
			"discount_amount",
			"tax_amount",
			"total_amount",
			"promo_code",
		).
		Values(
			booking.RefID,
			booking.ExperienceID,
			booking.SlotID,
			booking.CustomerName,
			booking.CustomerEmail,
			booking.Quantity,
			booking.Subtotal,
			booking.DiscountAmount,
			booking.TaxAmount,
			booking.TotalAmount,
			booking.PromoCode,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%w: ref_id=%s", ErrRefIDConflict, booking.RefID)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// GetByRefID получает бронирование по референсу
func (r *Repository) GetByRefID(ctx context.Context, refID string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"ref_id",
		"experience_id",
		"slot_id",
		"customer_name",
		"customer_email",
		"quantity",
		"subtotal",
		"discount_amount",
		"tax_amount",
		"total_amount",
		"promo_code",
		"created_at",
	).
		From("bookings").
		Where(squirrel.Eq{"ref_id": refID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByRefID - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.Booking
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.RefID,
		&b.ExperienceID,
		&b.SlotID,
		&b.CustomerName,
		&b.CustomerEmail,
		&b.Quantity,
		&b.Subtotal,
		&b.DiscountAmount,
		&b.TaxAmount,
		&b.TotalAmount,
		&b.PromoCode,
		&createdAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRefID - scan booking: %v", ErrScanRow, err)
	}

	b.CreatedAt = createdAt.Time

	return &b, nil
}
