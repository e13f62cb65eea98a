package experience

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

// Repository read-only репозиторий каталога experiences.
// Каталогом владеет внешний процесс, сервис бронирования его только читает.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория experiences
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает активный experience по ID.
// Возвращает ErrExperienceNotFound для отсутствующих и неактивных записей.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Experience, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"title",
		"description",
		"image_url",
		"base_price",
		"duration_minutes",
		"min_age",
		"max_group_size",
		"includes_gear",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("experiences").
		Where(squirrel.Eq{
			"id":        id,
			"is_active": true,
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var e domain.Experience
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&e.ID,
		&e.Title,
		&e.Description,
		&e.ImageURL,
		&e.BasePrice,
		&e.DurationMinutes,
		&e.MinAge,
		&e.MaxGroupSize,
		&e.IncludesGear,
		&e.IsActive,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrExperienceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan experience: %v", ErrScanRow, err)
	}

	e.CreatedAt = createdAt.Time
	e.UpdatedAt = updatedAt.Time

	return &e, nil
}
