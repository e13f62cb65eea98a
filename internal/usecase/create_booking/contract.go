package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/BKT-BookingService/internal/domain"
	"github.com/m04kA/BKT-BookingService/pkg/refid"
)

// SlotRepository интерфейс реестра слотов.
// GetForUpdate захватывает эксклюзивную блокировку строки слота до конца
// транзакции; IncrementBooked применяет инкремент занятости под этой блокировкой.
type SlotRepository interface {
	GetForUpdate(ctx context.Context, slotID, experienceID int64) (*domain.Slot, error)
	IncrementBooked(ctx context.Context, slotID int64, quantity int) error
}

// ExperienceRepository интерфейс read-only каталога experiences
type ExperienceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Experience, error)
}

// PromoRepository интерфейс репозитория промокодов
type PromoRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.PromoCode, error)
	IncrementUsage(ctx context.Context, id int64) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RefIDProvider интерфейс генератора референсов бронирований (для тестирования)
type RefIDProvider interface {
	New() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// RealRefIDProvider генератор референсов поверх pkg/refid
type RealRefIDProvider struct{}

// New возвращает новый референс бронирования
func (p *RealRefIDProvider) New() string {
	return refid.New()
}
