package domain

import (
	"time"

	"github.com/m04kA/BKT-BookingService/pkg/types"
)

// Slot represents a concrete date/time instance of an experience
// with finite capacity.
//
// Инвариант: 0 <= BookedCount <= MaxCapacity в любой момент времени,
// в том числе при конкурентных бронированиях. BookedCount изменяется
// только координатором бронирования под блокировкой строки слота
// (SELECT ... FOR UPDATE в сериализуемой транзакции).
type Slot struct {
	ID           int64
	ExperienceID int64
	Date         time.Time
	StartTime    types.TimeString
	EndTime      types.TimeString
	MaxCapacity  int
	BookedCount  int
	IsAvailable  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AvailableSpots returns the number of spots still open for booking
func (s *Slot) AvailableSpots() int {
	spots := s.MaxCapacity - s.BookedCount
	if spots < 0 {
		return 0
	}
	return spots
}

// HasCapacity returns true if the slot can accept quantity more units
func (s *Slot) HasCapacity(quantity int) bool {
	return s.BookedCount+quantity <= s.MaxCapacity
}

// IsFull returns true if the slot has no available spots
func (s *Slot) IsFull() bool {
	return s.BookedCount >= s.MaxCapacity
}

// BelongsTo returns true if the slot belongs to the given experience
func (s *Slot) BelongsTo(experienceID int64) bool {
	return s.ExperienceID == experienceID
}
