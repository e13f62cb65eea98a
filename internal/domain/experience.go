package domain

import "time"

// Experience represents a bookable activity in the catalog
type Experience struct {
	ID              int64
	Title           string
	Description     string
	ImageURL        *string
	BasePrice       float64
	DurationMinutes int
	MinAge          int
	MaxGroupSize    int
	IncludesGear    bool
	IsActive        bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable returns true if the experience can accept new bookings
func (e *Experience) IsBookable() bool {
	return e.IsActive
}
