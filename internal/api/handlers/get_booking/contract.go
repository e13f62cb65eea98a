package get_booking

import (
	"context"

	"github.com/m04kA/BKT-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetByRefID(ctx context.Context, refID string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
