package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/BKT-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/BKT-BookingService/internal/service/bookings/models"
)

// Service сервис читающих операций над бронированиями.
// Бронирование - иммутабельная запись, поэтому сервис его только читает.
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByRefID получает бронирование по референсу
func (s *Service) GetByRefID(ctx context.Context, refID string) (*models.BookingResponse, error) {
	if refID == "" {
		return nil, fmt.Errorf("%w: refID is required", ErrInvalidInput)
	}

	s.logger.Info("GetByRefID: fetching booking ref=%s", refID)

	booking, err := s.bookingRepo.GetByRefID(ctx, refID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByRefID: booking ref=%s not found", refID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByRefID: repository error for booking ref=%s: %v", refID, err)
		return nil, fmt.Errorf("%w: GetByRefID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByRefID: successfully fetched booking ref=%s", refID)
	return models.FromDomainBooking(booking), nil
}
