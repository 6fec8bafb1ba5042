package bookingRepo

import (
	"shebacare/models"
)

// BookingRepository defines data access for booking records.
type BookingRepository interface {
	GetAll() ([]models.Booking, error)
	GetByCaregiverID(caregiverID string) ([]models.Booking, error)
}
