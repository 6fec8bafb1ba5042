package caregiverRepo

import (
	"shebacare/models"
)

// CaregiverRepository defines data access for caregiver records.
type CaregiverRepository interface {
	GetByID(id string) (*models.Caregiver, error)
	GetAll() ([]models.Caregiver, error)
}
