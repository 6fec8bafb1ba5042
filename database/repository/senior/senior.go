package seniorRepo

import (
	"shebacare/models"
)

// SeniorRepository defines data access for senior records.
type SeniorRepository interface {
	GetByID(id string) (*models.Senior, error)
	GetAll() ([]models.Senior, error)
}
