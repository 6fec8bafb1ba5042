package matching

import (
	"fmt"

	bookingRepo "shebacare/database/repository/booking"
	caregiverRepo "shebacare/database/repository/caregiver"
	seniorRepo "shebacare/database/repository/senior"
	"shebacare/utils"

	"go.uber.org/zap"
)

// LoadDataset pulls all three record collections from their repositories
// and builds a fresh snapshot, precomputing skill vectors along the way.
func LoadDataset(seniors seniorRepo.SeniorRepository, caregivers caregiverRepo.CaregiverRepository, bookings bookingRepo.BookingRepository) (*Dataset, error) {
	seniorRecords, err := seniors.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load seniors: %w", err)
	}
	caregiverRecords, err := caregivers.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load caregivers: %w", err)
	}
	bookingRecords, err := bookings.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	d := NewDataset(seniorRecords, caregiverRecords, bookingRecords)
	utils.GetLogger().Info("matching dataset loaded",
		zap.Int("seniors", len(seniorRecords)),
		zap.Int("caregivers", len(caregiverRecords)),
		zap.Int("bookings", len(bookingRecords)),
		zap.Int("skillVocabulary", len(d.SkillVocabulary)))
	return d, nil
}
