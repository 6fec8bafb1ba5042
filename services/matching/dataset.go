package matching

import (
	"shebacare/models"
)

// Dataset is an immutable snapshot of the three record collections plus
// everything precomputed at load time: the skill vocabulary and each
// caregiver's binary skill vector. A reload builds a fresh Dataset and
// swaps it in whole, so an in-flight match never observes a half-updated
// view.
type Dataset struct {
	SeniorsByID map[string]models.Senior
	// Caregivers keeps the load order; ranking ties fall back to this
	// encounter order.
	Caregivers map[string]models.Caregiver
	ordered    []models.Caregiver

	SkillVocabulary []string
	skillVectors    map[string][]float64

	bookingsByCaregiver map[string][]models.Booking
	totalBookings       int
}

// NewDataset builds a snapshot from already-normalized records and
// precomputes the skill vocabulary and per-caregiver skill vectors.
func NewDataset(seniors []models.Senior, caregivers []models.Caregiver, bookings []models.Booking) *Dataset {
	d := &Dataset{
		SeniorsByID:         make(map[string]models.Senior, len(seniors)),
		Caregivers:          make(map[string]models.Caregiver, len(caregivers)),
		ordered:             make([]models.Caregiver, len(caregivers)),
		skillVectors:        make(map[string][]float64, len(caregivers)),
		bookingsByCaregiver: make(map[string][]models.Booking),
		totalBookings:       len(bookings),
	}

	for _, s := range seniors {
		d.SeniorsByID[s.ID] = s
	}

	copy(d.ordered, caregivers)
	d.SkillVocabulary = buildVocabulary(caregivers)
	for _, cg := range caregivers {
		d.Caregivers[cg.ID] = cg
		d.skillVectors[cg.ID] = encodeSkills(cg.Services, d.SkillVocabulary)
	}

	for _, b := range bookings {
		d.bookingsByCaregiver[b.CaregiverID] = append(d.bookingsByCaregiver[b.CaregiverID], b)
	}

	return d
}

// SkillVector returns the precomputed binary skill vector for a caregiver.
func (d *Dataset) SkillVector(caregiverID string) []float64 {
	return d.skillVectors[caregiverID]
}

// BookingsFor returns the bookings recorded for a caregiver.
func (d *Dataset) BookingsFor(caregiverID string) []models.Booking {
	return d.bookingsByCaregiver[caregiverID]
}
