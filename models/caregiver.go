package models

// Caregiver represents a caregiver record as normalized by ingestion.
// Contact fields are opaque pass-through and never participate in scoring.
type Caregiver struct {
	ID              string   `bson:"id" json:"id"`
	FullName        string   `bson:"full_name" json:"full_name"`
	Gender          string   `bson:"gender" json:"gender"`
	Area            string   `bson:"area" json:"area"`
	Latitude        *float64 `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude       *float64 `bson:"longitude,omitempty" json:"longitude,omitempty"`
	Services        []string `bson:"services" json:"services"`
	AverageRating   *float64 `bson:"average_rating,omitempty" json:"average_rating,omitempty"`
	TotalReviews    int      `bson:"total_reviews" json:"total_reviews"`
	ExperienceYears float64  `bson:"experience_years" json:"experience_years"`
	HourlyRate      float64  `bson:"hourly_rate" json:"hourly_rate"`
	Phone           string   `bson:"phone" json:"phone"`
	Email           string   `bson:"email" json:"email"`
}

// HasLocation reports whether both coordinates are present. Caregivers
// without a location are excluded from matching entirely.
func (cg *Caregiver) HasLocation() bool {
	return cg.Latitude != nil && cg.Longitude != nil
}
