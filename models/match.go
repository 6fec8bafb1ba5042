package models

// MatchRequest carries the parameters of a single matching query. Either
// SeniorID or an explicit coordinate pair must resolve to a location.
type MatchRequest struct {
	SeniorID       string   `json:"senior_id,omitempty"`
	SeniorLat      *float64 `json:"senior_lat,omitempty"`
	SeniorLon      *float64 `json:"senior_lon,omitempty"`
	RequiredSkills []string `json:"required_skills,omitempty"`
	SeniorGender   string   `json:"senior_gender,omitempty"`
	SeniorArea     string   `json:"senior_area,omitempty"`
	BookingDate    string   `json:"booking_date,omitempty"` // "2006-01-02", defaults to today
	StartTime      string   `json:"start_time,omitempty"`   // "15:04:05"
	DurationHrs    float64  `json:"duration_hrs,omitempty"`
	TopN           int      `json:"top_n,omitempty"`
}

// ScoreBreakdown holds the six bounded factor scores. The component
// ceilings (30, 25, 20, 15, 5, 5) sum to exactly 100.
type ScoreBreakdown struct {
	Distance   float64 `json:"distance"`
	Skill      float64 `json:"skill"`
	Rating     float64 `json:"rating"`
	Experience float64 `json:"experience"`
	Gender     float64 `json:"gender"`
	Language   float64 `json:"language"`
}

// CaregiverDetails is the projection of caregiver attributes attached to
// a match result for presentation.
type CaregiverDetails struct {
	Phone           string   `json:"phone"`
	Email           string   `json:"email"`
	ExperienceYears int      `json:"experience_years"`
	AverageRating   float64  `json:"average_rating"`
	TotalReviews    int      `json:"total_reviews"`
	HourlyRate      float64  `json:"hourly_rate"`
	Services        []string `json:"services"`
	Area            string   `json:"area"`
}

// MatchResult is one ranked caregiver, produced fresh per request and
// never persisted. Scores are rounded to two decimals for presentation;
// ranking uses the unrounded totals internally.
type MatchResult struct {
	CaregiverID string           `json:"caregiver_id"`
	Name        string           `json:"name"`
	DistanceKm  float64          `json:"distance_km"`
	TotalScore  float64          `json:"total_score"`
	Available   bool             `json:"available"`
	Breakdown   ScoreBreakdown   `json:"breakdown"`
	Details     CaregiverDetails `json:"details"`
	Reason      string           `json:"reason"`
}

// MatchingStats describes the loaded dataset and the fixed scoring
// weights without performing any matching.
type MatchingStats struct {
	TotalSeniors     int            `json:"total_seniors"`
	TotalCaregivers  int            `json:"total_caregivers"`
	TotalBookings    int            `json:"total_bookings"`
	AlgorithmVersion string         `json:"algorithm_version"`
	ScoringWeights   map[string]int `json:"scoring_weights"`
}
