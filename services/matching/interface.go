package matching

import (
	"sync"

	"shebacare/models"
)

// AlgorithmVersion identifies the scoring scheme reported by Stats.
const AlgorithmVersion = "1.0.0"

// MatchingService defines the interface for ranking caregivers against a
// match request.
type MatchingService interface {
	Match(req models.MatchRequest) ([]models.MatchResult, error)
	Stats() models.MatchingStats
}

// Defaults are applied to request fields left unset.
type Defaults struct {
	StartTime   string
	DurationHrs float64
	TopN        int
}

// DefaultMatchingService implements MatchingService over an in-memory
// Dataset snapshot.
type DefaultMatchingService struct {
	mu   sync.RWMutex
	data *Dataset

	// ConditionServices maps medical-condition labels to services when a
	// request must derive its requirements from a senior's conditions.
	ConditionServices map[string]string
	Defaults          Defaults
}

// NewMatchingService wires a matching service around a loaded dataset.
func NewMatchingService(data *Dataset, conditionServices map[string]string, defaults Defaults) *DefaultMatchingService {
	if defaults.StartTime == "" {
		defaults.StartTime = "09:00:00"
	}
	if defaults.DurationHrs <= 0 {
		defaults.DurationHrs = 4
	}
	if defaults.TopN <= 0 {
		defaults.TopN = 5
	}
	return &DefaultMatchingService{
		data:              data,
		ConditionServices: conditionServices,
		Defaults:          defaults,
	}
}

// Reload swaps in a freshly built dataset. In-flight matches keep the
// snapshot they started with.
func (s *DefaultMatchingService) Reload(data *Dataset) {
	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
}

func (s *DefaultMatchingService) snapshot() *Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// Stats reports dataset sizes and the fixed scoring-weight table without
// performing any matching.
func (s *DefaultMatchingService) Stats() models.MatchingStats {
	d := s.snapshot()
	return models.MatchingStats{
		TotalSeniors:     len(d.SeniorsByID),
		TotalCaregivers:  len(d.Caregivers),
		TotalBookings:    d.totalBookings,
		AlgorithmVersion: AlgorithmVersion,
		ScoringWeights: map[string]int{
			"distance":   int(MaxDistancePts),
			"skill":      int(MaxSkillPts),
			"rating":     int(MaxRatingPts),
			"experience": int(MaxExperiencePts),
			"gender":     int(GenderMatchPts),
			"language":   int(MaxLanguagePts),
		},
	}
}
