package matching

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"shebacare/models"
	"shebacare/utils"

	"go.uber.org/zap"
)

// resolvedQuery is the senior-shaped side of a match, fully resolved
// from the request and the senior record so that scoring one caregiver
// is a pure function of (query, caregiver).
type resolvedQuery struct {
	lat, lon       float64
	gender         string
	area           string
	requiredSkills []string
	requiredVec    []float64
	date           string
	startTime      string
	durationHrs    float64
}

// scored pairs a presentation-ready result with the unrounded total
// used for ranking.
type scored struct {
	result   models.MatchResult
	rawTotal float64
}

// Match ranks caregivers against the request and returns the top-N
// results, available caregivers first, then by descending score.
func (s *DefaultMatchingService) Match(req models.MatchRequest) ([]models.MatchResult, error) {
	d := s.snapshot()

	q, err := s.resolveQuery(d, req)
	if err != nil {
		return nil, err
	}

	utils.GetLogger().Debug("matching caregivers",
		zap.Float64("lat", q.lat),
		zap.Float64("lon", q.lon),
		zap.Strings("requiredSkills", q.requiredSkills),
		zap.String("date", q.date),
		zap.String("startTime", q.startTime),
		zap.Float64("durationHrs", q.durationHrs))

	// Score every located caregiver concurrently. Results land in an
	// index-addressed slice so the encounter order survives the fan-out
	// and tie-breaking stays deterministic.
	results := make([]*scored, len(d.ordered))
	var wg sync.WaitGroup
	for i := range d.ordered {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = scoreCaregiver(q, d, &d.ordered[i])
		}(i)
	}
	wg.Wait()

	matches := make([]scored, 0, len(results))
	for _, r := range results {
		if r != nil {
			matches = append(matches, *r)
		}
	}

	// Available caregivers rank above busy ones; within each group the
	// unrounded total decides, and ties keep encounter order.
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].result.Available != matches[j].result.Available {
			return matches[i].result.Available
		}
		return matches[i].rawTotal > matches[j].rawTotal
	})

	topN := req.TopN
	if topN <= 0 {
		topN = s.Defaults.TopN
	}
	if len(matches) > topN {
		matches = matches[:topN]
	}

	out := make([]models.MatchResult, len(matches))
	for i, m := range matches {
		out[i] = m.result
	}
	return out, nil
}

// resolveQuery fills in the senior side of the match from the request,
// looking up the senior record when an identifier is given and applying
// documented defaults for anything still unset.
func (s *DefaultMatchingService) resolveQuery(d *Dataset, req models.MatchRequest) (*resolvedQuery, error) {
	q := &resolvedQuery{
		gender:         req.SeniorGender,
		area:           req.SeniorArea,
		requiredSkills: req.RequiredSkills,
		date:           req.BookingDate,
		startTime:      req.StartTime,
		durationHrs:    req.DurationHrs,
	}

	var lat, lon *float64
	if req.SeniorID != "" {
		senior, ok := d.SeniorsByID[req.SeniorID]
		if !ok {
			return nil, fmt.Errorf("%w: senior id %q: %w", ErrInvalidRequest, req.SeniorID, ErrSeniorNotFound)
		}
		if senior.HasLocation() {
			lat, lon = senior.Latitude, senior.Longitude
		}
		if senior.Gender != "" {
			q.gender = senior.Gender
		}
		if senior.Area != "" {
			q.area = senior.Area
		}
		if len(q.requiredSkills) == 0 && len(senior.MedicalConditions) > 0 {
			q.requiredSkills = skillsFromConditions(senior.MedicalConditions, s.ConditionServices)
		}
	}
	if lat == nil || lon == nil {
		lat, lon = req.SeniorLat, req.SeniorLon
	}
	if lat == nil || lon == nil {
		return nil, ErrInvalidRequest
	}
	q.lat, q.lon = *lat, *lon

	if len(q.requiredSkills) == 0 {
		q.requiredSkills = defaultRequiredSkills
	}
	if q.date == "" {
		q.date = time.Now().Format(dateLayout)
	}
	if q.startTime == "" {
		q.startTime = s.Defaults.StartTime
	}
	if q.durationHrs <= 0 {
		q.durationHrs = s.Defaults.DurationHrs
	}

	q.requiredVec = encodeSkills(q.requiredSkills, d.SkillVocabulary)
	return q, nil
}

// scoreCaregiver evaluates one caregiver against the resolved query.
// It is pure apart from the availability lookup into the immutable
// dataset, so callers may run it concurrently. Caregivers without a
// location are excluded and yield nil.
func scoreCaregiver(q *resolvedQuery, d *Dataset, cg *models.Caregiver) *scored {
	if !cg.HasLocation() {
		return nil
	}

	distanceKm := haversineKm(q.lat, q.lon, *cg.Latitude, *cg.Longitude)

	breakdown := models.ScoreBreakdown{
		Distance:   distanceScore(distanceKm),
		Skill:      skillScore(q.requiredVec, d.SkillVector(cg.ID)),
		Rating:     ratingScore(cg.AverageRating),
		Experience: experienceScore(cg.ExperienceYears),
		Gender:     genderScore(q.gender, cg.Gender),
		Language:   languageScore(q.area, cg.Area),
	}
	total := breakdown.Distance + breakdown.Skill + breakdown.Rating +
		breakdown.Experience + breakdown.Gender + breakdown.Language

	available := isAvailable(d, cg.ID, q.date, q.startTime, q.durationHrs)
	reason := buildReason(distanceKm, breakdown, cg, available)

	var rating float64
	if cg.AverageRating != nil {
		rating = *cg.AverageRating
	}

	return &scored{
		rawTotal: total,
		result: models.MatchResult{
			CaregiverID: cg.ID,
			Name:        cg.FullName,
			DistanceKm:  round2(distanceKm),
			TotalScore:  round2(total),
			Available:   available,
			Breakdown: models.ScoreBreakdown{
				Distance:   round2(breakdown.Distance),
				Skill:      round2(breakdown.Skill),
				Rating:     round2(breakdown.Rating),
				Experience: round2(breakdown.Experience),
				Gender:     round2(breakdown.Gender),
				Language:   round2(breakdown.Language),
			},
			Details: models.CaregiverDetails{
				Phone:           cg.Phone,
				Email:           cg.Email,
				ExperienceYears: int(cg.ExperienceYears),
				AverageRating:   round2(rating),
				TotalReviews:    cg.TotalReviews,
				HourlyRate:      cg.HourlyRate,
				Services:        cg.Services,
				Area:            cg.Area,
			},
			Reason: reason,
		},
	}
}
