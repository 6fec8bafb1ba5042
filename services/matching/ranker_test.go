package matching

import (
	"fmt"
	"testing"

	"shebacare/config"
	"shebacare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func testService(d *Dataset) *DefaultMatchingService {
	return NewMatchingService(d, config.DefaultConditionServices(), Defaults{})
}

func TestPerfectMatchScoresOneHundred(t *testing.T) {
	skills := []string{"Diabetes Care", "Medication Management", "Personal Care"}
	caregivers := []models.Caregiver{{
		ID:              "cg-1",
		FullName:        "Rahima Khatun",
		Gender:          "মহিলা",
		Area:            "Mirpur",
		Latitude:        ptr(23.7639),
		Longitude:       ptr(90.3709),
		Services:        skills,
		AverageRating:   ptr(5.0),
		ExperienceYears: 15,
	}}
	svc := testService(NewDataset(nil, caregivers, nil))

	matches, err := svc.Match(models.MatchRequest{
		SeniorLat:      ptr(23.7639),
		SeniorLon:      ptr(90.3709),
		RequiredSkills: skills,
		SeniorGender:   "মহিলা",
		SeniorArea:     "Mirpur",
		BookingDate:    "2025-11-22",
		StartTime:      "14:00:00",
		DurationHrs:    6,
	})
	require.NoError(t, err)
	require.Len(t, matches, 1)

	m := matches[0]
	assert.Equal(t, "cg-1", m.CaregiverID)
	assert.True(t, m.Available)
	assert.InDelta(t, 100.0, m.TotalScore, 1e-9)
	assert.InDelta(t, 30.0, m.Breakdown.Distance, 1e-9)
	assert.InDelta(t, 25.0, m.Breakdown.Skill, 1e-9)
	assert.InDelta(t, 20.0, m.Breakdown.Rating, 1e-9)
	assert.InDelta(t, 15.0, m.Breakdown.Experience, 1e-9)
	assert.InDelta(t, 5.0, m.Breakdown.Gender, 1e-9)
	assert.InDelta(t, 5.0, m.Breakdown.Language, 1e-9)
	assert.Zero(t, m.DistanceKm)
}

func TestCaregiverWithoutLocationExcluded(t *testing.T) {
	caregivers := []models.Caregiver{
		{ID: "cg-located", Latitude: ptr(23.76), Longitude: ptr(90.37), Services: []string{"Personal Care"}, AverageRating: ptr(5.0), ExperienceYears: 20},
		{ID: "cg-nowhere", Services: []string{"Personal Care"}, AverageRating: ptr(5.0), ExperienceYears: 20},
	}
	svc := testService(NewDataset(nil, caregivers, nil))

	matches, err := svc.Match(models.MatchRequest{SeniorLat: ptr(23.76), SeniorLon: ptr(90.37)})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "cg-located", matches[0].CaregiverID)
}

func TestTopNTruncation(t *testing.T) {
	var caregivers []models.Caregiver
	for i := 0; i < 10; i++ {
		caregivers = append(caregivers, models.Caregiver{
			ID:        fmt.Sprintf("cg-%02d", i),
			Latitude:  ptr(23.76 + float64(i)*0.01),
			Longitude: ptr(90.37),
			Services:  []string{"Personal Care"},
		})
	}
	svc := testService(NewDataset(nil, caregivers, nil))

	matches, err := svc.Match(models.MatchRequest{SeniorLat: ptr(23.76), SeniorLon: ptr(90.37), TopN: 3})
	require.NoError(t, err)
	assert.Len(t, matches, 3)
}

func TestDefaultTopNIsFive(t *testing.T) {
	var caregivers []models.Caregiver
	for i := 0; i < 8; i++ {
		caregivers = append(caregivers, models.Caregiver{
			ID:        fmt.Sprintf("cg-%02d", i),
			Latitude:  ptr(23.76),
			Longitude: ptr(90.37 + float64(i)*0.01),
			Services:  []string{"Personal Care"},
		})
	}
	svc := testService(NewDataset(nil, caregivers, nil))

	matches, err := svc.Match(models.MatchRequest{SeniorLat: ptr(23.76), SeniorLon: ptr(90.37)})
	require.NoError(t, err)
	assert.Len(t, matches, 5)
}

func TestAvailableRankAboveUnavailable(t *testing.T) {
	// cg-busy outscores cg-free on every factor, but has a conflict.
	caregivers := []models.Caregiver{
		{ID: "cg-busy", Latitude: ptr(23.76), Longitude: ptr(90.37), Services: []string{"Personal Care"}, AverageRating: ptr(5.0), ExperienceYears: 15},
		{ID: "cg-free", Latitude: ptr(24.50), Longitude: ptr(91.00), Services: []string{"Personal Care"}},
	}
	bookings := []models.Booking{{
		ID: "b-1", CaregiverID: "cg-busy",
		Date: "2025-11-20", StartTime: "10:00:00", DurationHrs: 8,
		Status: models.BookingStatusConfirmed,
	}}
	svc := testService(NewDataset(nil, caregivers, bookings))

	matches, err := svc.Match(models.MatchRequest{
		SeniorLat: ptr(23.76), SeniorLon: ptr(90.37),
		RequiredSkills: []string{"Personal Care"},
		BookingDate:    "2025-11-20", StartTime: "12:00:00", DurationHrs: 2,
	})
	require.NoError(t, err)
	require.Len(t, matches, 2)

	assert.Equal(t, "cg-free", matches[0].CaregiverID)
	assert.True(t, matches[0].Available)
	assert.Equal(t, "cg-busy", matches[1].CaregiverID)
	assert.False(t, matches[1].Available)
	assert.Contains(t, matches[1].Reason, "schedule conflict")
}

func TestTiedScoresKeepLoadOrder(t *testing.T) {
	// Ten indistinguishable caregivers score identically, so concurrent
	// scoring must not reshuffle them: ties rank in dataset load order.
	var caregivers []models.Caregiver
	for i := 0; i < 10; i++ {
		caregivers = append(caregivers, models.Caregiver{
			ID:              fmt.Sprintf("cg-%02d", i),
			Latitude:        ptr(23.76),
			Longitude:       ptr(90.37),
			Services:        []string{"Personal Care"},
			AverageRating:   ptr(4.0),
			ExperienceYears: 5,
		})
	}
	svc := testService(NewDataset(nil, caregivers, nil))
	req := models.MatchRequest{
		SeniorLat: ptr(23.76), SeniorLon: ptr(90.37),
		BookingDate: "2025-11-20", TopN: 10,
	}

	for run := 0; run < 50; run++ {
		matches, err := svc.Match(req)
		require.NoError(t, err)
		require.Len(t, matches, 10)
		for i, m := range matches {
			assert.Equal(t, fmt.Sprintf("cg-%02d", i), m.CaregiverID, "run %d position %d", run, i)
		}
	}
}

func TestScoresNonIncreasingWithinAvailabilityGroup(t *testing.T) {
	var caregivers []models.Caregiver
	for i := 0; i < 6; i++ {
		caregivers = append(caregivers, models.Caregiver{
			ID:              fmt.Sprintf("cg-%02d", i),
			Latitude:        ptr(23.76 + float64(i)*0.05),
			Longitude:       ptr(90.37),
			Services:        []string{"Personal Care"},
			ExperienceYears: float64(i),
		})
	}
	svc := testService(NewDataset(nil, caregivers, nil))

	matches, err := svc.Match(models.MatchRequest{SeniorLat: ptr(23.76), SeniorLon: ptr(90.37), TopN: 6})
	require.NoError(t, err)
	require.NotEmpty(t, matches)

	for i := 1; i < len(matches); i++ {
		if matches[i-1].Available == matches[i].Available {
			assert.GreaterOrEqual(t, matches[i-1].TotalScore, matches[i].TotalScore)
		}
	}
}

func TestMissingCoordinatesRejected(t *testing.T) {
	svc := testService(NewDataset(nil, nil, nil))

	_, err := svc.Match(models.MatchRequest{})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestUnknownSeniorRejected(t *testing.T) {
	svc := testService(NewDataset(nil, nil, nil))

	_, err := svc.Match(models.MatchRequest{SeniorID: "no-such-senior"})
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.ErrorIs(t, err, ErrSeniorNotFound)
}

func TestSeniorLookupResolvesLocationAndSkills(t *testing.T) {
	seniors := []models.Senior{{
		ID: "sr-1", Gender: "মহিলা", Area: "Mirpur",
		Latitude: ptr(23.7639), Longitude: ptr(90.3709),
		MedicalConditions: []string{"ডায়াবেটিস"},
	}}
	caregivers := []models.Caregiver{{
		ID: "cg-1", Gender: "মহিলা", Area: "Mirpur",
		Latitude: ptr(23.7639), Longitude: ptr(90.3709),
		Services: []string{"Diabetes Care", "Personal Care", "Companionship", "Medication Management"},
	}}
	svc := testService(NewDataset(seniors, caregivers, nil))

	matches, err := svc.Match(models.MatchRequest{SeniorID: "sr-1", BookingDate: "2025-11-20"})
	require.NoError(t, err)
	require.Len(t, matches, 1)

	m := matches[0]
	// Derived skills are exactly the caregiver's offering, so cosine is 1.
	assert.InDelta(t, 25.0, m.Breakdown.Skill, 1e-9)
	assert.InDelta(t, 5.0, m.Breakdown.Gender, 1e-9)
	assert.InDelta(t, 5.0, m.Breakdown.Language, 1e-9)
	assert.InDelta(t, 30.0, m.Breakdown.Distance, 1e-9)
}

func TestSkillsFromConditions(t *testing.T) {
	table := config.DefaultConditionServices()

	skills := skillsFromConditions([]string{"ডায়াবেটিস", "হৃদরোগ", "unknown condition"}, table)
	assert.Contains(t, skills, "Diabetes Care")
	assert.Contains(t, skills, "Nursing")
	// Unknown conditions fall back to Personal Care.
	assert.Contains(t, skills, "Personal Care")
	// Baseline services always present.
	assert.Contains(t, skills, "Companionship")
	assert.Contains(t, skills, "Medication Management")

	// De-duplicated.
	seen := map[string]int{}
	for _, s := range skills {
		seen[s]++
	}
	for s, n := range seen {
		assert.Equal(t, 1, n, "duplicate skill %q", s)
	}
}

func TestMatchBoundsHoldForMixedRecords(t *testing.T) {
	caregivers := []models.Caregiver{
		{ID: "cg-1", Latitude: ptr(23.76), Longitude: ptr(90.37), Services: []string{"Nursing"}, AverageRating: ptr(4.2), ExperienceYears: 7, Gender: "পুরুষ", Area: "Dhanmondi"},
		{ID: "cg-2", Latitude: ptr(22.35), Longitude: ptr(91.78), Services: nil, ExperienceYears: -1},
		{ID: "cg-3", Latitude: ptr(23.80), Longitude: ptr(90.41), Services: []string{"Personal Care", "Companionship"}, AverageRating: ptr(3.0), Gender: "মহিলা", Area: "Mirpur Dhaka"},
	}
	svc := testService(NewDataset(nil, caregivers, nil))

	matches, err := svc.Match(models.MatchRequest{
		SeniorLat: ptr(23.76), SeniorLon: ptr(90.37),
		SeniorGender: "মহিলা", SeniorArea: "Mirpur",
		RequiredSkills: []string{"Personal Care"},
	})
	require.NoError(t, err)
	require.Len(t, matches, 3)

	for _, m := range matches {
		assert.GreaterOrEqual(t, m.TotalScore, 0.0)
		assert.LessOrEqual(t, m.TotalScore, 100.0)
		for name, pair := range map[string][2]float64{
			"distance":   {m.Breakdown.Distance, 30},
			"skill":      {m.Breakdown.Skill, 25},
			"rating":     {m.Breakdown.Rating, 20},
			"experience": {m.Breakdown.Experience, 15},
			"gender":     {m.Breakdown.Gender, 5},
			"language":   {m.Breakdown.Language, 5},
		} {
			assert.GreaterOrEqual(t, pair[0], 0.0, name)
			assert.LessOrEqual(t, pair[0], pair[1], name)
		}
	}
}

func TestStats(t *testing.T) {
	seniors := []models.Senior{{ID: "sr-1"}, {ID: "sr-2"}}
	caregivers := []models.Caregiver{{ID: "cg-1"}}
	bookings := []models.Booking{{ID: "b-1", CaregiverID: "cg-1"}, {ID: "b-2", CaregiverID: "cg-1"}, {ID: "b-3", CaregiverID: "cg-x"}}
	svc := testService(NewDataset(seniors, caregivers, bookings))

	stats := svc.Stats()
	assert.Equal(t, 2, stats.TotalSeniors)
	assert.Equal(t, 1, stats.TotalCaregivers)
	assert.Equal(t, 3, stats.TotalBookings)
	assert.Equal(t, AlgorithmVersion, stats.AlgorithmVersion)
	assert.Equal(t, map[string]int{
		"distance": 30, "skill": 25, "rating": 20,
		"experience": 15, "gender": 5, "language": 5,
	}, stats.ScoringWeights)
}

func TestRepeatedMatchIsIdempotent(t *testing.T) {
	caregivers := []models.Caregiver{
		{ID: "cg-1", Latitude: ptr(23.76), Longitude: ptr(90.37), Services: []string{"Personal Care"}},
		{ID: "cg-2", Latitude: ptr(23.80), Longitude: ptr(90.41), Services: []string{"Nursing"}},
	}
	svc := testService(NewDataset(nil, caregivers, nil))
	req := models.MatchRequest{SeniorLat: ptr(23.76), SeniorLon: ptr(90.37), BookingDate: "2025-11-20"}

	first, err := svc.Match(req)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := svc.Match(req)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
