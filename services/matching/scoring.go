package matching

import (
	"math"
	"strings"
)

// Component score ceilings. They sum to exactly 100.
const (
	MaxDistancePts   = 30.0
	MaxSkillPts      = 25.0
	MaxRatingPts     = 20.0
	MaxExperiencePts = 15.0
	GenderMatchPts   = 5.0
	MaxLanguagePts   = 5.0

	// PartialAreaPts is awarded when the areas share a token without
	// matching exactly, a proxy for neighbouring localities sharing a
	// dialect.
	PartialAreaPts = 2.5

	earthRadiusKm = 6371.0

	// distanceDecayKm controls how fast the distance score falls off.
	distanceDecayKm = 10.0

	// experienceSaturationYears is where the experience score maxes out.
	experienceSaturationYears = 15.0
)

// haversineKm computes the great-circle distance in kilometers between
// two latitude/longitude points given in decimal degrees.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	rLat1 := lat1 * math.Pi / 180
	rLon1 := lon1 * math.Pi / 180
	rLat2 := lat2 * math.Pi / 180
	rLon2 := lon2 * math.Pi / 180

	dLat := rLat2 - rLat1
	dLon := rLon2 - rLon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}

// distanceScore maps a distance in km to [0, 30] with exponential decay;
// a caregiver at the senior's doorstep scores the full 30.
func distanceScore(distanceKm float64) float64 {
	if math.IsNaN(distanceKm) {
		return 0
	}
	score := MaxDistancePts * math.Exp(-distanceKm/distanceDecayKm)
	return math.Max(0, math.Min(MaxDistancePts, score))
}

// skillScore scales cosine similarity between the required and offered
// skill vectors to [0, 25]. An empty requirement scores 0.
func skillScore(requiredVec, offeredVec []float64) float64 {
	return cosineSimilarity(requiredVec, offeredVec) * MaxSkillPts
}

// ratingScore scales a 0-5 average rating linearly to [0, 20]. A missing
// rating scores 0.
func ratingScore(rating *float64) float64 {
	if rating == nil {
		return 0
	}
	return (*rating / 5.0) * MaxRatingPts
}

// experienceScore rewards years of experience with diminishing returns,
// saturating at 15 years.
func experienceScore(years float64) float64 {
	if math.IsNaN(years) || years <= 0 {
		return 0
	}
	score := MaxExperiencePts * math.Log1p(years) / math.Log1p(experienceSaturationYears)
	return math.Min(MaxExperiencePts, score)
}

// genderScore awards 5 points for an exact label match, 0 otherwise.
func genderScore(seniorGender, caregiverGender string) float64 {
	if seniorGender == "" || caregiverGender == "" {
		return 0
	}
	if seniorGender == caregiverGender {
		return GenderMatchPts
	}
	return 0
}

// languageScore uses the area label as a dialect proxy: the same area
// scores 5, a shared whitespace-delimited token scores 2.5.
func languageScore(seniorArea, caregiverArea string) float64 {
	if seniorArea == "" || caregiverArea == "" {
		return 0
	}

	seniorLower := strings.ToLower(seniorArea)
	caregiverLower := strings.ToLower(caregiverArea)
	if seniorLower == caregiverLower {
		return MaxLanguagePts
	}

	caregiverTokens := make(map[string]struct{})
	for _, tok := range strings.Fields(caregiverLower) {
		caregiverTokens[tok] = struct{}{}
	}
	for _, tok := range strings.Fields(seniorLower) {
		if _, ok := caregiverTokens[tok]; ok {
			return PartialAreaPts
		}
	}
	return 0
}

// round2 rounds to two decimals for presentation. Ranking always uses
// the unrounded values.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
