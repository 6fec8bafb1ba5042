package matching

import (
	"fmt"
	"strings"

	"shebacare/models"
)

// buildReason synthesizes a human-readable rationale from the
// already-computed breakdown, using threshold tiers. It is presentation
// logic only and never feeds back into ranking.
func buildReason(distanceKm float64, breakdown models.ScoreBreakdown, cg *models.Caregiver, available bool) string {
	var reasons []string

	if distanceKm < 3 {
		reasons = append(reasons, fmt.Sprintf("very close (%.1f km)", distanceKm))
	} else if distanceKm < 10 {
		reasons = append(reasons, fmt.Sprintf("nearby area (%.1f km)", distanceKm))
	}

	if breakdown.Skill > 20 {
		reasons = append(reasons, "has required skills")
	}

	if breakdown.Rating > 15 && cg.AverageRating != nil {
		reasons = append(reasons, fmt.Sprintf("high rating (%.1f/5)", *cg.AverageRating))
	}

	if breakdown.Experience > 10 {
		reasons = append(reasons, fmt.Sprintf("%d years of experience", int(cg.ExperienceYears)))
	}

	if breakdown.Gender > 0 {
		reasons = append(reasons, "gender match")
	}

	if breakdown.Language > 0 {
		reasons = append(reasons, "same area")
	}

	if !available {
		reasons = append(reasons, "schedule conflict")
	}

	if len(reasons) == 0 {
		return "good option"
	}
	return strings.Join(reasons, "; ")
}
