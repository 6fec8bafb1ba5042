package matching

import (
	"strings"
)

// Baseline services appended to every condition-derived requirement.
var baselineServices = []string{
	"Personal Care",
	"Companionship",
	"Medication Management",
}

// defaultRequiredSkills applies when neither the request nor the
// senior's conditions yield a requirement.
var defaultRequiredSkills = []string{"Personal Care", "Companionship"}

// skillsFromConditions maps a senior's medical-condition labels to the
// services that address them, using the configured lookup table.
// Unknown conditions fall back to Personal Care. The three baseline
// services are always appended and the result is de-duplicated,
// preserving first-seen order.
func skillsFromConditions(conditions []string, table map[string]string) []string {
	var skills []string
	for _, c := range conditions {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if service, ok := table[c]; ok {
			skills = append(skills, service)
		} else {
			skills = append(skills, "Personal Care")
		}
	}
	skills = append(skills, baselineServices...)
	return dedupe(skills)
}

func dedupe(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := skills[:0]
	for _, s := range skills {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
