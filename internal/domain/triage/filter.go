package triage

import "strings"

// filterMedicines applies age and allergy exclusions to catalog entries,
// preserving catalog order. Entries that survive are always
// age-appropriate: the age check is the exclusion itself.
func filterMedicines(entries []MedicineEntry, age int, allergies []string) []Recommendation {
	normalized := make(map[string]struct{}, len(allergies))
	for _, a := range allergies {
		a = strings.ToLower(strings.TrimSpace(a))
		if a != "" {
			normalized[a] = struct{}{}
		}
	}

	safe := make([]Recommendation, 0, len(entries))
	for _, m := range entries {
		if m.MinimumAge != nil && age < *m.MinimumAge {
			continue
		}
		if contraindicated(m.Contraindications, normalized) {
			continue
		}
		safe = append(safe, Recommendation{
			Name:           m.Name,
			Category:       m.Category,
			Notes:          m.Notes,
			AgeAppropriate: true,
		})
	}
	return safe
}

func contraindicated(tags []string, allergies map[string]struct{}) bool {
	for _, tag := range tags {
		if _, ok := allergies[tag]; ok {
			return true
		}
	}
	return false
}
