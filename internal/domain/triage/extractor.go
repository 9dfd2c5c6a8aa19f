package triage

import "strings"

// Extract maps free text to vocabulary symptoms by whole-word keyword
// matching. The first matching phrase variant records its symptom once and
// the remaining variants are skipped. Output follows keyword dictionary
// order, not input order; an empty result is a valid outcome, not an
// error.
//
// Underscores are treated as spaces so canonical identifiers
// ("shortness_of_breath") are accepted as phrases.
func (r *Registry) Extract(text string) []Symptom {
	text = strings.ToLower(text)
	text = strings.ReplaceAll(text, "_", " ")

	var found []Symptom
	for _, m := range r.matchers {
		for _, re := range m.patterns {
			if re.MatchString(text) {
				found = append(found, m.symptom)
				break
			}
		}
	}
	return found
}
