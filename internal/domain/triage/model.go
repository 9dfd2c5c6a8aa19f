package triage

import (
	"errors"
	"time"
)

// Symptom identifies one entry in the fixed symptom vocabulary.
type Symptom string

// Severity grades a condition for display and triage priority.
type Severity string

const (
	SeverityLow    Severity = "Low"
	SeverityMedium Severity = "Medium"
	SeverityHigh   Severity = "High"
)

// ConditionCardiacRisk is the safety-critical condition: the classifier
// override forces it when enough of its symptoms are reported, and no
// medicine entry may ever be attached to it.
const ConditionCardiacRisk = "Cardiac Risk"

var (
	ErrUnknownSymptom   = errors.New("unknown symptom")
	ErrUnknownCondition = errors.New("unknown condition")
	ErrInvalidAge       = errors.New("age must be non-negative")
	ErrNoSymptoms       = errors.New("at least one symptom is required")
)

// ConditionProfile describes one supported condition and the symptoms
// characteristic of it.
type ConditionProfile struct {
	Name        string    `json:"name"`
	Symptoms    []Symptom `json:"symptoms"`
	Description string    `json:"description"`
	Severity    Severity  `json:"severity"`
	Precautions []string  `json:"precautions"`
}

// ConditionInfo is the display subset of a condition profile.
type ConditionInfo struct {
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	Precautions []string `json:"precautions"`
}

// MedicineEntry is one catalog row. A nil MinimumAge means no age
// restriction.
type MedicineEntry struct {
	Name              string   `json:"name"`
	Category          string   `json:"category"`
	MinimumAge        *int     `json:"minimum_age,omitempty"`
	Contraindications []string `json:"contraindications"`
	Notes             string   `json:"notes"`
}

// Recommendation is the filtered, caller-facing projection of a catalog
// entry.
type Recommendation struct {
	Name           string `json:"name"`
	Category       string `json:"category"`
	Notes          string `json:"notes"`
	AgeAppropriate bool   `json:"age_appropriate"`
}

// Prediction is the classifier output for one symptom set.
type Prediction struct {
	Condition  string `json:"condition"`
	Confidence int    `json:"confidence"`
}

// AnalysisRequest carries one patient presentation through the full
// pipeline. Symptoms may be given directly or extracted from Text when the
// set is empty.
type AnalysisRequest struct {
	PatientName string    `json:"patient_name"`
	Age         int       `json:"age"`
	Symptoms    []Symptom `json:"symptoms"`
	Text        string    `json:"text,omitempty"`
	Allergies   []string  `json:"allergies,omitempty"`
}

// AnalysisResult is the outcome of a full analysis. Recommendations is
// always empty for Cardiac Risk and Emergency is set instead.
type AnalysisResult struct {
	PatientName     string           `json:"patient_name"`
	Age             int              `json:"age"`
	AgeCategory     string           `json:"age_category"`
	Allergies       []string         `json:"allergies"`
	Symptoms        []Symptom        `json:"symptoms"`
	Condition       string           `json:"condition"`
	Confidence      int              `json:"confidence"`
	Info            ConditionInfo    `json:"info"`
	Recommendations []Recommendation `json:"recommendations"`
	Emergency       bool             `json:"emergency"`
	GeneratedAt     time.Time        `json:"generated_at"`
}

// AgeCategory buckets an age the way the intake form displays it.
func AgeCategory(age int) string {
	switch {
	case age < 12:
		return "Child"
	case age < 18:
		return "Adolescent"
	case age < 65:
		return "Adult"
	default:
		return "Senior"
	}
}
