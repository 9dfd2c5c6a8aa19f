package triage

import (
	"fmt"
	"time"
)

// Service is the decision engine facade consumed by the HTTP and CLI
// layers. All methods are pure computations over the immutable registry
// and trained classifier, so concurrent use is safe.
type Service struct {
	registry   *Registry
	classifier *Classifier
}

func NewService(reg *Registry, cls *Classifier) *Service {
	return &Service{registry: reg, classifier: cls}
}

// ListSymptoms returns the symptom vocabulary in display order.
func (s *Service) ListSymptoms() []Symptom {
	return s.registry.Symptoms()
}

// ListConditions returns all condition profiles.
func (s *Service) ListConditions() []ConditionProfile {
	return s.registry.Conditions()
}

// GetConditionInfo returns description, severity and precautions for a
// condition, or ErrUnknownCondition.
func (s *Service) GetConditionInfo(condition string) (ConditionInfo, error) {
	p, err := s.registry.Condition(condition)
	if err != nil {
		return ConditionInfo{}, err
	}
	return ConditionInfo{
		Description: p.Description,
		Severity:    p.Severity,
		Precautions: p.Precautions,
	}, nil
}

// Predict classifies a symptom set. See Classifier.Predict for override
// and empty-input semantics.
func (s *Service) Predict(symptoms []Symptom) (Prediction, error) {
	return s.classifier.Predict(symptoms)
}

// ExtractSymptoms maps free text to vocabulary symptoms.
func (s *Service) ExtractSymptoms(text string) []Symptom {
	return s.registry.Extract(text)
}

// RecommendMedicines filters the condition's catalog by age and allergies.
// Cardiac Risk always yields an empty list; that is the normal outcome for
// it, not an error. A negative age is rejected rather than clamped.
func (s *Service) RecommendMedicines(condition string, age int, allergies []string) ([]Recommendation, error) {
	if age < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAge, age)
	}
	entries, err := s.registry.Medicines(condition)
	if err != nil {
		return nil, err
	}
	// Single choke point: no medication suggestions for cardiac
	// presentations, independent of the (already empty) catalog.
	if condition == ConditionCardiacRisk {
		return []Recommendation{}, nil
	}
	return filterMedicines(entries, age, allergies), nil
}

// Analyze runs the full pipeline: symptom extraction when only text was
// given, classification with the cardiac override, condition metadata
// lookup and medicine filtering.
func (s *Service) Analyze(req AnalysisRequest) (*AnalysisResult, error) {
	symptoms := req.Symptoms
	if len(symptoms) == 0 && req.Text != "" {
		symptoms = s.ExtractSymptoms(req.Text)
	}
	if len(symptoms) == 0 {
		return nil, ErrNoSymptoms
	}
	if req.Age < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAge, req.Age)
	}

	pred, err := s.Predict(symptoms)
	if err != nil {
		return nil, err
	}
	info, err := s.GetConditionInfo(pred.Condition)
	if err != nil {
		return nil, err
	}
	recs, err := s.RecommendMedicines(pred.Condition, req.Age, req.Allergies)
	if err != nil {
		return nil, err
	}

	return &AnalysisResult{
		PatientName:     req.PatientName,
		Age:             req.Age,
		AgeCategory:     AgeCategory(req.Age),
		Allergies:       req.Allergies,
		Symptoms:        symptoms,
		Condition:       pred.Condition,
		Confidence:      pred.Confidence,
		Info:            info,
		Recommendations: recs,
		Emergency:       pred.Condition == ConditionCardiacRisk,
		GeneratedAt:     time.Now().UTC(),
	}, nil
}
