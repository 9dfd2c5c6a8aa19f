package triage

import (
	"fmt"
	"regexp"
	"strings"
)

// RegistryData is the raw reference dataset a Registry is built from.
type RegistryData struct {
	Vocabulary []Symptom
	Profiles   []ConditionProfile
	Catalog    map[string][]MedicineEntry
	Keywords   []KeywordEntry
}

// DefaultData returns the built-in reference dataset.
func DefaultData() RegistryData {
	return RegistryData{
		Vocabulary: defaultVocabulary,
		Profiles:   defaultProfiles,
		Catalog:    defaultCatalog,
		Keywords:   defaultKeywords,
	}
}

// Registry is the read-only reference data store: symptom vocabulary,
// condition profiles, medicine catalog and the extraction keyword
// dictionary. It is built once at startup and never mutated afterwards, so
// concurrent readers need no locking.
type Registry struct {
	vocabulary []Symptom
	vocabIndex map[Symptom]int
	profiles   []ConditionProfile
	byName     map[string]ConditionProfile
	catalog    map[string][]MedicineEntry
	matchers   []symptomMatcher
}

type symptomMatcher struct {
	symptom  Symptom
	patterns []*regexp.Regexp
}

// NewRegistry builds a Registry from the built-in dataset.
func NewRegistry() (*Registry, error) {
	return NewRegistryFromData(DefaultData())
}

// NewRegistryFromData validates referential integrity and builds the
// registry. It fails fast on any symptom referenced outside the vocabulary,
// any catalog entry attached to an unknown condition, and on any medicine
// attached to Cardiac Risk.
func NewRegistryFromData(data RegistryData) (*Registry, error) {
	if len(data.Vocabulary) == 0 {
		return nil, fmt.Errorf("registry: empty symptom vocabulary")
	}

	vocabIndex := make(map[Symptom]int, len(data.Vocabulary))
	for i, s := range data.Vocabulary {
		if _, dup := vocabIndex[s]; dup {
			return nil, fmt.Errorf("registry: duplicate symptom %q in vocabulary", s)
		}
		vocabIndex[s] = i
	}

	byName := make(map[string]ConditionProfile, len(data.Profiles))
	for _, p := range data.Profiles {
		if _, dup := byName[p.Name]; dup {
			return nil, fmt.Errorf("registry: duplicate condition %q", p.Name)
		}
		if len(p.Symptoms) == 0 {
			return nil, fmt.Errorf("registry: condition %q has no characteristic symptoms", p.Name)
		}
		for _, s := range p.Symptoms {
			if _, ok := vocabIndex[s]; !ok {
				return nil, fmt.Errorf("registry: condition %q references symptom %q not in vocabulary", p.Name, s)
			}
		}
		byName[p.Name] = p
	}

	for condition, entries := range data.Catalog {
		if _, ok := byName[condition]; !ok {
			return nil, fmt.Errorf("registry: catalog references unknown condition %q", condition)
		}
		if condition == ConditionCardiacRisk && len(entries) > 0 {
			return nil, fmt.Errorf("registry: %s must not own medicine entries", ConditionCardiacRisk)
		}
		for _, m := range entries {
			if m.MinimumAge != nil && *m.MinimumAge < 0 {
				return nil, fmt.Errorf("registry: medicine %q has negative minimum age", m.Name)
			}
		}
	}

	matchers := make([]symptomMatcher, 0, len(data.Keywords))
	for _, kw := range data.Keywords {
		if _, ok := vocabIndex[kw.Symptom]; !ok {
			return nil, fmt.Errorf("registry: keyword dictionary references symptom %q not in vocabulary", kw.Symptom)
		}
		m := symptomMatcher{symptom: kw.Symptom}
		for _, phrase := range kw.Phrases {
			// Whole-word match only: "chills" must not fire inside
			// "childish".
			re, err := regexp.Compile(`\b` + regexp.QuoteMeta(strings.ToLower(phrase)) + `\b`)
			if err != nil {
				return nil, fmt.Errorf("registry: keyword %q for %q: %w", phrase, kw.Symptom, err)
			}
			m.patterns = append(m.patterns, re)
		}
		matchers = append(matchers, m)
	}

	return &Registry{
		vocabulary: append([]Symptom(nil), data.Vocabulary...),
		vocabIndex: vocabIndex,
		profiles:   append([]ConditionProfile(nil), data.Profiles...),
		byName:     byName,
		catalog:    data.Catalog,
		matchers:   matchers,
	}, nil
}

// Symptoms returns the vocabulary in its fixed order.
func (r *Registry) Symptoms() []Symptom {
	return append([]Symptom(nil), r.vocabulary...)
}

// HasSymptom reports whether s belongs to the vocabulary.
func (r *Registry) HasSymptom(s Symptom) bool {
	_, ok := r.vocabIndex[s]
	return ok
}

// SymptomIndex returns the feature-vector index of s.
func (r *Registry) SymptomIndex(s Symptom) (int, bool) {
	i, ok := r.vocabIndex[s]
	return i, ok
}

// Conditions returns all condition profiles in their fixed order.
func (r *Registry) Conditions() []ConditionProfile {
	return append([]ConditionProfile(nil), r.profiles...)
}

// Condition looks up a profile by name.
func (r *Registry) Condition(name string) (ConditionProfile, error) {
	p, ok := r.byName[name]
	if !ok {
		return ConditionProfile{}, fmt.Errorf("%w: %q", ErrUnknownCondition, name)
	}
	return p, nil
}

// Medicines returns the catalog entries for a condition in catalog order.
// A known condition with no entries yields an empty slice.
func (r *Registry) Medicines(condition string) ([]MedicineEntry, error) {
	if _, ok := r.byName[condition]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCondition, condition)
	}
	return r.catalog[condition], nil
}
