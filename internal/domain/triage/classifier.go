package triage

import (
	"fmt"
	"math"
	"math/rand"
)

// Classifier is a multinomial naive Bayes model over binary symptom
// indicator vectors, trained once from the condition profiles. It is
// read-only after construction.
//
// The statistical layer is never trusted for the highest-severity
// condition: every prediction passes through an unconditional cardiac
// override (see Predict).
type Classifier struct {
	registry *Registry
	classes  []string
	logPrior []float64
	logProb  [][]float64 // [class][feature], Laplace-smoothed
	cardiac  map[Symptom]struct{}
}

// cardiacOverrideThreshold is the number of reported Cardiac Risk symptoms
// that forces the override.
const cardiacOverrideThreshold = 3

// cardiacOverrideConfidence is the fixed confidence reported when the
// override fires.
const cardiacOverrideConfidence = 95

// NewClassifier trains the model from the registry's condition profiles.
// Each condition contributes its full indicator vector; conditions with
// more than 3 characteristic symptoms also contribute 3 randomly drawn
// partial subsets for robustness to incomplete reporting. The rng seed
// controls subset sampling: production runs may vary between seeds within
// the same condition label, the override path never does.
func NewClassifier(reg *Registry, rng *rand.Rand) (*Classifier, error) {
	cardiacProfile, err := reg.Condition(ConditionCardiacRisk)
	if err != nil {
		return nil, fmt.Errorf("classifier: %w", err)
	}
	cardiac := make(map[Symptom]struct{}, len(cardiacProfile.Symptoms))
	for _, s := range cardiacProfile.Symptoms {
		cardiac[s] = struct{}{}
	}

	vocabSize := len(reg.vocabulary)
	profiles := reg.Conditions()

	var vectors [][]float64
	var labels []int
	classes := make([]string, len(profiles))

	for ci, p := range profiles {
		classes[ci] = p.Name

		vectors = append(vectors, indicatorVector(reg, p.Symptoms))
		labels = append(labels, ci)

		if len(p.Symptoms) > 3 {
			for k := 1; k <= 3; k++ {
				size := len(p.Symptoms) - k
				if size < 2 {
					size = 2
				}
				subset := sampleWithoutReplacement(rng, p.Symptoms, size)
				vectors = append(vectors, indicatorVector(reg, subset))
				labels = append(labels, ci)
			}
		}
	}

	c := &Classifier{
		registry: reg,
		classes:  classes,
		logPrior: make([]float64, len(classes)),
		logProb:  make([][]float64, len(classes)),
		cardiac:  cardiac,
	}
	c.fit(vectors, labels, vocabSize)
	return c, nil
}

// fit computes Laplace-smoothed per-class feature log-likelihoods and
// class log-priors from the training vectors.
func (c *Classifier) fit(vectors [][]float64, labels []int, vocabSize int) {
	classCount := make([]float64, len(c.classes))
	featureCount := make([][]float64, len(c.classes))
	for ci := range c.classes {
		featureCount[ci] = make([]float64, vocabSize)
	}

	for i, vec := range vectors {
		ci := labels[i]
		classCount[ci]++
		for f, v := range vec {
			featureCount[ci][f] += v
		}
	}

	total := float64(len(vectors))
	for ci := range c.classes {
		c.logPrior[ci] = math.Log(classCount[ci] / total)

		var classTotal float64
		for _, n := range featureCount[ci] {
			classTotal += n
		}
		c.logProb[ci] = make([]float64, vocabSize)
		for f := range c.logProb[ci] {
			c.logProb[ci][f] = math.Log((featureCount[ci][f] + 1) / (classTotal + float64(vocabSize)))
		}
	}
}

// Predict classifies a reported symptom set and returns the predicted
// condition with an integer confidence in [0, 100]. Every symptom must
// belong to the vocabulary. An empty set is valid and yields the model's
// highest-prior class; callers wanting a "not enough information" outcome
// must gate on input themselves.
//
// The cardiac override runs unconditionally after inference: when 3 or
// more reported symptoms intersect the Cardiac Risk profile the model's
// answer is discarded and (Cardiac Risk, 95) is returned. This is a hard
// floor, not a heuristic.
func (c *Classifier) Predict(symptoms []Symptom) (Prediction, error) {
	for _, s := range symptoms {
		if !c.registry.HasSymptom(s) {
			return Prediction{}, fmt.Errorf("%w: %q", ErrUnknownSymptom, s)
		}
	}

	vec := indicatorVector(c.registry, symptoms)

	// Joint log-probabilities, normalized via log-sum-exp.
	joint := make([]float64, len(c.classes))
	for ci := range c.classes {
		sum := c.logPrior[ci]
		for f, v := range vec {
			if v > 0 {
				sum += c.logProb[ci][f]
			}
		}
		joint[ci] = sum
	}

	maxJoint := joint[0]
	for _, j := range joint[1:] {
		if j > maxJoint {
			maxJoint = j
		}
	}
	var norm float64
	for _, j := range joint {
		norm += math.Exp(j - maxJoint)
	}

	best := 0
	bestProb := 0.0
	for ci := range c.classes {
		p := math.Exp(joint[ci]-maxJoint) / norm
		if p > bestProb {
			best = ci
			bestProb = p
		}
	}

	pred := Prediction{
		Condition:  c.classes[best],
		Confidence: int(math.Round(bestProb * 100)),
	}

	if c.cardiacMatches(symptoms) >= cardiacOverrideThreshold {
		pred.Condition = ConditionCardiacRisk
		pred.Confidence = cardiacOverrideConfidence
	}
	return pred, nil
}

func (c *Classifier) cardiacMatches(symptoms []Symptom) int {
	seen := make(map[Symptom]struct{}, len(symptoms))
	n := 0
	for _, s := range symptoms {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		if _, ok := c.cardiac[s]; ok {
			n++
		}
	}
	return n
}

func indicatorVector(reg *Registry, symptoms []Symptom) []float64 {
	vec := make([]float64, len(reg.vocabulary))
	for _, s := range symptoms {
		if i, ok := reg.SymptomIndex(s); ok {
			vec[i] = 1
		}
	}
	return vec
}

func sampleWithoutReplacement(rng *rand.Rand, symptoms []Symptom, size int) []Symptom {
	perm := rng.Perm(len(symptoms))
	subset := make([]Symptom, size)
	for i := 0; i < size; i++ {
		subset[i] = symptoms[perm[i]]
	}
	return subset
}
