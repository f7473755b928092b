package stack

import (
	"math"
)

// Composite score weights. Privacy and soundness count as benefits,
// performance cost and dev complexity as penalties. The formula is
// illustrative, not scientific; ecosystem maturity does not
// participate.
const (
	weightPrivacyLevel    = 0.45
	weightSoundnessFocus  = 0.40
	weightPerformanceCost = 0.10
	weightDevComplexity   = 0.05
)

// Score computes the composite score for a profile, rounded to two
// decimal places. Pure and deterministic.
func Score(p Profile) float64 {
	benefit := weightPrivacyLevel*float64(p.PrivacyLevel) +
		weightSoundnessFocus*float64(p.SoundnessFocus)
	penalty := weightPerformanceCost*float64(p.PerformanceCost) +
		weightDevComplexity*float64(p.DevComplexity)
	return math.Round((benefit-penalty)*100) / 100
}
