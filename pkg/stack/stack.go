package stack

import (
	"github.com/pkg/errors"
)

// Dimension values are bounded, higher always means "more of" the
// named attribute (for performance_cost and dev_complexity, more
// expensive or harder).
const (
	DimensionMin = 1
	DimensionMax = 10
)

// Output column names, also accepted as sort fields.
const (
	ColKey               string = "key"
	ColName              string = "name"
	ColFamily            string = "family"
	ColPrivacyLevel      string = "privacy_level"
	ColSoundnessFocus    string = "soundness_focus"
	ColPerformanceCost   string = "performance_cost"
	ColDevComplexity     string = "dev_complexity"
	ColEcosystemMaturity string = "ecosystem_maturity"
	ColCompositeScore    string = "composite_score"
)

var (
	// ErrNotFound indicates a key that matches no catalog record.
	ErrNotFound = errors.New("stack not found")

	// ErrInvalidArgument indicates an unrecognized sort field or
	// output format.
	ErrInvalidArgument = errors.New("invalid argument")

	// Columns lists the output columns in render order, composite
	// score excluded (it is appended only when requested).
	Columns = []string{
		ColKey,
		ColName,
		ColFamily,
		ColPrivacyLevel,
		ColSoundnessFocus,
		ColPerformanceCost,
		ColDevComplexity,
		ColEcosystemMaturity,
	}

	numericFields = map[string]func(Profile) int{
		ColPrivacyLevel:      func(p Profile) int { return p.PrivacyLevel },
		ColSoundnessFocus:    func(p Profile) int { return p.SoundnessFocus },
		ColPerformanceCost:   func(p Profile) int { return p.PerformanceCost },
		ColDevComplexity:     func(p Profile) int { return p.DevComplexity },
		ColEcosystemMaturity: func(p Profile) int { return p.EcosystemMaturity },
	}

	stringFields = map[string]func(Profile) string{
		ColKey:    func(p Profile) string { return p.Key },
		ColName:   func(p Profile) string { return p.Name },
		ColFamily: func(p Profile) string { return p.Family },
	}
)

// Profile describes one conceptual privacy/soundness approach.
type Profile struct {
	Key               string `json:"key" yaml:"key"`
	Name              string `json:"name" yaml:"name"`
	Family            string `json:"family" yaml:"family"`
	PrivacyLevel      int    `json:"privacy_level" yaml:"privacy_level"`
	SoundnessFocus    int    `json:"soundness_focus" yaml:"soundness_focus"`
	PerformanceCost   int    `json:"performance_cost" yaml:"performance_cost"`
	DevComplexity     int    `json:"dev_complexity" yaml:"dev_complexity"`
	EcosystemMaturity int    `json:"ecosystem_maturity" yaml:"ecosystem_maturity"`
}

// ScoredProfile is a Profile with the composite score attached when
// scoring was requested. The score is derived per invocation, never
// stored.
type ScoredProfile struct {
	Profile        `yaml:",inline"`
	CompositeScore *float64 `json:"composite_score,omitempty" yaml:"composite_score,omitempty"`
}

// SortFields lists every recognized sort field in column order.
func SortFields() []string {
	fields := make([]string, 0, len(Columns)+1)
	fields = append(fields, Columns...)
	fields = append(fields, ColCompositeScore)
	return fields
}

// IsSortField reports whether name is a recognized sort field.
func IsSortField(name string) bool {
	if name == ColCompositeScore {
		return true
	}
	if _, ok := numericFields[name]; ok {
		return true
	}
	_, ok := stringFields[name]
	return ok
}
