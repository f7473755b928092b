package stack

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	require.NotNil(t, c)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"aztec", "zama", "soundness"}, c.Keys())

	seen := map[string]bool{}
	for _, p := range c.All() {
		assert.False(t, seen[p.Key], "duplicate key: %s", p.Key)
		seen[p.Key] = true
		for field, get := range numericFields {
			v := get(p)
			assert.GreaterOrEqual(t, v, DimensionMin, "%s %s", p.Key, field)
			assert.LessOrEqual(t, v, DimensionMax, "%s %s", p.Key, field)
		}
	}
}

func TestCatalog_ByKey(t *testing.T) {
	c := Default()
	p, err := c.ByKey("aztec")
	require.NoError(t, err)
	assert.Equal(t, "aztec", p.Key)
	assert.Equal(t, "Aztec-style zk Rollup", p.Name)
}

func TestCatalog_ByKey_NotFound(t *testing.T) {
	c := Default()
	_, err := c.ByKey("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "nope")
}

func TestNewCatalog_DuplicateKey(t *testing.T) {
	_, err := NewCatalog(
		Profile{Key: "a", Name: "A", Family: "f", PrivacyLevel: 1, SoundnessFocus: 1, PerformanceCost: 1, DevComplexity: 1, EcosystemMaturity: 1},
		Profile{Key: "a", Name: "A again", Family: "f", PrivacyLevel: 2, SoundnessFocus: 2, PerformanceCost: 2, DevComplexity: 2, EcosystemMaturity: 2},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestNewCatalog_MissingKey(t *testing.T) {
	_, err := NewCatalog(Profile{Name: "nameless", Family: "f",
		PrivacyLevel: 1, SoundnessFocus: 1, PerformanceCost: 1, DevComplexity: 1, EcosystemMaturity: 1})
	assert.Error(t, err)
}

func TestNewCatalog_DimensionOutOfRange(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
	}{
		{"privacy too high", Profile{Key: "x", PrivacyLevel: 11, SoundnessFocus: 5, PerformanceCost: 5, DevComplexity: 5, EcosystemMaturity: 5}},
		{"soundness too low", Profile{Key: "x", PrivacyLevel: 5, SoundnessFocus: 0, PerformanceCost: 5, DevComplexity: 5, EcosystemMaturity: 5}},
		{"maturity too high", Profile{Key: "x", PrivacyLevel: 5, SoundnessFocus: 5, PerformanceCost: 5, DevComplexity: 5, EcosystemMaturity: 99}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.profile)
			assert.Error(t, err)
		})
	}
}

func TestCatalog_AllReturnsCopy(t *testing.T) {
	c := Default()
	list := c.All()
	list[0].Key = "mutated"

	p, err := c.ByKey("aztec")
	require.NoError(t, err)
	assert.Equal(t, "aztec", p.Key)
	assert.Equal(t, "aztec", c.All()[0].Key)
}
