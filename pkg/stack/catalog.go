package stack

import (
	"github.com/pkg/errors"
)

// Catalog is an ordered, read-only set of stack profiles. Build one
// with NewCatalog and treat it as immutable from then on.
type Catalog struct {
	profiles []Profile
	index    map[string]int
}

// NewCatalog validates profiles and builds a catalog preserving their
// definition order. Keys must be unique and every dimension must lie
// within [DimensionMin, DimensionMax].
func NewCatalog(profiles ...Profile) (*Catalog, error) {
	c := &Catalog{
		profiles: make([]Profile, len(profiles)),
		index:    make(map[string]int, len(profiles)),
	}
	copy(c.profiles, profiles)

	for i, p := range c.profiles {
		if p.Key == "" {
			return nil, errors.Errorf("profile at position %d has no key", i)
		}
		if _, ok := c.index[p.Key]; ok {
			return nil, errors.Errorf("duplicate stack key: %s", p.Key)
		}
		for field, get := range numericFields {
			if v := get(p); v < DimensionMin || v > DimensionMax {
				return nil, errors.Errorf("stack %s: %s is %d, must be %d-%d",
					p.Key, field, v, DimensionMin, DimensionMax)
			}
		}
		c.index[p.Key] = i
	}

	return c, nil
}

// Default returns the built-in catalog of illustrative stacks.
func Default() *Catalog {
	c, err := NewCatalog(
		Profile{
			Key:               "aztec",
			Name:              "Aztec-style zk Rollup",
			Family:            "zk-SNARK privacy L2",
			PrivacyLevel:      9,
			SoundnessFocus:    8,
			PerformanceCost:   7,
			DevComplexity:     8,
			EcosystemMaturity: 7,
		},
		Profile{
			Key:               "zama",
			Name:              "Zama-style FHE Compute",
			Family:            "FHE + Web3",
			PrivacyLevel:      8,
			SoundnessFocus:    9,
			PerformanceCost:   9,
			DevComplexity:     9,
			EcosystemMaturity: 5,
		},
		Profile{
			Key:               "soundness",
			Name:              "Soundness-first Lab",
			Family:            "Formal verification",
			PrivacyLevel:      6,
			SoundnessFocus:    10,
			PerformanceCost:   6,
			DevComplexity:     7,
			EcosystemMaturity: 8,
		},
	)
	if err != nil {
		panic(err)
	}
	return c
}

// All returns every profile in definition order. The returned slice is
// a copy, callers cannot mutate catalog state through it.
func (c *Catalog) All() []Profile {
	out := make([]Profile, len(c.profiles))
	copy(out, c.profiles)
	return out
}

// ByKey looks up a single profile. Returns an error wrapping
// ErrNotFound when the key matches no record.
func (c *Catalog) ByKey(key string) (Profile, error) {
	i, ok := c.index[key]
	if !ok {
		return Profile{}, errors.Wrapf(ErrNotFound, "unknown stack key %q", key)
	}
	return c.profiles[i], nil
}

// Len returns the number of profiles in the catalog.
func (c *Catalog) Len() int {
	return len(c.profiles)
}

// Keys returns every catalog key in definition order.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.profiles))
	for _, p := range c.profiles {
		keys = append(keys, p.Key)
	}
	return keys
}
