package stack

import (
	"encoding/json"
	"sort"

	"github.com/pkg/errors"
)

// SearchCriteria narrows and orders the catalog for one invocation.
type SearchCriteria struct {
	Key          *string `json:"key,omitempty"`
	SortBy       *string `json:"sort_by,omitempty"`
	Descending   bool    `json:"descending,omitempty"`
	IncludeScore bool    `json:"include_score,omitempty"`
}

func (c SearchCriteria) String() string {
	b, err := json.Marshal(c)
	if err != nil {
		return ""
	}
	return string(b)
}

func (c SearchCriteria) sortField() string {
	if c.SortBy == nil {
		return ""
	}
	return *c.SortBy
}

// ScoreIncluded reports whether the composite score belongs in the
// output: either requested explicitly or implied by sorting on it.
func (c SearchCriteria) ScoreIncluded() bool {
	return c.IncludeScore || c.sortField() == ColCompositeScore
}

// Search applies criteria to the catalog. Results come back in catalog
// order unless a sort field is given. Ties always resolve by key
// ascending regardless of direction, so the order is a deterministic
// total order.
func Search(cat *Catalog, q *SearchCriteria) ([]ScoredProfile, error) {
	if cat == nil {
		return nil, errors.New("catalog required")
	}
	if q == nil {
		q = &SearchCriteria{}
	}

	sortBy := q.sortField()
	if sortBy != "" && !IsSortField(sortBy) {
		return nil, errors.Wrapf(ErrInvalidArgument, "unknown sort field %q", sortBy)
	}

	var profiles []Profile
	if q.Key != nil && *q.Key != "" {
		p, err := cat.ByKey(*q.Key)
		if err != nil {
			return nil, err
		}
		profiles = []Profile{p}
	} else {
		profiles = cat.All()
	}

	withScore := q.ScoreIncluded()
	list := make([]ScoredProfile, 0, len(profiles))
	for _, p := range profiles {
		sp := ScoredProfile{Profile: p}
		if withScore {
			s := Score(p)
			sp.CompositeScore = &s
		}
		list = append(list, sp)
	}

	if sortBy != "" {
		sortProfiles(list, sortBy, q.Descending)
	}

	return list, nil
}

func sortProfiles(list []ScoredProfile, field string, descending bool) {
	sort.SliceStable(list, func(i, j int) bool {
		less, equal := fieldLess(list[i], list[j], field)
		if equal {
			// tie-break stays ascending even for descending sorts
			return list[i].Key < list[j].Key
		}
		if descending {
			return !less
		}
		return less
	})
}

func fieldLess(a, b ScoredProfile, field string) (less, equal bool) {
	if get, ok := stringFields[field]; ok {
		av, bv := get(a.Profile), get(b.Profile)
		return av < bv, av == bv
	}
	if field == ColCompositeScore {
		av, bv := Score(a.Profile), Score(b.Profile)
		return av < bv, av == bv
	}
	get := numericFields[field]
	av, bv := get(a.Profile), get(b.Profile)
	return av < bv, av == bv
}
