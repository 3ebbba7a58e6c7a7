package patient

import (
	"sort"
	"strings"
)

// Sort directions accepted by the list endpoint.
const (
	SortNameAsc  = "name_asc"
	SortNameDesc = "name_desc"
)

// Filter narrows a patient list. Search is a case-insensitive substring
// match over name, MRN and condition; Status is an exact match. Both are
// AND-combined and an empty field matches everything.
type Filter struct {
	Search string
	Status string
}

func (f Filter) matches(p *Patient) bool {
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.Search == "" {
		return true
	}
	needle := strings.ToLower(f.Search)
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.MRN), needle) ||
		strings.Contains(strings.ToLower(p.Condition), needle)
}

// Apply returns the patients matching f, optionally sorted by name.
// Unknown sort values leave the input order untouched.
func (f Filter) Apply(patients []*Patient, sortBy string) []*Patient {
	out := make([]*Patient, 0, len(patients))
	for _, p := range patients {
		if f.matches(p) {
			out = append(out, p)
		}
	}

	switch sortBy {
	case SortNameAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	case SortNameDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) > strings.ToLower(out[j].Name)
		})
	}
	return out
}
