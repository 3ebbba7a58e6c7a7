package resource

import "strings"

// Filter narrows the resource library. Both fields are AND-combined and
// an empty field matches everything.
type Filter struct {
	ResourceType string
	Search       string
}

func (f Filter) Apply(resources []*Resource) []*Resource {
	out := make([]*Resource, 0, len(resources))
	for _, r := range resources {
		if f.ResourceType != "" && r.ResourceType != f.ResourceType {
			continue
		}
		if f.Search != "" {
			needle := strings.ToLower(f.Search)
			if !strings.Contains(strings.ToLower(r.Title), needle) &&
				!strings.Contains(strings.ToLower(r.Description), needle) {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}
