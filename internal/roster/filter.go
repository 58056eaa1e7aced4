package roster

import "strings"

// Filter returns the entities whose name contains query, ignoring case.
// Order is preserved and an empty query returns items unchanged.
func Filter(items []Entity, query string) []Entity {
	if query == "" {
		return items
	}
	needle := strings.ToLower(query)
	out := make([]Entity, 0, len(items))
	for _, e := range items {
		if strings.Contains(strings.ToLower(e.Name), needle) {
			out = append(out, e)
		}
	}
	return out
}
