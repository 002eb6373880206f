package dataset

import "sort"

// Attributes maps attribute names to categorical string values.
type Attributes map[string]string

// Table maps object ids to their attribute vectors. All objects in a valid
// table share the same attribute key set.
type Table map[string]Attributes

// IDs returns the object ids in sorted order.
func (t Table) IDs() []string {
	ids := make([]string, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// AttributeNames returns the shared attribute names in sorted order.
func (t Table) AttributeNames() []string {
	for _, attrs := range t {
		names := make([]string, 0, len(attrs))
		for name := range attrs {
			names = append(names, name)
		}
		sort.Strings(names)
		return names
	}
	return nil
}

// Domains returns the observed value set per attribute, values sorted.
func (t Table) Domains() map[string][]string {
	seen := map[string]map[string]struct{}{}
	for _, attrs := range t {
		for name, value := range attrs {
			if seen[name] == nil {
				seen[name] = map[string]struct{}{}
			}
			seen[name][value] = struct{}{}
		}
	}
	domains := make(map[string][]string, len(seen))
	for name, values := range seen {
		domain := make([]string, 0, len(values))
		for value := range values {
			domain = append(domain, value)
		}
		sort.Strings(domain)
		domains[name] = domain
	}
	return domains
}
