package dataset

import (
	"sort"
	"strings"
)

// Class is an equivalence class: objects sharing an identical attribute
// vector. No attribute question can distinguish its members.
type Class struct {
	Signature string
	IDs       []string
}

// Signature returns a canonical string encoding of an object's attribute
// vector, suitable as an equivalence-class key.
func (t Table) Signature(id string) string {
	attrs, ok := t[id]
	if !ok {
		return ""
	}
	names := t.AttributeNames()
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+"="+attrs[name])
	}
	return strings.Join(parts, "\x1f")
}

// Classes groups the table into equivalence classes, sorted by signature.
// Member ids within each class are sorted.
func (t Table) Classes() []Class {
	bySignature := map[string][]string{}
	for _, id := range t.IDs() {
		signature := t.Signature(id)
		bySignature[signature] = append(bySignature[signature], id)
	}
	classes := make([]Class, 0, len(bySignature))
	for signature, ids := range bySignature {
		classes = append(classes, Class{Signature: signature, IDs: ids})
	}
	sort.Slice(classes, func(i, j int) bool {
		return classes[i].Signature < classes[j].Signature
	})
	return classes
}

// ClassSize returns the size of the equivalence class containing id,
// or zero when the id is unknown.
func (t Table) ClassSize(id string) int {
	if _, ok := t[id]; !ok {
		return 0
	}
	signature := t.Signature(id)
	size := 0
	for other := range t {
		if t.Signature(other) == signature {
			size++
		}
	}
	return size
}
