package dataset

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in an item table.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("item table validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// ValidateTable checks that a table is non-empty and that every object
// carries the same non-empty attribute key set with non-empty values.
func ValidateTable(table Table) error {
	collector := &issueCollector{}
	if len(table) == 0 {
		collector.add("items", "must include at least one object")
		return collector.result()
	}

	reference := table.AttributeNames()
	if len(reference) == 0 {
		collector.add("items", "objects must have at least one attribute")
		return collector.result()
	}

	for _, id := range table.IDs() {
		prefix := fmt.Sprintf("items[%s]", id)
		if strings.TrimSpace(id) == "" {
			collector.add("items", "object id must not be blank")
		}
		attrs := table[id]
		if len(attrs) != len(reference) {
			collector.add(prefix, fmt.Sprintf("expected %d attributes, got %d", len(reference), len(attrs)))
			continue
		}
		for _, name := range reference {
			value, ok := attrs[name]
			if !ok {
				collector.add(prefix, fmt.Sprintf("missing attribute %q", name))
				continue
			}
			if strings.TrimSpace(value) == "" {
				collector.add(prefix+"."+name, "value must not be blank")
			}
		}
	}
	return collector.result()
}
