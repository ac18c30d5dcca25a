package models

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/bod/internal/common"
)

// Record is implemented by every resource type shown in a page table.
type Record[T any] interface {
	// RecordID returns the record's id within its collection.
	RecordID() int
	// WithID returns a copy carrying id.
	WithID(id int) T
	// Validate checks required fields.
	Validate() error
	// SearchText returns the values matched by the table's global filter.
	SearchText() []string
}

// Owned is implemented by records that belong to a user.
type Owned interface {
	OwnerID() int
}

// ValidationError carries per-field messages. It unwraps to
// common.ErrorValidation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return "validation error: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return common.ErrorValidation
}

// requireFields builds a ValidationError for every blank value, keyed by
// field name. It returns nil when all are present.
func requireFields(fields ...[2]string) error {
	var missing map[string]string
	for _, f := range fields {
		if strings.TrimSpace(f[1]) != "" {
			continue
		}
		if missing == nil {
			missing = make(map[string]string)
		}
		missing[f[0]] = fieldLabel(f[0]) + " is required"
	}
	if missing == nil {
		return nil
	}
	return &ValidationError{Fields: missing}
}

func fieldLabel(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
