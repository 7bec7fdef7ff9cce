package service

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/sprintline/internal/domain"
	"github.com/alexanderramin/sprintline/internal/repository"
)

var (
	// ErrNotFound is returned when a referenced id does not exist at any
	// level, and for ids that cannot be parsed at all.
	ErrNotFound = repository.ErrNotFound
	// ErrInvalidDependency is returned for self, duplicate or cyclic edges.
	ErrInvalidDependency = repository.ErrInvalidDependency
)

// ParseID converts a caller-supplied id string into a store id. Anything that
// is not a positive base-10 integer yields ErrNotFound.
func ParseID(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("id %q: %w", s, ErrNotFound)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("id %q: %w", s, ErrNotFound)
		}
	}
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id %q: %w", s, ErrNotFound)
	}
	return id, nil
}

// ParseRef accepts either a bare id ("12") or a display identifier of the
// expected kind ("SP-12"). A display identifier of another kind is not found.
func ParseRef(kind domain.EntityKind, s string) (int, error) {
	if id, err := ParseID(s); err == nil {
		return id, nil
	}
	if k, id, ok := domain.ParseTreeID(s); ok && k == kind {
		return id, nil
	}
	return 0, fmt.Errorf("%s %q: %w", kind, s, ErrNotFound)
}
