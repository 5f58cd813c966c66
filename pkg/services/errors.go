// Package services contains the tenant-scoped domain services. Every query
// issued here carries the caller's org_id predicate, which is what makes
// cross-tenant lookups surface as ErrNotFound rather than a permission error.
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found within the
	// caller's organization. Cross-tenant lookups intentionally land here.
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidCredentials is returned by login with a wrong email/password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrForbidden is returned when the caller's role or ownership does not
	// permit the operation.
	ErrForbidden = errors.New("operation not permitted")

	// ErrLastAdmin guards the invariant that every org keeps at least one admin.
	ErrLastAdmin = errors.New("organization must keep at least one admin")

	// ErrSelfRoleChange prevents a user from changing their own role.
	ErrSelfRoleChange = errors.New("you cannot change your own role")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// LimitExceededError is returned when a plan quota blocks an action.
// Handlers render it as 403 with the limit and current usage.
type LimitExceededError struct {
	Action  string
	Limit   int
	Current int
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("plan limit exceeded for %s: %d/%d", e.Action, e.Current, e.Limit)
}
