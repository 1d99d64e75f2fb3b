package domain

import "fmt"

// Error taxonomy shared by services and the HTTP layer. Repositories and
// infrastructure return these (optionally wrapped) so handlers can translate
// them into status codes without string matching.

// ValidationError marks malformed or missing input. Field may be empty for
// whole-request problems.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// AuthorizationError marks a role or ownership mismatch, including the
// blocked-partner case.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

func NewAuthorizationError(message string) *AuthorizationError {
	return &AuthorizationError{Message: message}
}

// NotFoundError marks an unknown entity id.
type NotFoundError struct {
	Resource string
	ID       int32
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

func NewNotFoundError(resource string, id int32) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// StorageError marks a failure in the object storage gateway.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ConflictError marks an operation rejected because the entity is already in
// a terminal state. Only raised when strict transitions are enabled.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}
