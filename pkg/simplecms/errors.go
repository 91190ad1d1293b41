package simplecms

import (
	"errors"
	"fmt"
	"strings"
)

// Error types
var (
	// ErrContentNotFound indicates a content was not found
	ErrContentNotFound = errors.New("content not found")

	// ErrPermissionDenied indicates a role is not allowed to perform an operation
	ErrPermissionDenied = errors.New("permission denied")

	// ErrValidationFailed indicates content failed validation
	ErrValidationFailed = errors.New("content validation failed")

	// ErrNoValidators indicates a composite validator was built without constituents
	ErrNoValidators = errors.New("composite validator requires at least one validator")

	// ErrIncompleteMatrix indicates an access matrix is missing a (role, operation) entry
	ErrIncompleteMatrix = errors.New("access matrix is missing entries")

	// ErrUnknownRole indicates a role outside the closed role set
	ErrUnknownRole = errors.New("unknown role")

	// ErrUnknownOperation indicates an operation outside the closed operation set
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrPolicyNotFound indicates no access matrix is registered for a content kind
	ErrPolicyNotFound = errors.New("no access matrix registered for content kind")

	// ErrInvalidContentStatus indicates an invalid content status
	ErrInvalidContentStatus = errors.New("invalid content status")

	// ErrInvalidTransition indicates a disallowed status transition
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrContentArchived indicates operation cannot proceed on archived content
	ErrContentArchived = errors.New("content is archived")
)

// ContentError represents an error related to content operations
type ContentError struct {
	ContentID string
	Op        string
	Err       error
}

func (e *ContentError) Error() string {
	return fmt.Sprintf("content operation %s failed for content %s: %v", e.Op, e.ContentID, e.Err)
}

func (e *ContentError) Unwrap() error {
	return e.Err
}

// ValidationError carries a failed ValidationResult across an error boundary.
// Validation failure itself is data, not an error; this wrapper exists for
// callers of the orchestrating service, which refuses writes on invalid input.
type ValidationError struct {
	Result ValidationResult
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("content validation failed: %s", strings.Join(e.Result.Errors, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
