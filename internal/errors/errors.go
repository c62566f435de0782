// Package errors provides centralized error definitions and error handling utilities
// for orgchart. It defines the sentinel errors of the org model, semantic error
// types with context, and classification helpers.
//
// # Error Types
//
// Domain-specific errors:
//   - CapabilityError: an employee lacks a role capability required by an
//     operation (for example, a manager that cannot approve bonuses)
//
// Semantic errors:
//   - NotFoundError: an employee or roster entry could not be found
//   - ValidationError: invalid input such as a negative bonus amount
//
// Most org operations report failure through a boolean result. These types
// exist for the cases a boolean cannot explain.
//
// # Usage
//
//	err := errors.NewCapabilityError("request bonus", errors.ErrCannotApproveBonus).
//		WithEmployee(7).WithRole("software_engineer")
//
//	if errors.Is(err, errors.ErrCannotApproveBonus) { ... }
//
//	var capErr *errors.CapabilityError
//	if errors.As(err, &capErr) { ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors that might indicate a problem but aren't critical.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Org-related sentinel errors
var (
	// ErrEmployeeNotFound indicates that no employee has the requested ID or name.
	ErrEmployeeNotFound = New("employee not found")
	// ErrWrongRole indicates that an employee exists but holds a different role.
	ErrWrongRole = New("employee has a different role")
	// ErrNoManager indicates that an employee has no manager to route a request to.
	ErrNoManager = New("employee has no manager")
	// ErrCannotApproveBonus indicates that an employee's manager cannot approve bonuses.
	ErrCannotApproveBonus = New("employee's manager cannot approve bonuses")
	// ErrInvalidAmount indicates a bonus amount that is negative.
	ErrInvalidAmount = New("invalid bonus amount")
)

// Configuration and roster sentinel errors
var (
	// ErrInvalidPolicy indicates an org policy with out-of-range values.
	ErrInvalidPolicy = New("invalid org policy")
	// ErrInvalidRoster indicates a roster file that cannot be assembled.
	ErrInvalidRoster = New("invalid roster")
)

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// OrgError is the base interface for all orgchart errors.
type OrgError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Is reports whether this error matches the target error.
	Is(target error) bool

	// Severity returns the severity level of this error.
	Severity() Severity

	// IsUserFacing returns true if the error message is safe to display
	// to end users.
	IsUserFacing() bool
}

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	severity   Severity
	userFacing bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// IsUserFacing returns whether the error is safe to show users.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// -----------------------------------------------------------------------------
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// CapabilityError reports an employee whose role does not support the
// operation that was routed to it.
//
// Example:
//
//	err := errors.NewCapabilityError("request bonus", errors.ErrCannotApproveBonus)
//	err = err.WithEmployee(3).WithRole("software_engineer")
//	fmt.Println(err) // "capability error [employee=3, role=software_engineer]: request bonus: employee's manager cannot approve bonuses"
type CapabilityError struct {
	baseError
	EmployeeID uint64
	Role       string
}

// NewCapabilityError creates a new CapabilityError.
func NewCapabilityError(message string, cause error) *CapabilityError {
	return &CapabilityError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityWarning,
			userFacing: true,
		},
	}
}

// WithEmployee adds the offending employee's ID to the error context.
func (e *CapabilityError) WithEmployee(id uint64) *CapabilityError {
	e.EmployeeID = id
	return e
}

// WithRole adds the offending employee's role to the error context.
func (e *CapabilityError) WithRole(role string) *CapabilityError {
	e.Role = role
	return e
}

// Error returns the formatted error message.
func (e *CapabilityError) Error() string {
	var parts []string
	if e.EmployeeID != 0 {
		parts = append(parts, fmt.Sprintf("employee=%d", e.EmployeeID))
	}
	if e.Role != "" {
		parts = append(parts, fmt.Sprintf("role=%s", e.Role))
	}

	prefix := "capability error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("capability error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *CapabilityError) Is(target error) bool {
	if _, ok := target.(*CapabilityError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Semantic Errors
// -----------------------------------------------------------------------------

// NotFoundError represents a resource that could not be found.
//
// Example:
//
//	err := errors.NewNotFoundError("employee", "42")
//	fmt.Println(err) // "employee '42' not found"
type NotFoundError struct {
	baseError
	ResourceType string
	ResourceID   string
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resourceType, resourceID string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			message:    fmt.Sprintf("%s '%s' not found", resourceType, resourceID),
			severity:   SeverityWarning,
			userFacing: true,
		},
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
}

// WithCause adds a cause to the error.
func (e *NotFoundError) WithCause(cause error) *NotFoundError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *NotFoundError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s '%s' not found: %v", e.ResourceType, e.ResourceID, e.cause)
	}
	return fmt.Sprintf("%s '%s' not found", e.ResourceType, e.ResourceID)
}

// Is checks if this error matches the target.
func (e *NotFoundError) Is(target error) bool {
	if _, ok := target.(*NotFoundError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// ValidationError represents invalid input or state.
//
// Example:
//
//	err := errors.NewValidationError("bonus amount must not be negative")
//	err = err.WithField("amount").WithValue("-5")
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			severity:   SeverityWarning,
			userFacing: true,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause adds a cause to the error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	prefix := "validation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("validation error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Error Classification Helpers
// -----------------------------------------------------------------------------

// IsUserFacing returns true if the error message is safe to display to end users.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var orgErr OrgError
	if As(err, &orgErr) {
		return orgErr.IsUserFacing()
	}
	return false
}

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that don't implement OrgError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}

	var orgErr OrgError
	if As(err, &orgErr) {
		return orgErr.Severity()
	}
	return SeverityError
}

// Wrap wraps an error with additional context message.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
