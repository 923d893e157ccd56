package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used for classification via errors.Is.
// Each custom error type in this package unwraps to exactly one of these,
// so callers can branch on the error kind without inspecting concrete types.
var (
	// ErrObjectNotFound indicates a requested object does not exist.
	ErrObjectNotFound = errors.New("object not found")

	// ErrValueIsInvalid indicates a value is present but malformed.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrValueIsOutOfRange indicates a value lies outside its allowed bounds.
	ErrValueIsOutOfRange = errors.New("value is out of range")

	// ErrValueIsRequired indicates a required value is missing or empty.
	ErrValueIsRequired = errors.New("value is required")

	// ErrAccessForbidden indicates the caller is authenticated but not
	// permitted to perform the operation on the resource.
	ErrAccessForbidden = errors.New("access forbidden")

	// ErrIntegrityViolation indicates a referential or uniqueness constraint
	// would be broken by the operation.
	ErrIntegrityViolation = errors.New("integrity violation")

	// ErrDomainRule indicates a business rule rejected an otherwise
	// well-formed and authorized operation.
	ErrDomainRule = errors.New("domain rule violated")
)

// sanitize removes line breaks from values interpolated into error messages
// so a single error always renders as a single log line.
func sanitize(value any) string {
	s := fmt.Sprintf("%v", value)
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// ObjectNotFoundError is returned when an object cannot be found by its identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

// Error formats the error message. The short form is used when no cause is
// attached; the long form names the parameter and the cause.
func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

// Unwrap returns the sentinel error for classification with errors.Is.
func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError is returned when a parameter value is malformed.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

// Unwrap returns the sentinel error for classification with errors.Is.
func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError is returned when a numeric value lies outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without an underlying cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the sentinel error for classification with errors.Is.
func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError is returned when a required parameter is missing or empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

// Unwrap returns the sentinel error for classification with errors.Is.
func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// AccessForbiddenError is returned when an authenticated caller attempts an
// operation the authorization policy does not permit. The operation and
// resource are named so a denial is never silent.
type AccessForbiddenError struct {
	Role       string
	Operation  string
	ResourceID any
	Cause      error
}

// NewAccessForbiddenError creates an AccessForbiddenError without an underlying cause.
func NewAccessForbiddenError(role, operation string, resourceID any) *AccessForbiddenError {
	return &AccessForbiddenError{Role: role, Operation: operation, ResourceID: resourceID}
}

// NewAccessForbiddenErrorWithCause creates an AccessForbiddenError wrapping an underlying cause.
func NewAccessForbiddenErrorWithCause(role, operation string, resourceID any, cause error) *AccessForbiddenError {
	return &AccessForbiddenError{Role: role, Operation: operation, ResourceID: resourceID, Cause: cause}
}

func (e *AccessForbiddenError) Error() string {
	msg := fmt.Sprintf("%s: role is: %s, operation is: %s, resource is: %s",
		ErrAccessForbidden, sanitize(e.Role), sanitize(e.Operation), sanitize(e.ResourceID))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the sentinel error for classification with errors.Is.
func (e *AccessForbiddenError) Unwrap() error {
	return ErrAccessForbidden
}

// IntegrityViolationError is returned when an operation would break a
// referential or uniqueness constraint, such as a shipment referencing a
// nonexistent user or a duplicate tracking number.
type IntegrityViolationError struct {
	ParamName string
	Value     any
	Cause     error
}

// NewIntegrityViolationError creates an IntegrityViolationError without an underlying cause.
func NewIntegrityViolationError(paramName string, value any) *IntegrityViolationError {
	return &IntegrityViolationError{ParamName: paramName, Value: value}
}

// NewIntegrityViolationErrorWithCause creates an IntegrityViolationError wrapping an underlying cause.
func NewIntegrityViolationErrorWithCause(paramName string, value any, cause error) *IntegrityViolationError {
	return &IntegrityViolationError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *IntegrityViolationError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s", ErrIntegrityViolation, e.ParamName, sanitize(e.Value))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the sentinel error for classification with errors.Is.
func (e *IntegrityViolationError) Unwrap() error {
	return ErrIntegrityViolation
}

// DomainRuleError is returned when a business rule rejects an operation that
// passed validation and authorization, such as delivering an unpaid shipment.
type DomainRuleError struct {
	Rule  string
	Cause error
}

// NewDomainRuleError creates a DomainRuleError without an underlying cause.
func NewDomainRuleError(rule string) *DomainRuleError {
	return &DomainRuleError{Rule: rule}
}

// NewDomainRuleErrorWithCause creates a DomainRuleError wrapping an underlying cause.
func NewDomainRuleErrorWithCause(rule string, cause error) *DomainRuleError {
	return &DomainRuleError{Rule: rule, Cause: cause}
}

func (e *DomainRuleError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrDomainRule, e.Rule, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrDomainRule, e.Rule)
}

// Unwrap returns the sentinel error for classification with errors.Is.
func (e *DomainRuleError) Unwrap() error {
	return ErrDomainRule
}
