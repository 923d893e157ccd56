package shipment

import (
	"fmt"

	"shiptrack/internal/pkg/errs"
)

// Status represents the delivery lifecycle state of a shipment.
//
// The expected progression is:
//
//	Pending ──> In Transit ──> Delivered
//	   │            │
//	   └──> Cancelled <──┘
//
// No transition table forbids skips: any valid status value is accepted from
// an authorized caller. The single hard rule, enforced by the aggregate, is
// that a shipment cannot enter Delivered unless its payment status is Paid
// at that moment.
//
// Status is a value object persisted as an integer and serialized with the
// wire strings "Pending", "In Transit", "Delivered" and "Cancelled".
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Pending is the initial status of every freshly created shipment.
	Pending

	// InTransit indicates a driver is moving the shipment.
	InTransit

	// Delivered indicates the shipment reached its recipient.
	// Requires the shipment to be paid at transition time.
	Delivered

	// Cancelled indicates the shipment was abandoned before delivery.
	Cancelled
)

// getStatusStrings returns a map of Status values to their wire representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "Unknown",
		Pending:       "Pending",
		InTransit:     "In Transit",
		Delivered:     "Delivered",
		Cancelled:     "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		InTransit: "In Transit",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// ParseStatus converts a wire string into a Status.
// Returns a validation error for anything other than the four known strings.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, InTransit, Delivered, Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "Unknown" for invalid values.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
