package shipment

import (
	"fmt"

	"shiptrack/internal/pkg/errs"
)

// PaymentStatus represents the financial state of a shipment.
//
// The flag is set by an external payment process through an admin update; the
// core never computes it. Its only influence on the lifecycle is the gate on
// the Delivered transition.
//
// PaymentStatus is a value object persisted as an integer and serialized with
// the wire strings "Unpaid", "Paid" and "Pending Refund".
type PaymentStatus int

const (
	// UnknownPaymentStatus represents an invalid or undefined payment status.
	// This value (0) helps catch uninitialized PaymentStatus values.
	UnknownPaymentStatus PaymentStatus = iota

	// Unpaid is the initial payment status of every freshly created shipment.
	Unpaid

	// Paid indicates the shipment has been paid for.
	// Delivery is only possible in this state.
	Paid

	// PendingRefund indicates a refund has been requested but not settled.
	PendingRefund
)

// getPaymentStatusStrings returns a map of PaymentStatus values to their wire
// representations.
func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		UnknownPaymentStatus: "Unknown",
		Unpaid:               "Unpaid",
		Paid:                 "Paid",
		PendingRefund:        "Pending Refund",
	}
}

// getValidPaymentStatusStrings returns a map of only valid PaymentStatus values.
func getValidPaymentStatusStrings() map[PaymentStatus]string {
	//nolint:exhaustive // UnknownPaymentStatus is intentionally excluded as it's invalid
	return map[PaymentStatus]string{
		Unpaid:        "Unpaid",
		Paid:          "Paid",
		PendingRefund: "Pending Refund",
	}
}

// ParsePaymentStatus converts a wire string into a PaymentStatus.
// Returns a validation error for anything other than the three known strings.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	for status, str := range getValidPaymentStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return UnknownPaymentStatus, errs.NewValueIsInvalidErrorWithCause(
		"payment_status", fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks if the PaymentStatus value is valid.
// Valid payment statuses are: Unpaid, Paid, PendingRefund.
func (s PaymentStatus) Validate() error {
	if _, ok := getValidPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment_status", fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the wire name of the payment status, or "Unknown" for
// invalid values. Implements fmt.Stringer and is safe to call on any value.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
