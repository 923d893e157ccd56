package shipment

import (
	"crypto/rand"
	"fmt"
	"strings"

	"shiptrack/internal/pkg/errs"
)

const (
	// trackingNumberLength is the fixed length of every tracking number.
	trackingNumberLength = 8

	// trackingNumberAlphabet is the character set tracking numbers are drawn
	// from. Uppercase alphanumeric only, so a number survives case-mangling
	// by carriers, labels and customers.
	trackingNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// TrackingNumber is the public, immutable identifier of a shipment, distinct
// from its internal database id. It is an 8 character uppercase alphanumeric
// code, generated at creation and never reassigned once set.
//
// The zero value represents "no tracking number yet" and only occurs on
// legacy rows awaiting backfill; IsZero reports that state.
type TrackingNumber struct {
	value string
}

// GenerateTrackingNumber produces a new random tracking number.
// Uniqueness is probabilistic here; the storage layer's unique index is the
// authority, and creation retries generation on collision.
func GenerateTrackingNumber() TrackingNumber {
	buf := make([]byte, trackingNumberLength)
	// rand.Read never returns an error on supported platforms.
	_, _ = rand.Read(buf)
	for i, b := range buf {
		buf[i] = trackingNumberAlphabet[int(b)%len(trackingNumberAlphabet)]
	}
	return TrackingNumber{value: string(buf)}
}

// ParseTrackingNumber normalizes and validates an externally supplied
// tracking number. Lookups are case-insensitive, so lowercase input is
// accepted and uppercased.
func ParseTrackingNumber(s string) (TrackingNumber, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	if normalized == "" {
		return TrackingNumber{}, errs.NewValueIsRequiredError("tracking_number")
	}
	if len(normalized) != trackingNumberLength {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"tracking_number",
			fmt.Errorf("%q is not %d characters long", normalized, trackingNumberLength))
	}
	for _, r := range normalized {
		if !strings.ContainsRune(trackingNumberAlphabet, r) {
			return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause(
				"tracking_number",
				fmt.Errorf("%q contains characters outside [A-Z0-9]", normalized))
		}
	}
	return TrackingNumber{value: normalized}, nil
}

// RestoreTrackingNumber reconstructs a tracking number from persistence
// without re-validation. An empty string restores the zero value (legacy row
// awaiting backfill).
func RestoreTrackingNumber(s string) TrackingNumber {
	return TrackingNumber{value: s}
}

// String returns the tracking number's uppercase string form, empty for the
// zero value.
func (t TrackingNumber) String() string {
	return t.value
}

// IsZero reports whether no tracking number has been assigned.
func (t TrackingNumber) IsZero() bool {
	return t.value == ""
}
