// Package shipment contains the Shipment aggregate root with its Item child
// entities and the Status, PaymentStatus and TrackingNumber value objects.
// The aggregate owns the status/payment state machine and every invariant on
// field mutability; role-based permission to trigger a mutation is decided
// separately by the authorization policy.
package shipment
