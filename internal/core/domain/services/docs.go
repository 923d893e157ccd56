// Package services contains domain services: logic that spans aggregates or
// that does not belong to a single one. AccessPolicy is the pure authorization
// decision table consulted by every use case before it touches a shipment.
package services
