package queries

import (
	"errors"

	"shiptrack/internal/core/domain/model/account"
	"shiptrack/internal/pkg/guard"
)

var (
	ErrListShipmentsQueryIsNotConstructed = errors.New(
		"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
	)
)

// ListShipmentsQuery retrieves the shipments visible to the caller, newest
// first. The visible set depends on the caller's role: customers see their
// own shipments, drivers the ones assigned to them, admins everything.
type ListShipmentsQuery struct { //nolint:recvcheck //using for validation
	principal account.Principal

	guard guard.ConstructorGuard
}

// NewListShipmentsQuery creates a query listing the caller's visible shipments.
func NewListShipmentsQuery(principal account.Principal) (ListShipmentsQuery, error) {
	if err := principal.Validate(); err != nil {
		return ListShipmentsQuery{}, err
	}

	return ListShipmentsQuery{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

// Principal returns the calling principal.
func (q ListShipmentsQuery) Principal() account.Principal {
	return q.principal
}
