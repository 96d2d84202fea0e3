package queries

import (
	"errors"

	"gasline/internal/core/domain/model/kernel"
	"gasline/internal/pkg/guard"
)

var (
	ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
		"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
	)
)

// GetCustomerOrdersQuery retrieves every order placed by one customer,
// newest first. Backs the customer's order history screen.
type GetCustomerOrdersQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for a customer's order history.
func NewGetCustomerOrdersQuery(customerID kernel.UUID) (GetCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}

	return GetCustomerOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer whose orders are requested.
func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}
