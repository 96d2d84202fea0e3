package queries

import (
	"errors"
	"strings"

	"gasline/internal/core/domain/model/order"
	"gasline/internal/pkg/errs"
	"gasline/internal/pkg/guard"
)

// DispatchPageSize is the fixed page length of the dispatch listing.
const DispatchPageSize = 9

var (
	ErrListDispatchOrdersQueryIsNotConstructed = errors.New(
		"ListDispatchOrdersQuery must be created via NewListDispatchOrdersQuery constructor",
	)
)

// ListDispatchOrdersQuery retrieves one page of the dispatcher's order board.
// Supports an optional case-insensitive order id substring search and an
// optional status filter. Pages are fixed at DispatchPageSize rows; a page
// past the end yields an empty result, not an error.
type ListDispatchOrdersQuery struct { //nolint:recvcheck //using for validation
	search string
	status *order.Status
	page   int

	guard guard.ConstructorGuard
}

// NewListDispatchOrdersQuery creates a query for one dispatch board page.
// The search string may be empty and the status filter may be nil; page is
// 1-based.
func NewListDispatchOrdersQuery(search string, status *order.Status, page int) (ListDispatchOrdersQuery, error) {
	if page < 1 {
		return ListDispatchOrdersQuery{}, errs.NewValueIsInvalidError("page")
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListDispatchOrdersQuery{}, err
		}
	}

	return ListDispatchOrdersQuery{
		search: strings.TrimSpace(search),
		status: status,
		page:   page,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListDispatchOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListDispatchOrdersQueryIsNotConstructed)
}

// Search returns the order id substring filter, empty when unset.
func (q ListDispatchOrdersQuery) Search() string {
	return q.search
}

// Status returns the status filter, nil when unset.
func (q ListDispatchOrdersQuery) Status() *order.Status {
	return q.status
}

// Page returns the 1-based page number.
func (q ListDispatchOrdersQuery) Page() int {
	return q.page
}

// ListDispatchOrdersQueryResponse is one page of the dispatch board together
// with the total match count for pagination controls.
type ListDispatchOrdersQueryResponse struct {
	Orders   []OrderView
	Total    int64
	Page     int
	PageSize int
}
