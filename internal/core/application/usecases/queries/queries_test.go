package queries_test

import (
	"testing"

	"gasline/internal/core/application/usecases/queries"
	"gasline/internal/core/domain/model/kernel"
	"gasline/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCustomerOrdersQuery(t *testing.T) {
	t.Run("should create valid query", func(t *testing.T) {
		customerID := kernel.NewUUID()

		query, err := queries.NewGetCustomerOrdersQuery(customerID)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.CustomerID().IsEqual(customerID))
	})

	t.Run("should fail with zero-value customer id", func(t *testing.T) {
		var customerID kernel.UUID

		_, err := queries.NewGetCustomerOrdersQuery(customerID)

		require.Error(t, err)
	})

	t.Run("should reject a query that bypassed the constructor", func(t *testing.T) {
		var query queries.GetCustomerOrdersQuery

		require.Error(t, query.Validate())
	})
}

func TestNewGetDriverOrdersQuery(t *testing.T) {
	t.Run("should create valid query", func(t *testing.T) {
		driverID := kernel.NewUUID()

		query, err := queries.NewGetDriverOrdersQuery(driverID)

		require.NoError(t, err)
		assert.True(t, query.DriverID().IsEqual(driverID))
	})

	t.Run("should fail with zero-value driver id", func(t *testing.T) {
		var driverID kernel.UUID

		_, err := queries.NewGetDriverOrdersQuery(driverID)

		require.Error(t, err)
	})
}

func TestNewListDispatchOrdersQuery(t *testing.T) {
	t.Run("should create valid query", func(t *testing.T) {
		status := order.Assigned

		query, err := queries.NewListDispatchOrdersQuery("  amina ", &status, 2)

		require.NoError(t, err)
		assert.Equal(t, "amina", query.Search(), "search is trimmed")
		require.NotNil(t, query.Status())
		assert.Equal(t, order.Assigned, *query.Status())
		assert.Equal(t, 2, query.Page())
	})

	t.Run("should accept an empty filter set", func(t *testing.T) {
		query, err := queries.NewListDispatchOrdersQuery("", nil, 1)

		require.NoError(t, err)
		assert.Empty(t, query.Search())
		assert.Nil(t, query.Status())
	})

	t.Run("should fail with page below one", func(t *testing.T) {
		for _, page := range []int{0, -1} {
			_, err := queries.NewListDispatchOrdersQuery("", nil, page)
			require.Error(t, err, "page %d", page)
		}
	})

	t.Run("should fail with an invalid status filter", func(t *testing.T) {
		status := order.Unknown

		_, err := queries.NewListDispatchOrdersQuery("", &status, 1)

		require.Error(t, err)
	})
}

func TestNewGetDashboardStatsQuery(t *testing.T) {
	t.Run("should create valid query", func(t *testing.T) {
		query := queries.NewGetDashboardStatsQuery()

		require.NoError(t, query.Validate())
	})

	t.Run("should reject a query that bypassed the constructor", func(t *testing.T) {
		var query queries.GetDashboardStatsQuery

		require.Error(t, query.Validate())
	})
}
