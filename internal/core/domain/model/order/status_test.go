package order_test

import (
	"testing"

	"gasline/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusString(t *testing.T) {
	tests := []struct {
		status   order.Status
		expected string
	}{
		{order.Pending, "pending"},
		{order.Approved, "approved"},
		{order.Assigned, "assigned"},
		{order.PickedUp, "picked_up"},
		{order.OutForDelivery, "out_for_delivery"},
		{order.Delivered, "delivered"},
		{order.RejectedByDriver, "rejected_by_driver"},
		{order.Returned, "returned"},
		{order.Cancelled, "cancelled"},
		{order.Unknown, "unknown"},
		{order.Status(99), "unknown"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			assert.Equal(t, test.expected, test.status.String())
		})
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse canonical lowercase forms", func(t *testing.T) {
		status, err := order.StatusFromString("out_for_delivery")
		require.NoError(t, err)
		assert.Equal(t, order.OutForDelivery, status)
	})

	t.Run("should normalize legacy mixed-case values", func(t *testing.T) {
		for input, expected := range map[string]order.Status{
			"Pending":   order.Pending,
			"DELIVERED": order.Delivered,
			" assigned ": order.Assigned,
		} {
			status, err := order.StatusFromString(input)
			require.NoError(t, err, input)
			assert.Equal(t, expected, status, input)
		}
	})

	t.Run("should reject unknown values", func(t *testing.T) {
		for _, input := range []string{"", "shipped", "unknown"} {
			status, err := order.StatusFromString(input)
			require.Error(t, err, input)
			assert.Equal(t, order.Unknown, status)
		}
	})
}

func TestStatusValidate(t *testing.T) {
	t.Run("should accept every defined status", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Pending, order.Approved, order.Assigned, order.PickedUp,
			order.OutForDelivery, order.Delivered, order.RejectedByDriver,
			order.Returned, order.Cancelled,
		} {
			assert.NoError(t, status.Validate(), status.String())
		}
	})

	t.Run("should reject unknown and out-of-range values", func(t *testing.T) {
		assert.Error(t, order.Unknown.Validate())
		assert.Error(t, order.Status(42).Validate())
		assert.Error(t, order.Status(-1).Validate())
	})
}

func TestStatusIsTerminal(t *testing.T) {
	terminal := map[order.Status]bool{
		order.Delivered: true,
		order.Returned:  true,
		order.Cancelled: true,
	}

	for _, status := range []order.Status{
		order.Pending, order.Approved, order.Assigned, order.PickedUp,
		order.OutForDelivery, order.Delivered, order.RejectedByDriver,
		order.Returned, order.Cancelled,
	} {
		assert.Equal(t, terminal[status], status.IsTerminal(), status.String())
	}
}

func TestStatusCanTransitionTo(t *testing.T) {
	t.Run("should allow the happy delivery path", func(t *testing.T) {
		path := []order.Status{
			order.Pending, order.Approved, order.Assigned,
			order.PickedUp, order.OutForDelivery, order.Delivered,
		}
		for i := 0; i < len(path)-1; i++ {
			assert.True(t, path[i].CanTransitionTo(path[i+1]),
				"%s -> %s", path[i], path[i+1])
		}
	})

	t.Run("should allow assignment directly from pending", func(t *testing.T) {
		assert.True(t, order.Pending.CanTransitionTo(order.Assigned))
	})

	t.Run("should allow driver rejection only from assigned", func(t *testing.T) {
		assert.True(t, order.Assigned.CanTransitionTo(order.RejectedByDriver))
		assert.False(t, order.PickedUp.CanTransitionTo(order.RejectedByDriver))
		assert.False(t, order.Pending.CanTransitionTo(order.RejectedByDriver))
	})

	t.Run("should allow cancellation and return from every non-terminal state", func(t *testing.T) {
		for _, from := range []order.Status{
			order.Pending, order.Approved, order.Assigned,
			order.PickedUp, order.OutForDelivery,
		} {
			assert.True(t, from.CanTransitionTo(order.Cancelled), from.String())
			assert.True(t, from.CanTransitionTo(order.Returned), from.String())
		}
	})

	t.Run("should forbid any move out of a terminal state", func(t *testing.T) {
		all := []order.Status{
			order.Pending, order.Approved, order.Assigned, order.PickedUp,
			order.OutForDelivery, order.Delivered, order.RejectedByDriver,
			order.Returned, order.Cancelled,
		}
		for _, from := range []order.Status{order.Delivered, order.Returned, order.Cancelled} {
			for _, to := range all {
				assert.False(t, from.CanTransitionTo(to), "%s -> %s", from, to)
			}
		}
	})

	t.Run("should forbid skipping lifecycle steps", func(t *testing.T) {
		assert.False(t, order.Pending.CanTransitionTo(order.Delivered))
		assert.False(t, order.Approved.CanTransitionTo(order.PickedUp))
		assert.False(t, order.Assigned.CanTransitionTo(order.OutForDelivery))
		assert.False(t, order.PickedUp.CanTransitionTo(order.Delivered))
	})

	t.Run("should forbid moving backwards", func(t *testing.T) {
		assert.False(t, order.Approved.CanTransitionTo(order.Pending))
		assert.False(t, order.OutForDelivery.CanTransitionTo(order.PickedUp))
	})
}

func TestStatusValidateCanHaveDriver(t *testing.T) {
	t.Run("should require a driver while in flight", func(t *testing.T) {
		for _, status := range []order.Status{order.Assigned, order.PickedUp, order.OutForDelivery} {
			assert.Error(t, status.ValidateCanHaveDriver(false), status.String())
			assert.NoError(t, status.ValidateCanHaveDriver(true), status.String())
		}
	})

	t.Run("should forbid a driver before assignment", func(t *testing.T) {
		for _, status := range []order.Status{order.Pending, order.Approved} {
			assert.Error(t, status.ValidateCanHaveDriver(true), status.String())
			assert.NoError(t, status.ValidateCanHaveDriver(false), status.String())
		}
	})

	t.Run("should permit retaining the driver on terminal states", func(t *testing.T) {
		for _, status := range []order.Status{order.Delivered, order.Returned, order.Cancelled} {
			assert.NoError(t, status.ValidateCanHaveDriver(true), status.String())
			assert.NoError(t, status.ValidateCanHaveDriver(false), status.String())
		}
	})
}
