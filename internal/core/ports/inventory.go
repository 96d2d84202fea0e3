package ports

import "context"

// InventoryProvider is the contract of the external catalog/inventory
// collaborator. The engine only reads the current stock count for dashboard
// aggregation; stock management itself is out of scope.
type InventoryProvider interface {
	StockCount(ctx context.Context) (int, error)
}
