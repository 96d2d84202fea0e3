// Package inventory adapts the external catalog/inventory collaborator.
// The engine only ever reads a stock count for the dashboard; the real
// catalog lives outside this system, so the adapter serves a configured
// figure rather than owning stock data.
package inventory

import "context"

// StaticProvider serves a fixed stock count taken from configuration.
type StaticProvider struct {
	stock int
}

// NewStaticProvider creates a provider serving the given stock count.
func NewStaticProvider(stock int) *StaticProvider {
	return &StaticProvider{stock: stock}
}

// StockCount returns the configured stock count.
func (p *StaticProvider) StockCount(_ context.Context) (int, error) {
	return p.stock, nil
}
