package order

import (
	"gasline/internal/pkg/errs"
)

// LineItem is an immutable snapshot of one purchased catalog item.
// Prices and weights are copied from the catalog at order-creation time so
// later catalog drift never alters a historical order. Prices are integer
// minor currency units; weights are grams.
type LineItem struct {
	productID  string
	name       string
	unitWeight int
	unitPrice  int64

	isConstructed bool
}

// NewLineItem creates a validated LineItem.
func NewLineItem(productID, name string, unitWeight int, unitPrice int64) (LineItem, error) {
	if productID == "" {
		return LineItem{}, errs.NewValueIsRequiredError("productID")
	}
	if name == "" {
		return LineItem{}, errs.NewValueIsRequiredError("name")
	}
	if unitWeight <= 0 {
		return LineItem{}, errs.NewValueIsOutOfRangeError("unitWeight", unitWeight, 1, int(^uint(0)>>1))
	}
	if unitPrice < 0 {
		return LineItem{}, errs.NewValueIsOutOfRangeError("unitPrice", unitPrice, 0, int64(^uint64(0)>>1))
	}

	return LineItem{
		productID:     productID,
		name:          name,
		unitWeight:    unitWeight,
		unitPrice:     unitPrice,
		isConstructed: true,
	}, nil
}

// ProductID returns the catalog identifier of the item.
func (li LineItem) ProductID() string {
	return li.productID
}

// Name returns the catalog name snapshot.
func (li LineItem) Name() string {
	return li.name
}

// UnitWeight returns the item weight in grams.
func (li LineItem) UnitWeight() int {
	return li.unitWeight
}

// UnitPrice returns the price snapshot in minor currency units.
func (li LineItem) UnitPrice() int64 {
	return li.unitPrice
}

// Validate returns an error for zero-value items that bypassed NewLineItem.
func (li LineItem) Validate() error {
	if !li.isConstructed {
		return errs.NewValueIsRequiredError("LineItem must be created via NewLineItem")
	}
	return nil
}
