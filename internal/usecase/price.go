package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TotalItems sums the quantities of all cart lines.
func TotalItems(items []CartItem) int32 {
	var total int32
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

// TotalPrice sums unit price times quantity over all cart lines with
// exact decimal arithmetic. An unparsable unit price fails the whole
// computation instead of silently corrupting the total.
func TotalPrice(items []CartItem) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range items {
		unit, err := decimal.NewFromString(item.MonthlyPrice)
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid unit price %q for publication %s: %w", item.MonthlyPrice, item.PublicationID, err)
		}
		total = total.Add(unit.Mul(decimal.NewFromInt32(item.Quantity)))
	}
	return total, nil
}
