package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTotals(t *testing.T) {

	t.Run("empty cart totals to zero", func(t *testing.T) {
		require.Equal(t, int32(0), TotalItems(nil))

		total, err := TotalPrice(nil)
		require.NoError(t, err)
		require.Equal(t, "0.00", total.StringFixed(2))
	})

	t.Run("sums quantity times unit price exactly", func(t *testing.T) {
		items := []CartItem{
			{PublicationID: "a", MonthlyPrice: "29.90", Quantity: 2},
			{PublicationID: "b", MonthlyPrice: "15.00", Quantity: 1},
		}

		require.Equal(t, int32(3), TotalItems(items))

		total, err := TotalPrice(items)
		require.NoError(t, err)
		require.Equal(t, "74.80", total.StringFixed(2))
	})

	t.Run("no float drift across many lines", func(t *testing.T) {
		items := make([]CartItem, 10)
		for i := range items {
			items[i] = CartItem{PublicationID: "p", MonthlyPrice: "0.10", Quantity: 1}
		}

		total, err := TotalPrice(items)
		require.NoError(t, err)
		require.Equal(t, "1.00", total.StringFixed(2))
	})

	t.Run("unparsable unit price fails the computation", func(t *testing.T) {
		items := []CartItem{
			{PublicationID: "a", MonthlyPrice: "29.90", Quantity: 1},
			{PublicationID: "b", MonthlyPrice: "free", Quantity: 1},
		}

		_, err := TotalPrice(items)
		require.Error(t, err)
		require.Contains(t, err.Error(), "b")
	})
}
