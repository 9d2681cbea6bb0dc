package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCartTotals(t *testing.T) {
	cart := &Cart{ID: "r1"}
	require.True(t, cart.Empty())
	require.Equal(t, 0.0, cart.Total())

	cart.Add(CartItem{ProductID: 1, Name: "Kibble", Quantity: 2, UnitPrice: 250.00})
	cart.Add(CartItem{ProductID: 2, Name: "Leash", Quantity: 3, UnitPrice: 99.50})

	require.False(t, cart.Empty())
	require.Equal(t, 500.00, cart.Items[0].LineTotal())
	require.Equal(t, 298.50, cart.Items[1].LineTotal())
	require.Equal(t, 798.50, cart.Total())
}

func TestLowStockBoundary(t *testing.T) {
	p := Product{Stock: 4, ReorderLevel: 3}
	require.False(t, p.LowStock())

	p.Stock = 3
	require.True(t, p.LowStock())

	p.Stock = 0
	require.True(t, p.LowStock())
}
