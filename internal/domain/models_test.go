package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProductSaleAmounts(t *testing.T) {
	p := Product{BuyingPrice: 250, SellingPrice: 450}

	total, profit := p.SaleAmounts(10)
	require.Equal(t, int64(4500), total)
	require.Equal(t, int64(2000), profit)

	total, profit = p.SaleAmounts(1)
	require.Equal(t, int64(450), total)
	require.Equal(t, int64(200), profit)
}

func TestProductSaleAmountsZeroMargin(t *testing.T) {
	p := Product{BuyingPrice: 500, SellingPrice: 500}
	total, profit := p.SaleAmounts(3)
	require.Equal(t, int64(1500), total)
	require.Equal(t, int64(0), profit)
}

func TestProductLowStock(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		reorder  int
		want     bool
	}{
		{"above reorder level", 20, 10, false},
		{"at reorder level", 10, 10, true},
		{"below reorder level", 3, 10, true},
		{"zero stock", 0, 10, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Quantity: tt.quantity, ReorderLevel: tt.reorder}
			require.Equal(t, tt.want, p.LowStock())
		})
	}
}
