package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_ApplyMovement(t *testing.T) {
	t.Run("purchase raises total and available", func(t *testing.T) {
		p := &Product{TotalStock: 10, AvailableStock: 7, QuantitySold: 3}

		err := p.ApplyMovement(InventoryPurchase, 5)

		require.NoError(t, err)
		assert.Equal(t, 15, p.TotalStock)
		assert.Equal(t, 12, p.AvailableStock)
		assert.Equal(t, 3, p.QuantitySold)
	})

	t.Run("sale lowers available and raises sold", func(t *testing.T) {
		p := &Product{TotalStock: 10, AvailableStock: 7, QuantitySold: 3}

		err := p.ApplyMovement(InventorySale, 7)

		require.NoError(t, err)
		assert.Equal(t, 10, p.TotalStock)
		assert.Equal(t, 0, p.AvailableStock)
		assert.Equal(t, 10, p.QuantitySold)
	})

	t.Run("sale beyond available stock is rejected untouched", func(t *testing.T) {
		p := &Product{TotalStock: 10, AvailableStock: 4, QuantitySold: 6}

		err := p.ApplyMovement(InventorySale, 5)

		assert.ErrorIs(t, err, ErrInsufficientStock)
		assert.Equal(t, 10, p.TotalStock)
		assert.Equal(t, 4, p.AvailableStock)
		assert.Equal(t, 6, p.QuantitySold)
	})

	t.Run("unknown movement type is rejected untouched", func(t *testing.T) {
		p := &Product{TotalStock: 10, AvailableStock: 10}

		err := p.ApplyMovement("transfer", 1)

		assert.ErrorIs(t, err, ErrInvalidInventoryType)
		assert.Equal(t, 10, p.TotalStock)
		assert.Equal(t, 10, p.AvailableStock)
		assert.Equal(t, 0, p.QuantitySold)
	})
}
