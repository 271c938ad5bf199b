package order_test

import (
	"testing"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/order"
	"packing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLine(t *testing.T) {
	orderID := kernel.NewUUID()

	t.Run("should create line and normalize its barcode for matching", func(t *testing.T) {
		line, err := order.NewLine(kernel.NewUUID(), orderID, " SKU-1 ", "Blue mug", " ａｂｃ-123 ", 5)

		require.NoError(t, err)
		require.NoError(t, line.Validate())
		assert.Equal(t, "SKU-1", line.SKU())
		assert.Equal(t, "Blue mug", line.Name())
		assert.Equal(t, "ａｂｃ-123", line.Barcode())
		assert.Equal(t, "ABC-123", line.NormalizedBarcode())
		assert.Equal(t, 5, line.QuantityPicked())
		assert.True(t, line.IsPicked())
		assert.True(t, line.OrderID().IsEqual(orderID))
	})

	t.Run("unpicked line is valid but not picked", func(t *testing.T) {
		line, err := order.NewLine(kernel.NewUUID(), orderID, "SKU-2", "", "", 0)

		require.NoError(t, err)
		assert.False(t, line.IsPicked())
		assert.Empty(t, line.NormalizedBarcode())
	})

	t.Run("should fail with missing sku and negative quantity", func(t *testing.T) {
		line, err := order.NewLine(kernel.NewUUID(), orderID, "", "x", "1", -2)

		require.Error(t, err)
		assert.Nil(t, line)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value line is rejected", func(t *testing.T) {
		var line order.Line
		require.ErrorIs(t, line.Validate(), order.ErrLineIsNotConstructed)
	})
}
