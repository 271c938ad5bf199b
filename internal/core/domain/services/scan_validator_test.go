package services_test

import (
	"testing"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/order"
	"packing/internal/core/domain/model/packaging"
	"packing/internal/core/domain/services"
	"packing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanValidator_Validate(t *testing.T) {
	o := newOrder(t, "Acme")
	mug := newLine(t, o.ID(), "SKU-MUG", "4006381333931", 5)
	capLine := newLine(t, o.ID(), "SKU-CAP", "ABC-123", 2)
	unpicked := newLine(t, o.ID(), "SKU-PEN", "999", 0)
	noBarcode := newLine(t, o.ID(), "SKU-AAA", "", 3)
	lines := []*order.Line{mug, capLine, unpicked, noBarcode}
	validator := services.NewScanValidator()

	t.Run("exact match after normalization", func(t *testing.T) {
		s := newSession(t, o.ID(), 1)

		res, err := validator.Validate(s, lines, "  abc-123 ")

		require.NoError(t, err)
		assert.True(t, res.Line.ID().IsEqual(capLine.ID()))
		assert.Equal(t, 0, res.AlreadyPacked)
		assert.Equal(t, 2, res.Remaining)
	})

	t.Run("full-width scanner output matches", func(t *testing.T) {
		s := newSession(t, o.ID(), 1)

		res, err := validator.Validate(s, lines, "ａｂｃ－１２３")

		require.NoError(t, err)
		assert.True(t, res.Line.ID().IsEqual(capLine.ID()))
	})

	t.Run("falls back to a contains match", func(t *testing.T) {
		s := newSession(t, o.ID(), 1)

		res, err := validator.Validate(s, lines, "]C1ABC-123")

		require.NoError(t, err)
		assert.True(t, res.Line.ID().IsEqual(capLine.ID()))
	})

	t.Run("reports what the session already packed", func(t *testing.T) {
		s := newSession(t, o.ID(), 1)
		_, err := s.AddItem(s.OpenCarton().ID(), mug, 3, "alice", now)
		require.NoError(t, err)

		res, err := validator.Validate(s, lines, "4006381333931")

		require.NoError(t, err)
		assert.Equal(t, 3, res.AlreadyPacked)
		assert.Equal(t, 2, res.Remaining)
	})

	t.Run("unknown barcode is not in the order", func(t *testing.T) {
		s := newSession(t, o.ID(), 1)

		_, err := validator.Validate(s, lines, "0000000")

		require.ErrorIs(t, err, packaging.ErrItemNotInOrder)
		assert.Contains(t, err.Error(), "0000000")
	})

	t.Run("line of another order never matches", func(t *testing.T) {
		s := newSession(t, o.ID(), 1)
		foreign := newLine(t, kernel.NewUUID(), "SKU-X", "777", 1)

		_, err := validator.Validate(s, []*order.Line{foreign}, "777")

		require.ErrorIs(t, err, packaging.ErrItemNotInOrder)
	})

	t.Run("unpicked line", func(t *testing.T) {
		s := newSession(t, o.ID(), 1)

		_, err := validator.Validate(s, lines, "999")

		require.ErrorIs(t, err, packaging.ErrNotYetPicked)
	})

	t.Run("fully packed in this session", func(t *testing.T) {
		s := newSession(t, o.ID(), 1)
		_, err := s.AddItem(s.OpenCarton().ID(), capLine, 2, "alice", now)
		require.NoError(t, err)

		_, err = validator.Validate(s, lines, "ABC-123")

		require.ErrorIs(t, err, packaging.ErrFullyPackedInSession)
		assert.Equal(t, errs.KindPreconditionFailed, errs.KindOf(err))

		other := newSession(t, o.ID(), 1)
		_, err = validator.Validate(other, lines, "ABC-123")
		require.NoError(t, err, "another session has its own ledger")
	})

	t.Run("empty barcode", func(t *testing.T) {
		s := newSession(t, o.ID(), 1)

		_, err := validator.Validate(s, lines, "   ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestScanValidator_PrefersSKUOrderOnAmbiguousContains(t *testing.T) {
	o := newOrder(t, "Acme")
	b := newLine(t, o.ID(), "SKU-B", "12345", 1)
	a := newLine(t, o.ID(), "SKU-A", "12399", 1)
	s := newSession(t, o.ID(), 1)

	res, err := services.NewScanValidator().Validate(s, []*order.Line{b, a}, "123")

	require.NoError(t, err)
	assert.True(t, res.Line.ID().IsEqual(a.ID()))
}
