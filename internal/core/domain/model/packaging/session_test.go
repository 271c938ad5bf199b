package packaging_test

import (
	"testing"
	"time"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/order"
	"packing/internal/core/domain/model/packaging"
	"packing/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var startedAt = time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC)

func boxConfig(t *testing.T) packaging.BoxConfig {
	t.Helper()
	cfg, err := packaging.NewBoxConfig("standard", "M", nil)
	require.NoError(t, err)
	return cfg
}

func newSession(t *testing.T, orderID kernel.UUID, boxes int) *packaging.Session {
	t.Helper()
	configs := make([]packaging.BoxConfig, 0, boxes)
	for range boxes {
		configs = append(configs, boxConfig(t))
	}
	s, err := packaging.NewSession(kernel.NewUUID(), orderID, "PKG-20240305-0000ABCD", "alice", 5, configs, startedAt)
	require.NoError(t, err)
	return s
}

func newLine(t *testing.T, orderID kernel.UUID, picked int) *order.Line {
	t.Helper()
	line, err := order.NewLine(kernel.NewUUID(), orderID, "SKU-1", "Blue mug", "4006381333931", picked)
	require.NoError(t, err)
	return line
}

func weight(t *testing.T, kg string) kernel.Weight {
	t.Helper()
	w, err := kernel.NewWeight(decimal.RequireFromString(kg))
	require.NoError(t, err)
	return w
}

func openCount(s *packaging.Session) int {
	n := 0
	for _, c := range s.Cartons() {
		if c.IsOpen() {
			n++
		}
	}
	return n
}

func TestNewSession(t *testing.T) {
	orderID := kernel.NewUUID()

	t.Run("should create first carton open and the rest pending", func(t *testing.T) {
		s := newSession(t, orderID, 3)

		require.NoError(t, s.Validate())
		assert.Equal(t, packaging.SessionInProgress, s.Status())
		assert.Equal(t, 3, s.TotalCartons())
		assert.Equal(t, 3, s.LastBoxNumber())
		assert.False(t, s.ShipmentCreated())
		assert.Nil(t, s.ShipmentID())

		cartons := s.Cartons()
		require.Len(t, cartons, 3)
		assert.Equal(t, packaging.CartonOpen, cartons[0].Status())
		assert.Equal(t, packaging.CartonPending, cartons[1].Status())
		assert.Equal(t, packaging.CartonPending, cartons[2].Status())
		for i, c := range cartons {
			assert.Equal(t, i+1, c.BoxNumber())
			assert.Equal(t, packaging.CartonBarcode(s.Token(), i+1), c.Barcode())
			assert.Zero(t, c.ItemsCount())
			if i > 0 {
				assert.True(t, c.CreatedAt().After(cartons[i-1].CreatedAt()), "creation time follows box order")
			}
		}
	})

	t.Run("should fail without boxes or operator", func(t *testing.T) {
		s, err := packaging.NewSession(kernel.NewUUID(), orderID, "PKG-1", " ", 1, nil, startedAt)

		require.Error(t, err)
		assert.Nil(t, s)
		require.ErrorIs(t, err, packaging.ErrBoxesAreRequired)
		require.ErrorIs(t, err, packaging.ErrOperatorIsRequired)
	})

	t.Run("should reject zero-value box config", func(t *testing.T) {
		_, err := packaging.NewSession(kernel.NewUUID(), orderID, "PKG-1", "bob", 1,
			[]packaging.BoxConfig{{}}, startedAt)

		require.ErrorIs(t, err, packaging.ErrBoxConfigIsNotConstructed)
	})

	t.Run("zero value session is rejected", func(t *testing.T) {
		var s packaging.Session
		require.ErrorIs(t, s.Validate(), packaging.ErrSessionIsNotConstructed)
	})
}

// Order O1 has one line with 5 picked; 3 + 2 fit, a third scan does not.
func TestSession_LedgerScenario(t *testing.T) {
	// given
	orderID := kernel.NewUUID()
	line := newLine(t, orderID, 5)
	s := newSession(t, orderID, 2)
	box1 := s.OpenCarton()
	require.NotNil(t, box1)

	// when
	entry, err := s.AddItem(box1.ID(), line, 3, "alice", startedAt)

	// then
	require.NoError(t, err)
	assert.Equal(t, 3, entry.Quantity())
	assert.Equal(t, 3, s.PackedQuantity(line.ID()))
	assert.Equal(t, 2, s.Remaining(line))

	_, err = s.AddItem(box1.ID(), line, 3, "alice", startedAt)
	require.ErrorIs(t, err, packaging.ErrQuantityExceeded)
	assert.Contains(t, err.Error(), "only 2 remaining")
	assert.Equal(t, 3, s.PackedQuantity(line.ID()))

	merged, err := s.AddItem(box1.ID(), line, 2, "bob", startedAt.Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, merged.ID().IsEqual(entry.ID()), "repeat scan merges into the existing entry")
	assert.Equal(t, 5, merged.Quantity())
	assert.Equal(t, "bob", merged.Operator())
	assert.Equal(t, startedAt.Add(time.Minute), merged.AddedAt())
	assert.Len(t, box1.Entries(), 1)
	assert.Equal(t, 5, box1.ItemsCount())
	assert.Zero(t, s.Remaining(line))

	_, err = s.AddItem(box1.ID(), line, 1, "alice", startedAt)
	require.ErrorIs(t, err, packaging.ErrQuantityExceeded)
}

func TestSession_AddItem(t *testing.T) {
	orderID := kernel.NewUUID()

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		s := newSession(t, orderID, 1)
		_, err := s.AddItem(s.OpenCarton().ID(), newLine(t, orderID, 5), 0, "alice", startedAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects a line of another order", func(t *testing.T) {
		s := newSession(t, orderID, 1)
		_, err := s.AddItem(s.OpenCarton().ID(), newLine(t, kernel.NewUUID(), 5), 1, "alice", startedAt)

		require.ErrorIs(t, err, packaging.ErrItemNotInOrder)
	})

	t.Run("rejects a pending carton", func(t *testing.T) {
		s := newSession(t, orderID, 2)
		pending := s.Cartons()[1]

		_, err := s.AddItem(pending.ID(), newLine(t, orderID, 5), 1, "alice", startedAt)

		require.ErrorIs(t, err, packaging.ErrCartonNotOpen)
	})

	t.Run("rejects an unknown carton", func(t *testing.T) {
		s := newSession(t, orderID, 1)
		_, err := s.AddItem(kernel.NewUUID(), newLine(t, orderID, 5), 1, "alice", startedAt)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("counts every carton of the session against the picked quantity", func(t *testing.T) {
		s := newSession(t, orderID, 2)
		line := newLine(t, orderID, 4)
		box1 := s.OpenCarton()
		_, err := s.AddItem(box1.ID(), line, 3, "alice", startedAt)
		require.NoError(t, err)
		require.NoError(t, s.SealCarton(box1.ID(), weight(t, "1.2"), "alice", startedAt))
		box2, opened, err := s.OpenNextCarton()
		require.NoError(t, err)
		require.True(t, opened)

		_, err = s.AddItem(box2.ID(), line, 2, "alice", startedAt)
		require.ErrorIs(t, err, packaging.ErrQuantityExceeded)

		_, err = s.AddItem(box2.ID(), line, 1, "alice", startedAt)
		require.NoError(t, err)
		assert.Equal(t, 4, s.PackedQuantity(line.ID()))
	})

	t.Run("another session for the same order has its own ledger", func(t *testing.T) {
		line := newLine(t, orderID, 2)
		first := newSession(t, orderID, 1)
		second := newSession(t, orderID, 1)

		_, err := first.AddItem(first.OpenCarton().ID(), line, 2, "alice", startedAt)
		require.NoError(t, err)
		_, err = second.AddItem(second.OpenCarton().ID(), line, 2, "bob", startedAt)
		require.NoError(t, err)
	})
}

func TestSession_RemoveItem(t *testing.T) {
	orderID := kernel.NewUUID()
	line := newLine(t, orderID, 5)

	t.Run("removes the entry and lowers the counts", func(t *testing.T) {
		s := newSession(t, orderID, 1)
		box := s.OpenCarton()
		entry, err := s.AddItem(box.ID(), line, 4, "alice", startedAt)
		require.NoError(t, err)

		require.NoError(t, s.RemoveItem(box.ID(), entry.ID()))

		assert.Zero(t, box.ItemsCount())
		assert.Equal(t, 5, s.Remaining(line))
	})

	t.Run("unknown entry is not found", func(t *testing.T) {
		s := newSession(t, orderID, 1)
		err := s.RemoveItem(s.OpenCarton().ID(), kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("sealed carton keeps its entries", func(t *testing.T) {
		s := newSession(t, orderID, 1)
		box := s.OpenCarton()
		entry, err := s.AddItem(box.ID(), line, 1, "alice", startedAt)
		require.NoError(t, err)
		require.NoError(t, s.SealCarton(box.ID(), weight(t, "0.5"), "alice", startedAt))

		err = s.RemoveItem(box.ID(), entry.ID())

		require.ErrorIs(t, err, packaging.ErrCartonSealed)
		assert.Equal(t, 1, box.ItemsCount())
	})
}

func TestSession_SealCarton(t *testing.T) {
	orderID := kernel.NewUUID()
	line := newLine(t, orderID, 5)

	t.Run("empty carton cannot be sealed", func(t *testing.T) {
		s := newSession(t, orderID, 1)
		err := s.SealCarton(s.OpenCarton().ID(), weight(t, "1"), "alice", startedAt)

		require.ErrorIs(t, err, packaging.ErrEmptyCarton)
		assert.Equal(t, "empty_carton", errs.CodeOf(err))
		assert.Equal(t, errs.KindPreconditionFailed, errs.KindOf(err))
	})

	t.Run("seals once and captures weight and operator", func(t *testing.T) {
		s := newSession(t, orderID, 1)
		box := s.OpenCarton()
		_, err := s.AddItem(box.ID(), line, 1, "alice", startedAt)
		require.NoError(t, err)
		sealedAt := startedAt.Add(time.Hour)

		require.NoError(t, s.SealCarton(box.ID(), weight(t, "2.345"), "bob", sealedAt))

		assert.True(t, box.IsSealed())
		assert.Equal(t, "2.345", box.ActualWeight().String())
		assert.Equal(t, "bob", box.SealedBy())
		assert.Equal(t, sealedAt, *box.SealedAt())

		err = s.SealCarton(box.ID(), weight(t, "9"), "bob", sealedAt)
		require.ErrorIs(t, err, packaging.ErrCartonNotOpen)
		assert.Equal(t, "2.345", box.ActualWeight().String())
	})

	t.Run("zero-value weight is rejected", func(t *testing.T) {
		s := newSession(t, orderID, 1)
		err := s.SealCarton(s.OpenCarton().ID(), kernel.Weight{}, "alice", startedAt)

		require.ErrorIs(t, err, kernel.ErrWeightIsNotConstructed)
	})
}

// Boxes [1 open, 2 pending]: seal 1, open next, then jump back to 1.
func TestSession_CartonScenario(t *testing.T) {
	// given
	orderID := kernel.NewUUID()
	line := newLine(t, orderID, 5)
	s := newSession(t, orderID, 2)
	box1, box2 := s.Cartons()[0], s.Cartons()[1]
	_, err := s.AddItem(box1.ID(), line, 2, "alice", startedAt)
	require.NoError(t, err)

	// when / then
	require.NoError(t, s.SealCarton(box1.ID(), weight(t, "1.5"), "alice", startedAt))
	assert.Nil(t, s.OpenCarton())

	next, opened, err := s.OpenNextCarton()
	require.NoError(t, err)
	require.True(t, opened)
	assert.True(t, next.ID().IsEqual(box2.ID()))
	assert.True(t, box2.IsOpen())

	require.NoError(t, s.ReopenCarton(box1.ID()))
	assert.Equal(t, packaging.CartonSealed, box2.Status())
	assert.Nil(t, box2.ActualWeight(), "forced seal does not touch weight")
	assert.Nil(t, box2.SealedAt())
	assert.Equal(t, packaging.CartonOpen, box1.Status())
	assert.Nil(t, box1.ActualWeight())
	assert.Nil(t, box1.SealedAt())
	assert.Empty(t, box1.SealedBy())
	assert.Equal(t, 1, openCount(s))
}

func TestSession_OpenNextCarton(t *testing.T) {
	orderID := kernel.NewUUID()

	t.Run("refuses while a carton is open", func(t *testing.T) {
		s := newSession(t, orderID, 2)

		_, opened, err := s.OpenNextCarton()

		require.ErrorIs(t, err, packaging.ErrAnotherCartonOpen)
		assert.False(t, opened)
		assert.Equal(t, 1, openCount(s))
	})

	t.Run("reports no more boxes without error", func(t *testing.T) {
		s := newSession(t, orderID, 1)
		box := s.OpenCarton()
		_, err := s.AddItem(box.ID(), newLine(t, orderID, 1), 1, "alice", startedAt)
		require.NoError(t, err)
		require.NoError(t, s.SealCarton(box.ID(), weight(t, "1"), "alice", startedAt))

		next, opened, err := s.OpenNextCarton()

		require.NoError(t, err)
		assert.False(t, opened)
		assert.Nil(t, next)
	})

	t.Run("picks the lowest pending box number", func(t *testing.T) {
		s := newSession(t, orderID, 3)
		box1 := s.OpenCarton()
		_, err := s.DeleteCarton(box1.ID())
		require.NoError(t, err)

		next, opened, err := s.OpenNextCarton()

		require.NoError(t, err)
		require.True(t, opened)
		assert.Equal(t, 2, next.BoxNumber())
	})
}

func TestSession_ReopenCarton(t *testing.T) {
	orderID := kernel.NewUUID()

	t.Run("reopening the open carton is a no-op", func(t *testing.T) {
		s := newSession(t, orderID, 2)
		require.NoError(t, s.ReopenCarton(s.OpenCarton().ID()))
		assert.Equal(t, 1, openCount(s))
	})

	t.Run("pending carton cannot be reopened", func(t *testing.T) {
		s := newSession(t, orderID, 2)
		err := s.ReopenCarton(s.Cartons()[1].ID())
		require.ErrorIs(t, err, packaging.ErrCartonNotSealed)
	})
}

func TestSession_DeleteCarton(t *testing.T) {
	// given
	orderID := kernel.NewUUID()
	line := newLine(t, orderID, 5)
	s := newSession(t, orderID, 3)
	box1 := s.OpenCarton()
	_, err := s.AddItem(box1.ID(), line, 2, "alice", startedAt)
	require.NoError(t, err)

	// when
	removed, err := s.DeleteCarton(box1.ID())

	// then
	require.NoError(t, err)
	assert.True(t, removed.ID().IsEqual(box1.ID()))
	assert.Equal(t, 2, s.TotalCartons())
	assert.Len(t, s.Cartons(), 2)
	assert.Zero(t, s.PackedQuantity(line.ID()), "ledger entries go with the carton")

	added, err := s.AddCarton(boxConfig(t), startedAt)
	require.NoError(t, err)
	assert.Equal(t, 4, added.BoxNumber(), "box numbers are never reused")
	assert.Equal(t, packaging.CartonPending, added.Status())
	assert.Equal(t, 3, s.TotalCartons())
	assert.True(t, added.CreatedAt().After(s.Cartons()[1].CreatedAt()))

	_, err = s.DeleteCarton(kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestSession_AddCarton(t *testing.T) {
	orderID := kernel.NewUUID()

	t.Run("opens the new carton when nothing else is open or pending", func(t *testing.T) {
		s := newSession(t, orderID, 1)
		box := s.OpenCarton()
		_, err := s.AddItem(box.ID(), newLine(t, orderID, 1), 1, "alice", startedAt)
		require.NoError(t, err)
		require.NoError(t, s.SealCarton(box.ID(), weight(t, "1"), "alice", startedAt))

		added, err := s.AddCarton(boxConfig(t), startedAt.Add(time.Hour))

		require.NoError(t, err)
		assert.True(t, added.IsOpen())
		assert.Equal(t, startedAt.Add(time.Hour), added.CreatedAt())
		assert.Equal(t, 1, openCount(s))
	})

	t.Run("zero-value config is rejected", func(t *testing.T) {
		s := newSession(t, orderID, 1)
		_, err := s.AddCarton(packaging.BoxConfig{}, startedAt)
		require.ErrorIs(t, err, packaging.ErrBoxConfigIsNotConstructed)
	})
}

func TestSession_Complete(t *testing.T) {
	s := newSession(t, kernel.NewUUID(), 2)
	completedAt := startedAt.Add(2 * time.Hour)

	require.NoError(t, s.Complete(completedAt), "completion does not require sealed cartons")
	assert.Equal(t, packaging.SessionCompleted, s.Status())
	assert.Equal(t, completedAt, *s.CompletedAt())

	err := s.Complete(completedAt)
	require.ErrorIs(t, err, packaging.ErrSessionNotInProgress)
}

func TestSession_MarkShipped(t *testing.T) {
	orderID := kernel.NewUUID()
	shipmentID := kernel.NewUUID()

	t.Run("in-progress session cannot be consolidated", func(t *testing.T) {
		s := newSession(t, orderID, 1)
		err := s.MarkShipped(shipmentID)
		require.ErrorIs(t, err, packaging.ErrSessionNotCompleted)
	})

	t.Run("marks once and freezes the session", func(t *testing.T) {
		s := newSession(t, orderID, 2)
		line := newLine(t, orderID, 3)
		box := s.OpenCarton()
		_, err := s.AddItem(box.ID(), line, 1, "alice", startedAt)
		require.NoError(t, err)
		require.NoError(t, s.Complete(startedAt))

		require.NoError(t, s.MarkShipped(shipmentID))
		assert.True(t, s.ShipmentCreated())
		assert.True(t, s.ShipmentID().IsEqual(shipmentID))

		err = s.MarkShipped(kernel.NewUUID())
		require.ErrorIs(t, err, packaging.ErrAlreadyShipped)
		assert.Equal(t, errs.KindConflict, errs.KindOf(err))

		_, err = s.AddItem(box.ID(), line, 1, "alice", startedAt)
		require.ErrorIs(t, err, packaging.ErrAlreadyShipped)
		require.ErrorIs(t, s.SealCarton(box.ID(), weight(t, "1"), "alice", startedAt), packaging.ErrAlreadyShipped)
		require.ErrorIs(t, s.ReopenCarton(box.ID()), packaging.ErrAlreadyShipped)
		require.ErrorIs(t, s.ValidateDeletable(), packaging.ErrAlreadyShipped)
		_, err = s.AddCarton(boxConfig(t), startedAt)
		require.ErrorIs(t, err, packaging.ErrAlreadyShipped)
	})
}

func TestSessionAlreadyActiveError(t *testing.T) {
	id := kernel.NewUUID()
	err := packaging.NewSessionAlreadyActiveError(id, "PKG-20240305-0000ABCD")

	require.ErrorIs(t, err, packaging.ErrSessionAlreadyActive)
	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, "session_already_active", errs.CodeOf(err))
	assert.Contains(t, err.Error(), "PKG-20240305-0000ABCD")
}
