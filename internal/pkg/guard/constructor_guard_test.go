package guard_test

import (
	"errors"
	"testing"

	"packing/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("command not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

// TestConstructorGuardUsageExample shows the guard embedded in a command value.
func TestConstructorGuardUsageExample(t *testing.T) {
	type sealCommand struct {
		cartonID string
		guard    guard.ConstructorGuard
	}

	errSealNotConstructed := errors.New("sealCommand must be created via newSealCommand")

	newSealCommand := func(cartonID string) (sealCommand, error) {
		if cartonID == "" {
			return sealCommand{}, errors.New("carton id is required")
		}
		return sealCommand{cartonID: cartonID, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		cmd, err := newSealCommand("c-1")

		require.NoError(t, err)
		require.NoError(t, cmd.guard.Validate(errSealNotConstructed))
		assert.Equal(t, "c-1", cmd.cartonID)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		var cmd sealCommand

		err := cmd.guard.Validate(errSealNotConstructed)

		assert.Equal(t, errSealNotConstructed, err)
	})
}

func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for range 50 {
		go func() {
			for range 500 {
				assert.NoError(t, g.Validate(validationError))
			}
			done <- true
		}()
	}

	for range 50 {
		<-done
	}
}

func BenchmarkConstructorGuard(b *testing.B) {
	b.Run("Validate_Success", func(b *testing.B) {
		g := guard.NewConstructorGuard()
		err := errors.New("not constructed")
		b.ResetTimer()
		for range b.N {
			_ = g.Validate(err)
		}
	})

	b.Run("Validate_ZeroValue", func(b *testing.B) {
		var g guard.ConstructorGuard
		err := errors.New("not constructed")
		b.ResetTimer()
		for range b.N {
			_ = g.Validate(err)
		}
	})
}
