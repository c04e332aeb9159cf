package guard_test

import (
	"errors"
	"testing"

	"visibility/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("test object not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("segment not constructed")

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
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

// TestConstructorGuardUsageExample shows the guard embedded in a domain value.
func TestConstructorGuardUsageExample(t *testing.T) {
	type leg struct {
		pickup string
		drop   string
		guard  guard.ConstructorGuard
	}

	errLegNotConstructed := errors.New("Leg must be created via NewLeg")

	newLeg := func(pickup, drop string) (leg, error) {
		if pickup == "" || drop == "" {
			return leg{}, errors.New("pickup and drop are required")
		}
		return leg{pickup: pickup, drop: drop, guard: guard.NewConstructorGuard()}, nil
	}

	validateLeg := func(l leg) error {
		return l.guard.Validate(errLegNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		l, err := newLeg("WH-A", "DC-B")

		require.NoError(t, err)
		require.NoError(t, validateLeg(l))
		assert.Equal(t, "WH-A", l.pickup)
		assert.Equal(t, "DC-B", l.drop)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		var l leg

		err := validateLeg(l)

		require.Error(t, err)
		assert.Equal(t, errLegNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newLeg("WH-A", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "required")
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
