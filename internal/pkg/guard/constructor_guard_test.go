package guard_test

import (
	"errors"
	"testing"

	"github.com/Amman-Khan-17/Paperless-profits/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("constructed_guard_passes_validation", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_has_meaningful_message", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardUsageExample demonstrates the pattern on a small
// domain object similar to how commands and value objects use it.
func TestConstructorGuardUsageExample(t *testing.T) {
	type lineItem struct {
		name     string
		quantity int
		guard    guard.ConstructorGuard
	}

	var errLineItemNotConstructed = errors.New("lineItem must be created via newLineItem")

	newLineItem := func(name string, quantity int) (lineItem, error) {
		if name == "" {
			return lineItem{}, errors.New("name is required")
		}
		if quantity < 1 {
			return lineItem{}, errors.New("quantity must be at least 1")
		}
		return lineItem{name: name, quantity: quantity, guard: guard.NewConstructorGuard()}, nil
	}

	validate := func(li lineItem) error {
		return li.guard.Validate(errLineItemNotConstructed)
	}

	t.Run("constructed_object_is_valid", func(t *testing.T) {
		li, err := newLineItem("Clean Code", 2)

		require.NoError(t, err)
		require.NoError(t, validate(li))
		assert.Equal(t, "Clean Code", li.name)
		assert.Equal(t, 2, li.quantity)
	})

	t.Run("zero_value_object_fails_validation", func(t *testing.T) {
		var li lineItem

		err := validate(li)

		require.Error(t, err)
		assert.Equal(t, errLineItemNotConstructed, err)
	})

	t.Run("constructor_still_enforces_business_rules", func(t *testing.T) {
		_, err := newLineItem("", 1)
		require.Error(t, err)

		_, err = newLineItem("Clean Code", 0)
		require.Error(t, err)
	})
}

func TestConstructorGuard_PassedByValue(t *testing.T) {
	g := guard.NewConstructorGuard()
	testError := errors.New("test error")

	gCopy := g

	require.NoError(t, g.Validate(testError))
	require.NoError(t, gCopy.Validate(testError))
}
