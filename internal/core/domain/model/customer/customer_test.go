package customer

import (
	"testing"

	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/kernel"
	"github.com/Amman-Khan-17/Paperless-profits/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	id := kernel.NewUUID()

	c, err := NewCustomer(id, "John Smith", "john@example.com", "+1-555-0100")
	require.NoError(t, err)

	assert.NoError(t, c.Validate())
	assert.True(t, c.ID().IsEqual(id))
	assert.Equal(t, "John Smith", c.Name())
	assert.Equal(t, "john@example.com", c.Email())
	assert.Equal(t, "+1-555-0100", c.Phone())
}

func TestNewCustomerAllowsEmptyContactDetails(t *testing.T) {
	c, err := NewCustomer(kernel.NewUUID(), "Walk-in", "", "")
	require.NoError(t, err)

	assert.Empty(t, c.Email())
	assert.Empty(t, c.Phone())
}

func TestNewCustomerValidation(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		_, err := NewCustomer(kernel.UUID{}, "John Smith", "", "")
		assert.Error(t, err)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := NewCustomer(kernel.NewUUID(), "", "", "")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestCustomerValidateRejectsZeroValue(t *testing.T) {
	var c Customer
	assert.ErrorIs(t, c.Validate(), ErrCustomerIsNotConstructed)
}
