package commands_test

import (
	"testing"

	"github.com/Amman-Khan-17/Paperless-profits/internal/core/application/usecases/commands"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/kernel"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/staff"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelOrderCommand(t *testing.T) {
	orderID := kernel.NewUUID()
	session := newTestSession(t, staff.Salesman)

	cmd, err := commands.NewCancelOrderCommand(orderID, session)
	require.NoError(t, err)

	assert.NoError(t, cmd.Validate())
	assert.True(t, cmd.OrderID().IsEqual(orderID))
}

func TestNewCancelOrderCommandValidation(t *testing.T) {
	t.Run("empty order id", func(t *testing.T) {
		_, err := commands.NewCancelOrderCommand(kernel.UUID{}, newTestSession(t, staff.Owner))
		assert.Error(t, err)
	})

	t.Run("unconstructed session", func(t *testing.T) {
		_, err := commands.NewCancelOrderCommand(kernel.NewUUID(), staff.Session{})
		assert.ErrorIs(t, err, staff.ErrSessionIsNotConstructed)
	})
}

func TestCancelOrderCommandValidateRejectsZeroValue(t *testing.T) {
	var cmd commands.CancelOrderCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrCancelOrderCommandIsNotConstructed)
}
