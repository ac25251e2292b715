package commands_test

import (
	"testing"

	"lifelink/internal/core/application/usecases/commands"
	"lifelink/internal/core/domain/model/kernel"
	"lifelink/internal/core/domain/model/order"
	"lifelink/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	driverID := kernel.NewUUID()

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, driverID, "En-route")
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, driverID, cmd.DriverID())
	assert.Equal(t, order.EnRoute, cmd.Status())
}

func TestNewUpdateOrderStatusCommand_UnknownStatus(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), kernel.NewUUID(), "Teleported")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.EqualError(t, err, "Invalid status")
}

func TestNewUpdateOrderStatusCommand_EmptyStatus(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), kernel.NewUUID(), "")
	require.Error(t, err)
}

func TestNewUpdateOrderStatusCommand_InvalidDriverID(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), kernel.UUID{}, "Delivered")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestUpdateOrderStatusCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.UpdateOrderStatusCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUpdateOrderStatusCommandIsNotConstructed)
}
