package commands

import (
	"errors"

	"lifelink/internal/core/domain/model/kernel"
	"lifelink/internal/core/domain/model/order"
	"lifelink/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// UpdateOrderStatusCommand moves a transport request to a new status on
// behalf of a driver.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID
	status   order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand validates and builds the command. The status
// string must name a known status.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	driverID kernel.UUID,
	status string,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the transport request to move.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the driver requesting the move.
func (c UpdateOrderStatusCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Status returns the target status.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status string) error {
	s, err := order.StatusFromString(status)
	if err != nil {
		return err
	}
	c.status = s
	return nil
}
