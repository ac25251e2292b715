package commands

import (
	"context"
	"time"
)

// UpdateOrderStatusCommandHandler owns the status-change transaction.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for driver status
// updates.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change. Delivered orders are immutable;
// moving back to Requested releases the order by clearing its driver.
// A missing order surfaces as errs.ObjectNotFoundError.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tr, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = tr.ChangeStatus(cmd.Status(), time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, tr); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
