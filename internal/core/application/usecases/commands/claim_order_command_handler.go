package commands

import (
	"context"
	"errors"
	"time"

	"lifelink/internal/core/domain/model/order"
	"lifelink/internal/pkg/errs"
)

// ErrDriverHasActiveOrder rejects a claim by a driver who already carries
// an Assigned or En-route transport.
var ErrDriverHasActiveOrder = errs.NewConflictError("Driver already has an active order")

// ClaimOrderCommandHandler owns the claim transaction: it enforces the
// one-active-order limit and the first-claim-wins rule.
type ClaimOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewClaimOrderCommandHandler creates a handler for driver claims.
func NewClaimOrderCommandHandler(uowFactory OrderUoWFactory) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the claim. The driver must have no active order and the
// request must still be in Requested status. A request that has vanished or
// was already taken reports order.ErrOrderNoLongerAvailable either way, so
// a losing driver cannot probe which orders exist.
//
// The order write is conditioned on its loaded status: of two drivers
// racing for the same request, exactly one commits and the other gets
// order.ErrOrderNoLongerAvailable.
func (h ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) error {
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

	active, err := uow.OrderRepository().CountActiveByDriver(ctx, cmd.DriverID())
	if err != nil {
		return err
	}
	if active > 0 {
		return ErrDriverHasActiveOrder
	}

	tr, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return order.ErrOrderNoLongerAvailable
	}
	if err != nil {
		return err
	}

	if err = tr.Claim(cmd.DriverID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, tr); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
