package commands

import (
	"context"
	"time"

	"lifelink/internal/core/domain/model/order"
)

// CreateEmergencyRequestCommandHandler inserts ad-hoc Emergency transport
// requests. No listing is consumed, so no availability check applies.
type CreateEmergencyRequestCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateEmergencyRequestCommandHandler creates a handler for emergency
// request intake.
func NewCreateEmergencyRequestCommandHandler(uowFactory OrderUoWFactory) CreateEmergencyRequestCommandHandler {
	return CreateEmergencyRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the request in Requested status with Emergency priority.
func (h CreateEmergencyRequestCommandHandler) Handle(ctx context.Context, cmd CreateEmergencyRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	request, err := order.NewEmergencyRequest(
		cmd.RequestID(),
		cmd.Hospital(),
		cmd.OrganType(),
		cmd.Origin(),
		cmd.Destination(),
		cmd.ContactPhone(),
		cmd.Notes(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
