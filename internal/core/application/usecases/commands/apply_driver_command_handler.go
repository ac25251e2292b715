package commands

import (
	"context"

	"lifelink/internal/core/domain/model/driver"
)

// ApplyDriverCommandHandler files the application record and activates the
// driver in one transaction. There is no review step: a valid application
// is a working driver.
type ApplyDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewApplyDriverCommandHandler creates a handler for driver intake.
func NewApplyDriverCommandHandler(uowFactory DriverUoWFactory) ApplyDriverCommandHandler {
	return ApplyDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the application.
func (h ApplyDriverCommandHandler) Handle(ctx context.Context, cmd ApplyDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	application, err := driver.NewApplication(
		cmd.ApplicationID(),
		cmd.FirstName(),
		cmd.LastName(),
		cmd.Email(),
		cmd.Phone(),
		cmd.CDL(),
	)
	if err != nil {
		return err
	}

	activated, err := driver.NewDriver(
		cmd.DriverID(),
		cmd.FirstName(),
		cmd.LastName(),
		cmd.Email(),
		cmd.Phone(),
		cmd.CDL(),
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

	if err = uow.DriverRepository().AddApplication(ctx, application); err != nil {
		return err
	}

	if err = uow.DriverRepository().Add(ctx, activated); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
