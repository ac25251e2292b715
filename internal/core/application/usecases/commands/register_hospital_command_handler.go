package commands

import (
	"context"

	"lifelink/internal/core/domain/model/hospital"
)

// RegisterHospitalCommandHandler inserts new hospitals into the directory.
type RegisterHospitalCommandHandler struct {
	uowFactory HospitalUoWFactory
}

// NewRegisterHospitalCommandHandler creates a handler for hospital
// registration.
func NewRegisterHospitalCommandHandler(uowFactory HospitalUoWFactory) RegisterHospitalCommandHandler {
	return RegisterHospitalCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle registers the hospital.
func (h RegisterHospitalCommandHandler) Handle(ctx context.Context, cmd RegisterHospitalCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	entity, err := hospital.NewHospital(
		cmd.HospitalID(),
		cmd.Name(),
		cmd.City(),
		cmd.State(),
		cmd.Email(),
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

	if err = uow.HospitalRepository().Add(ctx, entity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
