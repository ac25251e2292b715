package commands

import (
	"context"
	"errors"
	"time"

	"lifelink/internal/core/domain/model/listing"
	"lifelink/internal/pkg/errs"
)

// CreateListingCommandHandler owns the listing-creation transaction. The
// offering hospital's name and location are denormalized onto the listing
// so the catalog renders without joins.
type CreateListingCommandHandler struct {
	uowFactory ListingUoWFactory
}

// NewCreateListingCommandHandler creates a handler for publishing listings.
func NewCreateListingCommandHandler(uowFactory ListingUoWFactory) CreateListingCommandHandler {
	return CreateListingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command. The offering hospital must exist.
func (h CreateListingCommandHandler) Handle(ctx context.Context, cmd CreateListingCommand) error {
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

	offerer, err := uow.HospitalRepository().Get(ctx, cmd.HospitalID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		// The offering hospital comes from a form field, so a missing row
		// is a validation failure, not a missing resource.
		return errs.NewValueIsInvalidErrorWithCause("hospital", err)
	}
	if err != nil {
		return err
	}

	l, err := listing.NewListing(
		cmd.ListingID(),
		offerer.ID(),
		offerer.Name(),
		cmd.OrganType(),
		cmd.BloodType(),
		cmd.Age(),
		cmd.WeightKg(),
		cmd.Priority(),
		cmd.Availability(),
		offerer.City(),
		offerer.State(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.ListingRepository().Add(ctx, l); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
