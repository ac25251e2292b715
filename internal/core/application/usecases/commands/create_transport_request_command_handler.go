package commands

import (
	"context"
	"errors"
	"time"

	"lifelink/internal/core/domain/model/order"
	"lifelink/internal/pkg/errs"
)

// CreateTransportRequestCommandHandler owns the request-placement
// transaction: it reserves the listing and inserts the new request
// atomically, so a listing can never be consumed twice.
type CreateTransportRequestCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewCreateTransportRequestCommandHandler creates a handler for placing
// transport requests.
func NewCreateTransportRequestCommandHandler(uowFactory RequestUoWFactory) CreateTransportRequestCommandHandler {
	return CreateTransportRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command. The listing must exist and be Available;
// the requesting hospital must exist. On success the new request starts in
// Requested status carrying the listing's priority and origin label, and
// the listing flips to Unavailable in the same transaction.
//
// The listing write is conditioned on its loaded availability, so a
// concurrent request against the same listing loses cleanly with
// listing.ErrListingUnavailable instead of double-consuming it.
func (h CreateTransportRequestCommandHandler) Handle(ctx context.Context, cmd CreateTransportRequestCommand) error {
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

	l, err := uow.ListingRepository().Get(ctx, cmd.ListingID())
	if err != nil {
		return err
	}

	if err = l.Reserve(); err != nil {
		return err
	}

	requester, err := uow.HospitalRepository().Get(ctx, cmd.HospitalID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		// The requesting hospital comes from a form field, so a missing row
		// is a validation failure, not a missing resource.
		return errs.NewValueIsInvalidErrorWithCause("hospital", err)
	}
	if err != nil {
		return err
	}

	request, err := order.NewTransportRequest(
		cmd.RequestID(),
		l.ID(),
		requester.Name(),
		l.OrganType(),
		l.OriginLabel(),
		cmd.Destination(),
		cmd.ContactPhone(),
		cmd.Notes(),
		l.Priority(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, request); err != nil {
		return err
	}

	if err = uow.ListingRepository().Update(ctx, l); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
