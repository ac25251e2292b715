package commands_test

import (
	"context"
	"errors"
	"testing"

	"lifelink/internal/core/application/usecases/commands"
	"lifelink/internal/core/domain/model/hospital"
	"lifelink/internal/core/domain/model/kernel"
	"lifelink/internal/core/domain/model/listing"
	"lifelink/internal/core/ports"
	"lifelink/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalogHospitalRepository struct{ mock.Mock }

func (m *MockCatalogHospitalRepository) Add(ctx context.Context, h *hospital.Hospital) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}
func (m *MockCatalogHospitalRepository) Get(ctx context.Context, id kernel.UUID) (*hospital.Hospital, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hospital.Hospital), args.Error(1)
}

type MockCatalogListingRepository struct{ mock.Mock }

func (m *MockCatalogListingRepository) Add(ctx context.Context, l *listing.Listing) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}
func (m *MockCatalogListingRepository) Update(_ context.Context, _ *listing.Listing) error {
	return nil
}
func (m *MockCatalogListingRepository) Get(_ context.Context, _ kernel.UUID) (*listing.Listing, error) {
	return nil, errors.New("not implemented in mock")
}

type MockCatalogUoW struct{ mock.Mock }

func (m *MockCatalogUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCatalogUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCatalogUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCatalogUoW) HospitalRepository() ports.HospitalRepository {
	args := m.Called()
	return args.Get(0).(ports.HospitalRepository)
}
func (m *MockCatalogUoW) ListingRepository() ports.ListingRepository {
	args := m.Called()
	return args.Get(0).(ports.ListingRepository)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.ListingUoW {
	args := m.Called()
	return args.Get(0).(commands.ListingUoW)
}

func TestNewCreateListingCommand_Defaults(t *testing.T) {
	cmd, err := commands.NewCreateListingCommand(
		kernel.NewUUID(), kernel.NewUUID(), "Kidney", "O+", 34, 70.5, "", "")
	require.NoError(t, err)
	assert.Equal(t, kernel.PriorityNormal, cmd.Priority())
	assert.Equal(t, listing.Available, cmd.Availability())
}

func TestNewCreateListingCommand_MissingOrgan(t *testing.T) {
	_, err := commands.NewCreateListingCommand(
		kernel.NewUUID(), kernel.NewUUID(), "", "O+", 34, 70.5, "Urgent", "Available")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCreateListingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	hospitalID := kernel.NewUUID()
	offerer, err := hospital.NewHospital(hospitalID, "Houston Methodist", "Houston", "TX", "admin@hm.org")
	require.NoError(t, err)

	cmd, err := commands.NewCreateListingCommand(
		kernel.NewUUID(), hospitalID, "Kidney", "O+", 34, 70.5, "Urgent", "Available")
	require.NoError(t, err)

	hospitals := new(MockCatalogHospitalRepository)
	listings := new(MockCatalogListingRepository)
	uow := new(MockCatalogUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("HospitalRepository").Return(hospitals).Once(),
		hospitals.On("Get", mock.Anything, hospitalID).Return(offerer, nil).Once(),
		uow.On("ListingRepository").Return(listings).Once(),
		listings.On("Add", mock.Anything, mock.MatchedBy(func(l *listing.Listing) bool {
			return l.HospitalName() == "Houston Methodist" &&
				l.City() == "Houston" && l.State() == "TX" &&
				l.Priority() == kernel.PriorityUrgent
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateListingCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	hospitals.AssertExpectations(t)
	listings.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateListingCommandHandler_Handle_UnknownHospital(t *testing.T) {
	ctx := t.Context()
	hospitalID := kernel.NewUUID()
	cmd, err := commands.NewCreateListingCommand(
		kernel.NewUUID(), hospitalID, "Kidney", "O+", 34, 70.5, "Urgent", "Available")
	require.NoError(t, err)

	hospitals := new(MockCatalogHospitalRepository)
	uow := new(MockCatalogUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("HospitalRepository").Return(hospitals).Once(),
		hospitals.On("Get", mock.Anything, hospitalID).
			Return(nil, errs.NewObjectNotFoundError("hospital", hospitalID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateListingCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	hospitals.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateListingCommandHandler_Handle_InvalidDonorAge(t *testing.T) {
	ctx := t.Context()
	hospitalID := kernel.NewUUID()
	offerer, err := hospital.NewHospital(hospitalID, "Houston Methodist", "Houston", "TX", "admin@hm.org")
	require.NoError(t, err)

	cmd, err := commands.NewCreateListingCommand(
		kernel.NewUUID(), hospitalID, "Kidney", "O+", 150, 70.5, "Urgent", "Available")
	require.NoError(t, err)

	hospitals := new(MockCatalogHospitalRepository)
	uow := new(MockCatalogUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("HospitalRepository").Return(hospitals).Once(),
		hospitals.On("Get", mock.Anything, hospitalID).Return(offerer, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateListingCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	hospitals.AssertExpectations(t)
	uow.AssertExpectations(t)
}
