package commands_test

import (
	"context"
	"errors"
	"testing"

	"lifelink/internal/core/application/usecases/commands"
	"lifelink/internal/core/domain/model/driver"
	"lifelink/internal/core/domain/model/kernel"
	"lifelink/internal/core/ports"
	"lifelink/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDriverRepository) AddApplication(ctx context.Context, a *driver.Application) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockDriverRepository) Get(_ context.Context, _ kernel.UUID) (*driver.Driver, error) {
	return nil, errors.New("not implemented in mock")
}

type MockDriverUoW struct{ mock.Mock }

func (m *MockDriverUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDriverUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDriverUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDriverUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

type MockDriverUoWFactory struct{ mock.Mock }

func (m *MockDriverUoWFactory) Create() commands.DriverUoW {
	args := m.Called()
	return args.Get(0).(commands.DriverUoW)
}

func TestNewApplyDriverCommand_ValidInput(t *testing.T) {
	applicationID := kernel.NewUUID()
	driverID := kernel.NewUUID()

	cmd, err := commands.NewApplyDriverCommand(
		applicationID, driverID, "Marcus", "Webb", "marcus.webb@example.com", "555-0142", "TX-CDL-88123")
	require.NoError(t, err)
	assert.Equal(t, applicationID, cmd.ApplicationID())
	assert.Equal(t, driverID, cmd.DriverID())
	assert.Equal(t, "Marcus", cmd.FirstName())
	assert.Equal(t, "Webb", cmd.LastName())
	assert.Equal(t, "TX-CDL-88123", cmd.CDL())
}

func TestNewApplyDriverCommand_MissingCDL(t *testing.T) {
	_, err := commands.NewApplyDriverCommand(
		kernel.NewUUID(), kernel.NewUUID(), "Marcus", "Webb", "marcus.webb@example.com", "555-0142", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestApplyDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewApplyDriverCommand(
		kernel.NewUUID(), kernel.NewUUID(), "Marcus", "Webb", "marcus.webb@example.com", "555-0142", "TX-CDL-88123")
	require.NoError(t, err)

	repo := new(MockDriverRepository)
	uow := new(MockDriverUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(repo).Once(),
		repo.On("AddApplication", mock.Anything, mock.AnythingOfType("*driver.Application")).Return(nil).Once(),
		uow.On("DriverRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.MatchedBy(func(d *driver.Driver) bool {
			return d.FullName() == "Marcus Webb"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApplyDriverCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestApplyDriverCommandHandler_Handle_AddApplicationError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewApplyDriverCommand(
		kernel.NewUUID(), kernel.NewUUID(), "Marcus", "Webb", "marcus.webb@example.com", "555-0142", "TX-CDL-88123")
	require.NoError(t, err)

	repo := new(MockDriverRepository)
	uow := new(MockDriverUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(repo).Once(),
		repo.On("AddApplication", mock.Anything, mock.AnythingOfType("*driver.Application")).
			Return(errors.New("insert error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApplyDriverCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
