package queries_test

import (
	"testing"

	"lifelink/internal/core/application/usecases/queries"
	"lifelink/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetDriverPortalQuery_Valid(t *testing.T) {
	driverID := kernel.NewUUID()

	query, err := queries.NewGetDriverPortalQuery(&driverID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	require.NotNil(t, query.SelectedDriverID())
	assert.True(t, query.SelectedDriverID().IsEqual(driverID))
}

func TestNewGetDriverPortalQuery_NilSelectsDefault(t *testing.T) {
	query, err := queries.NewGetDriverPortalQuery(nil)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Nil(t, query.SelectedDriverID())
}

func TestNewGetDriverPortalQuery_InvalidDriverID(t *testing.T) {
	_, err := queries.NewGetDriverPortalQuery(&kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetDriverPortalQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetDriverPortalQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetDriverPortalQueryIsNotConstructed)
}
