package queries_test

import (
	"testing"

	"lifelink/internal/core/application/usecases/queries"
	"lifelink/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetHospitalBoardQuery_Valid(t *testing.T) {
	hospitalID := kernel.NewUUID()

	query, err := queries.NewGetHospitalBoardQuery(&hospitalID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	require.NotNil(t, query.SelectedHospitalID())
	assert.True(t, query.SelectedHospitalID().IsEqual(hospitalID))
}

func TestNewGetHospitalBoardQuery_NilSelectsDefault(t *testing.T) {
	query, err := queries.NewGetHospitalBoardQuery(nil)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Nil(t, query.SelectedHospitalID())
}

func TestNewGetHospitalBoardQuery_InvalidHospitalID(t *testing.T) {
	_, err := queries.NewGetHospitalBoardQuery(&kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetHospitalBoardQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetHospitalBoardQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetHospitalBoardQueryIsNotConstructed)
}
