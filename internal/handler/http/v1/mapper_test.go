package v1

import (
	"testing"
	"time"

	"github.com/devansh/disaster_management/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestToSosRequestDto_MissingUser(t *testing.T) {
	t.Run("nil request", func(t *testing.T) {
		dto, err := RequestToSosRequestDto(nil)
		assert.Nil(t, dto)
		assert.ErrorIs(t, err, models.ErrMissingUserReference)
	})

	t.Run("request without user", func(t *testing.T) {
		dto, err := RequestToSosRequestDto(&models.SosRequest{ID: 3, Status: models.SosStatusPending})
		assert.Nil(t, dto)
		assert.ErrorIs(t, err, models.ErrMissingUserReference)
	})
}

func TestRequestToSosRequestDto(t *testing.T) {
	created := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	req := &models.SosRequest{
		ID:        11,
		User:      &models.User{ID: 42},
		Status:    models.SosStatusInProgress,
		Latitude:  -33.8688,
		Longitude: 151.2093,
		Message:   "Trapped on the roof",
		Version:   3,
		CreatedAt: created,
		UpdatedAt: created.Add(time.Minute),
	}

	t.Run("without zone", func(t *testing.T) {
		dto, err := RequestToSosRequestDto(req)
		require.NoError(t, err)

		assert.Equal(t, int64(11), dto.ID)
		assert.Equal(t, int64(42), dto.UserID)
		assert.Equal(t, "IN_PROGRESS", dto.SosStatus)
		assert.Equal(t, -33.8688, dto.Latitude)
		assert.Equal(t, 151.2093, dto.Longitude)
		assert.Equal(t, "Trapped on the roof", dto.Message)
		assert.Equal(t, 3, dto.Version)
		assert.Equal(t, created, dto.CreatedAt)
		assert.Nil(t, dto.DisasterZoneDto)
	})

	t.Run("with zone", func(t *testing.T) {
		withZone := *req
		withZone.DisasterZone = &models.DisasterZone{
			ID:              5,
			Name:            "Sydney Storm Zone",
			DisasterType:    models.DisasterTypeStorm,
			DangerLevel:     models.DangerLevelMedium,
			CenterLatitude:  decimal.RequireFromString("-33.868800"),
			CenterLongitude: decimal.RequireFromString("151.209300"),
			Radius:          12.5,
		}

		dto, err := RequestToSosRequestDto(&withZone)
		require.NoError(t, err)
		require.NotNil(t, dto.DisasterZoneDto)

		assert.Equal(t, int64(5), dto.DisasterZoneDto.ID)
		assert.Equal(t, "STORM", dto.DisasterZoneDto.DisasterType)
		assert.Equal(t, "MEDIUM", dto.DisasterZoneDto.DangerLevel)
		assert.Equal(t, -33.8688, dto.DisasterZoneDto.CenterLatitude)
		assert.Equal(t, 12.5, dto.DisasterZoneDto.Radius)
		assert.Nil(t, dto.DisasterZoneDto.CreatedAt)
	})
}

func TestRequestsToSosRequestDtos_StopsOnMissingUser(t *testing.T) {
	requests := []*models.SosRequest{
		{ID: 1, User: &models.User{ID: 1}},
		{ID: 2},
	}

	dtos, err := RequestsToSosRequestDtos(requests)
	assert.Nil(t, dtos)
	assert.ErrorIs(t, err, models.ErrMissingUserReference)

	dtos, err = RequestsToSosRequestDtos(nil)
	require.NoError(t, err)
	assert.Empty(t, dtos)
}

func TestUpdateDTOToZoneModel_IsActiveDefault(t *testing.T) {
	radius := 0.0
	dto := UpdateZoneRequest{Name: "zone", DisasterType: "FIRE", DangerLevel: "LOW", Radius: &radius, Version: 4}

	assert.True(t, UpdateDTOToZoneModel(dto).IsActive)

	inactive := false
	dto.IsActive = &inactive
	model := UpdateDTOToZoneModel(dto)
	assert.False(t, model.IsActive)
	assert.Equal(t, 4, model.Version)
	assert.Zero(t, model.Radius)
}
