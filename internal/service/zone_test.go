package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/wildfire_risk_service/internal/apperr"
	"github.com/shenikar/wildfire_risk_service/internal/config"
	"github.com/shenikar/wildfire_risk_service/internal/models"
	"github.com/shenikar/wildfire_risk_service/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestZoneService(t *testing.T) (*zoneService, *mocks.MockZoneRepository, *clockwork.FakeClock) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockZoneRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		CoordinateTolerance: 0.01,
		ZoneDeleteCascade:   false,
	}
	clock := clockwork.NewFakeClockAt(time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC))

	svc := NewZoneService(repoMock, logger, cfg, clock)
	return svc.(*zoneService), repoMock, clock
}

func validZone() *models.RiskZone {
	return &models.RiskZone{
		RegionName:      "Siberian Taiga",
		Latitude:        56.01,
		Longitude:       92.87,
		RiskLevel:       0.82,
		RiskCategory:    models.RiskCategoryHigh,
		PredictionModel: "DemoRandomModel",
		ConfidenceScore: 0.9,
	}
}

func TestCreateZone_Success_AssignsTimestamp(t *testing.T) {
	service, repoMock, clock := newTestZoneService(t)
	ctx := context.Background()
	zone := validZone()

	repoMock.EXPECT().
		Create(ctx, zone).
		DoAndReturn(func(ctx context.Context, z *models.RiskZone) error {
			z.ID = 7
			return nil
		}).Times(1)

	err := service.CreateZone(ctx, zone)

	require.NoError(t, err)
	assert.Equal(t, int64(7), zone.ID)
	assert.Equal(t, clock.Now().UTC(), zone.Timestamp)
}

func TestCreateZone_InvalidRiskLevel(t *testing.T) {
	service, _, _ := newTestZoneService(t)
	zone := validZone()
	zone.RiskLevel = 1.5

	err := service.CreateZone(context.Background(), zone)

	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.ErrorContains(t, err, "risk_level")
}

func TestCreateZone_InvalidCategory(t *testing.T) {
	service, _, _ := newTestZoneService(t)
	zone := validZone()
	zone.RiskCategory = "Extreme"

	err := service.CreateZone(context.Background(), zone)

	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.ErrorContains(t, err, "risk_category")
}

func TestGetZone_Success_FromCache(t *testing.T) {
	service, repoMock, _ := newTestZoneService(t)
	ctx := context.Background()
	expected := validZone()
	expected.ID = 3

	repoMock.EXPECT().
		GetZoneFromCache(ctx, int64(3)).
		Return(expected, nil).
		Times(1)

	zone, err := service.GetZone(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, expected, zone)
}

func TestGetZone_Success_FromDB(t *testing.T) {
	service, repoMock, _ := newTestZoneService(t)
	ctx := context.Background()
	expected := validZone()
	expected.ID = 3

	// Cache miss, then database hit, then cache fill.
	repoMock.EXPECT().GetZoneFromCache(ctx, int64(3)).Return(nil, nil).Times(1)
	repoMock.EXPECT().GetByID(ctx, int64(3)).Return(expected, nil).Times(1)
	repoMock.EXPECT().SetZoneCache(ctx, expected).Return(nil).Times(1)

	zone, err := service.GetZone(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, expected, zone)
}

func TestGetZone_NotFound(t *testing.T) {
	service, repoMock, _ := newTestZoneService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetZoneFromCache(ctx, int64(99)).Return(nil, nil).Times(1)
	repoMock.EXPECT().GetByID(ctx, int64(99)).Return(nil, apperr.ErrNotFound).Times(1)

	zone, err := service.GetZone(ctx, 99)

	require.Error(t, err)
	assert.Nil(t, zone)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestListZones_ClampsPagination(t *testing.T) {
	service, repoMock, _ := newTestZoneService(t)
	ctx := context.Background()

	// Negative skip and an oversized limit are clamped before hitting the repo.
	repoMock.EXPECT().
		List(ctx, models.ZoneFilter{}, 0, 100).
		Return([]*models.RiskZone{}, nil).
		Times(1)

	_, err := service.ListZones(ctx, models.ZoneFilter{}, -5, 5000)

	require.NoError(t, err)
}

func TestFindZoneByCoordinates_UsesConfiguredTolerance(t *testing.T) {
	service, repoMock, _ := newTestZoneService(t)
	ctx := context.Background()
	expected := validZone()

	repoMock.EXPECT().
		FindByCoordinates(ctx, 56.01, 92.87, 0.01).
		Return(expected, nil).
		Times(1)

	zone, err := service.FindZoneByCoordinates(ctx, 56.01, 92.87)

	require.NoError(t, err)
	assert.Equal(t, expected, zone)
}

func TestUpdateZone_Success_MergesFields(t *testing.T) {
	service, repoMock, _ := newTestZoneService(t)
	ctx := context.Background()
	existing := validZone()
	existing.ID = 5

	newLevel := 0.3
	newCategory := models.RiskCategoryLow
	update := &models.RiskZoneUpdate{
		RiskLevel:    &newLevel,
		RiskCategory: &newCategory,
	}

	repoMock.EXPECT().GetByID(ctx, int64(5)).Return(existing, nil).Times(1)
	repoMock.EXPECT().Update(ctx, gomock.Any()).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateZoneCache(ctx, int64(5)).Return(nil).Times(1)

	zone, err := service.UpdateZone(ctx, 5, update)

	require.NoError(t, err)
	assert.Equal(t, 0.3, zone.RiskLevel)
	assert.Equal(t, models.RiskCategoryLow, zone.RiskCategory)
	// Untouched fields survive the merge.
	assert.Equal(t, "Siberian Taiga", zone.RegionName)
}

func TestUpdateZone_NotFound(t *testing.T) {
	service, repoMock, _ := newTestZoneService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetByID(ctx, int64(42)).Return(nil, apperr.ErrNotFound).Times(1)

	zone, err := service.UpdateZone(ctx, 42, &models.RiskZoneUpdate{})

	require.Error(t, err)
	assert.Nil(t, zone)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateZone_InvalidUpdate(t *testing.T) {
	service, _, _ := newTestZoneService(t)
	bad := -0.2

	zone, err := service.UpdateZone(context.Background(), 5, &models.RiskZoneUpdate{RiskLevel: &bad})

	require.Error(t, err)
	assert.Nil(t, zone)
	assert.True(t, apperr.IsValidation(err))
}

func TestDeleteZone_PassesCascadeFlag(t *testing.T) {
	service, repoMock, _ := newTestZoneService(t)
	ctx := context.Background()
	service.cfg.ZoneDeleteCascade = true

	repoMock.EXPECT().Delete(ctx, int64(8), true).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateZoneCache(ctx, int64(8)).Return(nil).Times(1)

	err := service.DeleteZone(ctx, 8)

	require.NoError(t, err)
}

func TestDeleteZone_RepositoryError(t *testing.T) {
	service, repoMock, _ := newTestZoneService(t)
	ctx := context.Background()
	repoErr := fmt.Errorf("connection reset")

	repoMock.EXPECT().Delete(ctx, int64(8), false).Return(repoErr).Times(1)

	err := service.DeleteZone(ctx, 8)

	require.Error(t, err)
	assert.ErrorContains(t, err, "could not delete risk zone")
}
