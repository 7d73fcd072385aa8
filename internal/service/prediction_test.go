package service

import (
	"bytes"
	"context"
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

func newTestPredictionService(t *testing.T) (*predictionService, *mocks.MockZoneService, *mocks.MockZoneRepository, *mocks.MockAlertService, *clockwork.FakeClock) {
	ctrl := gomock.NewController(t)
	zoneSvcMock := mocks.NewMockZoneService(ctrl)
	zoneRepoMock := mocks.NewMockZoneRepository(ctrl)
	alertSvcMock := mocks.NewMockAlertService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		CoordinateTolerance:   0.01,
		DefaultAlertThreshold: 0.7,
	}
	clock := clockwork.NewFakeClockAt(time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC))

	svc := NewPredictionService(zoneSvcMock, zoneRepoMock, alertSvcMock, logger, cfg, clock)
	return svc.(*predictionService), zoneSvcMock, zoneRepoMock, alertSvcMock, clock
}

func TestRiskCategoryFor(t *testing.T) {
	assert.Equal(t, models.RiskCategoryHigh, RiskCategoryFor(0.71))
	assert.Equal(t, models.RiskCategoryMedium, RiskCategoryFor(0.7), "0.7 itself is Medium")
	assert.Equal(t, models.RiskCategoryMedium, RiskCategoryFor(0.41))
	assert.Equal(t, models.RiskCategoryLow, RiskCategoryFor(0.4), "0.4 itself is Low")
	assert.Equal(t, models.RiskCategoryLow, RiskCategoryFor(0))
}

func TestPredictFireRisk_ReusesRecentAssessment(t *testing.T) {
	service, _, zoneRepoMock, _, clock := newTestPredictionService(t)
	ctx := context.Background()
	user := &models.User{ID: 1}
	existing := &models.RiskZone{
		ID:        3,
		Latitude:  56.01,
		Longitude: 92.87,
		Timestamp: clock.Now().Add(-30 * time.Minute),
	}

	zoneRepoMock.EXPECT().
		FindByCoordinates(ctx, 56.01, 92.87, 0.01).
		Return(existing, nil).
		Times(1)

	zone, err := service.PredictFireRisk(ctx, user, 56.01, 92.87, "")

	require.NoError(t, err)
	assert.Equal(t, int64(3), zone.ID)
}

func TestPredictFireRisk_StaleAssessment_GeneratesNew(t *testing.T) {
	service, zoneSvcMock, zoneRepoMock, alertSvcMock, clock := newTestPredictionService(t)
	ctx := context.Background()
	user := &models.User{ID: 1}
	stale := &models.RiskZone{
		ID:        3,
		Timestamp: clock.Now().Add(-2 * time.Hour),
	}

	zoneRepoMock.EXPECT().
		FindByCoordinates(ctx, 56.01, 92.87, 0.01).
		Return(stale, nil).
		Times(1)
	zoneSvcMock.EXPECT().
		CreateZone(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, z *models.RiskZone) error {
			z.ID = 4
			return nil
		}).Times(1)
	alertSvcMock.EXPECT().
		EvaluateZone(ctx, user, gomock.Any()).
		Return(nil, false, nil).
		Times(1)

	zone, err := service.PredictFireRisk(ctx, user, 56.01, 92.87, "Krasnoyarsk Krai")

	require.NoError(t, err)
	assert.Equal(t, int64(4), zone.ID)
	assert.Equal(t, "Krasnoyarsk Krai", zone.RegionName)
	assert.Equal(t, "DemoRandomModel", zone.PredictionModel)
	assert.Equal(t, RiskCategoryFor(zone.RiskLevel), zone.RiskCategory)
	assert.GreaterOrEqual(t, zone.RiskLevel, 0.0)
	assert.LessOrEqual(t, zone.RiskLevel, 1.0)
	assert.Equal(t, clock.Now().UTC(), zone.Timestamp)
}

func TestPredictFireRisk_NoExistingZone_DefaultsRegionName(t *testing.T) {
	service, zoneSvcMock, zoneRepoMock, alertSvcMock, _ := newTestPredictionService(t)
	ctx := context.Background()
	user := &models.User{ID: 1}

	zoneRepoMock.EXPECT().
		FindByCoordinates(ctx, 56.01, 92.87, 0.01).
		Return(nil, apperr.ErrNotFound).
		Times(1)
	zoneSvcMock.EXPECT().CreateZone(ctx, gomock.Any()).Return(nil).Times(1)
	alertSvcMock.EXPECT().EvaluateZone(ctx, user, gomock.Any()).Return(nil, false, nil).Times(1)

	zone, err := service.PredictFireRisk(ctx, user, 56.01, 92.87, "")

	require.NoError(t, err)
	assert.Equal(t, "Region near 56.01, 92.87", zone.RegionName)
}

func TestPredictFireRisk_AlertEvaluationFailureIsNotFatal(t *testing.T) {
	service, zoneSvcMock, zoneRepoMock, alertSvcMock, _ := newTestPredictionService(t)
	ctx := context.Background()
	user := &models.User{ID: 1}

	zoneRepoMock.EXPECT().
		FindByCoordinates(ctx, 56.01, 92.87, 0.01).
		Return(nil, apperr.ErrNotFound).
		Times(1)
	zoneSvcMock.EXPECT().CreateZone(ctx, gomock.Any()).Return(nil).Times(1)
	alertSvcMock.EXPECT().
		EvaluateZone(ctx, user, gomock.Any()).
		Return(nil, false, apperr.ErrNotFound).
		Times(1)

	zone, err := service.PredictFireRisk(ctx, user, 56.01, 92.87, "")

	require.NoError(t, err)
	require.NotNil(t, zone)
}

func TestPredictFireSpread_HoursOutOfRange(t *testing.T) {
	service, _, _, _, _ := newTestPredictionService(t)
	ctx := context.Background()

	for _, hours := range []int{0, -1, 169} {
		forecast, err := service.PredictFireSpread(ctx, 3, hours)
		require.Error(t, err)
		assert.Nil(t, forecast)
		assert.True(t, apperr.IsValidation(err))
	}
}

func TestPredictFireSpread_Success(t *testing.T) {
	service, zoneSvcMock, _, _, clock := newTestPredictionService(t)
	ctx := context.Background()
	wind := 12.0
	zone := &models.RiskZone{
		ID:        3,
		Latitude:  56.01,
		Longitude: 92.87,
		RiskLevel: 0.6,
		WindSpeed: &wind,
	}

	zoneSvcMock.EXPECT().GetZone(ctx, int64(3)).Return(zone, nil).Times(1)

	forecast, err := service.PredictFireSpread(ctx, 3, 24)

	require.NoError(t, err)
	require.Len(t, forecast.SpreadPoints, 24)
	assert.Equal(t, zone, forecast.Zone)
	// windFactor 1.2 * riskFactor 1.2 * 24 hours.
	assert.InDelta(t, 1.2*1.2*24, forecast.MaxSpreadDistanceKm, 1e-9)
	assert.GreaterOrEqual(t, forecast.WindDirectionDeg, 0.0)
	assert.Less(t, forecast.WindDirectionDeg, 360.0)

	first := forecast.SpreadPoints[0]
	last := forecast.SpreadPoints[23]
	assert.Equal(t, clock.Now().UTC().Add(time.Hour), first.Timestamp)
	assert.Equal(t, clock.Now().UTC().Add(24*time.Hour), last.Timestamp)
	assert.InDelta(t, 0.61, first.RiskLevel, 1e-9)
	assert.InDelta(t, 0.84, last.RiskLevel, 1e-9)
}

func TestPredictFireSpread_RiskLevelCappedAtOne(t *testing.T) {
	service, zoneSvcMock, _, _, _ := newTestPredictionService(t)
	ctx := context.Background()
	zone := &models.RiskZone{ID: 3, RiskLevel: 0.95}

	zoneSvcMock.EXPECT().GetZone(ctx, int64(3)).Return(zone, nil).Times(1)

	forecast, err := service.PredictFireSpread(ctx, 3, 48)

	require.NoError(t, err)
	for _, p := range forecast.SpreadPoints {
		assert.LessOrEqual(t, p.RiskLevel, 1.0)
	}
	assert.Equal(t, 1.0, forecast.SpreadPoints[47].RiskLevel)
}

func TestPredictFireSpread_ZoneNotFound(t *testing.T) {
	service, zoneSvcMock, _, _, _ := newTestPredictionService(t)
	ctx := context.Background()

	zoneSvcMock.EXPECT().GetZone(ctx, int64(9)).Return(nil, apperr.ErrNotFound).Times(1)

	forecast, err := service.PredictFireSpread(ctx, 9, 24)

	require.Error(t, err)
	assert.Nil(t, forecast)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
