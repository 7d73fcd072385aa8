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
	"github.com/shenikar/wildfire_risk_service/internal/notifier"
	notifiermocks "github.com/shenikar/wildfire_risk_service/internal/notifier/mocks"
	"github.com/shenikar/wildfire_risk_service/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAlertService(t *testing.T) (*alertService, *mocks.MockAlertRepository, *mocks.MockRegionRepository, *notifiermocks.MockAlertPublisher, *clockwork.FakeClock) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockAlertRepository(ctrl)
	regionMock := mocks.NewMockRegionRepository(ctrl)
	publisherMock := notifiermocks.NewMockAlertPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		DefaultAlertThreshold: 0.7,
		CoordinateTolerance:   0.01,
	}
	clock := clockwork.NewFakeClockAt(time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC))

	svc := NewAlertService(repoMock, regionMock, publisherMock, logger, cfg, clock)
	return svc.(*alertService), repoMock, regionMock, publisherMock, clock
}

func TestShouldAlert(t *testing.T) {
	assert.True(t, ShouldAlert(0.8, 0.7))
	assert.True(t, ShouldAlert(0.7, 0.7), "boundary equality triggers an alert")
	assert.False(t, ShouldAlert(0.69, 0.7))
}

func TestEvaluateZone_BelowThreshold_NoAlert(t *testing.T) {
	service, _, regionMock, publisherMock, _ := newTestAlertService(t)
	ctx := context.Background()
	user := &models.User{ID: 1, AlertThreshold: 0.9}
	zone := &models.RiskZone{ID: 2, RegionName: "Altai Mountains", Latitude: 51.0, Longitude: 85.9, RiskLevel: 0.5}

	regionMock.EXPECT().
		FindForUserAt(ctx, int64(1), 51.0, 85.9, 0.01).
		Return(nil, apperr.ErrNotFound).
		Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	alert, created, err := service.EvaluateZone(ctx, user, zone)

	require.NoError(t, err)
	assert.False(t, created)
	assert.Nil(t, alert)
}

func TestEvaluateZone_UserThresholdMet_CreatesAlert(t *testing.T) {
	service, repoMock, regionMock, publisherMock, clock := newTestAlertService(t)
	ctx := context.Background()
	user := &models.User{ID: 1, AlertThreshold: 0.6}
	zone := &models.RiskZone{ID: 2, RegionName: "Altai Mountains", Latitude: 51.0, Longitude: 85.9, RiskLevel: 0.75}

	regionMock.EXPECT().
		FindForUserAt(ctx, int64(1), 51.0, 85.9, 0.01).
		Return(nil, apperr.ErrNotFound).
		Times(1)
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, a *models.Alert) error {
			a.ID = 10
			return nil
		}).Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, event notifier.AlertEvent) error {
			assert.Equal(t, int64(1), event.UserID)
			assert.Equal(t, int64(2), event.RiskZoneID)
			return nil
		}).Times(1)

	alert, created, err := service.EvaluateZone(ctx, user, zone)

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(10), alert.ID)
	assert.Equal(t, "High fire risk detected in Altai Mountains. Risk level: 0.75", alert.Message)
	assert.Equal(t, clock.Now().UTC(), alert.AlertTime)
	assert.False(t, alert.IsRead)
}

func TestEvaluateZone_RegionOverrideLowersThreshold(t *testing.T) {
	service, repoMock, regionMock, publisherMock, _ := newTestAlertService(t)
	ctx := context.Background()
	// Global threshold would not fire, but the saved region's lower one does.
	user := &models.User{ID: 1, AlertThreshold: 0.9}
	zone := &models.RiskZone{ID: 2, RegionName: "Altai Mountains", Latitude: 51.0, Longitude: 85.9, RiskLevel: 0.5}
	region := &models.SavedRegion{ID: 4, UserID: 1, AlertThreshold: 0.4}

	regionMock.EXPECT().
		FindForUserAt(ctx, int64(1), 51.0, 85.9, 0.01).
		Return(region, nil).
		Times(1)
	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	_, created, err := service.EvaluateZone(ctx, user, zone)

	require.NoError(t, err)
	assert.True(t, created)
}

func TestEvaluateZone_ZeroUserThreshold_FallsBackToDefault(t *testing.T) {
	service, _, regionMock, publisherMock, _ := newTestAlertService(t)
	ctx := context.Background()
	user := &models.User{ID: 1, AlertThreshold: 0}
	zone := &models.RiskZone{ID: 2, Latitude: 51.0, Longitude: 85.9, RiskLevel: 0.65}

	regionMock.EXPECT().
		FindForUserAt(ctx, int64(1), 51.0, 85.9, 0.01).
		Return(nil, apperr.ErrNotFound).
		Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// 0.65 is below the configured 0.7 default.
	_, created, err := service.EvaluateZone(ctx, user, zone)

	require.NoError(t, err)
	assert.False(t, created)
}

func TestEvaluateZone_RegionLookupError(t *testing.T) {
	service, _, regionMock, _, _ := newTestAlertService(t)
	ctx := context.Background()
	user := &models.User{ID: 1}
	zone := &models.RiskZone{ID: 2, Latitude: 51.0, Longitude: 85.9, RiskLevel: 0.99}

	regionMock.EXPECT().
		FindForUserAt(ctx, int64(1), 51.0, 85.9, 0.01).
		Return(nil, fmt.Errorf("connection refused")).
		Times(1)

	alert, created, err := service.EvaluateZone(ctx, user, zone)

	require.Error(t, err)
	assert.False(t, created)
	assert.Nil(t, alert)
	assert.ErrorContains(t, err, "could not resolve alert threshold")
}

func TestCreateAlert_PublishFailureIsNotFatal(t *testing.T) {
	service, repoMock, _, publisherMock, _ := newTestAlertService(t)
	ctx := context.Background()

	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(fmt.Errorf("redis unavailable")).
		Times(1)

	alert, err := service.CreateAlert(ctx, 1, 2, 0.8, "test alert")

	require.NoError(t, err)
	assert.Equal(t, "test alert", alert.Message)
}

func TestMarkAlertRead_Success(t *testing.T) {
	service, repoMock, _, _, _ := newTestAlertService(t)
	ctx := context.Background()
	expected := &models.Alert{ID: 5, UserID: 1, IsRead: true}

	repoMock.EXPECT().SetRead(ctx, int64(5), int64(1), true).Return(nil).Times(1)
	repoMock.EXPECT().GetForUser(ctx, int64(5), int64(1)).Return(expected, nil).Times(1)

	alert, err := service.MarkAlertRead(ctx, 5, 1)

	require.NoError(t, err)
	assert.True(t, alert.IsRead)
}

func TestMarkAlertRead_NotFound(t *testing.T) {
	service, repoMock, _, _, _ := newTestAlertService(t)
	ctx := context.Background()

	repoMock.EXPECT().SetRead(ctx, int64(5), int64(1), true).Return(apperr.ErrNotFound).Times(1)

	alert, err := service.MarkAlertRead(ctx, 5, 1)

	require.Error(t, err)
	assert.Nil(t, alert)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestListAlerts_PassesReadFilter(t *testing.T) {
	service, repoMock, _, _, _ := newTestAlertService(t)
	ctx := context.Background()
	unread := false

	repoMock.EXPECT().
		ListForUser(ctx, int64(1), &unread, 0, 10).
		Return([]*models.Alert{{ID: 5}}, nil).
		Times(1)

	alerts, err := service.ListAlerts(ctx, 1, &unread, 0, 10)

	require.NoError(t, err)
	require.Len(t, alerts, 1)
}

func TestDeleteAlert_Forbidden(t *testing.T) {
	service, repoMock, _, _, _ := newTestAlertService(t)
	ctx := context.Background()

	// The repo keeps other users' alerts invisible, so a foreign ID reads as
	// not found rather than forbidden.
	repoMock.EXPECT().DeleteForUser(ctx, int64(5), int64(2)).Return(apperr.ErrNotFound).Times(1)

	err := service.DeleteAlert(ctx, 5, 2)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
