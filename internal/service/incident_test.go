package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shenikar/wildfire_risk_service/internal/apperr"
	"github.com/shenikar/wildfire_risk_service/internal/models"
	"github.com/shenikar/wildfire_risk_service/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestIncidentService(t *testing.T) (*incidentService, *mocks.MockIncidentRepository, *mocks.MockZoneRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)
	zoneMock := mocks.NewMockZoneRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	svc := NewIncidentService(repoMock, zoneMock, logger)
	return svc.(*incidentService), repoMock, zoneMock
}

func validIncident() *models.Incident {
	return &models.Incident{
		RiskZoneID: 3,
		Latitude:   56.01,
		Longitude:  92.87,
		StartDate:  time.Date(2025, 6, 20, 8, 0, 0, 0, time.UTC),
		Severity:   models.SeverityHigh,
		Status:     models.IncidentStatusActive,
		Source:     models.IncidentSourceSatellite,
	}
}

func TestCreateIncident_Success(t *testing.T) {
	service, repoMock, zoneMock := newTestIncidentService(t)
	ctx := context.Background()
	incident := validIncident()

	zoneMock.EXPECT().GetByID(ctx, int64(3)).Return(&models.RiskZone{ID: 3}, nil).Times(1)
	repoMock.EXPECT().
		Create(ctx, incident).
		DoAndReturn(func(ctx context.Context, in *models.Incident) error {
			in.ID = 11
			return nil
		}).Times(1)

	err := service.CreateIncident(ctx, incident)

	require.NoError(t, err)
	assert.Equal(t, int64(11), incident.ID)
}

func TestCreateIncident_ZoneNotFound(t *testing.T) {
	service, _, zoneMock := newTestIncidentService(t)
	ctx := context.Background()
	incident := validIncident()

	zoneMock.EXPECT().GetByID(ctx, int64(3)).Return(nil, apperr.ErrNotFound).Times(1)

	err := service.CreateIncident(ctx, incident)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCreateIncident_EndDateBeforeStart(t *testing.T) {
	service, _, _ := newTestIncidentService(t)
	incident := validIncident()
	end := incident.StartDate.Add(-time.Hour)
	incident.EndDate = &end

	err := service.CreateIncident(context.Background(), incident)

	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.ErrorContains(t, err, "end_date")
}

func TestCreateIncident_UnknownSource(t *testing.T) {
	service, _, _ := newTestIncidentService(t)
	incident := validIncident()
	incident.Source = "Rumor"

	err := service.CreateIncident(context.Background(), incident)

	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.ErrorContains(t, err, "source")
}

func TestCreateIncident_NegativeArea(t *testing.T) {
	service, _, _ := newTestIncidentService(t)
	incident := validIncident()
	area := -1.5
	incident.AreaAffected = &area

	err := service.CreateIncident(context.Background(), incident)

	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestUpdateIncident_Success_MergesFields(t *testing.T) {
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	existing := validIncident()
	existing.ID = 11

	newStatus := models.IncidentStatusContained
	end := existing.StartDate.Add(48 * time.Hour)
	update := &models.IncidentUpdate{
		Status:  &newStatus,
		EndDate: &end,
	}

	repoMock.EXPECT().GetByID(ctx, int64(11)).Return(existing, nil).Times(1)
	repoMock.EXPECT().Update(ctx, gomock.Any()).Return(nil).Times(1)

	incident, err := service.UpdateIncident(ctx, 11, update)

	require.NoError(t, err)
	assert.Equal(t, models.IncidentStatusContained, incident.Status)
	require.NotNil(t, incident.EndDate)
	assert.Equal(t, end, *incident.EndDate)
	assert.Equal(t, models.SeverityHigh, incident.Severity)
}

func TestUpdateIncident_NotFound(t *testing.T) {
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetByID(ctx, int64(11)).Return(nil, apperr.ErrNotFound).Times(1)

	incident, err := service.UpdateIncident(ctx, 11, &models.IncidentUpdate{})

	require.Error(t, err)
	assert.Nil(t, incident)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateIncident_MergedStateInvalid(t *testing.T) {
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	existing := validIncident()
	existing.ID = 11

	bad := "Critical"
	repoMock.EXPECT().GetByID(ctx, int64(11)).Return(existing, nil).Times(1)

	incident, err := service.UpdateIncident(ctx, 11, &models.IncidentUpdate{Severity: &bad})

	require.Error(t, err)
	assert.Nil(t, incident)
	assert.True(t, apperr.IsValidation(err))
}

func TestListIncidents_PassesFilter(t *testing.T) {
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	filter := models.IncidentFilter{Status: models.IncidentStatusActive, RegionName: "Taiga"}

	repoMock.EXPECT().
		List(ctx, filter, 0, 10).
		Return([]*models.Incident{{ID: 11}}, nil).
		Times(1)

	incidents, err := service.ListIncidents(ctx, filter, 0, 10)

	require.NoError(t, err)
	require.Len(t, incidents, 1)
	assert.Equal(t, int64(11), incidents[0].ID)
}

func TestDeleteIncident_Success(t *testing.T) {
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()

	repoMock.EXPECT().Delete(ctx, int64(11)).Return(nil).Times(1)

	err := service.DeleteIncident(ctx, 11)

	require.NoError(t, err)
}
