package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/wildfire_risk_service/internal/apperr"
	"github.com/shenikar/wildfire_risk_service/internal/config"
	"github.com/shenikar/wildfire_risk_service/internal/models"
	"github.com/shenikar/wildfire_risk_service/internal/service"
	"github.com/shenikar/wildfire_risk_service/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	zones       *mocks.MockZoneService
	incidents   *mocks.MockIncidentService
	alerts      *mocks.MockAlertService
	regions     *mocks.MockRegionService
	users       *mocks.MockUserService
	predictions *mocks.MockPredictionService
}

func newTestHandler(t *testing.T) (*Handler, *serviceMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	sm := &serviceMocks{
		zones:       mocks.NewMockZoneService(ctrl),
		incidents:   mocks.NewMockIncidentService(ctrl),
		alerts:      mocks.NewMockAlertService(ctrl),
		regions:     mocks.NewMockRegionService(ctrl),
		users:       mocks.NewMockUserService(ctrl),
		predictions: mocks.NewMockPredictionService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
	}

	handler := NewHandler(sm.zones, sm.incidents, sm.alerts, sm.regions, sm.users, sm.predictions, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, sm, router
}

func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// authHeaders issues a bearer token for the user and arranges for the auth
// middleware to resolve it back to the same user.
func authHeaders(t *testing.T, sm *serviceMocks, user *models.User) map[string]string {
	t.Helper()
	sm.users.EXPECT().GetUser(gomock.Any(), user.ID).Return(user, nil).AnyTimes()
	token, err := issueToken(user, "test-secret", time.Hour, time.Now())
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + token}
}

func regularUser() *models.User {
	return &models.User{ID: 1, Email: "anna@example.com", Username: "anna", IsActive: true, AlertThreshold: 0.7}
}

func superUser() *models.User {
	return &models.User{ID: 2, Email: "admin@example.com", Username: "admin", IsActive: true, IsSuperuser: true}
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestLogin_Success(t *testing.T) {
	_, sm, router := newTestHandler(t)
	user := regularUser()

	sm.users.EXPECT().
		Authenticate(gomock.Any(), "anna@example.com", "secret123").
		Return(user, nil).
		Times(1)

	body, _ := json.Marshal(LoginRequest{Email: "anna@example.com", Password: "secret123"})
	w := makeRequest(router, "POST", "/api/v1/auth/login", bytes.NewBuffer(body))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "bearer", resp.TokenType)

	claims, err := parseToken(resp.AccessToken, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, "anna@example.com", claims.Subject)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	_, sm, router := newTestHandler(t)

	sm.users.EXPECT().
		Authenticate(gomock.Any(), "anna@example.com", "wrong").
		Return(nil, fmt.Errorf("service: invalid credentials: %w", apperr.ErrUnauthorized)).
		Times(1)

	body, _ := json.Marshal(LoginRequest{Email: "anna@example.com", Password: "wrong"})
	w := makeRequest(router, "POST", "/api/v1/auth/login", bytes.NewBuffer(body))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_ValidationError(t *testing.T) {
	_, sm, router := newTestHandler(t)

	sm.users.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	body, _ := json.Marshal(LoginRequest{Email: "not-an-email", Password: "secret123"})
	w := makeRequest(router, "POST", "/api/v1/auth/login", bytes.NewBuffer(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Email' failed on the 'email' tag")
}

func TestRegisterUser_Success(t *testing.T) {
	_, sm, router := newTestHandler(t)

	sm.users.EXPECT().
		CreateUser(gomock.Any(), gomock.Any(), "secret123").
		DoAndReturn(func(_ context.Context, u *models.User, password string) error {
			u.ID = 1
			u.IsActive = true
			return nil
		}).Times(1)

	body, _ := json.Marshal(RegisterUserRequest{
		Email:    "anna@example.com",
		Username: "anna",
		Password: "secret123",
	})
	w := makeRequest(router, "POST", "/api/v1/users", bytes.NewBuffer(body))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "anna", resp.Username)
	assert.True(t, resp.IsActive)
	assert.NotContains(t, w.Body.String(), "secret123")
}

func TestRegisterUser_ShortPassword(t *testing.T) {
	_, sm, router := newTestHandler(t)

	sm.users.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	body, _ := json.Marshal(RegisterUserRequest{
		Email:    "anna@example.com",
		Username: "anna",
		Password: "short",
	})
	w := makeRequest(router, "POST", "/api/v1/users", bytes.NewBuffer(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Password' failed on the 'min' tag")
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	_, sm, router := newTestHandler(t)

	sm.users.EXPECT().
		CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("service: could not create user: %w", apperr.ErrConflict)).
		Times(1)

	body, _ := json.Marshal(RegisterUserRequest{
		Email:    "anna@example.com",
		Username: "anna",
		Password: "secret123",
	})
	w := makeRequest(router, "POST", "/api/v1/users", bytes.NewBuffer(body))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/zones", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "bearer token required")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/zones", nil, map[string]string{"Authorization": "Bearer not-a-token"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid token")
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	_, _, router := newTestHandler(t)

	token, err := issueToken(regularUser(), "test-secret", time.Hour, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	w := makeRequest(router, "GET", "/api/v1/zones", nil, map[string]string{"Authorization": "Bearer " + token})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid token")
}

func TestAuthMiddleware_DeactivatedUser(t *testing.T) {
	_, sm, router := newTestHandler(t)
	user := regularUser()
	user.IsActive = false
	headers := authHeaders(t, sm, user)

	w := makeRequest(router, "GET", "/api/v1/zones", nil, headers)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "account is inactive")
}

func TestCreateZone_RequiresSuperuser(t *testing.T) {
	_, sm, router := newTestHandler(t)
	headers := authHeaders(t, sm, regularUser())

	sm.zones.EXPECT().CreateZone(gomock.Any(), gomock.Any()).Times(0)

	body, _ := json.Marshal(CreateZoneRequest{
		RegionName:      "Siberian Taiga",
		Latitude:        56.01,
		Longitude:       92.87,
		RiskLevel:       0.8,
		RiskCategory:    "High",
		PredictionModel: "DemoRandomModel",
		ConfidenceScore: 0.9,
	})
	w := makeRequest(router, "POST", "/api/v1/zones", bytes.NewBuffer(body), headers)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "superuser privilege required")
}

func TestCreateZone_Success(t *testing.T) {
	_, sm, router := newTestHandler(t)
	headers := authHeaders(t, sm, superUser())

	sm.zones.EXPECT().
		CreateZone(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, z *models.RiskZone) error {
			z.ID = 7
			z.Timestamp = time.Now().UTC()
			return nil
		}).Times(1)

	body, _ := json.Marshal(CreateZoneRequest{
		RegionName:      "Siberian Taiga",
		Latitude:        56.01,
		Longitude:       92.87,
		RiskLevel:       0.8,
		RiskCategory:    "High",
		PredictionModel: "DemoRandomModel",
		ConfidenceScore: 0.9,
	})
	w := makeRequest(router, "POST", "/api/v1/zones", bytes.NewBuffer(body), headers)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp ZoneResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "Siberian Taiga", resp.RegionName)
}

func TestCreateZone_InvalidCategory(t *testing.T) {
	_, sm, router := newTestHandler(t)
	headers := authHeaders(t, sm, superUser())

	sm.zones.EXPECT().CreateZone(gomock.Any(), gomock.Any()).Times(0)

	body, _ := json.Marshal(CreateZoneRequest{
		RegionName:      "Siberian Taiga",
		Latitude:        56.01,
		Longitude:       92.87,
		RiskLevel:       0.8,
		RiskCategory:    "Extreme",
		PredictionModel: "DemoRandomModel",
		ConfidenceScore: 0.9,
	})
	w := makeRequest(router, "POST", "/api/v1/zones", bytes.NewBuffer(body), headers)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'RiskCategory' failed on the 'oneof' tag")
}

func TestGetZone_Success(t *testing.T) {
	_, sm, router := newTestHandler(t)
	headers := authHeaders(t, sm, regularUser())
	zone := &models.RiskZone{ID: 7, RegionName: "Siberian Taiga", RiskLevel: 0.8, RiskCategory: "High"}

	sm.zones.EXPECT().GetZone(gomock.Any(), int64(7)).Return(zone, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/zones/7", nil, headers)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ZoneResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ID)
}

func TestGetZone_InvalidID(t *testing.T) {
	_, sm, router := newTestHandler(t)
	headers := authHeaders(t, sm, regularUser())

	sm.zones.EXPECT().GetZone(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/zones/abc", nil, headers)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid ID")
}

func TestGetZone_NotFound(t *testing.T) {
	_, sm, router := newTestHandler(t)
	headers := authHeaders(t, sm, regularUser())

	sm.zones.EXPECT().
		GetZone(gomock.Any(), int64(99)).
		Return(nil, fmt.Errorf("service: could not get risk zone: %w", apperr.ErrNotFound)).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/zones/99", nil, headers)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListZones_PassesFilter(t *testing.T) {
	_, sm, router := newTestHandler(t)
	headers := authHeaders(t, sm, regularUser())
	minRisk := 0.5

	sm.zones.EXPECT().
		ListZones(gomock.Any(), models.ZoneFilter{MinRiskLevel: &minRisk, RegionName: "Taiga"}, 0, 10).
		Return([]*models.RiskZone{{ID: 7}}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/zones?min_risk_level=0.5&region_name=Taiga", nil, headers)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []ZoneResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestGetZoneByCoordinates_MissingParams(t *testing.T) {
	_, sm, router := newTestHandler(t)
	headers := authHeaders(t, sm, regularUser())

	sm.zones.EXPECT().FindZoneByCoordinates(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/zones/by-coordinates?latitude=56.01", nil, headers)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "latitude and longitude query parameters are required")
}

func TestGetZoneByCoordinates_Success(t *testing.T) {
	_, sm, router := newTestHandler(t)
	headers := authHeaders(t, sm, regularUser())
	zone := &models.RiskZone{ID: 7, Latitude: 56.01, Longitude: 92.87}

	sm.zones.EXPECT().FindZoneByCoordinates(gomock.Any(), 56.01, 92.87).Return(zone, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/zones/by-coordinates?latitude=56.01&longitude=92.87", nil, headers)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateZone_Success(t *testing.T) {
	_, sm, router := newTestHandler(t)
	headers := authHeaders(t, sm, superUser())
	updated := &models.RiskZone{ID: 7, RegionName: "Siberian Taiga", RiskLevel: 0.3, RiskCategory: "Low"}

	sm.zones.EXPECT().
		UpdateZone(gomock.Any(), int64(7), gomock.Any()).
		DoAndReturn(func(_ context.Context, id int64, update *models.RiskZoneUpdate) (*models.RiskZone, error) {
			require.NotNil(t, update.RiskLevel)
			assert.Equal(t, 0.3, *update.RiskLevel)
			assert.Nil(t, update.RegionName)
			return updated, nil
		}).Times(1)

	newLevel := 0.3
	newCategory := "Low"
	body, _ := json.Marshal(UpdateZoneRequest{RiskLevel: &newLevel, RiskCategory: &newCategory})
	w := makeRequest(router, "PUT", "/api/v1/zones/7", bytes.NewBuffer(body), headers)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ZoneResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0.3, resp.RiskLevel)
}

func TestDeleteZone_Success(t *testing.T) {
	_, sm, router := newTestHandler(t)
	headers := authHeaders(t, sm, superUser())

	sm.zones.EXPECT().DeleteZone(gomock.Any(), int64(7)).Return(nil).Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/zones/7", nil, headers)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCreateIncident_Success(t *testing.T) {
	_, sm, router := newTestHandler(t)
	headers := authHeaders(t, sm, superUser())

	sm.incidents.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *models.Incident) error {
			in.ID = 11
			return nil
		}).Times(1)

	body, _ := json.Marshal(CreateIncidentRequest{
		RiskZoneID: 7,
		Latitude:   56.01,
		Longitude:  92.87,
		StartDate:  time.Date(2025, 6, 20, 8, 0, 0, 0, time.UTC),
		Severity:   "High",
		Status:     "Active",
		Source:     "Satellite",
	})
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(body), headers)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(11), resp.ID)
}

func TestCreateIncident_InvalidJSON(t *testing.T) {
	_, sm, router := newTestHandler(t)
	headers := authHeaders(t, sm, superUser())

	sm.incidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBufferString(`{"severity": "High"`), headers)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateIncident_UnknownSource(t *testing.T) {
	_, sm, router := newTestHandler(t)
	headers := authHeaders(t, sm, superUser())

	sm.incidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	body, _ := json.Marshal(CreateIncidentRequest{
		RiskZoneID: 7,
		StartDate:  time.Date(2025, 6, 20, 8, 0, 0, 0, time.UTC),
		Severity:   "High",
		Status:     "Active",
		Source:     "Rumor",
	})
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(body), headers)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Source' failed on the 'oneof' tag")
}

func TestListIncidents_ParsesDateFilter(t *testing.T) {
	_, sm, router := newTestHandler(t)
	headers := authHeaders(t, sm, regularUser())
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	sm.incidents.EXPECT().
		ListIncidents(gomock.Any(), gomock.Any(), 0, 10).
		DoAndReturn(func(_ context.Context, filter models.IncidentFilter, skip, limit int) ([]*models.Incident, error) {
			require.NotNil(t, filter.StartDateFrom)
			assert.Equal(t, from, *filter.StartDateFrom)
			assert.Equal(t, "Active", filter.Status)
			return []*models.Incident{}, nil
		}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents?start_date_from=2025-06-01T00:00:00Z&status=Active", nil, headers)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPredictFireRisk_Success(t *testing.T) {
	_, sm, router := newTestHandler(t)
	user := regularUser()
	headers := authHeaders(t, sm, user)
	zone := &models.RiskZone{ID: 7, RegionName: "Krasnoyarsk Krai", RiskLevel: 0.82, RiskCategory: "High"}

	sm.predictions.EXPECT().
		PredictFireRisk(gomock.Any(), gomock.Any(), 56.01, 92.87, "Krasnoyarsk Krai").
		DoAndReturn(func(_ context.Context, u *models.User, lat, lon float64, regionName string) (*models.RiskZone, error) {
			assert.Equal(t, user.ID, u.ID)
			return zone, nil
		}).Times(1)

	body, _ := json.Marshal(PredictRiskRequest{Latitude: 56.01, Longitude: 92.87, RegionName: "Krasnoyarsk Krai"})
	w := makeRequest(router, "POST", "/api/v1/predictions/fire-risk", bytes.NewBuffer(body), headers)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ZoneResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0.82, resp.RiskLevel)
}

func TestPredictFireSpread_DefaultsHorizon(t *testing.T) {
	_, sm, router := newTestHandler(t)
	headers := authHeaders(t, sm, regularUser())
	forecast := &service.SpreadForecast{Zone: &models.RiskZone{ID: 7}}

	// A missing hours_ahead means a 24 hour projection.
	sm.predictions.EXPECT().
		PredictFireSpread(gomock.Any(), int64(7), 24).
		Return(forecast, nil).
		Times(1)

	body, _ := json.Marshal(PredictSpreadRequest{ZoneID: 7})
	w := makeRequest(router, "POST", "/api/v1/predictions/fire-spread", bytes.NewBuffer(body), headers)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "original_zone")
}

func TestPredictFireSpread_HorizonTooLarge(t *testing.T) {
	_, sm, router := newTestHandler(t)
	headers := authHeaders(t, sm, regularUser())

	sm.predictions.EXPECT().PredictFireSpread(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	body, _ := json.Marshal(PredictSpreadRequest{ZoneID: 7, HoursAhead: 200})
	w := makeRequest(router, "POST", "/api/v1/predictions/fire-spread", bytes.NewBuffer(body), headers)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'HoursAhead' failed on the 'lte' tag")
}

func TestListAlerts_ScopedToCurrentUser(t *testing.T) {
	_, sm, router := newTestHandler(t)
	user := regularUser()
	headers := authHeaders(t, sm, user)

	sm.alerts.EXPECT().
		ListAlerts(gomock.Any(), user.ID, gomock.Any(), 0, 10).
		DoAndReturn(func(_ context.Context, userID int64, isRead *bool, skip, limit int) ([]*models.Alert, error) {
			require.NotNil(t, isRead)
			assert.False(t, *isRead)
			return []*models.Alert{{ID: 5, UserID: userID}}, nil
		}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/alerts?is_read=false", nil, headers)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []AlertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestMarkAlertRead_Success(t *testing.T) {
	_, sm, router := newTestHandler(t)
	user := regularUser()
	headers := authHeaders(t, sm, user)
	alert := &models.Alert{ID: 5, UserID: user.ID, IsRead: true}

	sm.alerts.EXPECT().MarkAlertRead(gomock.Any(), int64(5), user.ID).Return(alert, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/alerts/5/read", nil, headers)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp AlertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsRead)
}

func TestMarkAllAlertsRead_Success(t *testing.T) {
	_, sm, router := newTestHandler(t)
	user := regularUser()
	headers := authHeaders(t, sm, user)

	sm.alerts.EXPECT().MarkAllAlertsRead(gomock.Any(), user.ID).Return(nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/alerts/mark-all-read", nil, headers)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestDeleteAlert_NotFound(t *testing.T) {
	_, sm, router := newTestHandler(t)
	user := regularUser()
	headers := authHeaders(t, sm, user)

	sm.alerts.EXPECT().
		DeleteAlert(gomock.Any(), int64(5), user.ID).
		Return(fmt.Errorf("service: could not delete alert: %w", apperr.ErrNotFound)).
		Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/alerts/5", nil, headers)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateRegion_Success(t *testing.T) {
	_, sm, router := newTestHandler(t)
	user := regularUser()
	headers := authHeaders(t, sm, user)

	sm.regions.EXPECT().
		CreateRegion(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, requester *models.User, region *models.SavedRegion) error {
			assert.Equal(t, user.ID, requester.ID)
			assert.Equal(t, user.ID, region.UserID)
			region.ID = 4
			return nil
		}).Times(1)

	body, _ := json.Marshal(CreateRegionRequest{
		RegionName:     "Home",
		Latitude:       55.75,
		Longitude:      37.61,
		AlertThreshold: 0.5,
	})
	w := makeRequest(router, "POST", "/api/v1/regions", bytes.NewBuffer(body), headers)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp RegionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(4), resp.ID)
}

func TestDeleteRegion_Forbidden(t *testing.T) {
	_, sm, router := newTestHandler(t)
	user := regularUser()
	headers := authHeaders(t, sm, user)

	sm.regions.EXPECT().
		DeleteRegion(gomock.Any(), gomock.Any(), int64(4)).
		Return(fmt.Errorf("service: cannot delete another user's region: %w", apperr.ErrForbidden)).
		Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/regions/4", nil, headers)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetCurrentUser_Success(t *testing.T) {
	_, sm, router := newTestHandler(t)
	user := regularUser()
	headers := authHeaders(t, sm, user)

	w := makeRequest(router, "GET", "/api/v1/users/me", nil, headers)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, user.ID, resp.ID)
	assert.Equal(t, "anna", resp.Username)
}

func TestUpdateCurrentUser_Success(t *testing.T) {
	_, sm, router := newTestHandler(t)
	user := regularUser()
	headers := authHeaders(t, sm, user)
	newThreshold := 0.5
	updated := &models.User{ID: user.ID, Email: user.Email, Username: user.Username, IsActive: true, AlertThreshold: 0.5}

	sm.users.EXPECT().
		UpdateUser(gomock.Any(), user.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, id int64, update *models.UserUpdate) (*models.User, error) {
			require.NotNil(t, update.AlertThreshold)
			assert.Equal(t, 0.5, *update.AlertThreshold)
			return updated, nil
		}).Times(1)

	body, _ := json.Marshal(UpdateUserRequest{AlertThreshold: &newThreshold})
	w := makeRequest(router, "PUT", "/api/v1/users/me", bytes.NewBuffer(body), headers)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0.5, resp.AlertThreshold)
}

func TestListUsers_RequiresSuperuser(t *testing.T) {
	_, sm, router := newTestHandler(t)
	headers := authHeaders(t, sm, regularUser())

	sm.users.EXPECT().ListUsers(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/users", nil, headers)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "superuser privilege required")
}

func TestDeleteUser_Success(t *testing.T) {
	_, sm, router := newTestHandler(t)
	headers := authHeaders(t, sm, superUser())

	sm.users.EXPECT().DeleteUser(gomock.Any(), int64(1)).Return(nil).Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/users/1", nil, headers)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
