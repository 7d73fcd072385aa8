package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/wildfire_risk_service/internal/apperr"
	"github.com/shenikar/wildfire_risk_service/internal/config"
	"github.com/shenikar/wildfire_risk_service/internal/models"
	"github.com/sirupsen/logrus"
)

// predictionFreshness is how long an existing assessment at the same
// coordinates is reused instead of generating a new one.
const predictionFreshness = time.Hour

// placeholderModelName marks zones produced by the randomized stand-in
// until a real model is plugged in.
const placeholderModelName = "DemoRandomModel"

var vegetationTypes = []string{"Forest", "Grassland", "Shrubland", "Mixed"}

// SpreadPoint is one step of a projected fire front.
type SpreadPoint struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
	RiskLevel float64   `json:"risk_level"`
}

// SpreadForecast is a projected fire spread from an assessed zone.
type SpreadForecast struct {
	Zone                *models.RiskZone `json:"original_zone"`
	SpreadPoints        []SpreadPoint    `json:"spread_points"`
	MaxSpreadDistanceKm float64          `json:"max_spread_distance_km"`
	WindDirectionDeg    float64          `json:"wind_direction_degrees"`
}

// PredictionService produces risk assessments. The current implementation
// generates randomized placeholder values; it carries no real model.
type PredictionService interface {
	PredictFireRisk(ctx context.Context, user *models.User, lat, lon float64, regionName string) (*models.RiskZone, error)
	PredictFireSpread(ctx context.Context, zoneID int64, hoursAhead int) (*SpreadForecast, error)
}

type predictionService struct {
	zones  ZoneService
	zoneRp ZoneRepository
	alerts AlertService
	logger *logrus.Logger
	cfg    *config.Config
	clock  clockwork.Clock
}

func NewPredictionService(zones ZoneService, zoneRepo ZoneRepository, alerts AlertService, logger *logrus.Logger, cfg *config.Config, clock clockwork.Clock) PredictionService {
	return &predictionService{
		zones:  zones,
		zoneRp: zoneRepo,
		alerts: alerts,
		logger: logger,
		cfg:    cfg,
		clock:  clock,
	}
}

// RiskCategoryFor bands a risk level into a category.
func RiskCategoryFor(riskLevel float64) string {
	switch {
	case riskLevel > 0.7:
		return models.RiskCategoryHigh
	case riskLevel > 0.4:
		return models.RiskCategoryMedium
	default:
		return models.RiskCategoryLow
	}
}

// PredictFireRisk returns a fresh assessment for the coordinates. A recent
// existing zone at the same location is reused; otherwise a new zone with
// randomized placeholder conditions is created, and the caller's alert
// threshold is evaluated against it.
func (s *predictionService) PredictFireRisk(ctx context.Context, user *models.User, lat, lon float64, regionName string) (*models.RiskZone, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "prediction",
		"method":    "PredictFireRisk",
		"user_id":   user.ID,
		"latitude":  lat,
		"longitude": lon,
	})
	log.Info("Predicting fire risk")

	existing, err := s.zoneRp.FindByCoordinates(ctx, lat, lon, s.cfg.CoordinateTolerance)
	switch {
	case err == nil:
		if existing.Timestamp.After(s.clock.Now().Add(-predictionFreshness)) {
			log.WithField("zone_id", existing.ID).Info("Reusing recent assessment")
			return existing, nil
		}
	case errors.Is(err, apperr.ErrNotFound):
		// No assessment at these coordinates yet.
	default:
		log.WithError(err).Error("Failed to look up existing assessment")
		return nil, fmt.Errorf("service: could not look up existing assessment: %w", err)
	}

	zone := s.generateZone(lat, lon, regionName)
	if err := s.zones.CreateZone(ctx, zone); err != nil {
		return nil, err
	}

	if _, created, err := s.alerts.EvaluateZone(ctx, user, zone); err != nil {
		// The assessment itself succeeded; a failed evaluation is logged
		// and not surfaced to the caller.
		log.WithError(err).Warn("Alert evaluation failed for new assessment")
	} else if created {
		log.WithField("zone_id", zone.ID).Info("Alert created for new assessment")
	}

	return zone, nil
}

// generateZone produces randomized placeholder values in the ranges the
// eventual model is expected to emit.
func (s *predictionService) generateZone(lat, lon float64, regionName string) *models.RiskZone {
	riskLevel := rand.Float64()

	if regionName == "" {
		regionName = fmt.Sprintf("Region near %.2f, %.2f", lat, lon)
	}

	temperature := randRange(15, 35)  // Celsius
	humidity := randRange(20, 80)     // percent
	windSpeed := randRange(0, 25)     // km/h
	precipitation := randRange(0, 10) // mm
	vegetationDensity := rand.Float64()
	vegetationType := vegetationTypes[rand.IntN(len(vegetationTypes))]
	soilMoisture := rand.Float64()

	return &models.RiskZone{
		RegionName:        regionName,
		Latitude:          lat,
		Longitude:         lon,
		RiskLevel:         riskLevel,
		RiskCategory:      RiskCategoryFor(riskLevel),
		Timestamp:         s.clock.Now().UTC(),
		Temperature:       &temperature,
		Humidity:          &humidity,
		WindSpeed:         &windSpeed,
		Precipitation:     &precipitation,
		VegetationDensity: &vegetationDensity,
		VegetationType:    &vegetationType,
		SoilMoisture:      &soilMoisture,
		PredictionModel:   placeholderModelName,
		ConfidenceScore:   randRange(0.7, 0.99),
	}
}

// PredictFireSpread projects hourly spread points from a zone. Placeholder
// math: wind and risk scale a planar step in a random wind direction.
func (s *predictionService) PredictFireSpread(ctx context.Context, zoneID int64, hoursAhead int) (*SpreadForecast, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "prediction",
		"method":      "PredictFireSpread",
		"zone_id":     zoneID,
		"hours_ahead": hoursAhead,
	})
	log.Info("Predicting fire spread")

	if hoursAhead < 1 || hoursAhead > 168 {
		return nil, apperr.Validation("hours_ahead", "must be within [1, 168]")
	}

	zone, err := s.zones.GetZone(ctx, zoneID)
	if err != nil {
		return nil, err
	}

	windFactor := 0.1
	if zone.WindSpeed != nil && *zone.WindSpeed > 0 {
		windFactor = *zone.WindSpeed / 10
	}
	windDirection := randRange(0, 360)
	riskFactor := zone.RiskLevel * 2

	lat, lon := zone.Latitude, zone.Longitude
	now := s.clock.Now().UTC()
	angleRad := windDirection * math.Pi / 180

	points := make([]SpreadPoint, 0, hoursAhead)
	for hour := 1; hour <= hoursAhead; hour++ {
		// Distance in degrees, deliberately approximate.
		distance := windFactor * riskFactor * 0.01

		lat += distance * math.Cos(angleRad)
		lon += distance * math.Sin(angleRad)

		lat += randRange(-0.005, 0.005)
		lon += randRange(-0.005, 0.005)

		points = append(points, SpreadPoint{
			Latitude:  lat,
			Longitude: lon,
			Timestamp: now.Add(time.Duration(hour) * time.Hour),
			RiskLevel: math.Min(1.0, zone.RiskLevel+float64(hour)*0.01),
		})
	}

	return &SpreadForecast{
		Zone:                zone,
		SpreadPoints:        points,
		MaxSpreadDistanceKm: windFactor * riskFactor * float64(hoursAhead),
		WindDirectionDeg:    windDirection,
	}, nil
}

func randRange(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}
