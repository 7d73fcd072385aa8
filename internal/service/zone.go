package service

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/wildfire_risk_service/internal/apperr"
	"github.com/shenikar/wildfire_risk_service/internal/config"
	"github.com/shenikar/wildfire_risk_service/internal/models"
	"github.com/sirupsen/logrus"
)

// ZoneRepository defines the storage contract for risk zones.
type ZoneRepository interface {
	Create(ctx context.Context, zone *models.RiskZone) error
	GetByID(ctx context.Context, id int64) (*models.RiskZone, error)
	List(ctx context.Context, filter models.ZoneFilter, skip, limit int) ([]*models.RiskZone, error)
	FindByCoordinates(ctx context.Context, lat, lon, tolerance float64) (*models.RiskZone, error)
	Update(ctx context.Context, zone *models.RiskZone) error
	Delete(ctx context.Context, id int64, cascade bool) error
	GetZoneFromCache(ctx context.Context, id int64) (*models.RiskZone, error)
	SetZoneCache(ctx context.Context, zone *models.RiskZone) error
	InvalidateZoneCache(ctx context.Context, id int64) error
}

// ZoneService defines the business logic contract for risk zones.
type ZoneService interface {
	CreateZone(ctx context.Context, zone *models.RiskZone) error
	GetZone(ctx context.Context, id int64) (*models.RiskZone, error)
	ListZones(ctx context.Context, filter models.ZoneFilter, skip, limit int) ([]*models.RiskZone, error)
	FindZoneByCoordinates(ctx context.Context, lat, lon float64) (*models.RiskZone, error)
	UpdateZone(ctx context.Context, id int64, update *models.RiskZoneUpdate) (*models.RiskZone, error)
	DeleteZone(ctx context.Context, id int64) error
}

type zoneService struct {
	repo   ZoneRepository
	logger *logrus.Logger
	cfg    *config.Config
	clock  clockwork.Clock
}

func NewZoneService(repo ZoneRepository, logger *logrus.Logger, cfg *config.Config, clock clockwork.Clock) ZoneService {
	return &zoneService{
		repo:   repo,
		logger: logger,
		cfg:    cfg,
		clock:  clock,
	}
}

// CreateZone validates and persists a new risk zone. The timestamp is
// assigned from the clock when the caller leaves it zero.
func (s *zoneService) CreateZone(ctx context.Context, zone *models.RiskZone) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "zone",
		"method":  "CreateZone",
		"region":  zone.RegionName,
	})
	log.Info("Attempting to create a new risk zone")

	if err := validateZone(zone); err != nil {
		log.WithError(err).Warn("Risk zone validation failed")
		return err
	}

	if zone.Timestamp.IsZero() {
		zone.Timestamp = s.clock.Now().UTC()
	}

	if err := s.repo.Create(ctx, zone); err != nil {
		log.WithError(err).Error("Failed to create risk zone in repository")
		return fmt.Errorf("service: could not create risk zone: %w", err)
	}

	log.WithField("zone_id", zone.ID).Info("Risk zone created successfully")
	return nil
}

// GetZone returns a zone by ID, trying the cache first.
func (s *zoneService) GetZone(ctx context.Context, id int64) (*models.RiskZone, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "zone",
		"method":  "GetZone",
		"zone_id": id,
	})

	cached, err := s.repo.GetZoneFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Zone cache lookup failed, falling back to database")
	}
	if cached != nil {
		log.Debug("Risk zone served from cache")
		return cached, nil
	}

	zone, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get risk zone from repository")
		return nil, fmt.Errorf("service: could not get risk zone: %w", err)
	}

	if err := s.repo.SetZoneCache(ctx, zone); err != nil {
		log.WithError(err).Warn("Failed to cache risk zone")
	}

	return zone, nil
}

// ListZones returns zones matching the filter, ordered by risk level
// descending, sliced by skip/limit.
func (s *zoneService) ListZones(ctx context.Context, filter models.ZoneFilter, skip, limit int) ([]*models.RiskZone, error) {
	if skip < 0 {
		skip = 0
	}
	if limit < 1 || limit > 100 {
		limit = 100
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "zone",
		"method":  "ListZones",
		"skip":    skip,
		"limit":   limit,
	})

	zones, err := s.repo.List(ctx, filter, skip, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list risk zones from repository")
		return nil, fmt.Errorf("service: could not list risk zones: %w", err)
	}

	log.WithField("count", len(zones)).Info("Risk zones listed successfully")
	return zones, nil
}

// FindZoneByCoordinates returns the zone whose degree bounding box contains
// the point, preferring the most recently assessed one. The tolerance is a
// planar approximation, not great-circle distance.
func (s *zoneService) FindZoneByCoordinates(ctx context.Context, lat, lon float64) (*models.RiskZone, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "zone",
		"method":    "FindZoneByCoordinates",
		"latitude":  lat,
		"longitude": lon,
	})

	zone, err := s.repo.FindByCoordinates(ctx, lat, lon, s.cfg.CoordinateTolerance)
	if err != nil {
		log.WithError(err).Warn("Coordinate lookup found no risk zone")
		return nil, fmt.Errorf("service: could not find risk zone by coordinates: %w", err)
	}
	return zone, nil
}

// UpdateZone applies a partial update, re-validating touched fields.
func (s *zoneService) UpdateZone(ctx context.Context, id int64, update *models.RiskZoneUpdate) (*models.RiskZone, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "zone",
		"method":  "UpdateZone",
		"zone_id": id,
	})
	log.Info("Attempting to update risk zone")

	if err := validateZoneUpdate(update); err != nil {
		log.WithError(err).Warn("Risk zone update validation failed")
		return nil, err
	}

	zone, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent risk zone")
		return nil, fmt.Errorf("service: risk zone %d not found for update: %w", id, err)
	}

	update.Apply(zone)

	if err := s.repo.Update(ctx, zone); err != nil {
		log.WithError(err).Error("Failed to update risk zone in repository")
		return nil, fmt.Errorf("service: could not update risk zone: %w", err)
	}

	if err := s.repo.InvalidateZoneCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate risk zone cache")
	}

	log.Info("Risk zone updated successfully")
	return zone, nil
}

// DeleteZone removes a zone. Whether dependent incidents and alerts go with
// it is a deployment choice (ZONE_DELETE_CASCADE).
func (s *zoneService) DeleteZone(ctx context.Context, id int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "zone",
		"method":  "DeleteZone",
		"zone_id": id,
		"cascade": s.cfg.ZoneDeleteCascade,
	})
	log.Info("Attempting to delete risk zone")

	if err := s.repo.Delete(ctx, id, s.cfg.ZoneDeleteCascade); err != nil {
		log.WithError(err).Warn("Failed to delete risk zone")
		return fmt.Errorf("service: could not delete risk zone: %w", err)
	}

	if err := s.repo.InvalidateZoneCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate risk zone cache")
	}

	log.Info("Risk zone deleted successfully")
	return nil
}

// validateZone checks the range and enum invariants on a full zone.
func validateZone(zone *models.RiskZone) error {
	if zone.RiskLevel < 0 || zone.RiskLevel > 1 {
		return apperr.Validation("risk_level", "must be within [0, 1]")
	}
	if !contains(models.RiskCategories, zone.RiskCategory) {
		return apperr.Validation("risk_category", "must be one of Low, Medium, High")
	}
	if zone.ConfidenceScore < 0 || zone.ConfidenceScore > 1 {
		return apperr.Validation("confidence_score", "must be within [0, 1]")
	}
	return nil
}

// validateZoneUpdate checks only the fields the update touches.
func validateZoneUpdate(update *models.RiskZoneUpdate) error {
	if update.RiskLevel != nil && (*update.RiskLevel < 0 || *update.RiskLevel > 1) {
		return apperr.Validation("risk_level", "must be within [0, 1]")
	}
	if update.RiskCategory != nil && !contains(models.RiskCategories, *update.RiskCategory) {
		return apperr.Validation("risk_category", "must be one of Low, Medium, High")
	}
	if update.ConfidenceScore != nil && (*update.ConfidenceScore < 0 || *update.ConfidenceScore > 1) {
		return apperr.Validation("confidence_score", "must be within [0, 1]")
	}
	return nil
}

func contains(allowed []string, v string) bool {
	for _, a := range allowed {
		if a == v {
			return true
		}
	}
	return false
}
