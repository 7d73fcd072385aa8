package service

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/wildfire_risk_service/internal/apperr"
	"github.com/shenikar/wildfire_risk_service/internal/models"
	"github.com/sirupsen/logrus"
)

// RegionRepository defines the storage contract for saved regions.
type RegionRepository interface {
	Create(ctx context.Context, region *models.SavedRegion) error
	GetByID(ctx context.Context, id int64) (*models.SavedRegion, error)
	ListForUser(ctx context.Context, userID int64, skip, limit int) ([]*models.SavedRegion, error)
	// FindForUserAt returns the user's saved region whose degree bounding
	// box contains the point, preferring the most recently created one.
	FindForUserAt(ctx context.Context, userID int64, lat, lon, tolerance float64) (*models.SavedRegion, error)
	Delete(ctx context.Context, id int64) error
}

// RegionService defines the business logic contract for saved regions.
// Ownership checks live here: a caller may only manage their own regions
// unless they hold superuser privilege.
type RegionService interface {
	CreateRegion(ctx context.Context, requester *models.User, region *models.SavedRegion) error
	ListRegions(ctx context.Context, userID int64, skip, limit int) ([]*models.SavedRegion, error)
	DeleteRegion(ctx context.Context, requester *models.User, id int64) error
}

type regionService struct {
	repo   RegionRepository
	logger *logrus.Logger
	clock  clockwork.Clock
}

func NewRegionService(repo RegionRepository, logger *logrus.Logger, clock clockwork.Clock) RegionService {
	return &regionService{
		repo:   repo,
		logger: logger,
		clock:  clock,
	}
}

// CreateRegion saves a region for the requesting user. Creating a region
// for another user is rejected.
func (s *regionService) CreateRegion(ctx context.Context, requester *models.User, region *models.SavedRegion) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "region",
		"method":  "CreateRegion",
		"user_id": requester.ID,
	})
	log.Info("Attempting to save a region")

	if region.UserID != requester.ID {
		log.WithField("owner_id", region.UserID).Warn("Caller attempted to save a region for another user")
		return fmt.Errorf("service: cannot save region for another user: %w", apperr.ErrForbidden)
	}

	if region.AlertThreshold < 0 || region.AlertThreshold > 1 {
		return apperr.Validation("alert_threshold", "must be within [0, 1]")
	}
	if region.AlertThreshold == 0 {
		region.AlertThreshold = models.DefaultAlertThreshold
	}

	if region.CreatedAt.IsZero() {
		region.CreatedAt = s.clock.Now().UTC()
	}

	if err := s.repo.Create(ctx, region); err != nil {
		log.WithError(err).Error("Failed to save region in repository")
		return fmt.Errorf("service: could not save region: %w", err)
	}

	log.WithField("region_id", region.ID).Info("Region saved successfully")
	return nil
}

// ListRegions returns the user's saved regions in insertion order.
func (s *regionService) ListRegions(ctx context.Context, userID int64, skip, limit int) ([]*models.SavedRegion, error) {
	if skip < 0 {
		skip = 0
	}
	if limit < 1 || limit > 100 {
		limit = 100
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "region",
		"method":  "ListRegions",
		"user_id": userID,
	})

	regions, err := s.repo.ListForUser(ctx, userID, skip, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list saved regions from repository")
		return nil, fmt.Errorf("service: could not list saved regions: %w", err)
	}

	log.WithField("count", len(regions)).Info("Saved regions listed successfully")
	return regions, nil
}

// DeleteRegion removes a saved region when the requester owns it or is a
// superuser.
func (s *regionService) DeleteRegion(ctx context.Context, requester *models.User, id int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "region",
		"method":    "DeleteRegion",
		"region_id": id,
		"user_id":   requester.ID,
	})
	log.Info("Attempting to delete saved region")

	region, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to delete a non-existent saved region")
		return fmt.Errorf("service: saved region %d not found: %w", id, err)
	}

	if region.UserID != requester.ID && !requester.IsSuperuser {
		log.WithField("owner_id", region.UserID).Warn("Caller is not allowed to delete this saved region")
		return fmt.Errorf("service: cannot delete another user's region: %w", apperr.ErrForbidden)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete saved region in repository")
		return fmt.Errorf("service: could not delete saved region: %w", err)
	}

	log.Info("Saved region deleted successfully")
	return nil
}
