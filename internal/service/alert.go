package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/wildfire_risk_service/internal/apperr"
	"github.com/shenikar/wildfire_risk_service/internal/config"
	"github.com/shenikar/wildfire_risk_service/internal/models"
	"github.com/shenikar/wildfire_risk_service/internal/notifier"
	"github.com/sirupsen/logrus"
)

// AlertRepository defines the storage contract for alerts. All reads and
// mutations are scoped to the owning user.
type AlertRepository interface {
	Create(ctx context.Context, alert *models.Alert) error
	GetForUser(ctx context.Context, id, userID int64) (*models.Alert, error)
	ListForUser(ctx context.Context, userID int64, isRead *bool, skip, limit int) ([]*models.Alert, error)
	SetRead(ctx context.Context, id, userID int64, read bool) error
	MarkAllRead(ctx context.Context, userID int64) error
	DeleteForUser(ctx context.Context, id, userID int64) error
}

// AlertService defines the business logic contract for alerts, including
// the threshold evaluation performed after each new prediction.
type AlertService interface {
	EvaluateZone(ctx context.Context, user *models.User, zone *models.RiskZone) (*models.Alert, bool, error)
	CreateAlert(ctx context.Context, userID, riskZoneID int64, riskLevel float64, message string) (*models.Alert, error)
	GetAlert(ctx context.Context, id, userID int64) (*models.Alert, error)
	ListAlerts(ctx context.Context, userID int64, isRead *bool, skip, limit int) ([]*models.Alert, error)
	MarkAlertRead(ctx context.Context, id, userID int64) (*models.Alert, error)
	MarkAllAlertsRead(ctx context.Context, userID int64) error
	DeleteAlert(ctx context.Context, id, userID int64) error
}

// ShouldAlert reports whether a risk level meets the threshold. Boundary
// equality counts as an alert.
func ShouldAlert(riskLevel, threshold float64) bool {
	return riskLevel >= threshold
}

type alertService struct {
	repo      AlertRepository
	regions   RegionRepository
	publisher notifier.AlertPublisher
	logger    *logrus.Logger
	cfg       *config.Config
	clock     clockwork.Clock
}

func NewAlertService(repo AlertRepository, regions RegionRepository, publisher notifier.AlertPublisher, logger *logrus.Logger, cfg *config.Config, clock clockwork.Clock) AlertService {
	return &alertService{
		repo:      repo,
		regions:   regions,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
		clock:     clock,
	}
}

// EvaluateZone compares the zone's risk level against the user's effective
// threshold and creates an alert when it is met. The effective threshold is
// the saved-region override covering the zone's coordinates when one
// exists, the user's global threshold otherwise. The second return value
// reports whether an alert was created.
func (s *alertService) EvaluateZone(ctx context.Context, user *models.User, zone *models.RiskZone) (*models.Alert, bool, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  "EvaluateZone",
		"user_id": user.ID,
		"zone_id": zone.ID,
	})

	threshold := user.AlertThreshold
	if threshold == 0 {
		threshold = s.cfg.DefaultAlertThreshold
	}

	region, err := s.regions.FindForUserAt(ctx, user.ID, zone.Latitude, zone.Longitude, s.cfg.CoordinateTolerance)
	switch {
	case err == nil:
		threshold = region.AlertThreshold
		log = log.WithField("region_id", region.ID)
	case errors.Is(err, apperr.ErrNotFound):
		// No saved region covers the point; the global threshold applies.
	default:
		log.WithError(err).Error("Failed to look up saved region for threshold override")
		return nil, false, fmt.Errorf("service: could not resolve alert threshold: %w", err)
	}

	if !ShouldAlert(zone.RiskLevel, threshold) {
		log.WithField("threshold", threshold).Debug("Risk level below threshold, no alert")
		return nil, false, nil
	}

	message := fmt.Sprintf("High fire risk detected in %s. Risk level: %.2f", zone.RegionName, zone.RiskLevel)
	alert, err := s.CreateAlert(ctx, user.ID, zone.ID, zone.RiskLevel, message)
	if err != nil {
		return nil, false, err
	}
	return alert, true, nil
}

// CreateAlert inserts an unread, unsent alert record and queues a delivery
// event. The sent flags are never flipped here.
func (s *alertService) CreateAlert(ctx context.Context, userID, riskZoneID int64, riskLevel float64, message string) (*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  "CreateAlert",
		"user_id": userID,
		"zone_id": riskZoneID,
	})
	log.Info("Creating alert")

	alert := &models.Alert{
		UserID:      userID,
		RiskZoneID:  riskZoneID,
		AlertTime:   s.clock.Now().UTC(),
		RiskLevel:   riskLevel,
		Message:     message,
		IsRead:      false,
		IsSentEmail: false,
		IsSentSMS:   false,
	}

	if err := s.repo.Create(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to create alert in repository")
		return nil, fmt.Errorf("service: could not create alert: %w", err)
	}

	event := notifier.AlertEvent{
		UserID:     alert.UserID,
		RiskZoneID: alert.RiskZoneID,
		RiskLevel:  alert.RiskLevel,
		Message:    alert.Message,
		Timestamp:  alert.AlertTime,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		// The alert record is the source of truth; delivery is best effort.
		log.WithError(err).Warn("Failed to publish alert event")
	}

	log.WithField("alert_id", alert.ID).Info("Alert created successfully")
	return alert, nil
}

// GetAlert returns an alert owned by the user.
func (s *alertService) GetAlert(ctx context.Context, id, userID int64) (*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "GetAlert",
		"alert_id": id,
		"user_id":  userID,
	})

	alert, err := s.repo.GetForUser(ctx, id, userID)
	if err != nil {
		log.WithError(err).Warn("Failed to get alert from repository")
		return nil, fmt.Errorf("service: could not get alert: %w", err)
	}
	return alert, nil
}

// ListAlerts returns the user's alerts, latest first, optionally filtered
// by read state.
func (s *alertService) ListAlerts(ctx context.Context, userID int64, isRead *bool, skip, limit int) ([]*models.Alert, error) {
	if skip < 0 {
		skip = 0
	}
	if limit < 1 || limit > 100 {
		limit = 100
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  "ListAlerts",
		"user_id": userID,
	})

	alerts, err := s.repo.ListForUser(ctx, userID, isRead, skip, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list alerts from repository")
		return nil, fmt.Errorf("service: could not list alerts: %w", err)
	}
	return alerts, nil
}

// MarkAlertRead flips the read flag on the user's alert.
func (s *alertService) MarkAlertRead(ctx context.Context, id, userID int64) (*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "MarkAlertRead",
		"alert_id": id,
		"user_id":  userID,
	})

	if err := s.repo.SetRead(ctx, id, userID, true); err != nil {
		log.WithError(err).Warn("Failed to mark alert read")
		return nil, fmt.Errorf("service: could not mark alert read: %w", err)
	}

	alert, err := s.repo.GetForUser(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("service: could not reload alert: %w", err)
	}
	return alert, nil
}

// MarkAllAlertsRead flips the read flag on every unread alert of the user.
func (s *alertService) MarkAllAlertsRead(ctx context.Context, userID int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  "MarkAllAlertsRead",
		"user_id": userID,
	})

	if err := s.repo.MarkAllRead(ctx, userID); err != nil {
		log.WithError(err).Error("Failed to mark all alerts read")
		return fmt.Errorf("service: could not mark all alerts read: %w", err)
	}
	return nil
}

// DeleteAlert removes an alert owned by the user.
func (s *alertService) DeleteAlert(ctx context.Context, id, userID int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "DeleteAlert",
		"alert_id": id,
		"user_id":  userID,
	})
	log.Info("Attempting to delete alert")

	if err := s.repo.DeleteForUser(ctx, id, userID); err != nil {
		log.WithError(err).Warn("Failed to delete alert")
		return fmt.Errorf("service: could not delete alert: %w", err)
	}

	log.Info("Alert deleted successfully")
	return nil
}
