package service

import (
	"context"
	"fmt"

	"github.com/shenikar/wildfire_risk_service/internal/apperr"
	"github.com/shenikar/wildfire_risk_service/internal/models"
	"github.com/sirupsen/logrus"
)

// IncidentRepository defines the storage contract for fire incidents.
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id int64) (*models.Incident, error)
	List(ctx context.Context, filter models.IncidentFilter, skip, limit int) ([]*models.Incident, error)
	Update(ctx context.Context, incident *models.Incident) error
	Delete(ctx context.Context, id int64) error
}

// IncidentService defines the business logic contract for fire incidents.
type IncidentService interface {
	CreateIncident(ctx context.Context, incident *models.Incident) error
	GetIncident(ctx context.Context, id int64) (*models.Incident, error)
	ListIncidents(ctx context.Context, filter models.IncidentFilter, skip, limit int) ([]*models.Incident, error)
	UpdateIncident(ctx context.Context, id int64, update *models.IncidentUpdate) (*models.Incident, error)
	DeleteIncident(ctx context.Context, id int64) error
}

type incidentService struct {
	repo   IncidentRepository
	zones  ZoneRepository
	logger *logrus.Logger
}

func NewIncidentService(repo IncidentRepository, zones ZoneRepository, logger *logrus.Logger) IncidentService {
	return &incidentService{
		repo:   repo,
		zones:  zones,
		logger: logger,
	}
}

// CreateIncident validates and persists a new incident. The owning risk
// zone must exist; the repository itself does not enforce the reference.
func (s *incidentService) CreateIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CreateIncident",
		"zone_id": incident.RiskZoneID,
	})
	log.Info("Attempting to create a new incident")

	if err := validateIncident(incident); err != nil {
		log.WithError(err).Warn("Incident validation failed")
		return err
	}

	if _, err := s.zones.GetByID(ctx, incident.RiskZoneID); err != nil {
		log.WithError(err).Warn("Owning risk zone does not exist")
		return fmt.Errorf("service: risk zone %d for incident: %w", incident.RiskZoneID, err)
	}

	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not create incident: %w", err)
	}

	log.WithField("incident_id", incident.ID).Info("Incident created successfully")
	return nil
}

// GetIncident returns an incident by ID.
func (s *incidentService) GetIncident(ctx context.Context, id int64) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	return incident, nil
}

// ListIncidents returns incidents matching the filter, ordered by start
// date descending.
func (s *incidentService) ListIncidents(ctx context.Context, filter models.IncidentFilter, skip, limit int) ([]*models.Incident, error) {
	if skip < 0 {
		skip = 0
	}
	if limit < 1 || limit > 100 {
		limit = 100
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListIncidents",
		"skip":    skip,
		"limit":   limit,
	})

	incidents, err := s.repo.List(ctx, filter, skip, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return incidents, nil
}

// UpdateIncident applies a partial update, re-validating touched fields.
func (s *incidentService) UpdateIncident(ctx context.Context, id int64, update *models.IncidentUpdate) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateIncident",
		"incident_id": id,
	})
	log.Info("Attempting to update incident")

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent incident")
		return nil, fmt.Errorf("service: incident %d not found for update: %w", id, err)
	}

	update.Apply(incident)

	if err := validateIncident(incident); err != nil {
		log.WithError(err).Warn("Incident update validation failed")
		return nil, err
	}

	if err := s.repo.Update(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to update incident in repository")
		return nil, fmt.Errorf("service: could not update incident: %w", err)
	}

	log.Info("Incident updated successfully")
	return incident, nil
}

// DeleteIncident removes an incident.
func (s *incidentService) DeleteIncident(ctx context.Context, id int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "DeleteIncident",
		"incident_id": id,
	})
	log.Info("Attempting to delete incident")

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to delete incident")
		return fmt.Errorf("service: could not delete incident: %w", err)
	}

	log.Info("Incident deleted successfully")
	return nil
}

// validateIncident checks the enum and range invariants on an incident.
func validateIncident(incident *models.Incident) error {
	if incident.RiskZoneID == 0 {
		return apperr.Validation("risk_zone_id", "is required")
	}
	if incident.StartDate.IsZero() {
		return apperr.Validation("start_date", "is required")
	}
	if incident.EndDate != nil && incident.EndDate.Before(incident.StartDate) {
		return apperr.Validation("end_date", "must not be before start_date")
	}
	if !contains(models.IncidentSeverities, incident.Severity) {
		return apperr.Validation("severity", "must be one of Low, Medium, High")
	}
	if !contains(models.IncidentStatuses, incident.Status) {
		return apperr.Validation("status", "must be one of Active, Contained, Extinguished")
	}
	if !contains(models.IncidentSources, incident.Source) {
		return apperr.Validation("source", "must be one of Satellite, Ground Report, Official")
	}
	if incident.AreaAffected != nil && *incident.AreaAffected < 0 {
		return apperr.Validation("area_affected", "must not be negative")
	}
	return nil
}
