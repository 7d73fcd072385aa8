package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/wildfire_risk_service/internal/apperr"
	"github.com/shenikar/wildfire_risk_service/internal/models"
	"github.com/shenikar/wildfire_risk_service/internal/service"
)

const incidentColumns = `
	i.id,
	i.risk_zone_id,
	i.latitude,
	i.longitude,
	i.start_date,
	i.end_date,
	i.severity,
	i.area_affected,
	i.status,
	i.source,
	i.description`

type IncidentRepository struct {
	db *pgxpool.Pool
}

func NewIncidentRepository(db *pgxpool.Pool) service.IncidentRepository {
	return &IncidentRepository{
		db: db,
	}
}

func scanIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	err := row.Scan(
		&incident.ID,
		&incident.RiskZoneID,
		&incident.Latitude,
		&incident.Longitude,
		&incident.StartDate,
		&incident.EndDate,
		&incident.Severity,
		&incident.AreaAffected,
		&incident.Status,
		&incident.Source,
		&incident.Description,
	)
	if err != nil {
		return nil, err
	}
	return incident, nil
}

// Create inserts a new incident record. The risk zone reference is the
// caller's contract; it is not verified here.
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO fire_incidents (
			risk_zone_id, latitude, longitude, start_date, end_date,
			severity, area_affected, status, source, description
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		incident.RiskZoneID,
		incident.Latitude,
		incident.Longitude,
		incident.StartDate,
		incident.EndDate,
		incident.Severity,
		incident.AreaAffected,
		incident.Status,
		incident.Source,
		incident.Description,
	).Scan(&incident.ID)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// GetByID returns an incident by its id.
func (r *IncidentRepository) GetByID(ctx context.Context, id int64) (*models.Incident, error) {
	query := `SELECT` + incidentColumns + ` FROM fire_incidents i WHERE i.id = $1;`

	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident %d: %w", id, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// List returns incidents matching the filter, ordered by start date
// descending. Filtering by region name joins through the owning zone, so
// incidents without a matching zone are excluded.
func (r *IncidentRepository) List(ctx context.Context, filter models.IncidentFilter, skip, limit int) ([]*models.Incident, error) {
	query := `SELECT` + incidentColumns + ` FROM fire_incidents i`
	args := []any{}

	if filter.RegionName != "" {
		args = append(args, "%"+filter.RegionName+"%")
		query += fmt.Sprintf(" JOIN fire_risk_zones z ON z.id = i.risk_zone_id AND z.region_name ILIKE $%d", len(args))
	}

	query += " WHERE 1=1"
	if filter.StartDateFrom != nil {
		args = append(args, *filter.StartDateFrom)
		query += fmt.Sprintf(" AND i.start_date >= $%d", len(args))
	}
	if filter.StartDateTo != nil {
		args = append(args, *filter.StartDateTo)
		query += fmt.Sprintf(" AND i.start_date <= $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND i.status = $%d", len(args))
	}
	if filter.Severity != "" {
		args = append(args, filter.Severity)
		query += fmt.Sprintf(" AND i.severity = $%d", len(args))
	}

	args = append(args, limit, skip)
	query += fmt.Sprintf(" ORDER BY i.start_date DESC LIMIT $%d OFFSET $%d;", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating incident rows: %w", err)
	}
	return incidents, nil
}

// Update writes the full incident record back.
func (r *IncidentRepository) Update(ctx context.Context, incident *models.Incident) error {
	query := `
		UPDATE fire_incidents SET
			latitude = $1,
			longitude = $2,
			start_date = $3,
			end_date = $4,
			severity = $5,
			area_affected = $6,
			status = $7,
			source = $8,
			description = $9
		WHERE id = $10;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		incident.Latitude,
		incident.Longitude,
		incident.StartDate,
		incident.EndDate,
		incident.Severity,
		incident.AreaAffected,
		incident.Status,
		incident.Source,
		incident.Description,
		incident.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update incident: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident %d for update: %w", incident.ID, apperr.ErrNotFound)
	}
	return nil
}

// Delete removes an incident.
func (r *IncidentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM fire_incidents WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete incident: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident %d for delete: %w", id, apperr.ErrNotFound)
	}
	return nil
}
