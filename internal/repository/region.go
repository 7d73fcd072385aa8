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

const regionColumns = `
	id,
	user_id,
	region_name,
	latitude,
	longitude,
	alert_threshold,
	created_at`

type RegionRepository struct {
	db *pgxpool.Pool
}

func NewRegionRepository(db *pgxpool.Pool) service.RegionRepository {
	return &RegionRepository{
		db: db,
	}
}

func scanRegion(row pgx.Row) (*models.SavedRegion, error) {
	region := &models.SavedRegion{}
	err := row.Scan(
		&region.ID,
		&region.UserID,
		&region.RegionName,
		&region.Latitude,
		&region.Longitude,
		&region.AlertThreshold,
		&region.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return region, nil
}

// Create inserts a new saved region.
func (r *RegionRepository) Create(ctx context.Context, region *models.SavedRegion) error {
	query := `
		INSERT INTO saved_regions (user_id, region_name, latitude, longitude, alert_threshold, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		region.UserID,
		region.RegionName,
		region.Latitude,
		region.Longitude,
		region.AlertThreshold,
		region.CreatedAt,
	).Scan(&region.ID)
	if err != nil {
		return fmt.Errorf("failed to create saved region: %w", err)
	}
	return nil
}

// GetByID returns a saved region by its id.
func (r *RegionRepository) GetByID(ctx context.Context, id int64) (*models.SavedRegion, error) {
	query := `SELECT` + regionColumns + ` FROM saved_regions WHERE id = $1;`

	region, err := scanRegion(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("saved region %d: %w", id, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get saved region by id: %w", err)
	}
	return region, nil
}

// ListForUser returns the user's saved regions in insertion order.
func (r *RegionRepository) ListForUser(ctx context.Context, userID int64, skip, limit int) ([]*models.SavedRegion, error) {
	query := `
		SELECT` + regionColumns + `
		FROM saved_regions
		WHERE user_id = $1
		ORDER BY id ASC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, userID, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved regions: %w", err)
	}
	defer rows.Close()

	regions := make([]*models.SavedRegion, 0)
	for rows.Next() {
		region, err := scanRegion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan saved region row: %w", err)
		}
		regions = append(regions, region)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating saved region rows: %w", err)
	}
	return regions, nil
}

// FindForUserAt returns the user's saved region whose degree bounding box
// contains the point, preferring the most recently created one.
func (r *RegionRepository) FindForUserAt(ctx context.Context, userID int64, lat, lon, tolerance float64) (*models.SavedRegion, error) {
	query := `
		SELECT` + regionColumns + `
		FROM saved_regions
		WHERE user_id = $1
		  AND latitude BETWEEN $2 AND $3
		  AND longitude BETWEEN $4 AND $5
		ORDER BY created_at DESC
		LIMIT 1;
	`
	region, err := scanRegion(r.db.QueryRow(ctx, query,
		userID,
		lat-tolerance, lat+tolerance,
		lon-tolerance, lon+tolerance,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("no saved region for user %d at (%f, %f): %w", userID, lat, lon, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find saved region by coordinates: %w", err)
	}
	return region, nil
}

// Delete removes a saved region.
func (r *RegionRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM saved_regions WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete saved region: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("saved region %d for delete: %w", id, apperr.ErrNotFound)
	}
	return nil
}
