package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/wildfire_risk_service/internal/apperr"
	"github.com/shenikar/wildfire_risk_service/internal/models"
	"github.com/shenikar/wildfire_risk_service/internal/service"
)

const zoneCacheTTL = 5 * time.Minute

const zoneColumns = `
	id,
	region_name,
	latitude,
	longitude,
	risk_level,
	risk_category,
	timestamp,
	temperature,
	humidity,
	wind_speed,
	precipitation,
	vegetation_density,
	vegetation_type,
	soil_moisture,
	prediction_model,
	confidence_score`

type ZoneRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewZoneRepository(db *pgxpool.Pool, redisClient *redis.Client) service.ZoneRepository {
	return &ZoneRepository{
		db:          db,
		redisClient: redisClient,
	}
}

func scanZone(row pgx.Row) (*models.RiskZone, error) {
	zone := &models.RiskZone{}
	err := row.Scan(
		&zone.ID,
		&zone.RegionName,
		&zone.Latitude,
		&zone.Longitude,
		&zone.RiskLevel,
		&zone.RiskCategory,
		&zone.Timestamp,
		&zone.Temperature,
		&zone.Humidity,
		&zone.WindSpeed,
		&zone.Precipitation,
		&zone.VegetationDensity,
		&zone.VegetationType,
		&zone.SoilMoisture,
		&zone.PredictionModel,
		&zone.ConfidenceScore,
	)
	if err != nil {
		return nil, err
	}
	return zone, nil
}

// Create inserts a new risk zone record.
func (r *ZoneRepository) Create(ctx context.Context, zone *models.RiskZone) error {
	query := `
		INSERT INTO fire_risk_zones (
			region_name, latitude, longitude, risk_level, risk_category, timestamp,
			temperature, humidity, wind_speed, precipitation,
			vegetation_density, vegetation_type, soil_moisture,
			prediction_model, confidence_score
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		zone.RegionName,
		zone.Latitude,
		zone.Longitude,
		zone.RiskLevel,
		zone.RiskCategory,
		zone.Timestamp,
		zone.Temperature,
		zone.Humidity,
		zone.WindSpeed,
		zone.Precipitation,
		zone.VegetationDensity,
		zone.VegetationType,
		zone.SoilMoisture,
		zone.PredictionModel,
		zone.ConfidenceScore,
	).Scan(&zone.ID)
	if err != nil {
		return fmt.Errorf("failed to create risk zone: %w", err)
	}
	return nil
}

// GetByID returns a risk zone by its id.
func (r *ZoneRepository) GetByID(ctx context.Context, id int64) (*models.RiskZone, error) {
	query := `SELECT` + zoneColumns + ` FROM fire_risk_zones WHERE id = $1;`

	zone, err := scanZone(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("risk zone %d: %w", id, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get risk zone by id: %w", err)
	}
	return zone, nil
}

// List returns risk zones matching the filter, ordered by risk level
// descending, with offset pagination.
func (r *ZoneRepository) List(ctx context.Context, filter models.ZoneFilter, skip, limit int) ([]*models.RiskZone, error) {
	query := `SELECT` + zoneColumns + ` FROM fire_risk_zones WHERE 1=1`
	args := []any{}

	if filter.MinRiskLevel != nil {
		args = append(args, *filter.MinRiskLevel)
		query += fmt.Sprintf(" AND risk_level >= $%d", len(args))
	}
	if filter.MaxRiskLevel != nil {
		args = append(args, *filter.MaxRiskLevel)
		query += fmt.Sprintf(" AND risk_level <= $%d", len(args))
	}
	if filter.RegionName != "" {
		args = append(args, "%"+filter.RegionName+"%")
		query += fmt.Sprintf(" AND region_name ILIKE $%d", len(args))
	}
	if filter.RiskCategory != "" {
		args = append(args, filter.RiskCategory)
		query += fmt.Sprintf(" AND risk_category = $%d", len(args))
	}

	args = append(args, limit, skip)
	query += fmt.Sprintf(" ORDER BY risk_level DESC LIMIT $%d OFFSET $%d;", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list risk zones: %w", err)
	}
	defer rows.Close()

	zones := make([]*models.RiskZone, 0)
	for rows.Next() {
		zone, err := scanZone(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan risk zone row: %w", err)
		}
		zones = append(zones, zone)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating risk zone rows: %w", err)
	}
	return zones, nil
}

// FindByCoordinates returns the zone whose degree bounding box contains the
// point. Overlapping candidates are resolved by the latest timestamp. The
// box is planar and known to misbehave near the poles and the date line.
func (r *ZoneRepository) FindByCoordinates(ctx context.Context, lat, lon, tolerance float64) (*models.RiskZone, error) {
	query := `
		SELECT` + zoneColumns + `
		FROM fire_risk_zones
		WHERE latitude BETWEEN $1 AND $2
		  AND longitude BETWEEN $3 AND $4
		ORDER BY timestamp DESC
		LIMIT 1;
	`
	zone, err := scanZone(r.db.QueryRow(ctx, query,
		lat-tolerance, lat+tolerance,
		lon-tolerance, lon+tolerance,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("no risk zone at (%f, %f): %w", lat, lon, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find risk zone by coordinates: %w", err)
	}
	return zone, nil
}

// Update writes the full zone record back.
func (r *ZoneRepository) Update(ctx context.Context, zone *models.RiskZone) error {
	query := `
		UPDATE fire_risk_zones SET
			region_name = $1,
			latitude = $2,
			longitude = $3,
			risk_level = $4,
			risk_category = $5,
			temperature = $6,
			humidity = $7,
			wind_speed = $8,
			precipitation = $9,
			vegetation_density = $10,
			vegetation_type = $11,
			soil_moisture = $12,
			prediction_model = $13,
			confidence_score = $14
		WHERE id = $15;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		zone.RegionName,
		zone.Latitude,
		zone.Longitude,
		zone.RiskLevel,
		zone.RiskCategory,
		zone.Temperature,
		zone.Humidity,
		zone.WindSpeed,
		zone.Precipitation,
		zone.VegetationDensity,
		zone.VegetationType,
		zone.SoilMoisture,
		zone.PredictionModel,
		zone.ConfidenceScore,
		zone.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update risk zone: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("risk zone %d for update: %w", zone.ID, apperr.ErrNotFound)
	}
	return nil
}

// Delete removes a zone. With cascade enabled the dependent incidents and
// alerts are removed in the same transaction.
func (r *ZoneRepository) Delete(ctx context.Context, id int64, cascade bool) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if cascade {
		if _, err := tx.Exec(ctx, `DELETE FROM alerts WHERE risk_zone_id = $1;`, id); err != nil {
			return fmt.Errorf("failed to cascade-delete alerts: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM fire_incidents WHERE risk_zone_id = $1;`, id); err != nil {
			return fmt.Errorf("failed to cascade-delete incidents: %w", err)
		}
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM fire_risk_zones WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete risk zone: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("risk zone %d for delete: %w", id, apperr.ErrNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit risk zone delete: %w", err)
	}
	return nil
}

// GetZoneFromCache tries to read a zone from Redis. A cache miss returns
// (nil, nil).
func (r *ZoneRepository) GetZoneFromCache(ctx context.Context, id int64) (*models.RiskZone, error) {
	key := fmt.Sprintf("risk_zone:%d", id)
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get risk zone from cache: %w", err)
	}

	zone := &models.RiskZone{}
	if err := json.Unmarshal(val, zone); err != nil {
		return nil, fmt.Errorf("failed to unmarshal risk zone from cache: %w", err)
	}
	return zone, nil
}

// SetZoneCache stores a zone in Redis.
func (r *ZoneRepository) SetZoneCache(ctx context.Context, zone *models.RiskZone) error {
	key := fmt.Sprintf("risk_zone:%d", zone.ID)
	val, err := json.Marshal(zone)
	if err != nil {
		return fmt.Errorf("failed to marshal risk zone for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, zoneCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set risk zone in cache: %w", err)
	}
	return nil
}

// InvalidateZoneCache drops a zone from Redis.
func (r *ZoneRepository) InvalidateZoneCache(ctx context.Context, id int64) error {
	key := fmt.Sprintf("risk_zone:%d", id)
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate risk zone cache: %w", err)
	}
	return nil
}
