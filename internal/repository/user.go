package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/wildfire_risk_service/internal/apperr"
	"github.com/shenikar/wildfire_risk_service/internal/models"
	"github.com/shenikar/wildfire_risk_service/internal/service"
)

const userColumns = `
	id,
	email,
	username,
	password_hash,
	is_active,
	is_superuser,
	created_at,
	latitude,
	longitude,
	region_name,
	alert_threshold,
	email_alerts,
	sms_alerts,
	phone_number`

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) service.UserRepository {
	return &UserRepository{
		db: db,
	}
}

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.PasswordHash,
		&user.IsActive,
		&user.IsSuperuser,
		&user.CreatedAt,
		&user.Latitude,
		&user.Longitude,
		&user.RegionName,
		&user.AlertThreshold,
		&user.EmailAlerts,
		&user.SMSAlerts,
		&user.PhoneNumber,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Create inserts a new user. Duplicate email or username surfaces as a
// conflict instead of a bare storage error.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (
			email, username, password_hash, is_active, is_superuser, created_at,
			latitude, longitude, region_name,
			alert_threshold, email_alerts, sms_alerts, phone_number
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		user.Email,
		user.Username,
		user.PasswordHash,
		user.IsActive,
		user.IsSuperuser,
		user.CreatedAt,
		user.Latitude,
		user.Longitude,
		user.RegionName,
		user.AlertThreshold,
		user.EmailAlerts,
		user.SMSAlerts,
		user.PhoneNumber,
	).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("email or username already taken: %w", apperr.ErrConflict)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID returns a user by id.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT` + userColumns + ` FROM users WHERE id = $1;`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user %d: %w", id, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

// GetByEmail returns a user by email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT` + userColumns + ` FROM users WHERE email = $1;`

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user with email %s: %w", email, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// GetByUsername returns a user by username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT` + userColumns + ` FROM users WHERE username = $1;`

	user, err := scanUser(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user with username %s: %w", username, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}

// List returns users with offset pagination.
func (r *UserRepository) List(ctx context.Context, skip, limit int) ([]*models.User, error) {
	query := `SELECT` + userColumns + ` FROM users ORDER BY id ASC LIMIT $1 OFFSET $2;`

	rows, err := r.db.Query(ctx, query, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]*models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}

// Update writes the full user record back.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users SET
			email = $1,
			username = $2,
			password_hash = $3,
			is_active = $4,
			latitude = $5,
			longitude = $6,
			region_name = $7,
			alert_threshold = $8,
			email_alerts = $9,
			sms_alerts = $10,
			phone_number = $11
		WHERE id = $12;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		user.Email,
		user.Username,
		user.PasswordHash,
		user.IsActive,
		user.Latitude,
		user.Longitude,
		user.RegionName,
		user.AlertThreshold,
		user.EmailAlerts,
		user.SMSAlerts,
		user.PhoneNumber,
		user.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("email or username already taken: %w", apperr.ErrConflict)
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user %d for update: %w", user.ID, apperr.ErrNotFound)
	}
	return nil
}

// Delete removes a user.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user %d for delete: %w", id, apperr.ErrNotFound)
	}
	return nil
}
