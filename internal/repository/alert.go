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

const alertColumns = `
	id,
	user_id,
	risk_zone_id,
	alert_time,
	risk_level,
	message,
	is_read,
	is_sent_email,
	is_sent_sms`

type AlertRepository struct {
	db *pgxpool.Pool
}

func NewAlertRepository(db *pgxpool.Pool) service.AlertRepository {
	return &AlertRepository{
		db: db,
	}
}

func scanAlert(row pgx.Row) (*models.Alert, error) {
	alert := &models.Alert{}
	err := row.Scan(
		&alert.ID,
		&alert.UserID,
		&alert.RiskZoneID,
		&alert.AlertTime,
		&alert.RiskLevel,
		&alert.Message,
		&alert.IsRead,
		&alert.IsSentEmail,
		&alert.IsSentSMS,
	)
	if err != nil {
		return nil, err
	}
	return alert, nil
}

// Create inserts a new alert record.
func (r *AlertRepository) Create(ctx context.Context, alert *models.Alert) error {
	query := `
		INSERT INTO alerts (user_id, risk_zone_id, alert_time, risk_level, message, is_read, is_sent_email, is_sent_sms)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		alert.UserID,
		alert.RiskZoneID,
		alert.AlertTime,
		alert.RiskLevel,
		alert.Message,
		alert.IsRead,
		alert.IsSentEmail,
		alert.IsSentSMS,
	).Scan(&alert.ID)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}
	return nil
}

// GetForUser returns an alert by id, scoped to the owning user.
func (r *AlertRepository) GetForUser(ctx context.Context, id, userID int64) (*models.Alert, error) {
	query := `SELECT` + alertColumns + ` FROM alerts WHERE id = $1 AND user_id = $2;`

	alert, err := scanAlert(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("alert %d for user %d: %w", id, userID, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get alert by id: %w", err)
	}
	return alert, nil
}

// ListForUser returns the user's alerts, latest first, optionally filtered
// by read state.
func (r *AlertRepository) ListForUser(ctx context.Context, userID int64, isRead *bool, skip, limit int) ([]*models.Alert, error) {
	query := `SELECT` + alertColumns + ` FROM alerts WHERE user_id = $1`
	args := []any{userID}

	if isRead != nil {
		args = append(args, *isRead)
		query += fmt.Sprintf(" AND is_read = $%d", len(args))
	}

	args = append(args, limit, skip)
	query += fmt.Sprintf(" ORDER BY alert_time DESC LIMIT $%d OFFSET $%d;", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]*models.Alert, 0)
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating alert rows: %w", err)
	}
	return alerts, nil
}

// SetRead flips the read flag on the user's alert.
func (r *AlertRepository) SetRead(ctx context.Context, id, userID int64, read bool) error {
	query := `UPDATE alerts SET is_read = $1 WHERE id = $2 AND user_id = $3;`
	cmdTag, err := r.db.Exec(ctx, query, read, id, userID)
	if err != nil {
		return fmt.Errorf("failed to set alert read flag: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("alert %d for user %d: %w", id, userID, apperr.ErrNotFound)
	}
	return nil
}

// MarkAllRead marks every unread alert of the user as read.
func (r *AlertRepository) MarkAllRead(ctx context.Context, userID int64) error {
	query := `UPDATE alerts SET is_read = TRUE WHERE user_id = $1 AND is_read = FALSE;`
	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to mark all alerts read: %w", err)
	}
	return nil
}

// DeleteForUser removes an alert owned by the user.
func (r *AlertRepository) DeleteForUser(ctx context.Context, id, userID int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM alerts WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete alert: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("alert %d for user %d: %w", id, userID, apperr.ErrNotFound)
	}
	return nil
}
