package models

import (
	"time"
)

// Alert is a per-user notification record created when a zone's risk level
// meets or exceeds the effective threshold. The sent flags exist for the
// delivery pipeline; this service never flips them.
type Alert struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	RiskZoneID  int64     `json:"risk_zone_id"`
	AlertTime   time.Time `json:"alert_time"`
	RiskLevel   float64   `json:"risk_level"`
	Message     string    `json:"message"`
	IsRead      bool      `json:"is_read"`
	IsSentEmail bool      `json:"is_sent_email"`
	IsSentSMS   bool      `json:"is_sent_sms"`
}
