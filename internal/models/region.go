package models

import (
	"time"
)

// DefaultAlertThreshold is used when a user or saved region does not set
// its own threshold.
const DefaultAlertThreshold = 0.7

// SavedRegion is a user's subscribed location of interest with a per-region
// alert threshold override.
type SavedRegion struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	RegionName     string    `json:"region_name"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	AlertThreshold float64   `json:"alert_threshold"`
	CreatedAt      time.Time `json:"created_at"`
}
