package models

import (
	"time"
)

// User is an account that owns alerts and saved regions.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	IsSuperuser  bool      `json:"is_superuser"`
	CreatedAt    time.Time `json:"created_at"`

	// Preferred region for monitoring
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	RegionName *string  `json:"region_name,omitempty"`

	// Alert preferences
	AlertThreshold float64 `json:"alert_threshold"`
	EmailAlerts    bool    `json:"email_alerts"`
	SMSAlerts      bool    `json:"sms_alerts"`
	PhoneNumber    *string `json:"phone_number,omitempty"`
}

// UserUpdate enumerates the mutable fields of a user. Password is carried
// in plain text here and hashed by the service before storage.
type UserUpdate struct {
	Email          *string
	Username       *string
	Password       *string
	IsActive       *bool
	Latitude       *float64
	Longitude      *float64
	RegionName     *string
	AlertThreshold *float64
	EmailAlerts    *bool
	SMSAlerts      *bool
	PhoneNumber    *string
}

// Apply merges the set fields of the update into the user. Password is
// intentionally skipped: the service hashes it into PasswordHash.
func (u *UserUpdate) Apply(usr *User) {
	if u.Email != nil {
		usr.Email = *u.Email
	}
	if u.Username != nil {
		usr.Username = *u.Username
	}
	if u.IsActive != nil {
		usr.IsActive = *u.IsActive
	}
	if u.Latitude != nil {
		usr.Latitude = u.Latitude
	}
	if u.Longitude != nil {
		usr.Longitude = u.Longitude
	}
	if u.RegionName != nil {
		usr.RegionName = u.RegionName
	}
	if u.AlertThreshold != nil {
		usr.AlertThreshold = *u.AlertThreshold
	}
	if u.EmailAlerts != nil {
		usr.EmailAlerts = *u.EmailAlerts
	}
	if u.SMSAlerts != nil {
		usr.SMSAlerts = *u.SMSAlerts
	}
	if u.PhoneNumber != nil {
		usr.PhoneNumber = u.PhoneNumber
	}
}
