package v1

import (
	"time"
)

// CreateZoneRequest is the payload for creating a risk zone.
// @Description Payload for creating a risk zone
type CreateZoneRequest struct {
	RegionName   string  `json:"region_name" validate:"required,min=2,max=255"`
	Latitude     float64 `json:"latitude" validate:"latitude"`
	Longitude    float64 `json:"longitude" validate:"longitude"`
	RiskLevel    float64 `json:"risk_level" validate:"gte=0,lte=1"`
	RiskCategory string  `json:"risk_category" validate:"required,oneof=Low Medium High"`

	Temperature   *float64 `json:"temperature,omitempty"`
	Humidity      *float64 `json:"humidity,omitempty"`
	WindSpeed     *float64 `json:"wind_speed,omitempty"`
	Precipitation *float64 `json:"precipitation,omitempty"`

	VegetationDensity *float64 `json:"vegetation_density,omitempty"`
	VegetationType    *string  `json:"vegetation_type,omitempty"`
	SoilMoisture      *float64 `json:"soil_moisture,omitempty"`

	PredictionModel string  `json:"prediction_model" validate:"required"`
	ConfidenceScore float64 `json:"confidence_score" validate:"gte=0,lte=1"`
}

// UpdateZoneRequest is the payload for a partial risk zone update. Absent
// fields are left untouched.
// @Description Payload for a partial risk zone update
type UpdateZoneRequest struct {
	RegionName        *string  `json:"region_name,omitempty" validate:"omitempty,min=2,max=255"`
	Latitude          *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude         *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	RiskLevel         *float64 `json:"risk_level,omitempty" validate:"omitempty,gte=0,lte=1"`
	RiskCategory      *string  `json:"risk_category,omitempty" validate:"omitempty,oneof=Low Medium High"`
	Temperature       *float64 `json:"temperature,omitempty"`
	Humidity          *float64 `json:"humidity,omitempty"`
	WindSpeed         *float64 `json:"wind_speed,omitempty"`
	Precipitation     *float64 `json:"precipitation,omitempty"`
	VegetationDensity *float64 `json:"vegetation_density,omitempty"`
	VegetationType    *string  `json:"vegetation_type,omitempty"`
	SoilMoisture      *float64 `json:"soil_moisture,omitempty"`
	PredictionModel   *string  `json:"prediction_model,omitempty"`
	ConfidenceScore   *float64 `json:"confidence_score,omitempty" validate:"omitempty,gte=0,lte=1"`
}

// ZoneResponse is the wire form of a risk zone.
// @Description Risk zone
type ZoneResponse struct {
	ID           int64     `json:"id"`
	RegionName   string    `json:"region_name"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	RiskLevel    float64   `json:"risk_level"`
	RiskCategory string    `json:"risk_category"`
	Timestamp    time.Time `json:"timestamp"`

	Temperature   *float64 `json:"temperature,omitempty"`
	Humidity      *float64 `json:"humidity,omitempty"`
	WindSpeed     *float64 `json:"wind_speed,omitempty"`
	Precipitation *float64 `json:"precipitation,omitempty"`

	VegetationDensity *float64 `json:"vegetation_density,omitempty"`
	VegetationType    *string  `json:"vegetation_type,omitempty"`
	SoilMoisture      *float64 `json:"soil_moisture,omitempty"`

	PredictionModel string  `json:"prediction_model"`
	ConfidenceScore float64 `json:"confidence_score"`
}

// CreateIncidentRequest is the payload for reporting a fire incident.
// @Description Payload for reporting a fire incident
type CreateIncidentRequest struct {
	RiskZoneID   int64      `json:"risk_zone_id" validate:"required"`
	Latitude     float64    `json:"latitude" validate:"latitude"`
	Longitude    float64    `json:"longitude" validate:"longitude"`
	StartDate    time.Time  `json:"start_date" validate:"required"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Severity     string     `json:"severity" validate:"required,oneof=Low Medium High"`
	AreaAffected *float64   `json:"area_affected,omitempty" validate:"omitempty,gte=0"`
	Status       string     `json:"status" validate:"required,oneof=Active Contained Extinguished"`
	Source       string     `json:"source" validate:"required,oneof=Satellite 'Ground Report' Official"`
	Description  *string    `json:"description,omitempty"`
}

// UpdateIncidentRequest is the payload for a partial incident update.
// @Description Payload for a partial incident update
type UpdateIncidentRequest struct {
	Latitude     *float64   `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude    *float64   `json:"longitude,omitempty" validate:"omitempty,longitude"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Severity     *string    `json:"severity,omitempty" validate:"omitempty,oneof=Low Medium High"`
	AreaAffected *float64   `json:"area_affected,omitempty" validate:"omitempty,gte=0"`
	Status       *string    `json:"status,omitempty" validate:"omitempty,oneof=Active Contained Extinguished"`
	Source       *string    `json:"source,omitempty" validate:"omitempty,oneof=Satellite 'Ground Report' Official"`
	Description  *string    `json:"description,omitempty"`
}

// IncidentResponse is the wire form of a fire incident.
// @Description Fire incident
type IncidentResponse struct {
	ID           int64      `json:"id"`
	RiskZoneID   int64      `json:"risk_zone_id"`
	Latitude     float64    `json:"latitude"`
	Longitude    float64    `json:"longitude"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Severity     string     `json:"severity"`
	AreaAffected *float64   `json:"area_affected,omitempty"`
	Status       string     `json:"status"`
	Source       string     `json:"source"`
	Description  *string    `json:"description,omitempty"`
}

// CreateRegionRequest is the payload for saving a region subscription.
// @Description Payload for saving a region subscription
type CreateRegionRequest struct {
	RegionName     string  `json:"region_name" validate:"required,min=2,max=255"`
	Latitude       float64 `json:"latitude" validate:"latitude"`
	Longitude      float64 `json:"longitude" validate:"longitude"`
	AlertThreshold float64 `json:"alert_threshold" validate:"gte=0,lte=1"`
}

// RegionResponse is the wire form of a saved region.
// @Description Saved region subscription
type RegionResponse struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	RegionName     string    `json:"region_name"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	AlertThreshold float64   `json:"alert_threshold"`
	CreatedAt      time.Time `json:"created_at"`
}

// AlertResponse is the wire form of an alert.
// @Description Alert notification record
type AlertResponse struct {
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

// RegisterUserRequest is the payload for creating an account.
// @Description Payload for creating an account
type RegisterUserRequest struct {
	Email          string   `json:"email" validate:"required,email"`
	Username       string   `json:"username" validate:"required,min=3,max=64"`
	Password       string   `json:"password" validate:"required,min=8"`
	Latitude       *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude      *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	RegionName     *string  `json:"region_name,omitempty"`
	AlertThreshold float64  `json:"alert_threshold" validate:"gte=0,lte=1"`
	EmailAlerts    bool     `json:"email_alerts"`
	SMSAlerts      bool     `json:"sms_alerts"`
	PhoneNumber    *string  `json:"phone_number,omitempty"`
}

// UpdateUserRequest is the payload for a partial account update.
// @Description Payload for a partial account update
type UpdateUserRequest struct {
	Email          *string  `json:"email,omitempty" validate:"omitempty,email"`
	Username       *string  `json:"username,omitempty" validate:"omitempty,min=3,max=64"`
	Password       *string  `json:"password,omitempty" validate:"omitempty,min=8"`
	Latitude       *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude      *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	RegionName     *string  `json:"region_name,omitempty"`
	AlertThreshold *float64 `json:"alert_threshold,omitempty" validate:"omitempty,gte=0,lte=1"`
	EmailAlerts    *bool    `json:"email_alerts,omitempty"`
	SMSAlerts      *bool    `json:"sms_alerts,omitempty"`
	PhoneNumber    *string  `json:"phone_number,omitempty"`
}

// UserResponse is the wire form of a user account.
// @Description User account
type UserResponse struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	Username       string    `json:"username"`
	IsActive       bool      `json:"is_active"`
	IsSuperuser    bool      `json:"is_superuser"`
	CreatedAt      time.Time `json:"created_at"`
	Latitude       *float64  `json:"latitude,omitempty"`
	Longitude      *float64  `json:"longitude,omitempty"`
	RegionName     *string   `json:"region_name,omitempty"`
	AlertThreshold float64   `json:"alert_threshold"`
	EmailAlerts    bool      `json:"email_alerts"`
	SMSAlerts      bool      `json:"sms_alerts"`
	PhoneNumber    *string   `json:"phone_number,omitempty"`
}

// LoginRequest is the payload for obtaining a bearer token.
// @Description Login credentials
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries an issued bearer token.
// @Description Issued bearer token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// PredictRiskRequest asks for a fresh risk assessment at a point.
// @Description Fire risk prediction request
type PredictRiskRequest struct {
	Latitude   float64 `json:"latitude" validate:"latitude"`
	Longitude  float64 `json:"longitude" validate:"longitude"`
	RegionName string  `json:"region_name,omitempty"`
}

// PredictSpreadRequest asks for a spread projection from a zone.
// @Description Fire spread prediction request
type PredictSpreadRequest struct {
	ZoneID     int64 `json:"zone_id" validate:"required"`
	HoursAhead int   `json:"hours_ahead" validate:"omitempty,gte=1,lte=168"`
}
