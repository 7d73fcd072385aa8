package models

import (
	"time"
)

// Risk categories. The category is expected to match the risk level banding
// by convention, it is not enforced on write.
const (
	RiskCategoryLow    = "Low"
	RiskCategoryMedium = "Medium"
	RiskCategoryHigh   = "High"
)

// RiskCategories lists the allowed values for RiskZone.RiskCategory.
var RiskCategories = []string{RiskCategoryLow, RiskCategoryMedium, RiskCategoryHigh}

// RiskZone is a geolocated fire risk assessment together with the
// environmental snapshot it was computed from.
type RiskZone struct {
	ID           int64     `json:"id"`
	RegionName   string    `json:"region_name"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	RiskLevel    float64   `json:"risk_level"` // 0-1 scale
	RiskCategory string    `json:"risk_category"`
	Timestamp    time.Time `json:"timestamp"`

	// Weather conditions at the time of prediction
	Temperature   *float64 `json:"temperature,omitempty"`
	Humidity      *float64 `json:"humidity,omitempty"`
	WindSpeed     *float64 `json:"wind_speed,omitempty"`
	Precipitation *float64 `json:"precipitation,omitempty"`

	// Vegetation details
	VegetationDensity *float64 `json:"vegetation_density,omitempty"`
	VegetationType    *string  `json:"vegetation_type,omitempty"`
	SoilMoisture      *float64 `json:"soil_moisture,omitempty"`

	PredictionModel string  `json:"prediction_model"`
	ConfidenceScore float64 `json:"confidence_score"`
}

// RiskZoneUpdate enumerates the mutable fields of a risk zone. Nil fields
// are left untouched by Apply.
type RiskZoneUpdate struct {
	RegionName        *string
	Latitude          *float64
	Longitude         *float64
	RiskLevel         *float64
	RiskCategory      *string
	Temperature       *float64
	Humidity          *float64
	WindSpeed         *float64
	Precipitation     *float64
	VegetationDensity *float64
	VegetationType    *string
	SoilMoisture      *float64
	PredictionModel   *string
	ConfidenceScore   *float64
}

// Apply merges the set fields of the update into the zone.
func (u *RiskZoneUpdate) Apply(z *RiskZone) {
	if u.RegionName != nil {
		z.RegionName = *u.RegionName
	}
	if u.Latitude != nil {
		z.Latitude = *u.Latitude
	}
	if u.Longitude != nil {
		z.Longitude = *u.Longitude
	}
	if u.RiskLevel != nil {
		z.RiskLevel = *u.RiskLevel
	}
	if u.RiskCategory != nil {
		z.RiskCategory = *u.RiskCategory
	}
	if u.Temperature != nil {
		z.Temperature = u.Temperature
	}
	if u.Humidity != nil {
		z.Humidity = u.Humidity
	}
	if u.WindSpeed != nil {
		z.WindSpeed = u.WindSpeed
	}
	if u.Precipitation != nil {
		z.Precipitation = u.Precipitation
	}
	if u.VegetationDensity != nil {
		z.VegetationDensity = u.VegetationDensity
	}
	if u.VegetationType != nil {
		z.VegetationType = u.VegetationType
	}
	if u.SoilMoisture != nil {
		z.SoilMoisture = u.SoilMoisture
	}
	if u.PredictionModel != nil {
		z.PredictionModel = *u.PredictionModel
	}
	if u.ConfidenceScore != nil {
		z.ConfidenceScore = *u.ConfidenceScore
	}
}

// ZoneFilter narrows a zone listing. Zero values mean "no constraint".
type ZoneFilter struct {
	MinRiskLevel *float64
	MaxRiskLevel *float64
	RegionName   string // substring match, case-insensitive
	RiskCategory string
}
