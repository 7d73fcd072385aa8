package models

import (
	"time"
)

// Incident severities.
const (
	SeverityLow    = "Low"
	SeverityMedium = "Medium"
	SeverityHigh   = "High"
)

// Incident statuses.
const (
	IncidentStatusActive       = "Active"
	IncidentStatusContained    = "Contained"
	IncidentStatusExtinguished = "Extinguished"
)

// Incident sources.
const (
	IncidentSourceSatellite    = "Satellite"
	IncidentSourceGroundReport = "Ground Report"
	IncidentSourceOfficial     = "Official"
)

var (
	IncidentSeverities = []string{SeverityLow, SeverityMedium, SeverityHigh}
	IncidentStatuses   = []string{IncidentStatusActive, IncidentStatusContained, IncidentStatusExtinguished}
	IncidentSources    = []string{IncidentSourceSatellite, IncidentSourceGroundReport, IncidentSourceOfficial}
)

// Incident is a real-world fire event linked to the risk zone nearest its
// location.
type Incident struct {
	ID           int64      `json:"id"`
	RiskZoneID   int64      `json:"risk_zone_id"`
	Latitude     float64    `json:"latitude"`
	Longitude    float64    `json:"longitude"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Severity     string     `json:"severity"`
	AreaAffected *float64   `json:"area_affected,omitempty"` // square kilometers
	Status       string     `json:"status"`
	Source       string     `json:"source"`
	Description  *string    `json:"description,omitempty"`
}

// IncidentUpdate enumerates the mutable fields of an incident.
type IncidentUpdate struct {
	Latitude     *float64
	Longitude    *float64
	StartDate    *time.Time
	EndDate      *time.Time
	Severity     *string
	AreaAffected *float64
	Status       *string
	Source       *string
	Description  *string
}

// Apply merges the set fields of the update into the incident.
func (u *IncidentUpdate) Apply(in *Incident) {
	if u.Latitude != nil {
		in.Latitude = *u.Latitude
	}
	if u.Longitude != nil {
		in.Longitude = *u.Longitude
	}
	if u.StartDate != nil {
		in.StartDate = *u.StartDate
	}
	if u.EndDate != nil {
		in.EndDate = u.EndDate
	}
	if u.Severity != nil {
		in.Severity = *u.Severity
	}
	if u.AreaAffected != nil {
		in.AreaAffected = u.AreaAffected
	}
	if u.Status != nil {
		in.Status = *u.Status
	}
	if u.Source != nil {
		in.Source = *u.Source
	}
	if u.Description != nil {
		in.Description = u.Description
	}
}

// IncidentFilter narrows an incident listing.
type IncidentFilter struct {
	RegionName    string // substring match through the owning zone
	StartDateFrom *time.Time
	StartDateTo   *time.Time
	Status        string
	Severity      string
}
