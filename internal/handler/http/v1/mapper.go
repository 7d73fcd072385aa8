package v1

import (
	"github.com/shenikar/wildfire_risk_service/internal/models"
)

func toZoneModel(req *CreateZoneRequest) *models.RiskZone {
	return &models.RiskZone{
		RegionName:        req.RegionName,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		RiskLevel:         req.RiskLevel,
		RiskCategory:      req.RiskCategory,
		Temperature:       req.Temperature,
		Humidity:          req.Humidity,
		WindSpeed:         req.WindSpeed,
		Precipitation:     req.Precipitation,
		VegetationDensity: req.VegetationDensity,
		VegetationType:    req.VegetationType,
		SoilMoisture:      req.SoilMoisture,
		PredictionModel:   req.PredictionModel,
		ConfidenceScore:   req.ConfidenceScore,
	}
}

func toZoneUpdate(req *UpdateZoneRequest) *models.RiskZoneUpdate {
	return &models.RiskZoneUpdate{
		RegionName:        req.RegionName,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		RiskLevel:         req.RiskLevel,
		RiskCategory:      req.RiskCategory,
		Temperature:       req.Temperature,
		Humidity:          req.Humidity,
		WindSpeed:         req.WindSpeed,
		Precipitation:     req.Precipitation,
		VegetationDensity: req.VegetationDensity,
		VegetationType:    req.VegetationType,
		SoilMoisture:      req.SoilMoisture,
		PredictionModel:   req.PredictionModel,
		ConfidenceScore:   req.ConfidenceScore,
	}
}

func toZoneResponse(z *models.RiskZone) ZoneResponse {
	return ZoneResponse{
		ID:                z.ID,
		RegionName:        z.RegionName,
		Latitude:          z.Latitude,
		Longitude:         z.Longitude,
		RiskLevel:         z.RiskLevel,
		RiskCategory:      z.RiskCategory,
		Timestamp:         z.Timestamp,
		Temperature:       z.Temperature,
		Humidity:          z.Humidity,
		WindSpeed:         z.WindSpeed,
		Precipitation:     z.Precipitation,
		VegetationDensity: z.VegetationDensity,
		VegetationType:    z.VegetationType,
		SoilMoisture:      z.SoilMoisture,
		PredictionModel:   z.PredictionModel,
		ConfidenceScore:   z.ConfidenceScore,
	}
}

func toZoneResponses(zones []*models.RiskZone) []ZoneResponse {
	out := make([]ZoneResponse, 0, len(zones))
	for _, z := range zones {
		out = append(out, toZoneResponse(z))
	}
	return out
}

func toIncidentModel(req *CreateIncidentRequest) *models.Incident {
	return &models.Incident{
		RiskZoneID:   req.RiskZoneID,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Severity:     req.Severity,
		AreaAffected: req.AreaAffected,
		Status:       req.Status,
		Source:       req.Source,
		Description:  req.Description,
	}
}

func toIncidentUpdate(req *UpdateIncidentRequest) *models.IncidentUpdate {
	return &models.IncidentUpdate{
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Severity:     req.Severity,
		AreaAffected: req.AreaAffected,
		Status:       req.Status,
		Source:       req.Source,
		Description:  req.Description,
	}
}

func toIncidentResponse(in *models.Incident) IncidentResponse {
	return IncidentResponse{
		ID:           in.ID,
		RiskZoneID:   in.RiskZoneID,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Severity:     in.Severity,
		AreaAffected: in.AreaAffected,
		Status:       in.Status,
		Source:       in.Source,
		Description:  in.Description,
	}
}

func toIncidentResponses(incidents []*models.Incident) []IncidentResponse {
	out := make([]IncidentResponse, 0, len(incidents))
	for _, in := range incidents {
		out = append(out, toIncidentResponse(in))
	}
	return out
}

func toRegionModel(req *CreateRegionRequest, userID int64) *models.SavedRegion {
	return &models.SavedRegion{
		UserID:         userID,
		RegionName:     req.RegionName,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		AlertThreshold: req.AlertThreshold,
	}
}

func toRegionResponse(r *models.SavedRegion) RegionResponse {
	return RegionResponse{
		ID:             r.ID,
		UserID:         r.UserID,
		RegionName:     r.RegionName,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		AlertThreshold: r.AlertThreshold,
		CreatedAt:      r.CreatedAt,
	}
}

func toRegionResponses(regions []*models.SavedRegion) []RegionResponse {
	out := make([]RegionResponse, 0, len(regions))
	for _, r := range regions {
		out = append(out, toRegionResponse(r))
	}
	return out
}

func toAlertResponse(a *models.Alert) AlertResponse {
	return AlertResponse{
		ID:          a.ID,
		UserID:      a.UserID,
		RiskZoneID:  a.RiskZoneID,
		AlertTime:   a.AlertTime,
		RiskLevel:   a.RiskLevel,
		Message:     a.Message,
		IsRead:      a.IsRead,
		IsSentEmail: a.IsSentEmail,
		IsSentSMS:   a.IsSentSMS,
	}
}

func toAlertResponses(alerts []*models.Alert) []AlertResponse {
	out := make([]AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, toAlertResponse(a))
	}
	return out
}

func toUserModel(req *RegisterUserRequest) *models.User {
	return &models.User{
		Email:          req.Email,
		Username:       req.Username,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		RegionName:     req.RegionName,
		AlertThreshold: req.AlertThreshold,
		EmailAlerts:    req.EmailAlerts,
		SMSAlerts:      req.SMSAlerts,
		PhoneNumber:    req.PhoneNumber,
	}
}

func toUserUpdate(req *UpdateUserRequest) *models.UserUpdate {
	return &models.UserUpdate{
		Email:          req.Email,
		Username:       req.Username,
		Password:       req.Password,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		RegionName:     req.RegionName,
		AlertThreshold: req.AlertThreshold,
		EmailAlerts:    req.EmailAlerts,
		SMSAlerts:      req.SMSAlerts,
		PhoneNumber:    req.PhoneNumber,
	}
}

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		Username:       u.Username,
		IsActive:       u.IsActive,
		IsSuperuser:    u.IsSuperuser,
		CreatedAt:      u.CreatedAt,
		Latitude:       u.Latitude,
		Longitude:      u.Longitude,
		RegionName:     u.RegionName,
		AlertThreshold: u.AlertThreshold,
		EmailAlerts:    u.EmailAlerts,
		SMSAlerts:      u.SMSAlerts,
		PhoneNumber:    u.PhoneNumber,
	}
}

func toUserResponses(users []*models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}
