package v1

import (
	"fmt"

	"github.com/devansh/disaster_management/internal/models"
)

// RequestToSosRequestDto преобразует SOS-запрос в DTO ответа.
// Запрос без пользователя (или nil) - models.ErrMissingUserReference.
func RequestToSosRequestDto(request *models.SosRequest) (*SosRequestResponse, error) {
	if request == nil || request.User == nil {
		return nil, fmt.Errorf("mapper: %w", models.ErrMissingUserReference)
	}

	dto := &SosRequestResponse{
		ID:        request.ID,
		UserID:    request.User.ID,
		Message:   request.Message,
		Latitude:  request.Latitude,
		Longitude: request.Longitude,
		CreatedAt: request.CreatedAt,
		UpdatedAt: request.UpdatedAt,
		SosStatus: string(request.Status),
		Version:   request.Version,
	}
	if request.DisasterZone != nil {
		dto.DisasterZoneDto = ModelToZoneResponse(request.DisasterZone)
	}
	return dto, nil
}

// RequestsToSosRequestDtos преобразует слайс запросов; первая ошибка прерывает преобразование
func RequestsToSosRequestDtos(requests []*models.SosRequest) ([]*SosRequestResponse, error) {
	responses := make([]*SosRequestResponse, len(requests))
	for i, request := range requests {
		dto, err := RequestToSosRequestDto(request)
		if err != nil {
			return nil, err
		}
		responses[i] = dto
	}
	return responses, nil
}

// CreateDTOToZoneModel преобразует DTO создания в доменную модель
func CreateDTOToZoneModel(dto CreateZoneRequest) *models.DisasterZone {
	return &models.DisasterZone{
		Name:            dto.Name,
		DisasterType:    models.DisasterType(dto.DisasterType),
		CenterLatitude:  dto.CenterLatitude,
		CenterLongitude: dto.CenterLongitude,
		Radius:          *dto.Radius,
		DangerLevel:     models.DangerLevel(dto.DangerLevel),
	}
}

// UpdateDTOToZoneModel преобразует DTO обновления в доменную модель. Без isActive зона остается активной.
func UpdateDTOToZoneModel(dto UpdateZoneRequest) *models.DisasterZone {
	zone := &models.DisasterZone{
		Name:            dto.Name,
		DisasterType:    models.DisasterType(dto.DisasterType),
		CenterLatitude:  dto.CenterLatitude,
		CenterLongitude: dto.CenterLongitude,
		Radius:          *dto.Radius,
		DangerLevel:     models.DangerLevel(dto.DangerLevel),
		IsActive:        true,
		Version:         dto.Version,
	}
	if dto.IsActive != nil {
		zone.IsActive = *dto.IsActive
	}
	return zone
}

// ModelToZoneResponse преобразует доменную модель в DTO для ответа
func ModelToZoneResponse(model *models.DisasterZone) *DisasterZoneResponse {
	resp := &DisasterZoneResponse{
		ID:              model.ID,
		Name:            model.Name,
		DisasterType:    string(model.DisasterType),
		CenterLatitude:  model.CenterLatitude.InexactFloat64(),
		CenterLongitude: model.CenterLongitude.InexactFloat64(),
		Radius:          model.Radius,
		DangerLevel:     string(model.DangerLevel),
		IsActive:        model.IsActive,
		Version:         model.Version,
	}
	// Зона, подгруженная вместе с SOS-запросом, не содержит временных меток
	if !model.CreatedAt.IsZero() {
		createdAt, updatedAt := model.CreatedAt, model.UpdatedAt
		resp.CreatedAt = &createdAt
		resp.UpdatedAt = &updatedAt
	}
	for _, tip := range model.SafetyTips {
		resp.SafetyTips = append(resp.SafetyTips, ModelToSafetyTipResponse(tip))
	}
	return resp
}

// ModelsToZoneResponses преобразует слайс моделей в слайс DTO
func ModelsToZoneResponses(zones []*models.DisasterZone) []*DisasterZoneResponse {
	responses := make([]*DisasterZoneResponse, len(zones))
	for i, zone := range zones {
		responses[i] = ModelToZoneResponse(zone)
	}
	return responses
}

func ModelToSafetyTipResponse(tip *models.SafetyTip) *SafetyTipResponse {
	return &SafetyTipResponse{
		ID:        tip.ID,
		Title:     tip.Title,
		Content:   tip.Content,
		CreatedAt: tip.CreatedAt,
	}
}

func ModelToUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:       user.ID,
		FullName: user.FullName,
		Email:    user.Email,
		Role:     string(user.Role),
	}
}

func ModelToZoneStatsResponse(stats *models.ZoneStats) *ZoneStatsResponse {
	byLevel := make(map[string]int64, len(stats.ByDangerLevel))
	for level, count := range stats.ByDangerLevel {
		byLevel[string(level)] = count
	}
	return &ZoneStatsResponse{
		ByDangerLevel:       byLevel,
		CreatedBeforeWindow: stats.CreatedBeforeWindow,
		CreatedInWindow:     stats.CreatedInWindow,
		WindowMinutes:       stats.WindowMinutes,
	}
}

func TokenPairToAuthResponse(pair *models.TokenPair) *AuthResponse {
	return &AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}
}
