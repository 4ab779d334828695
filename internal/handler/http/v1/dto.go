package v1

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterRequest DTO для регистрации пользователя
// @Description DTO для регистрации пользователя
type RegisterRequest struct {
	FullName string `json:"fullName" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// AuthenticateRequest DTO для входа
// @Description DTO для входа
type AuthenticateRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest DTO для обновления пары токенов
// @Description DTO для обновления пары токенов
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// AuthResponse DTO с парой токенов
// @Description DTO с парой токенов
type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// UserResponse DTO текущего пользователя
// @Description DTO текущего пользователя
type UserResponse struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// CreateZoneRequest DTO для создания зоны бедствия. Радиус в километрах.
// @Description DTO для создания зоны бедствия
type CreateZoneRequest struct {
	Name            string          `json:"name" validate:"required,min=2,max=255"`
	DisasterType    string          `json:"disasterType" validate:"required,disaster_type"`
	CenterLatitude  decimal.Decimal `json:"centerLatitude" swaggertype:"number"`
	CenterLongitude decimal.Decimal `json:"centerLongitude" swaggertype:"number"`
	Radius          *float64        `json:"radius" validate:"required,gte=0"`
	DangerLevel     string          `json:"dangerLevel" validate:"required,danger_level"`
}

// UpdateZoneRequest DTO для обновления зоны бедствия
// @Description DTO для обновления зоны бедствия
type UpdateZoneRequest struct {
	Name            string          `json:"name" validate:"required,min=2,max=255"`
	DisasterType    string          `json:"disasterType" validate:"required,disaster_type"`
	CenterLatitude  decimal.Decimal `json:"centerLatitude" swaggertype:"number"`
	CenterLongitude decimal.Decimal `json:"centerLongitude" swaggertype:"number"`
	Radius          *float64        `json:"radius" validate:"required,gte=0"`
	DangerLevel     string          `json:"dangerLevel" validate:"required,danger_level"`
	IsActive        *bool           `json:"isActive"`
	Version         int             `json:"version" validate:"gte=0"`
}

// SafetyTipRequest DTO для добавления совета в зону
// @Description DTO для добавления совета в зону
type SafetyTipRequest struct {
	Title   string `json:"title" validate:"required,min=2,max=255"`
	Content string `json:"content" validate:"required"`
}

// SafetyTipResponse DTO совета по безопасности
// @Description DTO совета по безопасности
type SafetyTipResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// DisasterZoneResponse DTO зоны бедствия
// @Description DTO зоны бедствия
type DisasterZoneResponse struct {
	ID              int64                `json:"id"`
	Name            string               `json:"name"`
	DisasterType    string               `json:"disasterType"`
	CenterLatitude  float64              `json:"centerLatitude"`
	CenterLongitude float64              `json:"centerLongitude"`
	Radius          float64              `json:"radius"`
	DangerLevel     string               `json:"dangerLevel"`
	IsActive        bool                 `json:"isActive"`
	Version         int                  `json:"version,omitempty"`
	CreatedAt       *time.Time           `json:"createdAt,omitempty"`
	UpdatedAt       *time.Time           `json:"updatedAt,omitempty"`
	SafetyTips      []*SafetyTipResponse `json:"safetyTips,omitempty"`
}

// ZoneStatsResponse DTO сводки по зонам
// @Description DTO сводки по зонам
type ZoneStatsResponse struct {
	ByDangerLevel       map[string]int64 `json:"byDangerLevel"`
	CreatedBeforeWindow int64            `json:"createdBeforeWindow"`
	CreatedInWindow     int64            `json:"createdInWindow"`
	WindowMinutes       int              `json:"windowMinutes"`
}

// CountResponse DTO для ответа с количеством
// @Description DTO для ответа с количеством
type CountResponse struct {
	Count int64 `json:"count"`
}

// RaiseSosRequest DTO для отправки SOS
// @Description DTO для отправки SOS
type RaiseSosRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
	Message   string   `json:"message" validate:"max=2000"`
}

// UpdateSosStatusRequest DTO для смены статуса SOS-запроса
// @Description DTO для смены статуса SOS-запроса
type UpdateSosStatusRequest struct {
	Status  string `json:"status" validate:"required,sos_status"`
	Version int    `json:"version" validate:"gte=0"`
}

// SosRequestResponse DTO SOS-запроса
// @Description DTO SOS-запроса
type SosRequestResponse struct {
	ID              int64                 `json:"id"`
	UserID          int64                 `json:"user_id"`
	Message         string                `json:"message"`
	Latitude        float64               `json:"latitude"`
	Longitude       float64               `json:"longitude"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
	SosStatus       string                `json:"sosStatus"`
	Version         int                   `json:"version"`
	DisasterZoneDto *DisasterZoneResponse `json:"disasterZoneDto,omitempty"`
}

// SosStatsResponse DTO количества SOS-запросов по статусам
// @Description DTO количества SOS-запросов по статусам
type SosStatsResponse struct {
	ByStatus map[string]int64 `json:"byStatus"`
}
