package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DisasterType - категория бедствия зоны
type DisasterType string

const (
	DisasterTypeFlood      DisasterType = "FLOOD"
	DisasterTypeFire       DisasterType = "FIRE"
	DisasterTypeEarthquake DisasterType = "EARTHQUAKE"
	DisasterTypeCyclone    DisasterType = "CYCLONE"
	DisasterTypeHeatwave   DisasterType = "HEATWAVE"
	DisasterTypeLandslide  DisasterType = "LANDSLIDE"
	DisasterTypeStorm      DisasterType = "STORM"
	DisasterTypeDrought    DisasterType = "DROUGHT"
	DisasterTypeDustStorm  DisasterType = "DUST_STORM"
)

// DisasterTypes перечисляет все допустимые категории
var DisasterTypes = []DisasterType{
	DisasterTypeFlood,
	DisasterTypeFire,
	DisasterTypeEarthquake,
	DisasterTypeCyclone,
	DisasterTypeHeatwave,
	DisasterTypeLandslide,
	DisasterTypeStorm,
	DisasterTypeDrought,
	DisasterTypeDustStorm,
}

func (t DisasterType) Valid() bool {
	for _, v := range DisasterTypes {
		if v == t {
			return true
		}
	}
	return false
}

// DangerLevel - уровень опасности зоны
type DangerLevel string

const (
	DangerLevelLow    DangerLevel = "LOW"
	DangerLevelMedium DangerLevel = "MEDIUM"
	DangerLevelHigh   DangerLevel = "HIGH"
)

var DangerLevels = []DangerLevel{DangerLevelLow, DangerLevelMedium, DangerLevelHigh}

func (l DangerLevel) Valid() bool {
	for _, v := range DangerLevels {
		if v == l {
			return true
		}
	}
	return false
}

var (
	minLatitude  = decimal.NewFromInt(-90)
	maxLatitude  = decimal.NewFromInt(90)
	minLongitude = decimal.NewFromInt(-180)
	maxLongitude = decimal.NewFromInt(180)
)

// DisasterZone - географическая зона риска, заданная центром и радиусом (в километрах)
type DisasterZone struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	DisasterType    DisasterType    `json:"disaster_type"`
	CenterLatitude  decimal.Decimal `json:"center_latitude"`
	CenterLongitude decimal.Decimal `json:"center_longitude"`
	Radius          float64         `json:"radius"`
	DangerLevel     DangerLevel     `json:"danger_level"`
	IsActive        bool            `json:"is_active"`
	Version         int             `json:"version"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	SafetyTips      []*SafetyTip    `json:"safety_tips,omitempty"`
}

// Validate проверяет инварианты зоны. Нулевой радиус допустим.
func (z *DisasterZone) Validate() error {
	if z.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidZone)
	}
	if !z.DisasterType.Valid() {
		return fmt.Errorf("%w: unknown disaster type %q", ErrInvalidZone, z.DisasterType)
	}
	if !z.DangerLevel.Valid() {
		return fmt.Errorf("%w: unknown danger level %q", ErrInvalidZone, z.DangerLevel)
	}
	if z.Radius < 0 {
		return fmt.Errorf("%w: radius must not be negative", ErrInvalidZone)
	}
	if z.CenterLatitude.LessThan(minLatitude) || z.CenterLatitude.GreaterThan(maxLatitude) {
		return fmt.Errorf("%w: center latitude out of range", ErrInvalidZone)
	}
	if z.CenterLongitude.LessThan(minLongitude) || z.CenterLongitude.GreaterThan(maxLongitude) {
		return fmt.Errorf("%w: center longitude out of range", ErrInvalidZone)
	}
	return nil
}
