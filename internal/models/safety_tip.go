package models

import "time"

// SafetyTip - совет по безопасности, принадлежащий зоне. Живет ровно столько, сколько его зона.
type SafetyTip struct {
	ID             int64     `json:"id"`
	DisasterZoneID int64     `json:"disaster_zone_id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}
