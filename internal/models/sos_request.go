package models

import "time"

// SosStatus - состояние жизненного цикла SOS-запроса
type SosStatus string

const (
	SosStatusPending    SosStatus = "PENDING"
	SosStatusInProgress SosStatus = "IN_PROGRESS"
	SosStatusResolved   SosStatus = "RESOLVED"
)

var SosStatuses = []SosStatus{SosStatusPending, SosStatusInProgress, SosStatusResolved}

func (s SosStatus) Valid() bool {
	for _, v := range SosStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// sosTransitions - разрешенные переходы статусов
var sosTransitions = map[SosStatus][]SosStatus{
	SosStatusPending:    {SosStatusInProgress, SosStatusResolved},
	SosStatusInProgress: {SosStatusResolved},
}

// CanTransitionTo сообщает, разрешен ли переход из s в next
func (s SosStatus) CanTransitionTo(next SosStatus) bool {
	for _, v := range sosTransitions[s] {
		if v == next {
			return true
		}
	}
	return false
}

// SosRequest - запрос о помощи от пользователя
type SosRequest struct {
	ID           int64         `json:"id"`
	User         *User         `json:"user,omitempty"`
	DisasterZone *DisasterZone `json:"disaster_zone,omitempty"`
	Status       SosStatus     `json:"status"`
	Latitude     float64       `json:"latitude"`
	Longitude    float64       `json:"longitude"`
	Message      string        `json:"message"`
	Version      int           `json:"version"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
